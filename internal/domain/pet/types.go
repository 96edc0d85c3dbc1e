package pet

import "time"

// Needs are the four bounded pet needs. Every value stays within [MinNeed, MaxNeed].
type Needs struct {
	Hunger    float64 `json:"hunger"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`
	Health    float64 `json:"health"`
}

// FullNeeds is the condition of a freshly created pet.
func FullNeeds() Needs {
	return Needs{Hunger: MaxNeed, Happiness: MaxNeed, Energy: MaxNeed, Health: MaxNeed}
}

// Clamped returns n with every value forced into [MinNeed, MaxNeed].
func (n Needs) Clamped() Needs {
	return Needs{
		Hunger:    clamp(n.Hunger),
		Happiness: clamp(n.Happiness),
		Energy:    clamp(n.Energy),
		Health:    clamp(n.Health),
	}
}

// AllAbove reports whether every need is strictly greater than threshold.
func (n Needs) AllAbove(threshold float64) bool {
	return n.Hunger > threshold && n.Happiness > threshold && n.Energy > threshold && n.Health > threshold
}

// Effects are sparse deltas on the needs. A zero field means "no effect".
type Effects struct {
	Hunger    float64 `json:"hunger,omitempty"`
	Happiness float64 `json:"happiness,omitempty"`
	Energy    float64 `json:"energy,omitempty"`
	Health    float64 `json:"health,omitempty"`
}

func (e Effects) IsZero() bool {
	return e == Effects{}
}

type Emotion string

const (
	EmotionHappy        Emotion = "happy"
	EmotionSad          Emotion = "sad"
	EmotionAngry        Emotion = "angry"
	EmotionCry          Emotion = "cry"
	EmotionDissatisfied Emotion = "dissatisfied"
	EmotionJoyful       Emotion = "joyful"
	EmotionLove         Emotion = "love"
	EmotionSatisfied    Emotion = "satisfied"
	EmotionUpset        Emotion = "upset"
)

// State is the pet's condition. Emotion is a cache of Classify(Needs).
type State struct {
	Name            string    `json:"name"`
	Needs           Needs     `json:"needs"`
	LastInteraction time.Time `json:"last_interaction"`
	Emotion         Emotion   `json:"emotion"`
}

// NewState returns a pet with full needs created at now.
func NewState(name string, now time.Time) State {
	if name == "" {
		name = DefaultPetName
	}
	return State{
		Name:            name,
		Needs:           FullNeeds(),
		LastInteraction: now,
		Emotion:         EmotionHappy,
	}
}

type ActionType string

const (
	ActionFeed  ActionType = "feed"
	ActionPlay  ActionType = "play"
	ActionSleep ActionType = "sleep"
	ActionHeal  ActionType = "heal"
)

// Actions lists the care actions in display order.
var Actions = []ActionType{ActionFeed, ActionPlay, ActionSleep, ActionHeal}

func clamp(v float64) float64 {
	return max(MinNeed, min(v, MaxNeed))
}
