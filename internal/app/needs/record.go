package needs

import (
	"time"

	"pocketpet/internal/domain/pet"
)

// record is the petState document.
type record struct {
	Name            string      `json:"name"`
	Hunger          float64     `json:"hunger"`
	Happiness       float64     `json:"happiness"`
	Energy          float64     `json:"energy"`
	Health          float64     `json:"health"`
	LastInteraction time.Time   `json:"lastInteraction"`
	Emotion         pet.Emotion `json:"emotion"`
}

func fromState(s pet.State) record {
	return record{
		Name:            s.Name,
		Hunger:          s.Needs.Hunger,
		Happiness:       s.Needs.Happiness,
		Energy:          s.Needs.Energy,
		Health:          s.Needs.Health,
		LastInteraction: s.LastInteraction,
		Emotion:         s.Emotion,
	}
}

// toState clamps the needs and re-derives the emotion; the stored emotion is
// only a cache. A missing timestamp becomes now so the first settle does not
// decay across the whole epoch.
func (r record) toState(now time.Time) pet.State {
	s := pet.NewState(r.Name, now)
	s.Needs = pet.Needs{Hunger: r.Hunger, Happiness: r.Happiness, Energy: r.Energy, Health: r.Health}.Clamped()
	if !r.LastInteraction.IsZero() {
		s.LastInteraction = r.LastInteraction
	}
	s.Emotion = pet.Classify(s.Needs)
	return s
}
