package ports

import (
	"context"
	"time"
)

type EventType string

const (
	EventLevelUp             EventType = "level_up"
	EventStageEvolved        EventType = "stage_evolved"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventItemBought          EventType = "item_bought"
	EventItemEquipped        EventType = "item_equipped"
	EventItemUnequipped      EventType = "item_unequipped"
	EventFoodEaten           EventType = "food_eaten"
	EventEmotionChanged      EventType = "emotion_changed"
)

type Event struct {
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Journal keeps recent domain events. Append assigns ids to events without one.
// List returns the newest events first.
type Journal interface {
	Append(ctx context.Context, events ...Event) error
	List(ctx context.Context, limit int) ([]Event, error)
}
