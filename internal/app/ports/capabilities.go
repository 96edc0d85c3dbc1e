package ports

import (
	"context"
	"time"

	"pocketpet/internal/domain/evolution"
	"pocketpet/internal/domain/pet"
)

type ExperienceSink interface {
	AddExperience(ctx context.Context, amount int, path evolution.Path) error
}

type AchievementSink interface {
	// RecordInteraction counts a care action towards the daily streak.
	RecordInteraction(ctx context.Context, at time.Time) error
	// RecordSnapshot feeds the settled needs and emotion to the balance, mood
	// and perfect-day trackers.
	RecordSnapshot(ctx context.Context, needs pet.Needs, emotion pet.Emotion) error
	RecordPlayEnergy(ctx context.Context, energy float64) error
}

type EquippedItemSource interface {
	EquippedEffects() []pet.Effects
}

type CoinSink interface {
	AddCoins(ctx context.Context, amount int) error
}

type FoodSource interface {
	UseFood(ctx context.Context, itemID string) (pet.Effects, error)
}
