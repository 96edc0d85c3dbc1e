package status

import (
	"time"

	"pocketpet/internal/app/shared/stateview"
	"pocketpet/internal/domain/evolution"
	"pocketpet/internal/domain/pet"
)

type Request struct {
	// Horizon for the health outlook, normally the tick interval.
	Horizon time.Duration
}

type EvolutionView struct {
	evolution.State
	ExperienceForNextLevel int `json:"experience_for_next_level"`
}

type AchievementCounts struct {
	Unlocked int `json:"unlocked"`
	Total    int `json:"total"`
	Streak   int `json:"streak"`
}

type Response struct {
	Pet           pet.State               `json:"pet"`
	StatusEffects []string                `json:"status_effects"`
	Outlook       stateview.HealthOutlook `json:"health_outlook"`
	Evolution     EvolutionView           `json:"evolution"`
	Achievements  AchievementCounts       `json:"achievements"`
	Coins         int                     `json:"coins"`
	Equipped      []string                `json:"equipped"`
}
