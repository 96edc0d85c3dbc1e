package stateview

import (
	"time"

	"pocketpet/internal/domain/pet"
)

// HealthOutlook projects what one settle over a horizon would do to health.
// SecondsUntilDrain is how long until hunger or happiness falls below the
// poor-condition threshold, 0 when it already has.
type HealthOutlook struct {
	IsLosingHealth    bool     `json:"is_losing_health"`
	EstimatedLoss     float64  `json:"estimated_loss"`
	HorizonSeconds    float64  `json:"horizon_seconds"`
	SecondsUntilDrain float64  `json:"seconds_until_drain"`
	Causes            []string `json:"causes"`
}

func EstimateHealthDrain(n pet.Needs, horizon time.Duration) HealthOutlook {
	if horizon <= 0 {
		horizon = time.Hour
	}
	start := time.Unix(0, 0)
	after := pet.ApplyDecay(pet.State{Needs: n, LastInteraction: start}, start.Add(horizon)).Needs

	causes := make([]string, 0, 2)
	if after.Hunger < pet.PoorConditionThreshold {
		causes = append(causes, "HUNGRY_HEALTH_DRAIN")
	}
	if after.Happiness < pet.PoorConditionThreshold {
		causes = append(causes, "UNHAPPY_HEALTH_DRAIN")
	}

	loss := n.Health - after.Health
	return HealthOutlook{
		IsLosingHealth:    loss > 0,
		EstimatedLoss:     loss,
		HorizonSeconds:    horizon.Seconds(),
		SecondsUntilDrain: secondsUntilDrain(n),
		Causes:            causes,
	}
}

func secondsUntilDrain(n pet.Needs) float64 {
	hunger := secondsUntilBelow(n.Hunger, pet.HungerDecayPerSecond)
	happiness := secondsUntilBelow(n.Happiness, pet.HappinessDecayPerSecond)
	return min(hunger, happiness)
}

func secondsUntilBelow(value, perSecond float64) float64 {
	if value < pet.PoorConditionThreshold {
		return 0
	}
	return (value - pet.PoorConditionThreshold) / perSecond
}
