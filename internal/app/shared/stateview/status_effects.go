package stateview

import "pocketpet/internal/domain/pet"

const criticalHealthThreshold = 15

// StatusEffects lists the conditions a player should react to, in a fixed order.
func StatusEffects(n pet.Needs) []string {
	effects := make([]string, 0, 4)
	if n.Hunger <= pet.MinNeed {
		effects = append(effects, "STARVING")
	}
	if n.Happiness <= pet.MinNeed {
		effects = append(effects, "MISERABLE")
	}
	// Below this play is refused.
	if n.Energy < pet.PlayMinEnergy {
		effects = append(effects, "EXHAUSTED")
	}
	if n.Health <= criticalHealthThreshold {
		effects = append(effects, "CRITICAL")
	}
	return effects
}
