package pet

import "pocketpet/internal/domain/faults"

var ErrUnknownAction = faults.New(faults.ErrInvalidInput, "unknown pet action")

// ApplyAction applies the direct deltas of an action. The returned bool is
// false when a guard turned the action into a no-op; s is then returned as is.
// Settling (decay + emotion) is left to the caller.
func ApplyAction(s State, action ActionType) (State, bool, error) {
	next := s
	n := &next.Needs

	switch action {
	case ActionFeed:
		if n.Hunger >= MaxNeed {
			return s, false, nil
		}
		n.Hunger = clamp(n.Hunger + FeedDeltaHunger)
		n.Energy = clamp(n.Energy + FeedDeltaEnergy)
	case ActionPlay:
		if n.Energy < PlayMinEnergy {
			return s, false, nil
		}
		n.Happiness = clamp(n.Happiness + PlayDeltaHappiness)
		n.Energy = clamp(n.Energy + PlayDeltaEnergy)
		n.Hunger = clamp(n.Hunger + PlayDeltaHunger)
	case ActionSleep:
		n.Energy = clamp(n.Energy + SleepDeltaEnergy)
		n.Hunger = clamp(n.Hunger + SleepDeltaHunger)
	case ActionHeal:
		if n.Health >= MaxNeed {
			return s, false, nil
		}
		n.Health = clamp(n.Health + HealDeltaHealth)
		n.Energy = clamp(n.Energy + HealDeltaEnergy)
	default:
		return s, false, ErrUnknownAction
	}
	return next, true, nil
}

// ApplyEffects adds e to n and clamps the result.
func ApplyEffects(n Needs, e Effects) Needs {
	return Needs{
		Hunger:    clamp(n.Hunger + e.Hunger),
		Happiness: clamp(n.Happiness + e.Happiness),
		Energy:    clamp(n.Energy + e.Energy),
		Health:    clamp(n.Health + e.Health),
	}
}

// ApplyEquippedEffects adds the effects of every equipped item, in order.
func ApplyEquippedEffects(n Needs, equipped []Effects) Needs {
	for _, e := range equipped {
		if e.IsZero() {
			continue
		}
		n = ApplyEffects(n, e)
	}
	return n
}
