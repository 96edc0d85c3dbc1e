package pet

import "time"

// ApplyDecay drains the needs for the seconds elapsed since LastInteraction and
// moves LastInteraction to now. A clock that went backwards decays nothing and
// leaves LastInteraction where it was.
func ApplyDecay(s State, now time.Time) State {
	next := s
	elapsed := now.Sub(s.LastInteraction).Seconds()
	if elapsed <= 0 {
		if elapsed == 0 {
			next.LastInteraction = now
		}
		return next
	}

	next.Needs.Hunger = max(MinNeed, next.Needs.Hunger-elapsed*HungerDecayPerSecond)
	next.Needs.Happiness = max(MinNeed, next.Needs.Happiness-elapsed*HappinessDecayPerSecond)
	next.Needs.Energy = max(MinNeed, next.Needs.Energy-elapsed*EnergyDecayPerSecond)

	// Checked against the already drained values.
	if next.Needs.Hunger < PoorConditionThreshold || next.Needs.Happiness < PoorConditionThreshold {
		next.Needs.Health = max(MinNeed, next.Needs.Health-elapsed*HealthDecayPerSecond)
	}

	next.LastInteraction = now
	return next
}

// Settle advances the pet to now and re-derives its emotion. Both the tick and
// every action end with this pass.
func Settle(s State, now time.Time) State {
	next := ApplyDecay(s, now)
	next.Emotion = Classify(next.Needs)
	return next
}
