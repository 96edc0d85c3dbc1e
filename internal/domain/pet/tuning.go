package pet

const (
	DefaultPetName = "My Pet"

	MinNeed = 0.0
	MaxNeed = 100.0

	// Decay per elapsed second.
	HungerDecayPerSecond    = 0.1
	HappinessDecayPerSecond = 0.08
	EnergyDecayPerSecond    = 0.05
	HealthDecayPerSecond    = 0.1

	// Health only decays while hunger or happiness sit below this.
	PoorConditionThreshold = 30.0

	FeedDeltaHunger = 30.0
	FeedDeltaEnergy = -5.0

	PlayMinEnergy      = 20.0
	PlayDeltaHappiness = 20.0
	PlayDeltaEnergy    = -20.0
	PlayDeltaHunger    = -10.0

	SleepDeltaEnergy = 50.0
	SleepDeltaHunger = -20.0

	HealDeltaHealth = 30.0
	HealDeltaEnergy = -10.0
)
