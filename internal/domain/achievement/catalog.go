package achievement

import "strings"

type Level string

const (
	LevelBronze Level = "bronze"
	LevelSilver Level = "silver"
	LevelGold   Level = "gold"
)

// Category is the id prefix shared by the tiers of one tracker.
type Category string

const (
	CategoryCareStreak      Category = "care-streak"
	CategoryBalancedStats   Category = "balanced-stats"
	CategoryMoodMaster      Category = "mood-master"
	CategoryEnergyEfficient Category = "energy-efficient"
	CategoryPerfectDay      Category = "perfect-day"
	CategoryMilestone       Category = "milestone"
)

var Categories = []Category{
	CategoryCareStreak,
	CategoryBalancedStats,
	CategoryMoodMaster,
	CategoryEnergyEfficient,
	CategoryPerfectDay,
	CategoryMilestone,
}

type Definition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
	Icon        string `json:"icon"`
	MaxProgress int    `json:"max_progress"`
}

func (d Definition) Category() Category {
	for _, c := range Categories {
		if strings.HasPrefix(d.ID, string(c)) {
			return c
		}
	}
	return ""
}

func (d Definition) IsMilestone() bool {
	return d.Category() == CategoryMilestone
}

// Ids are stable. New entries go at the end.
var catalog = []Definition{
	{ID: "care-streak-bronze", Name: "Caring Beginner", Description: "Interact with your pet for 3 days in a row", Level: LevelBronze, Icon: "trophy", MaxProgress: 3},
	{ID: "care-streak-silver", Name: "Caring Expert", Description: "Interact with your pet for 7 days in a row", Level: LevelSilver, Icon: "trophy", MaxProgress: 7},
	{ID: "care-streak-gold", Name: "Caring Master", Description: "Interact with your pet for 30 days in a row", Level: LevelGold, Icon: "trophy", MaxProgress: 30},

	{ID: "balanced-stats-bronze", Name: "Balance Seeker", Description: "Keep all pet stats above 50% for 1 hour", Level: LevelBronze, Icon: "ribbon", MaxProgress: 1},
	{ID: "balanced-stats-silver", Name: "Balance Keeper", Description: "Keep all pet stats above 70% for 2 hours", Level: LevelSilver, Icon: "ribbon", MaxProgress: 2},
	{ID: "balanced-stats-gold", Name: "Balance Master", Description: "Keep all pet stats above 90% for 1 hour", Level: LevelGold, Icon: "ribbon", MaxProgress: 1},

	{ID: "mood-master-bronze", Name: "Mood Lifter", Description: "Keep your pet in joyful or love mood for 1 hour", Level: LevelBronze, Icon: "heart", MaxProgress: 1},
	{ID: "mood-master-silver", Name: "Mood Expert", Description: "Keep your pet in joyful or love mood for 4 hours", Level: LevelSilver, Icon: "heart", MaxProgress: 4},
	{ID: "mood-master-gold", Name: "Mood Master", Description: "Keep your pet in joyful or love mood for 8 hours", Level: LevelGold, Icon: "heart", MaxProgress: 8},

	{ID: "energy-efficient-bronze", Name: "Energy Saver", Description: "Play with your pet 3 times while keeping energy above 80%", Level: LevelBronze, Icon: "flash", MaxProgress: 3},
	{ID: "energy-efficient-silver", Name: "Energy Pro", Description: "Play with your pet 10 times while keeping energy above 80%", Level: LevelSilver, Icon: "flash", MaxProgress: 10},
	{ID: "energy-efficient-gold", Name: "Energy Master", Description: "Play with your pet 20 times while keeping energy above 80%", Level: LevelGold, Icon: "flash", MaxProgress: 20},

	{ID: "perfect-day-bronze", Name: "Perfect Morning", Description: "Maintain all stats above 90% for 4 hours", Level: LevelBronze, Icon: "star", MaxProgress: 4},
	{ID: "perfect-day-silver", Name: "Perfect Day", Description: "Maintain all stats above 90% for 12 hours", Level: LevelSilver, Icon: "star", MaxProgress: 12},
	{ID: "perfect-day-gold", Name: "Perfect Week", Description: "Maintain all stats above 90% for 7 days", Level: LevelGold, Icon: "star", MaxProgress: 168},

	{ID: "milestone-bronze", Name: "Happy Family", Description: "Unlock 5 achievements of any type", Level: LevelBronze, Icon: "medal", MaxProgress: 5},
	{ID: "milestone-silver", Name: "Pet Enthusiast", Description: "Unlock 15 achievements of any type", Level: LevelSilver, Icon: "medal", MaxProgress: 15},
	// Counts every non-milestone entry, of which there are 15. A target of 17
	// would never be reached.
	{ID: "milestone-gold", Name: "Pet Legend", Description: "Unlock all other achievements", Level: LevelGold, Icon: "diamond", MaxProgress: 15},
}

// Catalog returns a copy of the fixed achievement list in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id string) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
