package achievement

import (
	"time"

	"pocketpet/internal/domain/faults"
	"pocketpet/internal/domain/pet"
)

const DayLayout = "2006-01-02"

const (
	BalancedGoldThreshold   = 90.0
	BalancedSilverThreshold = 70.0
	BalancedBronzeThreshold = 50.0
	PerfectDayThreshold     = 90.0
	EnergyEfficientAbove    = 80.0
)

var ErrAchievementNotFound = faults.New(faults.ErrNotFound, "achievement not found")

type Achievement struct {
	Definition
	Progress   int        `json:"progress"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at"`
}

// Board is the progress state of every catalog entry plus the care streak.
// Mutating methods return the ids unlocked during the call, cascades included.
type Board struct {
	entries []Achievement
	index   map[string]int

	Streak int
	// LastDay is the last interaction date as YYYY-MM-DD, empty when none.
	LastDay string
}

func NewBoard() *Board {
	b := &Board{index: make(map[string]int, len(catalog))}
	for i, d := range catalog {
		b.entries = append(b.entries, Achievement{Definition: d})
		b.index[d.ID] = i
	}
	return b
}

// Restore copies saved progress onto a catalog entry. Progress is clamped to
// the catalog maximum. Unknown ids are ignored and reported as false.
func (b *Board) Restore(id string, progress int, unlocked bool, unlockedAt *time.Time) bool {
	i, ok := b.index[id]
	if !ok {
		return false
	}
	a := &b.entries[i]
	a.Progress = max(0, min(progress, a.MaxProgress))
	a.Unlocked = unlocked
	a.UnlockedAt = nil
	if unlocked && unlockedAt != nil {
		at := *unlockedAt
		a.UnlockedAt = &at
	}
	return true
}

func (b *Board) Get(id string) (Achievement, bool) {
	i, ok := b.index[id]
	if !ok {
		return Achievement{}, false
	}
	return b.entries[i], true
}

// All returns a copy of every entry in catalog order.
func (b *Board) All() []Achievement {
	out := make([]Achievement, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Board) Unlocked() []Achievement {
	var out []Achievement
	for _, a := range b.entries {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

func (b *Board) InCategory(c Category) []Achievement {
	var out []Achievement
	for _, a := range b.entries {
		if a.Category() == c {
			out = append(out, a)
		}
	}
	return out
}

// UpdateProgress sets progress clamped to [0, max] and unlocks the entry the
// first time it reaches max.
func (b *Board) UpdateProgress(id string, progress int, now time.Time) ([]string, error) {
	i, ok := b.index[id]
	if !ok {
		return nil, ErrAchievementNotFound
	}
	a := &b.entries[i]
	a.Progress = max(0, min(progress, a.MaxProgress))
	if a.Progress >= a.MaxProgress && !a.Unlocked {
		return b.Unlock(id, now)
	}
	return nil, nil
}

// Unlock is idempotent. Unlocking a non-milestone entry re-counts milestones,
// which may unlock those too.
func (b *Board) Unlock(id string, now time.Time) ([]string, error) {
	i, ok := b.index[id]
	if !ok {
		return nil, ErrAchievementNotFound
	}
	a := &b.entries[i]
	if a.Unlocked {
		return nil, nil
	}
	a.Unlocked = true
	at := now
	a.UnlockedAt = &at

	unlocked := []string{id}
	if !a.IsMilestone() {
		unlocked = append(unlocked, b.CheckMilestones(now)...)
	}
	return unlocked, nil
}

// CheckMilestones sets each milestone tier to the number of unlocked
// non-milestone entries.
func (b *Board) CheckMilestones(now time.Time) []string {
	total := 0
	for _, a := range b.entries {
		if a.Unlocked && !a.IsMilestone() {
			total++
		}
	}
	var unlocked []string
	for _, id := range b.idsIn(CategoryMilestone) {
		ids, _ := b.UpdateProgress(id, total, now)
		unlocked = append(unlocked, ids...)
	}
	return unlocked
}

// CheckDayStreak records an interaction on the calendar day of now. The streak
// grows when the day directly follows LastDay and restarts at 1 otherwise.
// Streak tiers mirror the streak.
func (b *Board) CheckDayStreak(now time.Time) []string {
	today := now.Format(DayLayout)
	switch gap, ok := daysBetween(b.LastDay, today); {
	case ok && gap == 1:
		b.Streak++
	default:
		b.Streak = 1
	}
	b.LastDay = today

	var unlocked []string
	for _, id := range b.idsIn(CategoryCareStreak) {
		ids, _ := b.UpdateProgress(id, b.Streak, now)
		unlocked = append(unlocked, ids...)
	}
	return unlocked
}

// IsNewDay reports whether now falls on a different calendar day than LastDay.
func (b *Board) IsNewDay(now time.Time) bool {
	return b.LastDay != now.Format(DayLayout)
}

// CheckBalancedStats advances only the highest qualifying tier.
func (b *Board) CheckBalancedStats(n pet.Needs, now time.Time) []string {
	var id string
	switch {
	case n.AllAbove(BalancedGoldThreshold):
		id = "balanced-stats-gold"
	case n.AllAbove(BalancedSilverThreshold):
		id = "balanced-stats-silver"
	case n.AllAbove(BalancedBronzeThreshold):
		id = "balanced-stats-bronze"
	default:
		return nil
	}
	return b.advance(id, now)
}

// CheckMoodStreak advances the mood tiers on joyful or love and resets the
// locked ones on any other emotion.
func (b *Board) CheckMoodStreak(e pet.Emotion, now time.Time) []string {
	if e == pet.EmotionJoyful || e == pet.EmotionLove {
		return b.advanceCategory(CategoryMoodMaster, now)
	}
	b.resetCategory(CategoryMoodMaster)
	return nil
}

// CheckEnergyEfficiency advances when energy is above the threshold. It never resets.
func (b *Board) CheckEnergyEfficiency(energy float64, now time.Time) []string {
	if energy > EnergyEfficientAbove {
		return b.advanceCategory(CategoryEnergyEfficient, now)
	}
	return nil
}

// CheckPerfectDay advances when every need is above the threshold and resets
// the locked tiers otherwise.
func (b *Board) CheckPerfectDay(n pet.Needs, now time.Time) []string {
	if n.AllAbove(PerfectDayThreshold) {
		return b.advanceCategory(CategoryPerfectDay, now)
	}
	b.resetCategory(CategoryPerfectDay)
	return nil
}

func (b *Board) advance(id string, now time.Time) []string {
	a := b.entries[b.index[id]]
	if a.Unlocked {
		return nil
	}
	ids, _ := b.UpdateProgress(id, a.Progress+1, now)
	return ids
}

func (b *Board) advanceCategory(c Category, now time.Time) []string {
	var unlocked []string
	for _, id := range b.idsIn(c) {
		unlocked = append(unlocked, b.advance(id, now)...)
	}
	return unlocked
}

func (b *Board) resetCategory(c Category) {
	for i := range b.entries {
		if b.entries[i].Category() == c && !b.entries[i].Unlocked {
			b.entries[i].Progress = 0
		}
	}
}

func (b *Board) idsIn(c Category) []string {
	var ids []string
	for _, a := range b.entries {
		if a.Category() == c {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// daysBetween returns the number of calendar days from a to b, both in
// DayLayout. ok is false when a is empty or malformed.
func daysBetween(a, b string) (int, bool) {
	if a == "" {
		return 0, false
	}
	from, err := time.Parse(DayLayout, a)
	if err != nil {
		return 0, false
	}
	to, err := time.Parse(DayLayout, b)
	if err != nil {
		return 0, false
	}
	return int(to.Sub(from).Hours() / 24), true
}
