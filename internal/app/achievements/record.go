package achievements

import (
	"time"

	"pocketpet/internal/domain/achievement"
)

type entryRecord struct {
	ID          string     `json:"id"`
	Progress    int        `json:"progress"`
	MaxProgress int        `json:"maxProgress"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt"`
}

// record is the achievementsState document.
type record struct {
	Achievements      []entryRecord `json:"achievements"`
	Streak            int           `json:"streak"`
	LastDayInteracted *string       `json:"lastDayInteracted"`
}

func fromBoard(b *achievement.Board) record {
	rec := record{Streak: b.Streak}
	if b.LastDay != "" {
		day := b.LastDay
		rec.LastDayInteracted = &day
	}
	for _, a := range b.All() {
		rec.Achievements = append(rec.Achievements, entryRecord{
			ID:          a.ID,
			Progress:    a.Progress,
			MaxProgress: a.MaxProgress,
			Unlocked:    a.Unlocked,
			UnlockedAt:  a.UnlockedAt,
		})
	}
	return rec
}

// toBoard merges saved entries onto the catalog. Saved maxProgress is ignored
// in favour of the catalog value.
func (r record) toBoard() *achievement.Board {
	b := achievement.NewBoard()
	for _, e := range r.Achievements {
		b.Restore(e.ID, e.Progress, e.Unlocked, e.UnlockedAt)
	}
	b.Streak = max(0, r.Streak)
	if r.LastDayInteracted != nil {
		if _, err := time.Parse(achievement.DayLayout, *r.LastDayInteracted); err == nil {
			b.LastDay = *r.LastDayInteracted
		}
	}
	return b
}
