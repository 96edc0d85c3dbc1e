package achievements

import (
	"context"
	"log/slog"
	"time"

	"pocketpet/internal/app/ports"
	"pocketpet/internal/app/shared/errlatch"
	"pocketpet/internal/app/shared/snapshot"
	"pocketpet/internal/domain/achievement"
	"pocketpet/internal/domain/faults"
	"pocketpet/internal/domain/pet"
)

var ErrNotInitialized = faults.New(faults.ErrNotInitialized, "achievement engine not initialized")

// Engine owns the achievement board, persisted under achievementsState.
// Every mutating call saves the whole board once.
type Engine struct {
	Store   ports.StateStore
	Journal ports.Journal
	Logger  *slog.Logger
	Now     func() time.Time

	board       *achievement.Board
	initialized bool
	lastErr     errlatch.Latch
}

var _ ports.AchievementSink = (*Engine)(nil)

func (e *Engine) Initialize(ctx context.Context) error {
	var rec record
	ok, err := snapshot.Load(ctx, e.Store, ports.KeyAchievementsState, &rec)
	if err != nil {
		e.log().Warn("load achievements failed", "error", err)
		return e.lastErr.Set(err)
	}
	e.board = achievement.NewBoard()
	if ok {
		e.board = rec.toBoard()
	}
	e.initialized = true
	return e.lastErr.Set(nil)
}

func (e *Engine) Initialized() bool { return e.initialized }

func (e *Engine) LastError() error { return e.lastErr.Err() }

// Summary is a read-only copy of the board.
type Summary struct {
	Achievements []achievement.Achievement `json:"achievements"`
	Unlocked     int                       `json:"unlocked"`
	Streak       int                       `json:"streak"`
	LastDay      string                    `json:"last_day,omitempty"`
}

func (e *Engine) Summary() (Summary, error) {
	if !e.initialized {
		return Summary{}, e.lastErr.Set(ErrNotInitialized)
	}
	return Summary{
		Achievements: e.board.All(),
		Unlocked:     len(e.board.Unlocked()),
		Streak:       e.board.Streak,
		LastDay:      e.board.LastDay,
	}, e.lastErr.Set(nil)
}

func (e *Engine) Unlocked() ([]achievement.Achievement, error) {
	if !e.initialized {
		return nil, e.lastErr.Set(ErrNotInitialized)
	}
	return e.board.Unlocked(), e.lastErr.Set(nil)
}

func (e *Engine) CheckDayStreak(ctx context.Context, at time.Time) error {
	return e.mutate(ctx, func(b *achievement.Board, _ time.Time) ([]string, error) {
		return b.CheckDayStreak(at), nil
	})
}

// RecordInteraction advances the streak once per calendar day. Later calls on
// the same day change nothing and do not save.
func (e *Engine) RecordInteraction(ctx context.Context, at time.Time) error {
	if !e.initialized {
		return e.lastErr.Set(ErrNotInitialized)
	}
	if !e.board.IsNewDay(at) {
		return e.lastErr.Set(nil)
	}
	return e.CheckDayStreak(ctx, at)
}

func (e *Engine) RecordSnapshot(ctx context.Context, needs pet.Needs, emotion pet.Emotion) error {
	return e.mutate(ctx, func(b *achievement.Board, now time.Time) ([]string, error) {
		unlocked := b.CheckBalancedStats(needs, now)
		unlocked = append(unlocked, b.CheckMoodStreak(emotion, now)...)
		unlocked = append(unlocked, b.CheckPerfectDay(needs, now)...)
		return unlocked, nil
	})
}

func (e *Engine) RecordPlayEnergy(ctx context.Context, energy float64) error {
	return e.CheckEnergyEfficiency(ctx, energy)
}

func (e *Engine) CheckBalancedStats(ctx context.Context, needs pet.Needs) error {
	return e.mutate(ctx, func(b *achievement.Board, now time.Time) ([]string, error) {
		return b.CheckBalancedStats(needs, now), nil
	})
}

func (e *Engine) CheckMoodStreak(ctx context.Context, emotion pet.Emotion) error {
	return e.mutate(ctx, func(b *achievement.Board, now time.Time) ([]string, error) {
		return b.CheckMoodStreak(emotion, now), nil
	})
}

func (e *Engine) CheckEnergyEfficiency(ctx context.Context, energy float64) error {
	return e.mutate(ctx, func(b *achievement.Board, now time.Time) ([]string, error) {
		return b.CheckEnergyEfficiency(energy, now), nil
	})
}

func (e *Engine) CheckPerfectDay(ctx context.Context, needs pet.Needs) error {
	return e.mutate(ctx, func(b *achievement.Board, now time.Time) ([]string, error) {
		return b.CheckPerfectDay(needs, now), nil
	})
}

func (e *Engine) CheckMilestones(ctx context.Context) error {
	return e.mutate(ctx, func(b *achievement.Board, now time.Time) ([]string, error) {
		return b.CheckMilestones(now), nil
	})
}

func (e *Engine) Unlock(ctx context.Context, id string) error {
	return e.mutate(ctx, func(b *achievement.Board, now time.Time) ([]string, error) {
		return b.Unlock(id, now)
	})
}

func (e *Engine) UpdateProgress(ctx context.Context, id string, progress int) error {
	return e.mutate(ctx, func(b *achievement.Board, now time.Time) ([]string, error) {
		return b.UpdateProgress(id, progress, now)
	})
}

// mutate runs fn against the board, reports unlocks and saves. A failing fn
// has changed nothing and nothing is saved.
func (e *Engine) mutate(ctx context.Context, fn func(*achievement.Board, time.Time) ([]string, error)) error {
	if !e.initialized {
		return e.lastErr.Set(ErrNotInitialized)
	}
	now := e.now()
	unlocked, err := fn(e.board, now)
	if err != nil {
		return e.lastErr.Set(err)
	}
	e.announce(ctx, unlocked, now)
	return e.lastErr.Set(e.save(ctx))
}

func (e *Engine) announce(ctx context.Context, ids []string, now time.Time) {
	if len(ids) == 0 {
		return
	}
	events := make([]ports.Event, 0, len(ids))
	for _, id := range ids {
		a, _ := e.board.Get(id)
		e.log().Info("achievement unlocked", "id", id, "name", a.Name, "level", a.Level)
		events = append(events, ports.Event{Type: ports.EventAchievementUnlocked, OccurredAt: now, Payload: map[string]any{
			"id":    id,
			"name":  a.Name,
			"level": string(a.Level),
		}})
	}
	if e.Journal == nil {
		return
	}
	if err := e.Journal.Append(ctx, events...); err != nil {
		e.log().Warn("journal append failed", "error", err)
	}
}

func (e *Engine) save(ctx context.Context) error {
	err := snapshot.Save(ctx, e.Store, ports.KeyAchievementsState, fromBoard(e.board))
	if err != nil {
		e.log().Warn("save achievements failed", "error", err)
	}
	return err
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Engine) log() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
