package evolution

import (
	"context"
	"log/slog"
	"time"

	"pocketpet/internal/app/ports"
	"pocketpet/internal/app/shared/errlatch"
	"pocketpet/internal/app/shared/snapshot"
	evo "pocketpet/internal/domain/evolution"
	"pocketpet/internal/domain/faults"
)

var ErrNotInitialized = faults.New(faults.ErrNotInitialized, "evolution engine not initialized")

// Engine owns level, experience, path and stage, persisted under evolutionState.
type Engine struct {
	Store   ports.StateStore
	Journal ports.Journal
	Logger  *slog.Logger
	Now     func() time.Time

	state       evo.State
	initialized bool
	lastErr     errlatch.Latch
}

var _ ports.ExperienceSink = (*Engine)(nil)

func (e *Engine) Initialize(ctx context.Context) error {
	var rec record
	ok, err := snapshot.Load(ctx, e.Store, ports.KeyEvolutionState, &rec)
	if err != nil {
		e.log().Warn("load evolution state failed", "error", err)
		return e.lastErr.Set(err)
	}
	e.state = evo.NewState()
	if ok {
		e.state = rec.toState()
	}
	e.initialized = true
	return e.lastErr.Set(nil)
}

func (e *Engine) Initialized() bool { return e.initialized }

func (e *Engine) LastError() error { return e.lastErr.Err() }

func (e *Engine) State() (evo.State, error) {
	if !e.initialized {
		return evo.State{}, e.lastErr.Set(ErrNotInitialized)
	}
	return e.state, e.lastErr.Set(nil)
}

// ExperienceForNextLevel is the threshold for the current level.
func (e *Engine) ExperienceForNextLevel() int {
	return evo.ExperienceForNextLevel(e.state.Level)
}

// AddExperience credits an award and resolves every level-up it causes.
func (e *Engine) AddExperience(ctx context.Context, amount int, path evo.Path) error {
	if !e.initialized {
		return e.lastErr.Set(ErrNotInitialized)
	}
	now := e.now()
	prevLevel := e.state.Level
	next, out, err := evo.AddExperience(e.state, amount, path, now)
	if err != nil {
		return e.lastErr.Set(err)
	}
	e.state = next

	var events []ports.Event
	for i := 1; i <= out.LevelsGained; i++ {
		events = append(events, ports.Event{Type: ports.EventLevelUp, OccurredAt: now, Payload: map[string]any{
			"level": prevLevel + i,
		}})
	}
	if out.LevelsGained > 0 {
		e.log().Info("pet leveled up", "level", next.Level, "levels_gained", out.LevelsGained, "path", next.Path)
	}
	for _, stage := range out.Evolutions {
		e.log().Info("pet evolved", "stage", stage, "level", next.Level)
		events = append(events, ports.Event{Type: ports.EventStageEvolved, OccurredAt: now, Payload: map[string]any{
			"stage": string(stage),
		}})
	}
	e.emit(ctx, events)
	return e.lastErr.Set(e.save(ctx))
}

func (e *Engine) save(ctx context.Context) error {
	err := snapshot.Save(ctx, e.Store, ports.KeyEvolutionState, fromState(e.state))
	if err != nil {
		e.log().Warn("save evolution state failed", "error", err)
	}
	return err
}

func (e *Engine) emit(ctx context.Context, events []ports.Event) {
	if e.Journal == nil || len(events) == 0 {
		return
	}
	if err := e.Journal.Append(ctx, events...); err != nil {
		e.log().Warn("journal append failed", "error", err)
	}
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
