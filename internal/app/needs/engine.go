package needs

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pocketpet/internal/app/ports"
	"pocketpet/internal/app/shared/errlatch"
	"pocketpet/internal/app/shared/snapshot"
	"pocketpet/internal/domain/evolution"
	"pocketpet/internal/domain/faults"
	"pocketpet/internal/domain/pet"
)

var (
	ErrNotInitialized = faults.New(faults.ErrNotInitialized, "pet engine not initialized")
	ErrNoFoodSource   = faults.New(faults.ErrNotInitialized, "pet engine has no food source")
	ErrEmptyName      = faults.New(faults.ErrInvalidInput, "pet name must not be empty")
)

// PlayCoins is credited to the wallet for every applied play.
const PlayCoins = 5

type award struct {
	amount int
	path   evolution.Path
}

var actionAwards = map[pet.ActionType]award{
	pet.ActionFeed:  {amount: 10, path: evolution.PathSocial},
	pet.ActionPlay:  {amount: 15, path: evolution.PathAthletic},
	pet.ActionSleep: {amount: 5, path: evolution.PathBalanced},
	pet.ActionHeal:  {amount: 10, path: evolution.PathIntellectual},
}

// Result is the outcome of a care action. Applied is false when a guard
// turned the action into a no-op.
type Result struct {
	Applied bool      `json:"applied"`
	State   pet.State `json:"state"`
}

// Engine owns the pet's needs and emotion and persists them under petState.
// Sinks are optional; a nil sink is skipped. Callers serialize access.
type Engine struct {
	Store        ports.StateStore
	Experience   ports.ExperienceSink
	Achievements ports.AchievementSink
	Items        ports.EquippedItemSource
	Coins        ports.CoinSink
	Food         ports.FoodSource
	Metrics      ports.ActionMetrics
	Journal      ports.Journal
	Logger       *slog.Logger
	Now          func() time.Time
	PetName      string

	state       pet.State
	initialized bool
	lastErr     errlatch.Latch
}

// Initialize loads petState, or creates a fresh pet when the key is absent.
func (e *Engine) Initialize(ctx context.Context) error {
	var rec record
	ok, err := snapshot.Load(ctx, e.Store, ports.KeyPetState, &rec)
	if err != nil {
		e.log().Warn("load pet state failed", "error", err)
		return e.lastErr.Set(err)
	}
	now := e.now()
	if ok {
		e.state = rec.toState(now)
	} else {
		e.state = pet.NewState(e.PetName, now)
	}
	e.initialized = true
	return e.lastErr.Set(nil)
}

func (e *Engine) Initialized() bool { return e.initialized }

func (e *Engine) LastError() error { return e.lastErr.Err() }

// State returns the in-memory pet without settling it.
func (e *Engine) State() (pet.State, error) {
	if !e.initialized {
		return pet.State{}, e.lastErr.Set(ErrNotInitialized)
	}
	return e.state, e.lastErr.Set(nil)
}

// Perform runs one care action: guard, direct deltas, settle at now, persist,
// then the experience, coin and achievement sinks. Every step runs even when
// an earlier one failed; the failures are joined.
func (e *Engine) Perform(ctx context.Context, action pet.ActionType) (Result, error) {
	if !e.initialized {
		return Result{}, e.lastErr.Set(ErrNotInitialized)
	}
	next, applied, err := pet.ApplyAction(e.state, action)
	if err != nil {
		e.recordFailure(action)
		return Result{State: e.state}, e.lastErr.Set(err)
	}
	if !applied {
		if e.Metrics != nil {
			e.Metrics.RecordNoop(action)
		}
		return Result{State: e.state}, e.lastErr.Set(nil)
	}

	now := e.now()
	// The energy tracker sees the pet as of now, before the play's own cost.
	startEnergy := pet.ApplyDecay(e.state, now).Needs.Energy
	e.commit(ctx, pet.Settle(next, now), now)

	errs := []error{e.save(ctx)}
	if a, ok := actionAwards[action]; ok && e.Experience != nil {
		errs = append(errs, e.Experience.AddExperience(ctx, a.amount, a.path))
	}
	if action == pet.ActionPlay && e.Coins != nil {
		errs = append(errs, e.Coins.AddCoins(ctx, PlayCoins))
	}
	if e.Achievements != nil {
		errs = append(errs, e.Achievements.RecordInteraction(ctx, now))
		if action == pet.ActionPlay {
			// Play always costs energy, so the tracker sees the level play started from.
			errs = append(errs, e.Achievements.RecordPlayEnergy(ctx, startEnergy))
		}
		errs = append(errs, e.Achievements.RecordSnapshot(ctx, e.state.Needs, e.state.Emotion))
	}

	err = errors.Join(errs...)
	if err != nil {
		e.recordFailure(action)
	} else if e.Metrics != nil {
		e.Metrics.RecordApplied(action)
	}
	return Result{Applied: true, State: e.state}, e.lastErr.Set(err)
}

// Eat consumes a food item from the food source and applies its effects.
// A food source that consumed the item but failed to persist still yields
// effects; they are applied and the failure is reported.
func (e *Engine) Eat(ctx context.Context, itemID string) (pet.State, error) {
	if !e.initialized {
		return pet.State{}, e.lastErr.Set(ErrNotInitialized)
	}
	if e.Food == nil {
		return e.state, e.lastErr.Set(ErrNoFoodSource)
	}
	effects, useErr := e.Food.UseFood(ctx, itemID)
	if useErr != nil && !errors.Is(useErr, faults.ErrPersistence) {
		return e.state, e.lastErr.Set(useErr)
	}

	now := e.now()
	next := e.state
	next.Needs = pet.ApplyEffects(next.Needs, effects)
	e.commit(ctx, pet.Settle(next, now), now)
	e.emit(ctx, ports.Event{Type: ports.EventFoodEaten, OccurredAt: now, Payload: map[string]any{
		"item_id": itemID,
		"effects": effects,
	}})

	errs := []error{useErr, e.save(ctx)}
	if e.Achievements != nil {
		errs = append(errs, e.Achievements.RecordSnapshot(ctx, e.state.Needs, e.state.Emotion))
	}
	return e.state, e.lastErr.Set(errors.Join(errs...))
}

// Tick advances the pet to now, adds the effects of equipped items and feeds
// the result to the achievement trackers.
func (e *Engine) Tick(ctx context.Context) (pet.State, error) {
	if !e.initialized {
		return pet.State{}, e.lastErr.Set(ErrNotInitialized)
	}
	now := e.now()
	next := pet.Settle(e.state, now)
	if e.Items != nil {
		next.Needs = pet.ApplyEquippedEffects(next.Needs, e.Items.EquippedEffects())
		next.Emotion = pet.Classify(next.Needs)
	}
	e.commit(ctx, next, now)
	e.log().Debug("pet tick",
		"hunger", e.state.Needs.Hunger,
		"happiness", e.state.Needs.Happiness,
		"energy", e.state.Needs.Energy,
		"health", e.state.Needs.Health,
		"emotion", e.state.Emotion,
	)

	errs := []error{e.save(ctx)}
	if e.Achievements != nil {
		errs = append(errs, e.Achievements.RecordSnapshot(ctx, e.state.Needs, e.state.Emotion))
	}
	return e.state, e.lastErr.Set(errors.Join(errs...))
}

func (e *Engine) Rename(ctx context.Context, name string) (pet.State, error) {
	if !e.initialized {
		return pet.State{}, e.lastErr.Set(ErrNotInitialized)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return e.state, e.lastErr.Set(ErrEmptyName)
	}
	e.state.Name = name
	return e.state, e.lastErr.Set(e.save(ctx))
}

func (e *Engine) commit(ctx context.Context, next pet.State, now time.Time) {
	prev := e.state.Emotion
	e.state = next
	if next.Emotion != prev {
		e.emit(ctx, ports.Event{Type: ports.EventEmotionChanged, OccurredAt: now, Payload: map[string]any{
			"from": string(prev),
			"to":   string(next.Emotion),
		}})
	}
}

func (e *Engine) save(ctx context.Context) error {
	err := snapshot.Save(ctx, e.Store, ports.KeyPetState, fromState(e.state))
	if err != nil {
		e.log().Warn("save pet state failed", "error", err)
	}
	return err
}

func (e *Engine) emit(ctx context.Context, evt ports.Event) {
	if e.Journal == nil {
		return
	}
	if err := e.Journal.Append(ctx, evt); err != nil {
		e.log().Warn("journal append failed", "type", evt.Type, "error", err)
	}
}

func (e *Engine) recordFailure(action pet.ActionType) {
	if e.Metrics != nil {
		e.Metrics.RecordFailure(action)
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
