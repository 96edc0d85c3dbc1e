// Package profile composes the four engines of one saved pet and serializes
// every call into them.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"pocketpet/internal/app/achievements"
	"pocketpet/internal/app/evolution"
	"pocketpet/internal/app/inventory"
	"pocketpet/internal/app/needs"
	"pocketpet/internal/app/ports"
	"pocketpet/internal/app/scheduler"
	"pocketpet/internal/app/status"
	items "pocketpet/internal/domain/inventory"
	"pocketpet/internal/domain/pet"
)

type Options struct {
	Store        ports.StateStore
	Journal      ports.Journal
	Metrics      ports.ActionMetrics
	Logger       *slog.Logger
	Now          func() time.Time
	PetName      string
	StarterCoins int
	TickInterval time.Duration
	NewTicker    func(time.Duration) scheduler.Ticker
}

// Profile is the single active pet of a process. One mutex makes every
// operation run to completion before the next one starts, ticks included.
type Profile struct {
	mu sync.Mutex

	pet   *needs.Engine
	evo   *evolution.Engine
	ach   *achievements.Engine
	inv   *inventory.Engine
	sched *scheduler.Scheduler

	status   status.UseCase
	journal  ports.Journal
	interval time.Duration
	logger   *slog.Logger
}

func New(opts Options) *Profile {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = scheduler.DefaultInterval
	}

	p := &Profile{journal: opts.Journal, interval: interval, logger: logger}
	p.evo = &evolution.Engine{Store: opts.Store, Journal: opts.Journal, Logger: logger.With("engine", "evolution"), Now: now}
	p.ach = &achievements.Engine{Store: opts.Store, Journal: opts.Journal, Logger: logger.With("engine", "achievements"), Now: now}
	p.inv = &inventory.Engine{Store: opts.Store, Journal: opts.Journal, Logger: logger.With("engine", "inventory"), Now: now, StarterCoins: opts.StarterCoins}
	p.pet = &needs.Engine{
		Store:        opts.Store,
		Experience:   p.evo,
		Achievements: p.ach,
		Items:        p.inv,
		Coins:        p.inv,
		Food:         p.inv,
		Metrics:      opts.Metrics,
		Journal:      opts.Journal,
		Logger:       logger.With("engine", "pet"),
		Now:          now,
		PetName:      opts.PetName,
	}
	p.status = status.UseCase{Pet: p.pet, Evolution: p.evo, Achievements: p.ach, Inventory: p.inv}
	p.sched = &scheduler.Scheduler{
		Interval:  interval,
		NewTicker: opts.NewTicker,
		Logger:    logger,
		OnTick: func(ctx context.Context) {
			if _, err := p.Tick(ctx); err != nil {
				logger.Warn("tick failed", "error", err)
			}
		},
	}
	return p
}

// Initialize loads every engine independently. A failing engine does not
// stop the others; the failures are joined.
func (p *Profile) Initialize(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(
		p.pet.Initialize(ctx),
		p.evo.Initialize(ctx),
		p.ach.Initialize(ctx),
		p.inv.Initialize(ctx),
	)
}

// StartLifecycle starts (or restarts) the tick timer and returns its disposer.
func (p *Profile) StartLifecycle(ctx context.Context) (stop func()) {
	return p.sched.Start(ctx)
}

func (p *Profile) TickInterval() time.Duration { return p.interval }

func (p *Profile) Tick(ctx context.Context) (pet.State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pet.Tick(ctx)
}

// StatusView is the read model plus the latched error of every engine, as
// they stood before the read.
type StatusView struct {
	status.Response
	LastErrors map[string]string `json:"last_errors,omitempty"`
}

func (p *Profile) Status(ctx context.Context) (StatusView, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	latched := p.lastErrors()
	resp, err := p.status.Execute(ctx, status.Request{Horizon: p.interval})
	if err != nil {
		return StatusView{}, err
	}
	return StatusView{Response: resp, LastErrors: latched}, nil
}

func (p *Profile) Perform(ctx context.Context, action pet.ActionType) (needs.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pet.Perform(ctx, action)
}

func (p *Profile) Eat(ctx context.Context, itemID string) (pet.State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pet.Eat(ctx, itemID)
}

func (p *Profile) Rename(ctx context.Context, name string) (pet.State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pet.Rename(ctx, name)
}

func (p *Profile) Buy(ctx context.Context, itemID string) (items.Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inv.Buy(ctx, itemID)
}

func (p *Profile) ToggleEquip(ctx context.Context, itemID string) (items.Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inv.ToggleEquip(ctx, itemID)
}

func (p *Profile) Inventory() (inventory.Summary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inv.Summary()
}

func (p *Profile) ItemsByType(t items.ItemType) ([]items.Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inv.ByType(t)
}

func (p *Profile) Achievements() (achievements.Summary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ach.Summary()
}

// Events lists recent journal entries, newest first. A profile built without
// a journal has none.
func (p *Profile) Events(ctx context.Context, limit int) ([]ports.Event, error) {
	if p.journal == nil {
		return []ports.Event{}, nil
	}
	return p.journal.List(ctx, limit)
}

func (p *Profile) LastErrors() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErrors()
}

func (p *Profile) lastErrors() map[string]string {
	out := map[string]string{}
	for name, err := range map[string]error{
		"pet":          p.pet.LastError(),
		"evolution":    p.evo.LastError(),
		"achievements": p.ach.LastError(),
		"inventory":    p.inv.LastError(),
	} {
		if err != nil {
			out[name] = err.Error()
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
