package needs

import (
	"context"
	"testing"
	"time"

	"pocketpet/internal/app/ports"
	"pocketpet/internal/domain/evolution"
	"pocketpet/internal/domain/pet"
)

type fixtures struct {
	clock        *fakeClock
	store        *fakeStore
	xp           *fakeExperience
	achievements *fakeAchievements
	items        *fakeItems
	coins        *fakeCoins
	food         *fakeFood
	metrics      *fakeMetrics
	journal      *fakeJournal
}

func newEngine(t *testing.T) (*Engine, *fixtures) {
	t.Helper()
	f := &fixtures{
		clock:        &fakeClock{now: t0},
		store:        &fakeStore{values: map[string][]byte{}},
		xp:           &fakeExperience{},
		achievements: &fakeAchievements{},
		items:        &fakeItems{},
		coins:        &fakeCoins{},
		food:         &fakeFood{},
		metrics:      &fakeMetrics{applied: map[pet.ActionType]int{}, noop: map[pet.ActionType]int{}, failed: map[pet.ActionType]int{}},
		journal:      &fakeJournal{},
	}
	e := &Engine{
		Store:        f.store,
		Experience:   f.xp,
		Achievements: f.achievements,
		Items:        f.items,
		Coins:        f.coins,
		Food:         f.food,
		Metrics:      f.metrics,
		Journal:      f.journal,
		Now:          f.clock.Now,
	}
	return e, f
}

func initialized(t *testing.T) (*Engine, *fixtures) {
	t.Helper()
	e, f := newEngine(t)
	if err := e.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return e, f
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeStore struct {
	values  map[string][]byte
	sets    int
	failSet error
}

var _ ports.StateStore = (*fakeStore)(nil)

func (s *fakeStore) Open(context.Context) error { return nil }

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value []byte) error {
	if s.failSet != nil {
		return s.failSet
	}
	s.sets++
	s.values[key] = value
	return nil
}

type xpAward struct {
	amount int
	path   evolution.Path
}

type fakeExperience struct{ awards []xpAward }

var _ ports.ExperienceSink = (*fakeExperience)(nil)

func (f *fakeExperience) AddExperience(_ context.Context, amount int, path evolution.Path) error {
	f.awards = append(f.awards, xpAward{amount, path})
	return nil
}

type fakeAchievements struct {
	interactions int
	snapshots    int
	energies     []float64
}

var _ ports.AchievementSink = (*fakeAchievements)(nil)

func (f *fakeAchievements) RecordInteraction(context.Context, time.Time) error {
	f.interactions++
	return nil
}

func (f *fakeAchievements) RecordSnapshot(context.Context, pet.Needs, pet.Emotion) error {
	f.snapshots++
	return nil
}

func (f *fakeAchievements) RecordPlayEnergy(_ context.Context, energy float64) error {
	f.energies = append(f.energies, energy)
	return nil
}

type fakeItems struct{ effects []pet.Effects }

var _ ports.EquippedItemSource = (*fakeItems)(nil)

func (f *fakeItems) EquippedEffects() []pet.Effects { return f.effects }

type fakeCoins struct{ total int }

var _ ports.CoinSink = (*fakeCoins)(nil)

func (f *fakeCoins) AddCoins(_ context.Context, amount int) error {
	f.total += amount
	return nil
}

type fakeFood struct {
	effects pet.Effects
	err     error
}

var _ ports.FoodSource = (*fakeFood)(nil)

func (f *fakeFood) UseFood(context.Context, string) (pet.Effects, error) {
	return f.effects, f.err
}

type fakeMetrics struct {
	applied, noop, failed map[pet.ActionType]int
}

var _ ports.ActionMetrics = (*fakeMetrics)(nil)

func (m *fakeMetrics) RecordApplied(a pet.ActionType) { m.applied[a]++ }
func (m *fakeMetrics) RecordNoop(a pet.ActionType) { m.noop[a]++ }
func (m *fakeMetrics) RecordFailure(a pet.ActionType) { m.failed[a]++ }

type fakeJournal struct{ events []ports.Event }

var _ ports.Journal = (*fakeJournal)(nil)

func (j *fakeJournal) Append(_ context.Context, events ...ports.Event) error {
	j.events = append(j.events, events...)
	return nil
}

func (j *fakeJournal) List(context.Context, int) ([]ports.Event, error) { return j.events, nil }
