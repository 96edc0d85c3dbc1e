package inventory

import (
	"context"
	"log/slog"
	"time"

	"pocketpet/internal/app/ports"
	"pocketpet/internal/app/shared/errlatch"
	"pocketpet/internal/app/shared/snapshot"
	"pocketpet/internal/domain/faults"
	items "pocketpet/internal/domain/inventory"
	"pocketpet/internal/domain/pet"
)

var ErrNotInitialized = faults.New(faults.ErrNotInitialized, "inventory not initialized")

// DefaultStarterCoins is the wallet of a profile that has never saved itemsState.
const DefaultStarterCoins = 5

// Engine owns item ownership, equip slots and the wallet, persisted under itemsState.
type Engine struct {
	Store        ports.StateStore
	Journal      ports.Journal
	Logger       *slog.Logger
	Now          func() time.Time
	StarterCoins int

	inv         *items.Inventory
	initialized bool
	lastErr     errlatch.Latch
}

var (
	_ ports.EquippedItemSource = (*Engine)(nil)
	_ ports.CoinSink           = (*Engine)(nil)
	_ ports.FoodSource         = (*Engine)(nil)
)

func (e *Engine) Initialize(ctx context.Context) error {
	var rec record
	ok, err := snapshot.Load(ctx, e.Store, ports.KeyItemsState, &rec)
	if err != nil {
		e.log().Warn("load items failed", "error", err)
		return e.lastErr.Set(err)
	}
	if ok {
		e.inv = rec.toInventory()
	} else {
		e.inv = items.New(e.StarterCoins)
	}
	e.initialized = true
	return e.lastErr.Set(nil)
}

func (e *Engine) Initialized() bool { return e.initialized }

func (e *Engine) LastError() error { return e.lastErr.Err() }

// Summary is a read-only copy of the inventory.
type Summary struct {
	Items    []items.Item `json:"items"`
	Equipped []string     `json:"equipped"`
	Coins    int          `json:"coins"`
}

func (e *Engine) Summary() (Summary, error) {
	if !e.initialized {
		return Summary{}, e.lastErr.Set(ErrNotInitialized)
	}
	out := Summary{Items: e.inv.All(), Coins: e.inv.Coins, Equipped: []string{}}
	for _, it := range e.inv.Equipped() {
		out.Equipped = append(out.Equipped, it.ID)
	}
	return out, e.lastErr.Set(nil)
}

func (e *Engine) ByType(t items.ItemType) ([]items.Item, error) {
	if !e.initialized {
		return nil, e.lastErr.Set(ErrNotInitialized)
	}
	return e.inv.ByType(t), e.lastErr.Set(nil)
}

func (e *Engine) Owned() ([]items.Item, error) {
	if !e.initialized {
		return nil, e.lastErr.Set(ErrNotInitialized)
	}
	return e.inv.Owned(), e.lastErr.Set(nil)
}

// EquippedEffects is a read-only query; an uninitialized inventory has nothing equipped.
func (e *Engine) EquippedEffects() []pet.Effects {
	if !e.initialized {
		return nil
	}
	return e.inv.EquippedEffects()
}

func (e *Engine) Buy(ctx context.Context, id string) (items.Item, error) {
	if !e.initialized {
		return items.Item{}, e.lastErr.Set(ErrNotInitialized)
	}
	it, err := e.inv.Buy(id)
	if err != nil {
		return it, e.lastErr.Set(err)
	}
	now := e.now()
	e.log().Info("item bought", "id", it.ID, "price", it.Price, "coins", e.inv.Coins)
	e.emit(ctx, ports.Event{Type: ports.EventItemBought, OccurredAt: now, Payload: map[string]any{
		"item_id": it.ID,
		"price":   it.Price,
		"coins":   e.inv.Coins,
	}})
	return it, e.lastErr.Set(e.save(ctx))
}

// UseFood consumes the item. When only the save fails the effects are still
// returned alongside the error, since the item is already gone in memory.
func (e *Engine) UseFood(ctx context.Context, id string) (pet.Effects, error) {
	if !e.initialized {
		return pet.Effects{}, e.lastErr.Set(ErrNotInitialized)
	}
	effects, err := e.inv.UseFood(id)
	if err != nil {
		return pet.Effects{}, e.lastErr.Set(err)
	}
	return effects, e.lastErr.Set(e.save(ctx))
}

func (e *Engine) ToggleEquip(ctx context.Context, id string) (items.Item, error) {
	if !e.initialized {
		return items.Item{}, e.lastErr.Set(ErrNotInitialized)
	}
	it, err := e.inv.ToggleEquip(id)
	if err != nil {
		return it, e.lastErr.Set(err)
	}
	evt := ports.EventItemUnequipped
	if it.Equipped {
		evt = ports.EventItemEquipped
	}
	e.emit(ctx, ports.Event{Type: evt, OccurredAt: e.now(), Payload: map[string]any{
		"item_id": it.ID,
		"type":    string(it.Type),
	}})
	return it, e.lastErr.Set(e.save(ctx))
}

func (e *Engine) AddCoins(ctx context.Context, amount int) error {
	if !e.initialized {
		return e.lastErr.Set(ErrNotInitialized)
	}
	if err := e.inv.AddCoins(amount); err != nil {
		return e.lastErr.Set(err)
	}
	return e.lastErr.Set(e.save(ctx))
}

func (e *Engine) save(ctx context.Context) error {
	err := snapshot.Save(ctx, e.Store, ports.KeyItemsState, fromInventory(e.inv))
	if err != nil {
		e.log().Warn("save items failed", "error", err)
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
