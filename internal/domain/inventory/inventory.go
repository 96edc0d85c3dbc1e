package inventory

import (
	"pocketpet/internal/domain/faults"
	"pocketpet/internal/domain/pet"
)

var (
	ErrItemNotFound      = faults.New(faults.ErrNotFound, "item not found")
	ErrAlreadyOwned      = faults.New(faults.ErrStateConflict, "item already owned")
	ErrNotOwned          = faults.New(faults.ErrStateConflict, "item not owned")
	ErrWrongType         = faults.New(faults.ErrStateConflict, "item is not food")
	ErrNotEquippable     = faults.New(faults.ErrStateConflict, "item cannot be equipped")
	ErrInsufficientFunds = faults.New(faults.ErrStateConflict, "not enough coins")
	ErrNonPositiveAmount = faults.New(faults.ErrInvalidInput, "amount must be positive")
)

type Item struct {
	Definition
	Owned    bool `json:"owned"`
	Equipped bool `json:"equipped"`
}

// Inventory tracks ownership and equip slots over the catalog, plus the wallet.
// At most one owned item per type is equipped at any time.
type Inventory struct {
	items []Item
	index map[string]int

	Coins int
}

func New(coins int) *Inventory {
	inv := &Inventory{index: make(map[string]int, len(catalog)), Coins: max(0, coins)}
	for i, d := range catalog {
		inv.items = append(inv.items, Item{Definition: d})
		inv.index[d.ID] = i
	}
	return inv
}

// Restore copies saved flags onto a catalog item; unknown ids are ignored.
// Call Normalize once every entry has been restored.
func (inv *Inventory) Restore(id string, owned, equipped bool) bool {
	i, ok := inv.index[id]
	if !ok {
		return false
	}
	inv.items[i].Owned = owned
	inv.items[i].Equipped = equipped
	return true
}

// Normalize repairs loaded flags: equipped requires an owned equippable item
// and only the first equipped item per type keeps its slot.
func (inv *Inventory) Normalize() {
	inv.Coins = max(0, inv.Coins)
	taken := map[ItemType]bool{}
	for i := range inv.items {
		it := &inv.items[i]
		if !it.Equipped {
			continue
		}
		if !it.Owned || !it.Type.Equippable() || taken[it.Type] {
			it.Equipped = false
			continue
		}
		taken[it.Type] = true
	}
}

func (inv *Inventory) Get(id string) (Item, bool) {
	i, ok := inv.index[id]
	if !ok {
		return Item{}, false
	}
	return inv.items[i], true
}

func (inv *Inventory) All() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) ByType(t ItemType) []Item {
	return inv.filter(func(it Item) bool { return it.Type == t })
}

func (inv *Inventory) Owned() []Item {
	return inv.filter(func(it Item) bool { return it.Owned })
}

func (inv *Inventory) Equipped() []Item {
	return inv.filter(func(it Item) bool { return it.Equipped })
}

// EquippedEffects lists the effects of equipped items in catalog order.
func (inv *Inventory) EquippedEffects() []pet.Effects {
	var out []pet.Effects
	for _, it := range inv.items {
		if it.Equipped && !it.Effects.IsZero() {
			out = append(out, it.Effects)
		}
	}
	return out
}

func (inv *Inventory) Buy(id string) (Item, error) {
	i, ok := inv.index[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	it := &inv.items[i]
	if it.Owned {
		return *it, ErrAlreadyOwned
	}
	if inv.Coins < it.Price {
		return *it, ErrInsufficientFunds
	}
	inv.Coins -= it.Price
	it.Owned = true
	return *it, nil
}

// UseFood consumes an owned food item and returns its effects for the caller
// to apply. The item has to be bought again before the next use.
func (inv *Inventory) UseFood(id string) (pet.Effects, error) {
	i, ok := inv.index[id]
	if !ok {
		return pet.Effects{}, ErrItemNotFound
	}
	it := &inv.items[i]
	if !it.Owned {
		return pet.Effects{}, ErrNotOwned
	}
	if it.Type != TypeFood {
		return pet.Effects{}, ErrWrongType
	}
	it.Owned = false
	return it.Effects, nil
}

// ToggleEquip flips the equip flag. Equipping clears every other item of the same type first.
func (inv *Inventory) ToggleEquip(id string) (Item, error) {
	i, ok := inv.index[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	it := &inv.items[i]
	if !it.Owned {
		return *it, ErrNotOwned
	}
	if !it.Type.Equippable() {
		return *it, ErrNotEquippable
	}
	if !it.Equipped {
		for j := range inv.items {
			if j != i && inv.items[j].Type == it.Type {
				inv.items[j].Equipped = false
			}
		}
	}
	it.Equipped = !it.Equipped
	return *it, nil
}

func (inv *Inventory) AddCoins(amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	inv.Coins += amount
	return nil
}

func (inv *Inventory) filter(keep func(Item) bool) []Item {
	var out []Item
	for _, it := range inv.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
