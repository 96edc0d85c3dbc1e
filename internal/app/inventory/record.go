package inventory

import items "pocketpet/internal/domain/inventory"

type itemRecord struct {
	ID       string `json:"id"`
	Owned    bool   `json:"owned"`
	Equipped bool   `json:"equipped"`
}

// record is the itemsState document. Catalog data (names, prices, effects)
// is not stored; only the per-profile flags are.
type record struct {
	Items []itemRecord `json:"items"`
	Coins int          `json:"coins"`
}

func fromInventory(inv *items.Inventory) record {
	rec := record{Coins: inv.Coins}
	for _, it := range inv.All() {
		rec.Items = append(rec.Items, itemRecord{ID: it.ID, Owned: it.Owned, Equipped: it.Equipped})
	}
	return rec
}

func (r record) toInventory() *items.Inventory {
	inv := items.New(r.Coins)
	for _, it := range r.Items {
		inv.Restore(it.ID, it.Owned, it.Equipped)
	}
	inv.Normalize()
	return inv
}
