package snapshot

import (
	"context"
	"encoding/json"

	"pocketpet/internal/app/ports"
	"pocketpet/internal/domain/faults"
)

// Load opens the store and decodes the value under key into v. A missing key
// reports false with no error.
func Load(ctx context.Context, store ports.StateStore, key string, v any) (bool, error) {
	if err := store.Open(ctx); err != nil {
		return false, faults.Persistence("open store", err)
	}
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, faults.Persistence("get "+key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, faults.Persistence("decode "+key, err)
	}
	return true, nil
}

func Save(ctx context.Context, store ports.StateStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return faults.Persistence("encode "+key, err)
	}
	if err := store.Open(ctx); err != nil {
		return faults.Persistence("open store", err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return faults.Persistence("set "+key, err)
	}
	return nil
}
