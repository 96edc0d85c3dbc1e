package memory

import (
	"context"
	"sort"
	"testing"
)

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()
	v, ok, err := s.Get(context.Background(), "petState")
	if err != nil || ok || v != nil {
		t.Fatalf("expected miss, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestStore_SetCopiesValue(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	buf := []byte(`{"coins":5}`)
	if err := s.Set(ctx, "itemsState", buf); err != nil {
		t.Fatalf("set: %v", err)
	}
	buf[2] = 'X'

	got, ok, err := s.Get(ctx, "itemsState")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"coins":5}` {
		t.Fatalf("stored value aliased caller buffer: %s", got)
	}
	got[0] = '['
	again, _, _ := s.Get(ctx, "itemsState")
	if string(again) != `{"coins":5}` {
		t.Fatalf("returned value aliased store buffer: %s", again)
	}
}

func TestStore_OpenIsIdempotent(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		if err := s.Open(context.Background()); err != nil {
			t.Fatalf("open: %v", err)
		}
	}
	if s.Opens() != 3 {
		t.Fatalf("opens = %d, want 3", s.Opens())
	}
}

func TestStore_SeedAndKeys(t *testing.T) {
	s := NewStore()
	s.Seed("b", []byte("1"))
	s.Seed("a", []byte("2"))
	keys := s.Keys()
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys = %v", keys)
	}
}
