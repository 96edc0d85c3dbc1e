package gormstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("PETSIM_DB_DSN")
	if dsn == "" {
		t.Skip("PETSIM_DB_DSN is required for integration test")
	}
	return dsn
}

func TestStore_RoundTrip(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	store := NewStore(db)
	if err := store.Open(ctx); err != nil {
		t.Fatalf("open store: %v", err)
	}
	const key = "it-petState"
	_ = db.Exec("DELETE FROM state_records WHERE key = ?", key).Error

	if _, ok, err := store.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, key, []byte(`{"name":"Mochi","hunger":80}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, key, []byte(`{"name":"Mochi","hunger":60}`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	// jsonb does not preserve formatting, compare decoded values.
	var got struct {
		Name   string  `json:"name"`
		Hunger float64 `json:"hunger"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Mochi" || got.Hunger != 60 {
		t.Fatalf("got %+v", got)
	}
}

func TestApplyMigrations_SkipsApplied(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	dir := t.TempDir()
	sql := "CREATE TABLE IF NOT EXISTS it_migration_probe (id INT PRIMARY KEY);"
	if err := os.WriteFile(filepath.Join(dir, "9001_it_probe.sql"), []byte(sql), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	_ = db.Exec("DELETE FROM schema_migrations WHERE version = ?", "9001_it_probe").Error

	first, err := ApplyMigrations(ctx, db, dir)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(first) != 1 || first[0] != "9001_it_probe" {
		t.Fatalf("first run applied %v", first)
	}
	second, err := ApplyMigrations(ctx, db, dir)
	if err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second run applied %v", second)
	}
}
