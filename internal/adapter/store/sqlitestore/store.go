// Package sqlitestore persists state documents in a single SQLite table
// through the pure Go modernc driver.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"pocketpet/internal/app/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS state_records (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// Store is a ports.StateStore backed by SQLite.
type Store struct {
	conn *sqlx.DB
	now  func() time.Time
}

var _ ports.StateStore = (*Store)(nil)

// Open opens or creates the database file at path and ensures the schema.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One writer keeps WAL mode happy and avoids SQLITE_BUSY between engines.
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn, now: time.Now}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Open checks the connection. It is safe to call before every operation.
func (s *Store) Open(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.conn.GetContext(ctx, &value, "SELECT value FROM state_records WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx, `
INSERT INTO state_records (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Record is one stored document with its last write time.
type Record struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt string `db:"updated_at"`
}

// Records lists every stored document ordered by key.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	var out []Record
	if err := s.conn.SelectContext(ctx, &out, "SELECT key, value, updated_at FROM state_records ORDER BY key"); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}
