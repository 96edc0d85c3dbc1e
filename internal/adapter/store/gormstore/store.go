package gormstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pocketpet/internal/app/ports"
)

type stateRecord struct {
	Key       string         `gorm:"column:key;type:text;primaryKey"`
	Value     datatypes.JSON `gorm:"column:value;type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

func (stateRecord) TableName() string { return "state_records" }

// Store is a ports.StateStore over a postgres state_records table.
// The table is created on the first successful Open.
type Store struct {
	db  *gorm.DB
	now func() time.Time

	mu       sync.Mutex
	migrated bool
}

var _ ports.StateStore = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.migrated {
		return nil
	}
	if err := s.db.WithContext(ctx).AutoMigrate(&stateRecord{}); err != nil {
		return fmt.Errorf("migrate state_records: %w", err)
	}
	s.migrated = true
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row stateRecord
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.Value), true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	row := stateRecord{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: s.now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}
