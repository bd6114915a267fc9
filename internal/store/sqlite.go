package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/calorix/calorix/internal/models"
)

// Snapshot is the single-row table holding the serialized state.
type Snapshot struct {
	Key       string    `gorm:"primarykey;size:64"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

// SQLiteStore keeps the snapshot in a local SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

var _ StateStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database at path and
// migrates the snapshot table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads and decodes the snapshot under the versioned key.
func (s *SQLiteStore) Load(ctx context.Context) (*models.AppState, error) {
	var row Snapshot
	err := s.db.WithContext(ctx).First(&row, "key = ?", SnapshotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal(row.Data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &state, nil
}

// Save serializes the state and upserts it under the versioned key.
func (s *SQLiteStore) Save(ctx context.Context, state *models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	row := Snapshot{Key: SnapshotKey, Data: data}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
