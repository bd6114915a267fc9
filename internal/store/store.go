// Package store persists the application-state snapshot as one JSON blob
// under a fixed, versioned key. Bumping the key abandons old data; there is
// no migration logic.
package store

import (
	"context"
	"errors"

	"github.com/calorix/calorix/internal/models"
)

// SnapshotKey is the versioned storage key. Schema changes bump the suffix
// and start fresh.
const SnapshotKey = "calorix:state:v7"

// ErrNotFound is returned by Load when no snapshot has been saved yet.
var ErrNotFound = errors.New("state snapshot not found")

// StateStore loads and saves the full state snapshot. Save replaces the
// previous snapshot wholesale.
type StateStore interface {
	Load(ctx context.Context) (*models.AppState, error)
	Save(ctx context.Context, state *models.AppState) error
}
