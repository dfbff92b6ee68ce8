package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/erazemk/najdeno/internal/model"
)

// Snapshot is a point-in-time read projection of the whole catalog.
// It is owned by the caller and never updated in place: after any
// mutation, reload before displaying again. Concurrent reads of a stale
// snapshot are fine; it is never a source of truth.
type Snapshot struct {
	Items    []model.Item
	Claims   []model.Claim
	LoadedAt time.Time
}

// LoadSnapshot reads all items (newest first) and all claims.
func LoadSnapshot(ctx context.Context, s Store) (*Snapshot, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}

	claims, err := s.ListClaims(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading claims: %w", err)
	}

	return &Snapshot{Items: items, Claims: claims, LoadedAt: time.Now()}, nil
}
