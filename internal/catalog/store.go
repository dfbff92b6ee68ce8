package catalog

import (
	"context"

	"github.com/erazemk/najdeno/internal/model"
)

// Store is the persistence contract the engine and query service consume.
// The store owns all durable state; the engine holds none of its own.
//
// Point reads return (nil, nil) when the id does not exist. Updates and
// deletes on a missing id return ErrNotFound. Inserts assign the id and
// the creation timestamp server-side.
type Store interface {
	GetItem(ctx context.Context, id string) (*model.Item, error)
	// ListItems returns all items sorted by date found, newest first.
	ListItems(ctx context.Context) ([]model.Item, error)
	UpdateItemStatus(ctx context.Context, id, status string) error
	DeleteItem(ctx context.Context, id string) error

	CreateClaim(ctx context.Context, itemID, itemName, claimer, email, phone, proof string) (*model.Claim, error)
	GetClaim(ctx context.Context, id string) (*model.Claim, error)
	ListClaims(ctx context.Context) ([]model.Claim, error)
	ListPendingClaimsForItem(ctx context.Context, itemID string) ([]model.Claim, error)
	UpdateClaimStatus(ctx context.Context, id, status string) error
	DeleteClaim(ctx context.Context, id string) error
}
