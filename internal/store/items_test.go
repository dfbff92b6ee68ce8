package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/najdeno/internal/catalog"
	"github.com/erazemk/najdeno/internal/db"
	"github.com/erazemk/najdeno/internal/model"
)

func TestCreateAndGetItem(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	item, err := s.CreateItem(ctx, "Umbrella", "Black umbrella", "Main hall", []string{"accessories"}, "")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID == "" {
		t.Error("expected store-assigned id")
	}
	if item.Status != model.ItemStatusPending {
		t.Errorf("expected status 'pending', got %q", item.Status)
	}
	if item.DateFound.IsZero() {
		t.Error("expected store-assigned date_found")
	}
	if len(item.Tags) != 1 || item.Tags[0] != "accessories" {
		t.Errorf("expected tags [accessories], got %v", item.Tags)
	}

	got, err := s.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil || got.Name != "Umbrella" {
		t.Errorf("expected to read back 'Umbrella', got %+v", got)
	}
}

func TestGetItemMissing(t *testing.T) {
	s := New(db.NewTestDB(t))

	item, err := s.GetItem(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item != nil {
		t.Errorf("expected nil for missing item, got %+v", item)
	}
}

func TestListItemsNewestFirst(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	older, _ := s.CreateItem(ctx, "Older", "", "", nil, "")
	newer, _ := s.CreateItem(ctx, "Newer", "", "", nil, "")

	// CURRENT_TIMESTAMP has second resolution, so separate the rows by hand.
	if _, err := s.db.ExecContext(ctx,
		`UPDATE items SET date_found = datetime('now', '-1 day') WHERE id = ?`, older.ID,
	); err != nil {
		t.Fatalf("backdating item: %v", err)
	}

	items, err := s.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != newer.ID || items[1].ID != older.ID {
		t.Errorf("expected newest first, got [%s %s]", items[0].Name, items[1].Name)
	}
}

func TestUpdateItemStatus(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, "Keys", "", "", nil, "")

	if err := s.UpdateItemStatus(ctx, item.ID, model.ItemStatusListed); err != nil {
		t.Fatalf("UpdateItemStatus: %v", err)
	}
	got, _ := s.GetItem(ctx, item.ID)
	if got.Status != model.ItemStatusListed {
		t.Errorf("expected status 'listed', got %q", got.Status)
	}

	// Same status again is a no-op, not an error.
	if err := s.UpdateItemStatus(ctx, item.ID, model.ItemStatusListed); err != nil {
		t.Errorf("repeated UpdateItemStatus: %v", err)
	}

	if err := s.UpdateItemStatus(ctx, "no-such-id", model.ItemStatusListed); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing item, got %v", err)
	}
}

func TestDeleteItemIsPermanent(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, "Scarf", "", "", nil, "")

	if err := s.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	got, _ := s.GetItem(ctx, item.ID)
	if got != nil {
		t.Errorf("expected item gone after delete, got %+v", got)
	}

	if err := s.DeleteItem(ctx, item.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestDecodeTagsTolerant(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, "Glove", "", "", nil, "")

	// Simulate a record written without tags.
	if _, err := s.db.ExecContext(ctx, `UPDATE items SET tags = '' WHERE id = ?`, item.ID); err != nil {
		t.Fatalf("clearing tags: %v", err)
	}

	got, err := s.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Errorf("expected empty tags, got %v", got.Tags)
	}
}
