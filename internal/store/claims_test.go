package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/najdeno/internal/catalog"
	"github.com/erazemk/najdeno/internal/db"
	"github.com/erazemk/najdeno/internal/model"
)

func TestCreateAndGetClaim(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	claim, err := s.CreateClaim(ctx, "item-1", "Umbrella", "Jana Novak", "jana@example.com", "", "It has my initials on the handle")
	if err != nil {
		t.Fatalf("CreateClaim: %v", err)
	}
	if claim.ID == "" {
		t.Error("expected store-assigned id")
	}
	if claim.Status != model.ClaimStatusPending {
		t.Errorf("expected status 'pending', got %q", claim.Status)
	}
	if claim.SubmittedOn.IsZero() {
		t.Error("expected store-assigned submitted_on")
	}
	if claim.ItemName != "Umbrella" {
		t.Errorf("expected denormalized item name, got %q", claim.ItemName)
	}
}

func TestListPendingClaimsForItem(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	c1, _ := s.CreateClaim(ctx, "item-1", "", "A", "a@example.com", "", "proof")
	s.CreateClaim(ctx, "item-2", "", "B", "b@example.com", "", "proof")
	c3, _ := s.CreateClaim(ctx, "item-1", "", "C", "c@example.com", "", "proof")
	s.UpdateClaimStatus(ctx, c3.ID, model.ClaimStatusRejected)

	pending, err := s.ListPendingClaimsForItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("ListPendingClaimsForItem: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != c1.ID {
		t.Errorf("expected only the pending claim for item-1, got %+v", pending)
	}
}

func TestUpdateAndDeleteClaim(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	claim, _ := s.CreateClaim(ctx, "item-1", "", "A", "a@example.com", "", "proof")

	if err := s.UpdateClaimStatus(ctx, claim.ID, model.ClaimStatusApproved); err != nil {
		t.Fatalf("UpdateClaimStatus: %v", err)
	}
	got, _ := s.GetClaim(ctx, claim.ID)
	if got.Status != model.ClaimStatusApproved {
		t.Errorf("expected status 'approved', got %q", got.Status)
	}

	if err := s.UpdateClaimStatus(ctx, "no-such-id", model.ClaimStatusRejected); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing claim, got %v", err)
	}

	if err := s.DeleteClaim(ctx, claim.ID); err != nil {
		t.Fatalf("DeleteClaim: %v", err)
	}
	got, _ = s.GetClaim(ctx, claim.ID)
	if got != nil {
		t.Errorf("expected claim gone after delete, got %+v", got)
	}
	if err := s.DeleteClaim(ctx, claim.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

// Claims deliberately survive item deletion; the denormalized name keeps
// them renderable.
func TestClaimSurvivesItemDeletion(t *testing.T) {
	s := New(db.NewTestDB(t))
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, "Wallet", "", "", nil, "")
	claim, _ := s.CreateClaim(ctx, item.ID, item.Name, "A", "a@example.com", "", "proof")

	if err := s.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	got, err := s.GetClaim(ctx, claim.ID)
	if err != nil {
		t.Fatalf("GetClaim: %v", err)
	}
	if got == nil {
		t.Fatal("expected claim to survive item deletion")
	}
	if got.ItemName != "Wallet" {
		t.Errorf("expected denormalized item name 'Wallet', got %q", got.ItemName)
	}
}

// Full approval flow through the engine against the real store.
func TestApproveClaimFlow(t *testing.T) {
	s := New(db.NewTestDB(t))
	engine := catalog.NewEngine(s)
	ctx := context.Background()

	item, _ := s.CreateItem(ctx, "Backpack", "", "", nil, "")
	s.UpdateItemStatus(ctx, item.ID, model.ItemStatusListed)

	c1, _ := s.CreateClaim(ctx, item.ID, item.Name, "A", "a@example.com", "", "proof")
	c2, _ := s.CreateClaim(ctx, item.ID, item.Name, "B", "b@example.com", "", "proof")

	if err := engine.ApproveClaim(ctx, c1.ID); err != nil {
		t.Fatalf("ApproveClaim: %v", err)
	}

	gotItem, _ := s.GetItem(ctx, item.ID)
	if gotItem.Status != model.ItemStatusClaimed {
		t.Errorf("expected item 'claimed', got %q", gotItem.Status)
	}
	got1, _ := s.GetClaim(ctx, c1.ID)
	if got1.Status != model.ClaimStatusApproved {
		t.Errorf("expected winner 'approved', got %q", got1.Status)
	}
	got2, _ := s.GetClaim(ctx, c2.ID)
	if got2.Status != model.ClaimStatusRejected {
		t.Errorf("expected rival 'rejected', got %q", got2.Status)
	}

	// A claim submitted after resolution cannot win the item.
	c3, _ := s.CreateClaim(ctx, item.ID, item.Name, "C", "c@example.com", "", "proof")
	if err := engine.ApproveClaim(ctx, c3.ID); !errors.Is(err, catalog.ErrConflict) {
		t.Errorf("expected ErrConflict for second approval, got %v", err)
	}
	got3, _ := s.GetClaim(ctx, c3.ID)
	if got3.Status != model.ClaimStatusPending {
		t.Errorf("conflict must leave the claim untouched, got %q", got3.Status)
	}
}
