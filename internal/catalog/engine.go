// Package catalog implements the moderation core of the lost-and-found
// service: the item and claim state machines, the claim-approval
// transaction, and the query functions that project the stored catalog
// into visitor and admin views.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/erazemk/najdeno/internal/model"
)

// Engine owns all mutations of items and claims. Every operation reads
// current state, computes a decision, and writes the result back through
// the store; nothing is cached between calls.
type Engine struct {
	store Store
}

// NewEngine creates an engine over the given store.
func NewEngine(s Store) *Engine {
	return &Engine{store: s}
}

// SubmitClaimInput carries the visitor-supplied fields of a new claim.
type SubmitClaimInput struct {
	ItemID  string
	Claimer string
	Email   string
	Phone   string
	Proof   string
}

// SubmitClaim validates the input and creates a pending claim. The item's
// name is denormalized onto the claim at this point; the item itself is not
// required to exist (such a claim can never be approved, but it is stored).
func (e *Engine) SubmitClaim(ctx context.Context, in SubmitClaimInput) (*model.Claim, error) {
	required := []struct {
		field, value string
	}{
		{"item_id", in.ItemID},
		{"claimer", in.Claimer},
		{"email", in.Email},
		{"proof", in.Proof},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, &ValidationError{Field: f.field}
		}
	}

	var itemName string
	item, err := e.store.GetItem(ctx, in.ItemID)
	if err != nil {
		return nil, fmt.Errorf("loading item %s: %w", in.ItemID, err)
	}
	if item != nil {
		itemName = item.Name
	}

	claim, err := e.store.CreateClaim(ctx, in.ItemID, itemName, in.Claimer, in.Email, in.Phone, in.Proof)
	if err != nil {
		return nil, fmt.Errorf("creating claim: %w", err)
	}
	return claim, nil
}

// ApproveClaim runs the approval transaction: the claim becomes approved,
// its item becomes claimed, and every rival pending claim on the same item
// becomes rejected. The underlying store offers no multi-document
// atomicity, so the steps are ordered single writes; a store failure
// partway surfaces as a PartialFailureError whose stage tells the caller
// where to resume. Retrying the whole operation is always safe.
func (e *Engine) ApproveClaim(ctx context.Context, claimID string) error {
	claim, err := e.store.GetClaim(ctx, claimID)
	if err != nil {
		return fmt.Errorf("loading claim %s: %w", claimID, err)
	}
	if claim == nil {
		return ErrNotFound
	}

	item, err := e.store.GetItem(ctx, claim.ItemID)
	if err != nil {
		return fmt.Errorf("loading item %s: %w", claim.ItemID, err)
	}
	if item == nil {
		return ErrNotFound
	}

	// Optimistic precondition: if the item was already claimed and this
	// claim is not the winner, a rival approval got there first. Checked
	// before the first write so a conflict leaves no partial progress.
	if item.Status == model.ItemStatusClaimed && claim.Status != model.ClaimStatusApproved {
		return ErrConflict
	}

	// Step 1: mark the claim approved. Skipped on retry if a previous
	// attempt already got this far.
	if claim.Status != model.ClaimStatusApproved {
		if err := e.store.UpdateClaimStatus(ctx, claimID, model.ClaimStatusApproved); err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrNotFound
			}
			return &PartialFailureError{Stage: StageNone, Err: err}
		}
	}

	// Step 2: take the item out of circulation. Marking an already-claimed
	// item claimed is a no-op, so retries pass through here unharmed.
	if err := e.store.UpdateItemStatus(ctx, claim.ItemID, model.ItemStatusClaimed); err != nil {
		return &PartialFailureError{Stage: StageClaimApproved, Err: err}
	}

	// Step 3: reject all rival pending claims. The writes are mutually
	// non-conflicting, so they are issued concurrently and awaited together.
	rivals, err := e.store.ListPendingClaimsForItem(ctx, claim.ItemID)
	if err != nil {
		return &PartialFailureError{Stage: StageItemClaimed, Err: err}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, rival := range rivals {
		if rival.ID == claimID {
			continue
		}
		g.Go(func() error {
			return e.store.UpdateClaimStatus(gctx, rival.ID, model.ClaimStatusRejected)
		})
	}
	if err := g.Wait(); err != nil {
		return &PartialFailureError{Stage: StageItemClaimed, Err: err}
	}

	return nil
}

// RejectClaim marks a claim rejected.
func (e *Engine) RejectClaim(ctx context.Context, claimID string) error {
	return e.SetClaimStatus(ctx, claimID, model.ClaimStatusRejected)
}

// SetClaimStatus unconditionally overwrites a claim's status.
func (e *Engine) SetClaimStatus(ctx context.Context, claimID, status string) error {
	if !model.ValidClaimStatus(status) {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("invalid claim status %q", status)}
	}
	return e.store.UpdateClaimStatus(ctx, claimID, status)
}

// SetItemStatus unconditionally overwrites an item's status. This covers
// the pending/listed toggle and the claimed-to-listed restore; approval is
// the only path that should set an item to claimed.
func (e *Engine) SetItemStatus(ctx context.Context, itemID, status string) error {
	if !model.ValidItemStatus(status) {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("invalid item status %q", status)}
	}
	return e.store.UpdateItemStatus(ctx, itemID, status)
}

// DeleteItem removes an item permanently. Its claims are not cascaded;
// they keep rendering through their denormalized fields.
func (e *Engine) DeleteItem(ctx context.Context, itemID string) error {
	return e.store.DeleteItem(ctx, itemID)
}

// DeleteClaim removes a claim permanently.
func (e *Engine) DeleteClaim(ctx context.Context, claimID string) error {
	return e.store.DeleteClaim(ctx, claimID)
}
