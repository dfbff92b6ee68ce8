package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced item or claim does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when approving a claim on an item that another
// claim already won.
var ErrConflict = errors.New("item already claimed")

// ValidationError reports a missing or invalid field on a request.
// Validation happens before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// Stage identifies how far the approve-claim transaction progressed
// before failing, so a retry can resume idempotently.
type Stage string

const (
	StageNone          Stage = "none"
	StageClaimApproved Stage = "claim-approved"
	StageItemClaimed   Stage = "item-claimed"
)

// PartialFailureError reports that the approve-claim transaction stopped
// partway. Re-invoking ApproveClaim with the same claim id is safe: steps
// already applied are no-ops on retry.
type PartialFailureError struct {
	Stage Stage
	Err   error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("claim approval stopped after stage %q: %v", e.Stage, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }
