package model

import "time"

// Claim is an ownership assertion a visitor submits against a catalogued
// item. The item name is denormalized at submission time so claim history
// stays readable after the item itself is deleted.
type Claim struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	ItemName    string    `json:"item_name"`
	Claimer     string    `json:"claimer"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Proof       string    `json:"proof"`
	Status      string    `json:"status"`
	SubmittedOn time.Time `json:"submitted_on"`
}

// Claim statuses.
const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

// ValidClaimStatus reports whether s is a known claim status.
func ValidClaimStatus(s string) bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}
