package model

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role     string
		minimum  string
		expected bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleModerator, true},
		{RoleModerator, RoleAdmin, false},
		{RoleModerator, RoleModerator, true},
		// Unknown roles fail-closed.
		{"unknown", RoleModerator, false},
		{RoleAdmin, "unknown", false},
		{"", "", false},
		{"", RoleModerator, false},
	}

	for _, tt := range tests {
		got := RoleAtLeast(tt.role, tt.minimum)
		if got != tt.expected {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tt.role, tt.minimum, got, tt.expected)
		}
	}
}

func TestValidStatuses(t *testing.T) {
	for _, s := range []string{ItemStatusPending, ItemStatusListed, ItemStatusClaimed} {
		if !ValidItemStatus(s) {
			t.Errorf("ValidItemStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "deleted", "approved"} {
		if ValidItemStatus(s) {
			t.Errorf("ValidItemStatus(%q) = true, want false", s)
		}
	}

	for _, s := range []string{ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected} {
		if !ValidClaimStatus(s) {
			t.Errorf("ValidClaimStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "listed", "withdrawn"} {
		if ValidClaimStatus(s) {
			t.Errorf("ValidClaimStatus(%q) = true, want false", s)
		}
	}
}
