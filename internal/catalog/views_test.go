package catalog

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/erazemk/najdeno/internal/model"
)

func testItems() []model.Item {
	return []model.Item{
		{ID: "1", Name: "Black Umbrella", Description: "left by the door", Status: model.ItemStatusListed, Tags: []string{"accessories"}},
		{ID: "2", Name: "Car Keys", Description: "with a red keychain", Status: model.ItemStatusListed, Tags: []string{"keys"}},
		{ID: "3", Name: "Wallet", Description: "brown leather", Status: model.ItemStatusPending, Tags: []string{"accessories"}},
		{ID: "4", Name: "Laptop", Description: "umbrella sticker on the lid", Status: model.ItemStatusListed, Tags: []string{"electronics"}},
		{ID: "5", Name: "Scarf", Description: "", Status: model.ItemStatusClaimed, Tags: []string{"accessories"}},
		{ID: "6", Name: "Notebook", Description: "", Status: model.ItemStatusListed, Tags: nil},
	}
}

func ids(items []model.Item) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	items := testItems()

	tests := []struct {
		name   string
		query  string
		filter CategoryFilter
		want   []string
	}{
		{"empty query, all categories", "", AllCategories(), []string{"1", "2", "4", "6"}},
		{"name match, case-insensitive", "UMBRELLA", AllCategories(), []string{"1", "4"}},
		{"description match", "keychain", AllCategories(), []string{"2"}},
		{"pending never listed", "wallet", AllCategories(), nil},
		{"claimed never listed", "scarf", AllCategories(), nil},
		{"category subset", "", Categories("accessories"), []string{"1"}},
		{"category union", "", Categories("accessories", "keys"), []string{"1", "2"}},
		{"query and category", "umbrella", Categories("electronics"), []string{"4"}},
		{"nil tags excluded by subset", "", Categories("paper"), nil},
		{"no match", "bicycle", AllCategories(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(items, tt.query, tt.filter)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearchPreservesInputOrder(t *testing.T) {
	items := testItems()
	got := Search(items, "", AllCategories())
	if diff := cmp.Diff([]string{"1", "2", "4", "6"}, ids(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitorListing(t *testing.T) {
	view := VisitorListing(testItems())
	if len(view.Items) != 4 {
		t.Errorf("expected 4 listed items, got %d", len(view.Items))
	}
	if view.Count != "4 items found" {
		t.Errorf("expected count '4 items found', got %q", view.Count)
	}

	empty := VisitorListing(nil)
	if empty.Count != "0 items found" {
		t.Errorf("expected '0 items found', got %q", empty.Count)
	}
}

func TestAdminListing(t *testing.T) {
	items := []model.Item{
		{ID: "a", Status: model.ItemStatusListed},
		{ID: "b", Status: model.ItemStatusPending},
		{ID: "c", Status: model.ItemStatusClaimed},
		{ID: "d", Status: model.ItemStatusPending},
		{ID: "e", Status: model.ItemStatusListed},
	}

	view := AdminListing(items)

	// Pending first, relative order preserved within both partitions.
	if diff := cmp.Diff([]string{"b", "d", "a", "c", "e"}, ids(view.Items)); diff != "" {
		t.Errorf("partition mismatch (-want +got):\n%s", diff)
	}
	if view.Total != 5 || view.Pending != 2 || view.Listed != 2 {
		t.Errorf("counts = {total:%d pending:%d listed:%d}, want {5 2 2}", view.Total, view.Pending, view.Listed)
	}

	// The input slice is not reordered.
	if items[0].ID != "a" {
		t.Error("AdminListing must not mutate its input")
	}
}

func TestClaimListing(t *testing.T) {
	claims := []model.Claim{
		{ID: "c1", Status: model.ClaimStatusPending},
		{ID: "c2", Status: model.ClaimStatusApproved},
		{ID: "c3", Status: model.ClaimStatusRejected},
		{ID: "c4", Status: model.ClaimStatusPending},
	}

	pending := ClaimListing(claims, ClaimModePending)
	if len(pending) != 2 || pending[0].ID != "c1" || pending[1].ID != "c4" {
		t.Errorf("pending mode mismatch: %+v", pending)
	}

	history := ClaimListing(claims, ClaimModeHistory)
	if len(history) != 2 || history[0].ID != "c2" || history[1].ID != "c3" {
		t.Errorf("history mode mismatch: %+v", history)
	}

	if !ValidClaimMode(ClaimModePending) || !ValidClaimMode(ClaimModeHistory) || ValidClaimMode("archive") {
		t.Error("ValidClaimMode misclassifies modes")
	}
}

func TestLoadSnapshot(t *testing.T) {
	fs := newFakeStore()
	fs.addItem("X", model.ItemStatusListed)
	fs.addClaim("c1", "X", model.ClaimStatusPending)

	snap, err := LoadSnapshot(context.Background(), fs)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Items) != 1 || len(snap.Claims) != 1 {
		t.Errorf("expected 1 item and 1 claim, got %d/%d", len(snap.Items), len(snap.Claims))
	}
	if snap.LoadedAt.IsZero() {
		t.Error("expected LoadedAt to be set")
	}
}
