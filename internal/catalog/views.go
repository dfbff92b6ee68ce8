package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/erazemk/najdeno/internal/model"
)

// Search returns the listed items matching the query and category filter,
// preserving input order. The query matches case-insensitively against
// name and description; an empty query matches everything.
func Search(items []model.Item, query string, filter CategoryFilter) []model.Item {
	q := strings.ToLower(query)

	var out []model.Item
	for _, item := range items {
		if item.Status != model.ItemStatusListed {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		if !filter.Matches(item.Tags) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// VisitorView is the public listing: listed items plus a count line.
type VisitorView struct {
	Items []model.Item
	Count string
}

// VisitorListing projects the item set into the visitor view.
func VisitorListing(items []model.Item) VisitorView {
	listed := Search(items, "", AllCategories())
	return VisitorView{Items: listed, Count: CountString(len(listed))}
}

// CountString renders the visitor-facing result counter.
func CountString(n int) string {
	return fmt.Sprintf("%d items found", n)
}

// AdminItemView is the moderation listing: pending items first, plus
// per-status counters.
type AdminItemView struct {
	Items   []model.Item
	Total   int
	Pending int
	Listed  int
}

// AdminListing stable-partitions items so pending ones come first,
// preserving relative order within each partition, and derives counters.
func AdminListing(items []model.Item) AdminItemView {
	sorted := make([]model.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Status == model.ItemStatusPending &&
			sorted[j].Status != model.ItemStatusPending
	})

	view := AdminItemView{Items: sorted, Total: len(sorted)}
	for _, item := range sorted {
		switch item.Status {
		case model.ItemStatusPending:
			view.Pending++
		case model.ItemStatusListed:
			view.Listed++
		}
	}
	return view
}

// ClaimMode selects which slice of the claim set a moderation view shows.
type ClaimMode string

const (
	ClaimModePending ClaimMode = "pending"
	ClaimModeHistory ClaimMode = "history"
)

// ValidClaimMode reports whether m is a known claim view mode.
func ValidClaimMode(m ClaimMode) bool {
	return m == ClaimModePending || m == ClaimModeHistory
}

// ClaimListing returns the claims for the given mode, in input order.
// Pending mode shows pending claims; history mode shows everything else
// (approved and rejected).
func ClaimListing(claims []model.Claim, mode ClaimMode) []model.Claim {
	var out []model.Claim
	for _, c := range claims {
		pending := c.Status == model.ClaimStatusPending
		if (mode == ClaimModePending) == pending {
			out = append(out, c)
		}
	}
	return out
}
