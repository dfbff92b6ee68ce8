package catalog

import "sort"

// CategoryAll is the sentinel label meaning "no category restriction".
const CategoryAll = "all"

// CategoryFilter is a closed variant: either the unrestricted filter or a
// non-empty set of concrete category labels. The sentinel and concrete
// labels never coexist. The zero value is the unrestricted filter.
// Values are immutable; transitions return a new filter.
type CategoryFilter struct {
	labels map[string]bool
}

// AllCategories returns the unrestricted filter.
func AllCategories() CategoryFilter {
	return CategoryFilter{}
}

// Categories builds a filter by selecting each label in turn, applying the
// same sentinel rules as Select.
func Categories(labels ...string) CategoryFilter {
	f := AllCategories()
	for _, l := range labels {
		f = f.Select(l)
	}
	return f
}

// IsAll reports whether the filter is unrestricted.
func (f CategoryFilter) IsAll() bool {
	return len(f.labels) == 0
}

// Select returns the filter with label selected. Selecting the sentinel
// clears every concrete label; selecting a concrete label drops the
// sentinel.
func (f CategoryFilter) Select(label string) CategoryFilter {
	if label == CategoryAll {
		return AllCategories()
	}
	next := make(map[string]bool, len(f.labels)+1)
	for l := range f.labels {
		next[l] = true
	}
	next[label] = true
	return CategoryFilter{labels: next}
}

// Deselect returns the filter with label removed. Removing the last
// concrete label reverts to the unrestricted filter.
func (f CategoryFilter) Deselect(label string) CategoryFilter {
	if f.IsAll() {
		return f
	}
	next := make(map[string]bool, len(f.labels))
	for l := range f.labels {
		if l != label {
			next[l] = true
		}
	}
	return CategoryFilter{labels: next}
}

// Labels returns the selection for display: the sentinel alone when
// unrestricted, otherwise the concrete labels in sorted order.
func (f CategoryFilter) Labels() []string {
	if f.IsAll() {
		return []string{CategoryAll}
	}
	out := make([]string, 0, len(f.labels))
	for l := range f.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Matches reports whether an item with the given tags passes the filter.
// A nil tag list matches only the unrestricted filter.
func (f CategoryFilter) Matches(tags []string) bool {
	if f.IsAll() {
		return true
	}
	for _, t := range tags {
		if f.labels[t] {
			return true
		}
	}
	return false
}
