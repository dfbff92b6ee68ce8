package model

import "time"

// Item represents a found object in the catalog.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"image_url,omitempty"`
	Status      string    `json:"status"`
	DateFound   time.Time `json:"date_found"`
}

// Item statuses. An item becomes claimed only through claim approval,
// never by a direct status write.
const (
	ItemStatusPending = "pending"
	ItemStatusListed  = "listed"
	ItemStatusClaimed = "claimed"
)

// ValidItemStatus reports whether s is a known item status.
func ValidItemStatus(s string) bool {
	return s == ItemStatusPending || s == ItemStatusListed || s == ItemStatusClaimed
}
