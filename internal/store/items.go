package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/erazemk/najdeno/internal/catalog"
	"github.com/erazemk/najdeno/internal/model"
)

// CreateItem creates a new item with a generated id and status pending.
// The found date is assigned by the database clock.
func (s *Store) CreateItem(ctx context.Context, name, description, location string, tags []string, imageURL string) (*model.Item, error) {
	id := uuid.NewString()

	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO items (id, name, description, location, tags, image_url)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, description, location, string(tagsJSON), imageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return s.GetItem(ctx, id)
}

// GetItem returns an item by id, or (nil, nil) if it does not exist.
func (s *Store) GetItem(ctx context.Context, id string) (*model.Item, error) {
	item := &model.Item{}
	var description, location, tags, imageURL sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, location, tags, image_url, status, date_found
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &description, &location, &tags, &imageURL, &item.Status, &item.DateFound)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Description = description.String
	item.Location = location.String
	item.ImageURL = imageURL.String
	item.Tags = decodeTags(tags.String)
	return item, nil
}

// ListItems returns all items sorted by date found, newest first.
func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, location, tags, image_url, status, date_found
		 FROM items ORDER BY date_found DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description, location, tags, imageURL sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &location, &tags, &imageURL, &item.Status, &item.DateFound); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Description = description.String
		item.Location = location.String
		item.ImageURL = imageURL.String
		item.Tags = decodeTags(tags.String)
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItemStatus overwrites an item's status.
func (s *Store) UpdateItemStatus(ctx context.Context, id, status string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE items SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("updating item status: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// DeleteItem removes an item permanently. Claims referencing it are left
// in place.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// decodeTags parses the stored JSON tag list, treating missing or
// malformed values as an empty list.
func decodeTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil
	}
	return tags
}
