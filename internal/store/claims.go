package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/erazemk/najdeno/internal/catalog"
	"github.com/erazemk/najdeno/internal/model"
)

// CreateClaim creates a new claim with a generated id and status pending.
// The submission timestamp is assigned by the database clock, never by the
// caller.
func (s *Store) CreateClaim(ctx context.Context, itemID, itemName, claimer, email, phone, proof string) (*model.Claim, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO claims (id, item_id, item_name, claimer, email, phone, proof)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, itemID, itemName, claimer, email, phone, proof,
	)
	if err != nil {
		return nil, fmt.Errorf("creating claim: %w", err)
	}

	return s.GetClaim(ctx, id)
}

// GetClaim returns a claim by id, or (nil, nil) if it does not exist.
func (s *Store) GetClaim(ctx context.Context, id string) (*model.Claim, error) {
	claim := &model.Claim{}
	var phone sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, item_id, item_name, claimer, email, phone, proof, status, submitted_on
		 FROM claims WHERE id = ?`, id,
	).Scan(&claim.ID, &claim.ItemID, &claim.ItemName, &claim.Claimer, &claim.Email,
		&phone, &claim.Proof, &claim.Status, &claim.SubmittedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting claim: %w", err)
	}
	claim.Phone = phone.String
	return claim, nil
}

// ListClaims returns all claims, newest first.
func (s *Store) ListClaims(ctx context.Context) ([]model.Claim, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, item_id, item_name, claimer, email, phone, proof, status, submitted_on
		 FROM claims ORDER BY submitted_on DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	return scanClaims(rows)
}

// ListPendingClaimsForItem returns the pending claims referencing an item.
func (s *Store) ListPendingClaimsForItem(ctx context.Context, itemID string) ([]model.Claim, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, item_id, item_name, claimer, email, phone, proof, status, submitted_on
		 FROM claims WHERE item_id = ? AND status = ? ORDER BY submitted_on, id`,
		itemID, model.ClaimStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pending claims for item: %w", err)
	}
	defer rows.Close()

	return scanClaims(rows)
}

// UpdateClaimStatus overwrites a claim's status.
func (s *Store) UpdateClaimStatus(ctx context.Context, id, status string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE claims SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("updating claim status: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// DeleteClaim removes a claim permanently.
func (s *Store) DeleteClaim(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM claims WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting claim: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func scanClaims(rows *sql.Rows) ([]model.Claim, error) {
	var claims []model.Claim
	for rows.Next() {
		var c model.Claim
		var phone sql.NullString
		if err := rows.Scan(&c.ID, &c.ItemID, &c.ItemName, &c.Claimer, &c.Email,
			&phone, &c.Proof, &c.Status, &c.SubmittedOn); err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}
		c.Phone = phone.String
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
