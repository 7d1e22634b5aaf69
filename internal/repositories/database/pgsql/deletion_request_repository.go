package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeed/academy_backend/internal/core/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDeletionRequestRepository records data-deletion requests for manual
// review. The email is stored regardless of whether it matches an
// account; the handler's response never reveals which.
type PgxDeletionRequestRepository struct {
	db *pgxpool.Pool
}

func newPgxDeletionRequestRepository(db *pgxpool.Pool) ports.DeletionRequestRepository {
	return &PgxDeletionRequestRepository{db: db}
}

var _ ports.DeletionRequestRepository = (*PgxDeletionRequestRepository)(nil)

func (r *PgxDeletionRequestRepository) Save(ctx context.Context, confirmationCode, email, reason string, requestedAt time.Time) error {
	query := `
        INSERT INTO deletion_requests (confirmation_code, email, reason, requested_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, confirmationCode, email, reason, requestedAt)
	if err != nil {
		return fmt.Errorf("failed to save deletion request: %w", err)
	}
	return nil
}
