package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeed/academy_backend/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTokenBlacklistRepository persists revoked refresh-token identifiers.
// Lookups are primary-key point reads; rows leave only through
// DeleteExpired.
type PgxTokenBlacklistRepository struct {
	db *pgxpool.Pool
}

func newPgxTokenBlacklistRepository(db *pgxpool.Pool) ports.TokenBlacklistRepository {
	return &PgxTokenBlacklistRepository{db: db}
}

var _ ports.TokenBlacklistRepository = (*PgxTokenBlacklistRepository)(nil)

func (r *PgxTokenBlacklistRepository) Add(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	query := `
        INSERT INTO token_blacklist (jti, user_id, expires_at, blacklisted_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (jti) DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query, jti, userID, expiresAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to blacklist token %s: %w", jti, err)
	}
	return nil
}

func (r *PgxTokenBlacklistRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	query := `SELECT 1 FROM token_blacklist WHERE jti = $1;`
	var one int
	err := r.db.QueryRow(ctx, query, jti).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return true, nil
}

func (r *PgxTokenBlacklistRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM token_blacklist WHERE expires_at < $1;`
	cmdTag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to garbage collect token blacklist: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
