package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserRepository is the credential store backed by Postgres. Email and
// provider-id uniqueness live in the schema (unique indexes), so two
// concurrent inserts for the same key resolve to one winner and one
// conflict error.
type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) ports.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ ports.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, password_hash, first_name, last_name, role,
	profile_picture, bio, phone_number, google_id, facebook_id, twitter_id,
	is_active, date_joined, last_login`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.ProfilePicture,
		&u.Bio,
		&u.PhoneNumber,
		&u.GoogleID,
		&u.FacebookID,
		&u.TwitterID,
		&u.IsActive,
		&u.DateJoined,
		&u.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1);`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, externalID string) (*domain.User, error) {
	column, err := providerColumn(provider)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", column, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY date_joined DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		strings.ToLower(user.Email),
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Role,
		user.ProfilePicture,
		user.Bio,
		user.PhoneNumber,
		user.GoogleID,
		user.FacebookID,
		user.TwitterID,
		user.IsActive,
		user.DateJoined,
		user.LastLogin,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) LinkProvider(ctx context.Context, userID string, provider domain.AuthProvider, externalID, profilePicture string) error {
	column, err := providerColumn(provider)
	if err != nil {
		return err
	}
	// Single statement: sets the id and backfills the picture only when
	// currently empty. Re-linking the same id to the same row is a no-op.
	query := `
        UPDATE users
        SET ` + column + ` = $1,
            profile_picture = CASE WHEN profile_picture = '' AND $2 <> '' THEN $2 ELSE profile_picture END
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, externalID, profilePicture, userID)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to link %s to user %s: %w", column, userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	// The active flag is owned by SetActive so a profile save cannot race
	// with a concurrent deactivation.
	query := `
        UPDATE users
        SET first_name = $1, last_name = $2, role = $3, profile_picture = $4,
            bio = $5, phone_number = $6, password_hash = $7
        WHERE user_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.FirstName,
		user.LastName,
		user.Role,
		user.ProfilePicture,
		user.Bio,
		user.PhoneNumber,
		user.PasswordHash,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	query := `UPDATE users SET last_login = $1 WHERE user_id = $2;`
	_, err := r.db.Exec(ctx, query, at, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login for user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxUserRepository) SetActive(ctx context.Context, userID string, active bool) error {
	query := `UPDATE users SET is_active = $1 WHERE user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, active, userID)
	if err != nil {
		return fmt.Errorf("failed to set active flag for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	// Dependent records (enrollments, payments, certificates) cascade via
	// foreign keys.
	query := `DELETE FROM users WHERE user_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func providerColumn(provider domain.AuthProvider) (string, error) {
	switch provider {
	case domain.ProviderGoogle:
		return "google_id", nil
	case domain.ProviderFacebook:
		return "facebook_id", nil
	case domain.ProviderTwitter:
		return "twitter_id", nil
	default:
		return "", fmt.Errorf("unknown auth provider %q", provider)
	}
}
