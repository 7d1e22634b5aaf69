package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEnrollmentRepository persists enrollments, lesson progress,
// payments, certificates, and reviews.
type PgxEnrollmentRepository struct {
	db *pgxpool.Pool
}

func newPgxEnrollmentRepository(db *pgxpool.Pool) ports.EnrollmentRepository {
	return &PgxEnrollmentRepository{db: db}
}

var _ ports.EnrollmentRepository = (*PgxEnrollmentRepository)(nil)

const enrollmentColumns = `enrollment_id, user_id, course_id, status, enrolled_at,
	completed_at, last_accessed_at, current_lesson_id`

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(
		&e.EnrollmentID,
		&e.UserID,
		&e.CourseID,
		&e.Status,
		&e.EnrolledAt,
		&e.CompletedAt,
		&e.LastAccessedAt,
		&e.CurrentLessonID,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEnrollmentRepository) SaveEnrollment(ctx context.Context, e domain.Enrollment) error {
	query := `
        INSERT INTO enrollments (` + enrollmentColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		e.EnrollmentID, e.UserID, e.CourseID, e.Status, e.EnrolledAt,
		e.CompletedAt, e.LastAccessedAt, e.CurrentLessonID,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to save enrollment: %w", err)
	}
	return nil
}

func (r *PgxEnrollmentRepository) FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE enrollment_id = $1;`
	e, err := scanEnrollment(r.db.QueryRow(ctx, query, enrollmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find enrollment %s: %w", enrollmentID, err)
	}
	return e, nil
}

func (r *PgxEnrollmentRepository) FindEnrollment(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = $1 AND course_id = $2;`
	e, err := scanEnrollment(r.db.QueryRow(ctx, query, userID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find enrollment for user %s: %w", userID, err)
	}
	return e, nil
}

func (r *PgxEnrollmentRepository) ListEnrollmentsByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = $1 ORDER BY enrolled_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []domain.Enrollment{}
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		enrollments = append(enrollments, *e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", rows.Err())
	}
	return enrollments, nil
}

func (r *PgxEnrollmentRepository) UpdateEnrollment(ctx context.Context, e domain.Enrollment) error {
	query := `
        UPDATE enrollments
        SET status = $1, completed_at = $2, last_accessed_at = $3, current_lesson_id = $4
        WHERE enrollment_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query, e.Status, e.CompletedAt, e.LastAccessedAt, e.CurrentLessonID, e.EnrollmentID)
	if err != nil {
		return fmt.Errorf("failed to update enrollment %s: %w", e.EnrollmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEnrollmentRepository) SaveLessonProgress(ctx context.Context, p domain.LessonProgress) error {
	query := `
        INSERT INTO lesson_progress (enrollment_id, lesson_id, completed_at, time_spent_seconds)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.db.Exec(ctx, query, p.EnrollmentID, p.LessonID, p.CompletedAt, p.TimeSpentSeconds)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to save lesson progress: %w", err)
	}
	return nil
}

func (r *PgxEnrollmentRepository) CountCompletedLessons(ctx context.Context, enrollmentID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM lesson_progress WHERE enrollment_id = $1;`, enrollmentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed lessons: %w", err)
	}
	return count, nil
}

func (r *PgxEnrollmentRepository) SavePayment(ctx context.Context, p domain.Payment) error {
	query := `
        INSERT INTO payments (payment_id, enrollment_id, amount, currency, payment_method,
                              transaction_id, status, paid_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		p.PaymentID, p.EnrollmentID, p.Amount, p.Currency, p.Method,
		p.TransactionID, p.Status, p.PaidAt, p.CreatedAt,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *PgxEnrollmentRepository) SaveCertificate(ctx context.Context, c domain.Certificate) error {
	query := `
        INSERT INTO certificates (certificate_id, enrollment_id, issued_at, certificate_url, issued_by)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (enrollment_id) DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query, c.CertificateID, c.EnrollmentID, c.IssuedAt, c.CertificateURL, c.IssuedBy)
	if err != nil {
		return fmt.Errorf("failed to save certificate: %w", err)
	}
	return nil
}

func (r *PgxEnrollmentRepository) FindCertificateByEnrollment(ctx context.Context, enrollmentID string) (*domain.Certificate, error) {
	query := `
        SELECT certificate_id, enrollment_id, issued_at, certificate_url, issued_by
        FROM certificates
        WHERE enrollment_id = $1;
    `
	var c domain.Certificate
	err := r.db.QueryRow(ctx, query, enrollmentID).Scan(&c.CertificateID, &c.EnrollmentID, &c.IssuedAt, &c.CertificateURL, &c.IssuedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find certificate for enrollment %s: %w", enrollmentID, err)
	}
	return &c, nil
}

func (r *PgxEnrollmentRepository) SaveReview(ctx context.Context, rv domain.CourseReview) error {
	query := `
        INSERT INTO course_reviews (review_id, enrollment_id, rating, comment, is_approved, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query, rv.ReviewID, rv.EnrollmentID, rv.Rating, rv.Comment, rv.IsApproved, rv.CreatedAt)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}
