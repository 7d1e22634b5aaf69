package ports

import (
	"context"
	"time"

	"github.com/ecodeed/academy_backend/internal/core/domain"
)

// UserRepository is the credential store contract. Uniqueness of email and
// of each provider id is enforced by the storage layer, not checked first
// in application code: a losing concurrent insert surfaces as
// apperrors.ErrDuplicateEmail / ErrDuplicateProviderID.
type UserRepository interface {
	// FindUserByEmail performs a case-insensitive exact match.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, externalID string) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	// CreateUser inserts the user as a single atomic statement.
	CreateUser(ctx context.Context, user domain.User) error
	// LinkProvider sets the provider id column on an existing row, filling
	// the profile picture only when it is currently empty. Idempotent.
	LinkProvider(ctx context.Context, userID string, provider domain.AuthProvider, externalID, profilePicture string) error
	UpdateUser(ctx context.Context, user domain.User) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
	SetActive(ctx context.Context, userID string, active bool) error
	DeleteUser(ctx context.Context, userID string) error
}

// TokenBlacklistRepository persists revoked refresh-token identifiers.
// Append-only; rows disappear only through expiry-driven garbage
// collection.
type TokenBlacklistRepository interface {
	// Add records a jti. Re-adding an existing jti is not an error.
	Add(ctx context.Context, jti, userID string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	// DeleteExpired removes entries whose token expiry has passed and
	// returns the number removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// DeletionRequestRepository records account-deletion requests for review.
type DeletionRequestRepository interface {
	Save(ctx context.Context, confirmationCode, email, reason string, requestedAt time.Time) error
}

// CourseRepository defines persistence operations for the course catalog.
type CourseRepository interface {
	SaveCourse(ctx context.Context, course domain.Course) error
	UpdateCourse(ctx context.Context, course domain.Course) error
	FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error)
	FindCourseBySlug(ctx context.Context, slug string) (*domain.Course, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListPublishedCourses(ctx context.Context, limit, offset int) ([]domain.Course, error)
	ListModules(ctx context.Context, courseID string) ([]domain.Module, error)
	ListLessons(ctx context.Context, moduleID string) ([]domain.Lesson, error)
	FindLessonByID(ctx context.Context, lessonID string) (*domain.Lesson, error)
}

// EnrollmentRepository defines persistence for enrollments and the records
// hanging off them (progress, payments, certificates, reviews).
type EnrollmentRepository interface {
	// SaveEnrollment inserts; a second enrollment for the same (user,
	// course) surfaces as apperrors.ErrDuplicate.
	SaveEnrollment(ctx context.Context, e domain.Enrollment) error
	FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error)
	FindEnrollment(ctx context.Context, userID, courseID string) (*domain.Enrollment, error)
	ListEnrollmentsByUser(ctx context.Context, userID string) ([]domain.Enrollment, error)
	UpdateEnrollment(ctx context.Context, e domain.Enrollment) error
	// SaveLessonProgress inserts; duplicates surface as ErrDuplicate.
	SaveLessonProgress(ctx context.Context, p domain.LessonProgress) error
	CountCompletedLessons(ctx context.Context, enrollmentID string) (int, error)
	SavePayment(ctx context.Context, p domain.Payment) error
	SaveCertificate(ctx context.Context, c domain.Certificate) error
	FindCertificateByEnrollment(ctx context.Context, enrollmentID string) (*domain.Certificate, error)
	SaveReview(ctx context.Context, r domain.CourseReview) error
}

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	UserRepo       UserRepository
	BlacklistRepo  TokenBlacklistRepository
	DeletionRepo   DeletionRequestRepository
	CourseRepo     CourseRepository
	EnrollmentRepo EnrollmentRepository
}
