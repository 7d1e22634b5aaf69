package services

import (
	"context"

	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/dto"
)

// CourseSvcFacade exposes the course catalog.
type CourseSvcFacade interface {
	ListCourses(ctx context.Context, limit, offset int) ([]domain.Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*domain.Course, []domain.Module, error)
	CreateCourse(ctx context.Context, creator *domain.User, req dto.CreateCourseRequest) (*domain.Course, error)
	PublishCourse(ctx context.Context, actor *domain.User, slug string) (*domain.Course, error)
}

// EnrollmentSvcFacade exposes enrollment and progress tracking.
type EnrollmentSvcFacade interface {
	// Enroll creates an enrollment and, for paid courses, a pending
	// payment record at the course's current price.
	Enroll(ctx context.Context, user *domain.User, courseSlug string, method domain.PaymentMethod) (*domain.Enrollment, error)
	ListMyEnrollments(ctx context.Context, userID string) ([]dto.EnrollmentView, error)

	// CompleteLesson marks a lesson done; completing the last lesson marks
	// the enrollment completed and issues a certificate.
	CompleteLesson(ctx context.Context, userID, enrollmentID, lessonID string, timeSpentSeconds int) (*dto.EnrollmentView, error)

	// ReviewCourse accepts a 1-5 rating on a completed enrollment.
	ReviewCourse(ctx context.Context, userID, enrollmentID string, req dto.ReviewRequest) (*domain.CourseReview, error)
}
