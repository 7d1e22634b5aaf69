package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/google/uuid"
)

// enrollmentService tracks enrollments, lesson progress, certificates,
// and reviews.
type enrollmentService struct {
	courseRepo     ports.CourseRepository
	enrollmentRepo ports.EnrollmentRepository
}

// NewEnrollmentService creates the enrollment service.
func NewEnrollmentService(courseRepo ports.CourseRepository, enrollmentRepo ports.EnrollmentRepository) portssvc.EnrollmentSvcFacade {
	return &enrollmentService{courseRepo: courseRepo, enrollmentRepo: enrollmentRepo}
}

var _ portssvc.EnrollmentSvcFacade = (*enrollmentService)(nil)

func (s *enrollmentService) Enroll(ctx context.Context, user *domain.User, courseSlug string, method domain.PaymentMethod) (*domain.Enrollment, error) {
	if !user.Role.CanEnroll() {
		return nil, apperrors.ErrForbidden
	}

	course, err := s.courseRepo.FindCourseBySlug(ctx, courseSlug)
	if err != nil {
		return nil, err
	}
	if course.Status != domain.CoursePublished {
		return nil, apperrors.ErrNotFound
	}

	now := time.Now()
	enrollment := domain.Enrollment{
		EnrollmentID:   uuid.NewString(),
		UserID:         user.UserID,
		CourseID:       course.CourseID,
		Status:         domain.EnrollmentActive,
		EnrolledAt:     now,
		LastAccessedAt: now,
	}
	if err := s.enrollmentRepo.SaveEnrollment(ctx, enrollment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("already enrolled in this course")
		}
		return nil, fmt.Errorf("failed to save enrollment: %w", err)
	}

	if !course.IsFree {
		if method == "" {
			method = domain.MethodManual
		}
		payment := domain.Payment{
			PaymentID:     uuid.NewString(),
			EnrollmentID:  enrollment.EnrollmentID,
			Amount:        course.CurrentPrice(now),
			Currency:      course.Currency,
			Method:        method,
			TransactionID: uuid.NewString(),
			Status:        domain.PaymentPending,
			CreatedAt:     now,
		}
		if err := s.enrollmentRepo.SavePayment(ctx, payment); err != nil {
			return nil, fmt.Errorf("failed to save payment: %w", err)
		}
	}
	return &enrollment, nil
}

func (s *enrollmentService) ListMyEnrollments(ctx context.Context, userID string) ([]dto.EnrollmentView, error) {
	enrollments, err := s.enrollmentRepo.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	views := make([]dto.EnrollmentView, 0, len(enrollments))
	for i := range enrollments {
		view, err := s.buildView(ctx, &enrollments[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *enrollmentService) CompleteLesson(ctx context.Context, userID, enrollmentID, lessonID string, timeSpentSeconds int) (*dto.EnrollmentView, error) {
	enrollment, err := s.enrollmentRepo.FindEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.courseRepo.FindLessonByID(ctx, lessonID); err != nil {
		return nil, err
	}

	now := time.Now()
	progress := domain.LessonProgress{
		EnrollmentID:     enrollmentID,
		LessonID:         lessonID,
		CompletedAt:      now,
		TimeSpentSeconds: timeSpentSeconds,
	}
	// Completing the same lesson twice is a no-op, not an error.
	if err := s.enrollmentRepo.SaveLessonProgress(ctx, progress); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
		return nil, fmt.Errorf("failed to save lesson progress: %w", err)
	}

	enrollment.LastAccessedAt = now
	enrollment.CurrentLessonID = &lessonID

	course, err := s.courseRepo.FindCourseByID(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	completed, err := s.enrollmentRepo.CountCompletedLessons(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed lessons: %w", err)
	}

	if enrollment.Status == domain.EnrollmentActive && course.TotalLessons > 0 && completed >= course.TotalLessons {
		enrollment.Status = domain.EnrollmentCompleted
		enrollment.CompletedAt = &now
		if err := s.issueCertificate(ctx, enrollment.EnrollmentID, now); err != nil {
			return nil, err
		}
	}
	if err := s.enrollmentRepo.UpdateEnrollment(ctx, *enrollment); err != nil {
		return nil, fmt.Errorf("failed to update enrollment: %w", err)
	}

	return s.buildView(ctx, enrollment)
}

func (s *enrollmentService) ReviewCourse(ctx context.Context, userID, enrollmentID string, req dto.ReviewRequest) (*domain.CourseReview, error) {
	enrollment, err := s.enrollmentRepo.FindEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if enrollment.Status != domain.EnrollmentCompleted {
		return nil, fmt.Errorf("%w: course must be completed before reviewing", apperrors.ErrValidation)
	}

	review := domain.CourseReview{
		ReviewID:     uuid.NewString(),
		EnrollmentID: enrollmentID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}
	if err := s.enrollmentRepo.SaveReview(ctx, review); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("course already reviewed")
		}
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return &review, nil
}

// issueCertificate is idempotent: the underlying insert ignores an
// existing certificate for the enrollment.
func (s *enrollmentService) issueCertificate(ctx context.Context, enrollmentID string, at time.Time) error {
	certificate := domain.Certificate{
		CertificateID: uuid.NewString(),
		EnrollmentID:  enrollmentID,
		IssuedAt:      at,
	}
	if err := s.enrollmentRepo.SaveCertificate(ctx, certificate); err != nil {
		return fmt.Errorf("failed to issue certificate: %w", err)
	}
	return nil
}

func (s *enrollmentService) buildView(ctx context.Context, e *domain.Enrollment) (*dto.EnrollmentView, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, e.CourseID)
	if err != nil {
		return nil, err
	}
	completed, err := s.enrollmentRepo.CountCompletedLessons(ctx, e.EnrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed lessons: %w", err)
	}

	view := dto.EnrollmentView{
		ID:                 e.EnrollmentID,
		CourseID:           e.CourseID,
		CourseTitle:        course.Title,
		Status:             string(e.Status),
		EnrolledAt:         e.EnrolledAt,
		CompletedAt:        e.CompletedAt,
		ProgressPercentage: domain.ProgressPercentage(completed, course.TotalLessons),
	}
	if e.Status == domain.EnrollmentCompleted {
		cert, err := s.enrollmentRepo.FindCertificateByEnrollment(ctx, e.EnrollmentID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load certificate: %w", err)
		}
		if cert != nil {
			view.CertificateID = &cert.CertificateID
		}
	}
	return &view, nil
}
