package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/core/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EnrollmentServiceTestSuite struct {
	suite.Suite
	mockCourseRepo     *MockCourseRepository
	mockEnrollmentRepo *MockEnrollmentRepository
	service            portssvc.EnrollmentSvcFacade
	student            *domain.User
}

func (suite *EnrollmentServiceTestSuite) SetupTest() {
	suite.mockCourseRepo = new(MockCourseRepository)
	suite.mockEnrollmentRepo = new(MockEnrollmentRepository)
	suite.service = services.NewEnrollmentService(suite.mockCourseRepo, suite.mockEnrollmentRepo)
	suite.student = &domain.User{UserID: uuid.NewString(), Role: domain.RoleStudent}
}

func publishedCourse() *domain.Course {
	discount := decimal.RequireFromString("29.99")
	expiry := time.Now().Add(24 * time.Hour)
	return &domain.Course{
		CourseID:       uuid.NewString(),
		Title:          "Solar Power Basics",
		Slug:           "solar-power-basics",
		Status:         domain.CoursePublished,
		Price:          decimal.RequireFromString("49.99"),
		DiscountPrice:  &discount,
		DiscountExpiry: &expiry,
		Currency:       "KES",
		TotalLessons:   2,
	}
}

func (suite *EnrollmentServiceTestSuite) TestEnroll_PaidCourseCreatesPendingPayment() {
	course := publishedCourse()
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return course, nil
	}
	suite.mockEnrollmentRepo.SaveEnrollmentFn = func(ctx context.Context, e domain.Enrollment) error { return nil }

	var payment domain.Payment
	suite.mockEnrollmentRepo.SavePaymentFn = func(ctx context.Context, p domain.Payment) error {
		payment = p
		return nil
	}

	enrollment, err := suite.service.Enroll(context.Background(), suite.student, course.Slug, domain.MethodMpesa)
	suite.Require().NoError(err)
	suite.Equal(domain.EnrollmentActive, enrollment.Status)
	suite.Equal(domain.PaymentPending, payment.Status)
	suite.Equal(domain.MethodMpesa, payment.Method)
	// The payment is taken at the discounted price while the window is open.
	suite.True(payment.Amount.Equal(decimal.RequireFromString("29.99")))
}

func (suite *EnrollmentServiceTestSuite) TestEnroll_FreeCourseSkipsPayment() {
	course := publishedCourse()
	course.IsFree = true
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return course, nil
	}
	suite.mockEnrollmentRepo.SaveEnrollmentFn = func(ctx context.Context, e domain.Enrollment) error { return nil }
	// No SavePaymentFn: enrolling in a free course must not create one.

	_, err := suite.service.Enroll(context.Background(), suite.student, course.Slug, "")
	suite.Require().NoError(err)
}

func (suite *EnrollmentServiceTestSuite) TestEnroll_DraftCourseNotFound() {
	course := publishedCourse()
	course.Status = domain.CourseDraft
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return course, nil
	}

	_, err := suite.service.Enroll(context.Background(), suite.student, course.Slug, "")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EnrollmentServiceTestSuite) TestEnroll_DuplicateConflict() {
	course := publishedCourse()
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return course, nil
	}
	suite.mockEnrollmentRepo.SaveEnrollmentFn = func(ctx context.Context, e domain.Enrollment) error {
		return apperrors.ErrDuplicate
	}

	_, err := suite.service.Enroll(context.Background(), suite.student, course.Slug, "")
	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
}

func (suite *EnrollmentServiceTestSuite) TestCompleteLesson_FinalLessonCompletesAndCertifies() {
	course := publishedCourse()
	enrollment := &domain.Enrollment{
		EnrollmentID: uuid.NewString(),
		UserID:       suite.student.UserID,
		CourseID:     course.CourseID,
		Status:       domain.EnrollmentActive,
	}
	lesson := &domain.Lesson{LessonID: uuid.NewString(), ModuleID: "m1"}

	suite.mockEnrollmentRepo.FindEnrollmentByIDFn = func(ctx context.Context, id string) (*domain.Enrollment, error) {
		return enrollment, nil
	}
	suite.mockCourseRepo.FindLessonByIDFn = func(ctx context.Context, id string) (*domain.Lesson, error) {
		return lesson, nil
	}
	suite.mockCourseRepo.FindCourseByIDFn = func(ctx context.Context, id string) (*domain.Course, error) {
		return course, nil
	}
	suite.mockEnrollmentRepo.SaveLessonProgressFn = func(ctx context.Context, p domain.LessonProgress) error { return nil }
	suite.mockEnrollmentRepo.CountCompletedLessonsFn = func(ctx context.Context, id string) (int, error) {
		return course.TotalLessons, nil
	}

	var certificate domain.Certificate
	suite.mockEnrollmentRepo.SaveCertificateFn = func(ctx context.Context, c domain.Certificate) error {
		certificate = c
		return nil
	}
	suite.mockEnrollmentRepo.UpdateEnrollmentFn = func(ctx context.Context, e domain.Enrollment) error { return nil }
	suite.mockEnrollmentRepo.FindCertificateByEnrollmentFn = func(ctx context.Context, id string) (*domain.Certificate, error) {
		return &certificate, nil
	}

	view, err := suite.service.CompleteLesson(context.Background(), suite.student.UserID, enrollment.EnrollmentID, lesson.LessonID, 300)
	suite.Require().NoError(err)
	suite.Equal(string(domain.EnrollmentCompleted), view.Status)
	suite.Equal(100, view.ProgressPercentage)
	suite.Require().NotNil(view.CompletedAt)
	suite.Require().NotNil(view.CertificateID)
	suite.Equal(certificate.CertificateID, *view.CertificateID)
}

func (suite *EnrollmentServiceTestSuite) TestCompleteLesson_RepeatIsNoop() {
	course := publishedCourse()
	enrollment := &domain.Enrollment{
		EnrollmentID: uuid.NewString(),
		UserID:       suite.student.UserID,
		CourseID:     course.CourseID,
		Status:       domain.EnrollmentActive,
	}
	lesson := &domain.Lesson{LessonID: uuid.NewString()}

	suite.mockEnrollmentRepo.FindEnrollmentByIDFn = func(ctx context.Context, id string) (*domain.Enrollment, error) {
		return enrollment, nil
	}
	suite.mockCourseRepo.FindLessonByIDFn = func(ctx context.Context, id string) (*domain.Lesson, error) {
		return lesson, nil
	}
	suite.mockCourseRepo.FindCourseByIDFn = func(ctx context.Context, id string) (*domain.Course, error) {
		return course, nil
	}
	suite.mockEnrollmentRepo.SaveLessonProgressFn = func(ctx context.Context, p domain.LessonProgress) error {
		return apperrors.ErrDuplicate
	}
	suite.mockEnrollmentRepo.CountCompletedLessonsFn = func(ctx context.Context, id string) (int, error) {
		return 1, nil
	}
	suite.mockEnrollmentRepo.UpdateEnrollmentFn = func(ctx context.Context, e domain.Enrollment) error { return nil }

	view, err := suite.service.CompleteLesson(context.Background(), suite.student.UserID, enrollment.EnrollmentID, lesson.LessonID, 0)
	suite.Require().NoError(err)
	suite.Equal(string(domain.EnrollmentActive), view.Status)
	suite.Equal(50, view.ProgressPercentage)
}

func (suite *EnrollmentServiceTestSuite) TestCompleteLesson_WrongUserForbidden() {
	enrollment := &domain.Enrollment{
		EnrollmentID: uuid.NewString(),
		UserID:       uuid.NewString(),
	}
	suite.mockEnrollmentRepo.FindEnrollmentByIDFn = func(ctx context.Context, id string) (*domain.Enrollment, error) {
		return enrollment, nil
	}

	_, err := suite.service.CompleteLesson(context.Background(), suite.student.UserID, enrollment.EnrollmentID, "l1", 0)
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *EnrollmentServiceTestSuite) TestReviewCourse_RequiresCompletion() {
	enrollment := &domain.Enrollment{
		EnrollmentID: uuid.NewString(),
		UserID:       suite.student.UserID,
		Status:       domain.EnrollmentActive,
	}
	suite.mockEnrollmentRepo.FindEnrollmentByIDFn = func(ctx context.Context, id string) (*domain.Enrollment, error) {
		return enrollment, nil
	}

	_, err := suite.service.ReviewCourse(context.Background(), suite.student.UserID, enrollment.EnrollmentID, dto.ReviewRequest{Rating: 5, Comment: "great"})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EnrollmentServiceTestSuite) TestReviewCourse_Success() {
	now := time.Now()
	enrollment := &domain.Enrollment{
		EnrollmentID: uuid.NewString(),
		UserID:       suite.student.UserID,
		Status:       domain.EnrollmentCompleted,
		CompletedAt:  &now,
	}
	suite.mockEnrollmentRepo.FindEnrollmentByIDFn = func(ctx context.Context, id string) (*domain.Enrollment, error) {
		return enrollment, nil
	}
	suite.mockEnrollmentRepo.SaveReviewFn = func(ctx context.Context, r domain.CourseReview) error { return nil }

	review, err := suite.service.ReviewCourse(context.Background(), suite.student.UserID, enrollment.EnrollmentID, dto.ReviewRequest{Rating: 4, Comment: "solid"})
	suite.Require().NoError(err)
	suite.Equal(4, review.Rating)
	suite.False(review.IsApproved)
}

func TestEnrollmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentServiceTestSuite))
}
