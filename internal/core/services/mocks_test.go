package services_test

import (
	"context"
	"time"

	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderIDFn func(ctx context.Context, provider domain.AuthProvider, externalID string) (*domain.User, error)
	FindUserByIDFn         func(ctx context.Context, userID string) (*domain.User, error)
	FindUsersFn            func(ctx context.Context, limit, offset int) ([]domain.User, error)
	CreateUserFn           func(ctx context.Context, user domain.User) error
	LinkProviderFn         func(ctx context.Context, userID string, provider domain.AuthProvider, externalID, profilePicture string) error
	UpdateUserFn           func(ctx context.Context, user domain.User) error
	UpdateLastLoginFn      func(ctx context.Context, userID string, at time.Time) error
	SetActiveFn            func(ctx context.Context, userID string, active bool) error
	DeleteUserFn           func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, externalID string) (*domain.User, error) {
	if m.FindUserByProviderIDFn != nil {
		return m.FindUserByProviderIDFn(ctx, provider, externalID)
	}
	args := m.Called(ctx, provider, externalID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) LinkProvider(ctx context.Context, userID string, provider domain.AuthProvider, externalID, profilePicture string) error {
	if m.LinkProviderFn != nil {
		return m.LinkProviderFn(ctx, userID, provider, externalID, profilePicture)
	}
	args := m.Called(ctx, userID, provider, externalID, profilePicture)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	if m.UpdateLastLoginFn != nil {
		return m.UpdateLastLoginFn(ctx, userID, at)
	}
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, userID string, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, userID, active)
	}
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock TokenBlacklistRepository ---

type MockTokenBlacklistRepository struct {
	mock.Mock
	AddFn           func(ctx context.Context, jti, userID string, expiresAt time.Time) error
	IsBlacklistedFn func(ctx context.Context, jti string) (bool, error)
	DeleteExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *MockTokenBlacklistRepository) Add(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, jti, userID, expiresAt)
	}
	args := m.Called(ctx, jti, userID, expiresAt)
	return args.Error(0)
}

func (m *MockTokenBlacklistRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	if m.IsBlacklistedFn != nil {
		return m.IsBlacklistedFn(ctx, jti)
	}
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenBlacklistRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeleteExpiredFn != nil {
		return m.DeleteExpiredFn(ctx, now)
	}
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock DeletionRequestRepository ---

type MockDeletionRequestRepository struct {
	mock.Mock
	SaveFn func(ctx context.Context, confirmationCode, email, reason string, requestedAt time.Time) error
}

func (m *MockDeletionRequestRepository) Save(ctx context.Context, confirmationCode, email, reason string, requestedAt time.Time) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, confirmationCode, email, reason, requestedAt)
	}
	args := m.Called(ctx, confirmationCode, email, reason, requestedAt)
	return args.Error(0)
}

// --- Mock CourseRepository ---

type MockCourseRepository struct {
	mock.Mock
	SaveCourseFn           func(ctx context.Context, course domain.Course) error
	UpdateCourseFn         func(ctx context.Context, course domain.Course) error
	FindCourseByIDFn       func(ctx context.Context, courseID string) (*domain.Course, error)
	FindCourseBySlugFn     func(ctx context.Context, slug string) (*domain.Course, error)
	SlugExistsFn           func(ctx context.Context, slug string) (bool, error)
	ListPublishedCoursesFn func(ctx context.Context, limit, offset int) ([]domain.Course, error)
	ListModulesFn          func(ctx context.Context, courseID string) ([]domain.Module, error)
	ListLessonsFn          func(ctx context.Context, moduleID string) ([]domain.Lesson, error)
	FindLessonByIDFn       func(ctx context.Context, lessonID string) (*domain.Lesson, error)
}

func (m *MockCourseRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	if m.SaveCourseFn != nil {
		return m.SaveCourseFn(ctx, course)
	}
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) UpdateCourse(ctx context.Context, course domain.Course) error {
	if m.UpdateCourseFn != nil {
		return m.UpdateCourseFn(ctx, course)
	}
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	if m.FindCourseByIDFn != nil {
		return m.FindCourseByIDFn(ctx, courseID)
	}
	args := m.Called(ctx, courseID)
	var course *domain.Course
	if args.Get(0) != nil {
		course = args.Get(0).(*domain.Course)
	}
	return course, args.Error(1)
}

func (m *MockCourseRepository) FindCourseBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	if m.FindCourseBySlugFn != nil {
		return m.FindCourseBySlugFn(ctx, slug)
	}
	args := m.Called(ctx, slug)
	var course *domain.Course
	if args.Get(0) != nil {
		course = args.Get(0).(*domain.Course)
	}
	return course, args.Error(1)
}

func (m *MockCourseRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFn != nil {
		return m.SlugExistsFn(ctx, slug)
	}
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseRepository) ListPublishedCourses(ctx context.Context, limit, offset int) ([]domain.Course, error) {
	if m.ListPublishedCoursesFn != nil {
		return m.ListPublishedCoursesFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var courses []domain.Course
	if args.Get(0) != nil {
		courses = args.Get(0).([]domain.Course)
	}
	return courses, args.Error(1)
}

func (m *MockCourseRepository) ListModules(ctx context.Context, courseID string) ([]domain.Module, error) {
	if m.ListModulesFn != nil {
		return m.ListModulesFn(ctx, courseID)
	}
	args := m.Called(ctx, courseID)
	var modules []domain.Module
	if args.Get(0) != nil {
		modules = args.Get(0).([]domain.Module)
	}
	return modules, args.Error(1)
}

func (m *MockCourseRepository) ListLessons(ctx context.Context, moduleID string) ([]domain.Lesson, error) {
	if m.ListLessonsFn != nil {
		return m.ListLessonsFn(ctx, moduleID)
	}
	args := m.Called(ctx, moduleID)
	var lessons []domain.Lesson
	if args.Get(0) != nil {
		lessons = args.Get(0).([]domain.Lesson)
	}
	return lessons, args.Error(1)
}

func (m *MockCourseRepository) FindLessonByID(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	if m.FindLessonByIDFn != nil {
		return m.FindLessonByIDFn(ctx, lessonID)
	}
	args := m.Called(ctx, lessonID)
	var lesson *domain.Lesson
	if args.Get(0) != nil {
		lesson = args.Get(0).(*domain.Lesson)
	}
	return lesson, args.Error(1)
}

// --- Mock EnrollmentRepository ---

type MockEnrollmentRepository struct {
	mock.Mock
	SaveEnrollmentFn              func(ctx context.Context, e domain.Enrollment) error
	FindEnrollmentByIDFn          func(ctx context.Context, enrollmentID string) (*domain.Enrollment, error)
	FindEnrollmentFn              func(ctx context.Context, userID, courseID string) (*domain.Enrollment, error)
	ListEnrollmentsByUserFn       func(ctx context.Context, userID string) ([]domain.Enrollment, error)
	UpdateEnrollmentFn            func(ctx context.Context, e domain.Enrollment) error
	SaveLessonProgressFn          func(ctx context.Context, p domain.LessonProgress) error
	CountCompletedLessonsFn       func(ctx context.Context, enrollmentID string) (int, error)
	SavePaymentFn                 func(ctx context.Context, p domain.Payment) error
	SaveCertificateFn             func(ctx context.Context, c domain.Certificate) error
	FindCertificateByEnrollmentFn func(ctx context.Context, enrollmentID string) (*domain.Certificate, error)
	SaveReviewFn                  func(ctx context.Context, r domain.CourseReview) error
}

func (m *MockEnrollmentRepository) SaveEnrollment(ctx context.Context, e domain.Enrollment) error {
	if m.SaveEnrollmentFn != nil {
		return m.SaveEnrollmentFn(ctx, e)
	}
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error) {
	if m.FindEnrollmentByIDFn != nil {
		return m.FindEnrollmentByIDFn(ctx, enrollmentID)
	}
	args := m.Called(ctx, enrollmentID)
	var e *domain.Enrollment
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Enrollment)
	}
	return e, args.Error(1)
}

func (m *MockEnrollmentRepository) FindEnrollment(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	if m.FindEnrollmentFn != nil {
		return m.FindEnrollmentFn(ctx, userID, courseID)
	}
	args := m.Called(ctx, userID, courseID)
	var e *domain.Enrollment
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Enrollment)
	}
	return e, args.Error(1)
}

func (m *MockEnrollmentRepository) ListEnrollmentsByUser(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	if m.ListEnrollmentsByUserFn != nil {
		return m.ListEnrollmentsByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var es []domain.Enrollment
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.Enrollment)
	}
	return es, args.Error(1)
}

func (m *MockEnrollmentRepository) UpdateEnrollment(ctx context.Context, e domain.Enrollment) error {
	if m.UpdateEnrollmentFn != nil {
		return m.UpdateEnrollmentFn(ctx, e)
	}
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) SaveLessonProgress(ctx context.Context, p domain.LessonProgress) error {
	if m.SaveLessonProgressFn != nil {
		return m.SaveLessonProgressFn(ctx, p)
	}
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) CountCompletedLessons(ctx context.Context, enrollmentID string) (int, error) {
	if m.CountCompletedLessonsFn != nil {
		return m.CountCompletedLessonsFn(ctx, enrollmentID)
	}
	args := m.Called(ctx, enrollmentID)
	return args.Int(0), args.Error(1)
}

func (m *MockEnrollmentRepository) SavePayment(ctx context.Context, p domain.Payment) error {
	if m.SavePaymentFn != nil {
		return m.SavePaymentFn(ctx, p)
	}
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) SaveCertificate(ctx context.Context, c domain.Certificate) error {
	if m.SaveCertificateFn != nil {
		return m.SaveCertificateFn(ctx, c)
	}
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) FindCertificateByEnrollment(ctx context.Context, enrollmentID string) (*domain.Certificate, error) {
	if m.FindCertificateByEnrollmentFn != nil {
		return m.FindCertificateByEnrollmentFn(ctx, enrollmentID)
	}
	args := m.Called(ctx, enrollmentID)
	var c *domain.Certificate
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Certificate)
	}
	return c, args.Error(1)
}

func (m *MockEnrollmentRepository) SaveReview(ctx context.Context, r domain.CourseReview) error {
	if m.SaveReviewFn != nil {
		return m.SaveReviewFn(ctx, r)
	}
	args := m.Called(ctx, r)
	return args.Error(0)
}
