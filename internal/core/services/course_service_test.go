package services_test

import (
	"context"
	"testing"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/core/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CourseServiceTestSuite struct {
	suite.Suite
	mockCourseRepo *MockCourseRepository
	service        portssvc.CourseSvcFacade
	mentor         *domain.User
}

func (suite *CourseServiceTestSuite) SetupTest() {
	suite.mockCourseRepo = new(MockCourseRepository)
	suite.service = services.NewCourseService(suite.mockCourseRepo)
	suite.mentor = &domain.User{UserID: uuid.NewString(), Role: domain.RoleMentor}
}

func (suite *CourseServiceTestSuite) createReq() dto.CreateCourseRequest {
	return dto.CreateCourseRequest{
		Title:            "Intro to Composting",
		Description:      "Everything about composting.",
		ShortDescription: "Compost basics.",
		Level:            "beginner",
		Price:            "49.99",
		Currency:         "KES",
	}
}

func (suite *CourseServiceTestSuite) TestCreateCourse_Success() {
	suite.mockCourseRepo.SlugExistsFn = func(ctx context.Context, slug string) (bool, error) { return false, nil }
	var saved domain.Course
	suite.mockCourseRepo.SaveCourseFn = func(ctx context.Context, course domain.Course) error {
		saved = course
		return nil
	}

	course, err := suite.service.CreateCourse(context.Background(), suite.mentor, suite.createReq())
	suite.Require().NoError(err)
	suite.Equal("intro-to-composting", course.Slug)
	suite.Equal(domain.CourseDraft, course.Status)
	suite.Equal(suite.mentor.UserID, course.CreatedBy)
	suite.True(saved.Price.Equal(decimal.RequireFromString("49.99")))
}

func (suite *CourseServiceTestSuite) TestCreateCourse_SlugCollisionGetsSuffix() {
	taken := map[string]bool{"intro-to-composting": true, "intro-to-composting-2": true}
	suite.mockCourseRepo.SlugExistsFn = func(ctx context.Context, slug string) (bool, error) {
		return taken[slug], nil
	}
	suite.mockCourseRepo.SaveCourseFn = func(ctx context.Context, course domain.Course) error { return nil }

	course, err := suite.service.CreateCourse(context.Background(), suite.mentor, suite.createReq())
	suite.Require().NoError(err)
	suite.Equal("intro-to-composting-3", course.Slug)
}

func (suite *CourseServiceTestSuite) TestCreateCourse_ReaderForbidden() {
	reader := &domain.User{UserID: uuid.NewString(), Role: domain.RoleReader}
	_, err := suite.service.CreateCourse(context.Background(), reader, suite.createReq())
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CourseServiceTestSuite) TestCreateCourse_InvalidPrice() {
	req := suite.createReq()
	req.Price = "free"
	_, err := suite.service.CreateCourse(context.Background(), suite.mentor, req)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CourseServiceTestSuite) TestCreateCourse_InvalidLevel() {
	req := suite.createReq()
	req.Level = "expert"
	_, err := suite.service.CreateCourse(context.Background(), suite.mentor, req)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CourseServiceTestSuite) TestPublishCourse_SetsPublishedAt() {
	draft := &domain.Course{
		CourseID:  uuid.NewString(),
		Slug:      "intro-to-composting",
		Status:    domain.CourseDraft,
		CreatedBy: suite.mentor.UserID,
	}
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return draft, nil
	}
	var updated domain.Course
	suite.mockCourseRepo.UpdateCourseFn = func(ctx context.Context, course domain.Course) error {
		updated = course
		return nil
	}

	course, err := suite.service.PublishCourse(context.Background(), suite.mentor, draft.Slug)
	suite.Require().NoError(err)
	suite.Equal(domain.CoursePublished, course.Status)
	suite.Require().NotNil(course.PublishedAt)
	suite.Equal(domain.CoursePublished, updated.Status)
}

func (suite *CourseServiceTestSuite) TestPublishCourse_Idempotent() {
	published := &domain.Course{
		CourseID:  uuid.NewString(),
		Slug:      "already-live",
		Status:    domain.CoursePublished,
		CreatedBy: suite.mentor.UserID,
	}
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return published, nil
	}
	// No UpdateCourseFn: a second publish must not write.

	course, err := suite.service.PublishCourse(context.Background(), suite.mentor, published.Slug)
	suite.Require().NoError(err)
	suite.Equal(domain.CoursePublished, course.Status)
}

func (suite *CourseServiceTestSuite) TestPublishCourse_OtherMentorForbidden() {
	draft := &domain.Course{
		CourseID:  uuid.NewString(),
		Slug:      "someone-elses",
		Status:    domain.CourseDraft,
		CreatedBy: uuid.NewString(),
	}
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return draft, nil
	}

	_, err := suite.service.PublishCourse(context.Background(), suite.mentor, draft.Slug)
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CourseServiceTestSuite) TestGetCourseBySlug_ReturnsModules() {
	course := &domain.Course{CourseID: uuid.NewString(), Slug: "with-modules", Status: domain.CoursePublished}
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return course, nil
	}
	suite.mockCourseRepo.ListModulesFn = func(ctx context.Context, courseID string) ([]domain.Module, error) {
		return []domain.Module{{ModuleID: "m1", CourseID: courseID, Order: 1}}, nil
	}

	got, modules, err := suite.service.GetCourseBySlug(context.Background(), "with-modules")
	suite.Require().NoError(err)
	suite.Equal(course.CourseID, got.CourseID)
	suite.Len(modules, 1)
}

func (suite *CourseServiceTestSuite) TestGetCourseBySlug_DraftHiddenFromPublic() {
	draft := &domain.Course{CourseID: uuid.NewString(), Slug: "unfinished", Status: domain.CourseDraft}
	suite.mockCourseRepo.FindCourseBySlugFn = func(ctx context.Context, slug string) (*domain.Course, error) {
		return draft, nil
	}

	_, _, err := suite.service.GetCourseBySlug(context.Background(), "unfinished")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestCourseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CourseServiceTestSuite))
}
