package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/ecodeed/academy_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// courseService manages the course catalog.
type courseService struct {
	courseRepo ports.CourseRepository
}

// NewCourseService creates the course catalog service.
func NewCourseService(courseRepo ports.CourseRepository) portssvc.CourseSvcFacade {
	return &courseService{courseRepo: courseRepo}
}

var _ portssvc.CourseSvcFacade = (*courseService)(nil)

func (s *courseService) ListCourses(ctx context.Context, limit, offset int) ([]domain.Course, error) {
	courses, err := s.courseRepo.ListPublishedCourses(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// GetCourseBySlug serves the public catalog detail. Unpublished courses
// are indistinguishable from missing ones here; management flows look
// them up through the repository directly.
func (s *courseService) GetCourseBySlug(ctx context.Context, slug string) (*domain.Course, []domain.Module, error) {
	course, err := s.courseRepo.FindCourseBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if course.Status != domain.CoursePublished {
		return nil, nil, apperrors.ErrNotFound
	}
	modules, err := s.courseRepo.ListModules(ctx, course.CourseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list modules: %w", err)
	}
	return course, modules, nil
}

func (s *courseService) CreateCourse(ctx context.Context, creator *domain.User, req dto.CreateCourseRequest) (*domain.Course, error) {
	if !creator.Role.CanManageCourses() {
		return nil, apperrors.ErrForbidden
	}

	level := domain.LevelBeginner
	if req.Level != "" {
		switch domain.CourseLevel(req.Level) {
		case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
			level = domain.CourseLevel(req.Level)
		default:
			return nil, fmt.Errorf("%w: invalid level %q", apperrors.ErrValidation, req.Level)
		}
	}

	price := decimal.Zero
	if !req.IsFree {
		parsed, err := decimal.NewFromString(req.Price)
		if err != nil || parsed.IsNegative() {
			return nil, fmt.Errorf("%w: invalid price %q", apperrors.ErrValidation, req.Price)
		}
		price = parsed
	}

	currency := req.Currency
	if currency == "" {
		currency = "KES"
	}

	slug, err := s.uniqueSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	course := domain.Course{
		CourseID:         uuid.NewString(),
		Title:            req.Title,
		Slug:             slug,
		Subtitle:         req.Subtitle,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		CategoryID:       req.CategoryID,
		Level:            level,
		DurationHours:    req.DurationHours,
		Price:            price,
		Currency:         currency,
		IsFree:           req.IsFree,
		Status:           domain.CourseDraft,
		CreatedBy:        creator.UserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.courseRepo.SaveCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to save course: %w", err)
	}
	return &course, nil
}

func (s *courseService) PublishCourse(ctx context.Context, actor *domain.User, slug string) (*domain.Course, error) {
	if !actor.Role.CanManageCourses() {
		return nil, apperrors.ErrForbidden
	}

	course, err := s.courseRepo.FindCourseBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if course.CreatedBy != actor.UserID && !actor.Role.CanManageUsers() {
		return nil, apperrors.ErrForbidden
	}
	if course.Status == domain.CoursePublished {
		return course, nil
	}

	now := time.Now()
	course.Status = domain.CoursePublished
	course.PublishedAt = &now
	course.UpdatedAt = now
	if err := s.courseRepo.UpdateCourse(ctx, *course); err != nil {
		return nil, fmt.Errorf("failed to publish course: %w", err)
	}
	return course, nil
}

// uniqueSlug slugifies the title and appends a counter until the slug is
// free. Collisions are still caught by the unique index at insert time.
func (s *courseService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		return "", fmt.Errorf("%w: title produces an empty slug", apperrors.ErrValidation)
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.courseRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
