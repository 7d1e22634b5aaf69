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

// PgxCourseRepository persists the course catalog.
type PgxCourseRepository struct {
	db *pgxpool.Pool
}

func newPgxCourseRepository(db *pgxpool.Pool) ports.CourseRepository {
	return &PgxCourseRepository{db: db}
}

var _ ports.CourseRepository = (*PgxCourseRepository)(nil)

const courseColumns = `course_id, title, slug, subtitle, description, short_description,
	category_id, level, thumbnail_url, promo_video_url, duration_hours, total_lessons,
	price, currency, is_free, discount_price, discount_expiry, status, is_featured,
	published_at, created_by, created_at, updated_at`

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var c domain.Course
	err := row.Scan(
		&c.CourseID,
		&c.Title,
		&c.Slug,
		&c.Subtitle,
		&c.Description,
		&c.ShortDescription,
		&c.CategoryID,
		&c.Level,
		&c.ThumbnailURL,
		&c.PromoVideoURL,
		&c.DurationHours,
		&c.TotalLessons,
		&c.Price,
		&c.Currency,
		&c.IsFree,
		&c.DiscountPrice,
		&c.DiscountExpiry,
		&c.Status,
		&c.IsFeatured,
		&c.PublishedAt,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCourseRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	query := `
        INSERT INTO courses (` + courseColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
    `
	_, err := r.db.Exec(ctx, query,
		course.CourseID, course.Title, course.Slug, course.Subtitle, course.Description,
		course.ShortDescription, course.CategoryID, course.Level, course.ThumbnailURL,
		course.PromoVideoURL, course.DurationHours, course.TotalLessons, course.Price,
		course.Currency, course.IsFree, course.DiscountPrice, course.DiscountExpiry,
		course.Status, course.IsFeatured, course.PublishedAt, course.CreatedBy,
		course.CreatedAt, course.UpdatedAt,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to save course: %w", err)
	}
	return nil
}

func (r *PgxCourseRepository) UpdateCourse(ctx context.Context, course domain.Course) error {
	query := `
        UPDATE courses
        SET title = $1, subtitle = $2, description = $3, short_description = $4,
            level = $5, price = $6, currency = $7, is_free = $8, discount_price = $9,
            discount_expiry = $10, status = $11, is_featured = $12, published_at = $13,
            total_lessons = $14, updated_at = $15
        WHERE course_id = $16;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		course.Title, course.Subtitle, course.Description, course.ShortDescription,
		course.Level, course.Price, course.Currency, course.IsFree, course.DiscountPrice,
		course.DiscountExpiry, course.Status, course.IsFeatured, course.PublishedAt,
		course.TotalLessons, course.UpdatedAt, course.CourseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course %s: %w", course.CourseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCourseRepository) FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE course_id = $1;`
	course, err := scanCourse(r.db.QueryRow(ctx, query, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find course by ID %s: %w", courseID, err)
	}
	return course, nil
}

func (r *PgxCourseRepository) FindCourseBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE slug = $1;`
	course, err := scanCourse(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find course by slug %s: %w", slug, err)
	}
	return course, nil
}

func (r *PgxCourseRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM courses WHERE slug = $1;`, slug).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return true, nil
}

func (r *PgxCourseRepository) ListPublishedCourses(ctx context.Context, limit, offset int) ([]domain.Course, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT ` + courseColumns + `
        FROM courses
        WHERE status = 'published'
        ORDER BY is_featured DESC, published_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", rows.Err())
	}
	return courses, nil
}

func (r *PgxCourseRepository) ListModules(ctx context.Context, courseID string) ([]domain.Module, error) {
	query := `
        SELECT module_id, course_id, title, description, module_order, duration_minutes, created_at
        FROM modules
        WHERE course_id = $1
        ORDER BY module_order;
    `
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	modules := []domain.Module{}
	for rows.Next() {
		var m domain.Module
		if err := rows.Scan(&m.ModuleID, &m.CourseID, &m.Title, &m.Description, &m.Order, &m.DurationMinutes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan module row: %w", err)
		}
		modules = append(modules, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating module rows: %w", rows.Err())
	}
	return modules, nil
}

func (r *PgxCourseRepository) ListLessons(ctx context.Context, moduleID string) ([]domain.Lesson, error) {
	query := `
        SELECT lesson_id, module_id, title, lesson_type, lesson_order, video_url,
               video_duration, content, is_preview, created_at
        FROM lessons
        WHERE module_id = $1
        ORDER BY lesson_order;
    `
	rows, err := r.db.Query(ctx, query, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []domain.Lesson{}
	for rows.Next() {
		var l domain.Lesson
		if err := rows.Scan(&l.LessonID, &l.ModuleID, &l.Title, &l.Type, &l.Order, &l.VideoURL, &l.VideoDuration, &l.Content, &l.IsPreview, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lesson row: %w", err)
		}
		lessons = append(lessons, l)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", rows.Err())
	}
	return lessons, nil
}

func (r *PgxCourseRepository) FindLessonByID(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	query := `
        SELECT lesson_id, module_id, title, lesson_type, lesson_order, video_url,
               video_duration, content, is_preview, created_at
        FROM lessons
        WHERE lesson_id = $1;
    `
	var l domain.Lesson
	err := r.db.QueryRow(ctx, query, lessonID).Scan(
		&l.LessonID, &l.ModuleID, &l.Title, &l.Type, &l.Order,
		&l.VideoURL, &l.VideoDuration, &l.Content, &l.IsPreview, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lesson by ID %s: %w", lessonID, err)
	}
	return &l, nil
}
