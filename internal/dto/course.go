package dto

import (
	"time"

	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCourseRequest is the mentor/admin course creation payload.
type CreateCourseRequest struct {
	Title            string  `json:"title" binding:"required,max=200"`
	Subtitle         string  `json:"subtitle" binding:"max=300"`
	Description      string  `json:"description" binding:"required"`
	ShortDescription string  `json:"short_description" binding:"required,max=500"`
	CategoryID       *string `json:"category_id"`
	Level            string  `json:"level" binding:"omitempty,courselevel"`
	Price            string  `json:"price" binding:"required"`
	Currency         string  `json:"currency"`
	IsFree           bool    `json:"is_free"`
	DurationHours    int     `json:"duration_hours"`
}

// CourseResponse is the catalog view of a course, with the effective
// price after any active discount.
type CourseResponse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Slug             string          `json:"slug"`
	Subtitle         string          `json:"subtitle,omitempty"`
	ShortDescription string          `json:"short_description"`
	Level            string          `json:"level"`
	ThumbnailURL     string          `json:"thumbnail_url,omitempty"`
	DurationHours    int             `json:"duration_hours"`
	TotalLessons     int             `json:"total_lessons"`
	Price            decimal.Decimal `json:"price"`
	CurrentPrice     decimal.Decimal `json:"current_price"`
	Currency         string          `json:"currency"`
	IsFree           bool            `json:"is_free"`
	IsFeatured       bool            `json:"is_featured"`
	Status           string          `json:"status"`
	PublishedAt      *time.Time      `json:"published_at,omitempty"`
}

// ToCourseResponse converts a domain.Course to its catalog view.
func ToCourseResponse(c *domain.Course, now time.Time) CourseResponse {
	return CourseResponse{
		ID:               c.CourseID,
		Title:            c.Title,
		Slug:             c.Slug,
		Subtitle:         c.Subtitle,
		ShortDescription: c.ShortDescription,
		Level:            string(c.Level),
		ThumbnailURL:     c.ThumbnailURL,
		DurationHours:    c.DurationHours,
		TotalLessons:     c.TotalLessons,
		Price:            c.Price,
		CurrentPrice:     c.CurrentPrice(now),
		Currency:         c.Currency,
		IsFree:           c.IsFree,
		IsFeatured:       c.IsFeatured,
		Status:           string(c.Status),
		PublishedAt:      c.PublishedAt,
	}
}

// CourseDetailResponse adds the module outline to the catalog view.
type CourseDetailResponse struct {
	CourseResponse
	Description string          `json:"description"`
	Modules     []domain.Module `json:"modules"`
}

// EnrollRequest selects the payment method for a paid course.
type EnrollRequest struct {
	Method string `json:"method"`
}

// EnrollmentView is an enrollment enriched with progress.
type EnrollmentView struct {
	ID                 string     `json:"id"`
	CourseID           string     `json:"course_id"`
	CourseTitle        string     `json:"course_title"`
	Status             string     `json:"status"`
	EnrolledAt         time.Time  `json:"enrolled_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	ProgressPercentage int        `json:"progress_percentage"`
	CertificateID      *string    `json:"certificate_id,omitempty"`
}

// ReviewRequest rates a completed course.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// ListCoursesParams defines query parameters for the catalog listing.
type ListCoursesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
