package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CourseStatus is the publication state of a course.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

// CourseLevel is the difficulty rating of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// CourseCategory groups courses (Environment, Business, Technology, ...).
type CourseCategory struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Course is a sellable unit of the catalog.
type Course struct {
	CourseID         string          `json:"courseID"`
	Title            string          `json:"title"`
	Slug             string          `json:"slug"`
	Subtitle         string          `json:"subtitle,omitempty"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	CategoryID       *string         `json:"categoryID,omitempty"`
	Level            CourseLevel     `json:"level"`
	ThumbnailURL     string          `json:"thumbnailURL,omitempty"`
	PromoVideoURL    string          `json:"promoVideoURL,omitempty"`
	DurationHours    int             `json:"durationHours"`
	TotalLessons     int             `json:"totalLessons"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	IsFree           bool            `json:"isFree"`
	DiscountPrice    *decimal.Decimal `json:"discountPrice,omitempty"`
	DiscountExpiry   *time.Time      `json:"discountExpiry,omitempty"`
	Status           CourseStatus    `json:"status"`
	IsFeatured       bool            `json:"isFeatured"`
	PublishedAt      *time.Time      `json:"publishedAt,omitempty"`
	CreatedBy        string          `json:"createdBy"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// CurrentPrice returns the discount price while the discount window is
// open, the list price otherwise.
func (c Course) CurrentPrice(now time.Time) decimal.Decimal {
	if c.DiscountPrice != nil && c.DiscountExpiry != nil && now.Before(*c.DiscountExpiry) {
		return *c.DiscountPrice
	}
	return c.Price
}

// Module is an ordered section within a course.
type Module struct {
	ModuleID        string    `json:"moduleID"`
	CourseID        string    `json:"courseID"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Order           int       `json:"order"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LessonType is the content kind of a lesson.
type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonText       LessonType = "text"
	LessonQuiz       LessonType = "quiz"
	LessonAssignment LessonType = "assignment"
)

// Lesson is an individual unit within a module.
type Lesson struct {
	LessonID      string     `json:"lessonID"`
	ModuleID      string     `json:"moduleID"`
	Title         string     `json:"title"`
	Type          LessonType `json:"type"`
	Order         int        `json:"order"`
	VideoURL      string     `json:"videoURL,omitempty"`
	VideoDuration int        `json:"videoDuration,omitempty"`
	Content       string     `json:"content,omitempty"`
	IsPreview     bool       `json:"isPreview"`
	CreatedAt     time.Time  `json:"createdAt"`
}
