package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrollmentStatus tracks a learner's standing in a course.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// Enrollment links a user to a course. Unique per (user, course).
type Enrollment struct {
	EnrollmentID    string           `json:"enrollmentID"`
	UserID          string           `json:"userID"`
	CourseID        string           `json:"courseID"`
	Status          EnrollmentStatus `json:"status"`
	EnrolledAt      time.Time        `json:"enrolledAt"`
	CompletedAt     *time.Time       `json:"completedAt,omitempty"`
	LastAccessedAt  time.Time        `json:"lastAccessedAt"`
	CurrentLessonID *string          `json:"currentLessonID,omitempty"`
}

// ProgressPercentage computes completed lessons over the course total.
func ProgressPercentage(completedLessons, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	return completedLessons * 100 / totalLessons
}

// LessonProgress records a completed lesson within an enrollment. Unique
// per (enrollment, lesson).
type LessonProgress struct {
	EnrollmentID     string    `json:"enrollmentID"`
	LessonID         string    `json:"lessonID"`
	CompletedAt      time.Time `json:"completedAt"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
}

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodMpesa  PaymentMethod = "mpesa"
	MethodStripe PaymentMethod = "stripe"
	MethodPaypal PaymentMethod = "paypal"
	MethodManual PaymentMethod = "manual"
)

// Payment is the record for a paid enrollment. TransactionID is unique.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	EnrollmentID  string          `json:"enrollmentID"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        PaymentMethod   `json:"method"`
	TransactionID string          `json:"transactionID"`
	Status        PaymentStatus   `json:"status"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Certificate is issued when an enrollment completes.
type Certificate struct {
	CertificateID  string    `json:"certificateID"`
	EnrollmentID   string    `json:"enrollmentID"`
	IssuedAt       time.Time `json:"issuedAt"`
	CertificateURL string    `json:"certificateURL,omitempty"`
	IssuedBy       *string   `json:"issuedBy,omitempty"`
}

// CourseReview is a learner's rating of a completed course. One per
// enrollment; ratings run 1 through 5.
type CourseReview struct {
	ReviewID     string    `json:"reviewID"`
	EnrollmentID string    `json:"enrollmentID"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
}
