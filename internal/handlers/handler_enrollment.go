package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/ecodeed/academy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// enrollmentHandler handles enrollment, progress, and review endpoints.
type enrollmentHandler struct {
	enrollmentService portssvc.EnrollmentSvcFacade
	userService       portssvc.UserSvcFacade
}

func newEnrollmentHandler(es portssvc.EnrollmentSvcFacade, us portssvc.UserSvcFacade) *enrollmentHandler {
	return &enrollmentHandler{enrollmentService: es, userService: us}
}

// registerEnrollmentRoutes registers the authenticated enrollment routes.
// The enroll action hangs off the course resource; everything else lives
// under /enrollments.
func registerEnrollmentRoutes(courses, enrollments *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newEnrollmentHandler(services.Enrollment, services.User)

	courses.POST("/:slug/enroll", h.enroll)

	enrollments.GET("", h.listMyEnrollments)
	enrollments.POST("/:id/lessons/:lessonID/complete", h.completeLesson)
	enrollments.POST("/:id/review", h.reviewCourse)
}

// enroll godoc
// @Summary Enroll in a published course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param slug path string true "Course slug"
// @Param enrollment body dto.EnrollRequest false "Payment method for paid courses"
// @Success 201 {object} domain.Enrollment
// @Failure 404 {object} map[string]string "Course not found or not published"
// @Failure 409 {object} map[string]string "Already enrolled"
// @Security BearerAuth
// @Router /api/courses/{slug}/enroll [post]
func (h *enrollmentHandler) enroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), user, c.Param("slug"), domain.PaymentMethod(req.Method))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User enrolled", slog.String("enrollment_id", enrollment.EnrollmentID), slog.String("course_id", enrollment.CourseID))
	c.JSON(http.StatusCreated, enrollment)
}

// listMyEnrollments godoc
// @Summary List the authenticated user's enrollments with progress
// @Tags enrollments
// @Produce json
// @Success 200 {array} dto.EnrollmentView
// @Security BearerAuth
// @Router /api/enrollments [get]
func (h *enrollmentHandler) listMyEnrollments(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	views, err := h.enrollmentService.ListMyEnrollments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// completeLessonRequest carries the optional time spent on the lesson.
type completeLessonRequest struct {
	TimeSpentSeconds int `json:"time_spent_seconds"`
}

// completeLesson godoc
// @Summary Mark a lesson as completed
// @Description Completing the final lesson completes the enrollment and issues a certificate
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param lessonID path string true "Lesson ID"
// @Success 200 {object} dto.EnrollmentView
// @Failure 404 {object} map[string]string "Enrollment or lesson not found"
// @Security BearerAuth
// @Router /api/enrollments/{id}/lessons/{lessonID}/complete [post]
func (h *enrollmentHandler) completeLesson(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req completeLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.enrollmentService.CompleteLesson(c.Request.Context(), userID, c.Param("id"), c.Param("lessonID"), req.TimeSpentSeconds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// reviewCourse godoc
// @Summary Review a completed course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param review body dto.ReviewRequest true "Rating and comment"
// @Success 201 {object} domain.CourseReview
// @Failure 400 {object} map[string]string "Course not completed"
// @Failure 409 {object} map[string]string "Already reviewed"
// @Security BearerAuth
// @Router /api/enrollments/{id}/review [post]
func (h *enrollmentHandler) reviewCourse(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	review, err := h.enrollmentService.ReviewCourse(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
