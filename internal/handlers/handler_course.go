package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/ecodeed/academy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// courseHandler handles the public catalog and mentor course management.
type courseHandler struct {
	courseService portssvc.CourseSvcFacade
	userService   portssvc.UserSvcFacade
}

func newCourseHandler(cs portssvc.CourseSvcFacade, us portssvc.UserSvcFacade) *courseHandler {
	return &courseHandler{courseService: cs, userService: us}
}

// registerCourseRoutes registers the public catalog routes.
func registerCourseRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCourseHandler(services.Course, services.User)
	rg.GET("", h.listCourses)
	rg.GET("/:slug", h.getCourse)
}

// registerCourseManagementRoutes registers mentor/admin course management.
func registerCourseManagementRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCourseHandler(services.Course, services.User)
	rg.POST("", h.createCourse)
	rg.POST("/:slug/publish", h.publishCourse)
}

// listCourses godoc
// @Summary List published courses
// @Tags courses
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.CourseResponse
// @Router /api/courses [get]
func (h *courseHandler) listCourses(c *gin.Context) {
	var params dto.ListCoursesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	courses, err := h.courseService.ListCourses(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	out := make([]dto.CourseResponse, len(courses))
	for i := range courses {
		out[i] = dto.ToCourseResponse(&courses[i], now)
	}
	c.JSON(http.StatusOK, out)
}

// getCourse godoc
// @Summary Get a course by slug with its module outline
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} dto.CourseDetailResponse
// @Failure 404 {object} map[string]string "Course not found"
// @Router /api/courses/{slug} [get]
func (h *courseHandler) getCourse(c *gin.Context) {
	course, modules, err := h.courseService.GetCourseBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CourseDetailResponse{
		CourseResponse: dto.ToCourseResponse(course, time.Now()),
		Description:    course.Description,
		Modules:        modules,
	})
}

// createCourse godoc
// @Summary Create a draft course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CreateCourseRequest true "Course details"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /api/courses [post]
func (h *courseHandler) createCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	course, err := h.courseService.CreateCourse(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Course created", slog.String("course_id", course.CourseID), slog.String("slug", course.Slug))
	c.JSON(http.StatusCreated, dto.ToCourseResponse(course, time.Now()))
}

// publishCourse godoc
// @Summary Publish a draft course
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} dto.CourseResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Course not found"
// @Security BearerAuth
// @Router /api/courses/{slug}/publish [post]
func (h *courseHandler) publishCourse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	course, err := h.courseService.PublishCourse(c.Request.Context(), actor, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Course published", slog.String("course_id", course.CourseID))
	c.JSON(http.StatusOK, dto.ToCourseResponse(course, time.Now()))
}

// currentUser loads the authenticated user; it writes the error response
// itself when the lookup fails.
func (h *courseHandler) currentUser(c *gin.Context) (*domain.User, bool) {
	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	u, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return u, true
}
