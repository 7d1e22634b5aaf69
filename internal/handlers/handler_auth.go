package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/ecodeed/academy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration, login, token refresh, and logout.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{authService: as, tokenService: ts}
}

// registerAuthRoutes registers the public credential routes.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.Token)

	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
	rg.POST("/token/refresh", h.refreshToken)
}

// registerLogoutRoute registers logout behind the auth middleware.
func registerLogoutRoute(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.Token)
	rg.POST("/logout", h.logout)
}

// register godoc
// @Summary Register a new account
// @Description Creates an account with email and password and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid input or email already registered"
// @Router /api/auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.NewAuthResponse(user, pair))
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid credentials or disabled account"
// @Router /api/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.LoginWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.NewAuthResponse(user, pair))
}

// refreshToken godoc
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.AccessTokenResponse
// @Failure 400 {object} map[string]string "Invalid, expired, or revoked token"
// @Router /api/auth/token/refresh [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	access, err := h.tokenService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: access})
}

// logout godoc
// @Summary Log out by revoking the refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Refresh token to revoke"
// @Success 205 "Refresh token revoked"
// @Failure 400 {object} map[string]string "Invalid token"
// @Failure 401 {object} map[string]string "Unauthenticated"
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.tokenService.Revoke(c.Request.Context(), req.Refresh); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Refresh token revoked")
	c.Status(http.StatusResetContent)
}
