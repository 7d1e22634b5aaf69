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

// socialHandler handles the social login exchanges: per-provider claim
// exchanges plus the server-driven Twitter PKCE flow.
type socialHandler struct {
	authService  portssvc.AuthSvcFacade
	tokenService portssvc.TokenSvcFacade
	adapters     map[domain.AuthProvider]portssvc.SocialAdapter
	twitterOAuth portssvc.TwitterOAuthSvcFacade
}

func newSocialHandler(services *portssvc.ServiceContainer) *socialHandler {
	return &socialHandler{
		authService:  services.Auth,
		tokenService: services.Token,
		adapters:     services.SocialAdapters,
		twitterOAuth: services.TwitterOAuth,
	}
}

// registerSocialRoutes registers the public social-login routes.
func registerSocialRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newSocialHandler(services)

	social := rg.Group("/social")
	{
		social.POST("/google", h.exchange(domain.ProviderGoogle))
		social.POST("/facebook", h.exchange(domain.ProviderFacebook))
		social.POST("/twitter", h.exchange(domain.ProviderTwitter))
		social.GET("/twitter/login", h.twitterLogin)
		social.POST("/twitter/callback", h.twitterCallback)
	}
}

// exchange builds the handler for one provider's direct claim exchange.
// The response is 201 when the login created a new account, 200 when it
// resolved to an existing one.
func (h *socialHandler) exchange(provider domain.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SocialAuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}

		claims, err := h.adapters[provider].Exchange(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		h.respondResolved(c, claims)
	}
}

// twitterLogin godoc
// @Summary Start the Twitter OAuth2 PKCE flow
// @Tags auth
// @Produce json
// @Success 200 {object} dto.TwitterAuthorizeResponse
// @Failure 500 {object} map[string]string "Twitter login not configured"
// @Router /api/auth/social/twitter/login [get]
func (h *socialHandler) twitterLogin(c *gin.Context) {
	resp, err := h.twitterOAuth.Authorize(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Twitter authorize failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Twitter login is not available"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// twitterCallback godoc
// @Summary Complete the Twitter OAuth2 PKCE flow
// @Tags auth
// @Accept json
// @Produce json
// @Param callback body dto.TwitterCallbackRequest true "Code and state from the provider redirect"
// @Success 200 {object} dto.AuthResponse
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Invalid or reused state, or upstream exchange failure"
// @Router /api/auth/social/twitter/callback [post]
func (h *socialHandler) twitterCallback(c *gin.Context) {
	var req dto.TwitterCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	claims, err := h.twitterOAuth.ExchangeCallback(c.Request.Context(), req.Code, req.State)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondResolved(c, claims)
}

// respondResolved runs the resolver over normalized claims and writes the
// token-pair response.
func (h *socialHandler) respondResolved(c *gin.Context, claims domain.SocialClaims) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, created, err := h.authService.ResolveSocialLogin(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Social login resolved",
		slog.String("provider", string(claims.Provider)),
		slog.String("user_id", user.UserID),
		slog.Bool("created", created),
	)

	resp := dto.NewAuthResponse(user, pair)
	resp.Created = &created
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}
