package handlers

import (
	"net/http"

	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// deletionHandler handles the compliance data-deletion endpoint.
type deletionHandler struct {
	deletionService portssvc.DeletionSvcFacade
}

func registerDeletionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &deletionHandler{deletionService: services.Deletion}
	rg.POST("/data-deletion", h.requestDeletion)
}

// requestDeletion godoc
// @Summary Request deletion of an account's data
// @Description Always responds 200 with a confirmation code, whether or not the email has an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.DeletionRequest true "Email and optional reason"
// @Success 200 {object} dto.DeletionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/auth/data-deletion [post]
func (h *deletionHandler) requestDeletion(c *gin.Context) {
	var req dto.DeletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	code, err := h.deletionService.RequestDeletion(c.Request.Context(), req.Email, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletionResponse{
		Message:          "Your deletion request has been received and will be processed.",
		ConfirmationCode: code,
	})
}
