package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	userUseCase "github.com/mayowa-ojo/digibank/internal/domain/usecase/user"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/dto"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/middleware"
)

// AdminHandler handles administrative setup HTTP requests
type AdminHandler struct {
	userService *userUseCase.Service
	logger      coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(userService *userUseCase.Service, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		logger:      logger,
	}
}

// Promote handles the POST /api/admin/setup/promote endpoint: the calling
// user becomes an admin when the presented setup key matches the
// configured one
func (h *AdminHandler) Promote(c *gin.Context) {
	user, _ := middleware.AuthUser(c)

	var req dto.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	promoted, err := h.userService.Promote(c.Request.Context(), user.ID, req.SetupKey)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(promoted))
}
