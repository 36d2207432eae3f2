package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	ledgerUseCase "github.com/mayowa-ojo/digibank/internal/domain/usecase/ledger"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/dto"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/middleware"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(ledgerService *ledgerUseCase.Service, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// ListAccounts handles the GET /api/accounts endpoint. Callers only ever
// see their own accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	user, _ := middleware.AuthUser(c)

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponses(accounts))
}
