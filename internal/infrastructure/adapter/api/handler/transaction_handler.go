package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	ledgerUseCase "github.com/mayowa-ojo/digibank/internal/domain/usecase/ledger"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/dto"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles ledger-related HTTP requests
type TransactionHandler struct {
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerService *ledgerUseCase.Service, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// ListTransactions handles the GET /api/transactions endpoint, returning
// the caller's ledger entries most recent first
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user, _ := middleware.AuthUser(c)

	transactions, err := h.ledgerService.ListEntries(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(transactions))
}

// PostTransaction handles the POST /api/transactions endpoint: a direct
// deposit or withdrawal against one of the caller's named accounts
func (h *TransactionHandler) PostTransaction(c *gin.Context) {
	user, _ := middleware.AuthUser(c)

	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	entry, err := h.ledgerService.Post(c.Request.Context(), ledgerUseCase.PostRequest{
		UserID:      user.ID,
		AccountName: req.AccountName,
		Direction:   req.Direction,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(entry))
}
