package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerr "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	transferUseCase "github.com/mayowa-ojo/digibank/internal/domain/usecase/transfer"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/dto"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/api/middleware"
)

// TransferHandler handles transfer-related HTTP requests
type TransferHandler struct {
	transferService *transferUseCase.Service
	logger          coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(transferService *transferUseCase.Service, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		logger:          logger,
	}
}

// CreateTransfer handles the POST /api/transfers endpoint. The created
// transfer is PENDING; no balance moves until an admin approves it.
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	user, _ := middleware.AuthUser(c)

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	transfer, err := h.transferService.Create(c.Request.Context(), transferUseCase.CreateRequest{
		SenderID:        user.ID,
		FromAccountName: req.FromAccountName,
		RecipientKey:    req.Recipient,
		Amount:          req.Amount,
		Note:            req.Note,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransferResponse(transfer))
}

// ListMine handles the GET /api/transfers/mine endpoint, returning
// transfers where the caller is the sender or the recipient
func (h *TransferHandler) ListMine(c *gin.Context) {
	user, _ := middleware.AuthUser(c)

	transfers, err := h.transferService.ListFor(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferResponses(transfers))
}

// ListPending handles the GET /api/transfers/pending endpoint (admin only)
func (h *TransferHandler) ListPending(c *gin.Context) {
	transfers, err := h.transferService.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferResponses(transfers))
}

// Approve handles the POST /api/transfers/:id/approve endpoint (admin
// only). An approval that finds the sender short of funds comes back as a
// REJECTED transfer with a recorded reason, still status 200.
func (h *TransferHandler) Approve(c *gin.Context) {
	h.decide(c, transferUseCase.DecisionApprove, "")
}

// Reject handles the POST /api/transfers/:id/reject endpoint (admin only)
func (h *TransferHandler) Reject(c *gin.Context) {
	var req dto.DecideTransferRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
	}
	h.decide(c, transferUseCase.DecisionReject, req.Reason)
}

func (h *TransferHandler) decide(c *gin.Context, decision transferUseCase.Decision, reason string) {
	admin, _ := middleware.AuthUser(c)

	transferID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid transfer ID format",
		})
		return
	}

	transfer, err := h.transferService.Decide(c.Request.Context(), transferID, admin.ID, decision, reason)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferResponse(transfer))
}
