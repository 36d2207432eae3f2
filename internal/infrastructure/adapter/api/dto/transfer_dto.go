package dto

import (
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// CreateTransferRequest represents the API request to move funds to
// another user. Recipient is an account number or an email address.
type CreateTransferRequest struct {
	FromAccountName string `json:"fromAccountName"`
	Recipient       string `json:"recipient" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	Note            string `json:"note"`
}

// DecideTransferRequest carries an optional rejection reason
type DecideTransferRequest struct {
	Reason string `json:"reason"`
}

// TransferResponse represents a transfer request in API responses
type TransferResponse struct {
	ID             uint64     `json:"id"`
	Reference      string     `json:"reference"`
	FromUserID     uint64     `json:"fromUserId"`
	ToUserID       uint64     `json:"toUserId"`
	FromAccountID  uint64     `json:"fromAccountId"`
	ToAccountID    uint64     `json:"toAccountId"`
	Amount         string     `json:"amount"`
	Note           string     `json:"note,omitempty"`
	Status         string     `json:"status"`
	DecisionReason string     `json:"decisionReason,omitempty"`
	DecidedBy      *uint64    `json:"decidedBy,omitempty"`
	DecidedAt      *time.Time `json:"decidedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// NewTransferResponse maps a transfer entity to its API representation
func NewTransferResponse(transfer *entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:             transfer.ID,
		Reference:      transfer.Reference,
		FromUserID:     transfer.FromUserID,
		ToUserID:       transfer.ToUserID,
		FromAccountID:  transfer.FromAccountID,
		ToAccountID:    transfer.ToAccountID,
		Amount:         transfer.Amount(),
		Note:           transfer.Note,
		Status:         string(transfer.Status),
		DecisionReason: transfer.DecisionReason,
		DecidedBy:      transfer.DecidedBy,
		DecidedAt:      transfer.DecidedAt,
		CreatedAt:      transfer.CreatedAt,
	}
}

// NewTransferResponses maps a slice of transfer entities
func NewTransferResponses(transfers []*entity.Transfer) []TransferResponse {
	responses := make([]TransferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		responses = append(responses, NewTransferResponse(transfer))
	}
	return responses
}
