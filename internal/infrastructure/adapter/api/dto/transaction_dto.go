package dto

import (
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// PostTransactionRequest represents the API request for a direct deposit or
// withdrawal against one of the caller's accounts
type PostTransactionRequest struct {
	AccountName string `json:"accountName" binding:"required"`
	Direction   string `json:"direction" binding:"required,oneof=Credit Debit"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	AccountID   uint64    `json:"accountId"`
	Direction   string    `json:"direction"`
	Amount      string    `json:"amount"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	TransferRef string    `json:"transferRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a ledger entry entity to its API representation
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		AccountID:   transaction.AccountID,
		Direction:   string(transaction.Direction),
		Amount:      transaction.Amount(),
		Description: transaction.Description,
		Status:      string(transaction.Status),
		TransferRef: transaction.TransferRef,
		CreatedAt:   transaction.CreatedAt,
	}
}

// NewTransactionResponses maps a slice of ledger entry entities
func NewTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, NewTransactionResponse(transaction))
	}
	return responses
}
