package dto

import (
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// AccountResponse represents a named balance bucket in API responses
type AccountResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAccountResponse maps an account entity to its API representation
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      string(account.Name),
		Balance:   account.Balance(),
		CreatedAt: account.CreatedAt,
	}
}

// NewAccountResponses maps a slice of account entities
func NewAccountResponses(accounts []*entity.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAccountResponse(account))
	}
	return responses
}
