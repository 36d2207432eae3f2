package persistence

import (
	"context"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// TransactionRepository defines the append-only ledger. There is no update
// or delete: a ledger entry, once written, is immutable.
type TransactionRepository interface {
	// Create appends a new ledger entry and backfills the generated ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns all ledger entries for userID, most recent first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
