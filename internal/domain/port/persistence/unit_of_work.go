package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across multiple repositories so they commit
// or roll back as one atomic unit. The transfer approval sequence (status
// flip, two balance adjustments, two ledger appends) runs entirely inside
// one unit: either all five writes land or none do.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetTransactionRepository returns a ledger repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetTransferRepository returns a transfer repository bound to the current transaction
	GetTransferRepository(ctx context.Context) TransferRepository
}
