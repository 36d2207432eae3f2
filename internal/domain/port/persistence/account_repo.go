package persistence

import (
	"context"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// AccountRepository defines the ledger store's account primitives
type AccountRepository interface {
	// GetByID retrieves an account by its id
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has this id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByIDForUpdate retrieves an account by id and, where the backend
	// supports it, takes a row lock held until the surrounding unit of
	// work completes. Used by the transfer approval path.
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has this id
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByUserAndName retrieves the account owned by userID with the
	// given enumerated name
	//
	// Possible errors:
	// - ErrAccountNotFound: If the (user, name) pair has no account
	// - ErrDatabaseConnection: If database connection fails
	GetByUserAndName(ctx context.Context, userID uint64, name entity.AccountName) (*entity.Account, error)

	// ListByUser returns all accounts owned by userID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Account, error)

	// Create persists a new account and backfills the generated ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// AdjustBalance applies deltaCents (positive=credit, negative=debit)
	// to the stored balance as a single conditional update, so concurrent
	// callers cannot lose updates or drive the balance negative.
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has this id
	// - ErrInsufficientFunds: If a debit would make the balance negative
	// - ErrDatabaseConnection: If database connection fails
	AdjustBalance(ctx context.Context, accountID uint64, deltaCents int64) (*entity.Account, error)
}
