package persistence

import (
	"context"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user records
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email. The lookup is case-insensitive;
	// implementations match against the lowercased stored value.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByAccountNumber retrieves a user by their unique account number
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this account number
	// - ErrDatabaseConnection: If database connection fails
	GetByAccountNumber(ctx context.Context, accountNumber string) (*entity.User, error)

	// Create persists a new user and backfills the generated ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the email is already registered
	// - ErrDuplicateAccountNumber: If the account number collides
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole sets the user's role. Used by the admin promotion flow.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateRole(ctx context.Context, userID uint64, role entity.Role) error

	// AccountNumberExists reports whether an account number is taken.
	// Used during registration to retry on the rare collision.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	AccountNumberExists(ctx context.Context, accountNumber string) (bool, error)
}
