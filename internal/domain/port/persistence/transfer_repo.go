package persistence

import (
	"context"
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// TransferRepository defines storage for transfer requests and the single
// guarded status transition out of PENDING
type TransferRepository interface {
	// Create persists a new pending transfer and backfills the generated ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transfer *entity.Transfer) error

	// GetByID retrieves a transfer by id
	//
	// Possible errors:
	// - ErrTransferNotFound: If no transfer has this id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transfer, error)

	// ListForUser returns transfers where userID is the sender or the
	// recipient, most recent first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListForUser(ctx context.Context, userID uint64) ([]*entity.Transfer, error)

	// ListPending returns all transfers still awaiting a decision, most
	// recent first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListPending(ctx context.Context) ([]*entity.Transfer, error)

	// MarkDecided performs the PENDING -> terminal transition as a single
	// conditional write gated on status == PENDING. Two concurrent calls
	// on the same transfer see exactly one success; the loser gets
	// ErrTransferAlreadyDecided. The check and the write are one
	// statement, never a read followed by an unconditional update.
	//
	// Possible errors:
	// - ErrTransferNotFound: If no transfer has this id
	// - ErrTransferAlreadyDecided: If the transfer already left PENDING
	// - ErrDatabaseConnection: If database connection fails
	MarkDecided(ctx context.Context, transferID uint64, status entity.TransferStatus, reason string, decidedBy uint64, decidedAt time.Time) error
}
