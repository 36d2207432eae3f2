package entity

import (
	"time"

	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
)

// Direction represents whether a ledger entry adds to or removes from a balance
type Direction string

// Ledger entry directions
const (
	DirectionCredit Direction = "Credit"
	DirectionDebit  Direction = "Debit"
)

// IsValidDirection validates if the direction is allowed
func IsValidDirection(direction string) bool {
	return direction == string(DirectionCredit) || direction == string(DirectionDebit)
}

// TransactionStatus defines possible status values for a ledger entry
type TransactionStatus string

// Ledger entries are written only after the money has moved, so the status
// is always Completed. The column exists for audit parity with statements.
const (
	TransactionCompleted TransactionStatus = "Completed"
)

// Transaction is an immutable ledger entry recording one credit or debit
// against one user's account. The ledger is append-only: entries are never
// updated or deleted.
type Transaction struct {
	ID          uint64
	UserID      uint64
	AccountID   uint64
	Direction   Direction
	AmountCents int64
	Description string
	Status      TransactionStatus
	TransferRef string // reference of the originating transfer, empty for direct postings
	CreatedAt   time.Time
}

// NewTransaction creates a ledger entry with basic validation
func NewTransaction(
	userID uint64,
	accountID uint64,
	direction Direction,
	amountCents int64,
	description string,
	transferRef string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !IsValidDirection(string(direction)) {
		return nil, errs.ErrInvalidDirection
	}
	if amountCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Direction:   direction,
		AmountCents: amountCents,
		Description: description,
		Status:      TransactionCompleted,
		TransferRef: transferRef,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// Amount returns the entry amount as a decimal string
func (t *Transaction) Amount() string {
	return FormatCents(t.AmountCents)
}

// IsCredit returns true if this entry increased the account balance
func (t *Transaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}
