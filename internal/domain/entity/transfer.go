package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
)

// TransferStatus represents the lifecycle state of a transfer request
type TransferStatus string

// Transfer states. PENDING is the initial state; APPROVED and REJECTED are
// terminal and a transfer reaches exactly one of them, exactly once.
const (
	TransferPending  TransferStatus = "PENDING"
	TransferApproved TransferStatus = "APPROVED"
	TransferRejected TransferStatus = "REJECTED"
)

// Decision reasons recorded on rejection
const (
	ReasonRejectedByAdmin   = "Rejected by admin"
	ReasonInsufficientFunds = "Insufficient balance at approval time"
)

// Transfer is a request to move funds between two users' accounts, subject
// to administrative approval. It references accounts it does not own; the
// approval path is the only code allowed to mutate those balances.
type Transfer struct {
	ID             uint64
	Reference      string // human-readable audit reference, unique
	FromUserID     uint64
	ToUserID       uint64
	FromAccountID  uint64
	ToAccountID    uint64
	AmountCents    int64
	Note           string
	Status         TransferStatus
	DecisionReason string
	DecidedBy      *uint64
	DecidedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransfer creates a pending transfer request. The caller is responsible
// for having validated recipient resolution and account existence.
func NewTransfer(fromUserID, toUserID, fromAccountID, toAccountID uint64, amountCents int64, note string, timeProvider coreport.TimeProvider) (*Transfer, error) {
	if fromUserID == 0 || toUserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if fromUserID == toUserID {
		return nil, errs.ErrSelfTransfer
	}
	if amountCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &Transfer{
		Reference:     NewTransferReference(timeProvider),
		FromUserID:    fromUserID,
		ToUserID:      toUserID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		AmountCents:   amountCents,
		Note:          note,
		Status:        TransferPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NewTransferReference generates a reference like TRF-1735689600000-9f1c23ab.
// Collisions are astronomically unlikely; a unique index backs this up.
func NewTransferReference(timeProvider coreport.TimeProvider) string {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("TRF-%d-%s", timeProvider.Now().UnixMilli(), frag)
}

// Amount returns the transfer amount as a decimal string
func (t *Transfer) Amount() string {
	return FormatCents(t.AmountCents)
}

// IsPending reports whether the transfer is still awaiting a decision
func (t *Transfer) IsPending() bool {
	return t.Status == TransferPending
}

// IsTerminal reports whether the transfer has been decided
func (t *Transfer) IsTerminal() bool {
	return t.Status == TransferApproved || t.Status == TransferRejected
}
