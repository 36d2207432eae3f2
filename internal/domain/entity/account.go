package entity

import (
	"time"

	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
)

// AccountName represents one of the fixed account buckets every user owns
type AccountName string

// The closed set of account names. Each user owns at most one account per name.
const (
	AccountMain    AccountName = "Main Account"
	AccountSavings AccountName = "Savings"
	AccountDollar  AccountName = "Dollar Wallet"
)

// AccountNames lists the enumerated names in seeding order
var AccountNames = []AccountName{AccountMain, AccountSavings, AccountDollar}

// IsValidAccountName reports whether name belongs to the closed set
func IsValidAccountName(name string) bool {
	switch AccountName(name) {
	case AccountMain, AccountSavings, AccountDollar:
		return true
	}
	return false
}

// Account is a named balance bucket owned by exactly one user. Balances are
// kept in cents and never go negative; the only mutations are direct ledger
// postings and transfer approval.
type Account struct {
	ID           uint64
	UserID       uint64
	Name         AccountName
	BalanceCents int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount creates an account seeded with the given starting balance
func NewAccount(userID uint64, name AccountName, startingBalanceCents int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !IsValidAccountName(string(name)) {
		return nil, errs.ErrInvalidAccountName
	}
	if startingBalanceCents < 0 {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	return &Account{
		UserID:       userID,
		Name:         name,
		BalanceCents: startingBalanceCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the balance as a decimal string with 2 decimal places
func (a *Account) Balance() string {
	return FormatCents(a.BalanceCents)
}

// CanDebit reports whether the account holds at least the given amount
func (a *Account) CanDebit(amountCents int64) bool {
	return a.BalanceCents >= amountCents
}
