package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount          = 4001
	CodeInsufficientFunds      = 4002
	CodeSelfTransfer           = 4003
	CodeInvalidUserID          = 4004
	CodeInvalidAccountName     = 4005
	CodeDuplicateEmail         = 4006
	CodeInvalidCredentials     = 4010
	CodeUnauthorized           = 4011
	CodeForbidden              = 4030
	CodeUserNotFound           = 4040
	CodeRecipientNotFound      = 4041
	CodeAccountNotFound        = 4042
	CodeTransferNotFound       = 4043
	CodeTransferAlreadyDecided = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInsufficientFunds is returned when a debit would take a balance below zero
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSelfTransfer is returned when a user tries to transfer to themselves
	ErrSelfTransfer = errors.New("cannot transfer to yourself")

	// ErrRecipientNotFound is returned when a recipient key resolves to no user
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrSourceAccountNotFound is returned when the sender's named account doesn't exist
	ErrSourceAccountNotFound = errors.New("sender account not found")

	// ErrDestinationAccountNotFound is returned when the recipient's destination account doesn't exist
	ErrDestinationAccountNotFound = errors.New("recipient account not found")

	// ErrAccountNotFound is returned when an account referenced by id doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransferNotFound is returned when the requested transfer doesn't exist
	ErrTransferNotFound = errors.New("transfer not found")

	// ErrTransferAlreadyDecided is returned when deciding a transfer that left PENDING
	ErrTransferAlreadyDecided = errors.New("transfer already decided")

	// ErrInvalidUserID is returned when a user id is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidUserData is returned when registration fields are missing or malformed
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrInvalidAccountName is returned when an account name is outside the closed set
	ErrInvalidAccountName = errors.New("invalid account name")

	// ErrInvalidDirection is returned when a ledger direction is neither Credit nor Debit
	ErrInvalidDirection = errors.New("invalid transaction direction")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when registering an email that already exists
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateAccountNumber is returned when an account number collides
	ErrDuplicateAccountNumber = errors.New("account number already taken")

	// ErrInvalidCredentials is returned when login email/password don't match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a caller presents no or invalid identity
	ErrUnauthorized = errors.New("not authorized")

	// ErrForbidden is returned when a caller lacks the admin role
	ErrForbidden = errors.New("admin role required")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrInvalidUserData):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidAccountName), errors.Is(err, ErrInvalidDirection):
		return CodeInvalidAccountName
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateAccountNumber):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrRecipientNotFound):
		return CodeRecipientNotFound
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrSourceAccountNotFound),
		errors.Is(err, ErrDestinationAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrTransferNotFound):
		return CodeTransferNotFound
	case errors.Is(err, ErrTransferAlreadyDecided):
		return CodeTransferAlreadyDecided
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a failed debit
type InsufficientFundsError struct {
	AccountID      uint64
	RequiredCents  int64
	AvailableCents int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on account %d: required %d cents, available %d cents",
		e.AccountID, e.RequiredCents, e.AvailableCents)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"account_id":      e.AccountID,
		"required_cents":  e.RequiredCents,
		"available_cents": e.AvailableCents,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountID uint64, requiredCents, availableCents int64) error {
	return &InsufficientFundsError{
		AccountID:      accountID,
		RequiredCents:  requiredCents,
		AvailableCents: availableCents,
	}
}

// TransferStateError reports an attempt to decide a transfer that is no
// longer PENDING
type TransferStateError struct {
	TransferID uint64
	Status     string
}

// Error implements the error interface
func (e *TransferStateError) Error() string {
	return fmt.Sprintf("transfer %d already decided: status is %s", e.TransferID, e.Status)
}

// Is checks if the target error is an ErrTransferAlreadyDecided
func (e *TransferStateError) Is(target error) bool {
	return target == ErrTransferAlreadyDecided
}

// LogFields returns a map of fields for structured logging
func (e *TransferStateError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "transfer_already_decided",
		"transfer_id": e.TransferID,
		"status":      e.Status,
		"error_code":  CodeTransferAlreadyDecided,
	}
}

// NewTransferStateError creates a new detailed already-decided error
func NewTransferStateError(transferID uint64, status string) error {
	return &TransferStateError{TransferID: transferID, Status: status}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsAlreadyDecidedError checks if the error is an already-decided transfer error
func IsAlreadyDecidedError(err error) bool {
	return errors.Is(err, ErrTransferAlreadyDecided)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrRecipientNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrSourceAccountNotFound) ||
		errors.Is(err, ErrDestinationAccountNotFound) ||
		errors.Is(err, ErrTransferNotFound)
}

// IsValidationError checks if the error should surface as a 400 to the caller
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidUserData) ||
		errors.Is(err, ErrInvalidAccountName) ||
		errors.Is(err, ErrInvalidDirection) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrDuplicateAccountNumber) ||
		errors.Is(err, ErrInvalidRequest)
}
