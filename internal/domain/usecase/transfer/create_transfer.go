package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
)

// CreateRequest represents a user's request to move funds to another user
type CreateRequest struct {
	SenderID        uint64
	FromAccountName string // defaults to "Main Account" when empty
	RecipientKey    string // account number or email
	Amount          string // decimal string, e.g. "40.00"
	Note            string
}

// Create validates the request and persists a PENDING transfer. No balance
// is mutated and no funds are held: the balance check here is advisory and
// is re-verified at approval time.
//
// Validation order: amount, recipient resolution, self-transfer, source
// account, destination account, advisory funds check.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*entity.Transfer, error) {
	amountCents, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, req.Amount)
	}

	recipient, err := s.resolver.Resolve(ctx, req.RecipientKey)
	if err != nil {
		return nil, err
	}

	if recipient.ID == req.SenderID {
		return nil, errs.ErrSelfTransfer
	}

	fromName := req.FromAccountName
	if fromName == "" {
		fromName = string(entity.AccountMain)
	}
	if !entity.IsValidAccountName(fromName) {
		return nil, errs.ErrInvalidAccountName
	}

	source, err := s.accountRepo.GetByUserAndName(ctx, req.SenderID, entity.AccountName(fromName))
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, errs.ErrSourceAccountNotFound
		}
		return nil, err
	}

	// Destination is always the recipient's Main Account
	destination, err := s.accountRepo.GetByUserAndName(ctx, recipient.ID, entity.AccountMain)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, errs.ErrDestinationAccountNotFound
		}
		return nil, err
	}

	if !source.CanDebit(amountCents) {
		return nil, errs.NewInsufficientFundsError(source.ID, amountCents, source.BalanceCents)
	}

	transfer, err := entity.NewTransfer(req.SenderID, recipient.ID, source.ID, destination.ID, amountCents, req.Note, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		s.logger.Error("Failed to persist transfer request", map[string]any{
			"sender_id":    req.SenderID,
			"recipient_id": recipient.ID,
			"amount":       transfer.Amount(),
			"error":        err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transfer request submitted for approval", map[string]any{
		"transfer_id":  transfer.ID,
		"reference":    transfer.Reference,
		"sender_id":    transfer.FromUserID,
		"recipient_id": transfer.ToUserID,
		"amount":       transfer.Amount(),
	})

	return transfer, nil
}
