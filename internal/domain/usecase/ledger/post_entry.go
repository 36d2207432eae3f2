package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
)

// PostRequest describes a direct deposit or withdrawal against one of the
// caller's named accounts
type PostRequest struct {
	UserID      uint64
	AccountName string
	Direction   string // Credit or Debit
	Amount      string // decimal string
	Description string
}

// Post applies a direct posting: the balance adjustment and the ledger
// append commit or roll back together, so the ledger can never disagree
// with the balance it explains.
func (s *Service) Post(ctx context.Context, req PostRequest) (result *entity.Transaction, err error) {
	if !entity.IsValidDirection(req.Direction) {
		return nil, errs.ErrInvalidDirection
	}
	if !entity.IsValidAccountName(req.AccountName) {
		return nil, errs.ErrInvalidAccountName
	}

	amountCents, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, req.Amount)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := s.uow.Rollback(txCtx); rollbackErr != nil {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	accountRepo := s.uow.GetAccountRepository(txCtx)
	ledgerRepo := s.uow.GetTransactionRepository(txCtx)

	account, err := accountRepo.GetByUserAndName(txCtx, req.UserID, entity.AccountName(req.AccountName))
	if err != nil {
		return nil, err
	}

	delta := amountCents
	if req.Direction == string(entity.DirectionDebit) {
		delta = -amountCents
	}

	if _, err = accountRepo.AdjustBalance(txCtx, account.ID, delta); err != nil {
		return nil, err
	}

	entry, err := entity.NewTransaction(req.UserID, account.ID, entity.Direction(req.Direction), amountCents, req.Description, "", s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err = ledgerRepo.Create(txCtx, entry); err != nil {
		return nil, err
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Ledger entry posted", map[string]any{
		"user_id":    req.UserID,
		"account_id": account.ID,
		"direction":  req.Direction,
		"amount":     entry.Amount(),
	})

	return entry, nil
}
