package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
)

// Decision is an admin's verdict on a pending transfer
type Decision string

// Decisions
const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// Decide applies an admin decision to a pending transfer and returns the
// decided transfer. Approval with a source balance that has since dropped
// below the transfer amount is converted to a rejection with a recorded
// reason; that outcome is a successful decision, not an error.
//
// Fails with ErrTransferNotFound if the transfer doesn't exist and with
// ErrTransferAlreadyDecided if it already left PENDING. Two concurrent
// decisions on the same transfer see exactly one success: the transition
// is a conditional write gated on status == PENDING.
func (s *Service) Decide(ctx context.Context, transferID, adminID uint64, decision Decision, reason string) (*entity.Transfer, error) {
	if adminID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	switch decision {
	case DecisionApprove:
		return s.approve(ctx, transferID, adminID)
	case DecisionReject:
		return s.reject(ctx, transferID, adminID, reason)
	default:
		return nil, fmt.Errorf("%w: unknown decision %q", errs.ErrInvalidRequest, decision)
	}
}

// reject marks the transfer REJECTED. No balances move and no ledger
// entries are written, so a single conditional update suffices.
func (s *Service) reject(ctx context.Context, transferID, adminID uint64, reason string) (*entity.Transfer, error) {
	if reason == "" {
		reason = entity.ReasonRejectedByAdmin
	}

	if err := s.transferRepo.MarkDecided(ctx, transferID, entity.TransferRejected, reason, adminID, s.timeProvider.Now()); err != nil {
		return nil, err
	}

	s.logger.Info("Transfer rejected", map[string]any{
		"transfer_id": transferID,
		"admin_id":    adminID,
		"reason":      reason,
	})

	return s.transferRepo.GetByID(ctx, transferID)
}

// approve performs the five-write approval sequence as one atomic unit:
// status transition, source debit, destination credit, and two ledger
// appends. Any failure rolls everything back and the transfer stays
// PENDING, safe to retry.
func (s *Service) approve(ctx context.Context, transferID, adminID uint64) (result *entity.Transfer, err error) {
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

	transferRepo := s.uow.GetTransferRepository(txCtx)
	accountRepo := s.uow.GetAccountRepository(txCtx)
	ledgerRepo := s.uow.GetTransactionRepository(txCtx)

	transfer, err := transferRepo.GetByID(txCtx, transferID)
	if err != nil {
		return nil, err
	}
	if !transfer.IsPending() {
		return nil, errs.NewTransferStateError(transfer.ID, string(transfer.Status))
	}

	source, err := accountRepo.GetByIDForUpdate(txCtx, transfer.FromAccountID)
	if err != nil {
		return nil, err
	}
	destination, err := accountRepo.GetByIDForUpdate(txCtx, transfer.ToAccountID)
	if err != nil {
		return nil, err
	}

	decidedAt := s.timeProvider.Now()

	if !source.CanDebit(transfer.AmountCents) {
		// Funds are not held between creation and decision, so the
		// balance can legitimately have dropped. Auto-convert to a
		// rejection and surface it as a decided transfer.
		if err = transferRepo.MarkDecided(txCtx, transfer.ID, entity.TransferRejected, entity.ReasonInsufficientFunds, adminID, decidedAt); err != nil {
			return nil, err
		}
		result, err = transferRepo.GetByID(txCtx, transfer.ID)
		if err != nil {
			return nil, err
		}
		if err = s.uow.Commit(txCtx); err != nil {
			return nil, err
		}

		s.logger.Warn("Transfer auto-rejected at approval time", map[string]any{
			"transfer_id": transfer.ID,
			"reference":   transfer.Reference,
			"admin_id":    adminID,
			"amount":      transfer.Amount(),
			"available":   source.Balance(),
		})
		return result, nil
	}

	if err = transferRepo.MarkDecided(txCtx, transfer.ID, entity.TransferApproved, "", adminID, decidedAt); err != nil {
		return nil, err
	}

	if _, err = accountRepo.AdjustBalance(txCtx, source.ID, -transfer.AmountCents); err != nil {
		return nil, err
	}
	if _, err = accountRepo.AdjustBalance(txCtx, destination.ID, transfer.AmountCents); err != nil {
		return nil, err
	}

	debit, err := entity.NewTransaction(transfer.FromUserID, source.ID, entity.DirectionDebit, transfer.AmountCents, transferDescription(transfer, "Transfer to"), transfer.Reference, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err = ledgerRepo.Create(txCtx, debit); err != nil {
		return nil, err
	}

	credit, err := entity.NewTransaction(transfer.ToUserID, destination.ID, entity.DirectionCredit, transfer.AmountCents, transferDescription(transfer, "Transfer from"), transfer.Reference, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err = ledgerRepo.Create(txCtx, credit); err != nil {
		return nil, err
	}

	result, err = transferRepo.GetByID(txCtx, transfer.ID)
	if err != nil {
		return nil, err
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Transfer approved", map[string]any{
		"transfer_id":  transfer.ID,
		"reference":    transfer.Reference,
		"admin_id":     adminID,
		"amount":       transfer.Amount(),
		"from_account": source.ID,
		"to_account":   destination.ID,
	})

	return result, nil
}

// transferDescription falls back to the audit reference when the sender
// left no note
func transferDescription(t *entity.Transfer, prefix string) string {
	if t.Note != "" {
		return t.Note
	}
	return prefix + " " + t.Reference
}
