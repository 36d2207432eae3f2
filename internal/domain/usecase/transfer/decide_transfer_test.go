package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testCtxKey string

// txContext simulates the transactional context a unit of work hands back
func txContext() context.Context {
	return context.WithValue(context.Background(), testCtxKey("tx"), true)
}

func pendingTransfer() *entity.Transfer {
	return &entity.Transfer{
		ID:            7,
		Reference:     "TRF-1-abc",
		FromUserID:    1,
		ToUserID:      2,
		FromAccountID: 10,
		ToAccountID:   20,
		AmountCents:   4000,
		Status:        entity.TransferPending,
	}
}

func TestDecideReject(t *testing.T) {
	ctx := context.Background()
	adminID := uint64(99)

	t.Run("Reject with explicit reason", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		rejected := pendingTransfer()
		rejected.Status = entity.TransferRejected
		rejected.DecisionReason = "suspicious"

		m.transferRepo.EXPECT().MarkDecided(mock.Anything, uint64(7), entity.TransferRejected, "suspicious", adminID, mock.Anything).Return(nil).Once()
		m.transferRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(rejected, nil).Once()

		result, err := svc.Decide(ctx, 7, adminID, DecisionReject, "suspicious")

		require.NoError(t, err)
		assert.Equal(t, entity.TransferRejected, result.Status)
		assert.Equal(t, "suspicious", result.DecisionReason)
	})

	t.Run("Reject without reason records the default", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		rejected := pendingTransfer()
		rejected.Status = entity.TransferRejected

		m.transferRepo.EXPECT().MarkDecided(mock.Anything, uint64(7), entity.TransferRejected, entity.ReasonRejectedByAdmin, adminID, mock.Anything).Return(nil).Once()
		m.transferRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(rejected, nil).Once()

		_, err := svc.Decide(ctx, 7, adminID, DecisionReject, "")
		require.NoError(t, err)
	})

	t.Run("Reject of already-decided transfer", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.transferRepo.EXPECT().MarkDecided(mock.Anything, uint64(7), entity.TransferRejected, entity.ReasonRejectedByAdmin, adminID, mock.Anything).
			Return(errs.NewTransferStateError(7, string(entity.TransferApproved))).Once()

		result, err := svc.Decide(ctx, 7, adminID, DecisionReject, "")

		assert.ErrorIs(t, err, errs.ErrTransferAlreadyDecided)
		assert.Nil(t, result)
	})

	t.Run("Reject of missing transfer", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.transferRepo.EXPECT().MarkDecided(mock.Anything, uint64(404), entity.TransferRejected, entity.ReasonRejectedByAdmin, adminID, mock.Anything).
			Return(errs.ErrTransferNotFound).Once()

		result, err := svc.Decide(ctx, 404, adminID, DecisionReject, "")

		assert.ErrorIs(t, err, errs.ErrTransferNotFound)
		assert.Nil(t, result)
	})
}

func TestDecideApprove(t *testing.T) {
	ctx := context.Background()
	adminID := uint64(99)
	txCtx := txContext()

	source := func() *entity.Account {
		return &entity.Account{ID: 10, UserID: 1, Name: entity.AccountMain, BalanceCents: 10000}
	}
	destination := func() *entity.Account {
		return &entity.Account{ID: 20, UserID: 2, Name: entity.AccountMain, BalanceCents: 500}
	}

	t.Run("Approve moves money and writes two ledger entries atomically", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		transfer := pendingTransfer()
		approved := pendingTransfer()
		approved.Status = entity.TransferApproved

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransferRepository(txCtx).Return(m.transferRepo).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.transactionRepo).Once()

		m.transferRepo.EXPECT().GetByID(txCtx, uint64(7)).Return(transfer, nil).Once()
		m.accountRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(10)).Return(source(), nil).Once()
		m.accountRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(20)).Return(destination(), nil).Once()

		m.transferRepo.EXPECT().MarkDecided(txCtx, uint64(7), entity.TransferApproved, "", adminID, mock.Anything).Return(nil).Once()
		m.accountRepo.EXPECT().AdjustBalance(txCtx, uint64(10), int64(-4000)).Return(&entity.Account{ID: 10, BalanceCents: 6000}, nil).Once()
		m.accountRepo.EXPECT().AdjustBalance(txCtx, uint64(20), int64(4000)).Return(&entity.Account{ID: 20, BalanceCents: 4500}, nil).Once()

		m.transactionRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(entry *entity.Transaction) bool {
			return entry.UserID == 1 && entry.AccountID == 10 &&
				entry.Direction == entity.DirectionDebit &&
				entry.AmountCents == 4000 && entry.TransferRef == "TRF-1-abc"
		})).Return(nil).Once()
		m.transactionRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(entry *entity.Transaction) bool {
			return entry.UserID == 2 && entry.AccountID == 20 &&
				entry.Direction == entity.DirectionCredit &&
				entry.AmountCents == 4000 && entry.TransferRef == "TRF-1-abc"
		})).Return(nil).Once()

		m.transferRepo.EXPECT().GetByID(txCtx, uint64(7)).Return(approved, nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		result, err := svc.Decide(ctx, 7, adminID, DecisionApprove, "")

		require.NoError(t, err)
		assert.Equal(t, entity.TransferApproved, result.Status)
	})

	t.Run("Approve auto-rejects when the balance has since dropped", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		transfer := pendingTransfer()
		autoRejected := pendingTransfer()
		autoRejected.Status = entity.TransferRejected
		autoRejected.DecisionReason = entity.ReasonInsufficientFunds
		broke := &entity.Account{ID: 10, UserID: 1, Name: entity.AccountMain, BalanceCents: 100}

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransferRepository(txCtx).Return(m.transferRepo).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.transactionRepo).Once()

		m.transferRepo.EXPECT().GetByID(txCtx, uint64(7)).Return(transfer, nil).Once()
		m.accountRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(10)).Return(broke, nil).Once()
		m.accountRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(20)).Return(destination(), nil).Once()

		m.transferRepo.EXPECT().MarkDecided(txCtx, uint64(7), entity.TransferRejected, entity.ReasonInsufficientFunds, adminID, mock.Anything).Return(nil).Once()
		m.transferRepo.EXPECT().GetByID(txCtx, uint64(7)).Return(autoRejected, nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		result, err := svc.Decide(ctx, 7, adminID, DecisionApprove, "")

		require.NoError(t, err, "auto-rejection is a successful decision, not an error")
		assert.Equal(t, entity.TransferRejected, result.Status)
		assert.Equal(t, entity.ReasonInsufficientFunds, result.DecisionReason)
	})

	t.Run("Approve of already-decided transfer rolls back", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		decided := pendingTransfer()
		decided.Status = entity.TransferApproved

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransferRepository(txCtx).Return(m.transferRepo).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.transactionRepo).Once()

		m.transferRepo.EXPECT().GetByID(txCtx, uint64(7)).Return(decided, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := svc.Decide(ctx, 7, adminID, DecisionApprove, "")

		assert.ErrorIs(t, err, errs.ErrTransferAlreadyDecided)
		assert.Nil(t, result)
	})

	t.Run("Approve of missing transfer rolls back", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransferRepository(txCtx).Return(m.transferRepo).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.transactionRepo).Once()

		m.transferRepo.EXPECT().GetByID(txCtx, uint64(404)).Return(nil, errs.ErrTransferNotFound).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := svc.Decide(ctx, 404, adminID, DecisionApprove, "")

		assert.ErrorIs(t, err, errs.ErrTransferNotFound)
		assert.Nil(t, result)
	})

	t.Run("Concurrent decision loses the conditional write and rolls back", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		transfer := pendingTransfer()

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransferRepository(txCtx).Return(m.transferRepo).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.transactionRepo).Once()

		m.transferRepo.EXPECT().GetByID(txCtx, uint64(7)).Return(transfer, nil).Once()
		m.accountRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(10)).Return(source(), nil).Once()
		m.accountRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(20)).Return(destination(), nil).Once()

		m.transferRepo.EXPECT().MarkDecided(txCtx, uint64(7), entity.TransferApproved, "", adminID, mock.Anything).
			Return(errs.NewTransferStateError(7, string(entity.TransferRejected))).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := svc.Decide(ctx, 7, adminID, DecisionApprove, "")

		assert.ErrorIs(t, err, errs.ErrTransferAlreadyDecided)
		assert.Nil(t, result)
	})

	t.Run("Ledger write failure rolls everything back", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		transfer := pendingTransfer()
		databaseError := errors.New("database insert error")

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTransferRepository(txCtx).Return(m.transferRepo).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(txCtx).Return(m.transactionRepo).Once()

		m.transferRepo.EXPECT().GetByID(txCtx, uint64(7)).Return(transfer, nil).Once()
		m.accountRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(10)).Return(source(), nil).Once()
		m.accountRepo.EXPECT().GetByIDForUpdate(txCtx, uint64(20)).Return(destination(), nil).Once()

		m.transferRepo.EXPECT().MarkDecided(txCtx, uint64(7), entity.TransferApproved, "", adminID, mock.Anything).Return(nil).Once()
		m.accountRepo.EXPECT().AdjustBalance(txCtx, uint64(10), int64(-4000)).Return(&entity.Account{ID: 10, BalanceCents: 6000}, nil).Once()
		m.accountRepo.EXPECT().AdjustBalance(txCtx, uint64(20), int64(4000)).Return(&entity.Account{ID: 20, BalanceCents: 4500}, nil).Once()
		m.transactionRepo.EXPECT().Create(txCtx, mock.Anything).Return(databaseError).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := svc.Decide(ctx, 7, adminID, DecisionApprove, "")

		assert.Equal(t, databaseError, err)
		assert.Nil(t, result)
	})
}

func TestDecideValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero admin ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		result, err := svc.Decide(ctx, 7, 0, DecisionApprove, "")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, result)
	})

	t.Run("Unknown decision", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		result, err := svc.Decide(ctx, 7, 99, Decision("MAYBE"), "")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, result)
	})
}
