package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type transferFixture struct {
	repo     *TransferRepository
	sender   *entity.User
	receiver *entity.User
	transfer *entity.Transfer
}

func setupTransferFixture(t *testing.T, db *gorm.DB) *transferFixture {
	t.Helper()

	sender := createTestUser(t, db, "sender@example.com", "1111111111")
	receiver := createTestUser(t, db, "receiver@example.com", "2222222222")
	source := createTestAccount(t, db, sender.ID, entity.AccountMain, 10000)
	destination := createTestAccount(t, db, receiver.ID, entity.AccountMain, 0)

	return &transferFixture{
		repo:     NewTransferRepository(db, logger.NewNoopLogger()),
		sender:   sender,
		receiver: receiver,
		transfer: createTestTransfer(t, db, sender, receiver, source, destination, 4000),
	}
}

func TestTransferRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := setupTransferFixture(t, db)

	assert.NotZero(t, f.transfer.ID)

	found, err := f.repo.GetByID(ctx, f.transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, f.transfer.Reference, found.Reference)
	assert.Equal(t, entity.TransferPending, found.Status)
	assert.Equal(t, "40.00", found.Amount())
	assert.Nil(t, found.DecidedBy)

	_, err = f.repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, errs.ErrTransferNotFound)
}

func TestTransferRepositoryLists(t *testing.T) {
	ctx := context.Background()

	t.Run("ListForUser sees the transfer from both sides", func(t *testing.T) {
		db := setupTestDB(t)
		f := setupTransferFixture(t, db)

		forSender, err := f.repo.ListForUser(ctx, f.sender.ID)
		require.NoError(t, err)
		assert.Len(t, forSender, 1)

		forReceiver, err := f.repo.ListForUser(ctx, f.receiver.ID)
		require.NoError(t, err)
		assert.Len(t, forReceiver, 1)

		outsider := createTestUser(t, db, "outsider@example.com", "3333333333")
		forOutsider, err := f.repo.ListForUser(ctx, outsider.ID)
		require.NoError(t, err)
		assert.Empty(t, forOutsider)
	})

	t.Run("ListPending excludes decided transfers", func(t *testing.T) {
		db := setupTestDB(t)
		f := setupTransferFixture(t, db)

		pending, err := f.repo.ListPending(ctx)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		err = f.repo.MarkDecided(ctx, f.transfer.ID, entity.TransferRejected, entity.ReasonRejectedByAdmin, 99, time.Now().UTC())
		require.NoError(t, err)

		pending, err = f.repo.ListPending(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestTransferRepositoryMarkDecided(t *testing.T) {
	ctx := context.Background()
	adminID := uint64(99)

	t.Run("First decision wins and records the audit trail", func(t *testing.T) {
		db := setupTestDB(t)
		f := setupTransferFixture(t, db)
		decidedAt := time.Now().UTC().Truncate(time.Second)

		err := f.repo.MarkDecided(ctx, f.transfer.ID, entity.TransferApproved, "", adminID, decidedAt)
		require.NoError(t, err)

		decided, err := f.repo.GetByID(ctx, f.transfer.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.TransferApproved, decided.Status)
		require.NotNil(t, decided.DecidedBy)
		assert.Equal(t, adminID, *decided.DecidedBy)
		require.NotNil(t, decided.DecidedAt)
	})

	t.Run("Second decision loses with already-decided", func(t *testing.T) {
		db := setupTestDB(t)
		f := setupTransferFixture(t, db)

		require.NoError(t, f.repo.MarkDecided(ctx, f.transfer.ID, entity.TransferApproved, "", adminID, time.Now().UTC()))

		err := f.repo.MarkDecided(ctx, f.transfer.ID, entity.TransferRejected, "too late", adminID, time.Now().UTC())
		assert.ErrorIs(t, err, errs.ErrTransferAlreadyDecided)

		var stateErr *errs.TransferStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, string(entity.TransferApproved), stateErr.Status)

		// The losing write must not have overwritten anything
		decided, err := f.repo.GetByID(ctx, f.transfer.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.TransferApproved, decided.Status)
		assert.Empty(t, decided.DecisionReason)
	})

	t.Run("Missing transfer", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransferRepository(db, logger.NewNoopLogger())

		err := repo.MarkDecided(ctx, 404, entity.TransferRejected, "", adminID, time.Now().UTC())
		assert.ErrorIs(t, err, errs.ErrTransferNotFound)
	})
}
