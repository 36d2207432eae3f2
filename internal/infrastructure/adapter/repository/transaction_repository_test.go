package repository

import (
	"context"
	"testing"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create backfills the generated ID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())
		user := createTestUser(t, db, "ada@example.com", "1111111111")
		account := createTestAccount(t, db, user.ID, entity.AccountMain, 5000)

		entry, err := entity.NewTransaction(user.ID, account.ID, entity.DirectionCredit, 2500, "Salary", "", timeProviderForTest())
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, entry))

		assert.NotZero(t, entry.ID)
	})

	t.Run("ListByUser returns only the owner's entries, most recent first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())
		ada := createTestUser(t, db, "ada@example.com", "1111111111")
		tayo := createTestUser(t, db, "tayo@example.com", "2222222222")
		adaAccount := createTestAccount(t, db, ada.ID, entity.AccountMain, 0)
		tayoAccount := createTestAccount(t, db, tayo.ID, entity.AccountMain, 0)

		for i := int64(1); i <= 3; i++ {
			entry, err := entity.NewTransaction(ada.ID, adaAccount.ID, entity.DirectionCredit, i*100, "", "", timeProviderForTest())
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, entry))
		}
		other, err := entity.NewTransaction(tayo.ID, tayoAccount.ID, entity.DirectionCredit, 100, "", "", timeProviderForTest())
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, other))

		entries, err := repo.ListByUser(ctx, ada.ID)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		// Entries share a creation second, so the id desc tiebreaker decides
		assert.Equal(t, int64(300), entries[0].AmountCents)
		assert.Equal(t, int64(100), entries[2].AmountCents)
	})

	t.Run("Entries keep their transfer reference", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())
		user := createTestUser(t, db, "ada@example.com", "1111111111")
		account := createTestAccount(t, db, user.ID, entity.AccountMain, 0)

		entry, err := entity.NewTransaction(user.ID, account.ID, entity.DirectionDebit, 4000, "rent", "TRF-1-abc", timeProviderForTest())
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, entry))

		entries, err := repo.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "TRF-1-abc", entries[0].TransferRef)
		assert.Equal(t, entity.TransactionCompleted, entries[0].Status)
	})
}
