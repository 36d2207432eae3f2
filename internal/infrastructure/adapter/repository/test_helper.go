package repository

import (
	"context"
	"testing"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	"github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/logger"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/model"
	timeprovider "github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory sqlite database with the full schema. The
// conditional writes under test behave the same as on postgres; only row
// locking differs and the repositories skip it on sqlite.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.User{}, &model.Account{}, &model.Transaction{}, &model.Transfer{})
	require.NoError(t, err)

	return db
}

func timeProviderForTest() core.TimeProvider {
	return timeprovider.NewRealTimeProvider()
}

func newTestUserRepository(db *gorm.DB) *UserRepository {
	return NewUserRepository(db, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
}

func newTestAccountRepository(db *gorm.DB) *AccountRepository {
	return NewAccountRepository(db, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
}

func createTestUser(t *testing.T, db *gorm.DB, email, accountNumber string) *entity.User {
	t.Helper()

	repo := newTestUserRepository(db)
	user, err := entity.NewUser("Test User", email, "hashed", "", accountNumber, timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func createTestAccount(t *testing.T, db *gorm.DB, userID uint64, name entity.AccountName, balanceCents int64) *entity.Account {
	t.Helper()

	repo := newTestAccountRepository(db)
	account, err := entity.NewAccount(userID, name, balanceCents, timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), account))

	return account
}

func createTestTransfer(t *testing.T, db *gorm.DB, from, to *entity.User, fromAccount, toAccount *entity.Account, amountCents int64) *entity.Transfer {
	t.Helper()

	repo := NewTransferRepository(db, logger.NewNoopLogger())
	transfer, err := entity.NewTransfer(from.ID, to.ID, fromAccount.ID, toAccount.ID, amountCents, "", timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), transfer))

	return transfer
}
