package database

import (
	"context"
	"testing"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/logger"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/model"
	timeprovider "github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUnitOfWork(t *testing.T) (*gorm.DB, *UnitOfWork) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Account{}, &model.Transaction{}, &model.Transfer{}))

	uow := NewUnitOfWork(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider()).(*UnitOfWork)
	return db, uow
}

func newPendingUser(t *testing.T) *entity.User {
	t.Helper()

	user, err := entity.NewUser("Ada Obi", "ada@example.com", "hashed", "", "1111111111", timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	return user
}

func TestUnitOfWorkCommit(t *testing.T) {
	db, uow := setupUnitOfWork(t)
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	user := newPendingUser(t)
	require.NoError(t, uow.GetUserRepository(txCtx).Create(txCtx, user))

	account, err := entity.NewAccount(user.ID, entity.AccountMain, 5000, timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	require.NoError(t, uow.GetAccountRepository(txCtx).Create(txCtx, account))

	require.NoError(t, uow.Commit(txCtx))

	var userCount, accountCount int64
	db.Model(&model.User{}).Count(&userCount)
	db.Model(&model.Account{}).Count(&accountCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), accountCount)
}

func TestUnitOfWorkRollback(t *testing.T) {
	db, uow := setupUnitOfWork(t)
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	user := newPendingUser(t)
	require.NoError(t, uow.GetUserRepository(txCtx).Create(txCtx, user))

	require.NoError(t, uow.Rollback(txCtx))

	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	assert.Equal(t, int64(0), userCount, "rolled back writes must not be visible")
}

func TestUnitOfWorkRollbackAfterCommit(t *testing.T) {
	_, uow := setupUnitOfWork(t)
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	user := newPendingUser(t)
	require.NoError(t, uow.GetUserRepository(txCtx).Create(txCtx, user))
	require.NoError(t, uow.Commit(txCtx))

	// The deferred rollback in the usecases runs after a successful
	// commit on some error paths; it must be harmless.
	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWorkRepositoriesShareTheTransaction(t *testing.T) {
	db, uow := setupUnitOfWork(t)
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	user := newPendingUser(t)
	require.NoError(t, uow.GetUserRepository(txCtx).Create(txCtx, user))

	account, err := entity.NewAccount(user.ID, entity.AccountMain, 10000, timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	require.NoError(t, uow.GetAccountRepository(txCtx).Create(txCtx, account))

	// A write made inside the transaction is visible to the next
	// repository drawn from the same context before commit
	adjusted, err := uow.GetAccountRepository(txCtx).AdjustBalance(txCtx, account.ID, -4000)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), adjusted.BalanceCents)

	require.NoError(t, uow.Commit(txCtx))

	var stored model.Account
	require.NoError(t, db.First(&stored, account.ID).Error)
	assert.Equal(t, int64(6000), stored.BalanceCents)
}
