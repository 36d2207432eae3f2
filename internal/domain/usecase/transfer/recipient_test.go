package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	persistencemocks "github.com/mayowa-ojo/digibank/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecipientResolve(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 2, Email: "recipient@example.com", AccountNumber: "2222222222"}

	t.Run("Account number takes precedence over email", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(user, nil).Once()

		resolved, err := NewRecipientResolver(mockRepo).Resolve(ctx, "2222222222")

		require.NoError(t, err)
		assert.Equal(t, uint64(2), resolved.ID)
	})

	t.Run("Email fallback is case-insensitive", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockRepo.EXPECT().GetByAccountNumber(mock.Anything, "Recipient@EXAMPLE.com").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "recipient@example.com").Return(user, nil).Once()

		resolved, err := NewRecipientResolver(mockRepo).Resolve(ctx, "Recipient@EXAMPLE.com")

		require.NoError(t, err)
		assert.Equal(t, uint64(2), resolved.ID)
	})

	t.Run("Key is trimmed before lookup", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(user, nil).Once()

		resolved, err := NewRecipientResolver(mockRepo).Resolve(ctx, "  2222222222  ")

		require.NoError(t, err)
		assert.Equal(t, uint64(2), resolved.ID)
	})

	t.Run("Empty key", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)

		resolved, err := NewRecipientResolver(mockRepo).Resolve(ctx, "   ")

		assert.ErrorIs(t, err, errs.ErrRecipientNotFound)
		assert.Nil(t, resolved)
	})

	t.Run("Both lookups miss", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockRepo.EXPECT().GetByAccountNumber(mock.Anything, "nobody@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, errs.ErrUserNotFound).Once()

		resolved, err := NewRecipientResolver(mockRepo).Resolve(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, errs.ErrRecipientNotFound)
		assert.Nil(t, resolved)
	})

	t.Run("Storage errors are not masked as not-found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		databaseError := errors.New("database connection error")
		mockRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(nil, databaseError).Once()

		resolved, err := NewRecipientResolver(mockRepo).Resolve(ctx, "2222222222")

		assert.Equal(t, databaseError, err)
		assert.Nil(t, resolved)
	})
}

func TestListQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("ListFor delegates to the repository", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		transfers := []*entity.Transfer{pendingTransfer()}

		m.transferRepo.EXPECT().ListForUser(mock.Anything, uint64(1)).Return(transfers, nil).Once()

		result, err := svc.ListFor(ctx, 1)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("ListPending delegates to the repository", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.transferRepo.EXPECT().ListPending(mock.Anything).Return([]*entity.Transfer{}, nil).Once()

		result, err := svc.ListPending(ctx)

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
