package user

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

func TestLogin(t *testing.T) {
	ctx := context.Background()
	stored := &entity.User{ID: 1, Email: "ada@example.com", PasswordHash: "hashed"}

	t.Run("Successful login", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("hashed", "correct-horse").Return(true).Once()

		account, err := svc.Login(ctx, "ada@example.com", "correct-horse")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), account.ID)
	})

	t.Run("Email is normalized before lookup", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("hashed", "correct-horse").Return(true).Once()

		_, err := svc.Login(ctx, "  Ada@Example.COM  ", "correct-horse")
		require.NoError(t, err)
	})

	t.Run("Unknown email and wrong password are indistinguishable", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, errs.ErrUserNotFound).Once()
		_, unknownErr := svc.Login(ctx, "nobody@example.com", "whatever")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("hashed", "wrong").Return(false).Once()
		_, wrongErr := svc.Login(ctx, "ada@example.com", "wrong")

		assert.ErrorIs(t, unknownErr, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, errs.ErrInvalidCredentials)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t, 0, "")

		_, err := svc.Login(ctx, "", "secret")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

		_, err = svc.Login(ctx, "ada@example.com", "")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Storage failure surfaces", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")
		databaseError := errors.New("database connection error")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, databaseError).Once()

		_, err := svc.Login(ctx, "ada@example.com", "correct-horse")
		assert.Equal(t, databaseError, err)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(&entity.User{ID: 1}, nil).Once()

		account, err := svc.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), account.ID)
	})

	t.Run("Zero ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t, 0, "")

		account, err := svc.GetByID(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, account)
	})
}
