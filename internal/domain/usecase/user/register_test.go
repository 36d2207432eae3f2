package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coremocks "github.com/mayowa-ojo/digibank/mocks/port/core"
	persistencemocks "github.com/mayowa-ojo/digibank/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testCtxKey string

type serviceMocks struct {
	uow          *persistencemocks.MockUnitOfWork
	userRepo     *persistencemocks.MockUserRepository
	txUserRepo   *persistencemocks.MockUserRepository
	accountRepo  *persistencemocks.MockAccountRepository
	hasher       *coremocks.MockPasswordHasher
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	txCtx        context.Context
}

func newServiceWithMocks(t *testing.T, startingBalanceCents int64, adminSetupKey string) (*Service, *serviceMocks) {
	m := &serviceMocks{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		userRepo:     persistencemocks.NewMockUserRepository(t),
		txUserRepo:   persistencemocks.NewMockUserRepository(t),
		accountRepo:  persistencemocks.NewMockAccountRepository(t),
		hasher:       coremocks.NewMockPasswordHasher(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
		txCtx:        context.WithValue(context.Background(), testCtxKey("tx"), true),
	}

	m.timeProvider.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewService(m.uow, m.userRepo, m.hasher, m.timeProvider, m.logger, startingBalanceCents, adminSetupKey), m
}

// expectRegistrationUnit wires the unit-of-work choreography shared by the
// happy-path registration tests
func (m *serviceMocks) expectRegistrationUnit() {
	m.uow.EXPECT().Begin(mock.Anything).Return(m.txCtx, nil).Once()
	m.uow.EXPECT().GetUserRepository(m.txCtx).Return(m.txUserRepo).Once()
	m.uow.EXPECT().GetAccountRepository(m.txCtx).Return(m.accountRepo).Once()
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	req := RegisterRequest{
		FullName: "Ada Obi",
		Email:    "Ada@Example.COM",
		Password: "correct-horse",
		Phone:    "0801",
	}

	t.Run("Successful registration seeds one account per name", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 50000, "")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("correct-horse").Return("hashed", nil).Once()
		m.userRepo.EXPECT().AccountNumberExists(mock.Anything, mock.Anything).Return(false, nil).Once()

		m.expectRegistrationUnit()
		m.txUserRepo.EXPECT().Create(m.txCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ada@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleUser
		})).Run(func(_ context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()

		m.accountRepo.EXPECT().Create(m.txCtx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.UserID == 42 && a.BalanceCents == 50000 && entity.IsValidAccountName(string(a.Name))
		})).Return(nil).Times(len(entity.AccountNames))

		m.uow.EXPECT().Commit(m.txCtx).Return(nil).Once()

		created, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), created.ID)
		assert.Equal(t, "ada@example.com", created.Email)
		assert.Len(t, created.AccountNumber, 10)
	})

	t.Run("Empty password", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t, 0, "")

		created, err := svc.Register(ctx, RegisterRequest{FullName: "Ada", Email: "ada@example.com", Password: "   "})

		assert.ErrorIs(t, err, errs.ErrInvalidUserData)
		assert.Nil(t, created)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(&entity.User{ID: 1}, nil).Once()

		created, err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		assert.Nil(t, created)
	})

	t.Run("Email lookup failure surfaces", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")
		databaseError := errors.New("database connection error")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, databaseError).Once()

		created, err := svc.Register(ctx, req)

		assert.Equal(t, databaseError, err)
		assert.Nil(t, created)
	})

	t.Run("Account number collision retries until free", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("correct-horse").Return("hashed", nil).Once()
		m.userRepo.EXPECT().AccountNumberExists(mock.Anything, mock.Anything).Return(true, nil).Once()
		m.userRepo.EXPECT().AccountNumberExists(mock.Anything, mock.Anything).Return(false, nil).Once()

		m.expectRegistrationUnit()
		m.txUserRepo.EXPECT().Create(m.txCtx, mock.Anything).Run(func(_ context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()
		m.accountRepo.EXPECT().Create(m.txCtx, mock.Anything).Return(nil).Times(len(entity.AccountNames))
		m.uow.EXPECT().Commit(m.txCtx).Return(nil).Once()

		created, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.NotNil(t, created)
	})

	t.Run("Account creation failure rolls the user back", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")
		databaseError := errors.New("database insert error")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("correct-horse").Return("hashed", nil).Once()
		m.userRepo.EXPECT().AccountNumberExists(mock.Anything, mock.Anything).Return(false, nil).Once()

		m.expectRegistrationUnit()
		m.txUserRepo.EXPECT().Create(m.txCtx, mock.Anything).Run(func(_ context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()
		m.accountRepo.EXPECT().Create(m.txCtx, mock.Anything).Return(databaseError).Once()
		m.uow.EXPECT().Rollback(m.txCtx).Return(nil).Once()

		created, err := svc.Register(ctx, req)

		assert.Equal(t, databaseError, err)
		assert.Nil(t, created)
	})

	t.Run("Hashing failure", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, 0, "")

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("correct-horse").Return("", errors.New("cost out of range")).Once()

		created, err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.Nil(t, created)
	})
}
