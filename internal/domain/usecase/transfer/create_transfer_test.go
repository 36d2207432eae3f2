package transfer

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

type serviceMocks struct {
	uow             *persistencemocks.MockUnitOfWork
	userRepo        *persistencemocks.MockUserRepository
	accountRepo     *persistencemocks.MockAccountRepository
	transactionRepo *persistencemocks.MockTransactionRepository
	transferRepo    *persistencemocks.MockTransferRepository
	timeProvider    *coremocks.MockTimeProvider
	logger          *coremocks.MockLogger
}

func newServiceWithMocks(t *testing.T) (*Service, *serviceMocks) {
	m := &serviceMocks{
		uow:             persistencemocks.NewMockUnitOfWork(t),
		userRepo:        persistencemocks.NewMockUserRepository(t),
		accountRepo:     persistencemocks.NewMockAccountRepository(t),
		transactionRepo: persistencemocks.NewMockTransactionRepository(t),
		transferRepo:    persistencemocks.NewMockTransferRepository(t),
		timeProvider:    coremocks.NewMockTimeProvider(t),
		logger:          coremocks.NewMockLogger(t),
	}

	m.timeProvider.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewService(m.uow, m.userRepo, m.accountRepo, m.transferRepo, m.timeProvider, m.logger), m
}

func TestCreateTransfer(t *testing.T) {
	ctx := context.Background()

	sender := &entity.User{ID: 1, Email: "sender@example.com", AccountNumber: "1111111111"}
	recipient := &entity.User{ID: 2, Email: "recipient@example.com", AccountNumber: "2222222222"}
	senderMain := &entity.Account{ID: 10, UserID: 1, Name: entity.AccountMain, BalanceCents: 10000}
	recipientMain := &entity.Account{ID: 20, UserID: 2, Name: entity.AccountMain, BalanceCents: 0}

	t.Run("Successful creation with recipient account number", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(recipient, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(1), entity.AccountMain).Return(senderMain, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(2), entity.AccountMain).Return(recipientMain, nil).Once()
		m.transferRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tr *entity.Transfer) bool {
			return tr.FromUserID == 1 && tr.ToUserID == 2 &&
				tr.FromAccountID == 10 && tr.ToAccountID == 20 &&
				tr.AmountCents == 4000 && tr.Status == entity.TransferPending
		})).Return(nil).Once()

		transfer, err := svc.Create(ctx, CreateRequest{
			SenderID:     1,
			RecipientKey: "2222222222",
			Amount:       "40.00",
			Note:         "rent",
		})

		require.NoError(t, err)
		assert.Equal(t, "40.00", transfer.Amount())
		assert.Equal(t, entity.TransferPending, transfer.Status)
		assert.NotEmpty(t, transfer.Reference)
	})

	t.Run("Recipient resolved by email when account number misses", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "Recipient@Example.COM").Return(nil, errs.ErrUserNotFound).Once()
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "recipient@example.com").Return(recipient, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(1), entity.AccountMain).Return(senderMain, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(2), entity.AccountMain).Return(recipientMain, nil).Once()
		m.transferRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		transfer, err := svc.Create(ctx, CreateRequest{
			SenderID:     1,
			RecipientKey: "Recipient@Example.COM",
			Amount:       "10",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(2), transfer.ToUserID)
	})

	t.Run("Explicit source account name", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		senderSavings := &entity.Account{ID: 11, UserID: 1, Name: entity.AccountSavings, BalanceCents: 10000}

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(recipient, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(1), entity.AccountSavings).Return(senderSavings, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(2), entity.AccountMain).Return(recipientMain, nil).Once()
		m.transferRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		transfer, err := svc.Create(ctx, CreateRequest{
			SenderID:        1,
			FromAccountName: "Savings",
			RecipientKey:    "2222222222",
			Amount:          "40.00",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(11), transfer.FromAccountID)
	})

	t.Run("Malformed amount", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		for _, amount := range []string{"", "abc", "10.123", "-5", "0"} {
			transfer, err := svc.Create(ctx, CreateRequest{SenderID: 1, RecipientKey: "2222222222", Amount: amount})
			assert.ErrorIs(t, err, errs.ErrInvalidAmount, "amount %q", amount)
			assert.Nil(t, transfer)
		}
	})

	t.Run("Recipient not found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "9999999999").Return(nil, errs.ErrUserNotFound).Once()
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "9999999999").Return(nil, errs.ErrUserNotFound).Once()

		transfer, err := svc.Create(ctx, CreateRequest{SenderID: 1, RecipientKey: "9999999999", Amount: "40.00"})

		assert.ErrorIs(t, err, errs.ErrRecipientNotFound)
		assert.Nil(t, transfer)
	})

	t.Run("Self transfer", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "1111111111").Return(sender, nil).Once()

		transfer, err := svc.Create(ctx, CreateRequest{SenderID: 1, RecipientKey: "1111111111", Amount: "40.00"})

		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
		assert.Nil(t, transfer)
	})

	t.Run("Unknown source account name", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(recipient, nil).Once()

		transfer, err := svc.Create(ctx, CreateRequest{
			SenderID:        1,
			FromAccountName: "Checking",
			RecipientKey:    "2222222222",
			Amount:          "40.00",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidAccountName)
		assert.Nil(t, transfer)
	})

	t.Run("Source account missing", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(recipient, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(1), entity.AccountMain).Return(nil, errs.ErrAccountNotFound).Once()

		transfer, err := svc.Create(ctx, CreateRequest{SenderID: 1, RecipientKey: "2222222222", Amount: "40.00"})

		assert.ErrorIs(t, err, errs.ErrSourceAccountNotFound)
		assert.Nil(t, transfer)
	})

	t.Run("Destination account missing", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(recipient, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(1), entity.AccountMain).Return(senderMain, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(2), entity.AccountMain).Return(nil, errs.ErrAccountNotFound).Once()

		transfer, err := svc.Create(ctx, CreateRequest{SenderID: 1, RecipientKey: "2222222222", Amount: "40.00"})

		assert.ErrorIs(t, err, errs.ErrDestinationAccountNotFound)
		assert.Nil(t, transfer)
	})

	t.Run("Insufficient funds at creation", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		broke := &entity.Account{ID: 10, UserID: 1, Name: entity.AccountMain, BalanceCents: 100}

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(recipient, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(1), entity.AccountMain).Return(broke, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(2), entity.AccountMain).Return(recipientMain, nil).Once()

		transfer, err := svc.Create(ctx, CreateRequest{SenderID: 1, RecipientKey: "2222222222", Amount: "40.00"})

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Nil(t, transfer)

		var fundsErr *errs.InsufficientFundsError
		require.ErrorAs(t, err, &fundsErr)
		assert.Equal(t, int64(4000), fundsErr.RequiredCents)
		assert.Equal(t, int64(100), fundsErr.AvailableCents)
	})

	t.Run("Repository failure surfaces", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		databaseError := errors.New("database insert error")

		m.userRepo.EXPECT().GetByAccountNumber(mock.Anything, "2222222222").Return(recipient, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(1), entity.AccountMain).Return(senderMain, nil).Once()
		m.accountRepo.EXPECT().GetByUserAndName(mock.Anything, uint64(2), entity.AccountMain).Return(recipientMain, nil).Once()
		m.transferRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(databaseError).Once()

		transfer, err := svc.Create(ctx, CreateRequest{SenderID: 1, RecipientKey: "2222222222", Amount: "40.00"})

		assert.Equal(t, databaseError, err)
		assert.Nil(t, transfer)
	})
}
