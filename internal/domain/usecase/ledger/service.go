package ledger

import (
	"context"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/domain/port/persistence"
)

// Service exposes the read side of the ledger store and direct
// deposit/withdrawal postings. Transfers never go through here; they are
// owned by the transfer service.
type Service struct {
	uow          persistence.UnitOfWork
	accountRepo  persistence.AccountRepository
	ledgerRepo   persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new ledger service
func NewService(
	uow persistence.UnitOfWork,
	accountRepo persistence.AccountRepository,
	ledgerRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		accountRepo:  accountRepo,
		ledgerRepo:   ledgerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListAccounts returns all accounts owned by the user
func (s *Service) ListAccounts(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	return s.accountRepo.ListByUser(ctx, userID)
}

// ListEntries returns the user's ledger entries, most recent first
func (s *Service) ListEntries(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	return s.ledgerRepo.ListByUser(ctx, userID)
}
