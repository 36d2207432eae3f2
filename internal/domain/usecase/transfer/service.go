package transfer

import (
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/domain/port/persistence"
)

// Service owns the transfer lifecycle. It is the only component permitted
// to move money between two users' accounts and the only component
// permitted to transition a transfer's status.
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	accountRepo  persistence.AccountRepository
	transferRepo persistence.TransferRepository
	resolver     *RecipientResolver
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new transfer service
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	accountRepo persistence.AccountRepository,
	transferRepo persistence.TransferRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		resolver:     NewRecipientResolver(userRepo),
		timeProvider: timeProvider,
		logger:       logger,
	}
}
