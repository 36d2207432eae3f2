package user

import (
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/domain/port/persistence"
)

// Service handles registration, login and role promotion
type Service struct {
	uow                  persistence.UnitOfWork
	userRepo             persistence.UserRepository
	hasher               coreport.PasswordHasher
	timeProvider         coreport.TimeProvider
	logger               coreport.Logger
	startingBalanceCents int64
	adminSetupKey        string
}

// NewService creates a new user service. startingBalanceCents seeds every
// account created at registration; adminSetupKey guards the promotion
// endpoint and disables it entirely when empty.
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingBalanceCents int64,
	adminSetupKey string,
) *Service {
	return &Service{
		uow:                  uow,
		userRepo:             userRepo,
		hasher:               hasher,
		timeProvider:         timeProvider,
		logger:               logger,
		startingBalanceCents: startingBalanceCents,
		adminSetupKey:        adminSetupKey,
	}
}
