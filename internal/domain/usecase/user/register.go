package user

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
)

// accountNumberAttempts bounds the collision-retry loop when generating a
// fresh 10-digit account number
const accountNumberAttempts = 5

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// Register creates a user and seeds one account per enumerated name, all
// in one unit of work so a half-registered user can never exist
func (s *Service) Register(ctx context.Context, req RegisterRequest) (result *entity.User, err error) {
	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("%w: password is required", errs.ErrInvalidUserData)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, lookupErr := s.userRepo.GetByEmail(ctx, email); lookupErr == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errors.Is(lookupErr, errs.ErrUserNotFound) {
		return nil, lookupErr
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %s", errs.ErrInternalServer, err.Error())
	}

	accountNumber, err := s.generateAccountNumber(ctx)
	if err != nil {
		return nil, err
	}

	newUser, err := entity.NewUser(req.FullName, email, hash, req.Phone, accountNumber, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := s.uow.Rollback(txCtx); rollbackErr != nil {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	userRepo := s.uow.GetUserRepository(txCtx)
	accountRepo := s.uow.GetAccountRepository(txCtx)

	if err = userRepo.Create(txCtx, newUser); err != nil {
		return nil, err
	}

	for _, name := range entity.AccountNames {
		var account *entity.Account
		account, err = entity.NewAccount(newUser.ID, name, s.startingBalanceCents, s.timeProvider)
		if err != nil {
			return nil, err
		}
		if err = accountRepo.Create(txCtx, account); err != nil {
			return nil, err
		}
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":        newUser.ID,
		"email":          newUser.Email,
		"account_number": newUser.AccountNumber,
	})

	return newUser, nil
}

// generateAccountNumber draws random 10-digit numbers until one is free
func (s *Service) generateAccountNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		candidate := strconv.FormatInt(1000000000+rand.Int63n(9000000000), 10)
		exists, err := s.userRepo.AccountNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate an account number", errs.ErrInternalServer)
}
