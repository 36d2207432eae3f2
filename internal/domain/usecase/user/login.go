package user

import (
	"context"
	"errors"
	"strings"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
)

// Login verifies an email/password pair and returns the matching user.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	account, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(account.PasswordHash, password) {
		s.logger.Warn("Login failed", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return account, nil
}

// GetByID returns the user with the given id. Used by the identity gate to
// attach the caller's role to each request.
func (s *Service) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.userRepo.GetByID(ctx, userID)
}
