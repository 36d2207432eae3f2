package transfer

import (
	"context"
	"errors"
	"strings"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	"github.com/mayowa-ojo/digibank/internal/domain/port/persistence"
)

// RecipientResolver maps a caller-supplied recipient key to a user. The key
// is either an account number or an email address; account-number lookup
// always takes precedence over email lookup.
type RecipientResolver struct {
	userRepo persistence.UserRepository
}

// NewRecipientResolver creates a new RecipientResolver
func NewRecipientResolver(userRepo persistence.UserRepository) *RecipientResolver {
	return &RecipientResolver{userRepo: userRepo}
}

// Resolve returns the user the key identifies, or ErrRecipientNotFound.
// Email matching is case-insensitive. No side effects.
func (r *RecipientResolver) Resolve(ctx context.Context, key string) (*entity.User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errs.ErrRecipientNotFound
	}

	user, err := r.userRepo.GetByAccountNumber(ctx, key)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	user, err = r.userRepo.GetByEmail(ctx, strings.ToLower(key))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrRecipientNotFound
		}
		return nil, err
	}
	return user, nil
}
