package user

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
)

// Promote grants the admin role to the calling user when the presented
// setup key matches the configured one. With no key configured the
// operation is disabled.
func (s *Service) Promote(ctx context.Context, userID uint64, key string) (*entity.User, error) {
	if s.adminSetupKey == "" {
		return nil, fmt.Errorf("%w: admin setup key is not configured", errs.ErrInternalServer)
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.adminSetupKey)) != 1 {
		s.logger.Warn("Admin promotion attempted with invalid setup key", map[string]any{
			"user_id": userID,
		})
		return nil, errs.ErrForbidden
	}

	if err := s.userRepo.UpdateRole(ctx, userID, entity.RoleAdmin); err != nil {
		return nil, err
	}

	s.logger.Info("User promoted to admin", map[string]any{
		"user_id": userID,
	})

	return s.userRepo.GetByID(ctx, userID)
}
