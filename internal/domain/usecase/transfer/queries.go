package transfer

import (
	"context"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
)

// ListFor returns transfers where the given user is the sender or the
// recipient, most recent first
func (s *Service) ListFor(ctx context.Context, userID uint64) ([]*entity.Transfer, error) {
	return s.transferRepo.ListForUser(ctx, userID)
}

// ListPending returns all transfers awaiting a decision, most recent
// first. Role enforcement happens at the API surface.
func (s *Service) ListPending(ctx context.Context) ([]*entity.Transfer, error) {
	return s.transferRepo.ListPending(ctx)
}
