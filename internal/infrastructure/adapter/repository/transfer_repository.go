package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransferRepository implements the persistence.TransferRepository interface using GORM
type TransferRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransferRepository creates a new TransferRepository instance
func NewTransferRepository(db *gorm.DB, logger coreport.Logger) *TransferRepository {
	return &TransferRepository{
		db:     db,
		logger: logger,
	}
}

func transferModelToEntity(m *model.Transfer) *entity.Transfer {
	return &entity.Transfer{
		ID:             m.ID,
		Reference:      m.Reference,
		FromUserID:     m.FromUserID,
		ToUserID:       m.ToUserID,
		FromAccountID:  m.FromAccountID,
		ToAccountID:    m.ToAccountID,
		AmountCents:    m.AmountCents,
		Note:           m.Note,
		Status:         entity.TransferStatus(m.Status),
		DecisionReason: m.DecisionReason,
		DecidedBy:      m.DecidedBy,
		DecidedAt:      m.DecidedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *TransferRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Transfer not found", fields)
		return errs.ErrTransferNotFound
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new pending transfer and backfills the generated ID
func (r *TransferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	transferModel := model.Transfer{
		Reference:      transfer.Reference,
		FromUserID:     transfer.FromUserID,
		ToUserID:       transfer.ToUserID,
		FromAccountID:  transfer.FromAccountID,
		ToAccountID:    transfer.ToAccountID,
		AmountCents:    transfer.AmountCents,
		Note:           transfer.Note,
		Status:         string(transfer.Status),
		DecisionReason: transfer.DecisionReason,
		DecidedBy:      transfer.DecidedBy,
		DecidedAt:      transfer.DecidedAt,
		CreatedAt:      transfer.CreatedAt,
		UpdatedAt:      transfer.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&transferModel)

	if result.Error != nil {
		r.logger.Error("Database error when creating transfer", map[string]any{
			"reference":    transfer.Reference,
			"from_user_id": transfer.FromUserID,
			"to_user_id":   transfer.ToUserID,
			"error":        result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transfer.ID = transferModel.ID

	r.logger.Info("Transfer created", map[string]any{
		"transfer_id":  transfer.ID,
		"reference":    transfer.Reference,
		"from_user_id": transfer.FromUserID,
		"to_user_id":   transfer.ToUserID,
		"amount":       transfer.Amount(),
	})
	return nil
}

// GetByID retrieves a transfer by id
func (r *TransferRepository) GetByID(ctx context.Context, id uint64) (*entity.Transfer, error) {
	var transferModel model.Transfer
	result := r.db.WithContext(ctx).First(&transferModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transfer", result.Error, map[string]any{
			"transfer_id": id,
		})
	}

	return transferModelToEntity(&transferModel), nil
}

// ListForUser returns transfers where userID is the sender or the recipient,
// most recent first
func (r *TransferRepository) ListForUser(ctx context.Context, userID uint64) ([]*entity.Transfer, error) {
	var transferModels []model.Transfer
	result := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at desc, id desc").
		Find(&transferModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing transfers", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transfers := make([]*entity.Transfer, 0, len(transferModels))
	for i := range transferModels {
		transfers = append(transfers, transferModelToEntity(&transferModels[i]))
	}
	return transfers, nil
}

// ListPending returns all transfers still awaiting a decision, most recent first
func (r *TransferRepository) ListPending(ctx context.Context) ([]*entity.Transfer, error) {
	var transferModels []model.Transfer
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.TransferPending)).
		Order("created_at desc, id desc").
		Find(&transferModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing pending transfers", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transfers := make([]*entity.Transfer, 0, len(transferModels))
	for i := range transferModels {
		transfers = append(transfers, transferModelToEntity(&transferModels[i]))
	}
	return transfers, nil
}

// MarkDecided performs the PENDING to terminal transition as a single
// conditional update. When two admins race on the same transfer the WHERE
// clause guarantees exactly one of them wins.
func (r *TransferRepository) MarkDecided(ctx context.Context, transferID uint64, status entity.TransferStatus, reason string, decidedBy uint64, decidedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Transfer{}).
		Where("id = ? AND status = ?", transferID, string(entity.TransferPending)).
		Updates(map[string]interface{}{
			"status":          string(status),
			"decision_reason": reason,
			"decided_by":      decidedBy,
			"decided_at":      decidedAt,
			"updated_at":      decidedAt,
		})

	if result.Error != nil {
		r.logger.Error("Database error when deciding transfer", map[string]any{
			"transfer_id": transferID,
			"status":      string(status),
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		// No pending row matched. Refetch to tell a missing transfer apart
		// from one that already left PENDING.
		transfer, err := r.GetByID(ctx, transferID)
		if err != nil {
			return err
		}
		r.logger.Warn("Transfer already decided", map[string]any{
			"transfer_id": transferID,
			"status":      string(transfer.Status),
		})
		return &errs.TransferStateError{
			TransferID: transferID,
			Status:     string(transfer.Status),
		}
	}

	r.logger.Info("Transfer decided", map[string]any{
		"transfer_id": transferID,
		"status":      string(status),
		"decided_by":  decidedBy,
	})
	return nil
}
