package repository

import (
	"context"
	"fmt"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the persistence.TransactionRepository
// interface using GORM. The underlying table is append-only.
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		AccountID:   m.AccountID,
		Direction:   entity.Direction(m.Direction),
		AmountCents: m.AmountCents,
		Description: m.Description,
		Status:      entity.TransactionStatus(m.Status),
		TransferRef: m.TransferRef,
		CreatedAt:   m.CreatedAt,
	}
}

// Create appends a new ledger entry and backfills the generated ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		UserID:      transaction.UserID,
		AccountID:   transaction.AccountID,
		Direction:   string(transaction.Direction),
		AmountCents: transaction.AmountCents,
		Description: transaction.Description,
		Status:      string(transaction.Status),
		TransferRef: transaction.TransferRef,
		CreatedAt:   transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)

	if result.Error != nil {
		r.logger.Error("Database error when appending ledger entry", map[string]any{
			"user_id":    transaction.UserID,
			"account_id": transaction.AccountID,
			"direction":  string(transaction.Direction),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Ledger entry appended", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"account_id":     transaction.AccountID,
		"direction":      string(transaction.Direction),
		"amount":         transaction.Amount(),
	})
	return nil
}

// ListByUser returns all ledger entries for userID, most recent first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&transactionModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing ledger entries", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}
