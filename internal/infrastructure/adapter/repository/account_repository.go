package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountRepository implements the persistence.AccountRepository interface using GORM
type AccountRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func accountModelToEntity(m *model.Account) *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         entity.AccountName(m.Name),
		BalanceCents: m.BalanceCents,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *AccountRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", fields)
		return errs.ErrAccountNotFound
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account by its id
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, map[string]any{
			"account_id": id,
		})
	}

	return accountModelToEntity(&accountModel), nil
}

// GetByIDForUpdate retrieves an account by id with a row lock held until the
// surrounding unit of work completes
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := forUpdate(r.db.WithContext(ctx)).First(&accountModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking account", result.Error, map[string]any{
			"account_id": id,
		})
	}

	return accountModelToEntity(&accountModel), nil
}

// GetByUserAndName retrieves the account owned by userID with the given name
func (r *AccountRepository) GetByUserAndName(ctx context.Context, userID uint64, name entity.AccountName) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, string(name)).
		First(&accountModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account by name", result.Error, map[string]any{
			"user_id":      userID,
			"account_name": string(name),
		})
	}

	return accountModelToEntity(&accountModel), nil
}

// ListByUser returns all accounts owned by userID
func (r *AccountRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	var accountModels []model.Account
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&accountModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing accounts", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountModelToEntity(&accountModels[i]))
	}
	return accounts, nil
}

// Create persists a new account and backfills the generated ID
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		UserID:       account.UserID,
		Name:         string(account.Name),
		BalanceCents: account.BalanceCents,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, map[string]any{
			"user_id":      account.UserID,
			"account_name": string(account.Name),
		})
	}

	account.ID = accountModel.ID

	r.logger.Debug("Account created", map[string]any{
		"account_id":   account.ID,
		"user_id":      account.UserID,
		"account_name": string(account.Name),
	})
	return nil
}

// AdjustBalance applies deltaCents to the stored balance as a single
// conditional update. The guard in the WHERE clause makes it impossible
// for concurrent debits to drive the balance negative, with or without
// a preceding row lock.
func (r *AccountRepository) AdjustBalance(ctx context.Context, accountID uint64, deltaCents int64) (*entity.Account, error) {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ? AND balance_cents + ? >= 0", accountID, deltaCents).
		Updates(map[string]interface{}{
			"balance_cents": gorm.Expr("balance_cents + ?", deltaCents),
			"updated_at":    r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Database error when adjusting balance", map[string]any{
			"account_id":  accountID,
			"delta_cents": deltaCents,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		// Either the account does not exist or the debit would overdraw it.
		// Refetch to tell the two apart.
		account, err := r.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		r.logger.Warn("Insufficient balance for adjustment", map[string]any{
			"account_id":      accountID,
			"delta_cents":     deltaCents,
			"current_balance": account.Balance(),
		})
		return nil, &errs.InsufficientFundsError{
			AccountID:      accountID,
			RequiredCents:  -deltaCents,
			AvailableCents: account.BalanceCents,
		}
	}

	account, err := r.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Balance adjusted", map[string]any{
		"account_id":  accountID,
		"delta_cents": deltaCents,
		"new_balance": account.Balance(),
	})
	return account, nil
}
