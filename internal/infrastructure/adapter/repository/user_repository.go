package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the persistence.UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:            m.ID,
		FullName:      m.FullName,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Phone:         m.Phone,
		AccountNumber: m.AccountNumber,
		Role:          entity.Role(m.Role),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", fields)
		return errs.ErrUserNotFound
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{
			"user_id": id,
		})
	}

	return userModelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email, matching case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, map[string]any{
			"email": email,
		})
	}

	return userModelToEntity(&userModel), nil
}

// GetByAccountNumber retrieves a user by their unique account number
func (r *UserRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("account_number = ?", accountNumber).First(&userModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by account number", result.Error, map[string]any{
			"account_number": accountNumber,
		})
	}

	return userModelToEntity(&userModel), nil
}

// Create persists a new user and backfills the generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		FullName:      user.FullName,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		Phone:         user.Phone,
		AccountNumber: user.AccountNumber,
		Role:          string(user.Role),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			if r.errorClassifier.ConstraintColumn(result.Error, "account_number") {
				r.logger.Warn("Account number collision on user create", map[string]any{
					"account_number": user.AccountNumber,
				})
				return errs.ErrDuplicateAccountNumber
			}
			r.logger.Warn("Duplicate email on user create", map[string]any{
				"email": user.Email,
			})
			return errs.ErrDuplicateEmail
		}
		return r.handleDatabaseError("creating user", result.Error, map[string]any{
			"email": user.Email,
		})
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id":        user.ID,
		"email":          user.Email,
		"account_number": user.AccountNumber,
	})
	return nil
}

// UpdateRole sets the user's role
func (r *UserRepository) UpdateRole(ctx context.Context, userID uint64, role entity.Role) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"role":       string(role),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user role", result.Error, map[string]any{
			"user_id": userID,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during role update", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Info("User role updated", map[string]any{
		"user_id": userID,
		"role":    string(role),
	})
	return nil
}

// AccountNumberExists reports whether an account number is taken
func (r *UserRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("account_number = ?", accountNumber).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Database error when checking account number", map[string]any{
			"account_number": accountNumber,
			"error":          result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return count > 0, nil
}
