package migration

import (
	"context"
	"errors"
	"time"

	"github.com/mayowa-ojo/digibank/internal/domain/entity"
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountSeeder backfills the enumerated account set for existing users.
// Registration creates all three accounts up front, so this only matters
// for rows that predate an addition to the enumerated set.
type AccountSeeder struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewAccountSeeder creates a new account seeder
func NewAccountSeeder(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *AccountSeeder {
	return &AccountSeeder{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// EnsureAccounts creates any missing enumerated account for every user,
// with a zero balance
func (s *AccountSeeder) EnsureAccounts(ctx context.Context) error {
	var users []model.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return err
	}

	created := 0
	for _, user := range users {
		for _, name := range entity.AccountNames {
			var account model.Account
			err := s.db.WithContext(ctx).
				Where("user_id = ? AND name = ?", user.ID, string(name)).
				First(&account).Error

			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			now := s.now()
			account = model.Account{
				UserID:       user.ID,
				Name:         string(name),
				BalanceCents: 0,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
				return err
			}
			created++
		}
	}

	if created > 0 {
		s.logger.Info("Backfilled missing accounts", map[string]any{
			"created": created,
		})
	}
	return nil
}

func (s *AccountSeeder) now() time.Time {
	if s.timeProvider != nil {
		return s.timeProvider.Now()
	}
	return time.Now()
}
