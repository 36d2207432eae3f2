package migration

import (
	coreport "github.com/mayowa-ojo/digibank/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager manages PostgreSQL-specific indexes beyond what AutoMigrate
// derives from the model tags
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates PostgreSQL indexes for the hot query paths. On other
// dialects the model tag indexes are considered sufficient.
func (m *IndexManager) CreateIndexes() error {
	if m.db.Dialector.Name() != "postgres" {
		m.logger.Info("Skipping PostgreSQL-specific indexes", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}

	m.logger.Info("Creating PostgreSQL indexes", nil)

	// Partial index for the admin review queue: only pending rows matter there
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transfers_pending
		ON transfers (created_at DESC)
		WHERE status = 'PENDING'
	`).Error; err != nil {
		m.logger.Error("Failed to create pending transfers partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Statement queries walk one user's ledger newest first
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_user_recent
		ON transactions (user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create user ledger index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for created_at on the append-only ledger
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Transfer history lists rows where the user is on either side
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transfers_from_user
		ON transfers (from_user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create transfers sender index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transfers_to_user
		ON transfers (to_user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create transfers recipient index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}
