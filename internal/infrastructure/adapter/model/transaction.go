package model

import (
	"time"
)

// Transaction represents the database model for immutable ledger entries.
// Rows are only ever inserted, never updated or deleted.
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index:idx_transactions_user_created"`
	AccountID   uint64    `gorm:"not null;index"`
	Direction   string    `gorm:"not null;size:10"`
	AmountCents int64     `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"not null;size:20"`
	TransferRef string    `gorm:"size:64;index"`
	CreatedAt   time.Time `gorm:"not null;index:idx_transactions_user_created"`

	User    User    `gorm:"foreignKey:UserID;references:ID"`
	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
