package model

import (
	"time"
)

// Account represents the database model for named balance buckets
type Account struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"not null;index;uniqueIndex:idx_accounts_user_name"`
	Name         string    `gorm:"not null;size:50;uniqueIndex:idx_accounts_user_name"`
	BalanceCents int64     `gorm:"not null;default:0"` // Balance in cents
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
