package model

import (
	"time"
)

// Transfer represents the database model for transfer requests
type Transfer struct {
	ID             uint64  `gorm:"primaryKey;autoIncrement"`
	Reference      string  `gorm:"uniqueIndex;not null;size:64"`
	FromUserID     uint64  `gorm:"not null;index"`
	ToUserID       uint64  `gorm:"not null;index"`
	FromAccountID  uint64  `gorm:"not null"`
	ToAccountID    uint64  `gorm:"not null"`
	AmountCents    int64   `gorm:"not null"`
	Note           string  `gorm:"type:text"`
	Status         string  `gorm:"not null;size:20;index"`
	DecisionReason string  `gorm:"type:text"`
	DecidedBy      *uint64 `gorm:"index"`
	DecidedAt      *time.Time
	CreatedAt      time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"not null"`

	FromUser    User    `gorm:"foreignKey:FromUserID;references:ID"`
	ToUser      User    `gorm:"foreignKey:ToUserID;references:ID"`
	FromAccount Account `gorm:"foreignKey:FromAccountID;references:ID"`
	ToAccount   Account `gorm:"foreignKey:ToAccountID;references:ID"`
}

// TableName specifies the table name for Transfer
func (Transfer) TableName() string {
	return "transfers"
}
