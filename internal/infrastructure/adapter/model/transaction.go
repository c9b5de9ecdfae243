package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement"`
	LocalID     string            `gorm:"uniqueIndex;not null;size:36"`
	ExternalRef string            `gorm:"uniqueIndex;not null;size:255"`
	Amount      int64             `gorm:"not null"`
	Currency    string            `gorm:"not null;size:3"`
	Status      string            `gorm:"not null;size:50;index"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"not null;index:idx_transactions_created_at,sort:desc"`
	UpdatedAt   time.Time         `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
