package models

import (
	"time"
)

// ArchivedTransaction is a cold copy of a Transaction row moved out of the
// hot table by the archive job. Rows keep their original timestamps.
type ArchivedTransaction struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	UserID       uint      `gorm:"column:user_id;index"`
	AccountID    string    `gorm:"column:account_id;size:20"`
	ReferenceNo  string    `gorm:"column:reference_no;size:64;uniqueIndex"`
	Kind         string    `gorm:"column:kind;size:20;index"`
	Status       string    `gorm:"column:status;size:20"`
	Amount       float64   `gorm:"column:amount;type:decimal(20,2)"`
	ExternalRef  *string   `gorm:"column:external_ref;size:255"`
	SenderNumber *string   `gorm:"column:sender_number;size:20"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (ArchivedTransaction) TableName() string {
	return "archived_transactions"
}
