package models

import (
	"time"
)

// Payout log statuses.
const (
	PayoutDispatched = 1
	PayoutFailed     = 2
)

// PayoutLog records a withdrawal disbursement handed to the payout worker
// after admin approval.
type PayoutLog struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID  uint      `gorm:"column:transaction_id;not null;index" json:"transaction_id"`
	UserID         uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	AccountID      string    `gorm:"column:account_id;size:20" json:"account_id"`
	WalletProvider string    `gorm:"column:wallet_provider;size:20" json:"wallet_provider"`
	WalletNumber   string    `gorm:"column:wallet_number;size:20" json:"wallet_number"`
	Amount         float64   `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	Status         int       `gorm:"column:status;default:0" json:"status"` // 1: dispatched, 2: failed
	Note           string    `gorm:"column:note;type:text" json:"note"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PayoutLog) TableName() string {
	return "payout_logs"
}
