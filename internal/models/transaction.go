package models

import (
	"time"
)

// Transaction kinds.
const (
	KindDeposit     = "deposit"
	KindWithdraw    = "withdraw"
	KindClaim       = "claim"
	KindAdminAdd    = "admin_add"
	KindAdminDeduct = "admin_deduct"
)

// Transaction statuses. pending may transition exactly once to completed
// or rejected; both are terminal.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

type Transaction struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	AccountID    string    `gorm:"column:account_id;size:20;not null" json:"account_id"`
	ReferenceNo  string    `gorm:"column:reference_no;size:64;not null;uniqueIndex" json:"reference_no"`
	Kind         string    `gorm:"column:kind;size:20;not null;index" json:"kind"`
	Status       string    `gorm:"column:status;size:20;not null;default:pending;index" json:"status"`
	Amount       float64   `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	ExternalRef  *string   `gorm:"column:external_ref;size:255" json:"external_ref,omitempty"`
	SenderNumber *string   `gorm:"column:sender_number;size:20" json:"sender_number,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Credits reports whether a completed transaction of this kind adds to
// the owner's balance.
func (t *Transaction) Credits() bool {
	return t.Kind == KindDeposit || t.Kind == KindClaim || t.Kind == KindAdminAdd
}
