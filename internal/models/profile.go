package models

import (
	"time"
)

type Profile struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID      string    `gorm:"column:account_id;size:20;not null;uniqueIndex" json:"account_id"`
	PhoneNumber    string    `gorm:"column:phone_number;size:20;not null;uniqueIndex" json:"phone_number"`
	Email          string    `gorm:"column:email;size:255" json:"email"`
	PasswordHash   string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Balance        float64   `gorm:"column:balance;type:decimal(20,2);default:0.00" json:"balance"`
	IsAdmin        bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
	WalletProvider *string   `gorm:"column:wallet_provider;size:20" json:"wallet_provider,omitempty"`
	WalletNumber   *string   `gorm:"column:wallet_number;size:20" json:"wallet_number,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
