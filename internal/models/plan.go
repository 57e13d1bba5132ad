package models

import (
	"time"
)

const (
	PlanStatusActive   = "active"
	PlanStatusInactive = "inactive"
)

type Plan struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount       float64   `gorm:"column:amount;type:decimal(20,2);not null" json:"amount"`
	DailyReturn  float64   `gorm:"column:daily_return;type:decimal(20,2);not null" json:"daily_return"`
	TotalReturn  float64   `gorm:"column:total_return;type:decimal(20,2);not null" json:"total_return"`
	ValidityDays int       `gorm:"column:validity_days;not null" json:"validity_days"`
	Status       string    `gorm:"column:status;size:20;default:active" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}
