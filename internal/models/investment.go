package models

import (
	"time"
)

// ClaimCooldown is the minimum wall-clock gap between two payout claims
// on the same investment.
const ClaimCooldown = 24 * time.Hour

type Investment struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	PlanAmount  float64    `gorm:"column:plan_amount;type:decimal(20,2);not null" json:"plan_amount"`
	DailyReturn float64    `gorm:"column:daily_return;type:decimal(20,2);not null" json:"daily_return"`
	TotalDays   int        `gorm:"column:total_days;not null" json:"total_days"`
	DaysPassed  int        `gorm:"column:days_passed;not null;default:0" json:"days_passed"`
	LastClaimAt *time.Time `gorm:"column:last_claim_at" json:"last_claim_at,omitempty"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Investment) TableName() string {
	return "investments"
}

// Matured reports whether every daily payout has been credited.
func (i *Investment) Matured() bool {
	return i.DaysPassed >= i.TotalDays
}

// CooldownRemaining returns how long until the next claim is allowed.
// Zero means the investment is claimable right now (assuming it is active).
// Comparison is done on UTC instants so client timezones cannot skew it.
func (i *Investment) CooldownRemaining(now time.Time) time.Duration {
	if i.LastClaimAt == nil {
		return 0
	}
	elapsed := now.UTC().Sub(i.LastClaimAt.UTC())
	if elapsed >= ClaimCooldown {
		return 0
	}
	return ClaimCooldown - elapsed
}

// Claimable reports whether a claim at the given instant would be accepted.
func (i *Investment) Claimable(now time.Time) bool {
	return i.IsActive && !i.Matured() && i.CooldownRemaining(now) == 0
}
