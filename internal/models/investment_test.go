package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownRemaining(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	inv := Investment{IsActive: true, TotalDays: 45}
	assert.Equal(t, time.Duration(0), inv.CooldownRemaining(now), "never-claimed investment has no cooldown")

	claimed := now.Add(-2 * time.Hour)
	inv.LastClaimAt = &claimed
	assert.Equal(t, 22*time.Hour, inv.CooldownRemaining(now))

	claimed = now.Add(-ClaimCooldown)
	inv.LastClaimAt = &claimed
	assert.Equal(t, time.Duration(0), inv.CooldownRemaining(now), "exactly 24h is claimable")
}

func TestCooldownIgnoresTimezone(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)
	now := time.Date(2025, 6, 10, 18, 0, 0, 0, dhaka)
	claimed := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	inv := Investment{IsActive: true, TotalDays: 45, LastClaimAt: &claimed}
	// 18:00+06 is 12:00 UTC, one hour after the claim.
	assert.Equal(t, 23*time.Hour, inv.CooldownRemaining(now))
}

func TestMatured(t *testing.T) {
	inv := Investment{TotalDays: 45, DaysPassed: 44}
	assert.False(t, inv.Matured())

	inv.DaysPassed = 45
	assert.True(t, inv.Matured())
}

func TestClaimable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	inv := Investment{IsActive: true, TotalDays: 45, DaysPassed: 10}
	assert.True(t, inv.Claimable(now))

	recent := now.Add(-time.Hour)
	inv.LastClaimAt = &recent
	assert.False(t, inv.Claimable(now), "inside the cooldown window")

	inv.LastClaimAt = nil
	inv.DaysPassed = 45
	assert.False(t, inv.Claimable(now), "matured investments pay nothing more")

	inv.DaysPassed = 10
	inv.IsActive = false
	assert.False(t, inv.Claimable(now))
}
