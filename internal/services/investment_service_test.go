package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"portal-service/internal/models"
)

func TestActivatePlan(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	ledger := NewLedgerService(testDB)
	svc := NewInvestmentService(testDB, ledger)

	user := seedProfile(t, "01712000001", 1000.00)
	plan := seedPlan(t, 700.00, 140.00, 45)

	inv, err := svc.Activate(user.ID, plan.ID)
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	if inv.DaysPassed != 0 || !inv.IsActive {
		t.Errorf("Expected fresh active investment, got days=%d active=%v", inv.DaysPassed, inv.IsActive)
	}
	if inv.DailyReturn != 140.00 || inv.TotalDays != 45 {
		t.Errorf("Investment did not snapshot plan terms: %+v", inv)
	}

	// 1000 - 700 = 300
	if bal := currentBalance(t, user.ID); math.Abs(bal-300.00) > 0.01 {
		t.Errorf("Expected balance 300, got %f", bal)
	}
}

func TestActivateInsufficientFunds(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	ledger := NewLedgerService(testDB)
	svc := NewInvestmentService(testDB, ledger)

	user := seedProfile(t, "01712000002", 500.00)
	plan := seedPlan(t, 1000.00, 200.00, 45)

	_, err := svc.Activate(user.ID, plan.ID)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
	}

	// Balance untouched, no position opened
	if bal := currentBalance(t, user.ID); math.Abs(bal-500.00) > 0.01 {
		t.Errorf("Expected balance 500, got %f", bal)
	}
	var count int64
	testDB.Model(&models.Investment{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected no investments, got %d", count)
	}
}

func TestActivateInactivePlan(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	ledger := NewLedgerService(testDB)
	svc := NewInvestmentService(testDB, ledger)

	user := seedProfile(t, "01712000003", 2000.00)
	plan := seedPlan(t, 1000.00, 200.00, 45)
	testDB.Model(&plan).Update("status", models.PlanStatusInactive)

	_, err := svc.Activate(user.ID, plan.ID)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Expected ErrInvalidState, got %v", err)
	}
}

func TestClaim(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	ledger := NewLedgerService(testDB)
	svc := NewInvestmentService(testDB, ledger)

	user := seedProfile(t, "01712000004", 1000.00)
	plan := seedPlan(t, 700.00, 140.00, 45)
	inv, err := svc.Activate(user.ID, plan.ID)
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	res, err := svc.Claim(user.ID, inv.ID)
	if err != nil {
		t.Fatalf("Claim failed: %v", err)
	}

	// 300 + 140 = 440
	if math.Abs(res.Balance-440.00) > 0.01 {
		t.Errorf("Expected balance 440, got %f", res.Balance)
	}
	if res.Investment.DaysPassed != 1 {
		t.Errorf("Expected days_passed 1, got %d", res.Investment.DaysPassed)
	}
	if res.Investment.LastClaimAt == nil {
		t.Error("Expected last_claim_at to be stamped")
	}
	if res.Transaction.Kind != models.KindClaim || res.Transaction.Status != models.StatusCompleted {
		t.Errorf("Expected completed claim transaction, got %s/%s", res.Transaction.Kind, res.Transaction.Status)
	}
}

func TestClaimTwiceSameDay(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	ledger := NewLedgerService(testDB)
	svc := NewInvestmentService(testDB, ledger)

	user := seedProfile(t, "01712000005", 1000.00)
	plan := seedPlan(t, 1000.00, 200.00, 45)
	inv, _ := svc.Activate(user.ID, plan.ID)

	if _, err := svc.Claim(user.ID, inv.ID); err != nil {
		t.Fatalf("First claim failed: %v", err)
	}

	_, err := svc.Claim(user.ID, inv.ID)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Expected ErrInvalidState on second claim, got %v", err)
	}

	// Only one payout landed
	if bal := currentBalance(t, user.ID); math.Abs(bal-200.00) > 0.01 {
		t.Errorf("Expected balance 200, got %f", bal)
	}
}

func TestClaimFinalDayDeactivates(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	ledger := NewLedgerService(testDB)
	svc := NewInvestmentService(testDB, ledger)

	user := seedProfile(t, "01712000006", 1000.00)
	plan := seedPlan(t, 1000.00, 200.00, 45)
	inv, _ := svc.Activate(user.ID, plan.ID)

	// Fast-forward to the eve of maturity with the cooldown expired.
	stale := time.Now().UTC().Add(-25 * time.Hour)
	testDB.Model(&models.Investment{}).Where("id = ?", inv.ID).
		Updates(map[string]interface{}{"days_passed": 44, "last_claim_at": stale})

	res, err := svc.Claim(user.ID, inv.ID)
	if err != nil {
		t.Fatalf("Final claim failed: %v", err)
	}

	// The final claim still pays.
	if math.Abs(res.Balance-200.00) > 0.01 {
		t.Errorf("Expected balance 200, got %f", res.Balance)
	}
	if res.Investment.DaysPassed != 45 || res.Investment.IsActive {
		t.Errorf("Expected matured inactive investment, got days=%d active=%v",
			res.Investment.DaysPassed, res.Investment.IsActive)
	}

	// And nothing more afterwards.
	testDB.Model(&models.Investment{}).Where("id = ?", inv.ID).Update("last_claim_at", stale)
	if _, err := svc.Claim(user.ID, inv.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Expected ErrInvalidState after maturity, got %v", err)
	}
}

func TestClaimForeignInvestment(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	ledger := NewLedgerService(testDB)
	svc := NewInvestmentService(testDB, ledger)

	owner := seedProfile(t, "01712000007", 1000.00)
	other := seedProfile(t, "01712000008", 1000.00)
	plan := seedPlan(t, 1000.00, 200.00, 45)
	inv, _ := svc.Activate(owner.ID, plan.ID)

	_, err := svc.Claim(other.ID, inv.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for foreign investment, got %v", err)
	}
}

func TestSweepMatured(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	ledger := NewLedgerService(testDB)
	svc := NewInvestmentService(testDB, ledger)

	user := seedProfile(t, "01712000009", 0)
	stuck := models.Investment{
		UserID: user.ID, PlanAmount: 300, DailyReturn: 60,
		TotalDays: 45, DaysPassed: 45, IsActive: true,
	}
	testDB.Create(&stuck)

	if err := svc.SweepMatured(); err != nil {
		t.Fatalf("SweepMatured failed: %v", err)
	}

	var fixed models.Investment
	testDB.First(&fixed, stuck.ID)
	if fixed.IsActive {
		t.Error("Expected swept investment to be inactive")
	}
}
