package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portal-service/internal/models"
)

// InvestmentService owns plan activations and daily payout claims. The
// 24-hour cooldown and maturity rules are enforced here, server-side, so
// a modified client cannot bypass them.
type InvestmentService struct {
	DB     *gorm.DB
	Ledger *LedgerService
}

func NewInvestmentService(db *gorm.DB, ledger *LedgerService) *InvestmentService {
	return &InvestmentService{DB: db, Ledger: ledger}
}

// Activate debits the plan principal from the user's balance and opens a
// new investment position. Both writes happen in one transaction.
func (s *InvestmentService) Activate(userID, planID uint) (models.Investment, error) {
	var plan models.Plan
	if err := s.DB.First(&plan, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Investment{}, fmt.Errorf("plan %d: %w", planID, ErrNotFound)
		}
		return models.Investment{}, err
	}
	if plan.Status != models.PlanStatusActive {
		return models.Investment{}, fmt.Errorf("plan is not open for activation: %w", ErrInvalidState)
	}

	investment := models.Investment{
		UserID:      userID,
		PlanAmount:  plan.Amount,
		DailyReturn: plan.DailyReturn,
		TotalDays:   plan.ValidityDays,
		DaysPassed:  0,
		IsActive:    true,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Ledger.Debit(tx, userID, plan.Amount); err != nil {
			return err
		}
		return tx.Create(&investment).Error
	})
	if err != nil {
		return models.Investment{}, err
	}

	return investment, nil
}

type ClaimResult struct {
	Investment  models.Investment  `json:"investment"`
	Transaction models.Transaction `json:"transaction"`
	Balance     float64            `json:"balance"`
}

// Claim credits one day's return to the owner. In a single transaction it
// credits the balance, advances days_passed, stamps last_claim_at, flips
// is_active off when the final day is reached (the final claim still pays),
// and appends a completed claim Transaction.
func (s *InvestmentService) Claim(userID, investmentID uint) (ClaimResult, error) {
	now := time.Now().UTC()
	var result ClaimResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var inv models.Investment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", investmentID, userID).
			First(&inv).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("investment %d: %w", investmentID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		if !inv.IsActive || inv.Matured() {
			return fmt.Errorf("investment has matured: %w", ErrInvalidState)
		}
		if remaining := inv.CooldownRemaining(now); remaining > 0 {
			return fmt.Errorf("next claim available in %s: %w", remaining.Round(time.Minute), ErrInvalidState)
		}

		profile, err := s.Ledger.Credit(tx, userID, inv.DailyReturn)
		if err != nil {
			return err
		}

		inv.DaysPassed++
		inv.LastClaimAt = &now
		inv.IsActive = inv.DaysPassed < inv.TotalDays
		if err := tx.Model(&models.Investment{}).Where("id = ?", inv.ID).
			Updates(map[string]interface{}{
				"days_passed":   inv.DaysPassed,
				"last_claim_at": now,
				"is_active":     inv.IsActive,
			}).Error; err != nil {
			return err
		}

		trx, err := s.Ledger.Record(tx, profile, models.KindClaim, models.StatusCompleted, inv.DailyReturn, nil, nil)
		if err != nil {
			return err
		}

		result = ClaimResult{Investment: inv, Transaction: trx, Balance: profile.Balance}
		return nil
	})

	return result, err
}

// ListActive returns the user's open positions, newest first.
func (s *InvestmentService) ListActive(userID uint) ([]models.Investment, error) {
	var investments []models.Investment
	err := s.DB.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&investments).Error
	return investments, err
}

// ListAll returns every position of the user, matured ones included, as a
// historical record.
func (s *InvestmentService) ListAll(userID uint) ([]models.Investment, error) {
	var investments []models.Investment
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investments).Error
	return investments, err
}

// SweepMatured deactivates any position whose payouts are exhausted but
// whose flag was left on, e.g. by a crash between the final claim's
// balance credit and the flag write under an older schema.
func (s *InvestmentService) SweepMatured() error {
	res := s.DB.Model(&models.Investment{}).
		Where("is_active = ? AND days_passed >= total_days", true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Maturity sweep deactivated %d investments", res.RowsAffected)
	}
	return nil
}

// StartScheduler initializes the hourly maturity sweep.
func (s *InvestmentService) StartScheduler() {
	c := cron.New()
	_, err := c.AddFunc("0 * * * *", func() {
		if err := s.SweepMatured(); err != nil {
			log.Printf("Error in maturity sweep: %v", err)
		}
	})
	if err != nil {
		log.Printf("Error scheduling maturity sweep: %v", err)
		return
	}
	c.Start()
	log.Println("Investment Scheduler started (Hourly)")
}
