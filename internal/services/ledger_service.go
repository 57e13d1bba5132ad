package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portal-service/internal/models"
)

// LedgerService owns every balance mutation. All writes go through Credit
// and Debit inside a single gorm transaction together with their audit
// record, so a balance change and its Transaction row commit or fail as
// one unit. The profile row is locked for the duration to serialize
// concurrent mutations on the same account.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

// LockProfile fetches the profile row FOR UPDATE within tx.
func (s *LedgerService) LockProfile(tx *gorm.DB, userID uint) (models.Profile, error) {
	var profile models.Profile
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile, fmt.Errorf("profile %d: %w", userID, ErrNotFound)
	}
	return profile, err
}

// Credit adds amount to the locked profile's balance within tx.
func (s *LedgerService) Credit(tx *gorm.DB, userID uint, amount float64) (models.Profile, error) {
	if amount <= 0 {
		return models.Profile{}, fmt.Errorf("credit amount must be positive: %w", ErrValidation)
	}

	profile, err := s.LockProfile(tx, userID)
	if err != nil {
		return profile, err
	}

	if err := tx.Model(&models.Profile{}).
		Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
		return profile, err
	}

	profile.Balance += amount
	return profile, nil
}

// Debit subtracts amount from the locked profile's balance within tx.
// It performs no write when the balance cannot cover the amount.
func (s *LedgerService) Debit(tx *gorm.DB, userID uint, amount float64) (models.Profile, error) {
	if amount <= 0 {
		return models.Profile{}, fmt.Errorf("debit amount must be positive: %w", ErrValidation)
	}

	profile, err := s.LockProfile(tx, userID)
	if err != nil {
		return profile, err
	}

	if profile.Balance < amount {
		return profile, ErrInsufficientFunds
	}

	if err := tx.Model(&models.Profile{}).
		Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount)).Error; err != nil {
		return profile, err
	}

	profile.Balance -= amount
	return profile, nil
}

// Record appends a Transaction row for a ledger event within tx.
func (s *LedgerService) Record(tx *gorm.DB, profile models.Profile, kind, status string, amount float64, externalRef, senderNumber *string) (models.Transaction, error) {
	trx := models.Transaction{
		UserID:       profile.ID,
		AccountID:    profile.AccountID,
		ReferenceNo:  uuid.NewString(),
		Kind:         kind,
		Status:       status,
		Amount:       amount,
		ExternalRef:  externalRef,
		SenderNumber: senderNumber,
	}
	if err := tx.Create(&trx).Error; err != nil {
		return trx, err
	}
	return trx, nil
}
