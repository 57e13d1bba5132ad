package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"portal-service/internal/models"
)

// TransactionService owns the append-only transaction log and the two
// user-initiated request flows. Deposits wait for arbitration with no
// balance change; withdrawals take a provisional debit at request time so
// earmarked funds cannot be double-spent. The reject path in the
// arbitration service restores that debit.
type TransactionService struct {
	DB     *gorm.DB
	Ledger *LedgerService
}

func NewTransactionService(db *gorm.DB, ledger *LedgerService) *TransactionService {
	return &TransactionService{DB: db, Ledger: ledger}
}

func normalizeOptional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// RequestDeposit files a pending deposit carrying the payment proof. No
// funds move until an admin approves it.
func (s *TransactionService) RequestDeposit(userID uint, amount float64, externalRef, senderNumber string) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, fmt.Errorf("deposit amount must be positive: %w", ErrValidation)
	}

	var trx models.Transaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		profile, err := s.Ledger.LockProfile(tx, userID)
		if err != nil {
			return err
		}
		trx, err = s.Ledger.Record(tx, profile, models.KindDeposit, models.StatusPending,
			amount, normalizeOptional(externalRef), normalizeOptional(senderNumber))
		return err
	})
	return trx, err
}

// RequestWithdraw files a pending withdrawal and debits the amount in the
// same transaction.
func (s *TransactionService) RequestWithdraw(userID uint, amount float64, senderNumber string) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, fmt.Errorf("withdrawal amount must be positive: %w", ErrValidation)
	}

	var trx models.Transaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		profile, err := s.Ledger.Debit(tx, userID, amount)
		if err != nil {
			return err
		}
		trx, err = s.Ledger.Record(tx, profile, models.KindWithdraw, models.StatusPending,
			amount, nil, normalizeOptional(senderNumber))
		return err
	})
	return trx, err
}

type HistoryDTO struct {
	UserID uint
	Kind   string
	Page   int
	Limit  int
}

// History returns the user's transactions, newest first.
func (s *TransactionService) History(data HistoryDTO) ([]models.Transaction, int64, error) {
	limit := data.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	page := data.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.Transaction{}).Where("user_id = ?", data.UserID)
	if data.Kind != "" {
		query = query.Where("kind = ?", data.Kind)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []models.Transaction
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
