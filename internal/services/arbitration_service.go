package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portal-service/internal/models"
)

// ArbitrationService resolves pending transactions. A transaction moves
// pending -> completed or pending -> rejected exactly once; both states
// are terminal. The balance effect and the status write share one gorm
// transaction so a crash cannot split them.
type ArbitrationService struct {
	DB     *gorm.DB
	Ledger *LedgerService
	Queue  *asynq.Client
}

func NewArbitrationService(db *gorm.DB, ledger *LedgerService, queue *asynq.Client) *ArbitrationService {
	return &ArbitrationService{DB: db, Ledger: ledger, Queue: queue}
}

// Task type (copied from worker/tasks.go to avoid cycle)
const TypeWithdrawalPayout = "withdrawal-payout"

type WithdrawalPayoutPayload struct {
	TransactionID uint    `json:"transactionId"`
	UserID        uint    `json:"userId"`
	AccountID     string  `json:"accountId"`
	Amount        float64 `json:"amount"`
}

func (s *ArbitrationService) lockPending(tx *gorm.DB, trxID uint) (models.Transaction, error) {
	var trx models.Transaction
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", trxID).
		First(&trx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return trx, fmt.Errorf("transaction %d: %w", trxID, ErrNotFound)
	}
	if err != nil {
		return trx, err
	}
	if trx.Status != models.StatusPending {
		return trx, fmt.Errorf("transaction already %s: %w", trx.Status, ErrInvalidState)
	}
	if trx.Kind != models.KindDeposit && trx.Kind != models.KindWithdraw {
		return trx, fmt.Errorf("%s transactions are not arbitrated: %w", trx.Kind, ErrInvalidState)
	}
	return trx, nil
}

// Approve completes a pending transaction. Deposits credit the amount to
// the owner; withdrawals were already debited at request time, so only
// the status changes and a payout task is queued.
func (s *ArbitrationService) Approve(trxID uint) (models.Transaction, error) {
	var approved models.Transaction

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockPending(tx, trxID)
		if err != nil {
			return err
		}

		if trx.Kind == models.KindDeposit {
			if _, err := s.Ledger.Credit(tx, trx.UserID, trx.Amount); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).
			Update("status", models.StatusCompleted).Error; err != nil {
			return err
		}

		trx.Status = models.StatusCompleted
		approved = trx
		return nil
	})
	if err != nil {
		return approved, err
	}

	if approved.Kind == models.KindWithdraw {
		s.enqueuePayout(approved)
	}

	return approved, nil
}

// Reject closes a pending transaction without honoring it. Withdrawals
// get their provisional debit refunded; deposits never credited anything,
// so only the status changes.
func (s *ArbitrationService) Reject(trxID uint) (models.Transaction, error) {
	var rejected models.Transaction

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		trx, err := s.lockPending(tx, trxID)
		if err != nil {
			return err
		}

		if trx.Kind == models.KindWithdraw {
			if _, err := s.Ledger.Credit(tx, trx.UserID, trx.Amount); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", trx.ID).
			Update("status", models.StatusRejected).Error; err != nil {
			return err
		}

		trx.Status = models.StatusRejected
		rejected = trx
		return nil
	})

	return rejected, err
}

// AdjustBalance applies a direct admin credit or debit together with an
// already-completed Transaction. No approval step.
func (s *ArbitrationService) AdjustBalance(userID uint, amount float64, kind string) (models.Transaction, error) {
	if kind != models.KindAdminAdd && kind != models.KindAdminDeduct {
		return models.Transaction{}, fmt.Errorf("unknown adjustment kind %q: %w", kind, ErrValidation)
	}

	var trx models.Transaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		var err error
		if kind == models.KindAdminAdd {
			profile, err = s.Ledger.Credit(tx, userID, amount)
		} else {
			profile, err = s.Ledger.Debit(tx, userID, amount)
		}
		if err != nil {
			return err
		}

		trx, err = s.Ledger.Record(tx, profile, kind, models.StatusCompleted, amount, nil, nil)
		return err
	})
	return trx, err
}

func (s *ArbitrationService) enqueuePayout(trx models.Transaction) {
	if s.Queue == nil {
		return
	}
	payload := WithdrawalPayoutPayload{
		TransactionID: trx.ID,
		UserID:        trx.UserID,
		AccountID:     trx.AccountID,
		Amount:        trx.Amount,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal payout payload: %v", err)
		return
	}
	if _, err := s.Queue.Enqueue(asynq.NewTask(TypeWithdrawalPayout, data)); err != nil {
		log.Printf("Failed to enqueue payout for transaction %d: %v", trx.ID, err)
	}
}

type ListTransactionsDTO struct {
	Status string
	Kind   string
	Page   int
	Limit  int
}

// ListTransactions returns transactions across all users for the admin
// review queue, newest first.
func (s *ArbitrationService) ListTransactions(data ListTransactionsDTO) ([]models.Transaction, int64, error) {
	limit := data.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	page := data.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.Transaction{})
	if data.Status != "" {
		query = query.Where("status = ?", data.Status)
	}
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

// ListProfiles returns every registered profile, newest first.
func (s *ArbitrationService) ListProfiles(page, limit int) ([]models.Profile, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var total int64
	if err := s.DB.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.Profile
	if err := s.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}
