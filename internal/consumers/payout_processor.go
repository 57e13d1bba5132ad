package consumers

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"portal-service/internal/models"
)

// PayoutProcessor handles queued disbursements for approved withdrawals.
// It does not touch balances; the arbitration service settled the ledger
// before the task was enqueued.
type PayoutProcessor struct {
	DB *gorm.DB
}

func NewPayoutProcessor(db *gorm.DB) *PayoutProcessor {
	return &PayoutProcessor{DB: db}
}

type WithdrawalPayoutDTO struct {
	TransactionID uint    `json:"transactionId"`
	UserID        uint    `json:"userId"`
	AccountID     string  `json:"accountId"`
	Amount        float64 `json:"amount"`
}

// ProcessWithdrawalPayout records the disbursement against the user's
// linked payout wallet. A missing wallet is logged as a failed payout for
// an operator to settle manually; the withdrawal itself stays completed.
func (p *PayoutProcessor) ProcessWithdrawalPayout(data WithdrawalPayoutDTO) error {
	var trx models.Transaction
	if err := p.DB.First(&trx, data.TransactionID).Error; err != nil {
		return fmt.Errorf("payout transaction %d: %w", data.TransactionID, err)
	}
	if trx.Kind != models.KindWithdraw || trx.Status != models.StatusCompleted {
		log.Printf("Skipping payout for transaction %d: kind=%s status=%s", trx.ID, trx.Kind, trx.Status)
		return nil
	}

	// One payout per withdrawal.
	var existing int64
	p.DB.Model(&models.PayoutLog{}).Where("transaction_id = ?", trx.ID).Count(&existing)
	if existing > 0 {
		log.Printf("Payout for transaction %d already recorded", trx.ID)
		return nil
	}

	var profile models.Profile
	if err := p.DB.First(&profile, trx.UserID).Error; err != nil {
		return fmt.Errorf("payout profile %d: %w", trx.UserID, err)
	}

	entry := models.PayoutLog{
		TransactionID: trx.ID,
		UserID:        profile.ID,
		AccountID:     profile.AccountID,
		Amount:        trx.Amount,
		Status:        models.PayoutDispatched,
	}

	if profile.WalletProvider == nil || profile.WalletNumber == nil {
		entry.Status = models.PayoutFailed
		entry.Note = "no payout wallet linked"
	} else {
		entry.WalletProvider = *profile.WalletProvider
		entry.WalletNumber = *profile.WalletNumber
		if trx.SenderNumber != nil {
			entry.Note = "requested to " + *trx.SenderNumber
		}
	}

	if err := p.DB.Create(&entry).Error; err != nil {
		return err
	}

	log.Printf("Payout dispatched: transaction=%d account=%s amount=%.2f", trx.ID, profile.AccountID, trx.Amount)
	return nil
}
