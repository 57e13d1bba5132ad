package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"portal-service/internal/models"

	"gorm.io/gorm"
)

// Transactions older than this are moved to the archive table. Resolved
// rows only; pending ones stay hot until arbitration settles them.
const archiveRetention = 4 // months

type TransactionArchiveService struct {
	DB *gorm.DB
}

func NewTransactionArchiveService(db *gorm.DB) *TransactionArchiveService {
	return &TransactionArchiveService{DB: db}
}

// ArchiveTransactions moves settled transactions past the retention
// window into archived_transactions and deletes the originals, as one
// atomic transaction.
func (s *TransactionArchiveService) ArchiveTransactions() {
	log.Println("Starting transaction archive process...")

	cutoff := time.Now().AddDate(0, -archiveRetention, 0)

	var old []models.Transaction
	if err := s.DB.Where("created_at < ? AND status <> ?", cutoff, models.StatusPending).
		Find(&old).Error; err != nil {
		log.Printf("Error finding old transactions: %v", err)
		return
	}

	if len(old) == 0 {
		log.Println("No transactions to archive")
		return
	}

	log.Printf("Found %d transactions to archive", len(old))

	archived := make([]models.ArchivedTransaction, 0, len(old))
	for _, trx := range old {
		archived = append(archived, models.ArchivedTransaction{
			UserID:       trx.UserID,
			AccountID:    trx.AccountID,
			ReferenceNo:  trx.ReferenceNo,
			Kind:         trx.Kind,
			Status:       trx.Status,
			Amount:       trx.Amount,
			ExternalRef:  trx.ExternalRef,
			SenderNumber: trx.SenderNumber,
			CreatedAt:    trx.CreatedAt,
			UpdatedAt:    trx.UpdatedAt,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}

		ids := make([]uint, len(old))
		for i, trx := range old {
			ids[i] = trx.ID
		}
		return tx.Delete(&models.Transaction{}, ids).Error
	})

	if err != nil {
		log.Printf("Error during transaction archiving: %v", err)
	} else {
		log.Printf("Archived and removed %d transactions.", len(old))
	}
}

// StartScheduler initializes the cron job to run daily at midnight
func (s *TransactionArchiveService) StartScheduler() {
	c := cron.New()
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Println("Running scheduled transaction archive task...")
		s.ArchiveTransactions()
	})
	if err != nil {
		log.Printf("Error scheduling archive task: %v", err)
		return
	}
	c.Start()
	log.Println("Transaction Archive Scheduler started (Daily at 00:00)")
}
