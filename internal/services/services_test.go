package services

import (
	"log"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portal-service/internal/models"
	"portal-service/pkg/common"
)

// NOTE: These tests require a running MySQL instance.
// For this environment, we will write them to be ready for integration testing.
// In a real CI, we would spin up a container or use sqlite (if models are compatible).

var testDB *gorm.DB

func setup() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("Skipping DB tests: DATABASE_URL not set")
		return
	}

	var err error
	testDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return
	}

	// Migrate schemas
	testDB.AutoMigrate(
		&models.Profile{},
		&models.Plan{},
		&models.Investment{},
		&models.Transaction{},
	)
}

func cleanup() {
	if testDB != nil {
		testDB.Exec("DELETE FROM transactions")
		testDB.Exec("DELETE FROM investments")
		testDB.Exec("DELETE FROM plans")
		testDB.Exec("DELETE FROM profiles")
	}
}

// seedProfile inserts a profile directly, bypassing Register, so tests
// can start from a known balance.
func seedProfile(t *testing.T, phone string, balance float64) models.Profile {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	profile := models.Profile{
		AccountID:    common.GenerateAccountID(),
		PhoneNumber:  phone,
		Email:        phone + "@bractrading.com",
		PasswordHash: string(hash),
		Balance:      balance,
	}
	if err := testDB.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}
	return profile
}

func seedPlan(t *testing.T, amount, dailyReturn float64, days int) models.Plan {
	t.Helper()

	plan := models.Plan{
		Amount:       amount,
		DailyReturn:  dailyReturn,
		TotalReturn:  dailyReturn * float64(days),
		ValidityDays: days,
		Status:       models.PlanStatusActive,
	}
	if err := testDB.Create(&plan).Error; err != nil {
		t.Fatalf("Failed to seed plan: %v", err)
	}
	return plan
}

func currentBalance(t *testing.T, userID uint) float64 {
	t.Helper()

	var profile models.Profile
	if err := testDB.First(&profile, userID).Error; err != nil {
		t.Fatalf("Failed to load profile %d: %v", userID, err)
	}
	return profile.Balance
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	os.Exit(code)
}
