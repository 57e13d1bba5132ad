package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portal-service/internal/database"
	"portal-service/internal/models"
	"portal-service/pkg/common"
)

// stockPlans are the catalog seeded on first run. Each runs 45 days at a
// fifth of the stake per day.
var stockPlans = []models.Plan{
	{Amount: 300, DailyReturn: 60, ValidityDays: 45},
	{Amount: 500, DailyReturn: 100, ValidityDays: 45},
	{Amount: 700, DailyReturn: 140, ValidityDays: 45},
	{Amount: 1000, DailyReturn: 200, ValidityDays: 45},
	{Amount: 1200, DailyReturn: 240, ValidityDays: 45},
	{Amount: 1500, DailyReturn: 300, ValidityDays: 45},
	{Amount: 2000, DailyReturn: 400, ValidityDays: 45},
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	// Initialize Database
	database.Connect()

	// Run Migrations
	log.Println("Running database migrations...")
	database.Migrate()

	db := database.DB

	if err := seedPlans(db); err != nil {
		log.Fatalf("Failed to seed plans: %v", err)
	}
	if err := seedSettings(db); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}
	if err := seedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	log.Println("Migrations completed successfully!")
}

func seedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range stockPlans {
		stockPlans[i].TotalReturn = stockPlans[i].DailyReturn * float64(stockPlans[i].ValidityDays)
		stockPlans[i].Status = models.PlanStatusActive
	}
	if err := db.Create(&stockPlans).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d plans", len(stockPlans))
	return nil
}

func seedSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AdminSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := models.AdminSettings{ID: 1, AppName: "Brac Trading"}
	if err := db.Create(&settings).Error; err != nil {
		return err
	}
	log.Println("Seeded default settings")
	return nil
}

// seedAdmin creates the first admin profile from ADMIN_PHONE and
// ADMIN_PASSWORD. Skipped when the vars are unset or the phone is
// already registered.
func seedAdmin(db *gorm.DB) error {
	phone := os.Getenv("ADMIN_PHONE")
	password := os.Getenv("ADMIN_PASSWORD")
	if phone == "" || password == "" {
		log.Println("ADMIN_PHONE/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.Profile{}).Where("phone_number = ?", phone).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Profile{
		AccountID:    common.GenerateAccountID(),
		PhoneNumber:  phone,
		Email:        phone + "@bractrading.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin profile %s", admin.AccountID)
	return nil
}
