package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portal-service/internal/models"
)

type PlanService struct {
	DB *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{DB: db}
}

// ListActive returns the plans open for activation, cheapest first.
func (s *PlanService) ListActive() ([]models.Plan, error) {
	var plans []models.Plan
	err := s.DB.Where("status = ?", models.PlanStatusActive).
		Order("amount ASC").
		Find(&plans).Error
	return plans, err
}

type SavePlanDTO struct {
	ID           uint
	Amount       float64
	DailyReturn  float64
	ValidityDays int
	Status       string
}

// Save creates or updates a plan. TotalReturn is derived, never stored
// independently of the daily figures.
func (s *PlanService) Save(data SavePlanDTO) (models.Plan, error) {
	if data.Amount <= 0 || data.DailyReturn <= 0 || data.ValidityDays <= 0 {
		return models.Plan{}, fmt.Errorf("plan figures must be positive: %w", ErrValidation)
	}
	status := data.Status
	if status == "" {
		status = models.PlanStatusActive
	}
	if status != models.PlanStatusActive && status != models.PlanStatusInactive {
		return models.Plan{}, fmt.Errorf("unknown plan status %q: %w", data.Status, ErrValidation)
	}

	var plan models.Plan
	if data.ID != 0 {
		if err := s.DB.First(&plan, data.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Plan{}, fmt.Errorf("plan %d: %w", data.ID, ErrNotFound)
			}
			return models.Plan{}, err
		}
	}

	plan.Amount = data.Amount
	plan.DailyReturn = data.DailyReturn
	plan.ValidityDays = data.ValidityDays
	plan.TotalReturn = data.DailyReturn * float64(data.ValidityDays)
	plan.Status = status

	if err := s.DB.Save(&plan).Error; err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}
