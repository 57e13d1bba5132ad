package services

import (
	"errors"

	"gorm.io/gorm"

	"portal-service/internal/models"
)

const settingsRowID = 1

// SettingsService reads and writes the single global configuration row.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) Get() (models.AdminSettings, error) {
	var settings models.AdminSettings
	err := s.DB.First(&settings, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AdminSettings{ID: settingsRowID}, nil
	}
	return settings, err
}

type UpdateSettingsDTO struct {
	AppName      string `json:"app_name"`
	AppLogoURL   string `json:"app_logo_url"`
	BkashNumber  string `json:"bkash_number"`
	NagadNumber  string `json:"nagad_number"`
	RocketNumber string `json:"rocket_number"`
	TelegramURL  string `json:"telegram_url"`
	WhatsappURL  string `json:"whatsapp_url"`
	FacebookURL  string `json:"facebook_url"`
	YoutubeURL   string `json:"youtube_url"`
	SupportURL   string `json:"support_url"`
	AdLink       string `json:"ad_link"`
}

func (s *SettingsService) Update(data UpdateSettingsDTO) (models.AdminSettings, error) {
	settings := models.AdminSettings{
		ID:           settingsRowID,
		AppName:      data.AppName,
		AppLogoURL:   data.AppLogoURL,
		BkashNumber:  data.BkashNumber,
		NagadNumber:  data.NagadNumber,
		RocketNumber: data.RocketNumber,
		TelegramURL:  data.TelegramURL,
		WhatsappURL:  data.WhatsappURL,
		FacebookURL:  data.FacebookURL,
		YoutubeURL:   data.YoutubeURL,
		SupportURL:   data.SupportURL,
		AdLink:       data.AdLink,
	}

	if err := s.DB.Save(&settings).Error; err != nil {
		return models.AdminSettings{}, err
	}
	return settings, nil
}
