package models

import (
	"time"
)

// AdminSettings is a single global row (id = 1) read by every session at
// startup and writable only through the admin configuration endpoint.
type AdminSettings struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AppName      string    `gorm:"column:app_name;size:100" json:"app_name"`
	AppLogoURL   string    `gorm:"column:app_logo_url;size:500" json:"app_logo_url"`
	BkashNumber  string    `gorm:"column:bkash_number;size:20" json:"bkash_number"`
	NagadNumber  string    `gorm:"column:nagad_number;size:20" json:"nagad_number"`
	RocketNumber string    `gorm:"column:rocket_number;size:20" json:"rocket_number"`
	TelegramURL  string    `gorm:"column:telegram_url;size:500" json:"telegram_url"`
	WhatsappURL  string    `gorm:"column:whatsapp_url;size:500" json:"whatsapp_url"`
	FacebookURL  string    `gorm:"column:facebook_url;size:500" json:"facebook_url"`
	YoutubeURL   string    `gorm:"column:youtube_url;size:500" json:"youtube_url"`
	SupportURL   string    `gorm:"column:support_url;size:500" json:"support_url"`
	AdLink       string    `gorm:"column:ad_link;size:500" json:"ad_link"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminSettings) TableName() string {
	return "admin_settings"
}
