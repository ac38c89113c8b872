package model

import "time"

// AppSetting is a single-row table of user preferences.
type AppSetting struct {
	Id                int       `gorm:"primaryKey"`
	Theme             string    `gorm:"type:varchar(20);not null;default:'system'"`
	Language          string    `gorm:"type:varchar(10);not null;default:'en'"`
	EnableStreaming   bool      `gorm:"not null;default:true"`
	ShowTimestamps    bool      `gorm:"not null;default:true"`
	FontSize          string    `gorm:"type:varchar(10);not null;default:'medium'"`
	SendOnEnter       bool      `gorm:"not null;default:true"`
	EnableVoice       bool      `gorm:"not null;default:true"`
	AutoPlayTTS       bool      `gorm:"not null;default:false"`
	TtsSpeed          float64   `gorm:"not null;default:1.0"`
	TtsVolume         float64   `gorm:"not null;default:1.0"`
	SttLanguage       string    `gorm:"type:varchar(10);not null;default:'en-US'"`
	SaveConversations bool      `gorm:"not null;default:true"`
	EnableMemory      bool      `gorm:"not null;default:true"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (AppSetting) TableName() string {
	return "app_settings"
}
