package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConversationMemory rows are keyed by "<characterId>_<sessionId>".
type ConversationMemory struct {
	Key             string            `gorm:"type:varchar(120);primaryKey"`
	CharacterId     string            `gorm:"type:varchar(50);not null;index"`
	SessionId       uuid.UUID         `gorm:"type:uuid;not null"`
	Summary         string            `gorm:"type:text;not null"`
	KeyTopics       datatypes.JSON    `gorm:"type:jsonb"`
	UserPreferences datatypes.JSONMap `gorm:"type:jsonb"`
	LastInteraction time.Time         `gorm:"not null"`
	MessageCount    int               `gorm:"not null;default:0"`
	CreatedAt       time.Time         `gorm:"autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime"`
}

func (ConversationMemory) TableName() string {
	return "conversation_memories"
}
