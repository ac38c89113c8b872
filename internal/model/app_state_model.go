package model

import (
	"time"

	"github.com/google/uuid"
)

// AppState is a single-row table holding process-level chat state that must
// survive a restart, currently just the current-session pointer.
type AppState struct {
	Id               int        `gorm:"primaryKey"`
	CurrentSessionId *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (AppState) TableName() string {
	return "app_states"
}
