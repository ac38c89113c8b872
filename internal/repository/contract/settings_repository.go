package contract

import (
	"context"

	"cosmic-chat-be/internal/entity"
)

type SettingsRepository interface {
	// Get returns nil (no error) when no settings row exists yet.
	Get(ctx context.Context) (*entity.AppSettings, error)
	Save(ctx context.Context, settings *entity.AppSettings) error
}
