package contract

import (
	"context"

	"github.com/google/uuid"
)

// AppStateRepository persists the current-session pointer.
type AppStateRepository interface {
	// GetCurrentSession returns nil (no error) when no pointer is stored.
	GetCurrentSession(ctx context.Context) (*uuid.UUID, error)
	SetCurrentSession(ctx context.Context, sessionId *uuid.UUID) error
}
