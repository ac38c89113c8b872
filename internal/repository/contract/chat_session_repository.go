package contract

import (
	"context"

	"github.com/google/uuid"

	"cosmic-chat-be/internal/entity"
)

// ChatSessionRepository persists session rows. Messages are persisted
// separately through ChatMessageRepository.
type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindAll returns every session with its messages attached, newest
	// activity first.
	FindAll(ctx context.Context) ([]*entity.ChatSession, error)
}
