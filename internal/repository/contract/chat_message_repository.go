package contract

import (
	"context"

	"github.com/google/uuid"

	"cosmic-chat-be/internal/entity"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	Update(ctx context.Context, message *entity.ChatMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySession(ctx context.Context, sessionId uuid.UUID) error
	FindBySession(ctx context.Context, sessionId uuid.UUID) ([]entity.ChatMessage, error)
}
