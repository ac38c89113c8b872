package contract

import (
	"context"

	"cosmic-chat-be/internal/entity"
)

// MemoryRepository stores ConversationMemory rows keyed by
// "<characterId>_<sessionId>".
type MemoryRepository interface {
	// FindByKey returns nil (no error) when no memory exists for the key.
	FindByKey(ctx context.Context, key string) (*entity.ConversationMemory, error)
	Upsert(ctx context.Context, key string, memory *entity.ConversationMemory) error
	DeleteByCharacter(ctx context.Context, characterId string) error
	DeleteAll(ctx context.Context) error
}
