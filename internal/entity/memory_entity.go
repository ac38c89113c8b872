package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationMemory is a derived, best-effort summary of one
// (character, session) pair. It is a cache: safe to discard and regenerate
// from the message history.
type ConversationMemory struct {
	CharacterId     string
	SessionId       uuid.UUID
	Summary         string
	KeyTopics       []string
	UserPreferences map[string]interface{}
	LastInteraction time.Time
	MessageCount    int
}

// MemoryContext is the bundle handed to the prompt builder.
type MemoryContext struct {
	RecentMessages      []string
	UserPreferences     map[string]interface{}
	ConversationSummary string
	// RelevantMemories is reserved for a future retrieval mechanism and is
	// always empty in the current implementation.
	RelevantMemories []string
}
