package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one conversation between the user and a single character.
// A session belongs to exactly one character for its whole lifetime; switching
// characters starts a new session.
type ChatSession struct {
	Id          uuid.UUID
	CharacterId string
	Title       string
	Messages    []ChatMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
