package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

type MessageStatus string

const (
	StatusSending   MessageStatus = "sending"
	StatusStreaming MessageStatus = "streaming"
	StatusSent      MessageStatus = "sent"
	StatusError     MessageStatus = "error"
)

// ChatMessage is one turn inside a session. Content is append-only while the
// message is streaming and frozen once the status becomes sent or error.
type ChatMessage struct {
	Id          uuid.UUID
	SessionId   uuid.UUID
	Role        MessageRole
	Content     string
	CharacterId string
	Status      MessageStatus
	Error       string
	CreatedAt   time.Time
}
