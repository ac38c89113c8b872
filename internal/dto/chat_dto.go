package dto

import "time"

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
	// Stream overrides the settings default when set.
	Stream *bool `json:"stream,omitempty"`
}

type SendMessageResponse struct {
	SessionId        string           `json:"session_id"`
	UserMessage      *MessageResponse `json:"user_message"`
	AssistantMessage *MessageResponse `json:"assistant_message"`
	Streamed         bool             `json:"streamed"`
}

type CreateSessionRequest struct {
	CharacterId string `json:"character_id" validate:"required"`
}

type MessageResponse struct {
	Id          string    `json:"id"`
	SessionId   string    `json:"session_id"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	CharacterId string    `json:"character_id,omitempty"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SessionResponse struct {
	Id          string            `json:"id"`
	CharacterId string            `json:"character_id"`
	Title       string            `json:"title"`
	Messages    []MessageResponse `json:"messages"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ChatStateResponse struct {
	CurrentSessionId string `json:"current_session_id,omitempty"`
	Streaming        bool   `json:"streaming"`
	LastError        string `json:"last_error,omitempty"`
}

// MessageFinalizedMessage is the payload published on the internal bus when an
// assistant reply reaches its terminal sent state.
type MessageFinalizedMessage struct {
	SessionId   string `json:"session_id"`
	MessageId   string `json:"message_id"`
	CharacterId string `json:"character_id"`
}
