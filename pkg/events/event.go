package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "MESSAGE_FINALIZED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent carries the common fields of concrete events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewMessageFinalized records that an assistant reply reached its terminal
// sent state.
func NewMessageFinalized(sessionId, messageId, characterId string) Event {
	return BaseEvent{
		Type: "MESSAGE_FINALIZED",
		Data: map[string]interface{}{
			"session_id":   sessionId,
			"message_id":   messageId,
			"character_id": characterId,
		},
		OccurredAt: time.Now(),
	}
}
