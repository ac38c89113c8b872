package dto

import "time"

type MemoryResponse struct {
	CharacterId     string                 `json:"character_id"`
	SessionId       string                 `json:"session_id"`
	Summary         string                 `json:"summary"`
	KeyTopics       []string               `json:"key_topics"`
	UserPreferences map[string]interface{} `json:"user_preferences"`
	LastInteraction time.Time              `json:"last_interaction"`
	MessageCount    int                    `json:"message_count"`
}
