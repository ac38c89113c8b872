package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/model"
)

type MemoryMapper struct{}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{}
}

func (m *MemoryMapper) ToEntity(row *model.ConversationMemory) *entity.ConversationMemory {
	if row == nil {
		return nil
	}

	var topics []string
	if len(row.KeyTopics) > 0 {
		// A corrupt topics column degrades to an empty list, not a failure.
		_ = json.Unmarshal(row.KeyTopics, &topics)
	}

	prefs := map[string]interface{}(row.UserPreferences)
	if prefs == nil {
		prefs = map[string]interface{}{}
	}

	return &entity.ConversationMemory{
		CharacterId:     row.CharacterId,
		SessionId:       row.SessionId,
		Summary:         row.Summary,
		KeyTopics:       topics,
		UserPreferences: prefs,
		LastInteraction: row.LastInteraction,
		MessageCount:    row.MessageCount,
	}
}

func (m *MemoryMapper) ToModel(key string, mem *entity.ConversationMemory) *model.ConversationMemory {
	if mem == nil {
		return nil
	}

	topics, err := json.Marshal(mem.KeyTopics)
	if err != nil {
		topics = []byte("[]")
	}

	return &model.ConversationMemory{
		Key:             key,
		CharacterId:     mem.CharacterId,
		SessionId:       mem.SessionId,
		Summary:         mem.Summary,
		KeyTopics:       datatypes.JSON(topics),
		UserPreferences: datatypes.JSONMap(mem.UserPreferences),
		LastInteraction: mem.LastInteraction,
		MessageCount:    mem.MessageCount,
	}
}
