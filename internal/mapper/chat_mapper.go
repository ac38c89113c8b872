package mapper

import (
	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession, messages []entity.ChatMessage) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:          s.Id,
		CharacterId: s.CharacterId,
		Title:       s.Title,
		Messages:    messages,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:          s.Id,
		CharacterId: s.CharacterId,
		Title:       s.Title,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:          msg.Id,
		SessionId:   msg.ChatSessionId,
		Role:        entity.MessageRole(msg.Role),
		Content:     msg.Content,
		CharacterId: msg.CharacterId,
		Status:      entity.MessageStatus(msg.Status),
		Error:       msg.Error,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.SessionId,
		Role:          string(msg.Role),
		Content:       msg.Content,
		CharacterId:   msg.CharacterId,
		Status:        string(msg.Status),
		Error:         msg.Error,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(models []*model.ChatMessage) []entity.ChatMessage {
	entities := make([]entity.ChatMessage, 0, len(models))
	for _, msg := range models {
		entities = append(entities, *m.ChatMessageToEntity(msg))
	}
	return entities
}
