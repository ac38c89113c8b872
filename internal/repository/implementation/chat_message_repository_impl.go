package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/mapper"
	"cosmic-chat-be/internal/model"
	"cosmic-chat-be/internal/repository/contract"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	m := r.mapper.ChatMessageToModel(message)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatMessageRepositoryImpl) Update(ctx context.Context, message *entity.ChatMessage) error {
	m := r.mapper.ChatMessageToModel(message)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *ChatMessageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ChatMessage{}, id).Error
}

func (r *ChatMessageRepositoryImpl) DeleteBySession(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("chat_session_id = ?", sessionId).
		Delete(&model.ChatMessage{}).Error
}

func (r *ChatMessageRepositoryImpl) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]entity.ChatMessage, error) {
	var rows []*model.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("chat_session_id = ?", sessionId).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChatMessagesToEntities(rows), nil
}
