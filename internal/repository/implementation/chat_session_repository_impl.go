package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/mapper"
	"cosmic-chat-be/internal/model"
	"cosmic-chat-be/internal/repository/contract"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatSessionRepositoryImpl) Update(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *ChatSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ChatSession{}, id).Error
}

func (r *ChatSessionRepositoryImpl) FindAll(ctx context.Context) ([]*entity.ChatSession, error) {
	var rows []*model.ChatSession
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&rows).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	sessions := make([]*entity.ChatSession, 0, len(rows))
	for _, row := range rows {
		var msgRows []*model.ChatMessage
		if err := r.db.WithContext(ctx).
			Where("chat_session_id = ?", row.Id).
			Order("created_at ASC").
			Find(&msgRows).Error; err != nil {
			return nil, err
		}
		sessions = append(sessions, r.mapper.ChatSessionToEntity(row, r.mapper.ChatMessagesToEntities(msgRows)))
	}
	return sessions, nil
}
