package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/mapper"
	"cosmic-chat-be/internal/model"
	"cosmic-chat-be/internal/repository/contract"
)

type MemoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemoryMapper
}

func NewMemoryRepository(db *gorm.DB) contract.MemoryRepository {
	return &MemoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemoryMapper(),
	}
}

func (r *MemoryRepositoryImpl) FindByKey(ctx context.Context, key string) (*entity.ConversationMemory, error) {
	var row model.ConversationMemory
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&row), nil
}

func (r *MemoryRepositoryImpl) Upsert(ctx context.Context, key string, memory *entity.ConversationMemory) error {
	row := r.mapper.ToModel(key, memory)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(row).Error
}

func (r *MemoryRepositoryImpl) DeleteByCharacter(ctx context.Context, characterId string) error {
	return r.db.WithContext(ctx).
		Where("character_id = ?", characterId).
		Delete(&model.ConversationMemory{}).Error
}

func (r *MemoryRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.ConversationMemory{}).Error
}
