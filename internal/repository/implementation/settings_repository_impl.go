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

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *SettingsRepositoryImpl) Get(ctx context.Context) (*entity.AppSettings, error) {
	var row model.AppSetting
	if err := r.db.WithContext(ctx).First(&row, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&row), nil
}

func (r *SettingsRepositoryImpl) Save(ctx context.Context, settings *entity.AppSettings) error {
	row := r.mapper.ToModel(settings)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}
