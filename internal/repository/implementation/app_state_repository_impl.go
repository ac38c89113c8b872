package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cosmic-chat-be/internal/model"
	"cosmic-chat-be/internal/repository/contract"
)

type AppStateRepositoryImpl struct {
	db *gorm.DB
}

func NewAppStateRepository(db *gorm.DB) contract.AppStateRepository {
	return &AppStateRepositoryImpl{db: db}
}

func (r *AppStateRepositoryImpl) GetCurrentSession(ctx context.Context) (*uuid.UUID, error) {
	var row model.AppState
	if err := r.db.WithContext(ctx).First(&row, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.CurrentSessionId, nil
}

func (r *AppStateRepositoryImpl) SetCurrentSession(ctx context.Context, sessionId *uuid.UUID) error {
	row := &model.AppState{Id: 1, CurrentSessionId: sessionId}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}
