package service

import (
	"context"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/pkg/logger"
	"cosmic-chat-be/internal/repository/contract"
)

type ISettingsService interface {
	Get(ctx context.Context) *entity.AppSettings
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*entity.AppSettings, error)
	Reset(ctx context.Context) (*entity.AppSettings, error)
}

type settingsService struct {
	repo contract.SettingsRepository
	log  logger.ILogger
}

func NewSettingsService(repo contract.SettingsRepository, log logger.ILogger) ISettingsService {
	return &settingsService{repo: repo, log: log}
}

// Get returns the stored settings, falling back to defaults when nothing is
// stored or the read fails.
func (ss *settingsService) Get(ctx context.Context) *entity.AppSettings {
	settings, err := ss.repo.Get(ctx)
	if err != nil {
		ss.log.Warn("SettingsService", "failed to load settings, using defaults", map[string]interface{}{"error": err.Error()})
		return entity.DefaultSettings()
	}
	if settings == nil {
		return entity.DefaultSettings()
	}
	return settings
}

func (ss *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*entity.AppSettings, error) {
	settings := ss.Get(ctx)

	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.EnableStreaming != nil {
		settings.EnableStreaming = *req.EnableStreaming
	}
	if req.ShowTimestamps != nil {
		settings.ShowTimestamps = *req.ShowTimestamps
	}
	if req.FontSize != nil {
		settings.FontSize = *req.FontSize
	}
	if req.SendOnEnter != nil {
		settings.SendOnEnter = *req.SendOnEnter
	}
	if req.EnableVoice != nil {
		settings.EnableVoice = *req.EnableVoice
	}
	if req.AutoPlayTTS != nil {
		settings.AutoPlayTTS = *req.AutoPlayTTS
	}
	if req.TtsSpeed != nil {
		settings.TtsSpeed = *req.TtsSpeed
	}
	if req.TtsVolume != nil {
		settings.TtsVolume = *req.TtsVolume
	}
	if req.SttLanguage != nil {
		settings.SttLanguage = *req.SttLanguage
	}
	if req.SaveConversations != nil {
		settings.SaveConversations = *req.SaveConversations
	}
	if req.EnableMemory != nil {
		settings.EnableMemory = *req.EnableMemory
	}

	if err := ss.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (ss *settingsService) Reset(ctx context.Context) (*entity.AppSettings, error) {
	settings := entity.DefaultSettings()
	if err := ss.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ToSettingsResponse converts the settings entity into its API shape.
func ToSettingsResponse(s *entity.AppSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Theme:             s.Theme,
		Language:          s.Language,
		EnableStreaming:   s.EnableStreaming,
		ShowTimestamps:    s.ShowTimestamps,
		FontSize:          s.FontSize,
		SendOnEnter:       s.SendOnEnter,
		EnableVoice:       s.EnableVoice,
		AutoPlayTTS:       s.AutoPlayTTS,
		TtsSpeed:          s.TtsSpeed,
		TtsVolume:         s.TtsVolume,
		SttLanguage:       s.SttLanguage,
		SaveConversations: s.SaveConversations,
		EnableMemory:      s.EnableMemory,
	}
}
