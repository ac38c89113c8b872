package mapper

import (
	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/model"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToEntity(row *model.AppSetting) *entity.AppSettings {
	if row == nil {
		return nil
	}

	return &entity.AppSettings{
		Theme:             row.Theme,
		Language:          row.Language,
		EnableStreaming:   row.EnableStreaming,
		ShowTimestamps:    row.ShowTimestamps,
		FontSize:          row.FontSize,
		SendOnEnter:       row.SendOnEnter,
		EnableVoice:       row.EnableVoice,
		AutoPlayTTS:       row.AutoPlayTTS,
		TtsSpeed:          row.TtsSpeed,
		TtsVolume:         row.TtsVolume,
		SttLanguage:       row.SttLanguage,
		SaveConversations: row.SaveConversations,
		EnableMemory:      row.EnableMemory,
	}
}

func (m *SettingsMapper) ToModel(s *entity.AppSettings) *model.AppSetting {
	if s == nil {
		return nil
	}

	return &model.AppSetting{
		Id:                1,
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
