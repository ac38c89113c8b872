package dto

// UpdateSettingsRequest is a partial update. Nil fields keep their current
// value.
type UpdateSettingsRequest struct {
	Theme             *string  `json:"theme,omitempty" validate:"omitempty,oneof=light dark system"`
	Language          *string  `json:"language,omitempty"`
	EnableStreaming   *bool    `json:"enable_streaming,omitempty"`
	ShowTimestamps    *bool    `json:"show_timestamps,omitempty"`
	FontSize          *string  `json:"font_size,omitempty" validate:"omitempty,oneof=small medium large"`
	SendOnEnter       *bool    `json:"send_on_enter,omitempty"`
	EnableVoice       *bool    `json:"enable_voice,omitempty"`
	AutoPlayTTS       *bool    `json:"auto_play_tts,omitempty"`
	TtsSpeed          *float64 `json:"tts_speed,omitempty" validate:"omitempty,gte=0.5,lte=2"`
	TtsVolume         *float64 `json:"tts_volume,omitempty" validate:"omitempty,gte=0,lte=1"`
	SttLanguage       *string  `json:"stt_language,omitempty"`
	SaveConversations *bool    `json:"save_conversations,omitempty"`
	EnableMemory      *bool    `json:"enable_memory,omitempty"`
}

type SettingsResponse struct {
	Theme             string  `json:"theme"`
	Language          string  `json:"language"`
	EnableStreaming   bool    `json:"enable_streaming"`
	ShowTimestamps    bool    `json:"show_timestamps"`
	FontSize          string  `json:"font_size"`
	SendOnEnter       bool    `json:"send_on_enter"`
	EnableVoice       bool    `json:"enable_voice"`
	AutoPlayTTS       bool    `json:"auto_play_tts"`
	TtsSpeed          float64 `json:"tts_speed"`
	TtsVolume         float64 `json:"tts_volume"`
	SttLanguage       string  `json:"stt_language"`
	SaveConversations bool    `json:"save_conversations"`
	EnableMemory      bool    `json:"enable_memory"`
}
