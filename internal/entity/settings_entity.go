package entity

// AppSettings are user preferences consumed, but not owned, by the chat core.
// The core reads EnableStreaming and EnableMemory as configuration.
type AppSettings struct {
	Theme             string
	Language          string
	EnableStreaming   bool
	ShowTimestamps    bool
	FontSize          string
	SendOnEnter       bool
	EnableVoice       bool
	AutoPlayTTS       bool
	TtsSpeed          float64
	TtsVolume         float64
	SttLanguage       string
	SaveConversations bool
	EnableMemory      bool
}

// DefaultSettings returns the factory defaults.
func DefaultSettings() *AppSettings {
	return &AppSettings{
		Theme:             "system",
		Language:          "en",
		EnableStreaming:   true,
		ShowTimestamps:    true,
		FontSize:          "medium",
		SendOnEnter:       true,
		EnableVoice:       true,
		AutoPlayTTS:       false,
		TtsSpeed:          1.0,
		TtsVolume:         1.0,
		SttLanguage:       "en-US",
		SaveConversations: true,
		EnableMemory:      true,
	}
}
