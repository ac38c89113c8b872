package factory

import (
	"fmt"
	"time"

	"cosmic-chat-be/pkg/llm"
	"cosmic-chat-be/pkg/llm/cloud"
	"cosmic-chat-be/pkg/llm/ollama"
)

// Settings carries provider-construction knobs from the application config.
type Settings struct {
	Provider             string
	OllamaBaseURL        string
	Model                string
	Temperature          float64
	TopP                 float64
	MaxTokens            int
	TimeoutSeconds       int
	StreamTimeoutSeconds int
	MaxRetries           int
	RetryDelayMillis     int
}

// NewProvider selects a generation backend by name.
func NewProvider(s Settings) (llm.Provider, error) {
	switch s.Provider {
	case "ollama", "":
		return ollama.NewOllamaProvider(ollama.Config{
			BaseURL:       s.OllamaBaseURL,
			ModelName:     s.Model,
			Timeout:       time.Duration(s.TimeoutSeconds) * time.Second,
			StreamTimeout: time.Duration(s.StreamTimeoutSeconds) * time.Second,
			MaxRetries:    s.MaxRetries,
			RetryDelay:    time.Duration(s.RetryDelayMillis) * time.Millisecond,
			Temperature:   s.Temperature,
			TopP:          s.TopP,
			NumPredict:    s.MaxTokens,
		}), nil
	case "cloud":
		return cloud.NewCloudProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
