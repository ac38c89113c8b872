package llm

import (
	"context"
)

// Message represents a chat turn in a provider-agnostic format. Turn lists
// passed to a provider must not contain "system" entries; the system prompt
// travels as its own argument.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Model       string // Override default model
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// DefaultOptions returns the sampling defaults applied when the caller does
// not override them.
func DefaultOptions() Options {
	return Options{
		Temperature: 0.8,
		TopP:        0.9,
		MaxTokens:   2048,
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithTopP(topP float64) Option {
	return func(o *Options) {
		o.TopP = topP
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

// ChunkHandler receives one streamed fragment. Handlers are invoked
// synchronously, in arrival order; the next fragment is not decoded until the
// handler returns.
type ChunkHandler func(chunk string)

// Provider defines the contract for a generation backend.
type Provider interface {
	// Generate sends the turns and system prompt in one blocking call and
	// returns the full response text.
	Generate(ctx context.Context, turns []Message, systemPrompt string, opts ...Option) (string, error)

	// GenerateStream opens a streaming call and feeds fragments to onChunk
	// until the backend signals completion, the stream ends, or ctx is
	// cancelled. No fragment is delivered after cancellation.
	GenerateStream(ctx context.Context, turns []Message, systemPrompt string, onChunk ChunkHandler, opts ...Option) error

	// ListModels returns the model names the backend advertises. Diagnostic
	// only; never on the send path.
	ListModels(ctx context.Context) ([]string, error)

	// CheckHealth reports whether the backend responds at all.
	CheckHealth(ctx context.Context) bool
}
