// Package voice defines the speech boundary. Synthesis and recognition run in
// the browser today; the contracts exist so a server-side engine can slot in
// without touching the chat flow.
package voice

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the placeholder providers.
var ErrNotConfigured = errors.New("voice engine not configured")

// TTSRequest describes one synthesis call.
type TTSRequest struct {
	Text    string
	VoiceId string
	Speed   float64
	Volume  float64
}

// TTSProvider converts text to spoken audio.
type TTSProvider interface {
	// Synthesize returns encoded audio bytes and their MIME type.
	Synthesize(ctx context.Context, req TTSRequest) ([]byte, string, error)
}

// STTProvider converts spoken audio to text.
type STTProvider interface {
	// Transcribe returns the recognized text for the given audio payload.
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

type unconfiguredTTS struct{}

func NewUnconfiguredTTS() TTSProvider {
	return unconfiguredTTS{}
}

func (unconfiguredTTS) Synthesize(ctx context.Context, req TTSRequest) ([]byte, string, error) {
	return nil, "", ErrNotConfigured
}

type unconfiguredSTT struct{}

func NewUnconfiguredSTT() STTProvider {
	return unconfiguredSTT{}
}

func (unconfiguredSTT) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	return "", ErrNotConfigured
}
