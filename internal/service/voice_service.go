package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/pkg/voice"
)

type IVoiceService interface {
	Synthesize(ctx context.Context, req *dto.SynthesizeRequest) ([]byte, string, error)
	Transcribe(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error)
}

type voiceService struct {
	tts             voice.TTSProvider
	stt             voice.STTProvider
	settingsService ISettingsService
}

func NewVoiceService(tts voice.TTSProvider, stt voice.STTProvider, settingsService ISettingsService) IVoiceService {
	return &voiceService{tts: tts, stt: stt, settingsService: settingsService}
}

func (vs *voiceService) Synthesize(ctx context.Context, req *dto.SynthesizeRequest) ([]byte, string, error) {
	settings := vs.settingsService.Get(ctx)

	ttsReq := voice.TTSRequest{
		Text:    req.Text,
		VoiceId: req.VoiceId,
		Speed:   valueOrDefault(req.Speed, settings.TtsSpeed),
		Volume:  valueOrDefault(req.Volume, settings.TtsVolume),
	}
	return vs.tts.Synthesize(ctx, ttsReq)
}

func (vs *voiceService) Transcribe(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error) {
	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		return nil, fmt.Errorf("invalid audio payload: %w", err)
	}

	language := req.Language
	if language == "" {
		language = vs.settingsService.Get(ctx).SttLanguage
	}

	text, err := vs.stt.Transcribe(ctx, audio, language)
	if err != nil {
		return nil, err
	}
	return &dto.TranscribeResponse{Text: text}, nil
}

func valueOrDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
