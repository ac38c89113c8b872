package dto

type SynthesizeRequest struct {
	Text    string  `json:"text" validate:"required,max=5000"`
	VoiceId string  `json:"voice_id,omitempty"`
	Speed   float64 `json:"speed,omitempty" validate:"omitempty,gte=0.5,lte=2"`
	Volume  float64 `json:"volume,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type TranscribeRequest struct {
	Audio    string `json:"audio" validate:"required"`
	Language string `json:"language,omitempty"`
}

type TranscribeResponse struct {
	Text string `json:"text"`
}
