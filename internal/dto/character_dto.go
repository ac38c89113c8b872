package dto

type SelectCharacterRequest struct {
	CharacterId string `json:"character_id" validate:"required"`
}
