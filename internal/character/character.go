// Package character holds the static persona presets. The roster is loaded
// once at startup and is immutable for the process lifetime.
package character

// Character is a preset persona: a fixed personality, greeting and system
// prompt the generation backend is steered with.
type Character struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Personality  string   `json:"personality"`
	Mood         string   `json:"mood"`
	Avatar       string   `json:"avatar"`
	Color        string   `json:"color"`
	SystemPrompt string   `json:"system_prompt"`
	Greeting     string   `json:"greeting"`
	Traits       []string `json:"traits"`
	Backstory    string   `json:"backstory,omitempty"`
	VoiceId      string   `json:"voice_id,omitempty"`
}

// ById returns the preset with the given id.
func ById(id string) (*Character, bool) {
	for i := range Presets {
		if Presets[i].Id == id {
			return &Presets[i], true
		}
	}
	return nil, false
}

// Ids returns every preset id in roster order.
func Ids() []string {
	ids := make([]string, len(Presets))
	for i, c := range Presets {
		ids[i] = c.Id
	}
	return ids
}
