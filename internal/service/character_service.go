package service

import (
	"errors"
	"sync"

	"cosmic-chat-be/internal/character"
)

var ErrCharacterNotFound = errors.New("character not found")

type ICharacterService interface {
	List() []character.Character
	Get(id string) (*character.Character, error)
	// Select makes a character the active persona for new sessions.
	Select(id string) (*character.Character, error)
	// Current returns the active character, or nil when none is selected.
	Current() *character.Character
}

type characterService struct {
	mu      sync.RWMutex
	current *character.Character
}

func NewCharacterService() ICharacterService {
	return &characterService{}
}

func (cs *characterService) List() []character.Character {
	out := make([]character.Character, len(character.Presets))
	copy(out, character.Presets)
	return out
}

func (cs *characterService) Get(id string) (*character.Character, error) {
	c, ok := character.ById(id)
	if !ok {
		return nil, ErrCharacterNotFound
	}
	cp := *c
	return &cp, nil
}

func (cs *characterService) Select(id string) (*character.Character, error) {
	c, ok := character.ById(id)
	if !ok {
		return nil, ErrCharacterNotFound
	}

	cs.mu.Lock()
	cp := *c
	cs.current = &cp
	cs.mu.Unlock()

	out := cp
	return &out, nil
}

func (cs *characterService) Current() *character.Character {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if cs.current == nil {
		return nil
	}
	cp := *cs.current
	return &cp
}
