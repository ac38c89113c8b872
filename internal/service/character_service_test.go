package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterListContainsAllPresets(t *testing.T) {
	cs := NewCharacterService()

	roster := cs.List()
	require.Len(t, roster, 5)

	ids := make([]string, 0, len(roster))
	for _, c := range roster {
		ids = append(ids, c.Id)
	}
	assert.Equal(t, []string{"mars", "luna", "nebula", "stellar", "cosmos"}, ids)
}

func TestCharacterGetUnknownId(t *testing.T) {
	cs := NewCharacterService()

	_, err := cs.Get("pluto")
	assert.ErrorIs(t, err, ErrCharacterNotFound)
}

func TestCharacterSelectSetsCurrent(t *testing.T) {
	cs := NewCharacterService()
	assert.Nil(t, cs.Current())

	selected, err := cs.Select("luna")
	require.NoError(t, err)
	assert.Equal(t, "Luna", selected.Name)

	current := cs.Current()
	require.NotNil(t, current)
	assert.Equal(t, "luna", current.Id)
}

func TestCharacterCurrentReturnsCopy(t *testing.T) {
	cs := NewCharacterService()
	_, err := cs.Select("mars")
	require.NoError(t, err)

	first := cs.Current()
	first.Name = "mutated"

	assert.Equal(t, "Mars", cs.Current().Name)
}
