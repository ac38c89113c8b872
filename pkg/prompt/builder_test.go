package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cosmic-chat-be/internal/character"
	"cosmic-chat-be/internal/entity"
)

func testCharacter() *character.Character {
	return &character.Character{
		Id:           "mars",
		Name:         "Mars",
		Title:        "The Red Warrior",
		Description:  "A bold explorer of the red planet",
		Personality:  "Bold and direct",
		Mood:         "energetic",
		SystemPrompt: "Always talk about exploration.",
		Traits:       []string{"brave", "restless"},
		Backstory:    "Born in a dust storm.",
	}
}

func TestBuildSystemPromptContainsPersonaSections(t *testing.T) {
	b := NewBuilder()
	got := b.BuildSystemPrompt(testCharacter())

	assert.True(t, strings.HasPrefix(got, "You are Mars, The Red Warrior."))
	assert.Contains(t, got, "Personality: Bold and direct")
	assert.Contains(t, got, "Current Mood: energetic")
	assert.Contains(t, got, "Background:\nBorn in a dust storm.")
	assert.Contains(t, got, "- brave\n")
	assert.Contains(t, got, "- restless\n")
	assert.Contains(t, got, "Stay in character at all times")
	assert.True(t, strings.HasSuffix(got, "Always talk about exploration."))
}

func TestBuildSystemPromptFallsBackToDescription(t *testing.T) {
	b := NewBuilder()
	c := testCharacter()
	c.Backstory = ""

	got := b.BuildSystemPrompt(c)
	assert.Contains(t, got, "Background:\nA bold explorer of the red planet")
}

func TestBuildSystemPromptIsDeterministic(t *testing.T) {
	b := NewBuilder()
	c := testCharacter()

	first := b.BuildSystemPrompt(c)
	second := b.BuildSystemPrompt(c)
	assert.Equal(t, first, second)
}

func TestBuildContextualPromptWithoutContextEqualsBase(t *testing.T) {
	b := NewBuilder()
	c := testCharacter()
	base := b.BuildSystemPrompt(c)

	assert.Equal(t, base, b.BuildContextualPrompt(c, nil))
	assert.Equal(t, base, b.BuildContextualPrompt(c, &entity.MemoryContext{}))
}

func TestBuildContextualPromptAppendsSections(t *testing.T) {
	b := NewBuilder()
	c := testCharacter()

	mc := &entity.MemoryContext{
		ConversationSummary: "Discussion about rockets",
		UserPreferences: map[string]interface{}{
			"tone":  "casual",
			"emoji": true,
		},
		RelevantMemories: []string{"likes rovers"},
	}

	got := b.BuildContextualPrompt(c, mc)
	assert.Contains(t, got, "Relevant Context from Previous Conversations:")
	assert.Contains(t, got, "\nSummary: Discussion about rockets")
	assert.Contains(t, got, "User Preferences:")
	assert.Contains(t, got, "\n- emoji: true")
	assert.Contains(t, got, "\n- tone: casual")
	assert.Contains(t, got, "Relevant Memories:")
	assert.Contains(t, got, "\n- likes rovers")
}

func TestBuildContextualPromptPreferenceOrderIsStable(t *testing.T) {
	b := NewBuilder()
	c := testCharacter()
	mc := &entity.MemoryContext{
		UserPreferences: map[string]interface{}{
			"b": 2, "a": 1, "c": 3,
		},
	}

	first := b.BuildContextualPrompt(c, mc)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, b.BuildContextualPrompt(c, mc))
	}
	assert.Less(t, strings.Index(first, "- a: 1"), strings.Index(first, "- b: 2"))
	assert.Less(t, strings.Index(first, "- b: 2"), strings.Index(first, "- c: 3"))
}

func TestFormatTurnsFiltersSystemMessages(t *testing.T) {
	b := NewBuilder()

	turns := b.FormatTurns([]entity.ChatMessage{
		{Role: entity.RoleUser, Content: "hi"},
		{Role: entity.RoleSystem, Content: "internal"},
		{Role: entity.RoleAssistant, Content: "hello"},
	})

	assert.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "hi", turns[0].Content)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.Equal(t, "hello", turns[1].Content)
}
