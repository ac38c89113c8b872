// Package prompt renders character personas and memory context into the text
// artifacts sent to the generation backend. Building is pure: the same inputs
// always produce the same strings.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"cosmic-chat-be/internal/character"
	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/pkg/llm"
)

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// BuildSystemPrompt renders the persona instructions for a character. Missing
// optional fields degrade gracefully: an absent backstory falls back to the
// description and empty traits render an empty list section.
func (b *Builder) BuildSystemPrompt(c *character.Character) string {
	background := c.Backstory
	if background == "" {
		background = c.Description
	}

	var traits strings.Builder
	for _, t := range c.Traits {
		traits.WriteString(fmt.Sprintf("- %s\n", t))
	}

	return fmt.Sprintf(`You are %s, %s.

Personality: %s
Current Mood: %s

Background:
%s

Key Traits:
%s
Instructions:
- Stay in character at all times
- Respond naturally and conversationally
- Show your personality through your responses
- Keep responses concise but engaging (2-4 sentences typically)
- Use appropriate emotions based on your mood
- Remember context from the conversation

%s`, c.Name, c.Title, c.Personality, c.Mood, background, traits.String(), c.SystemPrompt)
}

// BuildContextualPrompt augments the system prompt with memory context. The
// context block is appended only when mc actually carries content; an empty
// context leaves the base prompt untouched.
func (b *Builder) BuildContextualPrompt(c *character.Character, mc *entity.MemoryContext) string {
	base := b.BuildSystemPrompt(c)
	if mc == nil {
		return base
	}
	if mc.ConversationSummary == "" && len(mc.UserPreferences) == 0 && len(mc.RelevantMemories) == 0 {
		return base
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\n\nRelevant Context from Previous Conversations:")

	if mc.ConversationSummary != "" {
		sb.WriteString(fmt.Sprintf("\nSummary: %s", mc.ConversationSummary))
	}

	if len(mc.UserPreferences) > 0 {
		sb.WriteString("\n\nUser Preferences:")
		keys := make([]string, 0, len(mc.UserPreferences))
		for k := range mc.UserPreferences {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("\n- %s: %v", k, mc.UserPreferences[k]))
		}
	}

	if len(mc.RelevantMemories) > 0 {
		sb.WriteString("\n\nRelevant Memories:")
		for _, m := range mc.RelevantMemories {
			sb.WriteString(fmt.Sprintf("\n- %s", m))
		}
	}

	return sb.String()
}

// FormatTurns converts stored chat messages into provider turns, dropping
// system entries.
func (b *Builder) FormatTurns(messages []entity.ChatMessage) []llm.Message {
	turns := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == entity.RoleSystem {
			continue
		}
		turns = append(turns, llm.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return turns
}
