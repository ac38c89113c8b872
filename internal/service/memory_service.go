package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/pkg/logger"
	"cosmic-chat-be/internal/repository/contract"
)

// stopWords are excluded from topic extraction.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"what": {}, "how": {}, "when": {}, "where": {}, "why": {},
}

type IMemoryService interface {
	GetMemory(ctx context.Context, characterId string, sessionId uuid.UUID) *entity.ConversationMemory
	// UpdateMemory refreshes the derived memory after a completed exchange.
	// Summary, topics and preferences are sticky once set.
	UpdateMemory(ctx context.Context, characterId string, sessionId uuid.UUID, messages []entity.ChatMessage) *entity.ConversationMemory
	BuildMemoryContext(ctx context.Context, characterId string, sessionId uuid.UUID, messages []entity.ChatMessage) *entity.MemoryContext
	ClearCharacterMemories(ctx context.Context, characterId string) error
	ClearAllMemories(ctx context.Context) error
}

type memoryService struct {
	repo  contract.MemoryRepository
	cache *gocache.Cache
	log   logger.ILogger
	now   func() time.Time
}

func NewMemoryService(repo contract.MemoryRepository, log logger.ILogger) IMemoryService {
	return &memoryService{
		repo:  repo,
		cache: gocache.New(10*time.Minute, 15*time.Minute),
		log:   log,
		now:   time.Now,
	}
}

func memoryKey(characterId string, sessionId uuid.UUID) string {
	return fmt.Sprintf("%s_%s", characterId, sessionId)
}

// GetMemory returns the memory for a (character, session) pair, or nil when
// none exists. Read failures degrade to nil.
func (ms *memoryService) GetMemory(ctx context.Context, characterId string, sessionId uuid.UUID) *entity.ConversationMemory {
	key := memoryKey(characterId, sessionId)

	if cached, ok := ms.cache.Get(key); ok {
		mem := cached.(entity.ConversationMemory)
		return &mem
	}

	mem, err := ms.repo.FindByKey(ctx, key)
	if err != nil {
		ms.log.Warn("MemoryService", "failed to load memory", map[string]interface{}{"key": key, "error": err.Error()})
		return nil
	}
	if mem == nil {
		return nil
	}

	ms.cache.Set(key, *mem, gocache.DefaultExpiration)
	return mem
}

func (ms *memoryService) UpdateMemory(ctx context.Context, characterId string, sessionId uuid.UUID, messages []entity.ChatMessage) *entity.ConversationMemory {
	existing := ms.GetMemory(ctx, characterId, sessionId)

	lastInteraction := ms.now()
	if len(messages) > 0 {
		lastInteraction = messages[len(messages)-1].CreatedAt
	}

	memory := &entity.ConversationMemory{
		CharacterId:     characterId,
		SessionId:       sessionId,
		Summary:         generateSummary(messages),
		KeyTopics:       extractKeyTopics(messages),
		UserPreferences: map[string]interface{}{},
		LastInteraction: lastInteraction,
		MessageCount:    len(messages),
	}
	if existing != nil {
		// Once derived, these fields stay fixed for the session.
		if existing.Summary != "" {
			memory.Summary = existing.Summary
		}
		memory.KeyTopics = existing.KeyTopics
		if existing.UserPreferences != nil {
			memory.UserPreferences = existing.UserPreferences
		}
	}

	key := memoryKey(characterId, sessionId)
	if err := ms.repo.Upsert(ctx, key, memory); err != nil {
		ms.log.Error("MemoryService", "failed to save memory", map[string]interface{}{"key": key, "error": err.Error()})
	}
	ms.cache.Set(key, *memory, gocache.DefaultExpiration)

	return memory
}

// BuildMemoryContext assembles the prompt context. RelevantMemories is
// reserved for a future retrieval mechanism and stays empty.
func (ms *memoryService) BuildMemoryContext(ctx context.Context, characterId string, sessionId uuid.UUID, messages []entity.ChatMessage) *entity.MemoryContext {
	memory := ms.GetMemory(ctx, characterId, sessionId)

	recent := messages
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentContents := make([]string, len(recent))
	for i, m := range recent {
		recentContents[i] = m.Content
	}

	mc := &entity.MemoryContext{
		RecentMessages:   recentContents,
		UserPreferences:  map[string]interface{}{},
		RelevantMemories: []string{},
	}
	if memory != nil {
		mc.ConversationSummary = memory.Summary
		if memory.UserPreferences != nil {
			mc.UserPreferences = memory.UserPreferences
		}
	}
	return mc
}

func (ms *memoryService) ClearCharacterMemories(ctx context.Context, characterId string) error {
	ms.cache.Flush()
	return ms.repo.DeleteByCharacter(ctx, characterId)
}

func (ms *memoryService) ClearAllMemories(ctx context.Context) error {
	ms.cache.Flush()
	return ms.repo.DeleteAll(ctx)
}

// ToMemoryResponse converts a memory entity into its API shape. Nil in, nil
// out.
func ToMemoryResponse(m *entity.ConversationMemory) *dto.MemoryResponse {
	if m == nil {
		return nil
	}
	return &dto.MemoryResponse{
		CharacterId:     m.CharacterId,
		SessionId:       m.SessionId.String(),
		Summary:         m.Summary,
		KeyTopics:       m.KeyTopics,
		UserPreferences: m.UserPreferences,
		LastInteraction: m.LastInteraction,
		MessageCount:    m.MessageCount,
	}
}

// generateSummary condenses the conversation into one line based on the
// topics of the last five messages.
func generateSummary(messages []entity.ChatMessage) string {
	if len(messages) == 0 {
		return "No conversation yet."
	}

	recent := messages
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	topics := extractKeyTopics(recent)
	if len(topics) == 0 {
		return "General conversation."
	}
	if len(topics) > 3 {
		topics = topics[:3]
	}
	return fmt.Sprintf("Discussion about %s", strings.Join(topics, ", "))
}

// extractKeyTopics returns up to five keywords from the user's messages,
// most frequent first. Ties keep first-encounter order.
func extractKeyTopics(messages []entity.ChatMessage) []string {
	var parts []string
	for _, m := range messages {
		if m.Role == entity.RoleUser {
			parts = append(parts, strings.ToLower(m.Content))
		}
	}

	words := strings.Fields(strings.Join(parts, " "))

	freq := make(map[string]int)
	var order []string
	for _, w := range words {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, seen := freq[w]; !seen {
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > 5 {
		order = order[:5]
	}
	return order
}
