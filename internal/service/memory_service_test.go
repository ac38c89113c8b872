package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmic-chat-be/internal/entity"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakeMemoryRepo struct {
	memories map[string]*entity.ConversationMemory
}

func newFakeMemoryRepo() *fakeMemoryRepo {
	return &fakeMemoryRepo{memories: make(map[string]*entity.ConversationMemory)}
}

func (r *fakeMemoryRepo) FindByKey(ctx context.Context, key string) (*entity.ConversationMemory, error) {
	m, ok := r.memories[key]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemoryRepo) Upsert(ctx context.Context, key string, memory *entity.ConversationMemory) error {
	cp := *memory
	r.memories[key] = &cp
	return nil
}

func (r *fakeMemoryRepo) DeleteByCharacter(ctx context.Context, characterId string) error {
	for key := range r.memories {
		if strings.HasPrefix(key, characterId) {
			delete(r.memories, key)
		}
	}
	return nil
}

func (r *fakeMemoryRepo) DeleteAll(ctx context.Context) error {
	r.memories = make(map[string]*entity.ConversationMemory)
	return nil
}

func userMsg(content string) entity.ChatMessage {
	return entity.ChatMessage{
		Id:        uuid.New(),
		Role:      entity.RoleUser,
		Content:   content,
		Status:    entity.StatusSent,
		CreatedAt: time.Now(),
	}
}

func assistantMsg(content string) entity.ChatMessage {
	return entity.ChatMessage{
		Id:        uuid.New(),
		Role:      entity.RoleAssistant,
		Content:   content,
		Status:    entity.StatusSent,
		CreatedAt: time.Now(),
	}
}

func TestExtractKeyTopicsFiltersAndOrders(t *testing.T) {
	topics := extractKeyTopics([]entity.ChatMessage{
		userMsg("The quick brown fox jumps over the lazy dog"),
	})

	// "the" is a stop word, "fox" and "dog" are too short.
	assert.Equal(t, []string{"quick", "brown", "jumps", "over", "lazy"}, topics)
}

func TestExtractKeyTopicsFrequencyWins(t *testing.T) {
	topics := extractKeyTopics([]entity.ChatMessage{
		userMsg("pasta pizza pizza"),
		userMsg("pizza salad"),
	})

	require.NotEmpty(t, topics)
	assert.Equal(t, "pizza", topics[0])
	assert.Equal(t, []string{"pizza", "pasta", "salad"}, topics)
}

func TestExtractKeyTopicsIgnoresAssistant(t *testing.T) {
	topics := extractKeyTopics([]entity.ChatMessage{
		assistantMsg("galaxies supernova quasars"),
		userMsg("hello there"),
	})

	assert.Equal(t, []string{"hello", "there"}, topics)
}

func TestGenerateSummaryVariants(t *testing.T) {
	assert.Equal(t, "No conversation yet.", generateSummary(nil))

	assert.Equal(t, "General conversation.", generateSummary([]entity.ChatMessage{
		userMsg("hi you the and"),
	}))

	got := generateSummary([]entity.ChatMessage{
		userMsg("tell me about rockets and orbits and rockets"),
	})
	assert.Equal(t, "Discussion about rockets, tell, about", got)
}

func TestGenerateSummaryUsesOnlyLastFiveMessages(t *testing.T) {
	msgs := []entity.ChatMessage{
		userMsg("ancient dinosaurs everywhere"),
	}
	for i := 0; i < 5; i++ {
		msgs = append(msgs, userMsg("constellations"))
	}

	got := generateSummary(msgs)
	assert.Equal(t, "Discussion about constellations", got)
}

func TestUpdateMemorySummaryIsSticky(t *testing.T) {
	repo := newFakeMemoryRepo()
	ms := NewMemoryService(repo, noopLogger{})
	ctx := context.Background()
	sessionId := uuid.New()

	first := ms.UpdateMemory(ctx, "mars", sessionId, []entity.ChatMessage{
		userMsg("rockets rockets rockets"),
	})
	require.Equal(t, "Discussion about rockets", first.Summary)

	second := ms.UpdateMemory(ctx, "mars", sessionId, []entity.ChatMessage{
		userMsg("gardening tulips daffodils"),
		userMsg("gardening"),
	})

	// Summary and topics keep their first derived values.
	assert.Equal(t, "Discussion about rockets", second.Summary)
	assert.Equal(t, first.KeyTopics, second.KeyTopics)
	assert.Equal(t, 2, second.MessageCount)
}

func TestUpdateMemoryCountsAllMessages(t *testing.T) {
	repo := newFakeMemoryRepo()
	ms := NewMemoryService(repo, noopLogger{})
	ctx := context.Background()
	sessionId := uuid.New()

	mem := ms.UpdateMemory(ctx, "luna", sessionId, []entity.ChatMessage{
		userMsg("hello"),
		assistantMsg("hi"),
		userMsg("how are you"),
	})

	assert.Equal(t, 3, mem.MessageCount)
	assert.Equal(t, "luna", mem.CharacterId)
	assert.Equal(t, sessionId, mem.SessionId)
}

func TestGetMemoryReturnsNilWhenAbsent(t *testing.T) {
	ms := NewMemoryService(newFakeMemoryRepo(), noopLogger{})
	assert.Nil(t, ms.GetMemory(context.Background(), "mars", uuid.New()))
}

func TestBuildMemoryContextLimitsRecentMessages(t *testing.T) {
	repo := newFakeMemoryRepo()
	ms := NewMemoryService(repo, noopLogger{})
	ctx := context.Background()
	sessionId := uuid.New()

	var msgs []entity.ChatMessage
	for _, c := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		msgs = append(msgs, userMsg(c))
	}

	mc := ms.BuildMemoryContext(ctx, "mars", sessionId, msgs)

	assert.Equal(t, []string{"three", "four", "five", "six", "seven"}, mc.RecentMessages)
	assert.Empty(t, mc.RelevantMemories)
	assert.Empty(t, mc.ConversationSummary)
	assert.NotNil(t, mc.UserPreferences)
}

func TestBuildMemoryContextIncludesStoredSummary(t *testing.T) {
	repo := newFakeMemoryRepo()
	ms := NewMemoryService(repo, noopLogger{})
	ctx := context.Background()
	sessionId := uuid.New()

	ms.UpdateMemory(ctx, "mars", sessionId, []entity.ChatMessage{
		userMsg("asteroids asteroids"),
	})

	mc := ms.BuildMemoryContext(ctx, "mars", sessionId, nil)
	assert.Equal(t, "Discussion about asteroids", mc.ConversationSummary)
}

func TestClearCharacterMemoriesOnlyDropsThatCharacter(t *testing.T) {
	repo := newFakeMemoryRepo()
	ms := NewMemoryService(repo, noopLogger{})
	ctx := context.Background()

	marsSession := uuid.New()
	lunaSession := uuid.New()
	ms.UpdateMemory(ctx, "mars", marsSession, []entity.ChatMessage{userMsg("craters")})
	ms.UpdateMemory(ctx, "luna", lunaSession, []entity.ChatMessage{userMsg("tides")})

	require.NoError(t, ms.ClearCharacterMemories(ctx, "mars"))

	assert.Nil(t, ms.GetMemory(ctx, "mars", marsSession))
	assert.NotNil(t, ms.GetMemory(ctx, "luna", lunaSession))
}
