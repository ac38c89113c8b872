package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/store"
	"cosmic-chat-be/pkg/llm"
	"cosmic-chat-be/pkg/prompt"
)

const (
	testWaitLong = 2 * time.Second
	testWaitTick = 5 * time.Millisecond
)

type stubSessionRepo struct{}

func (stubSessionRepo) Create(ctx context.Context, s *entity.ChatSession) error { return nil }
func (stubSessionRepo) Update(ctx context.Context, s *entity.ChatSession) error { return nil }
func (stubSessionRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (stubSessionRepo) FindAll(ctx context.Context) ([]*entity.ChatSession, error) {
	return nil, nil
}

type stubMessageRepo struct{}

func (stubMessageRepo) Create(ctx context.Context, m *entity.ChatMessage) error { return nil }
func (stubMessageRepo) Update(ctx context.Context, m *entity.ChatMessage) error { return nil }
func (stubMessageRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (stubMessageRepo) DeleteBySession(ctx context.Context, sessionId uuid.UUID) error {
	return nil
}
func (stubMessageRepo) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]entity.ChatMessage, error) {
	return nil, nil
}

type stubAppStateRepo struct{}

func (stubAppStateRepo) GetCurrentSession(ctx context.Context) (*uuid.UUID, error) { return nil, nil }
func (stubAppStateRepo) SetCurrentSession(ctx context.Context, id *uuid.UUID) error {
	return nil
}

type stubSettingsRepo struct {
	settings *entity.AppSettings
}

func (r *stubSettingsRepo) Get(ctx context.Context) (*entity.AppSettings, error) {
	return r.settings, nil
}
func (r *stubSettingsRepo) Save(ctx context.Context, s *entity.AppSettings) error {
	r.settings = s
	return nil
}

type fakeProvider struct {
	generateText string
	generateErr  error
	chunks       []string
	streamErr    error
	cancelAfter  int // emit this many chunks, then block until ctx cancel

	lastSystemPrompt string
	lastTurns        []llm.Message
}

func (p *fakeProvider) Generate(ctx context.Context, turns []llm.Message, systemPrompt string, opts ...llm.Option) (string, error) {
	p.lastTurns = turns
	p.lastSystemPrompt = systemPrompt
	return p.generateText, p.generateErr
}

func (p *fakeProvider) GenerateStream(ctx context.Context, turns []llm.Message, systemPrompt string, onChunk llm.ChunkHandler, opts ...llm.Option) error {
	p.lastTurns = turns
	p.lastSystemPrompt = systemPrompt

	for i, chunk := range p.chunks {
		if p.cancelAfter > 0 && i == p.cancelAfter {
			<-ctx.Done()
			return llm.NewError(llm.KindCancelled, "generation cancelled", ctx.Err())
		}
		onChunk(chunk)
	}
	if p.cancelAfter > 0 && p.cancelAfter >= len(p.chunks) {
		<-ctx.Done()
		return llm.NewError(llm.KindCancelled, "generation cancelled", ctx.Err())
	}
	return p.streamErr
}

func (p *fakeProvider) ListModels(ctx context.Context) ([]string, error) { return nil, nil }
func (p *fakeProvider) CheckHealth(ctx context.Context) bool             { return true }

type fakePublisher struct {
	published [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.published = append(p.published, payload)
	return nil
}

type chatFixture struct {
	service   IChatService
	store     *store.ChatStore
	provider  *fakeProvider
	publisher *fakePublisher
	character ICharacterService
}

func newChatFixture(t *testing.T, provider *fakeProvider) *chatFixture {
	t.Helper()
	return newChatFixtureOpts(t, provider, true, true)
}

func newChatFixtureOpts(t *testing.T, provider *fakeProvider, streamingEnabled, memoryEnabled bool) *chatFixture {
	t.Helper()

	chatStore := store.NewChatStore(stubSessionRepo{}, stubMessageRepo{}, stubAppStateRepo{}, noopLogger{})
	characterService := NewCharacterService()
	settingsService := NewSettingsService(&stubSettingsRepo{}, noopLogger{})
	memoryService := NewMemoryService(newFakeMemoryRepo(), noopLogger{})
	publisher := &fakePublisher{}

	chatService := NewChatService(
		chatStore,
		characterService,
		settingsService,
		memoryService,
		prompt.NewBuilder(),
		provider,
		publisher,
		noopLogger{},
		2000,
		streamingEnabled,
		memoryEnabled,
	)

	return &chatFixture{
		service:   chatService,
		store:     chatStore,
		provider:  provider,
		publisher: publisher,
		character: characterService,
	}
}

func TestSendMessageStreamingHappyPath(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{chunks: []string{"Hey", " there!"}})
	_, err := f.character.Select("mars")
	require.NoError(t, err)

	res, err := f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "hello"})

	require.NoError(t, err)
	require.NotNil(t, res.AssistantMessage)
	assert.Equal(t, "Hey there!", res.AssistantMessage.Content)
	assert.Equal(t, string(entity.StatusSent), res.AssistantMessage.Status)
	assert.Equal(t, "hello", res.UserMessage.Content)
	assert.True(t, res.Streamed)

	assert.False(t, f.store.Streaming())
	assert.Empty(t, f.store.LastError())
	assert.Len(t, f.publisher.published, 1)
}

func TestSendMessageBlockingPath(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{generateText: "Hey there!"})
	_, err := f.character.Select("luna")
	require.NoError(t, err)

	off := false
	res, err := f.service.SendMessage(context.Background(), &dto.SendMessageRequest{
		Content: "hello",
		Stream:  &off,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hey there!", res.AssistantMessage.Content)
	assert.Equal(t, string(entity.StatusSent), res.AssistantMessage.Status)
	assert.False(t, res.Streamed)
}

func TestSendMessageWithoutCharacter(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{})

	_, err := f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "hello"})

	assert.ErrorIs(t, err, ErrNoCharacterSelected)
	assert.Equal(t, ErrNoCharacterSelected.Error(), f.store.LastError())
}

func TestSendMessageProviderFailure(t *testing.T) {
	failure := llm.NewError(llm.KindStreamingFailed, "failed to stream response", nil)
	f := newChatFixture(t, &fakeProvider{streamErr: failure})
	_, err := f.character.Select("mars")
	require.NoError(t, err)

	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "hello"})

	require.Error(t, err)
	assert.Equal(t, llm.KindStreamingFailed, llm.KindOf(err))

	session := f.store.CurrentSession()
	require.NotNil(t, session)
	require.Len(t, session.Messages, 2)
	assistant := session.Messages[1]
	assert.Equal(t, entity.StatusError, assistant.Status)
	assert.NotEmpty(t, assistant.Error)

	assert.False(t, f.store.Streaming())
	assert.NotEmpty(t, f.store.LastError())
	assert.Empty(t, f.publisher.published)
}

func TestStopGenerationPreservesPartialContent(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{chunks: []string{"Hi"}, cancelAfter: 1})
	_, err := f.character.Select("mars")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "hello"})
		done <- err
	}()

	// Wait until the first chunk landed, then stop.
	require.Eventually(t, func() bool {
		session := f.store.CurrentSession()
		if session == nil || len(session.Messages) < 2 {
			return false
		}
		return session.Messages[1].Content == "Hi"
	}, testWaitLong, testWaitTick)

	f.service.StopGeneration()

	err = <-done
	require.Error(t, err)
	assert.Equal(t, llm.KindCancelled, llm.KindOf(err))

	assistant := f.store.CurrentSession().Messages[1]
	assert.Equal(t, "Hi", assistant.Content)
	assert.Equal(t, entity.StatusError, assistant.Status)
	assert.False(t, f.store.Streaming())
}

func TestSendMessageReusesSessionForSameCharacter(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{generateText: "hi"})
	_, err := f.character.Select("mars")
	require.NoError(t, err)

	off := false
	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "one", Stream: &off})
	require.NoError(t, err)
	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "two", Stream: &off})
	require.NoError(t, err)

	assert.Len(t, f.service.Sessions(), 1)
	assert.Len(t, f.store.CurrentSession().Messages, 4)
}

func TestSendMessageStartsNewSessionOnCharacterSwitch(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{generateText: "hi"})
	off := false

	_, err := f.character.Select("mars")
	require.NoError(t, err)
	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "one", Stream: &off})
	require.NoError(t, err)

	_, err = f.character.Select("luna")
	require.NoError(t, err)
	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "two", Stream: &off})
	require.NoError(t, err)

	sessions := f.service.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, "luna", f.store.CurrentSession().CharacterId)
}

func TestSendMessageIncludesHistoryInTurns(t *testing.T) {
	provider := &fakeProvider{generateText: "hi"}
	f := newChatFixture(t, provider)
	_, err := f.character.Select("mars")
	require.NoError(t, err)

	off := false
	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "first", Stream: &off})
	require.NoError(t, err)
	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "second", Stream: &off})
	require.NoError(t, err)

	// history: first user msg, first reply, second user msg, empty placeholder
	require.Len(t, provider.lastTurns, 4)
	assert.Equal(t, "first", provider.lastTurns[0].Content)
	assert.Equal(t, "hi", provider.lastTurns[1].Content)
	assert.Equal(t, "second", provider.lastTurns[2].Content)
	assert.Equal(t, "", provider.lastTurns[3].Content)
}

func TestSendMessageStreamingDisabledByConfig(t *testing.T) {
	provider := &fakeProvider{generateText: "hi"}
	f := newChatFixtureOpts(t, provider, false, true)
	_, err := f.character.Select("mars")
	require.NoError(t, err)

	on := true
	res, err := f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "hello", Stream: &on})

	require.NoError(t, err)
	assert.False(t, res.Streamed)
	assert.Equal(t, "hi", res.AssistantMessage.Content)
}

func TestTurnAbandonedWhenSessionDeleted(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{})
	ctx := context.Background()

	session := f.store.CreateSession(ctx, "mars", "Mars")
	f.store.DeleteSession(ctx, session.Id)

	cs := f.service.(*chatService)
	user, assistant, err := cs.appendTurnMessages(ctx, session.Id, "mars", "hello", true)

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, user)
	assert.Nil(t, assistant)
}

func TestSendMessageValidation(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{})
	_, err := f.character.Select("mars")
	require.NoError(t, err)

	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: ""})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'x'
	}
	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: string(long)})
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestSendMessageSystemPromptContainsPersona(t *testing.T) {
	provider := &fakeProvider{generateText: "hi"}
	f := newChatFixture(t, provider)
	_, err := f.character.Select("mars")
	require.NoError(t, err)

	off := false
	_, err = f.service.SendMessage(context.Background(), &dto.SendMessageRequest{Content: "hello", Stream: &off})
	require.NoError(t, err)

	assert.Contains(t, provider.lastSystemPrompt, "You are Mars")
}
