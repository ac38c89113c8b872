package store

import (
	"context"
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

type fakeSessionRepo struct {
	sessions []*entity.ChatSession
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.ChatSession) error {
	r.sessions = append(r.sessions, s)
	return nil
}
func (r *fakeSessionRepo) Update(ctx context.Context, s *entity.ChatSession) error { return nil }
func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (r *fakeSessionRepo) FindAll(ctx context.Context) ([]*entity.ChatSession, error) {
	return r.sessions, nil
}

type fakeMessageRepo struct{}

func (fakeMessageRepo) Create(ctx context.Context, m *entity.ChatMessage) error { return nil }
func (fakeMessageRepo) Update(ctx context.Context, m *entity.ChatMessage) error { return nil }
func (fakeMessageRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }
func (fakeMessageRepo) DeleteBySession(ctx context.Context, sessionId uuid.UUID) error {
	return nil
}
func (fakeMessageRepo) FindBySession(ctx context.Context, sessionId uuid.UUID) ([]entity.ChatMessage, error) {
	return nil, nil
}

type fakeAppStateRepo struct {
	current *uuid.UUID
}

func (r *fakeAppStateRepo) GetCurrentSession(ctx context.Context) (*uuid.UUID, error) {
	return r.current, nil
}
func (r *fakeAppStateRepo) SetCurrentSession(ctx context.Context, id *uuid.UUID) error {
	r.current = id
	return nil
}

func newTestStore() *ChatStore {
	return NewChatStore(&fakeSessionRepo{}, fakeMessageRepo{}, &fakeAppStateRepo{}, noopLogger{})
}

func TestCreateSessionBecomesCurrent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	session := s.CreateSession(ctx, "mars", "Mars")

	require.NotNil(t, session)
	assert.Equal(t, "mars", session.CharacterId)
	current := s.CurrentSession()
	require.NotNil(t, current)
	assert.Equal(t, session.Id, current.Id)
}

func TestAddMessageAssignsIdAndBumpsUpdatedAt(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	session := s.CreateSession(ctx, "luna", "Luna")
	before := s.Session(session.Id).UpdatedAt

	fakeNow := before.Add(time.Minute)
	s.now = func() time.Time { return fakeNow }

	msg := s.AddMessage(ctx, session.Id, entity.ChatMessage{
		Role:    entity.RoleUser,
		Content: "hi",
		Status:  entity.StatusSent,
	})

	require.NotNil(t, msg)
	assert.NotEqual(t, uuid.Nil, msg.Id)
	assert.Equal(t, session.Id, msg.SessionId)

	after := s.Session(session.Id)
	assert.True(t, after.UpdatedAt.After(before))
	require.Len(t, after.Messages, 1)
	assert.Equal(t, "hi", after.Messages[0].Content)
}

func TestAddMessageUnknownSessionIsNoOp(t *testing.T) {
	s := newTestStore()

	msg := s.AddMessage(context.Background(), uuid.New(), entity.ChatMessage{
		Role:    entity.RoleUser,
		Content: "lost",
	})

	assert.Nil(t, msg)
	assert.Empty(t, s.Sessions())
}

func TestUpdateMessagePatchesOnlyGivenFields(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	session := s.CreateSession(ctx, "mars", "Mars")
	msg := s.AddMessage(ctx, session.Id, entity.ChatMessage{
		Role:    entity.RoleAssistant,
		Content: "partial",
		Status:  entity.StatusStreaming,
	})

	sent := entity.StatusSent
	s.UpdateMessage(ctx, session.Id, msg.Id, MessagePatch{Status: &sent})

	got := s.SessionMessages(session.Id)[0]
	assert.Equal(t, "partial", got.Content)
	assert.Equal(t, entity.StatusSent, got.Status)
}

func TestAppendMessageContentAccumulatesChunks(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	session := s.CreateSession(ctx, "mars", "Mars")
	msg := s.AddMessage(ctx, session.Id, entity.ChatMessage{
		Role:   entity.RoleAssistant,
		Status: entity.StatusStreaming,
	})

	s.AppendMessageContent(session.Id, msg.Id, "Hey")
	s.AppendMessageContent(session.Id, msg.Id, " there!")

	got := s.SessionMessages(session.Id)[0]
	assert.Equal(t, "Hey there!", got.Content)
}

func TestDeleteCurrentSessionClearsPointer(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	keep := s.CreateSession(ctx, "mars", "Mars")
	doomed := s.CreateSession(ctx, "luna", "Luna")
	require.Equal(t, doomed.Id, s.CurrentSession().Id)

	s.DeleteSession(ctx, doomed.Id)

	assert.Nil(t, s.CurrentSession())
	assert.Nil(t, s.Session(doomed.Id))
	assert.NotNil(t, s.Session(keep.Id))
}

func TestDeleteOtherSessionKeepsPointer(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	older := s.CreateSession(ctx, "mars", "Mars")
	current := s.CreateSession(ctx, "luna", "Luna")

	s.DeleteSession(ctx, older.Id)

	require.NotNil(t, s.CurrentSession())
	assert.Equal(t, current.Id, s.CurrentSession().Id)
}

func TestClearSessionKeepsSession(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	session := s.CreateSession(ctx, "mars", "Mars")
	s.AddMessage(ctx, session.Id, entity.ChatMessage{Role: entity.RoleUser, Content: "hi"})

	s.ClearSession(ctx, session.Id)

	got := s.Session(session.Id)
	require.NotNil(t, got)
	assert.Empty(t, got.Messages)
}

func TestSessionsSortedByRecency(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	base := time.Now()
	s.now = func() time.Time { return base }
	first := s.CreateSession(ctx, "mars", "Mars")

	s.now = func() time.Time { return base.Add(time.Minute) }
	second := s.CreateSession(ctx, "luna", "Luna")

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	s.AddMessage(ctx, first.Id, entity.ChatMessage{Role: entity.RoleUser, Content: "bump"})

	sessions := s.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, first.Id, sessions[0].Id)
	assert.Equal(t, second.Id, sessions[1].Id)
}

func TestSetErrorClearsStreamingFlag(t *testing.T) {
	s := newTestStore()

	s.SetStreaming(true)
	require.True(t, s.Streaming())

	s.SetError("backend exploded")
	assert.False(t, s.Streaming())
	assert.Equal(t, "backend exploded", s.LastError())

	s.SetError("")
	assert.Empty(t, s.LastError())
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	events, cancel := s.Subscribe()
	defer cancel()

	session := s.CreateSession(ctx, "mars", "Mars")
	s.AddMessage(ctx, session.Id, entity.ChatMessage{Role: entity.RoleUser, Content: "hi"})

	var types []string
	for i := 0; i < 2; i++ {
		select {
		case ev := <-events:
			types = append(types, ev.Type)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
	assert.Equal(t, []string{EventSessionCreated, EventMessageAdded}, types)
}

func TestLoadHydratesSessionsAndPointer(t *testing.T) {
	sid := uuid.New()
	sessionRepo := &fakeSessionRepo{sessions: []*entity.ChatSession{{
		Id:          sid,
		CharacterId: "mars",
		Title:       "Mars",
	}}}
	appState := &fakeAppStateRepo{current: &sid}

	s := NewChatStore(sessionRepo, fakeMessageRepo{}, appState, noopLogger{})
	require.NoError(t, s.Load(context.Background()))

	require.NotNil(t, s.CurrentSession())
	assert.Equal(t, sid, s.CurrentSession().Id)
}
