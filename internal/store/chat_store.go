// Package store holds the authoritative in-memory chat state. Every mutation
// happens here under one lock; persistence and websocket fan-out hang off the
// store as best-effort side channels.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/pkg/logger"
	"cosmic-chat-be/internal/repository/contract"
)

// Event types emitted to subscribers.
const (
	EventSessionCreated = "session_created"
	EventSessionDeleted = "session_deleted"
	EventSessionCleared = "session_cleared"
	EventMessageAdded   = "message_added"
	EventMessageUpdated = "message_updated"
	EventChunk          = "chunk"
	EventStreaming      = "streaming"
	EventError          = "error"
)

// Event is one state-change notification. Payload shape depends on Type.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// MessagePatch describes a partial message update. Nil fields are left
// untouched.
type MessagePatch struct {
	Content *string
	Status  *entity.MessageStatus
	Error   *string
}

// ChatStore is the single source of truth for sessions, messages, the
// current-session pointer, the streaming flag and the last error. All reads
// return copies.
type ChatStore struct {
	mu sync.Mutex

	sessions         map[uuid.UUID]*entity.ChatSession
	currentSessionId *uuid.UUID
	streaming        bool
	lastError        string

	subscribers map[int]chan Event
	nextSubId   int

	sessionRepo  contract.ChatSessionRepository
	messageRepo  contract.ChatMessageRepository
	appStateRepo contract.AppStateRepository
	log          logger.ILogger

	now func() time.Time
}

func NewChatStore(
	sessionRepo contract.ChatSessionRepository,
	messageRepo contract.ChatMessageRepository,
	appStateRepo contract.AppStateRepository,
	log logger.ILogger,
) *ChatStore {
	return &ChatStore{
		sessions:     make(map[uuid.UUID]*entity.ChatSession),
		subscribers:  make(map[int]chan Event),
		sessionRepo:  sessionRepo,
		messageRepo:  messageRepo,
		appStateRepo: appStateRepo,
		log:          log,
		now:          time.Now,
	}
}

// Load hydrates the store from the database. Called once at startup; a failed
// load starts the app with empty state rather than refusing to boot.
func (s *ChatStore) Load(ctx context.Context) error {
	sessions, err := s.sessionRepo.FindAll(ctx)
	if err != nil {
		s.log.Warn("ChatStore", "failed to load sessions, starting empty", map[string]interface{}{"error": err.Error()})
		return err
	}

	current, err := s.appStateRepo.GetCurrentSession(ctx)
	if err != nil {
		s.log.Warn("ChatStore", "failed to load current session pointer", map[string]interface{}{"error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range sessions {
		s.sessions[sess.Id] = sess
	}
	if current != nil {
		if _, ok := s.sessions[*current]; ok {
			s.currentSessionId = current
		}
	}

	s.log.Info("ChatStore", "chat state loaded", map[string]interface{}{"sessions": len(sessions)})
	return nil
}

// Subscribe returns a channel of state-change events. Slow subscribers drop
// events instead of blocking mutations.
func (s *ChatStore) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubId
	s.nextSubId++
	ch := make(chan Event, 256)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(c)
		}
	}
	return ch, cancel
}

// emit must be called with the lock held.
func (s *ChatStore) emit(eventType string, payload interface{}) {
	ev := Event{Type: eventType, Payload: payload}
	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// CreateSession opens a new session for characterId and makes it current.
func (s *ChatStore) CreateSession(ctx context.Context, characterId, title string) *entity.ChatSession {
	now := s.now()
	session := &entity.ChatSession{
		Id:          uuid.New(),
		CharacterId: characterId,
		Title:       title,
		Messages:    []entity.ChatMessage{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.sessions[session.Id] = session
	id := session.Id
	s.currentSessionId = &id
	snapshot := copySession(session)
	s.emit(EventSessionCreated, snapshot)
	s.mu.Unlock()

	if err := s.sessionRepo.Create(ctx, snapshot); err != nil {
		s.log.Error("ChatStore", "failed to persist session", map[string]interface{}{"session_id": session.Id.String(), "error": err.Error()})
	}
	if err := s.appStateRepo.SetCurrentSession(ctx, &id); err != nil {
		s.log.Error("ChatStore", "failed to persist current session pointer", map[string]interface{}{"error": err.Error()})
	}

	return snapshot
}

// AddMessage appends a message to a session. Unknown session ids are a no-op
// returning nil. The store assigns the id and timestamp.
func (s *ChatStore) AddMessage(ctx context.Context, sessionId uuid.UUID, msg entity.ChatMessage) *entity.ChatMessage {
	s.mu.Lock()
	session, ok := s.sessions[sessionId]
	if !ok {
		s.mu.Unlock()
		return nil
	}

	msg.Id = uuid.New()
	msg.SessionId = sessionId
	msg.CreatedAt = s.now()
	session.Messages = append(session.Messages, msg)
	session.UpdatedAt = s.now()
	added := msg
	sessionSnapshot := copySession(session)
	s.emit(EventMessageAdded, added)
	s.mu.Unlock()

	if err := s.messageRepo.Create(ctx, &added); err != nil {
		s.log.Error("ChatStore", "failed to persist message", map[string]interface{}{"message_id": added.Id.String(), "error": err.Error()})
	}
	if err := s.sessionRepo.Update(ctx, sessionSnapshot); err != nil {
		s.log.Error("ChatStore", "failed to touch session", map[string]interface{}{"session_id": sessionId.String(), "error": err.Error()})
	}

	return &added
}

// UpdateMessage applies a patch to a message. Unknown ids are a no-op.
func (s *ChatStore) UpdateMessage(ctx context.Context, sessionId, messageId uuid.UUID, patch MessagePatch) {
	s.mu.Lock()
	session, ok := s.sessions[sessionId]
	if !ok {
		s.mu.Unlock()
		return
	}

	var updated *entity.ChatMessage
	for i := range session.Messages {
		if session.Messages[i].Id != messageId {
			continue
		}
		m := &session.Messages[i]
		if patch.Content != nil {
			m.Content = *patch.Content
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		if patch.Error != nil {
			m.Error = *patch.Error
		}
		session.UpdatedAt = s.now()
		cp := *m
		updated = &cp
		break
	}
	if updated != nil {
		s.emit(EventMessageUpdated, *updated)
	}
	s.mu.Unlock()

	if updated != nil {
		if err := s.messageRepo.Update(ctx, updated); err != nil {
			s.log.Error("ChatStore", "failed to persist message update", map[string]interface{}{"message_id": messageId.String(), "error": err.Error()})
		}
	}
}

// AppendMessageContent adds a streamed fragment to a message. Chunk events
// carry only the delta; the accumulated content is persisted on finalize.
func (s *ChatStore) AppendMessageContent(sessionId, messageId uuid.UUID, chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionId]
	if !ok {
		return
	}
	for i := range session.Messages {
		if session.Messages[i].Id != messageId {
			continue
		}
		session.Messages[i].Content += chunk
		session.UpdatedAt = s.now()
		s.emit(EventChunk, map[string]interface{}{
			"session_id": sessionId,
			"message_id": messageId,
			"chunk":      chunk,
		})
		return
	}
}

// DeleteMessage removes a single message. Unknown ids are a no-op.
func (s *ChatStore) DeleteMessage(ctx context.Context, sessionId, messageId uuid.UUID) {
	s.mu.Lock()
	session, ok := s.sessions[sessionId]
	if !ok {
		s.mu.Unlock()
		return
	}

	removed := false
	for i := range session.Messages {
		if session.Messages[i].Id == messageId {
			session.Messages = append(session.Messages[:i], session.Messages[i+1:]...)
			session.UpdatedAt = s.now()
			removed = true
			break
		}
	}
	if removed {
		s.emit(EventMessageUpdated, copySession(session))
	}
	s.mu.Unlock()

	if removed {
		if err := s.messageRepo.Delete(ctx, messageId); err != nil {
			s.log.Error("ChatStore", "failed to delete message", map[string]interface{}{"message_id": messageId.String(), "error": err.Error()})
		}
	}
}

// ClearSession removes all messages from a session but keeps the session.
func (s *ChatStore) ClearSession(ctx context.Context, sessionId uuid.UUID) {
	s.mu.Lock()
	session, ok := s.sessions[sessionId]
	if !ok {
		s.mu.Unlock()
		return
	}
	session.Messages = []entity.ChatMessage{}
	session.UpdatedAt = s.now()
	s.emit(EventSessionCleared, map[string]interface{}{"session_id": sessionId})
	s.mu.Unlock()

	if err := s.messageRepo.DeleteBySession(ctx, sessionId); err != nil {
		s.log.Error("ChatStore", "failed to clear session messages", map[string]interface{}{"session_id": sessionId.String(), "error": err.Error()})
	}
}

// DeleteSession removes a session entirely. Deleting the current session
// nulls the current pointer.
func (s *ChatStore) DeleteSession(ctx context.Context, sessionId uuid.UUID) {
	s.mu.Lock()
	if _, ok := s.sessions[sessionId]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.sessions, sessionId)
	clearedCurrent := false
	if s.currentSessionId != nil && *s.currentSessionId == sessionId {
		s.currentSessionId = nil
		clearedCurrent = true
	}
	s.emit(EventSessionDeleted, map[string]interface{}{"session_id": sessionId})
	s.mu.Unlock()

	if err := s.messageRepo.DeleteBySession(ctx, sessionId); err != nil {
		s.log.Error("ChatStore", "failed to delete session messages", map[string]interface{}{"session_id": sessionId.String(), "error": err.Error()})
	}
	if err := s.sessionRepo.Delete(ctx, sessionId); err != nil {
		s.log.Error("ChatStore", "failed to delete session", map[string]interface{}{"session_id": sessionId.String(), "error": err.Error()})
	}
	if clearedCurrent {
		if err := s.appStateRepo.SetCurrentSession(ctx, nil); err != nil {
			s.log.Error("ChatStore", "failed to clear current session pointer", map[string]interface{}{"error": err.Error()})
		}
	}
}

// SetCurrentSession switches the current-session pointer. Unknown ids are a
// no-op.
func (s *ChatStore) SetCurrentSession(ctx context.Context, sessionId uuid.UUID) {
	s.mu.Lock()
	if _, ok := s.sessions[sessionId]; !ok {
		s.mu.Unlock()
		return
	}
	id := sessionId
	s.currentSessionId = &id
	s.mu.Unlock()

	if err := s.appStateRepo.SetCurrentSession(ctx, &id); err != nil {
		s.log.Error("ChatStore", "failed to persist current session pointer", map[string]interface{}{"error": err.Error()})
	}
}

// SetStreaming flips the global streaming flag.
func (s *ChatStore) SetStreaming(streaming bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.streaming = streaming
	s.emit(EventStreaming, map[string]interface{}{"streaming": streaming})
}

// SetError records the last send error. A non-empty error also clears the
// streaming flag. Empty string clears the error.
func (s *ChatStore) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = message
	if message != "" {
		s.streaming = false
	}
	s.emit(EventError, map[string]interface{}{"error": message})
}

// Streaming reports whether a send turn is in flight.
func (s *ChatStore) Streaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming
}

// LastError returns the most recent send error, or "".
func (s *ChatStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Sessions returns copies of all sessions, most recently updated first.
func (s *ChatStore) Sessions() []*entity.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.ChatSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, copySession(sess))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// CurrentSession returns a copy of the current session, or nil.
func (s *ChatStore) CurrentSession() *entity.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentSessionId == nil {
		return nil
	}
	sess, ok := s.sessions[*s.currentSessionId]
	if !ok {
		return nil
	}
	return copySession(sess)
}

// Session returns a copy of one session, or nil.
func (s *ChatStore) Session(sessionId uuid.UUID) *entity.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionId]
	if !ok {
		return nil
	}
	return copySession(sess)
}

// SessionMessages returns copies of a session's messages in insertion order.
func (s *ChatStore) SessionMessages(sessionId uuid.UUID) []entity.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionId]
	if !ok {
		return nil
	}
	msgs := make([]entity.ChatMessage, len(sess.Messages))
	copy(msgs, sess.Messages)
	return msgs
}

func copySession(sess *entity.ChatSession) *entity.ChatSession {
	cp := *sess
	cp.Messages = make([]entity.ChatMessage, len(sess.Messages))
	copy(cp.Messages, sess.Messages)
	return &cp
}
