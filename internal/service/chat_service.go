package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"

	"cosmic-chat-be/internal/character"
	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/entity"
	"cosmic-chat-be/internal/pkg/logger"
	"cosmic-chat-be/internal/store"
	"cosmic-chat-be/pkg/llm"
	"cosmic-chat-be/pkg/prompt"
)

var (
	ErrNoCharacterSelected = errors.New("no character selected")
	ErrSessionNotFound     = errors.New("session not found")
	ErrMessageTooLong      = errors.New("message exceeds maximum length")
	ErrEmptyMessage        = errors.New("message content is empty")
)

type IChatService interface {
	// SendMessage runs one full exchange: user message in, assistant reply
	// out. Concurrent calls are serialized; each call is a complete turn.
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	// StopGeneration aborts the in-flight turn, if any. Content streamed so
	// far is preserved.
	StopGeneration()
	CreateSession(ctx context.Context, characterId string) (*entity.ChatSession, error)
	Sessions() []*entity.ChatSession
	CurrentSession() *entity.ChatSession
	SessionMessages(sessionId uuid.UUID) ([]entity.ChatMessage, error)
	SelectSession(ctx context.Context, sessionId uuid.UUID) error
	ClearSession(ctx context.Context, sessionId uuid.UUID) error
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
	DeleteMessage(ctx context.Context, sessionId, messageId uuid.UUID) error
	State() *dto.ChatStateResponse
}

type chatService struct {
	chatStore        *store.ChatStore
	characterService ICharacterService
	settingsService  ISettingsService
	memoryService    IMemoryService
	promptBuilder    *prompt.Builder
	provider         llm.Provider
	publisherService IPublisherService
	log              logger.ILogger
	maxMessageLength int
	streamingEnabled bool
	memoryEnabled    bool

	// turnMu serializes send turns so at most one generation runs at a time.
	turnMu sync.Mutex

	cancelMu sync.Mutex
	cancel   context.CancelFunc
}

func NewChatService(
	chatStore *store.ChatStore,
	characterService ICharacterService,
	settingsService ISettingsService,
	memoryService IMemoryService,
	promptBuilder *prompt.Builder,
	provider llm.Provider,
	publisherService IPublisherService,
	log logger.ILogger,
	maxMessageLength int,
	streamingEnabled bool,
	memoryEnabled bool,
) IChatService {
	return &chatService{
		chatStore:        chatStore,
		characterService: characterService,
		settingsService:  settingsService,
		memoryService:    memoryService,
		promptBuilder:    promptBuilder,
		provider:         provider,
		publisherService: publisherService,
		log:              log,
		maxMessageLength: maxMessageLength,
		streamingEnabled: streamingEnabled,
		memoryEnabled:    memoryEnabled,
	}
}

func (cs *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	cs.turnMu.Lock()
	defer cs.turnMu.Unlock()

	if req.Content == "" {
		return nil, ErrEmptyMessage
	}
	if cs.maxMessageLength > 0 && len(req.Content) > cs.maxMessageLength {
		return nil, ErrMessageTooLong
	}

	char := cs.characterService.Current()
	if char == nil {
		cs.chatStore.SetError(ErrNoCharacterSelected.Error())
		return nil, ErrNoCharacterSelected
	}

	settings := cs.settingsService.Get(ctx)
	streaming := settings.EnableStreaming
	if req.Stream != nil {
		streaming = *req.Stream
	}
	if !cs.streamingEnabled {
		streaming = false
	}

	session := cs.chatStore.CurrentSession()
	if session == nil || session.CharacterId != char.Id {
		session = cs.chatStore.CreateSession(ctx, char.Id, char.Name)
	}

	userMessage, assistantMessage, err := cs.appendTurnMessages(ctx, session.Id, char.Id, req.Content, streaming)
	if err != nil {
		return nil, err
	}

	cs.chatStore.SetStreaming(true)

	turnCtx, cancel := context.WithCancel(ctx)
	cs.setCancel(cancel)
	defer cs.setCancel(nil)
	defer cancel()

	systemPrompt := cs.buildSystemPrompt(turnCtx, char, session.Id, settings)
	turns := cs.promptBuilder.FormatTurns(cs.chatStore.SessionMessages(session.Id))

	var genErr error
	if streaming {
		genErr = cs.provider.GenerateStream(turnCtx, turns, systemPrompt, func(chunk string) {
			cs.chatStore.AppendMessageContent(session.Id, assistantMessage.Id, chunk)
		})
		if genErr == nil {
			cs.finalizeMessage(ctx, session.Id, assistantMessage.Id, nil, entity.StatusSent, "")
		}
	} else {
		var text string
		text, genErr = cs.provider.Generate(turnCtx, turns, systemPrompt)
		if genErr == nil {
			cs.finalizeMessage(ctx, session.Id, assistantMessage.Id, &text, entity.StatusSent, "")
		}
	}

	if genErr != nil {
		msg := genErr.Error()
		cs.finalizeMessage(ctx, session.Id, assistantMessage.Id, nil, entity.StatusError, msg)
		cs.chatStore.SetError(msg)
		cs.chatStore.SetStreaming(false)
		cs.log.Error("ChatService", "send message failed", map[string]interface{}{
			"session_id": session.Id.String(),
			"kind":       string(llm.KindOf(genErr)),
			"error":      msg,
		})
		return nil, genErr
	}

	cs.chatStore.SetError("")
	cs.chatStore.SetStreaming(false)

	cs.publishFinalized(ctx, session.Id, assistantMessage.Id, char.Id)

	final := cs.findMessage(session.Id, assistantMessage.Id)
	return &dto.SendMessageResponse{
		SessionId:        session.Id.String(),
		UserMessage:      ToMessageResponse(userMessage),
		AssistantMessage: ToMessageResponse(final),
		Streamed:         streaming,
	}, nil
}

func (cs *chatService) StopGeneration() {
	cs.cancelMu.Lock()
	defer cs.cancelMu.Unlock()
	if cs.cancel != nil {
		cs.cancel()
	}
}

func (cs *chatService) CreateSession(ctx context.Context, characterId string) (*entity.ChatSession, error) {
	char, ok := character.ById(characterId)
	if !ok {
		return nil, ErrCharacterNotFound
	}
	return cs.chatStore.CreateSession(ctx, char.Id, char.Name), nil
}

func (cs *chatService) Sessions() []*entity.ChatSession {
	return cs.chatStore.Sessions()
}

func (cs *chatService) CurrentSession() *entity.ChatSession {
	return cs.chatStore.CurrentSession()
}

func (cs *chatService) SessionMessages(sessionId uuid.UUID) ([]entity.ChatMessage, error) {
	if cs.chatStore.Session(sessionId) == nil {
		return nil, ErrSessionNotFound
	}
	return cs.chatStore.SessionMessages(sessionId), nil
}

func (cs *chatService) SelectSession(ctx context.Context, sessionId uuid.UUID) error {
	if cs.chatStore.Session(sessionId) == nil {
		return ErrSessionNotFound
	}
	cs.chatStore.SetCurrentSession(ctx, sessionId)
	return nil
}

func (cs *chatService) ClearSession(ctx context.Context, sessionId uuid.UUID) error {
	if cs.chatStore.Session(sessionId) == nil {
		return ErrSessionNotFound
	}
	cs.chatStore.ClearSession(ctx, sessionId)
	return nil
}

func (cs *chatService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	if cs.chatStore.Session(sessionId) == nil {
		return ErrSessionNotFound
	}
	cs.chatStore.DeleteSession(ctx, sessionId)
	return nil
}

func (cs *chatService) DeleteMessage(ctx context.Context, sessionId, messageId uuid.UUID) error {
	if cs.chatStore.Session(sessionId) == nil {
		return ErrSessionNotFound
	}
	cs.chatStore.DeleteMessage(ctx, sessionId, messageId)
	return nil
}

func (cs *chatService) State() *dto.ChatStateResponse {
	state := &dto.ChatStateResponse{
		Streaming: cs.chatStore.Streaming(),
		LastError: cs.chatStore.LastError(),
	}
	if current := cs.chatStore.CurrentSession(); current != nil {
		state.CurrentSessionId = current.Id.String()
	}
	return state
}

// --- internals ---

func (cs *chatService) setCancel(cancel context.CancelFunc) {
	cs.cancelMu.Lock()
	cs.cancel = cancel
	cs.cancelMu.Unlock()
}

// appendTurnMessages adds the user message and the assistant placeholder to
// the session. A concurrent session delete makes the store refuse the writes,
// in which case the turn is abandoned before any provider call.
func (cs *chatService) appendTurnMessages(ctx context.Context, sessionId uuid.UUID, characterId, content string, streaming bool) (*entity.ChatMessage, *entity.ChatMessage, error) {
	userMessage := cs.chatStore.AddMessage(ctx, sessionId, entity.ChatMessage{
		Role:        entity.RoleUser,
		Content:     content,
		CharacterId: characterId,
		Status:      entity.StatusSent,
	})
	if userMessage == nil {
		return nil, nil, ErrSessionNotFound
	}

	placeholderStatus := entity.StatusSending
	if streaming {
		placeholderStatus = entity.StatusStreaming
	}
	assistantMessage := cs.chatStore.AddMessage(ctx, sessionId, entity.ChatMessage{
		Role:        entity.RoleAssistant,
		Content:     "",
		CharacterId: characterId,
		Status:      placeholderStatus,
	})
	if assistantMessage == nil {
		return nil, nil, ErrSessionNotFound
	}

	return userMessage, assistantMessage, nil
}

func (cs *chatService) buildSystemPrompt(ctx context.Context, char *character.Character, sessionId uuid.UUID, settings *entity.AppSettings) string {
	if !cs.memoryEnabled || !settings.EnableMemory {
		return cs.promptBuilder.BuildSystemPrompt(char)
	}
	mc := cs.memoryService.BuildMemoryContext(ctx, char.Id, sessionId, cs.chatStore.SessionMessages(sessionId))
	return cs.promptBuilder.BuildContextualPrompt(char, mc)
}

func (cs *chatService) finalizeMessage(ctx context.Context, sessionId, messageId uuid.UUID, content *string, status entity.MessageStatus, errMsg string) {
	patch := store.MessagePatch{Status: &status}
	if content != nil {
		patch.Content = content
	}
	if errMsg != "" {
		patch.Error = &errMsg
	}
	cs.chatStore.UpdateMessage(ctx, sessionId, messageId, patch)
}

func (cs *chatService) publishFinalized(ctx context.Context, sessionId, messageId uuid.UUID, characterId string) {
	payload, err := json.Marshal(dto.MessageFinalizedMessage{
		SessionId:   sessionId.String(),
		MessageId:   messageId.String(),
		CharacterId: characterId,
	})
	if err != nil {
		cs.log.Error("ChatService", "failed to marshal finalized event", map[string]interface{}{"error": err.Error()})
		return
	}
	// Memory refresh is auxiliary; a failed publish never fails the turn.
	if err := cs.publisherService.Publish(ctx, payload); err != nil {
		cs.log.Warn("ChatService", "failed to publish finalized event", map[string]interface{}{"error": err.Error()})
	}
}

func (cs *chatService) findMessage(sessionId, messageId uuid.UUID) *entity.ChatMessage {
	for _, m := range cs.chatStore.SessionMessages(sessionId) {
		if m.Id == messageId {
			cp := m
			return &cp
		}
	}
	return nil
}

// ToMessageResponse converts a message entity into its API shape.
func ToMessageResponse(m *entity.ChatMessage) *dto.MessageResponse {
	if m == nil {
		return nil
	}
	return &dto.MessageResponse{
		Id:          m.Id.String(),
		SessionId:   m.SessionId.String(),
		Role:        string(m.Role),
		Content:     m.Content,
		CharacterId: m.CharacterId,
		Status:      string(m.Status),
		Error:       m.Error,
		CreatedAt:   m.CreatedAt,
	}
}

// ToSessionResponse converts a session entity into its API shape.
func ToSessionResponse(s *entity.ChatSession) *dto.SessionResponse {
	msgs := make([]dto.MessageResponse, len(s.Messages))
	for i := range s.Messages {
		msgs[i] = *ToMessageResponse(&s.Messages[i])
	}
	return &dto.SessionResponse{
		Id:          s.Id.String(),
		CharacterId: s.CharacterId,
		Title:       s.Title,
		Messages:    msgs,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
