package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/pkg/logger"
	"cosmic-chat-be/internal/store"
	"cosmic-chat-be/pkg/events"
	natspkg "cosmic-chat-be/pkg/nats"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService refreshes conversation memory after each finalized
// assistant reply and mirrors the event to NATS for external listeners.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	chatStore      *store.ChatStore
	memoryService  IMemoryService
	eventPublisher *natspkg.Publisher
	log            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	chatStore *store.ChatStore,
	memoryService IMemoryService,
	eventPublisher *natspkg.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		chatStore:      chatStore,
		memoryService:  memoryService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.MessageFinalizedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ConsumerService", "failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid messages would retry forever otherwise
		return
	}

	sessionId, err := uuid.Parse(payload.SessionId)
	if err != nil {
		cs.log.Error("ConsumerService", "invalid session id in message", map[string]interface{}{"session_id": payload.SessionId})
		msg.Ack()
		return
	}

	history := cs.chatStore.SessionMessages(sessionId)
	if history == nil {
		// Session deleted between finalize and consume. Nothing to refresh.
		msg.Ack()
		return
	}

	cs.memoryService.UpdateMemory(ctx, payload.CharacterId, sessionId, history)

	if cs.eventPublisher != nil {
		evt := events.NewMessageFinalized(payload.SessionId, payload.MessageId, payload.CharacterId)
		// External mirroring is auxiliary; never retry the whole message
		// for a NATS hiccup.
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.log.Warn("ConsumerService", "failed to publish NATS event", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}
