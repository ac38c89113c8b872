package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"cosmic-chat-be/internal/pkg/logger"
	"cosmic-chat-be/internal/store"
)

// Hub fans chat state events out to every connected browser tab. The app is
// single-user, so every client receives every event.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out. Optional.
	rdb *redis.Client

	// instanceId marks payloads this hub published, so its own Redis echo is
	// not delivered to local clients a second time.
	instanceId string

	chatStore *store.ChatStore
	logger    logger.ILogger
}

// redisEnvelope wraps an event payload on the Redis channel with its origin.
type redisEnvelope struct {
	Instance string          `json:"instance"`
	Data     json.RawMessage `json:"data"`
}

func NewHub(chatStore *store.ChatStore, rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		chatStore:  chatStore,
		logger:     log,
	}
}

func (h *Hub) Run() {
	events, _ := h.chatStore.Subscribe()
	go h.consumeStoreEvents(events)

	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"clients": h.clientCount()})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"clients": h.clientCount()})
		}
	}
}

func (h *Hub) consumeStoreEvents(events <-chan store.Event) {
	for ev := range events {
		h.Broadcast(ev)
	}
}

// Broadcast sends one event to all connected clients and mirrors it to Redis
// for other instances.
func (h *Hub) Broadcast(ev store.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("Hub", "failed to marshal event", map[string]interface{}{"type": ev.Type, "error": err.Error()})
		return
	}

	h.broadcastRaw(data)

	if h.rdb != nil {
		payload, err := json.Marshal(redisEnvelope{Instance: h.instanceId, Data: data})
		if err != nil {
			h.logger.Error("Hub", "failed to marshal redis envelope", map[string]interface{}{"error": err.Error()})
			return
		}
		h.rdb.Publish(context.Background(), "chat_events", payload)
	}
}

func (h *Hub) broadcastRaw(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow client. Drop it rather than stall the hub.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "chat_events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.handleRedisPayload([]byte(msg.Payload))
	}
	log.Printf("Redis subscription closed")
}

func (h *Hub) handleRedisPayload(payload []byte) {
	var env redisEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		h.logger.Warn("Hub", "discarding malformed redis payload", map[string]interface{}{"error": err.Error()})
		return
	}
	// Local clients already got this event directly from Broadcast.
	if env.Instance == h.instanceId {
		return
	}
	h.broadcastRaw(env.Data)
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
