package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cosmic-chat-be/internal/config"
	"cosmic-chat-be/internal/constant"
	"cosmic-chat-be/internal/controller"
	"cosmic-chat-be/internal/pkg/logger"
	"cosmic-chat-be/internal/repository/implementation"
	"cosmic-chat-be/internal/service"
	"cosmic-chat-be/internal/store"
	"cosmic-chat-be/internal/websocket"
	"cosmic-chat-be/pkg/llm/factory"
	pktNats "cosmic-chat-be/pkg/nats"
	"cosmic-chat-be/pkg/prompt"
	"cosmic-chat-be/pkg/voice"
)

type Container struct {
	// Controllers
	ChatbotController   controller.IChatbotController
	CharacterController controller.ICharacterController
	SettingsController  controller.ISettingsController
	MemoryController    controller.IMemoryController
	HealthController    controller.IHealthController
	VoiceController     controller.IVoiceController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize Generation Provider based on Config
	llmProvider, err := factory.NewProvider(factory.Settings{
		Provider:             cfg.Ai.Provider,
		OllamaBaseURL:        cfg.Ai.OllamaBaseURL,
		Model:                cfg.Ai.Model,
		Temperature:          cfg.Ai.Temperature,
		TopP:                 cfg.Ai.TopP,
		MaxTokens:            cfg.Ai.MaxTokens,
		TimeoutSeconds:       cfg.Ai.TimeoutSeconds,
		StreamTimeoutSeconds: cfg.Ai.StreamTimeoutSeconds,
		MaxRetries:           cfg.Ai.MaxRetries,
		RetryDelayMillis:     cfg.Ai.RetryDelayMillis,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (optional, enables cross-instance websocket fan-out)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 3. Repositories
	sessionRepo := implementation.NewChatSessionRepository(db)
	messageRepo := implementation.NewChatMessageRepository(db)
	memoryRepo := implementation.NewMemoryRepository(db)
	appStateRepo := implementation.NewAppStateRepository(db)
	settingsRepo := implementation.NewSettingsRepository(db)

	// 4. State
	chatStore := store.NewChatStore(sessionRepo, messageRepo, appStateRepo, sysLogger)
	if err := chatStore.Load(context.Background()); err != nil {
		log.Printf("[WARN] Failed to hydrate chat state: %v", err)
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(chatStore, rdb, sysLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(constant.TopicMessageFinalized, pubSub)
	characterService := service.NewCharacterService()
	settingsService := service.NewSettingsService(settingsRepo, sysLogger)
	memoryService := service.NewMemoryService(memoryRepo, sysLogger)
	promptBuilder := prompt.NewBuilder()

	chatService := service.NewChatService(
		chatStore,
		characterService,
		settingsService,
		memoryService,
		promptBuilder,
		llmProvider,
		publisherService,
		sysLogger,
		cfg.Chat.MaxMessageLength,
		cfg.Chat.EnableStreaming,
		cfg.Chat.EnableMemory,
	)

	voiceService := service.NewVoiceService(
		voice.NewUnconfiguredTTS(),
		voice.NewUnconfiguredSTT(),
		settingsService,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		constant.TopicMessageFinalized,
		chatStore,
		memoryService,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		ChatbotController:   controller.NewChatbotController(chatService),
		CharacterController: controller.NewCharacterController(characterService),
		SettingsController:  controller.NewSettingsController(settingsService),
		MemoryController:    controller.NewMemoryController(memoryService),
		HealthController:    controller.NewHealthController(llmProvider),
		VoiceController:     controller.NewVoiceController(voiceService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
