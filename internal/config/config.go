package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	Provider             string // "ollama" or "cloud"
	OllamaBaseURL        string
	Model                string
	Temperature          float64
	TopP                 float64
	MaxTokens            int
	TimeoutSeconds       int
	StreamTimeoutSeconds int
	MaxRetries           int
	RetryDelayMillis     int
}

type ChatConfig struct {
	MaxMessageLength int
	EnableStreaming  bool
	EnableMemory     bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			Provider:             getEnv("AI_PROVIDER", "ollama"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:                getEnv("LLM_MODEL", "llama3.1:latest"),
			Temperature:          getEnvAsFloat("LLM_TEMPERATURE", 0.8),
			TopP:                 getEnvAsFloat("LLM_TOP_P", 0.9),
			MaxTokens:            getEnvAsInt("LLM_MAX_TOKENS", 2048),
			TimeoutSeconds:       getEnvAsInt("LLM_TIMEOUT_SECONDS", 30),
			StreamTimeoutSeconds: getEnvAsInt("LLM_STREAM_TIMEOUT_SECONDS", 120),
			MaxRetries:           getEnvAsInt("LLM_MAX_RETRIES", 2),
			RetryDelayMillis:     getEnvAsInt("LLM_RETRY_DELAY_MS", 1000),
		},
		Chat: ChatConfig{
			MaxMessageLength: getEnvAsInt("MAX_MESSAGE_LENGTH", 2000),
			EnableStreaming:  getEnvAsBool("ENABLE_STREAMING", true),
			EnableMemory:     getEnvAsBool("ENABLE_MEMORY", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
