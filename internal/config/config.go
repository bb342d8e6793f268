package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
	Cleanup  CleanupConfig
	Review   ReviewConfig
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

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	// SummaryRecipient receives the cleanup run summary mail; empty
	// disables the mail entirely.
	SummaryRecipient string
}

type APIKeys struct {
	GoogleGemini string
	Jina         string
	JWTSecret    string
	EmbedTopic   string // embed-queue topic name
}

type AIConfig struct {
	EmbeddingProvider string // "gemini", "ollama" or "jina"
	OllamaBaseURL     string
	OllamaModel       string
}

type CleanupConfig struct {
	// SimilarityThreshold is the minimum score for two FAQs to count as
	// duplicates of one another.
	SimilarityThreshold float64
	// GatewayFloor is the similarity index's own pre-filter, kept below the
	// threshold so borderline matches stay visible.
	GatewayFloor float64
	// GatewayTimeout bounds each similarity index call.
	GatewayTimeout time.Duration
}

type ReviewConfig struct {
	// AllowRereview permits moving a record between terminal statuses after
	// the first decision.
	AllowRereview bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:             getEnv("SMTP_HOST", ""),
			Port:             getEnvAsInt("SMTP_PORT", 587),
			Email:            getEnv("SMTP_EMAIL", ""),
			Password:         getEnv("SMTP_PASSWORD", ""),
			SenderName:       getEnv("SMTP_SENDER_NAME", "FAQ Knowledge Base"),
			SummaryRecipient: getEnv("CLEANUP_SUMMARY_RECIPIENT", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Jina:         getEnv("JINA_API_KEY", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
			EmbedTopic:   getEnv("EMBED_FAQ_CONTENT_TOPIC_NAME", "EMBED_FAQ_CONTENT"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
		},
		Cleanup: CleanupConfig{
			SimilarityThreshold: getEnvAsFloat("CLEANUP_SIMILARITY_THRESHOLD", 0.85),
			GatewayFloor:        getEnvAsFloat("CLEANUP_GATEWAY_FLOOR", 0.5),
			GatewayTimeout:      getEnvAsDuration("CLEANUP_GATEWAY_TIMEOUT", 10*time.Second),
		},
		Review: ReviewConfig{
			AllowRereview: getEnvAsBool("REVIEW_ALLOW_REREVIEW", true),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
