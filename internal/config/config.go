package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Blob      BlobConfig
	Assistant AssistantConfig
	Cache     CacheConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	FileEventTopic     string
}

type DatabaseConfig struct {
	Connection string
}

type BlobConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Bucket       string
	Secure       bool
	SignedURLTTL time.Duration
}

type AssistantConfig struct {
	BaseURL           string
	APIKey            string
	Model             string
	GenerationTimeout time.Duration
}

type CacheConfig struct {
	Provider string // "memory" or "redis"
	RedisURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "10000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:10000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			FileEventTopic:     getEnv("FILE_EVENT_TOPIC_NAME", "FILE_EVENTS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Blob: BlobConfig{
			Endpoint:     getEnv("BLOB_ENDPOINT", "localhost:9000"),
			AccessKey:    getEnv("BLOB_ACCESS_KEY", ""),
			SecretKey:    getEnv("BLOB_SECRET_KEY", ""),
			Bucket:       getEnv("BLOB_BUCKET", "zorva-uploads"),
			Secure:       getEnvAsBool("BLOB_SECURE", false),
			SignedURLTTL: getEnvAsDuration("SIGNED_URL_TTL", time.Hour),
		},
		Assistant: AssistantConfig{
			BaseURL:           getEnv("ASSISTANT_BASE_URL", "https://api.openai.com/v1"),
			APIKey:            getEnv("ASSISTANT_API_KEY", ""),
			Model:             getEnv("ASSISTANT_MODEL", "gpt-4o"),
			GenerationTimeout: getEnvAsDuration("GENERATION_TIMEOUT", 120*time.Second),
		},
		Cache: CacheConfig{
			Provider: getEnv("CACHE_PROVIDER", "memory"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
