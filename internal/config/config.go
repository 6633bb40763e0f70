package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ingestion IngestionConfig
	Ai        AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type IngestionConfig struct {
	PdfsPath     string
	ManifestPath string
	ChunkSize    int
	ChunkOverlap int
	EventTopic   string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	GeminiApiKey      string
	LLMProvider       string // "groq" or "ollama"
	GroqApiKey        string
	PrimaryModel      string
	FallbackModel     string
	MaxTokens         int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ingestion: IngestionConfig{
			PdfsPath:     getEnv("PDFS_PATH", "./data/pdfs"),
			ManifestPath: getEnv("MANIFEST_PATH", "./data/ingestion_manifest.json"),
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 1000),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 200),
			EventTopic:   getEnv("INGESTION_EVENT_TOPIC", "INGESTION_COMPLETED"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiApiKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			LLMProvider:       getEnv("LLM_PROVIDER", "groq"),
			GroqApiKey:        getEnv("GROQ_API_KEY", ""),
			PrimaryModel:      getEnv("LLM_PRIMARY_MODEL", "llama3-70b-8192"),
			FallbackModel:     getEnv("LLM_FALLBACK_MODEL", "llama3-8b-8192"),
			MaxTokens:         getEnvAsInt("LLM_MAX_TOKENS", 1000),
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
