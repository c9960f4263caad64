package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Supabase   SupabaseConfig
	Keys       APIKeys
	Ai         AIConfig
	Retrieval  RetrievalConfig
	RateLimit  RateLimitConfig
	Cache      CacheConfig
	VerseOfDay VerseOfDayConfig
	Analytics  AnalyticsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	// Backend picks the verse store: "supabase" (REST) or "postgres"
	// (direct GORM connection to the same schema).
	Backend    string
	Connection string
}

type SupabaseConfig struct {
	URL     string
	AnonKey string
}

type APIKeys struct {
	OpenAI string
}

type AIConfig struct {
	LLMProvider         string // "openai" or "ollama"
	LLMModel            string
	EmbeddingProvider   string // "openai" or "ollama"
	EmbeddingModel      string
	EmbeddingDimensions int
	OllamaBaseURL       string
}

type RetrievalConfig struct {
	SearchLimit   int
	PerSurahCap   int
	MaxCandidates int
}

type RateLimitConfig struct {
	Backend    string // "memory" or "redis"
	Window     time.Duration
	Max        int
	SweepEvery int
}

type CacheConfig struct {
	TTL      time.Duration
	Capacity int
}

type VerseOfDayConfig struct {
	FilePath string
}

type AnalyticsConfig struct {
	TopicName string
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
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Backend:    getEnv("VERSE_STORE_BACKEND", "supabase"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Supabase: SupabaseConfig{
			URL:     getEnv("SUPABASE_URL", ""),
			AnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		},
		Keys: APIKeys{
			OpenAI: getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:         getEnv("LLM_PROVIDER", "openai"),
			LLMModel:            getEnv("LLM_MODEL", "gpt-4o-mini"),
			EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:      getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			EmbeddingDimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 1536),
			OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Retrieval: RetrievalConfig{
			SearchLimit:   getEnvAsInt("RETRIEVAL_SEARCH_LIMIT", 20),
			PerSurahCap:   getEnvAsInt("RETRIEVAL_PER_SURAH_CAP", 2),
			MaxCandidates: getEnvAsInt("RETRIEVAL_MAX_CANDIDATES", 25),
		},
		RateLimit: RateLimitConfig{
			Backend:    getEnv("RATE_LIMIT_BACKEND", "memory"),
			Window:     getEnvAsDuration("RATE_LIMIT_WINDOW", time.Hour),
			Max:        getEnvAsInt("RATE_LIMIT_MAX", 20),
			SweepEvery: getEnvAsInt("RATE_LIMIT_SWEEP_EVERY", 10),
		},
		Cache: CacheConfig{
			TTL:      getEnvAsDuration("RESULT_CACHE_TTL", 24*time.Hour),
			Capacity: getEnvAsInt("RESULT_CACHE_CAPACITY", 500),
		},
		VerseOfDay: VerseOfDayConfig{
			FilePath: getEnv("VERSE_OF_DAY_FILE", "data/verses.json"),
		},
		Analytics: AnalyticsConfig{
			TopicName: getEnv("ANALYTICS_TOPIC_NAME", "ANALYTICS_EVENTS"),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
