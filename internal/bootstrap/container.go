package bootstrap

import (
	"log"

	"ayat-reflection-be/internal/config"
	"ayat-reflection-be/internal/controller"
	"ayat-reflection-be/internal/pkg/logger"
	"ayat-reflection-be/internal/service"
	"ayat-reflection-be/pkg/embedding"
	"ayat-reflection-be/pkg/llm/factory"
	"ayat-reflection-be/pkg/ratelimit"
	"ayat-reflection-be/pkg/reflection/executor"
	"ayat-reflection-be/pkg/resultcache"
	"ayat-reflection-be/pkg/versestore"
	"ayat-reflection-be/pkg/versestore/postgres"
	"ayat-reflection-be/pkg/versestore/supabase"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AyatController      controller.IAyatController
	VerseController     controller.IVerseController
	AnalyticsController controller.IAnalyticsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// System logger, exposed so main can Sync on shutdown
	Logger logger.ILogger
}

// NewContainer wires the whole dependency graph. db is only used when
// the verse store backend is "postgres"; with Supabase it may be nil.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel, cfg.Ai.EmbeddingDimensions)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.OpenAI,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Verse Store
	var verseStore versestore.Store
	var analyticsSink versestore.AnalyticsSink
	if cfg.Database.Backend == "postgres" && db != nil {
		pgStore := postgres.NewStore(db)
		verseStore, analyticsSink = pgStore, pgStore
		log.Printf("[INFO] Using Verse Store: POSTGRES")
	} else {
		sbClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
		verseStore, analyticsSink = sbClient, sbClient
		log.Printf("[INFO] Using Verse Store: SUPABASE")
	}

	// 5. Gatekeepers
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		limiter = ratelimit.NewRedisWindow(rdb, cfg.RateLimit.Window, cfg.RateLimit.Max, func(msg string, err error) {
			sysLogger.Warn("ratelimit", msg, map[string]interface{}{"error": err.Error()})
		})
		log.Printf("[INFO] Using Rate Limiter: REDIS")
	} else {
		limiter = ratelimit.NewFixedWindow(cfg.RateLimit.Window, cfg.RateLimit.Max, cfg.RateLimit.SweepEvery)
		log.Printf("[INFO] Using Rate Limiter: MEMORY")
	}

	resultCache := resultcache.New(cfg.Cache.TTL, cfg.Cache.Capacity)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Analytics.TopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Analytics.TopicName, analyticsSink)

	ayatService := service.NewAyatService(
		llmProvider,
		embeddingProvider,
		verseStore,
		limiter,
		resultCache,
		executor.Config{
			SearchLimit:   cfg.Retrieval.SearchLimit,
			PerSurahCap:   cfg.Retrieval.PerSurahCap,
			MaxCandidates: cfg.Retrieval.MaxCandidates,
		},
	)
	analyticsService := service.NewAnalyticsService(publisherService)
	verseOfDayService := service.NewVerseOfDayService(cfg.VerseOfDay.FilePath)

	// 7. Controllers
	return &Container{
		AyatController:      controller.NewAyatController(ayatService),
		VerseController:     controller.NewVerseController(verseOfDayService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
