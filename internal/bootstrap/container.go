package bootstrap

import (
	"log"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/config"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/controller"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/logger"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/repository/implementation"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/service"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/embedding"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/llm/factory"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/manifest"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	GuideController     *controller.GuideController
	KnowledgeController *controller.KnowledgeController

	// Background services, run by main.go
	ConsumerService *service.ConsumerService

	// Services exposed for the CLI
	IngestionService *service.IngestionService
	RetrievalService *service.RetrievalService

	Logger logger.ILogger
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

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.PrimaryModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GroqApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.PrimaryModel)

	// 4. Repositories
	chunkRepository := implementation.NewChunkRepository(db)
	runRepository := implementation.NewIngestionRunRepository(db)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Ingestion.EventTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Ingestion.EventTopic, runRepository, sysLogger)

	manifestStore := manifest.NewStore(cfg.Ingestion.ManifestPath)
	ingestionService := service.NewIngestionService(
		cfg.Ingestion,
		chunkRepository,
		embeddingProvider,
		manifestStore,
		publisherService,
		sysLogger,
	)

	retrievalService := service.NewRetrievalService(chunkRepository, runRepository, embeddingProvider, sysLogger)

	guideService := service.NewGuideService(
		retrievalService,
		llmProvider,
		cfg.Ai.PrimaryModel,
		cfg.Ai.FallbackModel,
		cfg.Ai.MaxTokens,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		GuideController:     controller.NewGuideController(guideService, sysLogger),
		KnowledgeController: controller.NewKnowledgeController(ingestionService, retrievalService, sysLogger),
		ConsumerService:     consumerService,
		IngestionService:    ingestionService,
		RetrievalService:    retrievalService,
		Logger:              sysLogger,
	}
}
