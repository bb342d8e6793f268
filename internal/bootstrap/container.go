package bootstrap

import (
	"context"
	"log"

	"faq-knowledge-be/internal/config"
	"faq-knowledge-be/internal/controller"
	"faq-knowledge-be/internal/pkg/logger"
	"faq-knowledge-be/internal/pkg/mailer"
	"faq-knowledge-be/internal/pkg/serverutils"
	"faq-knowledge-be/internal/repository/memory"
	"faq-knowledge-be/internal/repository/unitofwork"
	"faq-knowledge-be/internal/service"
	"faq-knowledge-be/pkg/embedding"
	"faq-knowledge-be/pkg/embedding/jina"
	"faq-knowledge-be/pkg/review"
	"faq-knowledge-be/pkg/similarity"

	pktNats "faq-knowledge-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController            controller.IAuthController
	CleanupController         controller.ICleanupController
	PIIReviewController       controller.IPIIReviewController
	DuplicateReviewController controller.IDuplicateReviewController
	FAQController             controller.IFAQController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	serverutils.SetJwtSecret(cfg.Keys.JWTSecret)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Embedding Provider
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// In-memory pending working set for the review dashboard
	pendingCache := memory.NewPendingCache()

	// Similarity gateway over the pgvector index
	gateway := similarity.NewGateway(
		embeddingProvider,
		uowFactory,
		sysLogger,
		cfg.Cleanup.GatewayFloor,
		cfg.Cleanup.GatewayTimeout,
	)
	recordStore := service.NewFAQRecordStore(uowFactory)

	// Review decision state machine
	machine := review.NewMachine(review.Config{
		AllowRereview: cfg.Review.AllowRereview,
	})

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory)

	cleanupService := service.NewCleanupService(
		uowFactory,
		gateway,
		recordStore,
		cfg.Cleanup.SimilarityThreshold,
		sysLogger,
		rdb,
		natsPub,
		emailService,
		cfg.SMTP.SummaryRecipient,
	)

	piiReviewService := service.NewPIIReviewService(
		uowFactory,
		machine,
		sysLogger,
		pendingCache,
		natsPub,
	)

	duplicateReviewService := service.NewDuplicateReviewService(
		uowFactory,
		machine,
		sysLogger,
		pendingCache,
		publisherService,
		natsPub,
	)

	faqService := service.NewFAQService(
		uowFactory,
		gateway,
		cfg.Cleanup.SimilarityThreshold,
		sysLogger,
		pendingCache,
		publisherService,
		natsPub,
	)

	// 4. Controllers
	return &Container{
		AuthController:            controller.NewAuthController(authService),
		CleanupController:         controller.NewCleanupController(cleanupService),
		PIIReviewController:       controller.NewPIIReviewController(piiReviewService),
		DuplicateReviewController: controller.NewDuplicateReviewController(duplicateReviewService),
		FAQController:             controller.NewFAQController(faqService),

		ConsumerService: consumerService,
	}
}
