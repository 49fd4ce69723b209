package bootstrap

import (
	"log"

	"zorva-be/internal/config"
	"zorva-be/internal/controller"
	"zorva-be/internal/pkg/logger"
	"zorva-be/internal/repository/unitofwork"
	"zorva-be/internal/service"
	"zorva-be/pkg/assistant"
	"zorva-be/pkg/blobstore"
	"zorva-be/pkg/cache"
	"zorva-be/pkg/corpus"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AccountController      controller.IAccountController
	FileController         controller.IFileController
	ChatController         controller.IChatController
	ConversationController controller.IConversationController
	InsightController      controller.IInsightController

	// Background Services (Exposed for main.go to run)
	ReconcilerService service.IReconcilerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External Capabilities
	assistantClient := assistant.NewClient(
		cfg.Assistant.BaseURL,
		cfg.Assistant.APIKey,
		cfg.Assistant.Model,
		cfg.Assistant.GenerationTimeout,
	)
	corpusAdapter := corpus.NewAdapter(assistantClient)

	blobs, err := blobstore.NewMinioStore(blobstore.MinioConfig{
		Endpoint:  cfg.Blob.Endpoint,
		AccessKey: cfg.Blob.AccessKey,
		SecretKey: cfg.Blob.SecretKey,
		Bucket:    cfg.Blob.Bucket,
		Secure:    cfg.Blob.Secure,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize blob store: %v", err)
	}

	// Signed-URL cache: memory for single instances, redis when scaled out
	var urlCache cache.Cache
	if cfg.Cache.Provider == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Failed to connect to redis cache: %v", err)
		}
		urlCache = redisCache
		log.Printf("[INFO] Using Cache Provider: REDIS")
	} else {
		urlCache = cache.NewMemoryCache(cfg.Blob.SignedURLTTL)
		log.Printf("[INFO] Using Cache Provider: MEMORY")
	}
	signer := blobstore.NewCachedSigner(blobs, urlCache, cfg.Blob.SignedURLTTL)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.FileEventTopic)
	accountService := service.NewAccountService(uowFactory, assistantClient)
	fileService := service.NewFileService(uowFactory, accountService, corpusAdapter, blobs, signer, publisherService)
	chatService := service.NewChatService(uowFactory, accountService, assistantClient)
	conversationService := service.NewConversationService(uowFactory, accountService, assistantClient)
	insightService := service.NewInsightService(uowFactory, accountService)
	reconcilerService := service.NewReconcilerService(pubSub, cfg.App.FileEventTopic, uowFactory, corpusAdapter, blobs)

	// 5. Controllers
	return &Container{
		AccountController:      controller.NewAccountController(accountService),
		FileController:         controller.NewFileController(fileService),
		ChatController:         controller.NewChatController(chatService),
		ConversationController: controller.NewConversationController(conversationService),
		InsightController:      controller.NewInsightController(insightService),
		ReconcilerService:      reconcilerService,
		Logger:                 sysLogger,
	}
}
