package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sefazor/subflow-backend/internal/config"
	"github.com/sefazor/subflow-backend/internal/controller"
	"github.com/sefazor/subflow-backend/internal/handler"
	"github.com/sefazor/subflow-backend/internal/repository"
	"github.com/sefazor/subflow-backend/internal/service"
	"github.com/sefazor/subflow-backend/pkg/database"
	"github.com/sefazor/subflow-backend/pkg/logger"
	"github.com/sefazor/subflow-backend/pkg/payment"
	"github.com/sefazor/subflow-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Config'i yükle
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Repositories
	purchaseRepo := repository.NewSubscriptionPurchaseRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	// Stripe client
	stripeClient := payment.NewStripeClient(
		cfg.Stripe.SecretKey,
		cfg.Stripe.WebhookSecret,
		cfg.SuccessURL(),
		cfg.CancelURL(),
	)

	// Services
	subscriptionService := service.NewSubscriptionService(stripeClient, purchaseRepo, cfg.Stripe, zapLogger)
	webhookService := service.NewWebhookService(webhookEventRepo, purchaseRepo, zapLogger)

	// Controllers
	subscriptionController := controller.NewSubscriptionController(subscriptionService)
	webhookController := controller.NewWebhookController(webhookService)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionController, validator, zapLogger)
	webhookHandler := handler.NewWebhookHandler(webhookController, stripeClient, zapLogger)

	// Router
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberLogger.New())

	// Rate limit sadece checkout route'unda, webhook hariç tutulur
	// yoksa Stripe retryleri 429 yer
	checkoutLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	})

	app.Post("/create-subscription", checkoutLimiter, subscriptionHandler.CreateSubscription)
	app.Post("/webhook", webhookHandler.HandleStripeWebhook)

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}
