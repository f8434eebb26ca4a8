package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/elitesports/pos-api/internal/application/service"
	"github.com/elitesports/pos-api/internal/config"
	"github.com/elitesports/pos-api/internal/infrastructure/cartstore"
	"github.com/elitesports/pos-api/internal/infrastructure/database"
	"github.com/elitesports/pos-api/internal/infrastructure/repository"
	domainRepo "github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/internal/presentation/http/handler"
	"github.com/elitesports/pos-api/internal/presentation/http/routes"
	"github.com/elitesports/pos-api/pkg/email"
	"github.com/elitesports/pos-api/pkg/printer"
	"github.com/elitesports/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Connect to Redis for cart storage; fall back to an in-process store
	// so the register still works without Redis
	var cartStore domainRepo.CartStore
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Redis unavailable, carts will not survive a restart: %v", err)
		cartStore = cartstore.NewMemoryCartStore()
	} else {
		cartStore = cartstore.NewRedisCartStore(redisClient, cfg.Redis.CartTTL)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewLoginOTPRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)
	uploadRepo := repository.NewUploadBatchRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, otpRepo, emailService, jwtManager, cfg.OTP.ExpiryMinutes)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartStore, productRepo)
	saleService := service.NewSaleService(cartStore, productRepo, orderRepo)
	reportService := service.NewReportService(reportRepo)
	uploadService := service.NewUploadService(productRepo, uploadRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, cfg.App.StoreName)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Product: handler.NewProductHandler(productService, uploadService),
		Cart:    handler.NewCartHandler(cartService, saleService),
		Order:   handler.NewOrderHandler(saleService, reportService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
