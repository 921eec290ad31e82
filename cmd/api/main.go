package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/billforge/billforge-api/internal/application/service"
	"github.com/billforge/billforge-api/internal/config"
	"github.com/billforge/billforge-api/internal/infrastructure/database"
	"github.com/billforge/billforge-api/internal/infrastructure/repository"
	"github.com/billforge/billforge-api/internal/presentation/http/handler"
	"github.com/billforge/billforge-api/internal/presentation/http/routes"
	"github.com/billforge/billforge-api/pkg/oauth"
	"github.com/billforge/billforge-api/pkg/printer"
	"github.com/billforge/billforge-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
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

	// Seed the admin user when configured
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	companyService := service.NewCompanyService(companyRepo)
	clientService := service.NewClientService(clientRepo)
	transactionService := service.NewTransactionService(transactionRepo, companyRepo, clientRepo)
	invoiceService := service.NewInvoiceService(transactionService)
	exportService := service.NewExportService(transactionRepo, clientRepo)
	userService := service.NewUserService(userRepo)

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
	printerService := service.NewPrinterService(thermalPrinter, transactionService, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Company:     handler.NewCompanyHandler(companyService),
		Client:      handler.NewClientHandler(clientService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Invoice:     handler.NewInvoiceHandler(invoiceService),
		Export:      handler.NewExportHandler(exportService),
		Printer:     handler.NewPrinterHandler(printerService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
