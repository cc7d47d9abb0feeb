package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nyamari/meatpos-api/internal/application/service"
	"github.com/nyamari/meatpos-api/internal/config"
	"github.com/nyamari/meatpos-api/internal/infrastructure/database"
	"github.com/nyamari/meatpos-api/internal/infrastructure/repository"
	"github.com/nyamari/meatpos-api/internal/presentation/http/handler"
	"github.com/nyamari/meatpos-api/internal/presentation/http/routes"
	"github.com/nyamari/meatpos-api/pkg/printer"
	"github.com/nyamari/meatpos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default staff accounts
	if err := database.SeedDefaultUsers(db); err != nil {
		log.Printf("Warning: Failed to seed default users: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

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

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	catalogService := service.NewCatalogService(productRepo, settingsRepo)
	saleService := service.NewSaleService(invoiceRepo)
	reportService := service.NewReportService(reportRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	adminService := service.NewAdminService(userRepo, maintenanceRepo)
	receiptService := service.NewReceiptService(invoiceRepo, settingsRepo, thermalPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(catalogService),
		Sale:     handler.NewSaleHandler(saleService, receiptService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService),
		Admin:    handler.NewAdminHandler(adminService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
