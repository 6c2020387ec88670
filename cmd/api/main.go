package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/scrubkh/invoice-api/internal/application/service"
	"github.com/scrubkh/invoice-api/internal/config"
	"github.com/scrubkh/invoice-api/internal/infrastructure/database"
	"github.com/scrubkh/invoice-api/internal/infrastructure/repository"
	"github.com/scrubkh/invoice-api/internal/presentation/http/handler"
	"github.com/scrubkh/invoice-api/internal/presentation/http/routes"
	"github.com/scrubkh/invoice-api/pkg/render"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local database backing the draft slot
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	draftRepo := repository.NewDraftRepository(db)

	// Initialize renderers
	pngRenderer, err := render.NewPNGRenderer()
	if err != nil {
		log.Fatalf("Failed to initialize PNG renderer: %v", err)
	}
	assets := render.Assets{
		LogoPath:   cfg.Assets.LogoPath,
		QRKHQRPath: cfg.Assets.QRKHQRPath,
		QRABAPath:  cfg.Assets.QRABAPath,
	}

	// Initialize services
	draftService := service.NewDraftService(draftRepo, nil)
	invoiceService := service.NewInvoiceService(draftRepo)
	exportService := service.NewExportService(invoiceService, draftRepo, pngRenderer, assets, cfg.Storage.Path)
	shareService := service.NewShareService(invoiceService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Draft:   handler.NewDraftHandler(draftService),
		Invoice: handler.NewInvoiceHandler(invoiceService, exportService, shareService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

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
