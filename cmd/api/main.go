package main

import (
	"os"

	"github.com/Malmeu/facturier-sub001/internal/application/service"
	"github.com/Malmeu/facturier-sub001/internal/config"
	"github.com/Malmeu/facturier-sub001/internal/infrastructure/database"
	"github.com/Malmeu/facturier-sub001/internal/infrastructure/repository"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/handler"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/routes"
	"github.com/Malmeu/facturier-sub001/pkg/logger"
	"github.com/Malmeu/facturier-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	if err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}); err != nil {
		log.Fatal().Err(err).Msg("invalid logging configuration")
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	productService := service.NewProductService(productRepo, supplierRepo)
	stockService := service.NewStockService(productRepo, movementRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	documentService := service.NewDocumentService(documentRepo, customerRepo, productRepo, settingsService, stockService)
	paymentService := service.NewPaymentService(paymentRepo, documentRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, documentRepo, customerRepo, productRepo, movementRepo)

	// Handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Document:  handler.NewDocumentHandler(documentService, paymentService),
		Product:   handler.NewProductHandler(productService),
		Stock:     handler.NewStockHandler(stockService),
		Customer:  handler.NewCustomerHandler(customerService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
