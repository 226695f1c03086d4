package routes

import (
	"time"

	"github.com/Malmeu/facturier-sub001/internal/config"
	domainRepo "github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/handler"
	"github.com/Malmeu/facturier-sub001/internal/presentation/http/middleware"
	"github.com/Malmeu/facturier-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Document  *handler.DocumentHandler
	Product   *handler.ProductHandler
	Stock     *handler.StockHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetSummary)

	// Documents: creation and payment recording honor the Idempotency-Key header
	idem := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	documents := protected.Group("/documents")
	{
		documents.GET("", h.Document.List)
		documents.GET("/due", h.Document.ListDue)
		documents.POST("", idem, h.Document.Create)
		documents.GET("/:id", h.Document.Get)
		documents.PUT("/:id", h.Document.Update)
		documents.DELETE("/:id", h.Document.Delete)
		documents.PATCH("/:id/status", h.Document.UpdateStatus)
		documents.POST("/:id/convert", h.Document.Convert)
		documents.POST("/:id/payments", idem, h.Document.RecordPayment)
		documents.GET("/:id/payments", h.Document.ListPayments)
	}

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.ListLowStock)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.GET("/:id/movements", h.Stock.ListProductMovements)
	}

	// Stock movements
	stock := protected.Group("/stock")
	{
		stock.GET("/movements", h.Stock.ListMovements)
		stock.POST("/movements", h.Stock.CreateMovement)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Suppliers
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}
