package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nyamari/meatpos-api/internal/config"
	"github.com/nyamari/meatpos-api/internal/presentation/http/handler"
	"github.com/nyamari/meatpos-api/internal/presentation/http/middleware"
	"github.com/nyamari/meatpos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Sale     *handler.SaleHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Admin    *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile routes
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	registerProductRoutes(protected, h)
	registerSaleRoutes(protected, h)
	registerReportRoutes(protected, h)
	registerSettingsRoutes(protected, h)
	registerAdminRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		// Any staff member can browse the catalog at the terminal
		products.GET("", h.Product.List)
		products.GET("/categories", h.Product.Categories)

		// Catalog and stock changes need manager or admin
		products.POST("", middleware.RequireStockAccess(), h.Product.Create)
		products.GET("/low-stock", middleware.RequireStockAccess(), h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", middleware.RequireStockAccess(), h.Product.Update)
		products.PUT("/:id/stock", middleware.RequireStockAccess(), h.Product.SetStock)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Complete)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/receipt", h.Sale.Receipt)
		sales.GET("/:id/receipt.pdf", h.Sale.ReceiptPDF)
		sales.POST("/:id/print", h.Sale.Print)
	}

	protected.GET("/printer/status", h.Sale.PrinterStatus)
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireReportAccess())
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/daily", h.Report.DailySales)
		reports.GET("/top-products", h.Report.TopProducts)
		reports.GET("/payment-methods", h.Report.PaymentBreakdown)
		reports.GET("/hourly", h.Report.HourlySales)
		reports.GET("/export", h.Report.Export)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	settings.Use(middleware.RequireSettingsAccess())
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireSettingsAccess())
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.POST("/users", h.Admin.CreateUser)
		admin.DELETE("/users/:id", h.Admin.DeleteUser)
		admin.POST("/reset", h.Admin.ResetData)
	}
}
