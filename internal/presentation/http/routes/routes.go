package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scrubkh/invoice-api/internal/config"
	"github.com/scrubkh/invoice-api/internal/presentation/http/handler"
	"github.com/scrubkh/invoice-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Draft   *handler.DraftHandler
	Invoice *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
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
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerDraftRoutes(v1, h)
		registerInvoiceRoutes(v1, h)
	}

	return router
}

func registerDraftRoutes(v1 *gin.RouterGroup, h *Handlers) {
	draft := v1.Group("/draft")
	{
		draft.GET("", h.Draft.Get)
		draft.PUT("", h.Draft.Save)
		draft.DELETE("", h.Draft.Clear)
		draft.POST("/items", h.Draft.AddItem)
		draft.PATCH("/items/:id", h.Draft.UpdateItem)
		draft.DELETE("/items/:id", h.Draft.RemoveItem)
	}
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoice := v1.Group("/invoice")
	{
		invoice.POST("/preview", h.Invoice.Preview)
		invoice.POST("/export", h.Invoice.Export)
		invoice.POST("/share", h.Invoice.Share)
	}
}
