// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"officex/internal/core/numerator"
	"officex/internal/domain/auth"
	"officex/internal/domain/customer"
	"officex/internal/domain/inventory"
	"officex/internal/domain/location"
	"officex/internal/domain/purchase"
	"officex/internal/domain/sales"
	"officex/internal/domain/task"
	"officex/internal/domain/taxonomy"
	"officex/internal/domain/user"
	"officex/internal/infrastructure/http/v1/handlers"
	"officex/internal/infrastructure/http/v1/middleware"
	"officex/internal/infrastructure/sms"
	"officex/internal/infrastructure/storage/postgres"
	"officex/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the process-wide database pool (health checks)
	Pool *postgres.Pool

	// TxManager runs queries and transactions against the pool
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTService issues and validates access tokens
	JWTService *auth.JWTService

	// Numerator for document number generation
	Numerator numerator.Generator

	// Auditor records entity change events
	Auditor location.Auditor

	// SalesClient fetches sales history for the dashboard
	SalesClient *sales.Client

	// SMSSender delivers task push notifications
	SMSSender sms.Sender
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()

	// Repositories and services share the one TxManager
	userRepo := postgres.NewUserRepo(cfg.TxManager)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userService, userRepo, cfg.JWTService)

	locationRepo := postgres.NewLocationRepo(cfg.TxManager)
	locationService := location.NewService(locationRepo, cfg.Auditor)

	customerRepo := postgres.NewCustomerRepo(cfg.TxManager)
	customerService := customer.NewService(customerRepo)

	taxonomyRepo := postgres.NewTaxonomyRepo(cfg.TxManager)
	taxonomyService := taxonomy.NewService(taxonomyRepo)

	stockRepo := postgres.NewStockRepo(cfg.TxManager)
	inventoryService := inventory.NewService(stockRepo)

	salesRepo := postgres.NewSalesRepo(cfg.TxManager)
	salesService := sales.NewService(salesRepo)

	purchaseRepo := postgres.NewPurchaseRepo(cfg.TxManager)
	purchaseService := purchase.NewService(purchaseRepo, locationRepo, cfg.Numerator, cfg.Auditor)

	taskRepo := postgres.NewTaskRepo(cfg.TxManager)
	taskService := task.NewService(taskRepo, cfg.SMSSender)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Public auth endpoints
		authHandler := handlers.NewAuthHandler(base, authService)
		authHandler.RegisterRoutes(v1.Group("/auth"))

		// Everything else requires a valid token
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTService))

		handlers.NewStockHandler(base, inventoryService).
			RegisterRoutes(protected.Group("/inventory"))
		handlers.NewUserHandler(base, userService).
			RegisterRoutes(protected.Group("/users"))
		handlers.NewTaskHandler(base, taskService).
			RegisterRoutes(protected.Group("/tasks"))
		handlers.NewSalesHandler(base, salesService).
			RegisterRoutes(protected.Group("/sales"))
		handlers.NewDashboardHandler(base, cfg.SalesClient).
			RegisterRoutes(protected.Group("/dashboard"))
		handlers.NewPurchaseHandler(base, purchaseService).
			RegisterRoutes(protected.Group("/purchases"))
		handlers.NewLocationHandler(base, locationService).
			RegisterRoutes(protected.Group("/locations"))
		handlers.NewCustomerHandler(base, customerService).
			RegisterRoutes(protected.Group("/customers"))
		handlers.NewTaxonomyHandler(base, taxonomyService).
			RegisterRoutes(protected.Group("/catalog"))
	}

	return router
}
