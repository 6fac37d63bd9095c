package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	reportapp "github.com/nlekkerman/HotelMateBackend-sub002/internal/application/report"
	stockapp "github.com/nlekkerman/HotelMateBackend-sub002/internal/application/stock"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/cache"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/config"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/event"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/logger"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/persistence"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/telemetry"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/interfaces/http/handler"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/interfaces/http/middleware"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting HotelMate Stock Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection
	dbOpts := []persistence.Option{persistence.WithLogger(gormLog)}
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbOpts = append(dbOpts, persistence.WithTracing())
	}
	db, err := persistence.NewDatabase(&cfg.Database, dbOpts...)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize stock item cache
	cacheFactory := cache.NewStockItemCacheFactory(cfg.Cache, cfg.Redis, cache.WithLogger(log))
	itemCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create stock item cache", zap.Error(err))
	}
	defer func() {
		if err := itemCache.Close(); err != nil {
			log.Error("Error closing stock item cache", zap.Error(err))
		}
	}()

	// Initialize repositories
	itemRepo := cache.NewCachedStockItemRepository(
		persistence.NewGormStockItemRepository(db.DB),
		itemCache,
		log,
	)
	stocktakeRepo := persistence.NewGormStocktakeRepository(db.DB)

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Stocktake lifecycle audit trail
	auditHandler := stockapp.NewStocktakeAuditHandler(log)
	eventBus.Subscribe(auditHandler, auditHandler.EventTypes()...)

	// Initialize application services
	itemService := stockapp.NewStockItemService(itemRepo, eventBus)
	stocktakeService := stockapp.NewStocktakeService(stocktakeRepo, itemRepo, eventBus)
	reportService := reportapp.NewValuationReportService(stocktakeRepo)

	// Initialize HTTP handlers
	itemHandler := handler.NewStockItemHandler(itemService)
	stocktakeHandler := handler.NewStocktakeHandler(stocktakeService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register JSON tag names for binding validation errors
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, panic recovery, request
	// logging, tracing, security headers, CORS.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Stock domain (items, stocktakes, valuation reports)
	stockRoutes := router.NewDomainGroup("stock", "/stock")

	// Stock item routes
	stockRoutes.POST("/items", itemHandler.Create)
	stockRoutes.GET("/items", itemHandler.List)
	stockRoutes.GET("/items/:id", itemHandler.GetByID)
	stockRoutes.GET("/items/code/:code", itemHandler.GetByCode)
	stockRoutes.PUT("/items/:id", itemHandler.Update)
	stockRoutes.PUT("/items/:id/configuration", itemHandler.UpdateConfiguration)
	stockRoutes.POST("/items/:id/cost", itemHandler.AssignCost)
	stockRoutes.POST("/items/:id/activate", itemHandler.Activate)
	stockRoutes.POST("/items/:id/deactivate", itemHandler.Deactivate)

	// Stocktake routes
	stockRoutes.POST("/stocktakes", stocktakeHandler.Create)
	stockRoutes.GET("/stocktakes", stocktakeHandler.List)
	stockRoutes.GET("/stocktakes/by-number/:taking_number", stocktakeHandler.GetByTakingNumber)
	stockRoutes.GET("/stocktakes/:id", stocktakeHandler.GetByID)
	stockRoutes.GET("/stocktakes/:id/progress", stocktakeHandler.GetProgress)
	stockRoutes.GET("/stocktakes/:id/variances", stocktakeHandler.GetVarianceLines)
	stockRoutes.GET("/stocktakes/:id/valuation-report", reportHandler.GetValuationReport)
	stockRoutes.PUT("/stocktakes/:id", stocktakeHandler.Update)
	stockRoutes.DELETE("/stocktakes/:id", stocktakeHandler.Delete)
	stockRoutes.POST("/stocktakes/:id/lines", stocktakeHandler.AddLine)
	stockRoutes.POST("/stocktakes/:id/lines/bulk", stocktakeHandler.AddLines)
	stockRoutes.DELETE("/stocktakes/:id/lines/:item_id", stocktakeHandler.RemoveLine)
	stockRoutes.POST("/stocktakes/:id/start", stocktakeHandler.StartCounting)
	stockRoutes.POST("/stocktakes/:id/movements", stocktakeHandler.RecordMovements)
	stockRoutes.POST("/stocktakes/:id/count", stocktakeHandler.RecordCount)
	stockRoutes.POST("/stocktakes/:id/counts", stocktakeHandler.RecordCounts)
	stockRoutes.POST("/stocktakes/:id/cocktail-usage", stocktakeHandler.RecordCocktailUsage)
	stockRoutes.POST("/stocktakes/:id/submit", stocktakeHandler.SubmitForApproval)
	stockRoutes.POST("/stocktakes/:id/approve", stocktakeHandler.Approve)
	stockRoutes.POST("/stocktakes/:id/reject", stocktakeHandler.Reject)
	stockRoutes.POST("/stocktakes/:id/cancel", stocktakeHandler.Cancel)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(stockRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
