package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	billingapp "github.com/hourbill/backend/internal/application/billing"
	identityapp "github.com/hourbill/backend/internal/application/identity"
	partnerapp "github.com/hourbill/backend/internal/application/partner"
	reportapp "github.com/hourbill/backend/internal/application/report"
	timesheetapp "github.com/hourbill/backend/internal/application/timesheet"
	"github.com/hourbill/backend/internal/infrastructure/auth"
	"github.com/hourbill/backend/internal/infrastructure/cache"
	"github.com/hourbill/backend/internal/infrastructure/config"
	"github.com/hourbill/backend/internal/infrastructure/logger"
	"github.com/hourbill/backend/internal/infrastructure/persistence"
	"github.com/hourbill/backend/internal/interfaces/http/handler"
	"github.com/hourbill/backend/internal/interfaces/http/middleware"
	"github.com/hourbill/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Hourbill Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	entryRepo := persistence.NewGormTimeEntryRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)

	// Identity cache (Redis when enabled, in-memory otherwise)
	identityCache := cache.NewIdentityCache(cfg.Redis, log)

	// Initialize application services
	userService := identityapp.NewUserService(userRepo, identityCache)
	clientService := partnerapp.NewClientService(clientRepo)
	timerService := timesheetapp.NewTimerService(entryRepo, clientRepo)
	earningsService := reportapp.NewEarningsService(entryRepo, clientRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, clientRepo, entryRepo)

	// Session token service
	sessionService := auth.NewSessionService(cfg.Session, cfg.App.URL)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler(db)
	clientHandler := handler.NewClientHandler(clientService)
	timerHandler := handler.NewTimerHandler(timerService)
	dashboardHandler := handler.NewDashboardHandler(earningsService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside the API prefix)
	systemHandler.RegisterRoot(engine)

	// Session authentication guards every /api route except the public ones
	sessionAuth := middleware.SessionAuth(middleware.SessionAuthConfig{
		Sessions: sessionService,
		Resolver: userService,
		Logger:   log,
	})

	r := router.NewRouter(engine,
		router.WithPrefix("/api"),
		router.WithAuth(sessionAuth),
	)
	r.RegisterPublic(systemHandler)
	r.Register(clientHandler).
		Register(timerHandler).
		Register(dashboardHandler).
		Register(invoiceHandler)
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
