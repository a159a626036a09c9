package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kakeibo/internal/config"
	"kakeibo/internal/database"
	"kakeibo/internal/events"
	"kakeibo/internal/gate"
	"kakeibo/internal/handlers"
	"kakeibo/internal/logger"
	"kakeibo/internal/metrics"
	"kakeibo/internal/middleware"
	"kakeibo/internal/services"
	"kakeibo/internal/store"
	"kakeibo/internal/validator"

	_ "kakeibo/internal/docs" // Import swagger docs
)

// @title           Kakeibo API
// @version         1.0
// @description     Kakeibo is a personal budgeting journal: log expenses in four categories, plan a monthly budget, and reflect on where the money went.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	m := metrics.New()

	backend, closeStore, err := openStore(appConfig)
	if err != nil {
		return err
	}
	defer closeStore()
	backend = store.Instrument(backend, m)

	publisher, err := openPublisher(appConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnw("failed to close event publisher", "error", err)
		}
	}()

	session, err := gate.LoadFileSession(appConfig.SessionFile)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	keypad := gate.New(appConfig.GatePasscode, session,
		gate.WithClearDelay(appConfig.GateClearDelay),
		gate.WithMetrics(m),
	)

	// Initialize services
	activity := services.NewActivityRecorder(publisher, m)
	expenseService := services.NewExpenseService(backend, activity, appConfig.CacheReconcile, m)
	budgetService := services.NewBudgetService(backend, activity)
	insightService := services.NewInsightService(expenseService, budgetService, time.Now)

	// Initialize handlers
	gateHandler := handlers.NewGateHandler(keypad)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, insightService)
	insightsHandler := handlers.NewInsightsHandler(insightService, time.Now)
	categoryHandler := handlers.NewCategoryHandler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(appConfig.RateLimitRPS, appConfig.RateLimitBurst)
	go limiter.Run(ctx)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	// API v1 group
	v1 := router.Group("/api/v1")
	v1.Use(limiter.Middleware())

	// Passcode screen
	gateRoutes := v1.Group("/gate")
	gateRoutes.GET("", gateHandler.GetState)
	gateRoutes.POST("/digits", gateHandler.PressDigit)
	gateRoutes.POST("/backspace", gateHandler.Backspace)
	gateRoutes.POST("/unlock", gateHandler.Unlock)

	// Everything else stays hidden until the gate is open
	unlocked := v1.Group("/")
	unlocked.Use(middleware.RequireUnlocked(keypad))

	unlocked.GET("/categories", categoryHandler.ListCategories)

	expenses := unlocked.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.AddExpense)
	expenses.POST("/refresh", expenseHandler.RefreshExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	budgets := unlocked.Group("/budgets")
	budgets.GET("/:month", budgetHandler.GetBudget)
	budgets.PUT("/:month", budgetHandler.SaveBudget)
	budgets.GET("/:month/remaining", budgetHandler.GetRemaining)
	budgets.DELETE("/id/:id", budgetHandler.DeleteBudget)

	insightRoutes := unlocked.Group("/insights")
	insightRoutes.GET("", insightsHandler.GetInsights)
	insightRoutes.GET("/trend", insightsHandler.GetTrend)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Kakeibo server on port %s (store: %s)", appConfig.Port, appConfig.StoreBackend)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects the configured backend and returns a function that
// releases it.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendREST:
		client := &http.Client{Timeout: cfg.StoreTimeout}
		return store.NewRESTStore(cfg.StoreURL, cfg.StoreAPIKey, client), func() {}, nil

	case config.BackendSQLite:
		manager, err := database.NewSQLiteManager(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return store.NewGormStore(manager.DB()), closer(manager), nil

	default:
		manager, err := database.NewManager(database.NewConfig(cfg))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := manager.Migrate(); err != nil {
			_ = manager.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		return store.NewGormStore(manager.DB()), closer(manager), nil
	}
}

func closer(manager *database.Manager) func() {
	return func() {
		if err := manager.Close(); err != nil {
			logger.Get().Warnw("failed to close database", "error", err)
		}
	}
}

// openPublisher returns the AMQP publisher when a broker is configured and a
// no-op publisher otherwise.
func openPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		return events.NopPublisher{}, nil
	}
	publisher, err := events.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to message broker: %w", err)
	}
	return publisher, nil
}
