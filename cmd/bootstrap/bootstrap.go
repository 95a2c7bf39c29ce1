package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-agenda/config"
	deliveryHttp "clinic-agenda/internal/delivery/http"
	"clinic-agenda/internal/delivery/http/handler"
	"clinic-agenda/internal/delivery/http/middleware"
	"clinic-agenda/internal/infrastructure/cache"
	"clinic-agenda/internal/infrastructure/database"
	"clinic-agenda/internal/repository"
	"clinic-agenda/internal/service"
	"clinic-agenda/internal/usecase"
	"clinic-agenda/pkg/jwt"
	"clinic-agenda/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	AgendaCache *service.AgendaCacheService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := app.initializeServer()
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	cfg := app.Config
	db := app.DB

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize agenda cache + booked-event subscriber
	agendaCache := service.NewAgendaCacheService(app.RedisClient, log, cfg.Redis.CacheTTL)
	app.AgendaCache = agendaCache

	// Initialize repositories
	settingsRepo := repository.NewAgendaSettingsRepository()
	blockedRepo := repository.NewBlockedDateRepository()
	consultorioRepo := repository.NewConsultorioRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize usecases
	settingsUsecase := usecase.NewAgendaSettingsUsecase(db, log, settingsRepo, agendaCache)
	blockedUsecase := usecase.NewBlockedDateUsecase(db, log, blockedRepo, agendaCache)
	consultorioUsecase := usecase.NewConsultorioUsecase(db, log, consultorioRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, consultorioRepo, settingsUsecase, blockedUsecase, agendaCache)
	slotUsecase := usecase.NewSlotUsecase(log, settingsUsecase, blockedUsecase, consultorioUsecase, appointmentUsecase)

	// Warm the agenda cache before accepting traffic
	app.warmCache(settingsUsecase, blockedUsecase)

	// Initialize handlers
	settingsHandler := handler.NewAgendaSettingsHandler(settingsUsecase, customValidator)
	blockedHandler := handler.NewBlockedDateHandler(blockedUsecase, customValidator)
	roomHandler := handler.NewConsultorioHandler(consultorioUsecase, customValidator)
	slotHandler := handler.NewSlotHandler(slotUsecase, appointmentUsecase)
	apptHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(settingsHandler, blockedHandler, roomHandler, slotHandler, apptHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// warmCache primes the Redis agenda cache; failures are non-fatal.
func (app *App) warmCache(settingsUsecase usecase.AgendaSettingsUsecase, blockedUsecase usecase.BlockedDateUsecase) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := settingsUsecase.Current(ctx); err != nil {
		logrus.Warnf("Failed to warm settings cache: %v", err)
	}
	if _, err := blockedUsecase.List(ctx); err != nil {
		logrus.Warnf("Failed to warm blocked-dates cache: %v", err)
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop the agenda event subscriber
	if app.AgendaCache != nil {
		app.AgendaCache.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
