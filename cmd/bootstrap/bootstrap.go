package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property-backoffice/config"
	deliveryHttp "property-backoffice/internal/delivery/http"
	"property-backoffice/internal/delivery/http/handler"
	"property-backoffice/internal/delivery/http/middleware"
	"property-backoffice/internal/infrastructure/cache"
	"property-backoffice/internal/infrastructure/database"
	"property-backoffice/internal/repository"
	"property-backoffice/internal/service"
	"property-backoffice/internal/usecase"
	"property-backoffice/pkg/jwt"
	"property-backoffice/pkg/preference"
	"property-backoffice/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// openDatabase connects to the configured store and brings its schema up to date.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteConnection(cfg.DB.Path, cfg.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if cfg.DB.AutoMigrate {
			if err := database.AutoMigrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		return db, nil
	default:
		if cfg.DB.AutoMigrate {
			if err := database.RunMigrations(cfg.DB); err != nil {
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository()
	clientRepo := repository.NewClientRepository()
	staffRepo := repository.NewStaffRepository()
	propertyRepo := repository.NewPropertyRepository()
	secretaryRepo := repository.NewSecretaryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewRedisTokenStore(redisClient)
	preferences := func(secretaryID uint) preference.Store {
		return preference.NewRedisStore(redisClient, fmt.Sprintf("secretary:%d", secretaryID))
	}

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, clientRepo, staffRepo, propertyRepo, auditService, usecase.AppointmentOptions{
		PropertyPolicy: usecase.PropertyPolicy(cfg.App.PropertyPolicy),
		Location:       cfg.App.Location(),
	})
	clientUsecase := usecase.NewClientUsecase(db, log, clientRepo, auditService)
	staffUsecase := usecase.NewStaffUsecase(db, log, staffRepo, auditService)
	propertyUsecase := usecase.NewPropertyUsecase(db, log, propertyRepo, auditService)
	secretaryUsecase := usecase.NewSecretaryUsecase(db, log, secretaryRepo, auditService, tokenStore)
	authUsecase := usecase.NewAuthUsecase(db, log, secretaryRepo, auditService, jwtService, tokenStore, preferences)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	clientHandler := handler.NewClientHandler(clientUsecase, customValidator)
	staffHandler := handler.NewStaffHandler(staffUsecase, customValidator)
	propertyHandler := handler.NewPropertyHandler(propertyUsecase, customValidator)
	secretaryHandler := handler.NewSecretaryHandler(secretaryUsecase, customValidator)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst)

	// Initialize router
	router := deliveryHttp.NewRouter(
		appointmentHandler,
		clientHandler,
		staffHandler,
		propertyHandler,
		secretaryHandler,
		authHandler,
		auditLogHandler,
		healthHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		loginLimiter,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Appointment property policy: %s", app.Config.App.PropertyPolicy)
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
