package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-slot-sync/config"
	deliveryHttp "doctor-slot-sync/internal/delivery/http"
	"doctor-slot-sync/internal/delivery/http/handler"
	"doctor-slot-sync/internal/delivery/http/middleware"
	"doctor-slot-sync/internal/delivery/scheduler"
	"doctor-slot-sync/internal/domain/gateway"
	"doctor-slot-sync/internal/infrastructure/cache"
	"doctor-slot-sync/internal/infrastructure/database"
	"doctor-slot-sync/internal/infrastructure/messaging"
	"doctor-slot-sync/internal/infrastructure/metrics"
	"doctor-slot-sync/internal/infrastructure/vendor"
	"doctor-slot-sync/internal/repository"
	"doctor-slot-sync/internal/service"
	"doctor-slot-sync/internal/usecase"
	"doctor-slot-sync/pkg/jwt"
	"doctor-slot-sync/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"k8s.io/utils/clock"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   *messaging.RabbitMQPublisher
	Runner      *service.SyncRunner
	Worker      *scheduler.SyncWorker
	Server      *http.Server

	slotLocker *service.SlotLocker
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	setLogLevel(log, cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, cfg.DB.Name); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	// Initialize RabbitMQ (optional)
	if cfg.RabbitMQ.Enabled {
		publisher, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQ)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		app.Publisher = publisher
	}

	// Initialize all layers
	if err := app.initialize(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	return logrus.StandardLogger()
}

func setLogLevel(log *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, using info", level)
		return
	}
	log.SetLevel(parsed)
}

// initialize wires the synchronization workflow and the HTTP server
func (app *App) initialize() error {
	cfg := app.Config
	log := app.Log
	clk := clock.RealClock{}

	location, err := cfg.App.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone %s: %w", cfg.App.Timezone, err)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	syncMetrics := metrics.NewSyncMetrics(registry)

	// Initialize vendor gateway
	vendorGateway, err := newVendorGateway(cfg.Vendor, location, customValidator, log, clk)
	if err != nil {
		return err
	}

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	slotRepo := repository.NewSlotRepository()
	syncFailureRepo := repository.NewSyncFailureRepository()

	// Initialize services
	var publisher service.FailurePublisher
	if app.Publisher != nil {
		publisher = app.Publisher
	}
	failureReporter := service.NewFailureReporter(app.DB, log, clk, location, cfg.Sync.QuietWeekday, syncFailureRepo, publisher)
	app.slotLocker = service.NewSlotLocker(clk, log)
	statusService := service.NewRedisSyncStatusService(app.RedisClient, log)

	// Initialize usecases
	syncUsecase := usecase.NewDoctorSlotSyncUsecase(
		app.DB,
		log,
		vendorGateway,
		doctorRepo,
		slotRepo,
		service.NewSlotReconciler(clk),
		app.slotLocker,
		failureReporter,
		syncMetrics,
		cfg.Sync.Concurrency,
	)
	doctorUsecase := usecase.NewDoctorUsecase(app.DB, log, doctorRepo, slotRepo)
	syncFailureUsecase := usecase.NewSyncFailureUsecase(app.DB, log, syncFailureRepo)

	app.Runner = service.NewSyncRunner(syncUsecase, statusService, syncMetrics, clk, log)
	app.Worker = scheduler.NewSyncWorker(log, cfg.Sync, app.Runner)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	syncHandler := handler.NewSyncHandler(app.Runner, syncFailureUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwt.NewJWTService(cfg.JWT), log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		doctorHandler,
		syncHandler,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		authMiddleware,
		corsMiddleware,
	)

	// Create server
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return nil
}

func newVendorGateway(cfg config.VendorConfig, location *time.Location, v *validator.CustomValidator, log *logrus.Logger, clk clock.PassiveClock) (gateway.VendorGateway, error) {
	if cfg.Mode == config.VendorModeStatic {
		log.Warn("Using the static vendor gateway, no vendor API calls will be made")
		return vendor.NewDemoGateway(clk.Now().In(location)), nil
	}

	httpGateway, err := vendor.NewHTTPGateway(cfg, location, v, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor gateway: %w", err)
	}
	return httpGateway, nil
}

// Run starts the scheduler and the HTTP server and handles graceful shutdown
func (app *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.Worker.Start(ctx)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// SyncOnce runs a single synchronization cycle and returns its error
func (app *App) SyncOnce(ctx context.Context) error {
	defer app.Close()

	status, err := app.Runner.Run(ctx, service.TriggerCLI)
	if err != nil {
		return err
	}

	app.Log.Infof("Synchronization %s finished in %v", status.RunID, status.Duration())
	return nil
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Stop scheduled runs, waiting for the in-flight one
	app.Worker.Stop()

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.slotLocker != nil {
		app.slotLocker.Stop()
	}

	// Close RabbitMQ connection
	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Log.Warnf("Failed to close RabbitMQ connection: %+v", err)
		}
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

// Migrate applies the embedded schema migrations without starting the service
func Migrate() error {
	log := setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setLogLevel(log, cfg.App.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	return database.RunMigrations(db, cfg.DB.Name)
}

// IssueToken signs an operator token for the HTTP API
func IssueToken(subject string, scopes []string) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	token, _, err := jwt.NewJWTService(cfg.JWT).GenerateAccessToken(subject, scopes)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
