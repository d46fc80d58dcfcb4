package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthcare-admin-portal/config"
	"healthcare-admin-portal/internal/converter"
	deliveryHttp "healthcare-admin-portal/internal/delivery/http"
	"healthcare-admin-portal/internal/delivery/http/handler"
	"healthcare-admin-portal/internal/delivery/http/middleware"
	"healthcare-admin-portal/internal/delivery/http/view"
	"healthcare-admin-portal/internal/infrastructure/cache"
	"healthcare-admin-portal/internal/infrastructure/gateway"
	"healthcare-admin-portal/internal/repository"
	"healthcare-admin-portal/internal/service"
	"healthcare-admin-portal/internal/usecase"
	"healthcare-admin-portal/pkg/metrics"
	"healthcare-admin-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
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
	if err := setupLogger(cfg.Log); err != nil {
		return nil, err
	}
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	router, err := NewHandler(cfg, redisClient, logrus.StandardLogger(), metrics.NewCollector(cfg.Metrics.Namespace))
	if err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
	return nil
}

// NewHandler wires every layer and returns the portal's HTTP handler.
func NewHandler(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger, collector *metrics.Collector) (http.Handler, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize gateway client
	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL,
		gateway.WithLogger(log),
		gateway.WithMetrics(collector),
		gateway.WithTimeout(cfg.Gateway.Timeout),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gatewayClient)
	doctorRepo := repository.NewDoctorRepository(gatewayClient)
	appointmentRepo := repository.NewAppointmentRepository(gatewayClient)
	invoiceRepo := repository.NewInvoiceRepository(gatewayClient)
	pageStateRepo := repository.NewPageStateRepository(redisClient, cfg.PageState.TTL)

	// Initialize services
	auditService := service.NewAuditService(log, collector)
	pageStore := usecase.NewPageStore(pageStateRepo, log, collector)

	// Initialize usecases
	registrationUsecase := usecase.NewRegistrationUsecase(log, pageStore, userRepo, doctorRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, pageStore, appointmentRepo, auditService, cfg.Appointments.DefaultDoctorID)
	billingUsecase := usecase.NewBillingUsecase(log, pageStore, invoiceRepo)
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, pageStore, doctorRepo)

	// Initialize view
	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(renderer)
	registrationHandler := handler.NewRegistrationHandler(registrationUsecase, customValidator, renderer)
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, renderer)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, renderer)
	billingHandler := handler.NewBillingHandler(billingUsecase, converter.NewInvoiceConverter(cfg.Billing.CurrencySymbol), renderer)
	healthHandler := handler.NewHealthHandler(redisClient, log)
	notFoundHandler := handler.NewNotFoundHandler(renderer)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.App.Env == "production")
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		homeHandler,
		registrationHandler,
		doctorHandler,
		appointmentHandler,
		billingHandler,
		healthHandler,
		notFoundHandler,
		sessionMiddleware,
		securityHeadersMiddleware,
		collector,
		collector.Handler(),
	)
	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		logrus.Infof("Gateway: %s", app.Config.Gateway.BaseURL)
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

// Close closes the redis connection
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
