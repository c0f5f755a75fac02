package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/futurefulfillmentdev/future-shipping/internal/api/handlers"
	"github.com/futurefulfillmentdev/future-shipping/internal/application"
	"github.com/futurefulfillmentdev/future-shipping/internal/domain"
	"github.com/futurefulfillmentdev/future-shipping/internal/infrastructure/crm"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/logging"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/metrics"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/middleware"
)

const serviceName = "advisor-service"

var startHTTPServer = func(srv *http.Server) error {
	return srv.ListenAndServe()
}

func main() {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	if err := run(signalCh); err != nil {
		os.Exit(1)
	}
}

func run(signalCh <-chan os.Signal) error {
	// Setup logger
	logConfig := logging.DefaultConfig(serviceName)
	logConfig.Level = logging.LogLevel(getEnv("LOG_LEVEL", "info"))
	logger := logging.New(logConfig)
	logger.SetDefault()

	logger.Info("Starting advisor-service API")

	// Load configuration
	config := loadConfig()

	// Initialize Prometheus metrics
	metricsConfig := metrics.DefaultConfig(serviceName)
	m := metrics.New(metricsConfig)
	logger.Info("Metrics initialized")

	// Initialize CRM adapter (optional)
	var syncer application.ContactSyncer
	if config.CRMSyncEnabled {
		if config.CRM.APIKey == "" || config.CRM.LocationID == "" {
			logger.Warn("CRM credentials missing, sync disabled")
		} else {
			syncer = crm.NewHighLevelAdapter(config.CRM, logger, m)
			logger.Info("CRM sync enabled", "apiUrl", config.CRM.APIURL)
		}
	}

	// Initialize recommendation engine and application service
	engine := domain.NewEngine()
	advisorService := application.NewAdvisorService(engine, syncer, logger, m)

	// Initialize handlers
	recommendationHandler := handlers.NewRecommendationHandler(advisorService, logger)

	// Setup Gin router with middleware
	router := gin.New()

	middlewareConfig := middleware.DefaultConfig(serviceName, logger.Logger)
	middleware.Setup(router, middlewareConfig)
	router.Use(middleware.MetricsMiddleware(m))

	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	// Health check endpoints
	router.GET("/health", middleware.HealthCheck(serviceName))
	router.GET("/ready", middleware.ReadinessCheck(serviceName, func() error {
		return nil // no backing stores; ready once the server is up
	}))

	// Metrics endpoint
	router.GET("/metrics", middleware.MetricsEndpoint(m))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		recommendations := v1.Group("/recommendations")
		{
			recommendations.POST("", recommendationHandler.GenerateRecommendation)
		}
	}

	// Start server
	srv := &http.Server{
		Addr:         config.ServerAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := startHTTPServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("Server error")
		}
	}()
	logger.Info("Server started", "addr", config.ServerAddr)

	<-signalCh
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server stopped")
	return nil
}

// Config holds application configuration
type Config struct {
	ServerAddr     string
	CRMSyncEnabled bool
	CRM            crm.Config
}

func loadConfig() *Config {
	return &Config{
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		CRMSyncEnabled: getEnv("CRM_SYNC_ENABLED", "true") == "true",
		CRM: crm.Config{
			APIURL:     getEnv("HL_API_URL", "https://rest.gohighlevel.com/v1"),
			APIKey:     getEnv("HL_API_KEY", ""),
			LocationID: getEnv("HL_LOCATION_ID", ""),
			Timeout:    10 * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
