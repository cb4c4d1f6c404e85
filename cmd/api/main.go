package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sohagbhuiyan/portfolio-api/config"
	"github.com/sohagbhuiyan/portfolio-api/internal/content"
	"github.com/sohagbhuiyan/portfolio-api/internal/handlers"
	"github.com/sohagbhuiyan/portfolio-api/internal/services"
	"github.com/sohagbhuiyan/portfolio-api/pkg/httpclient"
	"github.com/sohagbhuiyan/portfolio-api/pkg/logger"
	"github.com/sohagbhuiyan/portfolio-api/pkg/profiling"
	"github.com/sohagbhuiyan/portfolio-api/pkg/recaptcha"
	"github.com/sohagbhuiyan/portfolio-api/pkg/tracing"
	"github.com/sohagbhuiyan/portfolio-api/pkg/web3forms"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Portfolio API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.Start(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Load profile content synchronously before accepting requests
	store := content.NewStore(cfg.Content.File)
	if err := store.Initialize(); err != nil {
		logger.Fatal("Failed to load profile content", zap.Error(err))
	}

	if cfg.Provider.AccessKey == "" {
		logger.Warn("WEB3FORMS_ACCESS_KEY not set: the provider will reject every message")
	}

	// HTTP client for external API calls
	httpClient := httpclient.NewStandardClient(time.Duration(cfg.Provider.TimeoutSeconds) * time.Second)

	relay := web3forms.NewClient(cfg.Provider.URL, cfg.Provider.AccessKey, httpClient)
	captcha := recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient)
	if captcha.Enabled() {
		logger.Info("ReCAPTCHA verification enabled for contact form")
	}

	// Initialize services
	contactService := services.NewContactService(cfg, relay, captcha, httpClient)
	contentService := services.NewContentService(store)

	if err := handlers.RegisterBindingValidators(); err != nil {
		logger.Fatal("Failed to register validators", zap.Error(err))
	}

	gin.SetMode(cfg.Server.GinMode)
	router := newRouter(cfg, routeHandlers{
		contact: handlers.NewContactHandler(contactService),
		content: handlers.NewContentHandler(contentService),
		health:  handlers.NewHealthHandler(contentService.IsReady),
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
