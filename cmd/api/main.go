package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/greencandle/dispatch-core/internal/adapter"
	"github.com/greencandle/dispatch-core/internal/api/server"
	"github.com/greencandle/dispatch-core/internal/autopilot"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/drafter"
	"github.com/greencandle/dispatch-core/internal/events"
	"github.com/greencandle/dispatch-core/internal/ingestion"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/negotiation"
	"github.com/greencandle/dispatch-core/internal/outbound"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/treasury"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "dispatch-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Green Candle dispatch API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Outbound mail
	sender, err := outbound.NewSMTPSender(cfg.SMTP, cfg.Mail)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to configure SMTP sender", zap.Error(err))
	}

	// AI drafter vendor client
	draftClient := drafter.NewClient(adapter.NewHTTPClient(cfg.Drafter.RunTimeout), cfg.Drafter)

	// Event bus; the API runs without one when NATS is not configured
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		publisher, err = events.NewNATSPublisher(adapter.NewNatsJetStream(), adapter.NewClock(), cfg.NATS)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	}

	// Dispatch services. The API never executes burns itself, so the treasury
	// service runs without a chain gateway.
	ledgerService := ledger.NewService(dataStore)
	negotiationService := negotiation.NewService(dataStore, sender, draftClient, ledgerService, publisher)
	autopilotEngine := autopilot.NewEngine(dataStore, sender, ledgerService)
	ingestionService := ingestion.NewService(dataStore)
	treasuryService := treasury.NewService(dataStore, nil, publisher, config.TreasuryConfig{})

	serverConfig := server.Config{
		Debug:           cfg.Debug,
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:    time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:     time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AdminAPIKeys:    cfg.Auth.AdminAPIKeys,
		StripeSecret:    cfg.Auth.StripeWebhookSecret,
		FactoringSecret: cfg.Auth.FactoringWebhookSecret,
	}

	srv := server.New(serverConfig, dataStore, server.Services{
		Ingestion:    ingestionService,
		Negotiations: negotiationService,
		Autopilot:    autopilotEngine,
		Ledger:       ledgerService,
		Treasury:     treasuryService,
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
