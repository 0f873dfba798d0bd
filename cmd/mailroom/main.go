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
	"github.com/greencandle/dispatch-core/internal/autopilot"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/drafter"
	"github.com/greencandle/dispatch-core/internal/events"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/mailroom"
	"github.com/greencandle/dispatch-core/internal/negotiation"
	"github.com/greencandle/dispatch-core/internal/outbound"
	"github.com/greencandle/dispatch-core/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadMailroomConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "mailroom",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting mailroom")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize stores
	dataStore := store.NewPGStore(db)
	cursorStore := store.NewCursorStore(db)

	// Outbound mail for autopilot counters and acceptances
	sender, err := outbound.NewSMTPSender(cfg.SMTP, cfg.Mail)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to configure SMTP sender", zap.Error(err))
	}

	// Event bus; optional
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		publisher, err = events.NewNATSPublisher(adapter.NewNatsJetStream(), adapter.NewClock(), cfg.NATS)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	}

	// Dispatch services behind the processor. The mailroom never opens
	// threads, so it runs without a drafter.
	ledgerService := ledger.NewService(dataStore)
	negotiationService := negotiation.NewService(dataStore, sender, drafter.Disabled(), ledgerService, publisher)
	autopilotEngine := autopilot.NewEngine(dataStore, sender, ledgerService)
	processor := mailroom.NewProcessor(dataStore, negotiationService, autopilotEngine, ledgerService, cfg.Mail.Domain)

	// Initialize mailbox poller
	fetcher := mailroom.NewIMAPFetcher(cfg.IMAP)
	poller := mailroom.NewPoller(mailroom.PollerConfig{
		Mailbox:      cfg.IMAP.Mailbox,
		PollInterval: cfg.IMAP.PollInterval,
		ErrorBackoff: cfg.IMAP.ErrorBackoff,
		FetchLimit:   cfg.IMAP.FetchLimit,
	}, fetcher, processor, cursorStore, adapter.NewClock())

	logger.InfoCtx(ctx, "Initialized mailbox poller",
		zap.String("mailbox", cfg.IMAP.Mailbox),
		zap.Duration("poll_interval", cfg.IMAP.PollInterval),
		zap.Int("fetch_limit", cfg.IMAP.FetchLimit),
	)

	// Start the poller in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := poller.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the poller
	cancel()

	// Give the poller time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := poller.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Mailroom stopped")
}
