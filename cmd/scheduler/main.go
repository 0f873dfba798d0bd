package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/greencandle/dispatch-core/internal/adapter"
	"github.com/greencandle/dispatch-core/internal/chain"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/events"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/treasury"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

const jobTimeout = 30 * time.Minute

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSchedulerConfig(*configFile, *envPath)
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
			"service": "scheduler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting treasury scheduler")

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

	// Initialize store
	dataStore := store.NewPGStore(db)

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

	// Buy-and-burn execution gateway
	gateway := chain.NewGateway(adapter.NewHTTPClient(time.Minute), adapter.NewEthClientDialer(), cfg.Treasury)

	treasuryService := treasury.NewService(dataStore, gateway, publisher, cfg.Treasury)

	// Schedule the weekly jobs
	scheduler := cron.New()

	if cfg.Treasury.BurnSchedule != "" {
		_, err = scheduler.AddFunc(cfg.Treasury.BurnSchedule, func() {
			runCtx, runCancel := context.WithTimeout(ctx, jobTimeout)
			defer runCancel()

			report, err := treasuryService.RunWeeklyBurn(runCtx)
			if err != nil {
				logger.ErrorCtx(runCtx, err, zap.String("job", "weekly-burn"))
				return
			}
			logger.InfoCtx(runCtx, "Weekly burn finished",
				zap.String("batch_id", report.BatchID.String()),
				zap.String("gross_usd", report.GrossUSD.String()),
				zap.String("reserved_usd", report.ReservedUSD.String()),
				zap.Bool("executed", report.Executed),
				zap.String("note", report.Note))
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to schedule weekly burn", zap.Error(err),
				zap.String("spec", cfg.Treasury.BurnSchedule))
		}
		logger.InfoCtx(ctx, "Scheduled weekly burn", zap.String("spec", cfg.Treasury.BurnSchedule))
	}

	if cfg.Treasury.InvoiceSchedule != "" {
		_, err = scheduler.AddFunc(cfg.Treasury.InvoiceSchedule, func() {
			runCtx, runCancel := context.WithTimeout(ctx, jobTimeout)
			defer runCancel()

			batches, err := treasuryService.RunWeeklyInvoices(runCtx)
			if err != nil {
				logger.ErrorCtx(runCtx, err, zap.String("job", "weekly-invoices"))
				return
			}
			logger.InfoCtx(runCtx, "Weekly invoices finished", zap.Int("batches", len(batches)))
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to schedule weekly invoices", zap.Error(err),
				zap.String("spec", cfg.Treasury.InvoiceSchedule))
		}
		logger.InfoCtx(ctx, "Scheduled weekly invoices", zap.String("spec", cfg.Treasury.InvoiceSchedule))
	}

	scheduler.Start()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	cancel()

	// Let a running job finish before exiting
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(jobTimeout):
		logger.Warn("Job still running at shutdown deadline")
	}

	logger.Info("Scheduler stopped")
}
