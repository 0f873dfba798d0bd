package mailroom

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/adapter"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/store"
)

// Poller defines the long-running mailbox poll loop
//
//go:generate mockgen -source=poller.go -destination=../mocks/poller.go -package=mocks -mock_names=Poller=MockPoller
type Poller interface {
	// Start begins the poll loop. This is a blocking call that runs until the
	// context is canceled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops the poller after the in-flight cycle finishes.
	Stop(ctx context.Context) error

	// Name returns the poller's name for logging and identification
	Name() string
}

// PollerConfig bounds the poll loop
type PollerConfig struct {
	Mailbox      string        // cursor key, usually the IMAP mailbox name
	PollInterval time.Duration // sleep between successful cycles
	ErrorBackoff time.Duration // sleep after a failed cycle
	FetchLimit   int           // messages per cycle
}

type poller struct {
	config    PollerConfig
	fetcher   Fetcher
	processor *Processor
	cursors   store.CursorStore
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPoller creates a mailbox poller
func NewPoller(config PollerConfig, fetcher Fetcher, processor *Processor, cursors store.CursorStore, clock adapter.Clock) Poller {
	return &poller{
		config:    config,
		fetcher:   fetcher,
		processor: processor,
		cursors:   cursors,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the poller's name
func (p *poller) Name() string {
	return "mailroom-poller"
}

// Start begins the poll loop
func (p *poller) Start(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return fmt.Errorf("poller already running")
	}
	defer func() {
		p.running.Store(false)
		close(p.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting mailroom poller",
		zap.String("mailbox", p.config.Mailbox),
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("fetch_limit", p.config.FetchLimit),
	)

	// Configure exponential backoff for consecutive mailbox failures
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.config.ErrorBackoff
	b.MaxInterval = 10 * p.config.ErrorBackoff
	b.MaxElapsedTime = 0 // Keep retrying; the mailbox coming back is the only exit
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Mailroom poller stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-p.stopChan:
			logger.InfoCtx(ctx, "Mailroom poller stop requested")
			return nil
		default:
			wait := p.config.PollInterval
			if err := p.runPollCycle(ctx); err != nil {
				logger.ErrorCtx(ctx, err)
				wait = b.NextBackOff()
			} else {
				b.Reset()
			}
			if !p.sleep(ctx, wait) {
				return nil
			}
		}
	}
}

// Stop gracefully stops the poller with timeout support
func (p *poller) Stop(ctx context.Context) error {
	if !p.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping mailroom poller")
	close(p.stopChan)

	select {
	case <-p.stoppedCh:
		logger.InfoCtx(ctx, "Mailroom poller stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Mailroom poller stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runPollCycle fetches everything past the cursor and processes it in order.
// The cursor only advances past messages that either processed cleanly or
// failed in a way retrying cannot fix.
func (p *poller) runPollCycle(ctx context.Context) error {
	cursor, err := p.cursors.GetMailboxCursor(ctx, p.config.Mailbox)
	if err != nil {
		return fmt.Errorf("failed to load mailbox cursor: %w", err)
	}

	emails, err := p.fetcher.Fetch(ctx, cursor, p.config.FetchLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch mail: %w", err)
	}
	if len(emails) == 0 {
		return nil
	}

	logger.InfoCtx(ctx, "Fetched inbound mail",
		zap.Int("count", len(emails)),
		zap.Uint32("after_uid", cursor))

	processed := cursor
	for _, email := range emails {
		if ctx.Err() != nil {
			break
		}
		if err := p.processor.Process(ctx, email); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.Uint32("uid", email.UID),
				zap.String("message_id", email.MessageID))
			// Leave the cursor behind this message so the next cycle retries it.
			break
		}
		if email.UID > processed {
			processed = email.UID
		}
	}

	if processed > cursor {
		if err := p.cursors.SetMailboxCursor(ctx, p.config.Mailbox, processed); err != nil {
			return fmt.Errorf("failed to save mailbox cursor: %w", err)
		}
	}
	return ctx.Err()
}

// sleep waits for the duration but can be interrupted by context cancellation
// or a stop request. Returns false when interrupted.
func (p *poller) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-p.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-p.stopChan:
		return false
	}
}
