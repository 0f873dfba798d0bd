// Package treasury runs the revenue ledger and the buyback-and-burn pipeline:
// every dollar in, the weekly reservation against eligible revenue, and the
// handoff to the chain gateway that actually buys and burns CANDLE.
package treasury

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/chain"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/events"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

// BurnReport summarizes one weekly burn run
type BurnReport struct {
	BatchID     uuid.UUID
	GrossUSD    decimal.Decimal
	ReservedUSD decimal.Decimal
	Executed    bool
	Note        string
}

// Service is the treasury pipeline
type Service struct {
	store   store.Store
	gateway chain.Gateway
	events  events.Publisher
	cfg     config.TreasuryConfig
}

// NewService creates a treasury service
func NewService(s store.Store, gateway chain.Gateway, pub events.Publisher, cfg config.TreasuryConfig) *Service {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &Service{store: s, gateway: gateway, events: pub, cfg: cfg}
}

// RecordRevenue files a revenue row. Rows carrying a source reference are
// replay-safe: recording the same reference twice returns the first outcome
// with inserted=false.
func (s *Service) RecordRevenue(ctx context.Context, entry *schema.RevenueEntry) (bool, error) {
	if entry.AmountUSD.LessThanOrEqual(decimal.Zero) {
		return false, fmt.Errorf("%w: revenue amount must be positive", domain.ErrValidation)
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	// Dispatch fees only become burnable once the load's settlement confirms.
	if entry.Source == domain.SourceDispatchFee {
		entry.BurnEligible = false
	}
	inserted, err := s.store.InsertRevenueEntry(ctx, entry)
	if err != nil {
		return false, err
	}
	if !inserted {
		logger.InfoCtx(ctx, "revenue replay skipped",
			zap.String("source", string(entry.Source)))
	}
	return inserted, nil
}

// ConfirmDispatchSettlement flips dispatch fee rows for a settled load to
// burn-eligible. Returns how many rows flipped; replays flip nothing.
func (s *Service) ConfirmDispatchSettlement(ctx context.Context, loadRefID string) (int, error) {
	return s.store.ConfirmDispatchSettlement(ctx, loadRefID)
}

// CreateBatch opens a CREATED burn batch over [periodStart, periodEnd) at the
// given reservation rate. A zero rate falls back to the default.
func (s *Service) CreateBatch(ctx context.Context, periodStart time.Time, periodEnd time.Time, rateBps int) (*schema.BurnBatch, error) {
	if rateBps == 0 {
		rateBps = domain.DefaultBurnRateBps
	}
	if rateBps < 1 || rateBps > 5000 {
		return nil, fmt.Errorf("%w: rate_bps must be within [1, 5000]", domain.ErrValidation)
	}
	if !periodEnd.After(periodStart) {
		return nil, fmt.Errorf("%w: period end must follow period start", domain.ErrValidation)
	}

	batch := &schema.BurnBatch{
		ID:          uuid.New(),
		Status:      domain.BurnBatchCreated,
		RateBps:     rateBps,
		PeriodStart: periodStart.UTC(),
		PeriodEnd:   periodEnd.UTC(),
		DryRun:      s.cfg.DryRun,
	}
	if err := s.store.CreateBurnBatch(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Reserve attaches the batch's eligible revenue rows and computes the
// reservation.
func (s *Service) Reserve(ctx context.Context, id uuid.UUID) (*schema.BurnBatch, error) {
	return s.store.ReserveBurnBatch(ctx, id)
}

// Execute finalizes a RESERVED batch with the chain gateway's results.
func (s *Service) Execute(ctx context.Context, id uuid.UUID, result store.BurnExecution) (*schema.BurnBatch, error) {
	if !domain.ValidTxHash(result.BuyTxHash) || !domain.ValidTxHash(result.BurnTxHash) {
		return nil, fmt.Errorf("%w: malformed transaction hashes", domain.ErrValidation)
	}
	return s.store.ExecuteBurnBatch(ctx, id, result)
}

// Fail abandons a RESERVED batch, releasing its rows for a later run.
func (s *Service) Fail(ctx context.Context, id uuid.UUID, reason string) error {
	return s.store.FailBurnBatch(ctx, id, reason)
}

// Stats aggregates the revenue ledger and burn history.
func (s *Service) Stats(ctx context.Context) (*store.TreasuryStats, error) {
	return s.store.GetTreasuryStats(ctx)
}

// RegisterWallet records a named platform wallet. Re-registering the same
// (name, chain) pair updates the address in place.
func (s *Service) RegisterWallet(ctx context.Context, name string, chain string, address string) (*schema.TreasuryWallet, error) {
	if name == "" || chain == "" || address == "" {
		return nil, fmt.Errorf("%w: wallet name, chain, and address are required", domain.ErrValidation)
	}
	wallet := &schema.TreasuryWallet{
		WalletName: name,
		Chain:      chain,
		Address:    address,
	}
	if err := s.store.UpsertTreasuryWallet(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// Wallets lists the registered platform wallets.
func (s *Service) Wallets(ctx context.Context) ([]schema.TreasuryWallet, error) {
	return s.store.ListTreasuryWallets(ctx)
}

// RunWeeklyBurn creates, reserves, and (config permitting) executes a burn
// batch over the trailing seven days. A configured USD cap or dry-run mode
// leaves the batch RESERVED for a manual decision.
func (s *Service) RunWeeklyBurn(ctx context.Context) (*BurnReport, error) {
	now := time.Now().UTC()
	batch, err := s.CreateBatch(ctx, now.AddDate(0, 0, -7), now, s.cfg.BurnRateBps)
	if err != nil {
		return nil, err
	}
	report := &BurnReport{BatchID: batch.ID}

	reserved, err := s.Reserve(ctx, batch.ID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			report.Note = "no eligible revenue in period"
			return report, nil
		}
		return nil, err
	}
	report.GrossUSD = reserved.GrossUSD
	report.ReservedUSD = reserved.ReservedUSD

	if limit := s.maxBurnUSD(); limit != nil && reserved.ReservedUSD.GreaterThan(*limit) {
		report.Note = fmt.Sprintf("reservation %s exceeds cap %s, left RESERVED",
			reserved.ReservedUSD, limit)
		logger.WarnCtx(ctx, "burn batch capped",
			zap.String("batch_id", batch.ID.String()),
			zap.String("reserved_usd", reserved.ReservedUSD.String()))
		return report, nil
	}
	if s.cfg.DryRun {
		report.Note = "dry run, left RESERVED"
		return report, nil
	}

	result, err := s.gateway.ExecuteBuyAndBurn(ctx, batch.ID, reserved.ReservedUSD)
	if err != nil {
		if failErr := s.Fail(ctx, batch.ID, err.Error()); failErr != nil {
			logger.ErrorCtx(ctx, failErr, zap.String("batch_id", batch.ID.String()))
		}
		return nil, fmt.Errorf("failed to execute burn batch: %w", err)
	}

	_, err = s.Execute(ctx, batch.ID, store.BurnExecution{
		USDSpent:     result.USDSpent,
		CandleBurned: result.CandleBurned,
		BuyTxHash:    result.BuyTxHash,
		BurnTxHash:   result.BurnTxHash,
	})
	if err != nil {
		return nil, err
	}
	report.Executed = true

	if err := s.events.Publish(ctx, events.EventBurnExecuted, map[string]interface{}{
		"batch_id":      batch.ID.String(),
		"usd_spent":     result.USDSpent.String(),
		"candle_burned": result.CandleBurned.String(),
		"burn_tx_hash":  result.BurnTxHash,
	}); err != nil {
		logger.WarnCtx(ctx, "event publish failed", zap.Error(err))
	}
	return report, nil
}

// RunWeeklyInvoices batches the trailing week's dispatch fees for drivers on
// weekly invoicing.
func (s *Service) RunWeeklyInvoices(ctx context.Context) ([]schema.InvoiceBatch, error) {
	now := time.Now().UTC()
	batches, err := s.store.CreateWeeklyInvoiceBatches(ctx, now.AddDate(0, 0, -7), now)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "weekly invoices batched", zap.Int("drivers", len(batches)))
	return batches, nil
}

func (s *Service) maxBurnUSD() *decimal.Decimal {
	raw := strings.TrimSpace(s.cfg.MaxBurnUSD)
	if raw == "" {
		return nil
	}
	limit, err := decimal.NewFromString(raw)
	if err != nil || limit.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	return &limit
}
