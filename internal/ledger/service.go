// Package ledger owns the driver rewards ledger. Balances are never stored;
// every number a driver sees is derived from the append-only ledger rows.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

// Service exposes ledger operations over the store.
type Service struct {
	store store.Store
}

// NewService creates a ledger service
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// BalanceSummary is the derived view of a driver's ledger.
type BalanceSummary struct {
	// TotalCandle sums every row except REVOKED.
	TotalCandle decimal.Decimal
	// LockedCandle sums LOCKED and CREDITED rows still inside their lock window.
	LockedCandle decimal.Decimal
	// ClaimableCandle is what the driver can spend, transfer, or claim now.
	ClaimableCandle decimal.Decimal
	// ConsumedCandle is the absolute total spent on automation.
	ConsumedCandle decimal.Decimal
	// BuybackRate is the display-only buyback multiplier for the driver's tier.
	BuybackRate string
}

// IssueLoadCredits credits the driver rebate share of the dispatch fee for a
// won load. One row per (driver, load); a second confirmation of the same
// load credits nothing.
func (s *Service) IssueLoadCredits(ctx context.Context, driverMC string, loadRefID string, finalRate decimal.Decimal) (*domain.FeeSplit, error) {
	if finalRate.Sign() <= 0 {
		return nil, fmt.Errorf("%w: final rate must be positive", domain.ErrValidation)
	}

	split := domain.ComputeFeeSplit(finalRate)
	now := time.Now().UTC()
	entry := schema.LedgerEntry{
		DriverMCNumber: driverMC,
		LoadID:         loadRefID,
		AmountUSD:      split.DriverRebateUSD,
		AmountCandle:   split.DriverRebateUSD,
		EarnedAt:       now,
		UnlocksAt:      now,
		Status:         domain.LedgerCredited,
	}
	if _, err := s.store.InsertLedgerEntryOnce(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to issue load credits: %w", err)
	}
	return &split, nil
}

// GrantStarterPack seeds a new driver's spendable balance. SOLO authorities
// get 10 CANDLE, FLEET 50. Granting is idempotent per driver.
func (s *Service) GrantStarterPack(ctx context.Context, driver *schema.Driver) (bool, error) {
	loadID := domain.StarterPackLoadID
	amount := domain.SoloStarterCredits
	if driver.AuthorityType == domain.AuthorityFleet {
		loadID = domain.FleetStarterPackLoadID
		amount = domain.FleetStarterCredits
	}

	now := time.Now().UTC()
	entry := schema.LedgerEntry{
		DriverMCNumber: driver.MCNumber,
		LoadID:         loadID,
		AmountUSD:      amount,
		AmountCandle:   amount,
		EarnedAt:       now,
		UnlocksAt:      now,
		Status:         domain.LedgerCredited,
	}
	granted, err := s.store.InsertLedgerEntryOnce(ctx, &entry)
	if err != nil {
		return false, fmt.Errorf("failed to grant starter pack: %w", err)
	}
	return granted, nil
}

// CreditFindersFee pays the load's discoverer their cut of the final rate.
// Skipped when the discoverer won the load themselves. Single-shot per load.
func (s *Service) CreditFindersFee(ctx context.Context, discovererMC string, winnerMC string, loadRefID string, finalRate decimal.Decimal) (bool, error) {
	if discovererMC == "" || discovererMC == winnerMC {
		return false, nil
	}

	now := time.Now().UTC()
	fee := domain.ComputeFindersFee(finalRate)
	entry := schema.LedgerEntry{
		DriverMCNumber: discovererMC,
		LoadID:         domain.FindersFeeLoadPrefix + loadRefID,
		AmountUSD:      fee,
		AmountCandle:   fee,
		EarnedAt:       now,
		UnlocksAt:      now,
		Status:         domain.LedgerCredited,
	}
	credited, err := s.store.InsertLedgerEntryOnce(ctx, &entry)
	if err != nil {
		return false, fmt.Errorf("failed to credit finders fee: %w", err)
	}
	if credited {
		msg := fmt.Sprintf("Finder's fee: %s CANDLE for load %s", fee, loadRefID)
		if err := s.store.CreateNotification(ctx, discovererMC, domain.NotifySystemAlert, msg); err != nil {
			return true, fmt.Errorf("failed to notify discoverer: %w", err)
		}
	}
	return credited, nil
}

// Balances derives the driver's balance summary from their ledger rows.
func (s *Service) Balances(ctx context.Context, driver *schema.Driver) (*BalanceSummary, error) {
	entries, err := s.store.LedgerEntriesForDriver(ctx, driver.MCNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary := &BalanceSummary{BuybackRate: driver.RewardTier.BuybackDisplayRate()}
	for _, e := range entries {
		if e.Status == domain.LedgerRevoked {
			continue
		}
		summary.TotalCandle = summary.TotalCandle.Add(e.AmountCandle)

		switch e.Status {
		case domain.LedgerLocked, domain.LedgerCredited:
			if e.UnlocksAt.After(now) {
				summary.LockedCandle = summary.LockedCandle.Add(e.AmountCandle)
			} else {
				summary.ClaimableCandle = summary.ClaimableCandle.Add(e.AmountCandle)
			}
		case domain.LedgerVested:
			summary.ClaimableCandle = summary.ClaimableCandle.Add(e.AmountCandle)
		case domain.LedgerConsumed:
			summary.ClaimableCandle = summary.ClaimableCandle.Add(e.AmountCandle)
			summary.ConsumedCandle = summary.ConsumedCandle.Add(e.AmountCandle.Abs())
		}
	}
	return summary, nil
}

// ChargeAction spends claimable credit on an automation action. One CANDLE is
// one USD of service value, so the USD leg mirrors the CANDLE amount.
func (s *Service) ChargeAction(ctx context.Context, driverMC string, loadRefID string, cost decimal.Decimal) error {
	return s.store.ConsumeCredits(ctx, driverMC, loadRefID, cost, cost)
}

// ChargeAutopilotSuccess collects the flat automation fee for a booked load.
// Returns false without charging when the (driver, load) pair already paid;
// rate confirmations get resent and forwarded routinely.
func (s *Service) ChargeAutopilotSuccess(ctx context.Context, driverMC string, loadRefID string) (bool, error) {
	return s.store.ConsumeCreditsOnce(ctx, driverMC, loadRefID, domain.AutopilotCost, domain.AutopilotCost)
}

// Reinvest moves the driver's whole claimable balance into a boosted lock:
// the amount grows by the reinvest multiplier and unlocks three months out.
func (s *Service) Reinvest(ctx context.Context, driver *schema.Driver) (decimal.Decimal, decimal.Decimal, error) {
	summary, err := s.Balances(ctx, driver)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	amount := summary.ClaimableCandle
	if amount.Sign() <= 0 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: nothing claimable to reinvest", domain.ErrInsufficientCredits)
	}

	boosted := domain.ReinvestBoost(amount)
	unlocksAt := time.Now().UTC().AddDate(0, domain.ReinvestLockMonths, 0)
	if err := s.store.Reinvest(ctx, driver.MCNumber, amount, boosted, unlocksAt); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return amount, boosted, nil
}

// TransferToCard moves claimable credit onto the driver's debit card. The card
// carries dollars, so the CANDLE amount converts at the current token price
// and the transaction records the price applied.
func (s *Service) TransferToCard(ctx context.Context, driverMC string, amount decimal.Decimal) (*schema.CardTransaction, error) {
	price := domain.CandlePriceUSD
	usd := domain.CandleToUSD(amount, price)
	return s.store.TransferToCard(ctx, driverMC, amount, usd, price)
}

// RequestCard opens the card lifecycle for the driver. The record is created
// on first request and advanced to REQUESTED; a repeat request fails the
// one-step lifecycle check.
func (s *Service) RequestCard(ctx context.Context, driverMC string) (*schema.DebitCard, error) {
	if err := s.store.CreateDebitCard(ctx, &schema.DebitCard{DriverMCNumber: driverMC}); err != nil {
		return nil, err
	}
	if err := s.store.SetDebitCardStatus(ctx, driverMC, domain.CardRequested, nil); err != nil {
		return nil, err
	}
	return s.store.GetDebitCard(ctx, driverMC)
}

// Card returns the driver's debit card, nil when none was ever requested.
func (s *Service) Card(ctx context.Context, driverMC string) (*schema.DebitCard, error) {
	return s.store.GetDebitCard(ctx, driverMC)
}

// RequestClaim opens a payout request for operator review. The wallet address
// is validated here; the chain transfer itself happens off-system.
func (s *Service) RequestClaim(ctx context.Context, driverMC string, walletAddress string, amount decimal.Decimal) (*schema.ClaimRequest, error) {
	if !domain.ValidWalletAddress(walletAddress) {
		return nil, fmt.Errorf("%w: invalid wallet address", domain.ErrValidation)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: claim amount must be positive", domain.ErrValidation)
	}

	request := schema.ClaimRequest{
		DriverMCNumber: driverMC,
		AmountCandle:   amount,
		WalletAddress:  walletAddress,
		Status:         domain.ClaimPending,
	}
	if err := s.store.CreateClaimRequest(ctx, &request); err != nil {
		return nil, err
	}
	return &request, nil
}
