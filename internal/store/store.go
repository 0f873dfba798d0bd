package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

// BurnExecution carries the chain gateway's result for a burn batch
type BurnExecution struct {
	USDSpent     decimal.Decimal
	CandleBurned decimal.Decimal
	BuyTxHash    string
	BurnTxHash   string
}

// TreasuryStats aggregates the revenue and burn pipeline for reporting
type TreasuryStats struct {
	TotalRevenueUSD        decimal.Decimal
	RevenueBySource        map[domain.RevenueSource]decimal.Decimal
	EligibleUnreservedUSD  decimal.Decimal
	OutstandingReservedUSD decimal.Decimal
	TotalBurnedUSD         decimal.Decimal
	TotalCandleBurned      decimal.Decimal
	BatchCount             int64
}

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// Drivers
	// CreateDriver inserts a new carrier
	CreateDriver(ctx context.Context, driver *schema.Driver) error
	// GetDriverByHandle retrieves a driver by mailbox handle
	GetDriverByHandle(ctx context.Context, handle string) (*schema.Driver, error)
	// GetDriverByMC retrieves a driver by MC number
	GetDriverByMC(ctx context.Context, mcNumber string) (*schema.Driver, error)
	// GetDriverByScoutKey retrieves a driver by scout API key
	GetDriverByScoutKey(ctx context.Context, apiKey string) (*schema.Driver, error)
	// UpdateDriverWallet sets the driver's payout wallet address
	UpdateDriverWallet(ctx context.Context, mcNumber string, walletAddress string) error
	// TouchScoutHeartbeat records the latest extension heartbeat
	TouchScoutHeartbeat(ctx context.Context, mcNumber string, at time.Time) error
	// ListDriversByBillingMethod lists carriers on a billing method
	ListDriversByBillingMethod(ctx context.Context, method domain.BillingMethod) ([]schema.Driver, error)

	// Loads
	// UpsertLoads inserts ingested loads, ignoring already-known ref IDs.
	// Returns the number of genuinely new loads.
	UpsertLoads(ctx context.Context, loads []schema.Load) (int, error)
	// GetLoadByRefID retrieves a load by its board reference
	GetLoadByRefID(ctx context.Context, refID string) (*schema.Load, error)

	// Negotiations
	// CreateNegotiation appends a new negotiation row
	CreateNegotiation(ctx context.Context, negotiation *schema.Negotiation) error
	// GetNegotiationByID retrieves a negotiation by primary key
	GetNegotiationByID(ctx context.Context, id uint64) (*schema.Negotiation, error)
	// GetLatestNegotiation retrieves the newest negotiation row for a
	// (load, driver) pair, nil when none exists
	GetLatestNegotiation(ctx context.Context, loadRefID string, driverMC string) (*schema.Negotiation, error)
	// TransitionNegotiation moves a negotiation to a new status under a row
	// lock, re-checking the transition against the current status. mutate runs
	// inside the transaction after the status change.
	TransitionNegotiation(ctx context.Context, id uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error)
	// ForceTransitionNegotiation is TransitionNegotiation with the operator
	// override rules, allowing WON from SENT or REPLIED
	ForceTransitionNegotiation(ctx context.Context, id uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error)
	// UpdateNegotiationDraft stores a fresh AI draft and its token usage
	UpdateNegotiationDraft(ctx context.Context, id uint64, subject string, body string, promptTokens int, completionTokens int) error

	// Messages
	// InsertMessage records a message, returning false when the message ID was
	// already seen
	InsertMessage(ctx context.Context, message *schema.Message) (bool, error)
	// CountInboundMessages counts broker messages on a negotiation
	CountInboundMessages(ctx context.Context, negotiationID uint64) (int64, error)
	// ListMessagesForNegotiation lists a negotiation's messages oldest first
	ListMessagesForNegotiation(ctx context.Context, negotiationID uint64) ([]schema.Message, error)

	// Autopilot
	// UpsertAutopilotSetting creates or updates the bounds for a (driver, load)
	UpsertAutopilotSetting(ctx context.Context, setting *schema.AutopilotSetting) error
	// GetAutopilotSetting retrieves the bounds for a (driver, load), nil when unset
	GetAutopilotSetting(ctx context.Context, driverMC string, loadRefID string) (*schema.AutopilotSetting, error)

	// Ledger
	// AppendLedgerEntry appends a credit row
	AppendLedgerEntry(ctx context.Context, entry *schema.LedgerEntry) error
	// InsertLedgerEntryOnce appends a credit row unless the driver already has
	// a CREDITED one for the same load reference. Returns false when skipped.
	InsertLedgerEntryOnce(ctx context.Context, entry *schema.LedgerEntry) (bool, error)
	// LedgerEntriesForDriver lists a driver's ledger rows newest first
	LedgerEntriesForDriver(ctx context.Context, mcNumber string) ([]schema.LedgerEntry, error)
	// LedgerStatusTotals sums a driver's CANDLE amounts per status
	LedgerStatusTotals(ctx context.Context, mcNumber string) (map[domain.LedgerStatus]decimal.Decimal, error)
	// ConsumeCredits appends a negative CONSUMED row after verifying the
	// claimable balance covers the amount
	ConsumeCredits(ctx context.Context, mcNumber string, loadID string, candle decimal.Decimal, usd decimal.Decimal) error
	// ConsumeCreditsOnce is ConsumeCredits guarded to one CONSUMED row per
	// (driver, load); returns false when the pair was already charged
	ConsumeCreditsOnce(ctx context.Context, mcNumber string, loadID string, candle decimal.Decimal, usd decimal.Decimal) (bool, error)
	// Reinvest consumes claimable credits and locks them back boosted, in one
	// transaction
	Reinvest(ctx context.Context, mcNumber string, amount decimal.Decimal, boosted decimal.Decimal, unlocksAt time.Time) error
	// TransferToCard claims ledger rows FIFO by earn date and credits the USD
	// conversion to the driver's ACTIVE debit card
	TransferToCard(ctx context.Context, mcNumber string, amount decimal.Decimal, usd decimal.Decimal, tokenPrice decimal.Decimal) (*schema.CardTransaction, error)

	// Cards
	// CreateDebitCard issues a card record for a driver
	CreateDebitCard(ctx context.Context, card *schema.DebitCard) error
	// GetDebitCard retrieves the driver's card, nil when none exists
	GetDebitCard(ctx context.Context, mcNumber string) (*schema.DebitCard, error)
	// SetDebitCardStatus advances the card lifecycle one step, stamping the
	// step's timestamp. lastFour is recorded on the SHIPPED step.
	SetDebitCardStatus(ctx context.Context, mcNumber string, status domain.CardStatus, lastFour *string) error

	// Claims
	// CreateClaimRequest records a payout request after verifying the
	// claimable balance covers the amount
	CreateClaimRequest(ctx context.Context, request *schema.ClaimRequest) error
	// GetClaimRequest retrieves a claim request
	GetClaimRequest(ctx context.Context, id uint64) (*schema.ClaimRequest, error)
	// ListClaimRequests lists claim requests in a status, newest first
	ListClaimRequests(ctx context.Context, status domain.ClaimStatus) ([]schema.ClaimRequest, error)
	// DecideClaim moves a PENDING claim to APPROVED or REJECTED
	DecideClaim(ctx context.Context, id uint64, approve bool) (*schema.ClaimRequest, error)
	// MarkClaimPaid moves an APPROVED claim to PAID and flips the backing
	// ledger rows to CLAIMED with the payout transaction hash
	MarkClaimPaid(ctx context.Context, id uint64, txHash string) (*schema.ClaimRequest, error)

	// Notifications
	// CreateNotification records a driver-facing alert
	CreateNotification(ctx context.Context, mcNumber string, kind domain.NotificationType, message string) error
	// ListNotifications lists a driver's alerts newest first
	ListNotifications(ctx context.Context, mcNumber string, unreadOnly bool) ([]schema.Notification, error)
	// MarkNotificationRead acknowledges an alert
	MarkNotificationRead(ctx context.Context, id uint64, mcNumber string) error

	// Revenue
	// InsertRevenueEntry records platform revenue, returning false when the
	// source reference was already recorded
	InsertRevenueEntry(ctx context.Context, entry *schema.RevenueEntry) (bool, error)
	// ConfirmDispatchSettlement flips a load's RECORDED dispatch fee rows to
	// burn-eligible and returns the number flipped. Replays flip nothing and
	// return 0.
	ConfirmDispatchSettlement(ctx context.Context, loadRefID string) (int, error)

	// Burn pipeline
	// CreateBurnBatch records a new CREATED batch
	CreateBurnBatch(ctx context.Context, batch *schema.BurnBatch) error
	// GetBurnBatch retrieves a batch
	GetBurnBatch(ctx context.Context, id uuid.UUID) (*schema.BurnBatch, error)
	// ListBurnBatches lists batches newest first
	ListBurnBatches(ctx context.Context, limit int) ([]schema.BurnBatch, error)
	// ReserveBurnBatch attaches all eligible unreserved revenue rows to a
	// CREATED batch and computes the reservation
	ReserveBurnBatch(ctx context.Context, id uuid.UUID) (*schema.BurnBatch, error)
	// ExecuteBurnBatch moves a RESERVED batch to BURNED with the chain result
	ExecuteBurnBatch(ctx context.Context, id uuid.UUID, result BurnExecution) (*schema.BurnBatch, error)
	// FailBurnBatch moves a RESERVED batch to FAILED and releases its rows
	FailBurnBatch(ctx context.Context, id uuid.UUID, reason string) error
	// GetTreasuryStats aggregates the revenue ledger and burn history
	GetTreasuryStats(ctx context.Context) (*TreasuryStats, error)

	// Invoices
	// CreateWeeklyInvoiceBatches groups each WEEKLY_INVOICE driver's uninvoiced
	// dispatch fee revenue rows into one invoice batch per driver
	CreateWeeklyInvoiceBatches(ctx context.Context, periodStart time.Time, periodEnd time.Time) ([]schema.InvoiceBatch, error)

	// Treasury wallets
	// UpsertTreasuryWallet creates or updates a named wallet
	UpsertTreasuryWallet(ctx context.Context, wallet *schema.TreasuryWallet) error
	// ListTreasuryWallets lists the platform wallets
	ListTreasuryWallets(ctx context.Context) ([]schema.TreasuryWallet, error)
}
