package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
// database/sql treats MaxOpenConns=0 as "unlimited" and MaxIdleConns=0 as "no idle
// connections", neither of which we want.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// AutoMigrate creates or updates the schema for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Driver{},
		&schema.Load{},
		&schema.Negotiation{},
		&schema.Message{},
		&schema.AutopilotSetting{},
		&schema.LedgerEntry{},
		&schema.DebitCard{},
		&schema.CardTransaction{},
		&schema.ClaimRequest{},
		&schema.Notification{},
		&schema.RevenueEntry{},
		&schema.BurnBatch{},
		&schema.InvoiceBatch{},
		&schema.TreasuryWallet{},
		&schema.KeyValueStore{},
	)
}

// ===== Drivers =====

func (s *pgStore) CreateDriver(ctx context.Context, driver *schema.Driver) error {
	err := s.db.WithContext(ctx).Create(driver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: driver %s", domain.ErrDuplicate, driver.MCNumber)
		}
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

func (s *pgStore) GetDriverByHandle(ctx context.Context, handle string) (*schema.Driver, error) {
	var driver schema.Driver
	err := s.db.WithContext(ctx).Where("handle = ?", handle).First(&driver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driver by handle: %w", err)
	}
	return &driver, nil
}

func (s *pgStore) GetDriverByMC(ctx context.Context, mcNumber string) (*schema.Driver, error) {
	var driver schema.Driver
	err := s.db.WithContext(ctx).Where("mc_number = ?", mcNumber).First(&driver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driver by MC number: %w", err)
	}
	return &driver, nil
}

func (s *pgStore) GetDriverByScoutKey(ctx context.Context, apiKey string) (*schema.Driver, error) {
	var driver schema.Driver
	err := s.db.WithContext(ctx).Where("scout_api_key = ?", apiKey).First(&driver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driver by scout key: %w", err)
	}
	return &driver, nil
}

func (s *pgStore) UpdateDriverWallet(ctx context.Context, mcNumber string, walletAddress string) error {
	res := s.db.WithContext(ctx).Model(&schema.Driver{}).
		Where("mc_number = ?", mcNumber).
		Update("wallet_address", walletAddress)
	if res.Error != nil {
		return fmt.Errorf("failed to update driver wallet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: driver %s", domain.ErrNotFound, mcNumber)
	}
	return nil
}

func (s *pgStore) TouchScoutHeartbeat(ctx context.Context, mcNumber string, at time.Time) error {
	res := s.db.WithContext(ctx).Model(&schema.Driver{}).
		Where("mc_number = ?", mcNumber).
		Update("scout_last_seen_at", at)
	if res.Error != nil {
		return fmt.Errorf("failed to record scout heartbeat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: driver %s", domain.ErrNotFound, mcNumber)
	}
	return nil
}

func (s *pgStore) ListDriversByBillingMethod(ctx context.Context, method domain.BillingMethod) ([]schema.Driver, error) {
	var drivers []schema.Driver
	err := s.db.WithContext(ctx).
		Where("billing_method = ?", method).
		Order("mc_number").
		Find(&drivers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// ===== Loads =====

func (s *pgStore) UpsertLoads(ctx context.Context, loads []schema.Load) (int, error) {
	if len(loads) == 0 {
		return 0, nil
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ref_id"}},
		DoNothing: true,
	}).Create(&loads)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to upsert loads: %w", res.Error)
	}

	return int(res.RowsAffected), nil
}

func (s *pgStore) GetLoadByRefID(ctx context.Context, refID string) (*schema.Load, error) {
	var load schema.Load
	err := s.db.WithContext(ctx).Where("ref_id = ?", refID).First(&load).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get load: %w", err)
	}
	return &load, nil
}

// ===== Negotiations =====

func (s *pgStore) CreateNegotiation(ctx context.Context, negotiation *schema.Negotiation) error {
	if err := s.db.WithContext(ctx).Create(negotiation).Error; err != nil {
		return fmt.Errorf("failed to create negotiation: %w", err)
	}
	return nil
}

func (s *pgStore) GetNegotiationByID(ctx context.Context, id uint64) (*schema.Negotiation, error) {
	var negotiation schema.Negotiation
	err := s.db.WithContext(ctx).First(&negotiation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get negotiation: %w", err)
	}
	return &negotiation, nil
}

func (s *pgStore) GetLatestNegotiation(ctx context.Context, loadRefID string, driverMC string) (*schema.Negotiation, error) {
	var negotiation schema.Negotiation
	err := s.db.WithContext(ctx).
		Where("load_ref_id = ? AND driver_mc = ?", loadRefID, driverMC).
		Order("id DESC").
		First(&negotiation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest negotiation: %w", err)
	}
	return &negotiation, nil
}

func (s *pgStore) TransitionNegotiation(ctx context.Context, id uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
	return s.transitionNegotiation(ctx, id, to, mutate, domain.CanTransition)
}

// ForceTransitionNegotiation applies the operator override rules, so a thread
// whose rate confirmation arrived off-channel can be marked WON from SENT or
// REPLIED.
func (s *pgStore) ForceTransitionNegotiation(ctx context.Context, id uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
	return s.transitionNegotiation(ctx, id, to, mutate, domain.CanAdminTransition)
}

func (s *pgStore) transitionNegotiation(ctx context.Context, id uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation), allowed func(from, to domain.NegotiationStatus) bool) (*schema.Negotiation, error) {
	var out schema.Negotiation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n schema.Negotiation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&n, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: negotiation %d", domain.ErrNotFound, id)
			}
			return fmt.Errorf("failed to lock negotiation: %w", err)
		}

		// Same-status re-entry is allowed so repeated counters and repeated
		// inconclusive replies can still update the row.
		if n.Status != to && !allowed(n.Status, to) {
			return fmt.Errorf("%w: negotiation %d %s -> %s", domain.ErrIllegalTransition, id, n.Status, to)
		}

		n.Status = to
		if mutate != nil {
			mutate(&n)
		}

		if err := tx.Save(&n).Error; err != nil {
			return fmt.Errorf("failed to save negotiation: %w", err)
		}

		out = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *pgStore) UpdateNegotiationDraft(ctx context.Context, id uint64, subject string, body string, promptTokens int, completionTokens int) error {
	res := s.db.WithContext(ctx).Model(&schema.Negotiation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"draft_subject":     subject,
			"draft_body":        body,
			"prompt_tokens":     gorm.Expr("prompt_tokens + ?", promptTokens),
			"completion_tokens": gorm.Expr("completion_tokens + ?", completionTokens),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update negotiation draft: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: negotiation %d", domain.ErrNotFound, id)
	}
	return nil
}

// ===== Messages =====

func (s *pgStore) InsertMessage(ctx context.Context, message *schema.Message) (bool, error) {
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}},
		DoNothing: true,
	}).Create(message)
	if res.Error != nil {
		return false, fmt.Errorf("failed to insert message: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *pgStore) CountInboundMessages(ctx context.Context, negotiationID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Message{}).
		Where("negotiation_id = ? AND direction = ?", negotiationID, schema.MessageInbound).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count inbound messages: %w", err)
	}
	return count, nil
}

func (s *pgStore) ListMessagesForNegotiation(ctx context.Context, negotiationID uint64) ([]schema.Message, error) {
	var messages []schema.Message
	err := s.db.WithContext(ctx).
		Where("negotiation_id = ?", negotiationID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// ===== Autopilot =====

func (s *pgStore) UpsertAutopilotSetting(ctx context.Context, setting *schema.AutopilotSetting) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "driver_mc"}, {Name: "load_ref_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"floor_usd", "target_usd", "enabled", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return fmt.Errorf("failed to upsert autopilot setting: %w", err)
	}
	return nil
}

func (s *pgStore) GetAutopilotSetting(ctx context.Context, driverMC string, loadRefID string) (*schema.AutopilotSetting, error) {
	var setting schema.AutopilotSetting
	err := s.db.WithContext(ctx).
		Where("driver_mc = ? AND load_ref_id = ?", driverMC, loadRefID).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get autopilot setting: %w", err)
	}
	return &setting, nil
}

// ===== Ledger =====

func (s *pgStore) AppendLedgerEntry(ctx context.Context, entry *schema.LedgerEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

func (s *pgStore) InsertLedgerEntryOnce(ctx context.Context, entry *schema.LedgerEntry) (bool, error) {
	// Replays land on the partial unique index over (driver_mc_number, load_id)
	// for CREDITED rows and insert nothing, so two concurrent settlement
	// confirmations cannot double-credit.
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "driver_mc_number"}, {Name: "load_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{gorm.Expr("status = 'CREDITED'")}},
		DoNothing:   true,
	}).Create(entry)
	if res.Error != nil {
		return false, fmt.Errorf("failed to append ledger entry: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *pgStore) LedgerEntriesForDriver(ctx context.Context, mcNumber string) ([]schema.LedgerEntry, error) {
	var entries []schema.LedgerEntry
	err := s.db.WithContext(ctx).
		Where("driver_mc_number = ?", mcNumber).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

func (s *pgStore) LedgerStatusTotals(ctx context.Context, mcNumber string) (map[domain.LedgerStatus]decimal.Decimal, error) {
	type row struct {
		Status domain.LedgerStatus
		Total  decimal.Decimal
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&schema.LedgerEntry{}).
		Select("status, COALESCE(SUM(amount_candle), 0) AS total").
		Where("driver_mc_number = ?", mcNumber).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum ledger: %w", err)
	}

	totals := make(map[domain.LedgerStatus]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.Status] = r.Total
	}
	return totals, nil
}

// claimableCond selects rows that count toward a driver's claimable balance:
// vested rows, the negative consumption rows that net against them, and
// locked or credited rows past their unlock date.
const claimableCond = "driver_mc_number = ? AND (status IN ? OR (status IN ? AND unlocks_at <= ?))"

// spendableCond selects the positive rows a transfer or claim may flip to
// CLAIMED.
const spendableCond = "driver_mc_number = ? AND amount_candle > 0 AND (status IN ? OR (status IN ? AND unlocks_at <= ?))"

// claimableInTx locks the driver's spendable rows and returns their net sum.
// Holding the row locks keeps a concurrent consumer from racing the balance check.
func claimableInTx(tx *gorm.DB, mcNumber string) (decimal.Decimal, error) {
	var entries []schema.LedgerEntry
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(claimableCond, mcNumber, domain.ClaimableStatuses, domain.UnlockGatedStatuses, time.Now().UTC()).
		Find(&entries).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to lock claimable rows: %w", err)
	}

	claimable := decimal.Zero
	for _, e := range entries {
		claimable = claimable.Add(e.AmountCandle)
	}
	return claimable, nil
}

func (s *pgStore) ConsumeCredits(ctx context.Context, mcNumber string, loadID string, candle decimal.Decimal, usd decimal.Decimal) error {
	if candle.Sign() <= 0 {
		return fmt.Errorf("%w: consume amount must be positive", domain.ErrValidation)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimable, err := claimableInTx(tx, mcNumber)
		if err != nil {
			return err
		}
		if claimable.LessThan(candle) {
			return fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientCredits, candle, claimable)
		}

		now := time.Now().UTC()
		entry := schema.LedgerEntry{
			DriverMCNumber: mcNumber,
			LoadID:         loadID,
			AmountUSD:      usd.Neg(),
			AmountCandle:   candle.Neg(),
			EarnedAt:       now,
			UnlocksAt:      now,
			Status:         domain.LedgerConsumed,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append consumption: %w", err)
		}
		return nil
	})
}

func (s *pgStore) ConsumeCreditsOnce(ctx context.Context, mcNumber string, loadID string, candle decimal.Decimal, usd decimal.Decimal) (bool, error) {
	if candle.Sign() <= 0 {
		return false, fmt.Errorf("%w: consume amount must be positive", domain.ErrValidation)
	}

	charged := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Per-send charges on the same load are smaller rows; only an exact
		// amount match marks this charge as already taken.
		var existing int64
		err := tx.Model(&schema.LedgerEntry{}).
			Where("driver_mc_number = ? AND load_id = ? AND status = ? AND amount_candle = ?",
				mcNumber, loadID, domain.LedgerConsumed, candle.Neg()).
			Count(&existing).Error
		if err != nil {
			return fmt.Errorf("failed to check prior consumption: %w", err)
		}
		if existing > 0 {
			return nil
		}

		claimable, err := claimableInTx(tx, mcNumber)
		if err != nil {
			return err
		}
		if claimable.LessThan(candle) {
			return fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientCredits, candle, claimable)
		}

		now := time.Now().UTC()
		entry := schema.LedgerEntry{
			DriverMCNumber: mcNumber,
			LoadID:         loadID,
			AmountUSD:      usd.Neg(),
			AmountCandle:   candle.Neg(),
			EarnedAt:       now,
			UnlocksAt:      now,
			Status:         domain.LedgerConsumed,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append consumption: %w", err)
		}
		charged = true
		return nil
	})
	return charged, err
}

func (s *pgStore) Reinvest(ctx context.Context, mcNumber string, amount decimal.Decimal, boosted decimal.Decimal, unlocksAt time.Time) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: reinvest amount must be positive", domain.ErrValidation)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimable, err := claimableInTx(tx, mcNumber)
		if err != nil {
			return err
		}
		if claimable.LessThan(amount) {
			return fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientCredits, amount, claimable)
		}

		now := time.Now().UTC()
		consumed := schema.LedgerEntry{
			DriverMCNumber: mcNumber,
			LoadID:         domain.ReinvestLoadID,
			AmountUSD:      amount.Neg().Round(2),
			AmountCandle:   amount.Neg(),
			EarnedAt:       now,
			UnlocksAt:      now,
			Status:         domain.LedgerConsumed,
		}
		locked := schema.LedgerEntry{
			DriverMCNumber: mcNumber,
			LoadID:         domain.ReinvestLoadID,
			AmountUSD:      boosted.Round(2),
			AmountCandle:   boosted,
			EarnedAt:       now,
			UnlocksAt:      unlocksAt,
			Status:         domain.LedgerLocked,
		}
		if err := tx.Create(&consumed).Error; err != nil {
			return fmt.Errorf("failed to append reinvest consumption: %w", err)
		}
		if err := tx.Create(&locked).Error; err != nil {
			return fmt.Errorf("failed to append reinvest lock: %w", err)
		}
		return nil
	})
}

func (s *pgStore) TransferToCard(ctx context.Context, mcNumber string, amount decimal.Decimal, usd decimal.Decimal, tokenPrice decimal.Decimal) (*schema.CardTransaction, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: transfer amount must be positive", domain.ErrValidation)
	}

	var out schema.CardTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card schema.DebitCard
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("driver_mc_number = ?", mcNumber).
			First(&card).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no card for driver %s", domain.ErrNotFound, mcNumber)
			}
			return fmt.Errorf("failed to lock card: %w", err)
		}
		if card.Status != domain.CardActive {
			return fmt.Errorf("%w: card is %s", domain.ErrConflict, card.Status)
		}

		claimable, err := claimableInTx(tx, mcNumber)
		if err != nil {
			return err
		}
		if claimable.LessThan(amount) {
			return fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientCredits, amount, claimable)
		}

		// Whole rows flip to CLAIMED in earn order until the requested amount
		// is covered. The final row may over-claim.
		var rows []schema.LedgerEntry
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(spendableCond, mcNumber,
				domain.ClaimableStatuses, domain.UnlockGatedStatuses, time.Now().UTC()).
			Order("earned_at ASC, id ASC").
			Find(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to lock ledger rows: %w", err)
		}

		covered := decimal.Zero
		for _, row := range rows {
			if covered.GreaterThanOrEqual(amount) {
				break
			}
			res := tx.Model(&schema.LedgerEntry{}).
				Where("id = ?", row.ID).
				Update("status", domain.LedgerClaimed)
			if res.Error != nil {
				return fmt.Errorf("failed to claim ledger row: %w", res.Error)
			}
			covered = covered.Add(row.AmountCandle)
		}

		card.BalanceUSD = card.BalanceUSD.Add(usd)
		if err := tx.Save(&card).Error; err != nil {
			return fmt.Errorf("failed to update card balance: %w", err)
		}

		out = schema.CardTransaction{
			CardID:         card.ID,
			DriverMCNumber: mcNumber,
			Kind:           schema.CardTxLoad,
			AmountCandle:   amount,
			AmountUSD:      usd,
			TokenPriceUSD:  tokenPrice,
			Status:         schema.CardTxCompleted,
			Memo:           "rewards transfer",
		}
		if err := tx.Create(&out).Error; err != nil {
			return fmt.Errorf("failed to record card transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ===== Cards =====

func (s *pgStore) CreateDebitCard(ctx context.Context, card *schema.DebitCard) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "driver_mc_number"}},
		DoNothing: true,
	}).Create(card).Error
	if err != nil {
		return fmt.Errorf("failed to create debit card: %w", err)
	}
	return nil
}

func (s *pgStore) GetDebitCard(ctx context.Context, mcNumber string) (*schema.DebitCard, error) {
	var card schema.DebitCard
	err := s.db.WithContext(ctx).Where("driver_mc_number = ?", mcNumber).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get debit card: %w", err)
	}
	return &card, nil
}

func (s *pgStore) SetDebitCardStatus(ctx context.Context, mcNumber string, status domain.CardStatus, lastFour *string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card schema.DebitCard
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("driver_mc_number = ?", mcNumber).
			First(&card).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no card for driver %s", domain.ErrNotFound, mcNumber)
			}
			return fmt.Errorf("failed to lock card: %w", err)
		}
		if !domain.CanCardTransition(card.Status, status) {
			return fmt.Errorf("%w: card %s -> %s", domain.ErrIllegalTransition, card.Status, status)
		}

		now := time.Now().UTC()
		card.Status = status
		switch status {
		case domain.CardRequested:
			card.RequestedAt = &now
		case domain.CardShipped:
			card.ShippedAt = &now
			card.CardLastFour = lastFour
		case domain.CardActive:
			card.ActivatedAt = &now
		}

		if err := tx.Save(&card).Error; err != nil {
			return fmt.Errorf("failed to set card status: %w", err)
		}
		return nil
	})
}

// ===== Claims =====

func (s *pgStore) CreateClaimRequest(ctx context.Context, request *schema.ClaimRequest) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimable, err := claimableInTx(tx, request.DriverMCNumber)
		if err != nil {
			return err
		}
		if claimable.LessThan(request.AmountCandle) {
			return fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientCredits, request.AmountCandle, claimable)
		}

		if err := tx.Create(request).Error; err != nil {
			return fmt.Errorf("failed to create claim request: %w", err)
		}
		return nil
	})
}

func (s *pgStore) GetClaimRequest(ctx context.Context, id uint64) (*schema.ClaimRequest, error) {
	var request schema.ClaimRequest
	err := s.db.WithContext(ctx).First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get claim request: %w", err)
	}
	return &request, nil
}

func (s *pgStore) ListClaimRequests(ctx context.Context, status domain.ClaimStatus) ([]schema.ClaimRequest, error) {
	var requests []schema.ClaimRequest
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list claim requests: %w", err)
	}
	return requests, nil
}

func (s *pgStore) DecideClaim(ctx context.Context, id uint64, approve bool) (*schema.ClaimRequest, error) {
	target := domain.ClaimApproved
	if !approve {
		target = domain.ClaimRejected
	}

	var out schema.ClaimRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Model(&schema.ClaimRequest{}).
			Where("id = ? AND status = ?", id, domain.ClaimPending).
			Updates(map[string]interface{}{
				"status":     target,
				"decided_at": now,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to decide claim: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var existing schema.ClaimRequest
			if err := tx.First(&existing, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: claim %d", domain.ErrNotFound, id)
				}
				return fmt.Errorf("failed to load claim: %w", err)
			}
			return fmt.Errorf("%w: claim %d is %s", domain.ErrIllegalTransition, id, existing.Status)
		}

		if err := tx.First(&out, id).Error; err != nil {
			return fmt.Errorf("failed to reload claim: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *pgStore) MarkClaimPaid(ctx context.Context, id uint64, txHash string) (*schema.ClaimRequest, error) {
	var out schema.ClaimRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request schema.ClaimRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: claim %d", domain.ErrNotFound, id)
			}
			return fmt.Errorf("failed to lock claim: %w", err)
		}
		if request.Status != domain.ClaimApproved {
			return fmt.Errorf("%w: claim %d is %s", domain.ErrIllegalTransition, id, request.Status)
		}

		// Flip backing rows in earn order, same over-claim rule as card transfers.
		var rows []schema.LedgerEntry
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(spendableCond, request.DriverMCNumber,
				domain.ClaimableStatuses, domain.UnlockGatedStatuses, time.Now().UTC()).
			Order("earned_at ASC, id ASC").
			Find(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to lock ledger rows: %w", err)
		}

		covered := decimal.Zero
		for _, row := range rows {
			if covered.GreaterThanOrEqual(request.AmountCandle) {
				break
			}
			res := tx.Model(&schema.LedgerEntry{}).
				Where("id = ?", row.ID).
				Updates(map[string]interface{}{
					"status":  domain.LedgerClaimed,
					"tx_hash": txHash,
				})
			if res.Error != nil {
				return fmt.Errorf("failed to claim ledger row: %w", res.Error)
			}
			covered = covered.Add(row.AmountCandle)
		}

		now := time.Now().UTC()
		request.Status = domain.ClaimPaid
		request.TxHash = &txHash
		request.PaidAt = &now
		if err := tx.Save(&request).Error; err != nil {
			return fmt.Errorf("failed to mark claim paid: %w", err)
		}

		out = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ===== Notifications =====

func (s *pgStore) CreateNotification(ctx context.Context, mcNumber string, kind domain.NotificationType, message string) error {
	notification := schema.Notification{
		DriverMCNumber: mcNumber,
		Type:           kind,
		Message:        message,
	}
	if err := s.db.WithContext(ctx).Create(&notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *pgStore) ListNotifications(ctx context.Context, mcNumber string, unreadOnly bool) ([]schema.Notification, error) {
	q := s.db.WithContext(ctx).Where("driver_mc_number = ?", mcNumber)
	if unreadOnly {
		q = q.Where("read = false")
	}

	var notifications []schema.Notification
	if err := q.Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *pgStore) MarkNotificationRead(ctx context.Context, id uint64, mcNumber string) error {
	res := s.db.WithContext(ctx).Model(&schema.Notification{}).
		Where("id = ? AND driver_mc_number = ?", id, mcNumber).
		Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: notification %d", domain.ErrNotFound, id)
	}
	return nil
}

// ===== Revenue =====

func (s *pgStore) InsertRevenueEntry(ctx context.Context, entry *schema.RevenueEntry) (bool, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Status == "" {
		entry.Status = domain.RevenueRecorded
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source_ref"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "source_ref IS NOT NULL"},
		}},
		DoNothing: true,
	}).Create(entry)
	if res.Error != nil {
		return false, fmt.Errorf("failed to insert revenue entry: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *pgStore) ConfirmDispatchSettlement(ctx context.Context, loadRefID string) (int, error) {
	// Zero rows flipped is fine; settlement webhooks replay. Rows already
	// pulled into a batch are left alone.
	res := s.db.WithContext(ctx).Model(&schema.RevenueEntry{}).
		Where("load_ref_id = ? AND source = ? AND burn_eligible = false AND status = ?",
			loadRefID, domain.SourceDispatchFee, domain.RevenueRecorded).
		Update("burn_eligible", true)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to confirm settlement: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

// ===== Burn pipeline =====

func (s *pgStore) CreateBurnBatch(ctx context.Context, batch *schema.BurnBatch) error {
	if batch.ID == uuid.Nil {
		batch.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(batch).Error; err != nil {
		return fmt.Errorf("failed to create burn batch: %w", err)
	}
	return nil
}

func (s *pgStore) GetBurnBatch(ctx context.Context, id uuid.UUID) (*schema.BurnBatch, error) {
	var batch schema.BurnBatch
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get burn batch: %w", err)
	}
	return &batch, nil
}

func (s *pgStore) ListBurnBatches(ctx context.Context, limit int) ([]schema.BurnBatch, error) {
	if limit <= 0 {
		limit = 50
	}

	var batches []schema.BurnBatch
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list burn batches: %w", err)
	}
	return batches, nil
}

func (s *pgStore) ReserveBurnBatch(ctx context.Context, id uuid.UUID) (*schema.BurnBatch, error) {
	var out schema.BurnBatch
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batch schema.BurnBatch
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&batch).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: burn batch %s", domain.ErrNotFound, id)
			}
			return fmt.Errorf("failed to lock burn batch: %w", err)
		}
		if batch.Status != domain.BurnBatchCreated {
			return fmt.Errorf("%w: burn batch %s is %s", domain.ErrIllegalTransition, id, batch.Status)
		}

		eligible := "burn_eligible = true AND status = ? AND burn_batch_id IS NULL AND amount_usd > 0 AND occurred_at >= ? AND occurred_at < ?"

		var rows []schema.RevenueEntry
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(eligible, domain.RevenueRecorded, batch.PeriodStart, batch.PeriodEnd).
			Find(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to lock revenue rows: %w", err)
		}
		if len(rows) == 0 {
			return fmt.Errorf("%w: no eligible revenue to reserve", domain.ErrValidation)
		}

		// The batch total is the sum of the cent-quantized per-row
		// reservations, not a re-rounding of the gross, so the attached rows
		// always reconcile to the batch.
		gross := decimal.Zero
		amounts := make([]decimal.Decimal, len(rows))
		for i, row := range rows {
			gross = gross.Add(row.AmountUSD)
			amounts[i] = row.AmountUSD
		}
		reservations, reserved := domain.ReserveRows(amounts, batch.RateBps)

		for i, row := range rows {
			res := tx.Model(&schema.RevenueEntry{}).
				Where("id = ?", row.ID).
				Updates(map[string]interface{}{
					"burn_batch_id":     batch.ID,
					"status":            domain.RevenueReserved,
					"burn_reserved_usd": reservations[i],
				})
			if res.Error != nil {
				return fmt.Errorf("failed to attach revenue row: %w", res.Error)
			}
		}

		now := time.Now().UTC()
		batch.GrossUSD = gross
		batch.ReservedUSD = reserved
		batch.Status = domain.BurnBatchReserved
		batch.ReservedAt = &now
		if err := tx.Save(&batch).Error; err != nil {
			return fmt.Errorf("failed to reserve burn batch: %w", err)
		}

		out = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *pgStore) ExecuteBurnBatch(ctx context.Context, id uuid.UUID, result BurnExecution) (*schema.BurnBatch, error) {
	var out schema.BurnBatch
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Model(&schema.BurnBatch{}).
			Where("id = ? AND status = ?", id, domain.BurnBatchReserved).
			Updates(map[string]interface{}{
				"status":        domain.BurnBatchBurned,
				"usd_spent":     result.USDSpent,
				"candle_burned": result.CandleBurned,
				"buy_tx_hash":   result.BuyTxHash,
				"burn_tx_hash":  result.BurnTxHash,
				"executed_at":   now,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to execute burn batch: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var existing schema.BurnBatch
			if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: burn batch %s", domain.ErrNotFound, id)
				}
				return fmt.Errorf("failed to load burn batch: %w", err)
			}
			return fmt.Errorf("%w: burn batch %s is %s", domain.ErrIllegalTransition, id, existing.Status)
		}

		err := tx.Model(&schema.RevenueEntry{}).
			Where("burn_batch_id = ?", id).
			Update("status", domain.RevenueBurned).Error
		if err != nil {
			return fmt.Errorf("failed to mark revenue rows burned: %w", err)
		}

		if err := tx.Where("id = ?", id).First(&out).Error; err != nil {
			return fmt.Errorf("failed to reload burn batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *pgStore) FailBurnBatch(ctx context.Context, id uuid.UUID, reason string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.BurnBatch{}).
			Where("id = ? AND status = ?", id, domain.BurnBatchReserved).
			Updates(map[string]interface{}{
				"status":         domain.BurnBatchFailed,
				"failure_reason": reason,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to fail burn batch: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: burn batch %s not RESERVED", domain.ErrIllegalTransition, id)
		}

		// Release the rows so a later batch can pick them up.
		err := tx.Model(&schema.RevenueEntry{}).
			Where("burn_batch_id = ?", id).
			Updates(map[string]interface{}{
				"burn_batch_id":     nil,
				"status":            domain.RevenueRecorded,
				"burn_reserved_usd": decimal.Zero,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to release revenue rows: %w", err)
		}
		return nil
	})
}

func (s *pgStore) GetTreasuryStats(ctx context.Context) (*TreasuryStats, error) {
	stats := &TreasuryStats{
		RevenueBySource: make(map[domain.RevenueSource]decimal.Decimal),
	}

	type sourceRow struct {
		Source domain.RevenueSource
		Total  decimal.Decimal
	}
	var sources []sourceRow
	err := s.db.WithContext(ctx).Model(&schema.RevenueEntry{}).
		Select("source, COALESCE(SUM(amount_usd), 0) AS total").
		Group("source").
		Scan(&sources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue by source: %w", err)
	}
	for _, r := range sources {
		stats.RevenueBySource[r.Source] = r.Total
		stats.TotalRevenueUSD = stats.TotalRevenueUSD.Add(r.Total)
	}

	err = s.db.WithContext(ctx).Model(&schema.RevenueEntry{}).
		Select("COALESCE(SUM(amount_usd), 0)").
		Where("burn_eligible = true AND status = ? AND burn_batch_id IS NULL", domain.RevenueRecorded).
		Scan(&stats.EligibleUnreservedUSD).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum eligible revenue: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&schema.BurnBatch{}).
		Select("COALESCE(SUM(reserved_usd), 0)").
		Where("status = ?", domain.BurnBatchReserved).
		Scan(&stats.OutstandingReservedUSD).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum outstanding reservations: %w", err)
	}

	type burnRow struct {
		USD    decimal.Decimal
		Candle decimal.Decimal
		Count  int64
	}
	var burned burnRow
	err = s.db.WithContext(ctx).Model(&schema.BurnBatch{}).
		Select("COALESCE(SUM(usd_spent), 0) AS usd, COALESCE(SUM(candle_burned), 0) AS candle, COUNT(*) AS count").
		Where("status = ?", domain.BurnBatchBurned).
		Scan(&burned).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum burns: %w", err)
	}
	stats.TotalBurnedUSD = burned.USD
	stats.TotalCandleBurned = burned.Candle
	stats.BatchCount = burned.Count

	return stats, nil
}

// ===== Invoices =====

func (s *pgStore) CreateWeeklyInvoiceBatches(ctx context.Context, periodStart time.Time, periodEnd time.Time) ([]schema.InvoiceBatch, error) {
	drivers, err := s.ListDriversByBillingMethod(ctx, domain.BillingWeeklyInvoice)
	if err != nil {
		return nil, err
	}

	var batches []schema.InvoiceBatch
	for _, driver := range drivers {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// Every uninvoiced dispatch fee for the driver rolls into the
			// batch, regardless of when it landed, so fees that missed a prior
			// run still get billed.
			var rows []schema.RevenueEntry
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("source = ? AND driver_mc_number = ? AND invoice_batch_id IS NULL AND amount_usd > 0",
					domain.SourceDispatchFee, driver.MCNumber).
				Find(&rows).Error
			if err != nil {
				return fmt.Errorf("failed to lock invoice rows: %w", err)
			}
			if len(rows) == 0 {
				return nil
			}

			total := decimal.Zero
			ids := make([]uuid.UUID, 0, len(rows))
			for _, row := range rows {
				total = total.Add(row.AmountUSD)
				ids = append(ids, row.ID)
			}

			batch := schema.InvoiceBatch{
				ID:             uuid.New(),
				DriverMCNumber: driver.MCNumber,
				PeriodStart:    periodStart,
				PeriodEnd:      periodEnd,
				TotalUSD:       total.Round(2),
				Status:         schema.InvoiceOpen,
			}
			if err := tx.Create(&batch).Error; err != nil {
				return fmt.Errorf("failed to create invoice batch: %w", err)
			}

			err = tx.Model(&schema.RevenueEntry{}).
				Where("id IN ?", ids).
				Update("invoice_batch_id", batch.ID).Error
			if err != nil {
				return fmt.Errorf("failed to attach invoice rows: %w", err)
			}

			batches = append(batches, batch)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return batches, nil
}

// ===== Treasury wallets =====

func (s *pgStore) UpsertTreasuryWallet(ctx context.Context, wallet *schema.TreasuryWallet) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_name"}, {Name: "chain"}},
		DoUpdates: clause.AssignmentColumns([]string{"address", "updated_at"}),
	}).Create(wallet).Error
	if err != nil {
		return fmt.Errorf("failed to upsert treasury wallet: %w", err)
	}
	return nil
}

func (s *pgStore) ListTreasuryWallets(ctx context.Context) ([]schema.TreasuryWallet, error) {
	var wallets []schema.TreasuryWallet
	err := s.db.WithContext(ctx).
		Order("wallet_name, chain").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list treasury wallets: %w", err)
	}
	return wallets, nil
}
