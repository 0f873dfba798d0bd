package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// LedgerEntry represents the driver_savings_ledger table - append-only CANDLE
// credit rows. Consumption appends negative CONSUMED rows; existing rows are
// only ever flipped between statuses, never edited in amount.
type LedgerEntry struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DriverMCNumber is the carrier this credit belongs to
	DriverMCNumber string `gorm:"column:driver_mc_number;not null;type:text;index:idx_ledger_driver_status,priority:1;uniqueIndex:idx_ledger_once,priority:1,where:status = 'CREDITED'"`
	// LoadID is the load reference that earned the credit, or a synthetic
	// reference (STARTER_PACK, FINDERS_FEE-<ref>, REINVEST, ...). At most one
	// CREDITED row may exist per driver and load; replays hit the partial
	// unique index and insert nothing.
	LoadID string `gorm:"column:load_id;not null;type:text;index:idx_ledger_load_id;uniqueIndex:idx_ledger_once,priority:2,where:status = 'CREDITED'"`
	// AmountUSD is the dollar value backing the credit
	AmountUSD decimal.Decimal `gorm:"column:amount_usd;not null;type:numeric(10,2)"`
	// AmountCandle is the CANDLE amount, negative for CONSUMED rows
	AmountCandle decimal.Decimal `gorm:"column:amount_candle;not null;type:numeric(18,4)"`
	// EarnedAt orders FIFO claiming
	EarnedAt time.Time `gorm:"column:earned_at;not null;type:timestamptz;index:idx_ledger_earned_at"`
	// UnlocksAt is when a LOCKED row becomes spendable (equal to EarnedAt for
	// immediate-use credits)
	UnlocksAt time.Time `gorm:"column:unlocks_at;not null;type:timestamptz"`
	// Status is the row lifecycle state
	Status domain.LedgerStatus `gorm:"column:status;not null;type:text;index:idx_ledger_driver_status,priority:2"`
	// TxHash records the on-chain payout when the row is CLAIMED via a claim request
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "driver_savings_ledger"
}
