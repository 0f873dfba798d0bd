package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// BurnBatch represents the burn_batches table - a treasury buy-and-burn run
// over a set of reserved revenue rows. Status moves CREATED -> RESERVED ->
// BURNED, guarded by compare-and-set updates so concurrent runners cannot
// double-spend a batch.
type BurnBatch struct {
	// ID is the batch identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Status is the batch lifecycle state
	Status domain.BurnBatchStatus `gorm:"column:status;not null;type:text;default:CREATED"`
	// RateBps is the reservation rate in basis points (1..5000)
	RateBps int `gorm:"column:rate_bps;not null"`
	// PeriodStart and PeriodEnd bound the revenue window, [start, end)
	PeriodStart time.Time `gorm:"column:period_start;not null;type:timestamptz"`
	PeriodEnd   time.Time `gorm:"column:period_end;not null;type:timestamptz"`
	// GrossUSD is the sum of revenue rows attached at reservation
	GrossUSD decimal.Decimal `gorm:"column:gross_usd;not null;type:numeric(14,2);default:0"`
	// ReservedUSD is gross * rate, quantized to cents
	ReservedUSD decimal.Decimal `gorm:"column:reserved_usd;not null;type:numeric(14,2);default:0"`
	// USDSpent is the actual spend reported by the chain gateway
	USDSpent *decimal.Decimal `gorm:"column:usd_spent;type:numeric(14,2)"`
	// CandleBurned is the token amount destroyed
	CandleBurned *decimal.Decimal `gorm:"column:candle_burned;type:numeric(18,4)"`
	// BuyTxHash is the market buy transaction
	BuyTxHash *string `gorm:"column:buy_tx_hash;type:text"`
	// BurnTxHash is the burn transaction
	BurnTxHash *string `gorm:"column:burn_tx_hash;type:text"`
	// DryRun marks batches that reserved but deliberately did not execute
	DryRun bool `gorm:"column:dry_run;not null;default:false"`
	// FailureReason is set when the batch moves to FAILED
	FailureReason *string `gorm:"column:failure_reason;type:text"`
	// ReservedAt is when the batch locked its revenue rows
	ReservedAt *time.Time `gorm:"column:reserved_at;type:timestamptz"`
	// ExecutedAt is when the burn completed
	ExecutedAt *time.Time `gorm:"column:executed_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BurnBatch model
func (BurnBatch) TableName() string {
	return "burn_batches"
}
