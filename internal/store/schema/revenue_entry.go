package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// RevenueEntry represents the platform_revenue_ledger table - every dollar the
// platform takes in. SourceRef carries the payment processor's reference and
// its partial unique index makes webhook replays idempotent.
type RevenueEntry struct {
	// ID is the revenue row identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Source categorizes the revenue (DISPATCH_FEE, SUBSCRIPTION, ...)
	Source domain.RevenueSource `gorm:"column:source;not null;type:text;index:idx_revenue_source"`
	// AmountUSD is the gross amount received
	AmountUSD decimal.Decimal `gorm:"column:amount_usd;not null;type:numeric(12,2)"`
	// SourceRef is the external payment reference; unique where present
	SourceRef *string `gorm:"column:source_ref;type:text;uniqueIndex:idx_revenue_source_ref,where:source_ref IS NOT NULL"`
	// LoadRefID ties the revenue to a load when applicable
	LoadRefID *string `gorm:"column:load_ref_id;type:text;index:idx_revenue_load_ref"`
	// DriverMCNumber attributes the revenue to a carrier when applicable
	DriverMCNumber *string `gorm:"column:driver_mc_number;type:text"`
	// Status tracks the row through the burn pipeline
	Status domain.RevenueStatus `gorm:"column:status;not null;type:text;default:RECORDED"`
	// BurnReservedUSD is the slice earmarked for buyback, 0 until reserved
	BurnReservedUSD decimal.Decimal `gorm:"column:burn_reserved_usd;not null;type:numeric(12,2);default:0"`
	// TreasuryReservedUSD is the slice earmarked for the treasury wallet.
	// Invariant: burn_reserved_usd + treasury_reserved_usd <= amount_usd.
	TreasuryReservedUSD decimal.Decimal `gorm:"column:treasury_reserved_usd;not null;type:numeric(12,2);default:0"`
	// BurnEligible marks rows the treasury may reserve against. Dispatch fees
	// start ineligible and flip on settlement confirmation.
	BurnEligible bool `gorm:"column:burn_eligible;not null;default:true"`
	// BurnBatchID is set when a burn batch reserves this row
	BurnBatchID *uuid.UUID `gorm:"column:burn_batch_id;type:uuid;index:idx_revenue_burn_batch"`
	// InvoiceBatchID is set when a weekly invoice batch picks up this row
	InvoiceBatchID *uuid.UUID `gorm:"column:invoice_batch_id;type:uuid;index:idx_revenue_invoice_batch"`
	// OccurredAt is when the payment landed
	OccurredAt time.Time `gorm:"column:occurred_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RevenueEntry model
func (RevenueEntry) TableName() string {
	return "platform_revenue_ledger"
}
