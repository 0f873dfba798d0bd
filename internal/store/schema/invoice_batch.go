package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceBatchStatus represents the billing state of a weekly invoice
type InvoiceBatchStatus string

const (
	InvoiceOpen InvoiceBatchStatus = "OPEN"
	InvoiceSent InvoiceBatchStatus = "SENT"
	InvoicePaid InvoiceBatchStatus = "PAID"
)

// InvoiceBatch represents the driver_invoice_batches table - a week of
// dispatch fees grouped for WEEKLY_INVOICE drivers
type InvoiceBatch struct {
	// ID is the batch identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// DriverMCNumber is the billed carrier
	DriverMCNumber string `gorm:"column:driver_mc_number;not null;type:text;index:idx_invoice_batches_driver"`
	// PeriodStart and PeriodEnd bound the billing window
	PeriodStart time.Time `gorm:"column:period_start;not null;type:timestamptz"`
	PeriodEnd   time.Time `gorm:"column:period_end;not null;type:timestamptz"`
	// TotalUSD is the sum of fees in the window
	TotalUSD decimal.Decimal `gorm:"column:total_usd;not null;type:numeric(12,2);default:0"`
	// Status is the billing state
	Status InvoiceBatchStatus `gorm:"column:status;not null;type:text;default:OPEN"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the InvoiceBatch model
func (InvoiceBatch) TableName() string {
	return "driver_invoice_batches"
}
