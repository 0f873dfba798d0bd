package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// ClaimRequest represents the claim_requests table - driver requests to move
// claimable CANDLE on-chain. PENDING rows wait on admin review; PAID rows
// record the payout transaction.
type ClaimRequest struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DriverMCNumber is the requesting carrier
	DriverMCNumber string `gorm:"column:driver_mc_number;not null;type:text;index:idx_claim_requests_driver"`
	// AmountCandle is the requested payout
	AmountCandle decimal.Decimal `gorm:"column:amount_candle;not null;type:numeric(18,4)"`
	// WalletAddress is the payout destination, validated at request time
	WalletAddress string `gorm:"column:wallet_address;not null;type:text"`
	// Status is the request lifecycle state
	Status domain.ClaimStatus `gorm:"column:status;not null;type:text;default:PENDING"`
	// TxHash is the payout transaction, set when PAID
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// DecidedAt is when an admin approved or rejected
	DecidedAt *time.Time `gorm:"column:decided_at;type:timestamptz"`
	// PaidAt is when the payout landed
	PaidAt *time.Time `gorm:"column:paid_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ClaimRequest model
func (ClaimRequest) TableName() string {
	return "claim_requests"
}
