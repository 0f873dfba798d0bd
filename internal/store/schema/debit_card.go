package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// DebitCard represents the debit_cards table - one rewards card per driver.
// The status lifecycle is monotonic: NOT_STARTED -> REQUESTED -> SHIPPED ->
// ACTIVE; only ACTIVE cards accept transfers.
type DebitCard struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DriverMCNumber is the card holder
	DriverMCNumber string `gorm:"column:driver_mc_number;not null;type:text;uniqueIndex:idx_debit_cards_driver"`
	// ProcessorRef is the card issuer's external reference
	ProcessorRef string `gorm:"column:processor_ref;type:text"`
	// Status gates transfers
	Status domain.CardStatus `gorm:"column:status;not null;type:text;default:NOT_STARTED"`
	// CardLastFour is set once the card ships
	CardLastFour *string `gorm:"column:card_last_four;type:varchar(4)"`
	// BalanceUSD is the spendable dollar balance on the card
	BalanceUSD decimal.Decimal `gorm:"column:balance_usd;not null;type:numeric(10,2);default:0"`
	// RequestedAt is when the driver asked for a card
	RequestedAt *time.Time `gorm:"column:requested_at;type:timestamptz"`
	// ShippedAt is when the issuer shipped it
	ShippedAt *time.Time `gorm:"column:shipped_at;type:timestamptz"`
	// ActivatedAt is when the driver activated it
	ActivatedAt *time.Time `gorm:"column:activated_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DebitCard model
func (DebitCard) TableName() string {
	return "debit_cards"
}

// CardTransactionKind categorizes card ledger movements
type CardTransactionKind string

const (
	CardTxLoad   CardTransactionKind = "LOAD"
	CardTxSpend  CardTransactionKind = "SPEND"
	CardTxRefund CardTransactionKind = "REFUND"
)

// CardTransactionStatus tracks settlement of a card movement
type CardTransactionStatus string

const (
	CardTxCompleted CardTransactionStatus = "COMPLETED"
	CardTxPending   CardTransactionStatus = "PENDING"
	CardTxFailed    CardTransactionStatus = "FAILED"
)

// CardTransaction represents the card_transactions table - card balance
// history. LOAD rows record the CANDLE debited, the token price applied, and
// the resulting USD credit.
type CardTransaction struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CardID references the card moved
	CardID uint64 `gorm:"column:card_id;not null;index:idx_card_transactions_card"`
	// DriverMCNumber is the card holder at time of transaction
	DriverMCNumber string `gorm:"column:driver_mc_number;not null;type:text;index:idx_card_transactions_driver"`
	// Kind is LOAD (ledger transfer in), SPEND, or REFUND
	Kind CardTransactionKind `gorm:"column:kind;not null;type:text"`
	// AmountCandle is the CANDLE side of the movement
	AmountCandle decimal.Decimal `gorm:"column:amount_candle;not null;type:numeric(18,4)"`
	// AmountUSD is the dollar side of the movement
	AmountUSD decimal.Decimal `gorm:"column:amount_usd;not null;type:numeric(10,2)"`
	// TokenPriceUSD is the CANDLE price applied to the conversion
	TokenPriceUSD decimal.Decimal `gorm:"column:token_price_usd;not null;type:numeric(12,6)"`
	// Status tracks settlement
	Status CardTransactionStatus `gorm:"column:status;not null;type:text;default:COMPLETED"`
	// Memo is a short free-form description
	Memo string `gorm:"column:memo;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Card DebitCard `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CardTransaction model
func (CardTransaction) TableName() string {
	return "card_transactions"
}
