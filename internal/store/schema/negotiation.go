package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// Negotiation represents the negotiations table - one row per attempt on a
// (load, driver) pair. Restarts append a new row; the latest row by id is the
// active one.
type Negotiation struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// LoadRefID references the load being negotiated
	LoadRefID string `gorm:"column:load_ref_id;not null;type:text;index:idx_negotiations_load_driver,priority:1"`
	// DriverMC is the MC number of the driver negotiating
	DriverMC string `gorm:"column:driver_mc;not null;type:text;index:idx_negotiations_load_driver,priority:2"`
	// Status is the current lifecycle state
	Status domain.NegotiationStatus `gorm:"column:status;not null;type:text;default:PENDING"`
	// BrokerEmail is the tagged broker address this thread mails to
	BrokerEmail string `gorm:"column:broker_email;type:text"`
	// CurrentOffer is the last price on the table, from either side
	CurrentOffer *decimal.Decimal `gorm:"column:current_offer;type:numeric(12,2)"`
	// FinalRate is set when the thread reaches PENDING_APPROVAL or WON
	FinalRate *decimal.Decimal `gorm:"column:final_rate;type:numeric(12,2)"`
	// AssignedTruck is the unit the driver put on this load, overwritten on
	// each counter
	AssignedTruck string `gorm:"column:assigned_truck;type:text"`
	// DraftSubject is the AI draft awaiting driver review
	DraftSubject string `gorm:"column:draft_subject;type:text"`
	// DraftBody is the AI draft awaiting driver review
	DraftBody string `gorm:"column:draft_body;type:text"`
	// LastHint is the classifier's read of the most recent broker reply
	LastHint *domain.ReplyHint `gorm:"column:last_hint;type:text"`
	// PromptTokens and CompletionTokens account AI usage for this thread
	PromptTokens     int `gorm:"column:prompt_tokens;not null;default:0"`
	CompletionTokens int `gorm:"column:completion_tokens;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Negotiation model
func (Negotiation) TableName() string {
	return "negotiations"
}
