package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Load represents the loads table - freight postings ingested by scouts
type Load struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RefID is the load board's reference, the public load identifier
	RefID string `gorm:"column:ref_id;not null;type:text;uniqueIndex:idx_loads_ref_id"`
	// Origin is the pickup city/state as posted
	Origin string `gorm:"column:origin;type:text"`
	// Destination is the delivery city/state as posted
	Destination string `gorm:"column:destination;type:text"`
	// Equipment is the posted trailer type (V, R, F, ...)
	Equipment string `gorm:"column:equipment;type:text"`
	// PickupDate is the posted pickup date when it parses
	PickupDate *time.Time `gorm:"column:pickup_date;type:timestamptz"`
	// PostedRate is the verbatim rate string from the board ("$2,400", "negotiable")
	PostedRate string `gorm:"column:posted_rate;type:text"`
	// RateUSD is the parsed numeric rate, nil when the posting had none
	RateUSD *decimal.Decimal `gorm:"column:rate_usd;type:numeric(12,2)"`
	// Miles is the posted trip distance
	Miles *int `gorm:"column:miles;type:integer"`
	// BrokerEmail is where negotiation mail for this load goes
	BrokerEmail string `gorm:"column:broker_email;type:text"`
	// BrokerName is the posting brokerage
	BrokerName string `gorm:"column:broker_name;type:text"`
	// SourceBoard names the board the scout scraped (dat, truckstop, ...)
	SourceBoard string `gorm:"column:source_board;type:text"`
	// DiscoveredBy is the MC number of the scout that first posted this load
	DiscoveredBy *string `gorm:"column:discovered_by;type:text;index:idx_loads_discovered_by"`
	// Raw retains the scout's complete payload for later reprocessing
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Load model
func (Load) TableName() string {
	return "loads"
}
