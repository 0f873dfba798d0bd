package schema

import (
	"time"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// Driver represents the drivers table - one row per onboarded carrier
type Driver struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Handle is the mailbox handle used in tagged addresses (lowercase, unique)
	Handle string `gorm:"column:handle;not null;type:text;uniqueIndex:idx_drivers_handle"`
	// MCNumber is the FMCSA motor carrier number, the stable ledger key
	MCNumber string `gorm:"column:mc_number;not null;type:text;uniqueIndex:idx_drivers_mc_number"`
	// CompanyName is the carrier's legal name
	CompanyName string `gorm:"column:company_name;type:text"`
	// ContactEmail is the carrier's real mailbox, where drafts and alerts land
	ContactEmail string `gorm:"column:contact_email;not null;type:text"`
	// PhoneNumber is used for voice-agent callbacks
	PhoneNumber *string `gorm:"column:phone_number;type:text"`
	// AuthorityType distinguishes solo operators from fleets (SOLO, FLEET)
	AuthorityType domain.AuthorityType `gorm:"column:authority_type;not null;type:text;default:SOLO"`
	// BillingMethod is how dispatch fees are settled (FACTORING, WEEKLY_INVOICE)
	BillingMethod domain.BillingMethod `gorm:"column:billing_method;not null;type:text;default:FACTORING"`
	// RewardTier buckets the driver for buyback display (STANDARD, PRO)
	RewardTier domain.RewardTier `gorm:"column:reward_tier;not null;type:text;default:STANDARD"`
	// WalletAddress receives on-chain claim payouts (nil until the driver links one)
	WalletAddress *string `gorm:"column:wallet_address;type:text"`
	// ScoutAPIKey authenticates load ingestion from this driver's extension
	ScoutAPIKey *string `gorm:"column:scout_api_key;type:text;uniqueIndex:idx_drivers_scout_api_key"`
	// ScoutLastSeenAt is the last extension heartbeat
	ScoutLastSeenAt *time.Time `gorm:"column:scout_last_seen_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Driver model
func (Driver) TableName() string {
	return "drivers"
}
