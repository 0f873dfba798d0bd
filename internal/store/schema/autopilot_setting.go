package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// AutopilotSetting represents the autopilot_settings table - per (driver, load)
// bounds for unattended negotiation
type AutopilotSetting struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DriverMC is the driver this setting belongs to
	DriverMC string `gorm:"column:driver_mc;not null;type:text;uniqueIndex:idx_autopilot_driver_load,priority:1"`
	// LoadRefID is the load this setting applies to
	LoadRefID string `gorm:"column:load_ref_id;not null;type:text;uniqueIndex:idx_autopilot_driver_load,priority:2"`
	// FloorUSD is the minimum acceptable rate; offers below it only notify
	FloorUSD decimal.Decimal `gorm:"column:floor_usd;not null;type:numeric(12,2)"`
	// TargetUSD is the rate at which the engine accepts outright
	TargetUSD decimal.Decimal `gorm:"column:target_usd;not null;type:numeric(12,2)"`
	// Enabled gates the engine; disabling keeps the bounds for later
	Enabled bool `gorm:"column:enabled;not null;default:true"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AutopilotSetting model
func (AutopilotSetting) TableName() string {
	return "autopilot_settings"
}
