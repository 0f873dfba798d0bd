package schema

import (
	"time"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// Notification represents the notifications table - driver-facing alerts
// polled by the client
type Notification struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DriverMCNumber is the recipient
	DriverMCNumber string `gorm:"column:driver_mc_number;not null;type:text;index:idx_notifications_driver"`
	// Type categorizes the alert
	Type domain.NotificationType `gorm:"column:type;not null;type:text"`
	// Message is the display text
	Message string `gorm:"column:message;not null;type:text"`
	// Read flips when the driver acknowledges the alert
	Read bool `gorm:"column:read;not null;default:false"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
