package schema

import "time"

// MessageDirection distinguishes inbound broker mail from outbound drafts
type MessageDirection string

const (
	MessageInbound  MessageDirection = "INBOUND"
	MessageOutbound MessageDirection = "OUTBOUND"
)

// Message represents the messages table - every email the platform has seen
// or sent. MessageID carries the RFC 5322 Message-ID when the mail had one,
// or a generated digest when it did not; the unique index is the dedup guard.
type Message struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// MessageID is the dedup key (Message-ID header or generated digest)
	MessageID string `gorm:"column:message_id;not null;type:text;uniqueIndex:idx_messages_message_id"`
	// Direction is INBOUND or OUTBOUND
	Direction MessageDirection `gorm:"column:direction;not null;type:text"`
	// Sender is the From address
	Sender string `gorm:"column:sender;type:text"`
	// Recipient is the To address the mail was routed by
	Recipient string `gorm:"column:recipient;type:text"`
	// Subject is the mail subject
	Subject string `gorm:"column:subject;type:text"`
	// Body is the plain-text body
	Body string `gorm:"column:body;type:text"`
	// DriverHandle is the handle resolved from the tagged recipient
	DriverHandle string `gorm:"column:driver_handle;type:text;index:idx_messages_driver_handle"`
	// LoadRefID is the load resolved from the tagged recipient (GENERAL when untagged)
	LoadRefID string `gorm:"column:load_ref_id;type:text"`
	// NegotiationID links the message to the thread it advanced, when known
	NegotiationID *uint64 `gorm:"column:negotiation_id;type:bigint"`
	// Read flips when the driver views the message
	Read bool `gorm:"column:read;not null;default:false"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Message model
func (Message) TableName() string {
	return "messages"
}
