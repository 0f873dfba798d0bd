// Package events publishes dispatch lifecycle events to NATS JetStream so
// downstream consumers (driver apps, analytics) can react without polling.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/adapter"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/logger"
)

// Event types published on the dispatch stream
const (
	EventLoadWon           = "load.won"
	EventPendingApproval   = "negotiation.pending_approval"
	EventNegotiationLost   = "negotiation.lost"
	EventBurnExecuted      = "burn.executed"
	EventAutopilotDecision = "autopilot.decision"
)

// Event is the envelope every published event shares
type Event struct {
	EventID   string                 `json:"event_id"` // ULID, time sortable
	EventType string                 `json:"event_type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// Publisher publishes dispatch events
//
//go:generate mockgen -source=publisher.go -destination=../mocks/events.go -package=mocks -mock_names=Publisher=MockEventPublisher
type Publisher interface {
	// Publish emits one event; the subject is derived from the event type
	Publish(ctx context.Context, eventType string, data map[string]interface{}) error
	// Close closes the connection
	Close()
}

type natsPublisher struct {
	conn   adapter.NatsConn
	js     adapter.JetStream
	stream string
	clock  adapter.Clock
}

// NewNATSPublisher connects to NATS and returns a JetStream-backed publisher.
func NewNATSPublisher(njs adapter.NatsJetStream, clock adapter.Clock, cfg config.NATSConfig) (Publisher, error) {
	name := cfg.ConnectionName
	if name == "" {
		name = "dispatch-core"
	}
	conn, js, err := njs.Connect(cfg.URL,
		nats.Name(name),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &natsPublisher{conn: conn, js: js, stream: cfg.StreamName, clock: clock}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, eventType string, data map[string]interface{}) error {
	now := p.clock.Now()
	event := Event{
		EventID:   ulid.MustNewDefault(now).String(),
		EventType: eventType,
		Timestamp: now.UTC(),
		Data:      data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", p.stream, eventType)
	if _, err := p.js.Publish(ctx, subject, payload); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.EventID, err)
	}

	logger.InfoCtx(ctx, "event published",
		zap.String("event_id", event.EventID),
		zap.String("event_type", eventType))
	return nil
}

func (p *natsPublisher) Close() {
	p.conn.Close()
}

// NoopPublisher drops events. Used when NATS is not configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, data map[string]interface{}) error {
	return nil
}

func (NoopPublisher) Close() {}
