package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/adapter"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/events"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type publisherFixture struct {
	conn  *mocks.MockNatsConn
	js    *mocks.MockJetStream
	clock *mocks.MockClock
	pub   events.Publisher
}

func newPublisherFixture(t *testing.T) *publisherFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	njs := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	clock := mocks.NewMockClock(ctrl)

	njs.EXPECT().Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(adapter.NatsConn(conn), adapter.JetStream(js), nil)

	pub, err := events.NewNATSPublisher(njs, clock, config.NATSConfig{
		URL:        "nats://localhost:4222",
		StreamName: "dispatch",
	})
	require.NoError(t, err)

	return &publisherFixture{conn: conn, js: js, clock: clock, pub: pub}
}

func TestNewNATSPublisherConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	njs := mocks.NewMockNatsJetStream(ctrl)
	njs.EXPECT().Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	_, err := events.NewNATSPublisher(njs, mocks.NewMockClock(ctrl), config.NATSConfig{URL: "nats://down:4222"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestPublishWrapsEventEnvelope(t *testing.T) {
	f := newPublisherFixture(t)

	now := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	f.clock.EXPECT().Now().Return(now)

	f.js.EXPECT().Publish(gomock.Any(), "dispatch.load.won", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var event events.Event
			require.NoError(t, json.Unmarshal(data, &event))
			assert.Equal(t, events.EventLoadWon, event.EventType)
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, now, event.Timestamp)
			assert.Equal(t, "TS-101", event.Data["load_ref_id"])
			return &jetstream.PubAck{}, nil
		})

	err := f.pub.Publish(context.Background(), events.EventLoadWon, map[string]interface{}{
		"load_ref_id": "TS-101",
	})
	require.NoError(t, err)
}

func TestPublishSurfacesStreamError(t *testing.T) {
	f := newPublisherFixture(t)

	f.clock.EXPECT().Now().Return(time.Now())
	f.js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("no responders"))

	err := f.pub.Publish(context.Background(), events.EventBurnExecuted, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish")
}

func TestCloseClosesConnection(t *testing.T) {
	f := newPublisherFixture(t)

	f.conn.EXPECT().Close()

	f.pub.Close()
}
