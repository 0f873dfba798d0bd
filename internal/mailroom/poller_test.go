package mailroom_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/autopilot"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/mailroom"
	"github.com/greencandle/dispatch-core/internal/mocks"
	"github.com/greencandle/dispatch-core/internal/negotiation"
)

type pollerFixture struct {
	fetcher *mocks.MockFetcher
	cursors *mocks.MockCursorStore
	clock   *mocks.MockClock
	store   *mocks.MockStore
	poller  mailroom.Poller
}

func newPollerFixture(t *testing.T) *pollerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	s := mocks.NewMockStore(ctrl)
	sender := mocks.NewMockSender(ctrl)
	drafts := mocks.NewMockDrafter(ctrl)
	credits := ledger.NewService(s)
	threads := negotiation.NewService(s, sender, drafts, credits, nil)
	engine := autopilot.NewEngine(s, sender, credits)
	processor := mailroom.NewProcessor(s, threads, engine, credits, mailDomain)

	f := &pollerFixture{
		fetcher: mocks.NewMockFetcher(ctrl),
		cursors: mocks.NewMockCursorStore(ctrl),
		clock:   mocks.NewMockClock(ctrl),
		store:   s,
	}
	f.poller = mailroom.NewPoller(mailroom.PollerConfig{
		Mailbox:      "INBOX",
		PollInterval: 15 * time.Second,
		ErrorBackoff: 30 * time.Second,
		FetchLimit:   25,
	}, f.fetcher, processor, f.cursors, f.clock)
	return f
}

// neverFires is a channel the poller can park on until Stop interrupts it.
func neverFires() <-chan time.Time {
	return make(chan time.Time)
}

func stopPoller(t *testing.T, p mailroom.Poller) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))
}

func TestPollerAdvancesCursorPastProcessedMail(t *testing.T) {
	f := newPollerFixture(t)
	done := make(chan struct{})

	emails := []mailroom.InboundEmail{
		{UID: 11, MessageID: "<a@x>", From: "a@x", Recipients: []string{"ghost+L-1@dispatch.example"}},
		{UID: 12, MessageID: "<b@x>", From: "b@x", Recipients: []string{"ghost+L-2@dispatch.example"}},
	}

	f.cursors.EXPECT().GetMailboxCursor(gomock.Any(), "INBOX").Return(uint32(10), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), uint32(10), 25).Return(emails, nil)
	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "ghost").Return(nil, nil).Times(2)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	f.cursors.EXPECT().SetMailboxCursor(gomock.Any(), "INBOX", uint32(12)).DoAndReturn(
		func(_ context.Context, _ string, _ uint32) error {
			close(done)
			return nil
		})
	f.clock.EXPECT().After(15 * time.Second).Return(neverFires())

	go func() { _ = f.poller.Start(context.Background()) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller never advanced the cursor")
	}
	stopPoller(t, f.poller)
}

func TestPollerAdvancesCursorPastUnroutableMail(t *testing.T) {
	f := newPollerFixture(t)
	done := make(chan struct{})

	// The first message has no recipient on the platform domain. It must be
	// dropped, not retried, or the cursor would wedge behind it forever and
	// the routable message after it would never process.
	emails := []mailroom.InboundEmail{
		{UID: 21, MessageID: "<stray@x>", From: "stray@x", Recipients: []string{"someone@elsewhere.example"}},
		{UID: 22, MessageID: "<b@x>", From: "b@x", Recipients: []string{"ghost+L-2@dispatch.example"}},
	}

	f.cursors.EXPECT().GetMailboxCursor(gomock.Any(), "INBOX").Return(uint32(20), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), uint32(20), 25).Return(emails, nil)
	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "ghost").Return(nil, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(true, nil)
	f.cursors.EXPECT().SetMailboxCursor(gomock.Any(), "INBOX", uint32(22)).DoAndReturn(
		func(_ context.Context, _ string, _ uint32) error {
			close(done)
			return nil
		})
	f.clock.EXPECT().After(15 * time.Second).Return(neverFires())

	go func() { _ = f.poller.Start(context.Background()) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller never advanced past the unroutable message")
	}
	stopPoller(t, f.poller)
}

func TestPollerBacksOffOnMailboxError(t *testing.T) {
	f := newPollerFixture(t)
	done := make(chan struct{})

	f.cursors.EXPECT().GetMailboxCursor(gomock.Any(), "INBOX").Return(uint32(0), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), uint32(0), 25).Return(nil, fmt.Errorf("imap: connection reset"))
	f.clock.EXPECT().After(gomock.Any()).DoAndReturn(
		func(d time.Duration) <-chan time.Time {
			// Jittered first backoff lands within half to double the base.
			assert.GreaterOrEqual(t, d, 15*time.Second)
			assert.LessOrEqual(t, d, 45*time.Second)
			close(done)
			return neverFires()
		})

	go func() { _ = f.poller.Start(context.Background()) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller never backed off after the fetch error")
	}
	stopPoller(t, f.poller)
}

func TestPollerHoldsCursorWhenProcessingFails(t *testing.T) {
	f := newPollerFixture(t)
	done := make(chan struct{})

	emails := []mailroom.InboundEmail{
		{UID: 5, MessageID: "<a@x>", From: "a@x", Recipients: []string{"ghost+L-1@dispatch.example"}},
		{UID: 6, MessageID: "<b@x>", From: "b@x", Recipients: []string{"ghost+L-2@dispatch.example"}},
	}

	f.cursors.EXPECT().GetMailboxCursor(gomock.Any(), "INBOX").Return(uint32(0), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), uint32(0), 25).Return(emails, nil)
	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "ghost").Return(nil, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(true, nil)
	// Second message hits a database outage; the cursor must stop at 5 so
	// the next cycle retries UID 6.
	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "ghost").Return(nil, fmt.Errorf("db down"))
	f.cursors.EXPECT().SetMailboxCursor(gomock.Any(), "INBOX", uint32(5)).DoAndReturn(
		func(_ context.Context, _ string, _ uint32) error {
			close(done)
			return nil
		})
	f.clock.EXPECT().After(15 * time.Second).Return(neverFires())

	go func() { _ = f.poller.Start(context.Background()) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller never saved the partial cursor")
	}
	stopPoller(t, f.poller)
}
