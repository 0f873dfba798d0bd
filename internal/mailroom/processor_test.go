package mailroom_test

import (
	"context"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/autopilot"
	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/mailroom"
	"github.com/greencandle/dispatch-core/internal/mocks"
	"github.com/greencandle/dispatch-core/internal/negotiation"
	"github.com/greencandle/dispatch-core/internal/store/schema"
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

const mailDomain = "dispatch.example"

type processorFixture struct {
	store     *mocks.MockStore
	sender    *mocks.MockSender
	processor *mailroom.Processor
}

func newProcessorFixture(t *testing.T) *processorFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	s := mocks.NewMockStore(ctrl)
	sender := mocks.NewMockSender(ctrl)
	drafts := mocks.NewMockDrafter(ctrl)

	credits := ledger.NewService(s)
	threads := negotiation.NewService(s, sender, drafts, credits, nil)
	engine := autopilot.NewEngine(s, sender, credits)

	return &processorFixture{
		store:     s,
		sender:    sender,
		processor: mailroom.NewProcessor(s, threads, engine, credits, mailDomain),
	}
}

func testProcessorDriver() *schema.Driver {
	return &schema.Driver{Handle: "bigrig", MCNumber: "MC123456"}
}

func testThread(status domain.NegotiationStatus) *schema.Negotiation {
	offer := decimal.RequireFromString("1900")
	return &schema.Negotiation{
		ID:           42,
		LoadRefID:    "TS-88421",
		DriverMC:     "MC123456",
		Status:       status,
		BrokerEmail:  "ops+dat@brokerage.example",
		CurrentOffer: &offer,
		DraftSubject: "Load TS-88421 - Atlanta to Miami",
	}
}

func inboundMail(body string) mailroom.InboundEmail {
	return mailroom.InboundEmail{
		UID:        17,
		MessageID:  "<abc@brokerage.example>",
		From:       "Broker Ops <ops@brokerage.example>",
		Recipients: []string{"bigrig+TS-88421@dispatch.example"},
		Subject:    "Re: Load TS-88421 - Atlanta to Miami",
		Body:       body,
	}
}

func TestProcessDuplicateMessageStopsEarly(t *testing.T) {
	f := newProcessorFixture(t)
	driver := testProcessorDriver()
	thread := testThread(domain.NegotiationSent)

	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "bigrig").Return(driver, nil)
	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").Return(thread, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.processor.Process(context.Background(), inboundMail("We can do $2,100"))
	require.NoError(t, err)
}

func TestProcessUnknownDriverRetained(t *testing.T) {
	f := newProcessorFixture(t)

	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "bigrig").Return(nil, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, message *schema.Message) (bool, error) {
			assert.Equal(t, schema.MessageInbound, message.Direction)
			assert.Equal(t, "ops@brokerage.example", message.Sender)
			assert.Equal(t, "bigrig", message.DriverHandle)
			assert.Equal(t, "TS-88421", message.LoadRefID)
			assert.Nil(t, message.NegotiationID)
			return true, nil
		})

	err := f.processor.Process(context.Background(), inboundMail("Who is this?"))
	require.NoError(t, err)
}

func TestProcessUntaggedMailRetained(t *testing.T) {
	f := newProcessorFixture(t)
	driver := testProcessorDriver()

	email := inboundMail("General question about invoices")
	email.Recipients = []string{"bigrig@dispatch.example"}

	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "bigrig").Return(driver, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, message *schema.Message) (bool, error) {
			assert.Equal(t, domain.GeneralInbox, message.LoadRefID)
			return true, nil
		})

	err := f.processor.Process(context.Background(), email)
	require.NoError(t, err)
}

func TestProcessRejectionClosesThread(t *testing.T) {
	f := newProcessorFixture(t)
	driver := testProcessorDriver()
	thread := testThread(domain.NegotiationSent)

	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "bigrig").Return(driver, nil)
	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").Return(thread, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(true, nil)
	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationLost, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
			updated := *thread
			updated.Status = to
			mutate(&updated)
			require.NotNil(t, updated.LastHint)
			assert.Equal(t, domain.HintRejection, *updated.LastHint)
			return &updated, nil
		})

	err := f.processor.Process(context.Background(), inboundMail("Sorry, already covered."))
	require.NoError(t, err)
}

func TestProcessAutopilotCountersMidRangeOffer(t *testing.T) {
	f := newProcessorFixture(t)
	driver := testProcessorDriver()
	thread := testThread(domain.NegotiationSent)
	setting := &schema.AutopilotSetting{
		FloorUSD:  decimal.RequireFromString("1800"),
		TargetUSD: decimal.RequireFromString("2300"),
		Enabled:   true,
	}

	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "bigrig").Return(driver, nil)
	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").Return(thread, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(true, nil)
	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationReplied, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
			updated := *thread
			updated.Status = to
			mutate(&updated)
			assert.Equal(t, "2100", updated.CurrentOffer.String())
			return &updated, nil
		})
	f.store.EXPECT().GetAutopilotSetting(gomock.Any(), "MC123456", "TS-88421").Return(setting, nil)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	f.store.EXPECT().ConsumeCredits(gomock.Any(), "MC123456", "TS-88421", domain.OutboundEmailCost, domain.OutboundEmailCost).Return(nil)
	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationSent, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
			updated := *thread
			updated.Status = to
			mutate(&updated)
			assert.Equal(t, "2200", updated.CurrentOffer.String())
			return &updated, nil
		})

	err := f.processor.Process(context.Background(), inboundMail("Best we can do is $2,100 on this one."))
	require.NoError(t, err)
}

func TestProcessRateConChargesAutopilotFee(t *testing.T) {
	f := newProcessorFixture(t)
	driver := testProcessorDriver()
	thread := testThread(domain.NegotiationPendingApproval)
	setting := &schema.AutopilotSetting{
		FloorUSD:  decimal.RequireFromString("1800"),
		TargetUSD: decimal.RequireFromString("2300"),
		Enabled:   true,
	}

	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "bigrig").Return(driver, nil)
	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").Return(thread, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(true, nil)
	// The rate con reads as a counter hint; PENDING_APPROVAL cannot go back
	// to REPLIED and the thread stays put.
	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationReplied, gomock.Any()).
		Return(nil, domain.ErrIllegalTransition)
	f.store.EXPECT().GetAutopilotSetting(gomock.Any(), "MC123456", "TS-88421").Return(setting, nil)
	f.store.EXPECT().ConsumeCreditsOnce(gomock.Any(), "MC123456", "TS-88421", domain.AutopilotCost, domain.AutopilotCost).Return(true, nil)
	f.store.EXPECT().CreateNotification(gomock.Any(), "MC123456", domain.NotifyAutopilotSuccess,
		"Auto-Pilot booked load TS-88421. Rate confirmation received.").Return(nil)

	err := f.processor.Process(context.Background(), inboundMail("Rate confirmation attached, signed copy inside."))
	require.NoError(t, err)
}

func TestProcessRateConSkipsFeeWhenAutopilotDisabled(t *testing.T) {
	f := newProcessorFixture(t)
	driver := testProcessorDriver()
	thread := testThread(domain.NegotiationPendingApproval)

	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "bigrig").Return(driver, nil)
	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").Return(thread, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(true, nil)
	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationReplied, gomock.Any()).
		Return(nil, domain.ErrIllegalTransition)
	f.store.EXPECT().GetAutopilotSetting(gomock.Any(), "MC123456", "TS-88421").Return(nil, nil)

	err := f.processor.Process(context.Background(), inboundMail("Ratecon attached."))
	require.NoError(t, err)
}

func TestProcessRateConUnfundedFeeIsDropped(t *testing.T) {
	f := newProcessorFixture(t)
	driver := testProcessorDriver()
	thread := testThread(domain.NegotiationPendingApproval)
	setting := &schema.AutopilotSetting{
		FloorUSD:  decimal.RequireFromString("1800"),
		TargetUSD: decimal.RequireFromString("2300"),
		Enabled:   true,
	}

	f.store.EXPECT().GetDriverByHandle(gomock.Any(), "bigrig").Return(driver, nil)
	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").Return(thread, nil)
	f.store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(true, nil)
	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationReplied, gomock.Any()).
		Return(nil, domain.ErrIllegalTransition)
	f.store.EXPECT().GetAutopilotSetting(gomock.Any(), "MC123456", "TS-88421").Return(setting, nil)
	f.store.EXPECT().ConsumeCreditsOnce(gomock.Any(), "MC123456", "TS-88421", domain.AutopilotCost, domain.AutopilotCost).
		Return(false, domain.ErrInsufficientCredits)

	err := f.processor.Process(context.Background(), inboundMail("Ratecon attached."))
	require.NoError(t, err)
}

func TestProcessNoPlatformRecipientDropped(t *testing.T) {
	f := newProcessorFixture(t)

	// No store expectations: the message is dropped before any persistence,
	// and the nil error keeps the poll cursor moving past it.
	email := inboundMail("Misdelivered mail")
	email.Recipients = []string{"someone@elsewhere.example"}

	err := f.processor.Process(context.Background(), email)
	require.NoError(t, err)
}
