package negotiation_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/drafter"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/mocks"
	"github.com/greencandle/dispatch-core/internal/negotiation"
	"github.com/greencandle/dispatch-core/internal/outbound"
	"github.com/greencandle/dispatch-core/internal/replyparse"
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

type fixture struct {
	svc     *negotiation.Service
	store   *mocks.MockStore
	sender  *mocks.MockSender
	drafter *mocks.MockDrafter
	events  *mocks.MockEventPublisher
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	st := mocks.NewMockStore(ctrl)
	sender := mocks.NewMockSender(ctrl)
	d := mocks.NewMockDrafter(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return &fixture{
		svc:     negotiation.NewService(st, sender, d, ledger.NewService(st), pub),
		store:   st,
		sender:  sender,
		drafter: d,
		events:  pub,
	}
}

func testDriver() *schema.Driver {
	return &schema.Driver{
		ID:         7,
		Handle:     "bigrig",
		MCNumber:   "MC123456",
		RewardTier: domain.TierStandard,
	}
}

func testLoad() *schema.Load {
	rate := decimal.RequireFromString("1800")
	return &schema.Load{
		ID:          11,
		RefID:       "TS-88421",
		Origin:      "Dallas, TX",
		Destination: "Atlanta, GA",
		Equipment:   "V",
		PostedRate:  "$1,800",
		RateUSD:     &rate,
		BrokerEmail: "ops@brokerage.example",
		BrokerName:  "Brokerage Inc",
		SourceBoard: "dat",
	}
}

func TestStartDraft(t *testing.T) {
	f := newFixture(t)
	driver, load := testDriver(), testLoad()

	f.store.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *schema.Negotiation) error {
			n.ID = 42
			assert.Equal(t, domain.NegotiationPending, n.Status)
			assert.Equal(t, "ops+dat@brokerage.example", n.BrokerEmail)
			return nil
		})
	f.drafter.EXPECT().Draft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req drafter.Request) (*drafter.Draft, error) {
			assert.Equal(t, "TS-88421", req.LoadRefID)
			assert.Equal(t, "bigrig", req.DriverHandle)
			return &drafter.Draft{
				Subject:          "Dry van Dallas to Atlanta",
				Body:             "We can cover this lane.",
				PromptTokens:     320,
				CompletionTokens: 85,
			}, nil
		})
	f.store.EXPECT().UpdateNegotiationDraft(gomock.Any(), uint64(42),
		"Dry van Dallas to Atlanta", "We can cover this lane.", 320, 85).Return(nil)
	f.store.EXPECT().CreateNotification(gomock.Any(), "MC123456", domain.NotifyNegotiationDraft, gomock.Any()).
		Return(nil)

	n, err := f.svc.StartDraft(context.Background(), driver, load)
	require.NoError(t, err)
	assert.Equal(t, "Dry van Dallas to Atlanta", n.DraftSubject)
	assert.Equal(t, 320, n.PromptTokens)
}

func TestStartDraftSurvivesDrafterOutage(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any()).Return(nil)
	f.drafter.EXPECT().Draft(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnavailable)

	n, err := f.svc.StartDraft(context.Background(), testDriver(), testLoad())
	require.NoError(t, err)
	assert.Empty(t, n.DraftSubject)
	assert.Equal(t, domain.NegotiationPending, n.Status)
}

func TestSendCounterRequiresBrokerReply(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").
		Return(&schema.Negotiation{ID: 42, Status: domain.NegotiationSent}, nil)
	f.store.EXPECT().CountInboundMessages(gomock.Any(), uint64(42)).Return(int64(0), nil)

	_, err := f.svc.SendCounter(context.Background(), testDriver(), testLoad(),
		decimal.RequireFromString("100"), "")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSendCounter(t *testing.T) {
	f := newFixture(t)
	offer := decimal.RequireFromString("1800")

	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").
		Return(&schema.Negotiation{
			ID:           42,
			Status:       domain.NegotiationReplied,
			BrokerEmail:  "ops+dat@brokerage.example",
			DraftSubject: "Dry van Dallas to Atlanta",
			CurrentOffer: &offer,
		}, nil)
	f.store.EXPECT().CountInboundMessages(gomock.Any(), uint64(42)).Return(int64(1), nil)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email outbound.Email) error {
			assert.Equal(t, "ops+dat@brokerage.example", email.To)
			assert.Equal(t, uint64(42), email.NegotiationID)
			assert.Contains(t, email.Body, "$1900")
			assert.Contains(t, email.Body, "Truck 12")
			return nil
		})
	f.store.EXPECT().ConsumeCredits(gomock.Any(), "MC123456", "TS-88421",
		domain.OutboundEmailCost, domain.OutboundEmailCost).Return(nil)
	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationSent, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
			n := &schema.Negotiation{ID: 42, Status: to, AssignedTruck: "old truck"}
			mutate(n)
			assert.True(t, n.CurrentOffer.Equal(decimal.RequireFromString("1900")))
			assert.Equal(t, "Truck 12", n.AssignedTruck)
			return n, nil
		})

	n, err := f.svc.SendCounter(context.Background(), testDriver(), testLoad(),
		decimal.RequireFromString("100"), "Truck 12")
	require.NoError(t, err)
	assert.Equal(t, domain.NegotiationSent, n.Status)
}

func TestSendCounterFailedSendCostsNothing(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().GetLatestNegotiation(gomock.Any(), "TS-88421", "MC123456").
		Return(&schema.Negotiation{ID: 42, Status: domain.NegotiationReplied}, nil)
	f.store.EXPECT().CountInboundMessages(gomock.Any(), uint64(42)).Return(int64(1), nil)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	_, err := f.svc.SendCounter(context.Background(), testDriver(), testLoad(),
		decimal.RequireFromString("50"), "")
	assert.Error(t, err)
	// No ConsumeCredits and no TransitionNegotiation were expected.
}

func TestApplyReply(t *testing.T) {
	offer := decimal.RequireFromString("2100")
	tests := []struct {
		name       string
		result     replyparse.Result
		wantStatus domain.NegotiationStatus
		wantFinal  bool
	}{
		{
			name:       "rejection loses the thread",
			result:     replyparse.Result{Hint: domain.HintRejection},
			wantStatus: domain.NegotiationLost,
		},
		{
			name:       "acceptance parks at pending approval",
			result:     replyparse.Result{Hint: domain.HintAcceptance, ExtractedOffer: &offer, BrokerReady: true},
			wantStatus: domain.NegotiationPendingApproval,
			wantFinal:  true,
		},
		{
			name:       "counter stays replied",
			result:     replyparse.Result{Hint: domain.HintCounter, ExtractedOffer: &offer},
			wantStatus: domain.NegotiationReplied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			current := &schema.Negotiation{ID: 42, DriverMC: "MC123456", LoadRefID: "TS-88421", Status: domain.NegotiationSent}

			f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), tt.wantStatus, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
					n := *current
					n.Status = to
					mutate(&n)
					return &n, nil
				})
			if tt.wantStatus == domain.NegotiationPendingApproval {
				f.store.EXPECT().CreateNotification(gomock.Any(), "MC123456", domain.NotifySystemAlert, gomock.Any()).
					Return(nil)
			}

			updated, err := f.svc.ApplyReply(context.Background(), current, tt.result)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, updated.Status)
			require.NotNil(t, updated.LastHint)
			assert.Equal(t, tt.result.Hint, *updated.LastHint)
			if tt.wantFinal {
				require.NotNil(t, updated.FinalRate)
				assert.True(t, updated.FinalRate.Equal(offer))
			} else {
				assert.Nil(t, updated.FinalRate)
			}
		})
	}
}

func TestApplyReplyIgnoresTerminalThreads(t *testing.T) {
	f := newFixture(t)
	won := &schema.Negotiation{ID: 42, Status: domain.NegotiationWon}

	updated, err := f.svc.ApplyReply(context.Background(), won, replyparse.Result{Hint: domain.HintAcceptance})
	require.NoError(t, err)
	assert.Equal(t, domain.NegotiationWon, updated.Status)
}

func TestApplyReplySwallowsStaleTransitions(t *testing.T) {
	f := newFixture(t)
	current := &schema.Negotiation{ID: 42, Status: domain.NegotiationSent}

	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationLost, gomock.Any()).
		Return(nil, domain.ErrIllegalTransition)

	updated, err := f.svc.ApplyReply(context.Background(), current, replyparse.Result{Hint: domain.HintRejection})
	require.NoError(t, err)
	assert.Equal(t, domain.NegotiationSent, updated.Status)
}

func TestConfirm(t *testing.T) {
	f := newFixture(t)
	driver := testDriver()
	final := decimal.RequireFromString("2000")
	discoverer := "MC999999"

	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationWon, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
			n := &schema.Negotiation{
				ID:           42,
				LoadRefID:    "TS-88421",
				DriverMC:     "MC123456",
				Status:       to,
				CurrentOffer: &final,
			}
			mutate(n)
			return n, nil
		})
	// Driver rebate on the $40 dispatch fee.
	f.store.EXPECT().InsertLedgerEntryOnce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.LedgerEntry) (bool, error) {
			assert.Equal(t, "MC123456", entry.DriverMCNumber)
			assert.True(t, entry.AmountCandle.Equal(decimal.RequireFromString("8.42")),
				"got %s", entry.AmountCandle)
			return true, nil
		})
	f.store.EXPECT().GetLoadByRefID(gomock.Any(), "TS-88421").
		Return(&schema.Load{RefID: "TS-88421", DiscoveredBy: &discoverer}, nil)
	// Finder's fee of 0.1% for the scout.
	f.store.EXPECT().InsertLedgerEntryOnce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.LedgerEntry) (bool, error) {
			assert.Equal(t, "MC999999", entry.DriverMCNumber)
			assert.Equal(t, "FINDERS_FEE-TS-88421", entry.LoadID)
			assert.True(t, entry.AmountCandle.Equal(decimal.RequireFromString("2")))
			return true, nil
		})
	f.store.EXPECT().CreateNotification(gomock.Any(), "MC999999", domain.NotifySystemAlert, gomock.Any()).
		Return(nil)
	f.store.EXPECT().InsertRevenueEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.RevenueEntry) (bool, error) {
			assert.Equal(t, domain.SourceDispatchFee, entry.Source)
			assert.True(t, entry.AmountUSD.Equal(decimal.RequireFromString("40")))
			require.NotNil(t, entry.SourceRef)
			assert.Equal(t, "dispatch-42", *entry.SourceRef)
			assert.False(t, entry.BurnEligible)
			return true, nil
		})
	f.store.EXPECT().CreateNotification(gomock.Any(), "MC123456", domain.NotifyLoadWon, gomock.Any()).
		Return(nil)

	n, err := f.svc.Confirm(context.Background(), driver, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.NegotiationWon, n.Status)
	require.NotNil(t, n.FinalRate)
	assert.True(t, n.FinalRate.Equal(final))
}

func TestConfirmOutsidePendingApproval(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationWon, gomock.Any()).
		Return(nil, domain.ErrIllegalTransition)

	_, err := f.svc.Confirm(context.Background(), testDriver(), 42)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestMarkWonForcesRepliedThread(t *testing.T) {
	f := newFixture(t)
	offer := decimal.RequireFromString("2000")

	f.store.EXPECT().GetNegotiationByID(gomock.Any(), uint64(42)).
		Return(&schema.Negotiation{
			ID:           42,
			LoadRefID:    "TS-88421",
			DriverMC:     "MC123456",
			Status:       domain.NegotiationReplied,
			CurrentOffer: &offer,
		}, nil)
	f.store.EXPECT().GetDriverByMC(gomock.Any(), "MC123456").Return(testDriver(), nil)
	// The override path must use the force transition; a plain transition
	// would reject REPLIED as a source state for WON.
	f.store.EXPECT().ForceTransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationWon, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint64, to domain.NegotiationStatus, mutate func(*schema.Negotiation)) (*schema.Negotiation, error) {
			n := &schema.Negotiation{
				ID:           42,
				LoadRefID:    "TS-88421",
				DriverMC:     "MC123456",
				Status:       to,
				CurrentOffer: &offer,
			}
			mutate(n)
			return n, nil
		})
	f.store.EXPECT().InsertLedgerEntryOnce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.LedgerEntry) (bool, error) {
			assert.Equal(t, "MC123456", entry.DriverMCNumber)
			return true, nil
		})
	f.store.EXPECT().GetLoadByRefID(gomock.Any(), "TS-88421").
		Return(&schema.Load{RefID: "TS-88421"}, nil)
	f.store.EXPECT().InsertRevenueEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.RevenueEntry) (bool, error) {
			assert.Equal(t, domain.SourceDispatchFee, entry.Source)
			assert.True(t, entry.AmountUSD.Equal(decimal.RequireFromString("40")))
			return true, nil
		})
	f.store.EXPECT().CreateNotification(gomock.Any(), "MC123456", domain.NotifyLoadWon, gomock.Any()).
		Return(nil)

	n, err := f.svc.MarkWon(context.Background(), 42, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.NegotiationWon, n.Status)
	require.NotNil(t, n.FinalRate)
	assert.True(t, n.FinalRate.Equal(offer))
}

func TestReject(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().TransitionNegotiation(gomock.Any(), uint64(42), domain.NegotiationLost, gomock.Nil()).
		Return(&schema.Negotiation{ID: 42, LoadRefID: "TS-88421", Status: domain.NegotiationLost}, nil)
	f.store.EXPECT().CreateNotification(gomock.Any(), "MC123456", domain.NotifySystemAlert, gomock.Any()).
		Return(nil)

	n, err := f.svc.Reject(context.Background(), testDriver(), 42)
	require.NoError(t, err)
	assert.Equal(t, domain.NegotiationLost, n.Status)
}
