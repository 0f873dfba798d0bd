package treasury_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/chain"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/mocks"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
	"github.com/greencandle/dispatch-core/internal/treasury"
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

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

const (
	buyTx  = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa01"
	burnTx = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb02"
)

func newService(t *testing.T, cfg config.TreasuryConfig) (*treasury.Service, *mocks.MockStore, *mocks.MockChainGateway) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	st := mocks.NewMockStore(ctrl)
	gateway := mocks.NewMockChainGateway(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return treasury.NewService(st, gateway, pub, cfg), st, gateway
}

func TestRecordRevenue(t *testing.T) {
	svc, st, _ := newService(t, config.TreasuryConfig{})
	ref := "evt_123"

	st.EXPECT().InsertRevenueEntry(gomock.Any(), gomock.Any()).Return(true, nil)

	inserted, err := svc.RecordRevenue(context.Background(), &schema.RevenueEntry{
		Source:    domain.SourceBrokerSubscription,
		AmountUSD: dec("99"),
		SourceRef: &ref,
	})
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestRecordRevenueReplay(t *testing.T) {
	svc, st, _ := newService(t, config.TreasuryConfig{})
	ref := "evt_123"

	st.EXPECT().InsertRevenueEntry(gomock.Any(), gomock.Any()).Return(false, nil)

	inserted, err := svc.RecordRevenue(context.Background(), &schema.RevenueEntry{
		Source:    domain.SourceBrokerSubscription,
		AmountUSD: dec("99"),
		SourceRef: &ref,
	})
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestRecordRevenueRejectsNonPositive(t *testing.T) {
	svc, _, _ := newService(t, config.TreasuryConfig{})

	_, err := svc.RecordRevenue(context.Background(), &schema.RevenueEntry{
		Source:    domain.SourceCallPack,
		AmountUSD: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateBatchValidatesRate(t *testing.T) {
	svc, st, _ := newService(t, config.TreasuryConfig{})
	now := time.Now().UTC()

	_, err := svc.CreateBatch(context.Background(), now.AddDate(0, 0, -7), now, 5001)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateBatch(context.Background(), now, now, 1000)
	assert.ErrorIs(t, err, domain.ErrValidation)

	st.EXPECT().CreateBurnBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *schema.BurnBatch) error {
			assert.Equal(t, domain.DefaultBurnRateBps, batch.RateBps)
			assert.Equal(t, domain.BurnBatchCreated, batch.Status)
			return nil
		})

	// Zero rate falls back to the default.
	batch, err := svc.CreateBatch(context.Background(), now.AddDate(0, 0, -7), now, 0)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, batch.ID)
}

func TestExecuteRejectsMalformedHashes(t *testing.T) {
	svc, _, _ := newService(t, config.TreasuryConfig{})

	_, err := svc.Execute(context.Background(), uuid.New(), store.BurnExecution{
		BuyTxHash:  "not-a-hash",
		BurnTxHash: burnTx,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRunWeeklyBurnExecutes(t *testing.T) {
	svc, st, gateway := newService(t, config.TreasuryConfig{BurnRateBps: 1000})
	var batchID uuid.UUID

	st.EXPECT().CreateBurnBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *schema.BurnBatch) error {
			batchID = batch.ID
			assert.InDelta(t, 7*24*time.Hour, batch.PeriodEnd.Sub(batch.PeriodStart), float64(time.Minute))
			return nil
		})
	st.EXPECT().ReserveBurnBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*schema.BurnBatch, error) {
			return &schema.BurnBatch{
				ID:          id,
				Status:      domain.BurnBatchReserved,
				GrossUSD:    dec("1200"),
				ReservedUSD: dec("120"),
			}, nil
		})
	gateway.EXPECT().ExecuteBuyAndBurn(gomock.Any(), gomock.Any(), dec("120")).
		Return(&chain.BurnResult{
			USDSpent:     dec("119.50"),
			CandleBurned: dec("874.1200"),
			BuyTxHash:    buyTx,
			BurnTxHash:   burnTx,
		}, nil)
	st.EXPECT().ExecuteBurnBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, result store.BurnExecution) (*schema.BurnBatch, error) {
			assert.Equal(t, batchID, id)
			assert.True(t, result.USDSpent.Equal(dec("119.50")))
			return &schema.BurnBatch{ID: id, Status: domain.BurnBatchBurned}, nil
		})

	report, err := svc.RunWeeklyBurn(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Executed)
	assert.True(t, report.ReservedUSD.Equal(dec("120")))
}

func TestRunWeeklyBurnDryRun(t *testing.T) {
	svc, st, _ := newService(t, config.TreasuryConfig{BurnRateBps: 1000, DryRun: true})

	st.EXPECT().CreateBurnBatch(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().ReserveBurnBatch(gomock.Any(), gomock.Any()).
		Return(&schema.BurnBatch{Status: domain.BurnBatchReserved, ReservedUSD: dec("120")}, nil)

	report, err := svc.RunWeeklyBurn(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Executed)
	assert.Contains(t, report.Note, "dry run")
}

func TestRunWeeklyBurnRespectsCap(t *testing.T) {
	svc, st, _ := newService(t, config.TreasuryConfig{BurnRateBps: 1000, MaxBurnUSD: "100"})

	st.EXPECT().CreateBurnBatch(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().ReserveBurnBatch(gomock.Any(), gomock.Any()).
		Return(&schema.BurnBatch{Status: domain.BurnBatchReserved, ReservedUSD: dec("120")}, nil)

	report, err := svc.RunWeeklyBurn(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Executed)
	assert.Contains(t, report.Note, "cap")
}

func TestRunWeeklyBurnNothingEligible(t *testing.T) {
	svc, st, _ := newService(t, config.TreasuryConfig{BurnRateBps: 1000})

	st.EXPECT().CreateBurnBatch(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().ReserveBurnBatch(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrValidation)

	report, err := svc.RunWeeklyBurn(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Executed)
	assert.Contains(t, report.Note, "no eligible revenue")
}

func TestRunWeeklyBurnFailsBatchOnGatewayError(t *testing.T) {
	svc, st, gateway := newService(t, config.TreasuryConfig{BurnRateBps: 1000})

	st.EXPECT().CreateBurnBatch(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().ReserveBurnBatch(gomock.Any(), gomock.Any()).
		Return(&schema.BurnBatch{Status: domain.BurnBatchReserved, ReservedUSD: dec("120")}, nil)
	gateway.EXPECT().ExecuteBuyAndBurn(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnavailable)
	st.EXPECT().FailBurnBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.RunWeeklyBurn(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
