package ingestion_test

import (
	"context"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/ingestion"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/mocks"
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

func TestIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	st := mocks.NewMockStore(ctrl)
	svc := ingestion.NewService(st)

	driver := &schema.Driver{MCNumber: "MC424242"}
	inputs := []ingestion.LoadInput{
		{
			RefID:         "DAT-100",
			Origin:        "Laredo, TX",
			Destination:   "Chicago, IL",
			Price:         "$2,450",
			EquipmentType: "R",
			PickupDate:    "2026-09-02",
			LoadSource:    "DAT",
		},
		{
			RefID:      "DAT-101",
			Price:      "negotiable",
			LoadSource: "dat",
		},
		{
			// Already known upstream; UpsertLoads reports only one new row.
			RefID: "DAT-100",
			Price: "$2,450",
		},
		{
			// Blank ref ids never reach the store.
			RefID: "  ",
			Price: "$9,999",
		},
	}

	st.EXPECT().UpsertLoads(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loads []schema.Load) (int, error) {
			require.Len(t, loads, 3)
			first := loads[0]
			assert.Equal(t, "DAT-100", first.RefID)
			assert.Equal(t, "dat", first.SourceBoard)
			require.NotNil(t, first.RateUSD)
			assert.True(t, first.RateUSD.Equal(decimal.RequireFromString("2450")))
			require.NotNil(t, first.PickupDate)
			require.NotNil(t, first.DiscoveredBy)
			assert.Equal(t, "MC424242", *first.DiscoveredBy)
			assert.Nil(t, loads[1].RateUSD)
			return 2, nil
		})
	st.EXPECT().TouchScoutHeartbeat(gomock.Any(), "MC424242", gomock.Any()).Return(nil)

	result, err := svc.Ingest(context.Background(), driver, inputs)
	require.NoError(t, err)
	assert.Equal(t, 2, result.New)
	// Both $2,450 postings clear the hot threshold; the blank ref does not count.
	assert.Equal(t, 2, result.Hot)
}

func TestIngestEmptyBatchStillHeartbeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	st := mocks.NewMockStore(ctrl)
	svc := ingestion.NewService(st)

	st.EXPECT().TouchScoutHeartbeat(gomock.Any(), "MC424242", gomock.Any()).Return(nil)

	result, err := svc.Ingest(context.Background(), &schema.Driver{MCNumber: "MC424242"}, nil)
	require.NoError(t, err)
	assert.Zero(t, result.New)
	assert.Zero(t, result.Hot)
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		posted string
		want   string
	}{
		{posted: "$2,450", want: "2450"},
		{posted: "1800.50", want: "1800.50"},
		{posted: " $950 ", want: "950"},
		{posted: "negotiable", want: ""},
		{posted: "", want: ""},
		{posted: "-100", want: ""},
	}

	for _, tt := range tests {
		got := ingestion.ParseRate(tt.posted)
		if tt.want == "" {
			assert.Nil(t, got, "posted %q", tt.posted)
			continue
		}
		require.NotNil(t, got, "posted %q", tt.posted)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "posted %q got %s", tt.posted, got)
	}
}
