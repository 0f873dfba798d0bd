package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/mocks"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

func newService(t *testing.T) (*ledger.Service, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	st := mocks.NewMockStore(ctrl)
	return ledger.NewService(st), st
}

func TestIssueLoadCredits(t *testing.T) {
	svc, st := newService(t)

	var inserted *schema.LedgerEntry
	st.EXPECT().InsertLedgerEntryOnce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.LedgerEntry) (bool, error) {
			inserted = entry
			return true, nil
		})

	split, err := svc.IssueLoadCredits(context.Background(), "MC123456", "TS-88421", decimal.RequireFromString("1500"))
	require.NoError(t, err)

	// 2% fee on $1500 is $30; the driver rebate share of that is $6.32.
	assert.True(t, split.FeeUSD.Equal(decimal.RequireFromString("30")))
	require.NotNil(t, inserted)
	assert.Equal(t, "MC123456", inserted.DriverMCNumber)
	assert.Equal(t, "TS-88421", inserted.LoadID)
	assert.Equal(t, domain.LedgerCredited, inserted.Status)
	assert.True(t, inserted.AmountCandle.Equal(decimal.RequireFromString("6.32")),
		"got %s", inserted.AmountCandle)
	assert.True(t, inserted.AmountUSD.Equal(inserted.AmountCandle))
}

func TestIssueLoadCreditsRejectsNonPositiveRate(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.IssueLoadCredits(context.Background(), "MC123456", "TS-88421", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGrantStarterPack(t *testing.T) {
	tests := []struct {
		name      string
		authority domain.AuthorityType
		loadID    string
		amount    string
	}{
		{
			name:      "solo",
			authority: domain.AuthoritySolo,
			loadID:    domain.StarterPackLoadID,
			amount:    "10",
		},
		{
			name:      "fleet",
			authority: domain.AuthorityFleet,
			loadID:    domain.FleetStarterPackLoadID,
			amount:    "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newService(t)

			st.EXPECT().InsertLedgerEntryOnce(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *schema.LedgerEntry) (bool, error) {
					assert.Equal(t, tt.loadID, entry.LoadID)
					assert.Equal(t, domain.LedgerCredited, entry.Status)
					assert.True(t, entry.AmountCandle.Equal(decimal.RequireFromString(tt.amount)))
					return true, nil
				})

			granted, err := svc.GrantStarterPack(context.Background(), &schema.Driver{
				MCNumber:      "MC123456",
				AuthorityType: tt.authority,
			})
			require.NoError(t, err)
			assert.True(t, granted)
		})
	}
}

func TestCreditFindersFee(t *testing.T) {
	t.Run("discoverer is the winner", func(t *testing.T) {
		svc, _ := newService(t)

		credited, err := svc.CreditFindersFee(context.Background(), "MC123456", "MC123456", "TS-88421", decimal.RequireFromString("1500"))
		require.NoError(t, err)
		assert.False(t, credited)
	})

	t.Run("no discoverer", func(t *testing.T) {
		svc, _ := newService(t)

		credited, err := svc.CreditFindersFee(context.Background(), "", "MC123456", "TS-88421", decimal.RequireFromString("1500"))
		require.NoError(t, err)
		assert.False(t, credited)
	})

	t.Run("credits and notifies the scout", func(t *testing.T) {
		svc, st := newService(t)

		st.EXPECT().InsertLedgerEntryOnce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *schema.LedgerEntry) (bool, error) {
				assert.Equal(t, "MC777777", entry.DriverMCNumber)
				assert.Equal(t, "FINDERS_FEE-TS-88421", entry.LoadID)
				assert.True(t, entry.AmountCandle.Equal(decimal.RequireFromString("1.5")),
					"got %s", entry.AmountCandle)
				return true, nil
			})
		st.EXPECT().CreateNotification(gomock.Any(), "MC777777", domain.NotifySystemAlert, gomock.Any()).
			Return(nil)

		credited, err := svc.CreditFindersFee(context.Background(), "MC777777", "MC123456", "TS-88421", decimal.RequireFromString("1500"))
		require.NoError(t, err)
		assert.True(t, credited)
	})

	t.Run("replay credits nothing", func(t *testing.T) {
		svc, st := newService(t)

		st.EXPECT().InsertLedgerEntryOnce(gomock.Any(), gomock.Any()).Return(false, nil)

		credited, err := svc.CreditFindersFee(context.Background(), "MC777777", "MC123456", "TS-88421", decimal.RequireFromString("1500"))
		require.NoError(t, err)
		assert.False(t, credited)
	})
}

func TestBalances(t *testing.T) {
	svc, st := newService(t)

	now := time.Now().UTC()
	st.EXPECT().LedgerEntriesForDriver(gomock.Any(), "MC123456").Return([]schema.LedgerEntry{
		{AmountCandle: decimal.RequireFromString("10"), Status: domain.LedgerCredited, UnlocksAt: now.Add(-time.Minute)},
		// A CREDITED row inside its lock window counts as locked, not claimable.
		{AmountCandle: decimal.RequireFromString("4"), Status: domain.LedgerCredited, UnlocksAt: now.Add(time.Hour)},
		{AmountCandle: decimal.RequireFromString("5"), Status: domain.LedgerVested, UnlocksAt: now},
		{AmountCandle: decimal.RequireFromString("7"), Status: domain.LedgerLocked, UnlocksAt: now.Add(time.Hour)},
		{AmountCandle: decimal.RequireFromString("3"), Status: domain.LedgerLocked, UnlocksAt: now.Add(-time.Hour)},
		{AmountCandle: decimal.RequireFromString("-0.1"), Status: domain.LedgerConsumed, UnlocksAt: now},
		{AmountCandle: decimal.RequireFromString("99"), Status: domain.LedgerRevoked, UnlocksAt: now},
	}, nil)

	summary, err := svc.Balances(context.Background(), &schema.Driver{
		MCNumber:   "MC123456",
		RewardTier: domain.TierStandard,
	})
	require.NoError(t, err)

	assert.True(t, summary.TotalCandle.Equal(decimal.RequireFromString("28.9")), "total %s", summary.TotalCandle)
	assert.True(t, summary.LockedCandle.Equal(decimal.RequireFromString("11")), "locked %s", summary.LockedCandle)
	assert.True(t, summary.ClaimableCandle.Equal(decimal.RequireFromString("17.9")), "claimable %s", summary.ClaimableCandle)
	assert.True(t, summary.ConsumedCandle.Equal(decimal.RequireFromString("0.1")), "consumed %s", summary.ConsumedCandle)
	assert.Equal(t, "2.5", summary.BuybackRate)
}

func TestReinvest(t *testing.T) {
	svc, st := newService(t)

	now := time.Now().UTC()
	st.EXPECT().LedgerEntriesForDriver(gomock.Any(), "MC123456").Return([]schema.LedgerEntry{
		{AmountCandle: decimal.RequireFromString("10"), Status: domain.LedgerCredited, UnlocksAt: now},
	}, nil)
	st.EXPECT().Reinvest(gomock.Any(), "MC123456", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, amount, boosted decimal.Decimal, unlocksAt time.Time) error {
			assert.True(t, amount.Equal(decimal.RequireFromString("10")))
			assert.True(t, boosted.Equal(decimal.RequireFromString("10.5")))
			assert.True(t, unlocksAt.After(now.AddDate(0, 2, 0)))
			return nil
		})

	amount, boosted, err := svc.Reinvest(context.Background(), &schema.Driver{MCNumber: "MC123456"})
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("10")))
	assert.True(t, boosted.Equal(decimal.RequireFromString("10.5")))
}

func TestReinvestNothingClaimable(t *testing.T) {
	svc, st := newService(t)

	st.EXPECT().LedgerEntriesForDriver(gomock.Any(), "MC123456").Return(nil, nil)

	_, _, err := svc.Reinvest(context.Background(), &schema.Driver{MCNumber: "MC123456"})
	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
}

func TestTransferToCardConvertsAtTokenPrice(t *testing.T) {
	svc, st := newService(t)

	amount := decimal.RequireFromString("100")
	st.EXPECT().TransferToCard(gomock.Any(), "MC123456", amount, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, candle, usd, price decimal.Decimal) (*schema.CardTransaction, error) {
			// 100 CANDLE at the $0.042 token price lands $4.20 on the card.
			assert.True(t, usd.Equal(decimal.RequireFromString("4.2")), "usd %s", usd)
			assert.True(t, price.Equal(domain.CandlePriceUSD))
			return &schema.CardTransaction{
				Kind:          schema.CardTxLoad,
				AmountCandle:  candle,
				AmountUSD:     usd,
				TokenPriceUSD: price,
				Status:        schema.CardTxCompleted,
			}, nil
		})

	tx, err := svc.TransferToCard(context.Background(), "MC123456", amount)
	require.NoError(t, err)
	assert.True(t, tx.AmountUSD.Equal(decimal.RequireFromString("4.2")))
	assert.True(t, tx.TokenPriceUSD.Equal(domain.CandlePriceUSD))
}

func TestRequestClaim(t *testing.T) {
	wallet := "0x52908400098527886E0F7030069857D2E4169EE7"

	t.Run("invalid wallet", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.RequestClaim(context.Background(), "MC123456", "not-a-wallet", decimal.RequireFromString("5"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.RequestClaim(context.Background(), "MC123456", wallet, decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("opens a pending request", func(t *testing.T) {
		svc, st := newService(t)

		st.EXPECT().CreateClaimRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request *schema.ClaimRequest) error {
				assert.Equal(t, domain.ClaimPending, request.Status)
				assert.Equal(t, wallet, request.WalletAddress)
				return nil
			})

		request, err := svc.RequestClaim(context.Background(), "MC123456", wallet, decimal.RequireFromString("5"))
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimPending, request.Status)
	})
}
