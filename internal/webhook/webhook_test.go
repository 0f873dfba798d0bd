package webhook_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/webhook"
)

func TestVerifyAcceptsFreshSignature(t *testing.T) {
	body := []byte(`{"event_id":"evt_1","amount_cents":4000}`)
	now := time.Now()
	sig := webhook.Sign("whsec_test", now.Unix(), body)

	err := webhook.Verify("whsec_test", timestamp(now), sig, body, now)
	require.NoError(t, err)
}

func TestVerifyRejectsTamperedBody(t *testing.T) {
	now := time.Now()
	sig := webhook.Sign("whsec_test", now.Unix(), []byte(`{"amount_cents":4000}`))

	err := webhook.Verify("whsec_test", timestamp(now), sig, []byte(`{"amount_cents":400000}`), now)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyRejectsStaleTimestamp(t *testing.T) {
	body := []byte(`{}`)
	signed := time.Now().Add(-10 * time.Minute)
	sig := webhook.Sign("whsec_test", signed.Unix(), body)

	err := webhook.Verify("whsec_test", timestamp(signed), sig, body, time.Now())
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	body := []byte(`{}`)
	now := time.Now()
	sig := webhook.Sign("whsec_other", now.Unix(), body)

	err := webhook.Verify("whsec_test", timestamp(now), sig, body, now)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func timestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

func TestGrossUSDCanonicalizes(t *testing.T) {
	cents := int64(123456)
	usd := " 1234.567 "
	bad := "forty"

	tests := []struct {
		name    string
		event   webhook.PaymentEvent
		want    string
		wantErr bool
	}{
		{"cents", webhook.PaymentEvent{AmountCents: &cents}, "1234.56", false},
		{"usd string rounds half up", webhook.PaymentEvent{AmountUSD: &usd}, "1234.57", false},
		{"cents win over usd", webhook.PaymentEvent{AmountCents: &cents, AmountUSD: &usd}, "1234.56", false},
		{"unparseable usd", webhook.PaymentEvent{AmountUSD: &bad}, "", true},
		{"neither", webhook.PaymentEvent{}, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.event.GrossUSD()
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestSourceMapsKnownBuckets(t *testing.T) {
	e := webhook.PaymentEvent{SourceType: "factor_referral"}
	assert.Equal(t, domain.SourceFactorReferral, e.Source(domain.SourceCallPack))

	e = webhook.PaymentEvent{SourceType: "something_new"}
	assert.Equal(t, domain.SourceCallPack, e.Source(domain.SourceCallPack))

	e = webhook.PaymentEvent{}
	assert.Equal(t, domain.SourceDispatchFee, e.Source(domain.SourceDispatchFee))
}

func TestScanNegotiationID(t *testing.T) {
	id, ok := webhook.ScanNegotiationID("Invoice for load TS-88421\nRef: TS-88421\nNegotiation ID: 42\n")
	require.True(t, ok)
	assert.Equal(t, uint64(42), id)

	_, ok = webhook.ScanNegotiationID("no reference here")
	assert.False(t, ok)
}
