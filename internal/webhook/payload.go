package webhook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// PaymentEvent is the common shape of inbound provider events. Stripe-style
// processors send amount_cents; factoring partners send amount_usd strings.
type PaymentEvent struct {
	// EventID is the provider's event identifier, used as the revenue
	// source_ref for replay safety.
	EventID string `json:"event_id"`
	// EventType is the provider's event name (e.g. "payment.succeeded",
	// "settlement.confirmed").
	EventType string `json:"event_type"`
	// SourceType optionally names the revenue bucket; defaults per handler.
	SourceType string `json:"source_type,omitempty"`

	AmountCents *int64  `json:"amount_cents,omitempty"`
	AmountUSD   *string `json:"amount_usd,omitempty"`

	// LoadRefID ties the payment to a load when the provider knows it.
	LoadRefID string `json:"load_id,omitempty"`
	// DriverMC ties the payment to a carrier when the provider knows it.
	DriverMC string `json:"driver_mc,omitempty"`
	// Memo is free text from the provider; factoring partners echo our
	// invoice body here, which carries the negotiation reference.
	Memo string `json:"memo,omitempty"`
}

// GrossUSD canonicalizes the event amount to two decimal places. Cents win
// when both forms are present.
func (e *PaymentEvent) GrossUSD() (decimal.Decimal, error) {
	if e.AmountCents != nil {
		return decimal.New(*e.AmountCents, -2), nil
	}
	if e.AmountUSD != nil {
		amount, err := decimal.NewFromString(strings.TrimSpace(*e.AmountUSD))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: bad amount_usd %q", domain.ErrValidation, *e.AmountUSD)
		}
		return amount.Round(2), nil
	}
	return decimal.Zero, fmt.Errorf("%w: amount_cents or amount_usd required", domain.ErrValidation)
}

// Source maps the event's source_type to a revenue bucket, falling back to
// the handler's default when absent or unknown.
func (e *PaymentEvent) Source(fallback domain.RevenueSource) domain.RevenueSource {
	switch strings.ToUpper(strings.TrimSpace(e.SourceType)) {
	case string(domain.SourceDispatchFee):
		return domain.SourceDispatchFee
	case string(domain.SourceFactorReferral):
		return domain.SourceFactorReferral
	case string(domain.SourceCallPack):
		return domain.SourceCallPack
	case string(domain.SourceAutomationPurchase):
		return domain.SourceAutomationPurchase
	case string(domain.SourceBrokerSubscription):
		return domain.SourceBrokerSubscription
	}
	return fallback
}

var negotiationIDRe = regexp.MustCompile(`Negotiation ID: (\d+)`)

// ScanNegotiationID recovers a negotiation id from free text. Outbound mail
// appends "Negotiation ID: <n>" so provider memos that quote it can be tied
// back to a thread.
func ScanNegotiationID(text string) (uint64, bool) {
	m := negotiationIDRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
