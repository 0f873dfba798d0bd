package outbound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/outbound"
	"github.com/greencandle/dispatch-core/internal/webhook"
)

func TestBodyWithFooter(t *testing.T) {
	body := outbound.BodyWithFooter(outbound.Email{
		LoadRefID:     "TS-88421",
		NegotiationID: 42,
		Body:          "We can cover this lane.",
	})
	assert.Contains(t, body, "Ref: TS-88421")
	assert.Contains(t, body, "Negotiation ID: 42")

	// A payment memo quoting the footer resolves back to the thread.
	id, found := webhook.ScanNegotiationID(body)
	require.True(t, found)
	assert.Equal(t, uint64(42), id)
}

func TestBodyWithFooterOmitsUnsetNegotiationID(t *testing.T) {
	body := outbound.BodyWithFooter(outbound.Email{
		LoadRefID: "TS-88421",
		Body:      "We can cover this lane.",
	})
	assert.Contains(t, body, "Ref: TS-88421")
	assert.NotContains(t, body, "Negotiation ID")

	_, found := webhook.ScanNegotiationID(body)
	assert.False(t, found)
}
