package replyparse_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/replyparse"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		subject     string
		hint        domain.ReplyHint
		offer       string
		brokerReady bool
		confidence  replyparse.Confidence
	}{
		{
			name:       "rejection",
			body:       "Sorry, this one is already covered.",
			subject:    "RE: Load TS-88421",
			hint:       domain.HintRejection,
			confidence: replyparse.ConfidenceHigh,
		},
		{
			name:       "rejection wins over acceptance keywords",
			body:       "Can't do $1,450, already covered.",
			subject:    "RE: Load TS-88421",
			hint:       domain.HintRejection,
			offer:      "1450",
			confidence: replyparse.ConfidenceHigh,
		},
		{
			name:        "acceptance with currency",
			body:        "You got it, $1,450 all in. Send MC and we'll get the rate con over.",
			subject:     "RE: Load TS-88421",
			hint:        domain.HintAcceptance,
			offer:       "1450",
			brokerReady: true,
			confidence:  replyparse.ConfidenceHigh,
		},
		{
			name:        "ready language without currency",
			body:        "We're ready to move on this if you are.",
			subject:     "RE: Load TS-88421",
			hint:        domain.HintCounter,
			brokerReady: true,
			confidence:  replyparse.ConfidenceMed,
		},
		{
			name:       "plain counter",
			body:       "Best I can do is 1375 on that lane.",
			subject:    "RE: Load TS-88421",
			hint:       domain.HintUnclassified,
			offer:      "1375",
			confidence: replyparse.ConfidenceLow,
		},
		{
			name:       "no signal",
			body:       "Who is this?",
			subject:    "RE: Load TS-88421",
			hint:       domain.HintUnclassified,
			confidence: replyparse.ConfidenceLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := replyparse.Classify(tt.body, tt.subject)
			assert.Equal(t, tt.hint, result.Hint)
			assert.Equal(t, tt.brokerReady, result.BrokerReady)
			assert.Equal(t, tt.confidence, result.Confidence)
			if tt.offer == "" {
				assert.Nil(t, result.ExtractedOffer)
			} else {
				require.NotNil(t, result.ExtractedOffer)
				assert.True(t, result.ExtractedOffer.Equal(decimal.RequireFromString(tt.offer)),
					"expected %s, got %s", tt.offer, result.ExtractedOffer)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	body := "You got it, $1,450 all in. Rate con coming."
	subject := "RE: Load TS-88421"

	first := replyparse.Classify(body, subject)
	second := replyparse.Classify(body, subject)
	assert.Equal(t, first.Hint, second.Hint)
	assert.Equal(t, first.BrokerReady, second.BrokerReady)
	require.NotNil(t, first.ExtractedOffer)
	require.NotNil(t, second.ExtractedOffer)
	assert.True(t, first.ExtractedOffer.Equal(*second.ExtractedOffer))
}

func TestExtractOffer(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "dollar sign with commas",
			text:     "we can do $1,450 on this",
			expected: "1450",
		},
		{
			name:     "plain number with cents",
			text:     "best is 1375.50 all in",
			expected: "1375.5",
		},
		{
			name:     "maximum of several candidates",
			text:     "posted at 1200 but we'll pay 1450",
			expected: "1450",
		},
		{
			name:     "reference numbers filtered",
			text:     "load 88421500 pays $1,450, zip 90210",
			expected: "90210",
		},
		{
			name: "nothing plausible",
			text: "ref 123456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := replyparse.ExtractOffer(tt.text)
			if tt.expected == "" {
				assert.Nil(t, offer)
				return
			}
			require.NotNil(t, offer)
			assert.True(t, offer.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, offer)
		})
	}
}

func TestIsRateCon(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		body     string
		expected bool
	}{
		{
			name:     "subject match",
			subject:  "Rate Confirmation - TS-88421",
			body:     "see attached",
			expected: true,
		},
		{
			name:     "body match",
			subject:  "RE: TS-88421",
			body:     "signed copy attached, good to go",
			expected: true,
		},
		{
			name:    "no match",
			subject: "RE: TS-88421",
			body:    "what's your MC?",
		},
		{
			name:    "phrase beyond scan window ignored",
			subject: "RE: TS-88421",
			body:    strings.Repeat("x", 2100) + " rate con",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, replyparse.IsRateCon(tt.subject, tt.body))
		})
	}
}

func TestParseSenderAddress(t *testing.T) {
	assert.Equal(t, "ops@broker.com", replyparse.ParseSenderAddress("Broker Ops <ops@broker.com>"))
	assert.Equal(t, "ops@broker.com", replyparse.ParseSenderAddress("OPS@Broker.com"))
	assert.Equal(t, "not an address", replyparse.ParseSenderAddress("  Not An Address "))
}