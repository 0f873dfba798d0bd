// Package replyparse classifies inbound broker email. It is a pure keyword
// classifier: deterministic, stateless, and idempotent over the same input.
// The negotiation layer decides what a classification means; nothing here
// mutates state, and a classification alone can never win a load.
package replyparse

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/greencandle/dispatch-core/internal/domain"
)

// Confidence grades how strongly the keyword rules matched.
type Confidence string

const (
	ConfidenceLow  Confidence = "LOW"
	ConfidenceMed  Confidence = "MED"
	ConfidenceHigh Confidence = "HIGH"
)

// Result is the classifier's read of a single broker message.
type Result struct {
	// Hint is the suggested negotiation move.
	Hint domain.ReplyHint
	// ExtractedOffer is the best dollar amount found in the body, nil when
	// no plausible amount is present.
	ExtractedOffer *decimal.Decimal
	// BrokerReady reports language indicating the broker wants to book.
	BrokerReady bool
	// Confidence grades the rule match.
	Confidence Confidence
}

var rejectionPhrases = []string{
	"no thanks",
	"already covered",
	"filled",
	"passed",
	"can't",
	"cannot",
}

var acceptancePhrases = []string{
	"accepted",
	"book it",
	"confirmed",
	"you got it",
	"ready",
	"rate con",
	"send mc",
	"done deal",
	"approved",
}

var readyPhrases = []string{
	"ready",
	"send mc",
	"rate con",
}

var rateConPhrases = []string{
	"rate confirmation",
	"ratecon",
	"rate con",
	"rc attached",
	"signed copy",
}

// amountRe matches $1,450 / 1450 / 1450.00 style tokens.
var amountRe = regexp.MustCompile(`\$?\d{1,3}(?:,\d{3})+(?:\.\d{2})?|\$?\d+(?:\.\d{2})?`)

// maxPlausibleOffer filters reference numbers and ZIP codes out of the
// amount candidates.
var maxPlausibleOffer = decimal.NewFromInt(100000)

// Classify runs the ordered keyword rules over a broker message. The first
// matching rule sets the hint; amount extraction runs regardless.
func Classify(body string, subject string) Result {
	text := strings.ToLower(subject + "\n" + body)
	offer := ExtractOffer(text)

	if containsAny(text, rejectionPhrases) {
		return Result{
			Hint:           domain.HintRejection,
			ExtractedOffer: offer,
			Confidence:     ConfidenceHigh,
		}
	}

	hasCurrency := strings.Contains(text, "$")
	if hasCurrency && containsAny(text, acceptancePhrases) {
		return Result{
			Hint:           domain.HintAcceptance,
			ExtractedOffer: offer,
			BrokerReady:    true,
			Confidence:     ConfidenceHigh,
		}
	}

	if containsAny(text, readyPhrases) {
		return Result{
			Hint:           domain.HintCounter,
			ExtractedOffer: offer,
			BrokerReady:    true,
			Confidence:     ConfidenceMed,
		}
	}

	return Result{
		Hint:           domain.HintUnclassified,
		ExtractedOffer: offer,
		Confidence:     ConfidenceLow,
	}
}

// ExtractOffer finds all dollar-amount tokens in the text, drops values at or
// above $100,000, and returns the maximum remaining. Returns nil when
// nothing plausible is found.
func ExtractOffer(text string) *decimal.Decimal {
	var best *decimal.Decimal
	for _, token := range amountRe.FindAllString(text, -1) {
		token = strings.TrimPrefix(token, "$")
		token = strings.ReplaceAll(token, ",", "")
		value, err := decimal.NewFromString(token)
		if err != nil {
			continue
		}
		if value.Sign() <= 0 || value.GreaterThanOrEqual(maxPlausibleOffer) {
			continue
		}
		if best == nil || value.GreaterThan(*best) {
			best = &value
		}
	}
	return best
}

// IsRateCon reports whether a message looks like a rate confirmation. Only
// the subject and the head of the body are scanned; attachments routinely
// bloat bodies past any useful keyword range.
func IsRateCon(subject string, body string) bool {
	if len(body) > 2000 {
		body = body[:2000]
	}
	text := strings.ToLower(subject + "\n" + body)
	return containsAny(text, rateConPhrases)
}

// ParseSenderAddress extracts the bare address from an RFC 5322 sender
// header, tolerating display names. Unparseable input comes back trimmed
// and lowercased as is.
func ParseSenderAddress(header string) string {
	addr, err := mail.ParseAddress(header)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(header))
	}
	return strings.ToLower(addr.Address)
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
