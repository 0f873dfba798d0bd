// Package webhook verifies inbound payment-provider webhooks and parses
// their payloads into revenue events. Signature scheme: HMAC-SHA256 over
// "{timestamp}.{raw_body}", sent as "sha256=<hex>" alongside the Unix
// timestamp header. The timestamp binds the signature to a window and stops
// replays.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/greencandle/dispatch-core/internal/domain"
)

const (
	// SignatureHeader carries "sha256=<hex>".
	SignatureHeader = "X-Webhook-Signature"
	// TimestampHeader carries the signer's Unix timestamp.
	TimestampHeader = "X-Webhook-Timestamp"

	// Tolerance bounds how stale a signed timestamp may be.
	Tolerance = 5 * time.Minute
)

// Sign computes the signature header value for a payload.
func Sign(secret string, timestamp int64, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%d.", timestamp)
	h.Write(body)
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// Verify checks a webhook signature against the shared secret. Failures come
// back as ErrUnauthorized; the handler decides the HTTP shape.
func Verify(secret string, timestampHeader string, signatureHeader string, body []byte, now time.Time) error {
	if secret == "" {
		return fmt.Errorf("%w: no webhook secret configured", domain.ErrUnauthorized)
	}
	if signatureHeader == "" {
		return fmt.Errorf("%w: missing %s header", domain.ErrUnauthorized, SignatureHeader)
	}

	timestamp, err := strconv.ParseInt(timestampHeader, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad %s header", domain.ErrUnauthorized, TimestampHeader)
	}

	age := now.Sub(time.Unix(timestamp, 0))
	if age > Tolerance || age < -Tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", domain.ErrUnauthorized)
	}

	expected := Sign(secret, timestamp, body)
	if !hmac.Equal([]byte(expected), []byte(signatureHeader)) {
		return fmt.Errorf("%w: signature mismatch", domain.ErrUnauthorized)
	}
	return nil
}
