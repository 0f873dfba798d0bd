package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/store/schema"
	"github.com/greencandle/dispatch-core/internal/webhook"
)

// StripeWebhook records card-rail revenue: call packs, automation purchases,
// broker subscriptions. Replayed events acknowledge with 200 so the provider
// stops retrying.
func (h *handler) StripeWebhook(c *gin.Context) {
	event, ok := h.verifiedEvent(c, h.stripeSecret)
	if !ok {
		return
	}
	if event.EventID == "" {
		respondBadRequest(c, "source_ref is required")
		return
	}

	gross, err := event.GrossUSD()
	if err != nil {
		respondBadRequest(c, "amount_cents or amount_usd is required", err.Error())
		return
	}

	entry := &schema.RevenueEntry{
		Source:       event.Source(domain.SourceCallPack),
		AmountUSD:    gross,
		SourceRef:    &event.EventID,
		BurnEligible: true,
		OccurredAt:   time.Now().UTC(),
	}
	if event.DriverMC != "" {
		entry.DriverMCNumber = &event.DriverMC
	}
	if event.LoadRefID != "" {
		entry.LoadRefID = &event.LoadRefID
	}

	inserted, err := h.treasury.RecordRevenue(c.Request.Context(), entry)
	if err != nil {
		respondDomainError(c, err, "Failed to record revenue")
		return
	}
	if !inserted {
		c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

// FactoringWebhook handles the factoring provider's payout events. Dispatch
// fee settlements flip the load's revenue rows to burn-eligible; referral
// commissions file new revenue. The load can arrive as load_id or be
// recovered from a "Negotiation ID: <n>" memo line.
func (h *handler) FactoringWebhook(c *gin.Context) {
	event, ok := h.verifiedEvent(c, h.factoringSecret)
	if !ok {
		return
	}

	loadRefID := event.LoadRefID
	if loadRefID == "" {
		if negotiationID, found := webhook.ScanNegotiationID(event.Memo); found {
			negotiation, err := h.store.GetNegotiationByID(c.Request.Context(), negotiationID)
			if err != nil {
				respondDomainError(c, err, "Failed to resolve negotiation from memo")
				return
			}
			if negotiation != nil {
				loadRefID = negotiation.LoadRefID
			}
		}
	}

	source := event.Source(domain.SourceFactorReferral)
	if source == domain.SourceDispatchFee {
		if loadRefID == "" {
			respondBadRequest(c, "load_id is required to confirm a settlement")
			return
		}
		settled, err := h.treasury.ConfirmDispatchSettlement(c.Request.Context(), loadRefID)
		if err != nil {
			respondDomainError(c, err, "Failed to confirm settlement")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "confirmed", "settled": settled})
		return
	}

	gross, err := event.GrossUSD()
	if err != nil {
		respondBadRequest(c, "amount_cents or amount_usd is required", err.Error())
		return
	}
	entry := &schema.RevenueEntry{
		Source:       source,
		AmountUSD:    gross,
		BurnEligible: true,
		OccurredAt:   time.Now().UTC(),
	}
	if event.EventID != "" {
		entry.SourceRef = &event.EventID
	}
	if event.DriverMC != "" {
		entry.DriverMCNumber = &event.DriverMC
	}
	if loadRefID != "" {
		entry.LoadRefID = &loadRefID
	}

	inserted, err := h.treasury.RecordRevenue(c.Request.Context(), entry)
	if err != nil {
		respondDomainError(c, err, "Failed to record revenue")
		return
	}
	if !inserted {
		c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

// verifiedEvent reads the raw body, checks the HMAC signature when a secret
// is configured, and decodes the payment event. Signature failures are 401;
// unparseable bodies are 400.
func (h *handler) verifiedEvent(c *gin.Context, secret string) (*webhook.PaymentEvent, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, "Failed to read request body")
		return nil, false
	}

	if secret != "" {
		err := webhook.Verify(secret,
			c.GetHeader(webhook.TimestampHeader),
			c.GetHeader(webhook.SignatureHeader),
			body, time.Now())
		if err != nil {
			logWebhookDrop(c, "webhook signature rejected", err)
			respondDomainError(c, err, "Invalid webhook signature")
			return nil, false
		}
	}

	var event webhook.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		respondBadRequest(c, "Invalid webhook payload: "+err.Error())
		return nil, false
	}
	return &event, true
}
