// Package mailroom polls the shared inbound mailbox and turns broker replies
// into negotiation updates: dedup, tagged-address routing, rate-con
// detection, the autopilot reaction, and the reply classification feed.
package mailroom

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/autopilot"
	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/mailtag"
	"github.com/greencandle/dispatch-core/internal/negotiation"
	"github.com/greencandle/dispatch-core/internal/replyparse"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

// Processor handles one inbound message end to end
type Processor struct {
	store        store.Store
	negotiations *negotiation.Service
	autopilot    *autopilot.Engine
	ledger       *ledger.Service
	mailDomain   string
}

// NewProcessor creates a message processor. mailDomain is the platform's
// inbound domain; recipients on other domains are ignored during routing.
func NewProcessor(s store.Store, n *negotiation.Service, a *autopilot.Engine, l *ledger.Service, mailDomain string) *Processor {
	return &Processor{store: s, negotiations: n, autopilot: a, ledger: l, mailDomain: mailDomain}
}

// Process routes, persists, and reacts to one inbound email. Duplicates and
// mail for unknown drivers are persisted (or skipped) quietly; only infra
// failures surface as errors.
func (p *Processor) Process(ctx context.Context, email InboundEmail) error {
	resolved, err := p.resolveRecipient(email)
	if err != nil {
		// Stray mail with no routable recipient is logged and dropped. Treating
		// it as a failure would stall the poll cursor behind one bad message.
		logger.WarnCtx(ctx, "inbound mail with no routable recipient",
			zap.String("message_id", email.MessageID),
			zap.String("from", email.From),
			zap.Error(err))
		return nil
	}

	message := &schema.Message{
		MessageID:    email.MessageID,
		Direction:    schema.MessageInbound,
		Sender:       replyparse.ParseSenderAddress(email.From),
		Recipient:    strings.Join(email.Recipients, ", "),
		Subject:      email.Subject,
		Body:         email.Body,
		DriverHandle: resolved.Handle,
		LoadRefID:    resolved.LoadRefID,
	}

	var driver *schema.Driver
	var thread *schema.Negotiation
	if resolved.Handle != "" {
		driver, err = p.store.GetDriverByHandle(ctx, resolved.Handle)
		if err != nil {
			return err
		}
	}
	if driver != nil && resolved.LoadRefID != domain.GeneralInbox {
		thread, err = p.store.GetLatestNegotiation(ctx, resolved.LoadRefID, driver.MCNumber)
		if err != nil {
			return err
		}
		if thread != nil {
			message.NegotiationID = &thread.ID
		}
	}

	inserted, err := p.store.InsertMessage(ctx, message)
	if err != nil {
		return err
	}
	if !inserted {
		return nil
	}

	// Unknown driver or untagged mail is retained for audit and goes no further.
	if driver == nil || resolved.LoadRefID == domain.GeneralInbox {
		logger.InfoCtx(ctx, "inbound mail retained without dispatch",
			zap.String("handle", resolved.Handle),
			zap.String("load_ref_id", resolved.LoadRefID))
		return nil
	}
	if thread == nil {
		logger.WarnCtx(ctx, "inbound mail for load without negotiation",
			zap.String("handle", resolved.Handle),
			zap.String("load_ref_id", resolved.LoadRefID))
		return nil
	}

	result := replyparse.Classify(email.Body, email.Subject)

	updated, err := p.negotiations.ApplyReply(ctx, thread, result)
	if err != nil {
		return err
	}

	if replyparse.IsRateCon(email.Subject, email.Body) {
		p.chargeRateCon(ctx, driver, resolved.LoadRefID)
		return nil
	}

	if updated.Status == domain.NegotiationReplied || updated.Status == domain.NegotiationSent {
		decision, acted, err := p.autopilot.React(ctx, driver, updated, result.ExtractedOffer)
		if err != nil {
			return err
		}
		if acted {
			logger.InfoCtx(ctx, "autopilot handled reply",
				zap.Uint64("negotiation_id", updated.ID),
				zap.String("decision", string(decision)))
		}
	}
	return nil
}

// resolveRecipient finds the tagged recipient among the mail's addressees.
func (p *Processor) resolveRecipient(email InboundEmail) (*mailtag.Resolved, error) {
	var lastErr error
	for _, recipient := range email.Recipients {
		if p.mailDomain != "" && !strings.HasSuffix(strings.ToLower(recipient), "@"+strings.ToLower(p.mailDomain)) {
			continue
		}
		resolved, err := mailtag.ResolveInbound(recipient)
		if err != nil {
			lastErr = err
			continue
		}
		return resolved, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: no recipient on %s", domain.ErrUnresolvedRecipient, p.mailDomain)
}

// chargeRateCon collects the autopilot success fee when a rate confirmation
// lands for a pair with autopilot enabled. An unfunded ledger or disabled
// setting drops the charge, never the message.
func (p *Processor) chargeRateCon(ctx context.Context, driver *schema.Driver, loadRefID string) {
	setting, err := p.store.GetAutopilotSetting(ctx, driver.MCNumber, loadRefID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("load_ref_id", loadRefID))
		return
	}
	if setting == nil || !setting.Enabled {
		return
	}

	charged, err := p.ledger.ChargeAutopilotSuccess(ctx, driver.MCNumber, loadRefID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCredits) {
			logger.WarnCtx(ctx, "rate con fee unfunded",
				zap.String("driver_mc", driver.MCNumber),
				zap.String("load_ref_id", loadRefID))
			return
		}
		logger.ErrorCtx(ctx, err, zap.String("load_ref_id", loadRefID))
		return
	}
	if !charged {
		return
	}

	msg := fmt.Sprintf("Auto-Pilot booked load %s. Rate confirmation received.", loadRefID)
	if err := p.store.CreateNotification(ctx, driver.MCNumber, domain.NotifyAutopilotSuccess, msg); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("load_ref_id", loadRefID))
	}
}
