// Package negotiation drives the load negotiation state machine. A thread
// moves PENDING -> SENT -> REPLIED/PENDING_APPROVAL -> WON/LOST; the driver's
// explicit confirmation is the only path to WON, no matter how eager the
// broker's language reads.
package negotiation

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/drafter"
	"github.com/greencandle/dispatch-core/internal/events"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/mailtag"
	"github.com/greencandle/dispatch-core/internal/outbound"
	"github.com/greencandle/dispatch-core/internal/replyparse"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

// Service orchestrates negotiations over the store, mailer, and drafter.
type Service struct {
	store   store.Store
	sender  outbound.Sender
	drafter drafter.Drafter
	ledger  *ledger.Service
	events  events.Publisher
}

// NewService creates a negotiation service
func NewService(s store.Store, sender outbound.Sender, d drafter.Drafter, l *ledger.Service, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &Service{store: s, sender: sender, drafter: d, ledger: l, events: pub}
}

// publish emits a lifecycle event; failures are logged, never surfaced.
func (s *Service) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if err := s.events.Publish(ctx, eventType, data); err != nil {
		logger.WarnCtx(ctx, "event publish failed",
			zap.String("event_type", eventType), zap.Error(err))
	}
}

// StartDraft opens a PENDING negotiation for (load, driver) and stores an AI
// draft for the driver to review. The calling driver is the attribution;
// nothing is auto-assigned.
func (s *Service) StartDraft(ctx context.Context, driver *schema.Driver, load *schema.Load) (*schema.Negotiation, error) {
	negotiation := &schema.Negotiation{
		LoadRefID:   load.RefID,
		DriverMC:    driver.MCNumber,
		Status:      domain.NegotiationPending,
		BrokerEmail: mailtag.TagBrokerAddress(load.BrokerEmail, load.SourceBoard),
	}
	if err := s.store.CreateNegotiation(ctx, negotiation); err != nil {
		return nil, err
	}

	draft, err := s.drafter.Draft(ctx, drafter.Request{
		DriverHandle: driver.Handle,
		LoadRefID:    load.RefID,
		Origin:       load.Origin,
		Destination:  load.Destination,
		Equipment:    load.Equipment,
		PostedRate:   load.PostedRate,
		BrokerName:   load.BrokerName,
	})
	if err != nil {
		// The thread survives without a draft; the driver can write their own.
		logger.WarnCtx(ctx, "draft generation failed",
			zap.Uint64("negotiation_id", negotiation.ID), zap.Error(err))
		return negotiation, nil
	}

	err = s.store.UpdateNegotiationDraft(ctx, negotiation.ID, draft.Subject, draft.Body,
		draft.PromptTokens, draft.CompletionTokens)
	if err != nil {
		return nil, err
	}
	negotiation.DraftSubject = draft.Subject
	negotiation.DraftBody = draft.Body
	negotiation.PromptTokens = draft.PromptTokens
	negotiation.CompletionTokens = draft.CompletionTokens

	if err := s.store.CreateNotification(ctx, driver.MCNumber, domain.NotifyNegotiationDraft,
		fmt.Sprintf("Draft ready for load %s", load.RefID)); err != nil {
		return nil, err
	}
	return negotiation, nil
}

// SendCounter sends the driver's counter offer to the broker. It requires a
// prior broker message on the thread and enough claimable credit to pay for
// the outbound email; the credit is consumed only after a successful send.
func (s *Service) SendCounter(ctx context.Context, driver *schema.Driver, load *schema.Load, incrementUSD decimal.Decimal, truck string) (*schema.Negotiation, error) {
	negotiation, err := s.store.GetLatestNegotiation(ctx, load.RefID, driver.MCNumber)
	if err != nil {
		return nil, err
	}
	if negotiation == nil {
		negotiation = &schema.Negotiation{
			LoadRefID:   load.RefID,
			DriverMC:    driver.MCNumber,
			Status:      domain.NegotiationPending,
			BrokerEmail: mailtag.TagBrokerAddress(load.BrokerEmail, load.SourceBoard),
		}
		if err := s.store.CreateNegotiation(ctx, negotiation); err != nil {
			return nil, err
		}
	}

	inbound, err := s.store.CountInboundMessages(ctx, negotiation.ID)
	if err != nil {
		return nil, err
	}
	if inbound == 0 {
		return nil, fmt.Errorf("%w: no broker reply on load %s yet", domain.ErrConflict, load.RefID)
	}

	offer := baseOffer(negotiation, load).Add(incrementUSD)
	subject := negotiation.DraftSubject
	if subject == "" {
		subject = "Load " + load.RefID
	}
	body := fmt.Sprintf("We can move this for $%s.", offer)
	if truck != "" {
		body = fmt.Sprintf("We can move this for $%s. Truck %s is open on those dates.", offer, truck)
	}
	email := outbound.Email{
		DriverHandle:  driver.Handle,
		LoadRefID:     load.RefID,
		NegotiationID: negotiation.ID,
		To:            negotiation.BrokerEmail,
		Subject:       subject,
		Body:          body,
	}
	if err := s.sender.Send(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to send counter: %w", err)
	}

	// Charge after the send went out; a failed send costs nothing.
	if err := s.ledger.ChargeAction(ctx, driver.MCNumber, load.RefID, domain.OutboundEmailCost); err != nil {
		return nil, err
	}

	return s.store.TransitionNegotiation(ctx, negotiation.ID, domain.NegotiationSent, func(n *schema.Negotiation) {
		n.CurrentOffer = &offer
		if truck != "" {
			n.AssignedTruck = truck
		}
	})
}

// ApplyReply folds a classified broker reply into the thread. The hint can
// push the thread to LOST, REPLIED, or PENDING_APPROVAL; it can never push
// it to WON.
func (s *Service) ApplyReply(ctx context.Context, negotiation *schema.Negotiation, result replyparse.Result) (*schema.Negotiation, error) {
	if negotiation.Status.IsTerminal() {
		return negotiation, nil
	}

	target := domain.NegotiationReplied
	switch result.Hint {
	case domain.HintRejection:
		target = domain.NegotiationLost
	case domain.HintAcceptance:
		target = domain.NegotiationPendingApproval
	}

	updated, err := s.store.TransitionNegotiation(ctx, negotiation.ID, target, func(n *schema.Negotiation) {
		hint := result.Hint
		n.LastHint = &hint
		if result.ExtractedOffer != nil {
			n.CurrentOffer = result.ExtractedOffer
			if target == domain.NegotiationPendingApproval {
				n.FinalRate = result.ExtractedOffer
			}
		}
	})
	if err != nil {
		if errors.Is(err, domain.ErrIllegalTransition) {
			// A stale or out-of-order reply; keep the thread where it is.
			logger.WarnCtx(ctx, "reply ignored for negotiation state",
				zap.Uint64("negotiation_id", negotiation.ID),
				zap.String("status", string(negotiation.Status)),
				zap.String("hint", string(result.Hint)))
			return negotiation, nil
		}
		return nil, err
	}

	if updated.Status == domain.NegotiationPendingApproval {
		if err := s.store.CreateNotification(ctx, updated.DriverMC, domain.NotifySystemAlert,
			fmt.Sprintf("Broker is ready on load %s. Confirm to book.", updated.LoadRefID)); err != nil {
			return nil, err
		}
		s.publish(ctx, events.EventPendingApproval, map[string]interface{}{
			"negotiation_id": updated.ID,
			"load_ref_id":    updated.LoadRefID,
			"driver_mc":      updated.DriverMC,
		})
	}
	return updated, nil
}

// Confirm is the driver's explicit approval of a PENDING_APPROVAL thread. It
// books the load: WON status, driver rebate credits, finder's fee for the
// scout, and the platform's dispatch fee revenue row (burn-ineligible until
// factoring settles).
func (s *Service) Confirm(ctx context.Context, driver *schema.Driver, negotiationID uint64) (*schema.Negotiation, error) {
	return s.book(ctx, driver, negotiationID, nil, false)
}

// MarkWon is the back-office override for threads whose rate confirmation
// never made it through the mailroom. It books the load for the thread's own
// driver with the same crediting as Confirm, and unlike Confirm it may force
// a SENT or REPLIED thread straight to WON.
func (s *Service) MarkWon(ctx context.Context, negotiationID uint64, finalRate *decimal.Decimal) (*schema.Negotiation, error) {
	negotiation, err := s.store.GetNegotiationByID(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if negotiation == nil {
		return nil, fmt.Errorf("%w: negotiation %d", domain.ErrNotFound, negotiationID)
	}
	driver, err := s.store.GetDriverByMC(ctx, negotiation.DriverMC)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver %s", domain.ErrNotFound, negotiation.DriverMC)
	}
	return s.book(ctx, driver, negotiationID, finalRate, true)
}

// MarkReplied is the back-office override for a broker reply that arrived
// outside the mailroom (phone call, load board chat).
func (s *Service) MarkReplied(ctx context.Context, negotiationID uint64) (*schema.Negotiation, error) {
	return s.store.TransitionNegotiation(ctx, negotiationID, domain.NegotiationReplied, nil)
}

func (s *Service) book(ctx context.Context, driver *schema.Driver, negotiationID uint64, rateOverride *decimal.Decimal, force bool) (*schema.Negotiation, error) {
	transition := s.store.TransitionNegotiation
	if force {
		transition = s.store.ForceTransitionNegotiation
	}
	updated, err := transition(ctx, negotiationID, domain.NegotiationWon, func(n *schema.Negotiation) {
		if rateOverride != nil {
			n.FinalRate = rateOverride
		} else if n.FinalRate == nil {
			n.FinalRate = n.CurrentOffer
		}
	})
	if err != nil {
		return nil, err
	}
	if updated.FinalRate == nil {
		return nil, fmt.Errorf("%w: negotiation %d has no final rate", domain.ErrConflict, negotiationID)
	}
	finalRate := *updated.FinalRate

	split, err := s.ledger.IssueLoadCredits(ctx, driver.MCNumber, updated.LoadRefID, finalRate)
	if err != nil {
		return nil, err
	}

	load, err := s.store.GetLoadByRefID(ctx, updated.LoadRefID)
	if err != nil {
		return nil, err
	}
	if load != nil && load.DiscoveredBy != nil {
		_, err := s.ledger.CreditFindersFee(ctx, *load.DiscoveredBy, driver.MCNumber, updated.LoadRefID, finalRate)
		if err != nil {
			return nil, err
		}
	}

	sourceRef := fmt.Sprintf("dispatch-%d", updated.ID)
	_, err = s.store.InsertRevenueEntry(ctx, &schema.RevenueEntry{
		Source:         domain.SourceDispatchFee,
		AmountUSD:      split.FeeUSD,
		SourceRef:      &sourceRef,
		LoadRefID:      &updated.LoadRefID,
		DriverMCNumber: &driver.MCNumber,
		BurnEligible:   false,
		OccurredAt:     updated.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateNotification(ctx, driver.MCNumber, domain.NotifyLoadWon,
		fmt.Sprintf("Load %s booked at $%s. %s CANDLE credited.", updated.LoadRefID, finalRate, split.DriverRebateUSD)); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventLoadWon, map[string]interface{}{
		"negotiation_id": updated.ID,
		"load_ref_id":    updated.LoadRefID,
		"driver_mc":      driver.MCNumber,
		"final_rate":     finalRate.String(),
	})
	return updated, nil
}

// Reject is the driver declining a PENDING_APPROVAL thread.
func (s *Service) Reject(ctx context.Context, driver *schema.Driver, negotiationID uint64) (*schema.Negotiation, error) {
	updated, err := s.store.TransitionNegotiation(ctx, negotiationID, domain.NegotiationLost, nil)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateNotification(ctx, driver.MCNumber, domain.NotifySystemAlert,
		fmt.Sprintf("Load %s declined.", updated.LoadRefID)); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventNegotiationLost, map[string]interface{}{
		"negotiation_id": updated.ID,
		"load_ref_id":    updated.LoadRefID,
		"driver_mc":      driver.MCNumber,
	})
	return updated, nil
}

func baseOffer(negotiation *schema.Negotiation, load *schema.Load) decimal.Decimal {
	if negotiation.CurrentOffer != nil {
		return *negotiation.CurrentOffer
	}
	if load.RateUSD != nil {
		return *load.RateUSD
	}
	return decimal.Zero
}
