// Package autopilot is the bounded policy engine that answers broker offers
// without the driver in the loop. The bounds are a per (driver, load) floor
// and target; the engine can counter and park threads for approval, but
// booking a load always stays with the driver.
package autopilot

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/greencandle/dispatch-core/internal/domain"
	"github.com/greencandle/dispatch-core/internal/ledger"
	"github.com/greencandle/dispatch-core/internal/logger"
	"github.com/greencandle/dispatch-core/internal/outbound"
	"github.com/greencandle/dispatch-core/internal/store"
	"github.com/greencandle/dispatch-core/internal/store/schema"
)

// Decision is the engine's verdict on one broker offer
type Decision string

const (
	DecisionAccepted   Decision = "AUTO_ACCEPTED"
	DecisionCountered  Decision = "AUTO_COUNTERED"
	DecisionBelowFloor Decision = "BELOW_FLOOR_MANUAL_REQUIRED"
	DecisionNoPrice    Decision = "NO_PRICE_DETECTED"
)

// Decide applies the policy to an extracted offer. It is pure; side effects
// belong to React. The counter amount is non-nil only for DecisionCountered.
func Decide(offer *decimal.Decimal, floor decimal.Decimal, target decimal.Decimal) (Decision, *decimal.Decimal) {
	if offer == nil {
		return DecisionNoPrice, nil
	}
	if offer.GreaterThanOrEqual(target) {
		return DecisionAccepted, nil
	}
	if offer.GreaterThanOrEqual(floor) {
		counter := offer.Add(domain.AutopilotCounterStepUSD)
		if counter.GreaterThan(target) {
			counter = target
		}
		return DecisionCountered, &counter
	}
	return DecisionBelowFloor, nil
}

// Engine wires the policy to the store, mailer, and ledger.
type Engine struct {
	store  store.Store
	sender outbound.Sender
	ledger *ledger.Service
}

// NewEngine creates an autopilot engine
func NewEngine(s store.Store, sender outbound.Sender, l *ledger.Service) *Engine {
	return &Engine{store: s, sender: sender, ledger: l}
}

// Configure creates or updates the bounds for a (driver, load). Enabling the
// engine requires the driver to hold at least the autopilot cost in claimable
// credit; the bounds themselves must satisfy 0 < floor <= target.
func (e *Engine) Configure(ctx context.Context, driver *schema.Driver, loadRefID string, floor decimal.Decimal, target decimal.Decimal, enabled bool) (*schema.AutopilotSetting, error) {
	if floor.LessThanOrEqual(decimal.Zero) || target.LessThan(floor) {
		return nil, fmt.Errorf("%w: floor must be positive and at most target", domain.ErrValidation)
	}
	if enabled {
		balances, err := e.ledger.Balances(ctx, driver)
		if err != nil {
			return nil, err
		}
		if balances.ClaimableCandle.LessThan(domain.AutopilotCost) {
			return nil, fmt.Errorf("%w: autopilot requires %s claimable CANDLE",
				domain.ErrInsufficientCredits, domain.AutopilotCost)
		}
	}

	setting := &schema.AutopilotSetting{
		DriverMC:  driver.MCNumber,
		LoadRefID: loadRefID,
		FloorUSD:  floor,
		TargetUSD: target,
		Enabled:   enabled,
	}
	if err := e.store.UpsertAutopilotSetting(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

// React runs the policy against a fresh broker offer on a negotiation. It
// returns false when no enabled setting exists for the pair, leaving the
// thread to the driver.
func (e *Engine) React(ctx context.Context, driver *schema.Driver, negotiation *schema.Negotiation, offer *decimal.Decimal) (Decision, bool, error) {
	setting, err := e.store.GetAutopilotSetting(ctx, driver.MCNumber, negotiation.LoadRefID)
	if err != nil {
		return "", false, err
	}
	if setting == nil || !setting.Enabled {
		return "", false, nil
	}

	decision, counter := Decide(offer, setting.FloorUSD, setting.TargetUSD)
	switch decision {
	case DecisionAccepted:
		if err := e.accept(ctx, driver, negotiation, *offer); err != nil {
			return decision, true, err
		}
	case DecisionCountered:
		if err := e.counter(ctx, driver, negotiation, *counter); err != nil {
			return decision, true, err
		}
	case DecisionBelowFloor:
		msg := fmt.Sprintf("Broker offered $%s on load %s, below your $%s floor. Handle this one yourself.",
			offer, negotiation.LoadRefID, setting.FloorUSD)
		if err := e.store.CreateNotification(ctx, driver.MCNumber, domain.NotifyAutopilotFloor, msg); err != nil {
			return decision, true, err
		}
	case DecisionNoPrice:
		// Nothing to act on.
	}

	logger.InfoCtx(ctx, "autopilot reacted",
		zap.Uint64("negotiation_id", negotiation.ID),
		zap.String("decision", string(decision)))
	return decision, true, nil
}

// accept parks the thread at PENDING_APPROVAL with the broker's rate. The
// driver still has to confirm before anything is booked.
func (e *Engine) accept(ctx context.Context, driver *schema.Driver, negotiation *schema.Negotiation, offer decimal.Decimal) error {
	err := e.sender.Send(ctx, outbound.Email{
		DriverHandle:  driver.Handle,
		LoadRefID:     negotiation.LoadRefID,
		NegotiationID: negotiation.ID,
		To:            negotiation.BrokerEmail,
		Subject:       replySubject(negotiation),
		Body:          fmt.Sprintf("$%s works for us. Send the rate con and we will get it signed.", offer),
	})
	if err != nil {
		return fmt.Errorf("failed to send acceptance: %w", err)
	}

	_, err = e.store.TransitionNegotiation(ctx, negotiation.ID, domain.NegotiationPendingApproval, func(n *schema.Negotiation) {
		n.CurrentOffer = &offer
		n.FinalRate = &offer
	})
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Auto-Pilot accepted $%s on load %s. Confirm to book.", offer, negotiation.LoadRefID)
	return e.store.CreateNotification(ctx, driver.MCNumber, domain.NotifySystemAlert, msg)
}

// counter sends the bumped rate and charges the outbound email cost, same as
// a driver-sent counter.
func (e *Engine) counter(ctx context.Context, driver *schema.Driver, negotiation *schema.Negotiation, counter decimal.Decimal) error {
	err := e.sender.Send(ctx, outbound.Email{
		DriverHandle:  driver.Handle,
		LoadRefID:     negotiation.LoadRefID,
		NegotiationID: negotiation.ID,
		To:            negotiation.BrokerEmail,
		Subject:       replySubject(negotiation),
		Body:          fmt.Sprintf("We can get it moved for $%s.", counter),
	})
	if err != nil {
		return fmt.Errorf("failed to send counter: %w", err)
	}

	if err := e.ledger.ChargeAction(ctx, driver.MCNumber, negotiation.LoadRefID, domain.OutboundEmailCost); err != nil {
		return err
	}

	_, err = e.store.TransitionNegotiation(ctx, negotiation.ID, domain.NegotiationSent, func(n *schema.Negotiation) {
		n.CurrentOffer = &counter
	})
	return err
}

func replySubject(negotiation *schema.Negotiation) string {
	if negotiation.DraftSubject != "" {
		return "Re: " + negotiation.DraftSubject
	}
	return "Load " + negotiation.LoadRefID
}
