package domain

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NegotiationStatus represents the lifecycle state of a negotiation thread
type NegotiationStatus string

const (
	NegotiationPending         NegotiationStatus = "PENDING"
	NegotiationSent            NegotiationStatus = "SENT"
	NegotiationReplied         NegotiationStatus = "REPLIED"
	NegotiationPendingApproval NegotiationStatus = "PENDING_APPROVAL"
	NegotiationWon             NegotiationStatus = "WON"
	NegotiationLost            NegotiationStatus = "LOST"
)

// negotiationTransitions lists the allowed moves. WON is only reachable from
// PENDING_APPROVAL, and only through an explicit driver confirmation.
var negotiationTransitions = map[NegotiationStatus][]NegotiationStatus{
	NegotiationPending:         {NegotiationSent, NegotiationLost},
	NegotiationSent:            {NegotiationReplied, NegotiationPendingApproval, NegotiationLost},
	NegotiationReplied:         {NegotiationSent, NegotiationPendingApproval, NegotiationLost},
	NegotiationPendingApproval: {NegotiationWon, NegotiationLost, NegotiationSent},
}

// CanTransition reports whether a negotiation may move from one status to another.
func CanTransition(from, to NegotiationStatus) bool {
	for _, next := range negotiationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanAdminTransition is CanTransition plus the operator override: a thread
// whose rate confirmation arrived off-channel may be forced to WON from SENT
// or REPLIED without passing through PENDING_APPROVAL.
func CanAdminTransition(from, to NegotiationStatus) bool {
	if to == NegotiationWon && (from == NegotiationSent || from == NegotiationReplied) {
		return true
	}
	return CanTransition(from, to)
}

// IsTerminal reports whether a negotiation status admits no further moves.
func (s NegotiationStatus) IsTerminal() bool {
	return s == NegotiationWon || s == NegotiationLost
}

// ReplyHint is the classifier's read of an inbound broker message
type ReplyHint string

const (
	HintAcceptance   ReplyHint = "ACCEPTANCE"
	HintRejection    ReplyHint = "REJECTION"
	HintCounter      ReplyHint = "COUNTER"
	HintUnclassified ReplyHint = "UNCLASSIFIED"
)

// LedgerStatus represents the state of a driver savings ledger row
type LedgerStatus string

const (
	LedgerLocked   LedgerStatus = "LOCKED"
	LedgerCredited LedgerStatus = "CREDITED"
	LedgerVested   LedgerStatus = "VESTED"
	LedgerClaimed  LedgerStatus = "CLAIMED"
	LedgerConsumed LedgerStatus = "CONSUMED"
	LedgerRevoked  LedgerStatus = "REVOKED"
)

// ClaimableStatuses are the ledger statuses that count toward a driver's
// spendable balance unconditionally.
var ClaimableStatuses = []LedgerStatus{LedgerVested, LedgerConsumed}

// UnlockGatedStatuses count toward the spendable balance only once the row's
// unlocks_at has passed.
var UnlockGatedStatuses = []LedgerStatus{LedgerLocked, LedgerCredited}

// RevenueSource categorizes platform revenue rows
type RevenueSource string

const (
	SourceDispatchFee        RevenueSource = "DISPATCH_FEE"
	SourceFactorReferral     RevenueSource = "FACTOR_REFERRAL"
	SourceCallPack           RevenueSource = "CALL_PACK"
	SourceAutomationPurchase RevenueSource = "AUTOMATION_PURCHASE"
	SourceBrokerSubscription RevenueSource = "BROKER_SUBSCRIPTION"
)

// RevenueStatus tracks a revenue row through the burn pipeline
type RevenueStatus string

const (
	RevenueRecorded RevenueStatus = "RECORDED"
	RevenueReserved RevenueStatus = "RESERVED"
	RevenueBurned   RevenueStatus = "BURNED"
	RevenueVoid     RevenueStatus = "VOID"
)

// BurnBatchStatus represents the state of a treasury burn batch
type BurnBatchStatus string

const (
	BurnBatchCreated  BurnBatchStatus = "CREATED"
	BurnBatchReserved BurnBatchStatus = "RESERVED"
	BurnBatchBurned   BurnBatchStatus = "BURNED"
	BurnBatchFailed   BurnBatchStatus = "FAILED"
)

// BillingMethod is how a carrier settles dispatch fees
type BillingMethod string

const (
	BillingFactoring     BillingMethod = "FACTORING"
	BillingWeeklyInvoice BillingMethod = "WEEKLY_INVOICE"
)

// RewardTier buckets drivers for buyback display purposes
type RewardTier string

const (
	TierStandard  RewardTier = "STANDARD"
	TierIncentive RewardTier = "INCENTIVE"
)

// BuybackDisplayRate returns the cosmetic buyback percentage shown to the
// driver. This is presentation only; the accounting fee split is fixed at 2%.
func (t RewardTier) BuybackDisplayRate() string {
	if t == TierIncentive {
		return "1"
	}
	return "2.5"
}

// AuthorityType distinguishes solo operators from fleets at onboarding
type AuthorityType string

const (
	AuthoritySolo  AuthorityType = "SOLO"
	AuthorityFleet AuthorityType = "FLEET"
)

// CardStatus represents the state of a driver's rewards debit card. The
// lifecycle is monotonic: NOT_STARTED -> REQUESTED -> SHIPPED -> ACTIVE.
type CardStatus string

const (
	CardNotStarted CardStatus = "NOT_STARTED"
	CardRequested  CardStatus = "REQUESTED"
	CardShipped    CardStatus = "SHIPPED"
	CardActive     CardStatus = "ACTIVE"
)

var cardStatusRank = map[CardStatus]int{
	CardNotStarted: 0,
	CardRequested:  1,
	CardShipped:    2,
	CardActive:     3,
}

// CanCardTransition reports whether a card may move to the given status. The
// lifecycle only moves forward, one step at a time.
func CanCardTransition(from, to CardStatus) bool {
	fromRank, ok := cardStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := cardStatusRank[to]
	if !ok {
		return false
	}
	return toRank == fromRank+1
}

// ClaimStatus represents the lifecycle of an on-chain claim request
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimPaid     ClaimStatus = "PAID"
	ClaimRejected ClaimStatus = "REJECTED"
)

// NotificationType categorizes driver notifications
type NotificationType string

const (
	NotifyNegotiationDraft NotificationType = "NEGOTIATION_DRAFT"
	NotifyLoadWon          NotificationType = "LOAD_WON"
	NotifyAutopilotSuccess NotificationType = "AUTOPILOT_SUCCESS"
	NotifyAutopilotFloor   NotificationType = "AUTOPILOT_FLOOR"
	NotifySystemAlert      NotificationType = "SYSTEM_ALERT"
)

var (
	handleRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,38}[a-z0-9]$`)
	txHashRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// ValidHandle reports whether a driver mailbox handle is well formed.
func ValidHandle(handle string) bool {
	return handleRe.MatchString(handle)
}

// NormalizeHandle lowercases a handle the way inbound routing does.
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

// ValidWalletAddress reports whether an address can receive a claim payout.
func ValidWalletAddress(address string) bool {
	return common.IsHexAddress(address)
}

// ValidTxHash reports whether a string looks like an EVM transaction hash.
func ValidTxHash(hash string) bool {
	return txHashRe.MatchString(hash)
}
