package domain

import "github.com/shopspring/decimal"

// Fee split applied to every won load. The dispatch fee is 2% of the final
// rate; the four shares below partition that fee and must sum to 1.
var (
	DispatchFeeRate     = decimal.RequireFromString("0.02")
	DriverRebateShare   = decimal.RequireFromString("0.2105")
	PlatformProfitShare = decimal.RequireFromString("0.3158")
	TreasuryShare       = decimal.RequireFromString("0.2632")
	AIReserveShare      = decimal.RequireFromString("0.2105")
)

// CANDLE costs for paid platform actions.
var (
	OutboundEmailCost = decimal.RequireFromString("0.1")
	AIVoiceCallCost   = decimal.RequireFromString("0.5")
	AutopilotCost     = decimal.RequireFromString("3.0")
)

// Starter pack grants issued at onboarding.
var (
	SoloStarterCredits  = decimal.RequireFromString("10")
	FleetStarterCredits = decimal.RequireFromString("50")
)

// FindersFeeRate is the share of the final rate credited to the scout that
// discovered a load won by another driver.
var FindersFeeRate = decimal.RequireFromString("0.001")

// CandlePriceUSD is the fallback token price used to convert CANDLE to
// dollars on card transfers until a live price oracle is wired.
var CandlePriceUSD = decimal.RequireFromString("0.042")

// ReinvestMultiplier and ReinvestLockMonths govern the reinvest program:
// consumed claimable credits come back 5% larger, locked for three months.
var (
	ReinvestMultiplier = decimal.RequireFromString("1.05")
	ReinvestLockMonths = 3
)

// Synthetic load references used for ledger rows not tied to a real load.
const (
	StarterPackLoadID      = "STARTER_PACK"
	FleetStarterPackLoadID = "FLEET_STARTER_PACK"
	FindersFeeLoadPrefix   = "FINDERS_FEE-"
	ReinvestLoadID         = "REINVEST"
)

// GeneralInbox is the pseudo load reference for inbound mail that carries a
// driver tag but no load tag.
const GeneralInbox = "GENERAL"

// AutopilotCounterStepUSD is the fixed bump the policy engine adds to a broker
// offer that clears the floor but misses the target.
var AutopilotCounterStepUSD = decimal.RequireFromString("100")

// HotLoadThresholdUSD marks ingested loads worth flagging to scouts.
var HotLoadThresholdUSD = decimal.RequireFromString("2000")

// DefaultBurnRateBps is the treasury reservation rate when a burn batch does
// not specify one (10% of eligible gross).
const DefaultBurnRateBps = 1000
