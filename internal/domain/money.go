package domain

import "github.com/shopspring/decimal"

// FeeSplit is the cent-quantized partition of a dispatch fee
type FeeSplit struct {
	FeeUSD            decimal.Decimal
	DriverRebateUSD   decimal.Decimal
	PlatformProfitUSD decimal.Decimal
	TreasuryUSD       decimal.Decimal
	AIReserveUSD      decimal.Decimal
}

// ComputeFeeSplit derives the dispatch fee from a final rate and partitions it
// into the four shares. Each share is quantized to cents; the platform profit
// share absorbs the rounding remainder so the parts always sum to the fee.
func ComputeFeeSplit(finalRate decimal.Decimal) FeeSplit {
	fee := finalRate.Mul(DispatchFeeRate).Round(2)
	rebate := fee.Mul(DriverRebateShare).Round(2)
	treasury := fee.Mul(TreasuryShare).Round(2)
	aiReserve := fee.Mul(AIReserveShare).Round(2)
	profit := fee.Sub(rebate).Sub(treasury).Sub(aiReserve)
	return FeeSplit{
		FeeUSD:            fee,
		DriverRebateUSD:   rebate,
		PlatformProfitUSD: profit,
		TreasuryUSD:       treasury,
		AIReserveUSD:      aiReserve,
	}
}

// ComputeFindersFee is the scout's cut of a final rate, quantized to cents.
func ComputeFindersFee(finalRate decimal.Decimal) decimal.Decimal {
	return finalRate.Mul(FindersFeeRate).Round(2)
}

// BurnReserve computes the treasury reservation for a gross revenue amount at
// a basis-point rate, quantized to cents half-up.
func BurnReserve(gross decimal.Decimal, rateBps int) decimal.Decimal {
	return gross.Mul(decimal.NewFromInt(int64(rateBps))).
		Div(decimal.NewFromInt(10000)).
		Round(2)
}

// ReserveRows computes the per-row burn reservations for a batch and their
// total. The batch total is the sum of the cent-quantized per-row amounts,
// never a re-rounding of the gross, so attached rows always reconcile to the
// batch.
func ReserveRows(amounts []decimal.Decimal, rateBps int) ([]decimal.Decimal, decimal.Decimal) {
	reservations := make([]decimal.Decimal, len(amounts))
	total := decimal.Zero
	for i, amount := range amounts {
		reservations[i] = BurnReserve(amount, rateBps)
		total = total.Add(reservations[i])
	}
	return reservations, total
}

// CandleToUSD converts a CANDLE amount to dollars at a token price, quantized
// to cents.
func CandleToUSD(candle decimal.Decimal, price decimal.Decimal) decimal.Decimal {
	return candle.Mul(price).Round(2)
}

// ReinvestBoost applies the reinvest multiplier to a consumed amount,
// quantized to the ledger's four decimal places.
func ReinvestBoost(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(ReinvestMultiplier).Round(4)
}
