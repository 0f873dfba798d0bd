package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFeeSplitPartsSumToFee(t *testing.T) {
	split := ComputeFeeSplit(decimal.RequireFromString("2150"))
	assert.Equal(t, "43", split.FeeUSD.String())

	sum := split.DriverRebateUSD.Add(split.PlatformProfitUSD).
		Add(split.TreasuryUSD).Add(split.AIReserveUSD)
	assert.True(t, sum.Equal(split.FeeUSD),
		"shares must sum to the fee, got %s of %s", sum, split.FeeUSD)
}

func TestReserveRowsTotalIsSumOfRows(t *testing.T) {
	// Two $1.05 rows at 10%: each row reserves $0.11, so the batch must carry
	// $0.22 even though 10% of the $2.10 gross re-rounds to $0.21.
	amounts := []decimal.Decimal{
		decimal.RequireFromString("1.05"),
		decimal.RequireFromString("1.05"),
	}
	reservations, total := ReserveRows(amounts, 1000)

	require.Len(t, reservations, 2)
	assert.Equal(t, "0.11", reservations[0].String())
	assert.Equal(t, "0.11", reservations[1].String())
	assert.Equal(t, "0.22", total.String())

	gross := amounts[0].Add(amounts[1])
	assert.Equal(t, "0.21", BurnReserve(gross, 1000).String())

	rowSum := reservations[0].Add(reservations[1])
	assert.True(t, total.Equal(rowSum), "batch total must equal row sum")
}

func TestCandleToUSD(t *testing.T) {
	usd := CandleToUSD(decimal.RequireFromString("100"), CandlePriceUSD)
	assert.Equal(t, "4.2", usd.String())

	usd = CandleToUSD(decimal.RequireFromString("10.5"), decimal.RequireFromString("0.0433"))
	assert.Equal(t, "0.45", usd.String())
}
