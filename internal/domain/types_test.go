package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     NegotiationStatus
		to       NegotiationStatus
		expected bool
	}{
		{
			name:     "pending to sent",
			from:     NegotiationPending,
			to:       NegotiationSent,
			expected: true,
		},
		{
			name:     "sent to replied",
			from:     NegotiationSent,
			to:       NegotiationReplied,
			expected: true,
		},
		{
			name:     "sent to pending approval",
			from:     NegotiationSent,
			to:       NegotiationPendingApproval,
			expected: true,
		},
		{
			name:     "replied back to sent after counter",
			from:     NegotiationReplied,
			to:       NegotiationSent,
			expected: true,
		},
		{
			name:     "pending approval to won",
			from:     NegotiationPendingApproval,
			to:       NegotiationWon,
			expected: true,
		},
		{
			name:     "sent directly to won is forbidden",
			from:     NegotiationSent,
			to:       NegotiationWon,
			expected: false,
		},
		{
			name:     "replied directly to won is forbidden",
			from:     NegotiationReplied,
			to:       NegotiationWon,
			expected: false,
		},
		{
			name:     "won is terminal",
			from:     NegotiationWon,
			to:       NegotiationLost,
			expected: false,
		},
		{
			name:     "lost is terminal",
			from:     NegotiationLost,
			to:       NegotiationSent,
			expected: false,
		},
		{
			name:     "pending to won is forbidden",
			from:     NegotiationPending,
			to:       NegotiationWon,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanAdminTransition(t *testing.T) {
	// The operator override books threads whose rate con arrived off-channel.
	assert.True(t, CanAdminTransition(NegotiationSent, NegotiationWon))
	assert.True(t, CanAdminTransition(NegotiationReplied, NegotiationWon))
	assert.True(t, CanAdminTransition(NegotiationPendingApproval, NegotiationWon))

	// Everything else still follows the normal machine.
	assert.False(t, CanAdminTransition(NegotiationPending, NegotiationWon))
	assert.False(t, CanAdminTransition(NegotiationLost, NegotiationWon))
	assert.True(t, CanAdminTransition(NegotiationSent, NegotiationReplied))
}

func TestCanCardTransition(t *testing.T) {
	assert.True(t, CanCardTransition(CardNotStarted, CardRequested))
	assert.True(t, CanCardTransition(CardRequested, CardShipped))
	assert.True(t, CanCardTransition(CardShipped, CardActive))

	// No skipping and no moving backward.
	assert.False(t, CanCardTransition(CardNotStarted, CardShipped))
	assert.False(t, CanCardTransition(CardActive, CardShipped))
	assert.False(t, CanCardTransition(CardActive, CardActive))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, NegotiationWon.IsTerminal())
	assert.True(t, NegotiationLost.IsTerminal())
	assert.False(t, NegotiationPendingApproval.IsTerminal())
	assert.False(t, NegotiationSent.IsTerminal())
}

func TestValidHandle(t *testing.T) {
	tests := []struct {
		name     string
		handle   string
		expected bool
	}{
		{
			name:     "plain handle",
			handle:   "bigrig",
			expected: true,
		},
		{
			name:     "handle with separators",
			handle:   "big-rig.88_x",
			expected: true,
		},
		{
			name:     "two chars is the minimum",
			handle:   "ab",
			expected: true,
		},
		{
			name:     "single char rejected",
			handle:   "a",
			expected: false,
		},
		{
			name:     "over forty chars rejected",
			handle:   "a234567890123456789012345678901234567890x",
			expected: false,
		},
		{
			name:     "uppercase rejected",
			handle:   "BigRig",
			expected: false,
		},
		{
			name:     "leading separator rejected",
			handle:   "-bigrig",
			expected: false,
		},
		{
			name:     "plus sign rejected",
			handle:   "big+rig",
			expected: false,
		},
		{
			name:     "empty",
			handle:   "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidHandle(tt.handle))
		})
	}
}

func TestValidWalletAddress(t *testing.T) {
	assert.True(t, ValidWalletAddress("0x742d35Cc6634C0532925a3b844Bc454e4438f44e"))
	assert.False(t, ValidWalletAddress("0x742d35"))
	assert.False(t, ValidWalletAddress("not-an-address"))
	assert.False(t, ValidWalletAddress(""))
}

func TestValidTxHash(t *testing.T) {
	assert.True(t, ValidTxHash("0x"+"ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12"))
	assert.False(t, ValidTxHash("0x1234"))
	assert.False(t, ValidTxHash(""))
}

func TestFeeSharesSumToOne(t *testing.T) {
	sum := DriverRebateShare.Add(PlatformProfitShare).Add(TreasuryShare).Add(AIReserveShare)
	assert.True(t, sum.Equal(decimal.NewFromInt(1)), "fee shares must partition the dispatch fee, got %s", sum)
}

func TestBuybackDisplayRate(t *testing.T) {
	assert.Equal(t, "2.5", TierStandard.BuybackDisplayRate())
	assert.Equal(t, "1", TierIncentive.BuybackDisplayRate())
	assert.Equal(t, "2.5", RewardTier("UNKNOWN").BuybackDisplayRate())
}
