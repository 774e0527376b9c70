package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	now := time.Now().UTC()
	s := NewSession(SourceFundWallet, false, now)

	assert.NotEqual(t, "", s.ID.String())
	assert.Equal(t, StepVouchers, s.Step)
	assert.Equal(t, SourceFundWallet, s.Source)
	assert.True(t, s.Cart.IsEmpty())
	assert.Equal(t, CreditNone, s.CreditState)
	assert.Equal(t, SendIdle, s.SendState)
	assert.False(t, s.BalanceSet)
}

func TestSession_ContinueTarget(t *testing.T) {
	now := time.Now().UTC()

	s := NewSession("", false, now)
	assert.Equal(t, StepCountries, s.ContinueTarget())

	pre := NewSession("", true, now)
	assert.Equal(t, StepPayment, pre.ContinueTarget(), "pre-selected merchant skips country/merchant steps")
}

func TestSession_BackStep(t *testing.T) {
	tests := []struct {
		step        Step
		preselected bool
		want        Step
		ok          bool
	}{
		{StepCountries, false, StepVouchers, true},
		{StepMerchants, false, StepCountries, true},
		{StepPayment, false, StepMerchants, true},
		{StepPayment, true, StepVouchers, true},
		{StepRedeemPin, false, StepVouchers, true},
		{StepDistribute, false, StepSuccess, true},
		{StepSendToUsers, false, StepDistribute, true},
		// Steps absent from the table have no back action.
		{StepVouchers, false, "", false},
		{StepProcessing, false, "", false},
		{StepSuccess, false, "", false},
		{StepRedeemProcessing, false, "", false},
		{StepRedeemSuccess, false, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.step), func(t *testing.T) {
			s := NewSession("", tt.preselected, time.Now())
			s.Step = tt.step
			got, ok := s.BackStep()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_SetPurchasedBalance_Once(t *testing.T) {
	s := NewSession("", false, time.Now())

	s.SetPurchasedBalance(2900)
	require.True(t, s.BalanceSet)
	assert.Equal(t, int64(2900), s.TotalMobi)
	assert.Equal(t, int64(2900), s.RemainingMobi)

	s.RemainingMobi = 1000
	s.SetPurchasedBalance(5000)
	assert.Equal(t, int64(2900), s.TotalMobi, "second set must be a no-op")
	assert.Equal(t, int64(1000), s.RemainingMobi)
}

func TestSession_AllDistributed(t *testing.T) {
	s := NewSession("", false, time.Now())
	assert.False(t, s.AllDistributed(), "no balance set yet")

	s.SetPurchasedBalance(500)
	assert.False(t, s.AllDistributed())

	s.RemainingMobi = 0
	assert.True(t, s.AllDistributed())
}

func TestProcessingMessageAt(t *testing.T) {
	interval := 800 * time.Millisecond

	assert.Equal(t, "Contacting merchant...", ProcessingMessageAt(0, interval))
	assert.Equal(t, "Contacting merchant...", ProcessingMessageAt(799*time.Millisecond, interval))
	assert.Equal(t, "Reserving your vouchers...", ProcessingMessageAt(800*time.Millisecond, interval))
	assert.Equal(t, "Confirming payment...", ProcessingMessageAt(1700*time.Millisecond, interval))
	assert.Equal(t, "Finalizing your order...", ProcessingMessageAt(2500*time.Millisecond, interval))
	// Past the last offset the final message sticks.
	assert.Equal(t, "Finalizing your order...", ProcessingMessageAt(time.Minute, interval))
}

func TestValidRedeemPin(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"1234567890123456", true},
		{"12345", false},
		{"", false},
		{"12345678901234567", false},
		{"123456789012345a", false},
		{"12345678 0123456", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRedeemPin(tt.pin), "pin %q", tt.pin)
	}
}
