package domain

import (
	"time"

	"github.com/google/uuid"
)

// Step is the wizard's current screen. Exactly one step is active at a time.
type Step string

const (
	StepVouchers         Step = "vouchers"
	StepCountries        Step = "countries"
	StepMerchants        Step = "merchants"
	StepPayment          Step = "payment"
	StepProcessing       Step = "processing"
	StepSuccess          Step = "success"
	StepDistribute       Step = "distribute"
	StepSendToUsers      Step = "sendToUsers"
	StepRedeemPin        Step = "redeemPin"
	StepRedeemProcessing Step = "redeemProcessing"
	StepRedeemSuccess    Step = "redeemSuccess"
)

// CreditState is the "use for self" sub-state on the success step.
type CreditState string

const (
	CreditNone      CreditState = "none"
	CreditCrediting CreditState = "crediting"
	CreditCredited  CreditState = "credited"
)

// SendState is the sub-state of the sendToUsers step.
type SendState string

const (
	SendIdle    SendState = "idle"
	SendSending SendState = "sending"
	SendSent    SendState = "sent"
)

// SourceFundWallet changes the page framing text only; it never affects
// transitions.
const SourceFundWallet = "fund-wallet"

// Session holds the whole state of one checkout wizard. It is the unit of
// storage: serialized as JSON into the session store and discarded on
// teardown or TTL expiry.
type Session struct {
	ID                  uuid.UUID      `json:"id"`
	Step                Step           `json:"step"`
	Source              string         `json:"source,omitempty"`
	PreselectedMerchant bool           `json:"preselected_merchant"`
	CountryID           string         `json:"country_id,omitempty"`
	MerchantID          string         `json:"merchant_id,omitempty"`
	Cart                Cart           `json:"cart"`
	TotalMobi           int64          `json:"total_mobi"`
	RemainingMobi       int64          `json:"remaining_mobi"`
	BalanceSet          bool           `json:"balance_set"`
	Allocations         AllocationSet  `json:"allocations"`
	RecipientGroup      RecipientGroup `json:"recipient_group,omitempty"`
	CreditState         CreditState    `json:"credit_state"`
	SendState           SendState      `json:"send_state"`
	RedeemedMobi        int64          `json:"redeemed_mobi,omitempty"`
	ProcessingStartedAt *time.Time     `json:"processing_started_at,omitempty"`
	// Attempt increments every time a deferred transition is scheduled.
	// A timer carrying a stale attempt value must not mutate the session.
	Attempt   int64     `json:"attempt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a session at the voucher selection step.
func NewSession(source string, preselectedMerchant bool, now time.Time) *Session {
	return &Session{
		ID:                  uuid.New(),
		Step:                StepVouchers,
		Source:              source,
		PreselectedMerchant: preselectedMerchant,
		Cart:                NewCart(),
		Allocations:         NewAllocationSet(),
		CreditState:         CreditNone,
		SendState:           SendIdle,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ContinueTarget is the step reached by "continue" from voucher selection.
// A pre-selected merchant skips the country and merchant screens.
func (s *Session) ContinueTarget() Step {
	if s.PreselectedMerchant {
		return StepPayment
	}
	return StepCountries
}

// BackStep resolves the static back-navigation table. The wizard keeps no
// history stack: steps missing from the table have no back action, and some
// paths (distribute always returns to success) are lossy on purpose.
func (s *Session) BackStep() (Step, bool) {
	switch s.Step {
	case StepCountries:
		return StepVouchers, true
	case StepMerchants:
		return StepCountries, true
	case StepPayment:
		if s.PreselectedMerchant {
			return StepVouchers, true
		}
		return StepMerchants, true
	case StepRedeemPin:
		return StepVouchers, true
	case StepDistribute:
		return StepSuccess, true
	case StepSendToUsers:
		return StepDistribute, true
	}
	return "", false
}

// SetPurchasedBalance records the purchased Mobi on entering success.
// The assignment happens exactly once per session; later calls are no-ops.
func (s *Session) SetPurchasedBalance(total int64) {
	if s.BalanceSet {
		return
	}
	s.TotalMobi = total
	s.RemainingMobi = total
	s.BalanceSet = true
}

// AllDistributed reports the distribute step's terminal sub-state: the whole
// purchased balance has been transferred away.
func (s *Session) AllDistributed() bool {
	return s.BalanceSet && s.RemainingMobi <= 0
}

// processingMessages are the staged status lines shown while the simulated
// payment runs. The index advances at fixed offsets.
var processingMessages = [...]string{
	"Contacting merchant...",
	"Reserving your vouchers...",
	"Confirming payment...",
	"Finalizing your order...",
}

// ProcessingMessageAt returns the staged message for the elapsed time since
// processing started, given the configured rotation interval.
func ProcessingMessageAt(elapsed, interval time.Duration) string {
	if interval <= 0 {
		return processingMessages[0]
	}
	idx := int(elapsed / interval)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(processingMessages) {
		idx = len(processingMessages) - 1
	}
	return processingMessages[idx]
}

// ValidRedeemPin reports whether pin is exactly 16 decimal digits.
func ValidRedeemPin(pin string) bool {
	if len(pin) != 16 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
