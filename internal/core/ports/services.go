package ports

import (
	"context"

	"mobi-voucher-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// SessionView is the client-facing snapshot of a wizard session: the raw
// state plus everything derived from it on read (order summary, staged
// processing message, terminal distribute sub-state).
type SessionView struct {
	Session           domain.Session      `json:"session"`
	Order             domain.OrderSummary `json:"order"`
	ProcessingMessage string              `json:"processing_message,omitempty"`
	AllDistributed    bool                `json:"all_distributed"`
	Transfers         []domain.Transfer   `json:"transfers,omitempty"`
}

// CreateSessionRequest holds the wizard entry options. Source mirrors the
// fund-wallet framing flag; MerchantName pre-selects the local country's
// first active merchant and skips the country/merchant steps.
type CreateSessionRequest struct {
	Source       string
	MerchantName string
}

// CheckoutService drives the wizard state machine: cart edits, step
// transitions and the simulated payment processing.
type CheckoutService interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionView, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error)
	// TeardownSession discards the session and cancels any pending
	// deferred transition.
	TeardownSession(ctx context.Context, id uuid.UUID) error

	ToggleVoucher(ctx context.Context, id uuid.UUID, denominationID string) (*SessionView, error)
	ChangeQuantity(ctx context.Context, id uuid.UUID, denominationID string, delta int64) (*SessionView, error)
	SetQuantity(ctx context.Context, id uuid.UUID, denominationID string, value int64) (*SessionView, error)
	ClearCart(ctx context.Context, id uuid.UUID) (*SessionView, error)

	Continue(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Back(ctx context.Context, id uuid.UUID) (*SessionView, error)
	SelectCountry(ctx context.Context, id uuid.UUID, countryID string) (*SessionView, error)
	SelectMerchant(ctx context.Context, id uuid.UUID, merchantID string) (*SessionView, error)
	Pay(ctx context.Context, id uuid.UUID) (*SessionView, error)
	UseForSelf(ctx context.Context, id uuid.UUID) (*SessionView, error)
	SendToSomeone(ctx context.Context, id uuid.UUID) (*SessionView, error)
	ChooseRecipients(ctx context.Context, id uuid.UUID, group domain.RecipientGroup) (*SessionView, error)
}

// DistributionService manages recipient allocations and the committed
// transfer ledger for a session's purchased balance.
type DistributionService interface {
	Allocate(ctx context.Context, sessionID uuid.UUID, recipientID string, amount int64) (*SessionView, error)
	Send(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)
	ListTransfers(ctx context.Context, sessionID uuid.UUID) ([]domain.Transfer, error)
}

// RedeemService handles the redeem-by-PIN path.
type RedeemService interface {
	StartRedeem(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)
	SubmitPin(ctx context.Context, sessionID uuid.UUID, pin string) (*SessionView, error)
}
