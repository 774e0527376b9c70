package ports

import (
	"context"

	"mobi-voucher-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// CatalogRepository serves the static voucher catalog.
type CatalogRepository interface {
	ListDenominations(ctx context.Context) ([]domain.Denomination, error)
	GetDenomination(ctx context.Context, id string) (*domain.Denomination, error)
}

// MerchantDirectory serves the static country -> sub-merchant directory.
type MerchantDirectory interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	GetCountry(ctx context.Context, id string) (*domain.Country, error)
	ListMerchants(ctx context.Context, countryID string) ([]domain.SubMerchant, error)
	GetMerchant(ctx context.Context, merchantID string) (*domain.SubMerchant, error)
	// FirstActiveLocalMerchant resolves the merchant pre-selection shortcut:
	// the local country's first active sub-merchant.
	FirstActiveLocalMerchant(ctx context.Context) (*domain.Country, *domain.SubMerchant, error)
}

// UserDirectory serves the static recipient lists.
type UserDirectory interface {
	ListRecipients(ctx context.Context, group domain.RecipientGroup) ([]domain.Recipient, error)
	GetRecipient(ctx context.Context, id string) (*domain.Recipient, error)
}

// SessionStore persists wizard sessions for their TTL-bounded lifetime.
// Get returns nil, nil when the session does not exist or has expired.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransferLedger records committed distributions. Append-only: no edit or
// reversal operation exists.
type TransferLedger interface {
	Append(ctx context.Context, transfers []domain.Transfer) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Transfer, error)
}
