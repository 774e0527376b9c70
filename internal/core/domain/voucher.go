package domain

// VoucherTier groups denominations into catalog bands.
type VoucherTier string

const (
	TierStandard VoucherTier = "STANDARD"
	TierPremium  VoucherTier = "PREMIUM"
	TierElite    VoucherTier = "ELITE"
)

// Denomination is an immutable voucher catalog entry. MobiValue is the
// internal currency amount the voucher is worth; NGNPrice is a display-only
// reference price.
type Denomination struct {
	ID        string      `json:"id"`
	MobiValue int64       `json:"mobi_value"`
	NGNPrice  int64       `json:"ngn_price"`
	Tier      VoucherTier `json:"tier"`
	IsPopular bool        `json:"is_popular"`
}
