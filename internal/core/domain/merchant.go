package domain

// Country groups sub-merchants by market. Exactly one country in the
// directory is local; the rest are international.
type Country struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	CurrencyCode   string        `json:"currency_code"`
	CurrencySymbol string        `json:"currency_symbol"`
	Flag           string        `json:"flag"`
	IsLocal        bool          `json:"is_local"`
	Merchants      []SubMerchant `json:"merchants"`
}

// SubMerchant is a vendor authorized to sell vouchers at a discount
// percentage within a country grouping.
type SubMerchant struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DiscountPercent int     `json:"discount_percent"` // 0-100
	Rating          float64 `json:"rating"`
	IsActive        bool    `json:"is_active"`
	IsVerified      bool    `json:"is_verified"`
	IsSubMerchant   bool    `json:"is_sub_merchant"`
	StateID         string  `json:"state_id,omitempty"`
	LGAID           string  `json:"lga_id,omitempty"`
	City            string  `json:"city,omitempty"`
}

// Selectable returns true if the merchant can be chosen at checkout.
func (m *SubMerchant) Selectable() bool {
	return m.IsActive
}
