package dto

import (
	"time"

	"mobi-voucher-gateway/internal/core/domain"
	"mobi-voucher-gateway/internal/core/ports"
)

// CreateSessionRequest is the request body for opening a wizard session.
// Both fields mirror the entry-point query parameters of the flow: source
// changes the framing text only, merchant pre-selects the local market.
type CreateSessionRequest struct {
	Source   string `json:"source" binding:"omitempty,max=50"`
	Merchant string `json:"merchant" binding:"omitempty,max=100"`
}

// CartToggleRequest is the request body for toggling a voucher in the cart.
type CartToggleRequest struct {
	DenominationID string `json:"denomination_id" binding:"required,safe_id,max=50"`
}

// CartQuantityRequest adjusts a cart line. Exactly one of delta or value
// must be set; the handler enforces it. Bounds mirror domain.MaxQuantity so
// oversized quantities are rejected at the edge.
type CartQuantityRequest struct {
	DenominationID string `json:"denomination_id" binding:"required,safe_id,max=50"`
	Delta          *int64 `json:"delta,omitempty" binding:"omitempty,gte=-9999,lte=9999"`
	Value          *int64 `json:"value,omitempty" binding:"omitempty,lte=9999"`
}

// SelectCountryRequest is the request body for the country step.
type SelectCountryRequest struct {
	CountryID string `json:"country_id" binding:"required,safe_id,max=50"`
}

// SelectMerchantRequest is the request body for the merchant step.
type SelectMerchantRequest struct {
	MerchantID string `json:"merchant_id" binding:"required,safe_id,max=50"`
}

// RecipientsRequest picks the recipient list shown on the send screen.
type RecipientsRequest struct {
	Group string `json:"group" binding:"required,oneof=community friends"`
}

// AllocationRequest sets the in-progress allocation for one recipient.
// Amounts above the remaining headroom are clamped, not rejected.
type AllocationRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,safe_id,max=50"`
	Amount      int64  `json:"amount" binding:"gte=0"`
}

// RedeemPinRequest submits a voucher PIN.
type RedeemPinRequest struct {
	Pin string `json:"pin" binding:"required,redeem_pin"`
}

// VoucherResponse is one catalog denomination.
type VoucherResponse struct {
	ID        string `json:"id"`
	MobiValue int64  `json:"mobi_value"`
	NGNPrice  int64  `json:"ngn_price"`
	Tier      string `json:"tier"`
	IsPopular bool   `json:"is_popular"`
}

// CountryResponse is one market in the country list.
type CountryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CurrencyCode   string `json:"currency_code"`
	CurrencySymbol string `json:"currency_symbol"`
	Flag           string `json:"flag"`
	IsLocal        bool   `json:"is_local"`
}

// MerchantResponse is one sub-merchant in a country's list.
type MerchantResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DiscountPercent int     `json:"discount_percent"`
	Rating          float64 `json:"rating"`
	IsActive        bool    `json:"is_active"`
	IsVerified      bool    `json:"is_verified"`
	IsSubMerchant   bool    `json:"is_sub_merchant"`
	City            string  `json:"city,omitempty"`
}

// RecipientResponse is one entry of a recipient list.
type RecipientResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Group  string `json:"group"`
}

// OrderLineResponse is one priced cart line.
type OrderLineResponse struct {
	Denomination     VoucherResponse `json:"denomination"`
	Quantity         int64           `json:"quantity"`
	LineTotal        int64           `json:"line_total"`
	DiscountEligible bool            `json:"discount_eligible"`
	DiscountedAmount int64           `json:"discounted_amount"`
	Savings          int64           `json:"savings"`
}

// OrderResponse is the priced cart summary.
type OrderResponse struct {
	Lines        []OrderLineResponse `json:"lines"`
	TotalRegular int64               `json:"total_regular"`
	TotalSavings int64               `json:"total_savings"`
	TotalToPay   int64               `json:"total_to_pay"`
}

// TransferResponse is one committed distribution.
type TransferResponse struct {
	ID              string `json:"id"`
	RecipientID     string `json:"recipient_id"`
	RecipientName   string `json:"recipient_name"`
	RecipientAvatar string `json:"recipient_avatar,omitempty"`
	Amount          int64  `json:"amount"`
	CreatedAt       string `json:"created_at"`
}

// SessionResponse is the full wizard snapshot the client renders a screen
// from.
type SessionResponse struct {
	ID                  string             `json:"id"`
	Step                string             `json:"step"`
	Source              string             `json:"source,omitempty"`
	PreselectedMerchant bool               `json:"preselected_merchant"`
	CountryID           string             `json:"country_id,omitempty"`
	MerchantID          string             `json:"merchant_id,omitempty"`
	Cart                map[string]int64   `json:"cart"`
	Order               OrderResponse      `json:"order"`
	ProcessingMessage   string             `json:"processing_message,omitempty"`
	TotalMobi           int64              `json:"total_mobi"`
	RemainingMobi       int64              `json:"remaining_mobi"`
	Allocations         map[string]int64   `json:"allocations"`
	AllocatedTotal      int64              `json:"allocated_total"`
	RecipientGroup      string             `json:"recipient_group,omitempty"`
	CreditState         string             `json:"credit_state"`
	SendState           string             `json:"send_state"`
	RedeemedMobi        int64              `json:"redeemed_mobi,omitempty"`
	AllDistributed      bool               `json:"all_distributed"`
	Transfers           []TransferResponse `json:"transfers,omitempty"`
	CreatedAt           string             `json:"created_at"`
	UpdatedAt           string             `json:"updated_at"`
}

// ToSessionResponse maps a service view to the wire shape.
func ToSessionResponse(v *ports.SessionView) SessionResponse {
	s := v.Session
	resp := SessionResponse{
		ID:                  s.ID.String(),
		Step:                string(s.Step),
		Source:              s.Source,
		PreselectedMerchant: s.PreselectedMerchant,
		CountryID:           s.CountryID,
		MerchantID:          s.MerchantID,
		Cart:                s.Cart,
		Order:               toOrderResponse(v.Order),
		ProcessingMessage:   v.ProcessingMessage,
		TotalMobi:           s.TotalMobi,
		RemainingMobi:       s.RemainingMobi,
		Allocations:         s.Allocations,
		AllocatedTotal:      s.Allocations.Total(),
		RecipientGroup:      string(s.RecipientGroup),
		CreditState:         string(s.CreditState),
		SendState:           string(s.SendState),
		RedeemedMobi:        s.RedeemedMobi,
		AllDistributed:      v.AllDistributed,
		CreatedAt:           s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
	for _, tr := range v.Transfers {
		resp.Transfers = append(resp.Transfers, ToTransferResponse(tr))
	}
	return resp
}

// ToVoucherResponse maps a catalog denomination.
func ToVoucherResponse(d domain.Denomination) VoucherResponse {
	return VoucherResponse{
		ID:        d.ID,
		MobiValue: d.MobiValue,
		NGNPrice:  d.NGNPrice,
		Tier:      string(d.Tier),
		IsPopular: d.IsPopular,
	}
}

// ToCountryResponse maps a country, without its merchant list.
func ToCountryResponse(c domain.Country) CountryResponse {
	return CountryResponse{
		ID:             c.ID,
		Name:           c.Name,
		CurrencyCode:   c.CurrencyCode,
		CurrencySymbol: c.CurrencySymbol,
		Flag:           c.Flag,
		IsLocal:        c.IsLocal,
	}
}

// ToMerchantResponse maps a sub-merchant.
func ToMerchantResponse(m domain.SubMerchant) MerchantResponse {
	return MerchantResponse{
		ID:              m.ID,
		Name:            m.Name,
		DiscountPercent: m.DiscountPercent,
		Rating:          m.Rating,
		IsActive:        m.IsActive,
		IsVerified:      m.IsVerified,
		IsSubMerchant:   m.IsSubMerchant,
		City:            m.City,
	}
}

// ToRecipientResponse maps a directory recipient.
func ToRecipientResponse(r domain.Recipient) RecipientResponse {
	return RecipientResponse{
		ID:     r.ID,
		Name:   r.Name,
		Avatar: r.Avatar,
		Group:  string(r.Group),
	}
}

// ToTransferResponse maps a committed transfer.
func ToTransferResponse(t domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:              t.ID.String(),
		RecipientID:     t.RecipientID,
		RecipientName:   t.RecipientName,
		RecipientAvatar: t.RecipientAvatar,
		Amount:          t.Amount,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}

func toOrderResponse(o domain.OrderSummary) OrderResponse {
	resp := OrderResponse{
		TotalRegular: o.TotalRegular,
		TotalSavings: o.TotalSavings,
		TotalToPay:   o.TotalToPay,
	}
	for _, line := range o.Lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			Denomination:     ToVoucherResponse(line.Denomination),
			Quantity:         line.Quantity,
			LineTotal:        line.LineTotal,
			DiscountEligible: line.DiscountEligible,
			DiscountedAmount: line.DiscountedAmount,
			Savings:          line.Savings,
		})
	}
	return resp
}
