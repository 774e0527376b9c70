package handler

import (
	"mobi-voucher-gateway/internal/adapter/http/dto"
	"mobi-voucher-gateway/internal/core/domain"
	"mobi-voucher-gateway/internal/core/ports"
	"mobi-voucher-gateway/pkg/apperror"
	"mobi-voucher-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler drives the wizard: session lifecycle, cart edits and step
// events.
type SessionHandler struct {
	checkoutSvc ports.CheckoutService
	distSvc     ports.DistributionService
	redeemSvc   ports.RedeemService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(checkoutSvc ports.CheckoutService, distSvc ports.DistributionService, redeemSvc ports.RedeemService) *SessionHandler {
	return &SessionHandler{
		checkoutSvc: checkoutSvc,
		distSvc:     distSvc,
		redeemSvc:   redeemSvc,
	}
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrSessionNotFound())
		return uuid.Nil, false
	}
	return id, true
}

func respondView(c *gin.Context, view *ports.SessionView, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToSessionResponse(view))
}

// Create handles POST /api/v1/checkout/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	dto.SanitizeStruct(&req)

	view, err := h.checkoutSvc.CreateSession(c.Request.Context(), ports.CreateSessionRequest{
		Source:       req.Source,
		MerchantName: req.Merchant,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToSessionResponse(view))
}

// Get handles GET /api/v1/checkout/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkoutSvc.GetSession(c.Request.Context(), id)
	respondView(c, view, err)
}

// Delete handles DELETE /api/v1/checkout/sessions/:id.
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.checkoutSvc.TeardownSession(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// ToggleVoucher handles POST /api/v1/checkout/sessions/:id/cart/toggle.
func (h *SessionHandler) ToggleVoucher(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.CartToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	view, err := h.checkoutSvc.ToggleVoucher(c.Request.Context(), id, req.DenominationID)
	respondView(c, view, err)
}

// ChangeQuantity handles POST /api/v1/checkout/sessions/:id/cart/quantity.
// A delta adjusts the line relative to its current quantity; a value sets
// it outright.
func (h *SessionHandler) ChangeQuantity(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var view *ports.SessionView
	var err error
	switch {
	case req.Delta != nil && req.Value != nil:
		response.Error(c, apperror.Validation("delta and value are mutually exclusive"))
		return
	case req.Delta != nil:
		view, err = h.checkoutSvc.ChangeQuantity(c.Request.Context(), id, req.DenominationID, *req.Delta)
	case req.Value != nil:
		view, err = h.checkoutSvc.SetQuantity(c.Request.Context(), id, req.DenominationID, *req.Value)
	default:
		response.Error(c, apperror.Validation("either delta or value is required"))
		return
	}
	respondView(c, view, err)
}

// ClearCart handles POST /api/v1/checkout/sessions/:id/cart/clear.
func (h *SessionHandler) ClearCart(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkoutSvc.ClearCart(c.Request.Context(), id)
	respondView(c, view, err)
}

// Continue handles POST /api/v1/checkout/sessions/:id/continue.
func (h *SessionHandler) Continue(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkoutSvc.Continue(c.Request.Context(), id)
	respondView(c, view, err)
}

// Back handles POST /api/v1/checkout/sessions/:id/back.
func (h *SessionHandler) Back(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkoutSvc.Back(c.Request.Context(), id)
	respondView(c, view, err)
}

// SelectCountry handles POST /api/v1/checkout/sessions/:id/country.
func (h *SessionHandler) SelectCountry(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.SelectCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	view, err := h.checkoutSvc.SelectCountry(c.Request.Context(), id, req.CountryID)
	respondView(c, view, err)
}

// SelectMerchant handles POST /api/v1/checkout/sessions/:id/merchant.
func (h *SessionHandler) SelectMerchant(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.SelectMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	view, err := h.checkoutSvc.SelectMerchant(c.Request.Context(), id, req.MerchantID)
	respondView(c, view, err)
}

// Pay handles POST /api/v1/checkout/sessions/:id/pay.
func (h *SessionHandler) Pay(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkoutSvc.Pay(c.Request.Context(), id)
	respondView(c, view, err)
}

// UseForSelf handles POST /api/v1/checkout/sessions/:id/use-for-self.
func (h *SessionHandler) UseForSelf(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkoutSvc.UseForSelf(c.Request.Context(), id)
	respondView(c, view, err)
}

// SendToSomeone handles POST /api/v1/checkout/sessions/:id/send-to-someone.
func (h *SessionHandler) SendToSomeone(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.checkoutSvc.SendToSomeone(c.Request.Context(), id)
	respondView(c, view, err)
}

// ChooseRecipients handles POST /api/v1/checkout/sessions/:id/recipients.
func (h *SessionHandler) ChooseRecipients(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.RecipientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	view, err := h.checkoutSvc.ChooseRecipients(c.Request.Context(), id, domain.RecipientGroup(req.Group))
	respondView(c, view, err)
}

// Allocate handles POST /api/v1/checkout/sessions/:id/allocations.
func (h *SessionHandler) Allocate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	view, err := h.distSvc.Allocate(c.Request.Context(), id, req.RecipientID, req.Amount)
	respondView(c, view, err)
}

// Send handles POST /api/v1/checkout/sessions/:id/send.
func (h *SessionHandler) Send(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.distSvc.Send(c.Request.Context(), id)
	respondView(c, view, err)
}

// ListTransfers handles GET /api/v1/checkout/sessions/:id/transfers.
func (h *SessionHandler) ListTransfers(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	transfers, err := h.distSvc.ListTransfers(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]dto.TransferResponse, 0, len(transfers))
	for _, tr := range transfers {
		items = append(items, dto.ToTransferResponse(tr))
	}
	response.OK(c, gin.H{"items": items})
}

// StartRedeem handles POST /api/v1/checkout/sessions/:id/redeem.
func (h *SessionHandler) StartRedeem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.redeemSvc.StartRedeem(c.Request.Context(), id)
	respondView(c, view, err)
}

// SubmitPin handles POST /api/v1/checkout/sessions/:id/redeem/pin.
func (h *SessionHandler) SubmitPin(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dto.RedeemPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidPin())
		return
	}
	view, err := h.redeemSvc.SubmitPin(c.Request.Context(), id, req.Pin)
	respondView(c, view, err)
}
