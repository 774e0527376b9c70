package handler

import (
	"net/http"

	"mobi-voucher-gateway/internal/adapter/http/dto"
	"mobi-voucher-gateway/internal/core/domain"
	"mobi-voucher-gateway/internal/core/ports"
	"mobi-voucher-gateway/pkg/apperror"
	"mobi-voucher-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static catalog and directory data the wizard
// screens render from.
type CatalogHandler struct {
	catalog   ports.CatalogRepository
	merchants ports.MerchantDirectory
	users     ports.UserDirectory
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog ports.CatalogRepository, merchants ports.MerchantDirectory, users ports.UserDirectory) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, merchants: merchants, users: users}
}

// ListVouchers handles GET /api/v1/catalog/vouchers.
func (h *CatalogHandler) ListVouchers(c *gin.Context) {
	denominations, err := h.catalog.ListDenominations(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	items := make([]dto.VoucherResponse, 0, len(denominations))
	for _, d := range denominations {
		items = append(items, dto.ToVoucherResponse(d))
	}
	response.OK(c, gin.H{"items": items})
}

// ListCountries handles GET /api/v1/catalog/countries.
func (h *CatalogHandler) ListCountries(c *gin.Context) {
	countries, err := h.merchants.ListCountries(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	items := make([]dto.CountryResponse, 0, len(countries))
	for _, country := range countries {
		items = append(items, dto.ToCountryResponse(country))
	}
	response.OK(c, gin.H{"items": items})
}

// ListMerchants handles GET /api/v1/catalog/countries/:id/merchants.
func (h *CatalogHandler) ListMerchants(c *gin.Context) {
	countryID := c.Param("id")
	country, err := h.merchants.GetCountry(c.Request.Context(), countryID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if country == nil {
		response.Error(c, apperror.ErrInvalidSelection("unknown country "+countryID))
		return
	}
	items := make([]dto.MerchantResponse, 0, len(country.Merchants))
	for _, m := range country.Merchants {
		items = append(items, dto.ToMerchantResponse(m))
	}
	response.OK(c, gin.H{"items": items})
}

// ListRecipients handles GET /api/v1/recipients?group=community|friends.
func (h *CatalogHandler) ListRecipients(c *gin.Context) {
	group := domain.RecipientGroup(c.DefaultQuery("group", string(domain.GroupCommunity)))
	if group != domain.GroupCommunity && group != domain.GroupFriends {
		response.Error(c, apperror.ErrInvalidSelection("unknown recipient group "+string(group)))
		return
	}
	recipients, err := h.users.ListRecipients(c.Request.Context(), group)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	items := make([]dto.RecipientResponse, 0, len(recipients))
	for _, r := range recipients {
		items = append(items, dto.ToRecipientResponse(r))
	}
	response.OK(c, gin.H{"items": items})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
