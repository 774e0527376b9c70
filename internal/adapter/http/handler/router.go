package handler

import (
	"mobi-voucher-gateway/internal/adapter/http/middleware"
	redisStore "mobi-voucher-gateway/internal/adapter/storage/redis"
	"mobi-voucher-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CheckoutSvc    ports.CheckoutService
	DistSvc        ports.DistributionService
	RedeemSvc      ports.RedeemService
	Catalog        ports.CatalogRepository
	Merchants      ports.MerchantDirectory
	Users          ports.UserDirectory
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Catalog and directory reads ---
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Merchants, deps.Users)
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/vouchers", rl("catalog"), catalogHandler.ListVouchers)
		catalog.GET("/countries", rl("catalog"), catalogHandler.ListCountries)
		catalog.GET("/countries/:id/merchants", rl("catalog"), catalogHandler.ListMerchants)
	}
	v1.GET("/recipients", rl("catalog"), catalogHandler.ListRecipients)

	// --- Wizard sessions ---
	sessionHandler := NewSessionHandler(deps.CheckoutSvc, deps.DistSvc, deps.RedeemSvc)
	sessions := v1.Group("/checkout/sessions")
	{
		sessions.POST("", rl("sessions_create"), sessionHandler.Create)
		sessions.GET("/:id", rl("checkout"), sessionHandler.Get)
		sessions.DELETE("/:id", rl("checkout"), sessionHandler.Delete)

		sessions.POST("/:id/cart/toggle", rl("checkout"), sessionHandler.ToggleVoucher)
		sessions.POST("/:id/cart/quantity", rl("checkout"), sessionHandler.ChangeQuantity)
		sessions.POST("/:id/cart/clear", rl("checkout"), sessionHandler.ClearCart)

		sessions.POST("/:id/continue", rl("checkout"), sessionHandler.Continue)
		sessions.POST("/:id/back", rl("checkout"), sessionHandler.Back)
		sessions.POST("/:id/country", rl("checkout"), sessionHandler.SelectCountry)
		sessions.POST("/:id/merchant", rl("checkout"), sessionHandler.SelectMerchant)
		sessions.POST("/:id/pay", rl("checkout"), sessionHandler.Pay)
		sessions.POST("/:id/use-for-self", rl("checkout"), sessionHandler.UseForSelf)
		sessions.POST("/:id/send-to-someone", rl("checkout"), sessionHandler.SendToSomeone)
		sessions.POST("/:id/recipients", rl("checkout"), sessionHandler.ChooseRecipients)

		sessions.POST("/:id/allocations", rl("checkout"), sessionHandler.Allocate)
		sessions.POST("/:id/send", rl("checkout"), sessionHandler.Send)
		sessions.GET("/:id/transfers", rl("checkout"), sessionHandler.ListTransfers)

		sessions.POST("/:id/redeem", rl("checkout"), sessionHandler.StartRedeem)
		sessions.POST("/:id/redeem/pin", rl("checkout"), sessionHandler.SubmitPin)
	}

	return r
}
