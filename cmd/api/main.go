package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mobi-voucher-gateway/config"
	httpHandler "mobi-voucher-gateway/internal/adapter/http/handler"
	"mobi-voucher-gateway/internal/adapter/storage/memory"
	redisStorage "mobi-voucher-gateway/internal/adapter/storage/redis"
	"mobi-voucher-gateway/internal/core/ports"
	"mobi-voucher-gateway/internal/service"
	"mobi-voucher-gateway/internal/timer"
	"mobi-voucher-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Mobi Voucher Gateway")

	ctx := context.Background()

	// Initialize Redis client (session store + rate limiting)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize stores and static directories
	sessionStore := redisStorage.NewSessionStore(rdb, cfg.Checkout.SessionTTL)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	catalogRepo := memory.NewCatalogRepo()
	merchantRepo := memory.NewMerchantRepo()
	userRepo := memory.NewUserRepo()
	ledger := memory.NewTransferLedger()

	// Initialize services
	scheduler := timer.NewScheduler()
	manager := service.NewSessionManager(
		sessionStore,
		catalogRepo,
		merchantRepo,
		userRepo,
		ledger,
		scheduler,
		cfg.Checkout,
		logger.WithComponent(log, "session_manager"),
	)
	checkoutSvc := service.NewCheckoutService(manager, logger.WithComponent(log, "checkout"))
	distSvc := service.NewDistributionService(manager, logger.WithComponent(log, "distribution"))
	redeemSvc := service.NewRedeemService(manager, logger.WithComponent(log, "redeem"))

	// Initialize health checkers
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckoutSvc:    checkoutSvc,
		DistSvc:        distSvc,
		RedeemSvc:      redeemSvc,
		Catalog:        catalogRepo,
		Merchants:      merchantRepo,
		Users:          userRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
