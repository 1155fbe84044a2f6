package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telco-billing/config"
	httpHandler "telco-billing/internal/adapter/http/handler"
	pgStorage "telco-billing/internal/adapter/storage/postgres"
	redisStorage "telco-billing/internal/adapter/storage/redis"
	"telco-billing/internal/adapter/vendors"
	"telco-billing/internal/adapter/vendors/commio"
	"telco-billing/internal/core/ports"
	"telco-billing/internal/service"
	"telco-billing/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("TELCO_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, "telco-billing")

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting telco billing API")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	txnRepo := pgStorage.NewWalletTransactionRepo(pool)
	vendorRepo := pgStorage.NewVendorRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	didRepo := pgStorage.NewDIDRepo(pool)
	cdrRepo := pgStorage.NewCDRRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	requestLock := redisStorage.NewRequestLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	alertSvc := service.NewAlertService(cfg.Alert, sigSvc, &http.Client{Timeout: cfg.Alert.Timeout}, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Vendor integrations
	registry := vendors.NewRegistry(
		commio.NewClient(cfg.Vendors.Commio, cfg.Vendors.Timeout, log.With().Str("vendor", "commio").Logger()),
	)

	// Business services
	ledger := service.NewLedgerService(balanceRepo, txnRepo, transactor, log)
	vendorSvc := service.NewVendorService(vendorRepo, encSvc, log)
	gateway := service.NewDIDGateway(registry, didRepo, orderRepo, transactor, service.GatewayConfig{
		Timeout:          cfg.Vendors.Timeout,
		PurchaseAttempts: cfg.TFN.PurchaseAttempts,
		RetryBackoff:     cfg.TFN.RetryBackoff,
	}, log)
	tfnSvc := service.NewTfnService(
		vendorSvc,
		gateway,
		ledger,
		orderRepo,
		didRepo,
		idempotencyCache,
		requestLock,
		transactor,
		alertSvc,
		cfg.TFN,
		log,
	)
	cdrSvc := service.NewCDRService(cdrRepo, cfg.CDR.RoundToMinute, log)

	// Load OpenAPI document for /docs
	specBytes, err := os.ReadFile("docs/api/openapi.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("OpenAPI document not found, /docs will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TfnSvc:         tfnSvc,
		Ledger:         ledger,
		Gateway:        gateway,
		VendorSvc:      vendorSvc,
		CDRSvc:         cdrSvc,
		AuditSvc:       auditSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		Pagination:     cfg.Pagination,
		OpenAPISpec:    specBytes,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Let in-flight operator alerts finish before the process exits.
	if err := alertSvc.Wait(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Alert deliveries still pending at shutdown")
	}

	log.Info().Msg("Server exited")
}
