package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"split-wallet-engine/config"
	"split-wallet-engine/internal/adapter/chain/evm"
	"split-wallet-engine/internal/adapter/chain/simulated"
	httpHandler "split-wallet-engine/internal/adapter/http/handler"
	"split-wallet-engine/internal/adapter/http/middleware"
	"split-wallet-engine/internal/adapter/metrics"
	memStorage "split-wallet-engine/internal/adapter/storage/memory"
	pgStorage "split-wallet-engine/internal/adapter/storage/postgres"
	redisStorage "split-wallet-engine/internal/adapter/storage/redis"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/internal/service"
	"split-wallet-engine/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// backends groups the storage and chain adapters selected by storage.driver.
type backends struct {
	wallets   ports.SplitWalletRepository
	txs       ports.SplitTransactionRepository
	roulette  ports.RouletteAuditRepository
	shares    ports.KeyShareRepository
	debts     ports.RepairDebtRepository
	audits    ports.AuditRepository
	index     ports.SplitIndexStore
	cache     ports.IdempotencyCache
	nonces    ports.NonceStore
	rateLimit middleware.RateLimitStore
	chain     ports.BlockchainClient
	health    []ports.HealthChecker
	closers   []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("SWE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Split Wallet Engine")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var b *backends
	if cfg.Storage.Driver == "memory" {
		b = memoryBackends(log)
	} else {
		b, err = productionBackends(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize backends")
		}
	}
	defer b.close()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Core services
	encSvc, err := service.NewAESEncryptionService(cfg.Custody.MasterKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(b.audits, log)
	custodySvc := service.NewCustodyService(b.shares, encSvc, log)
	keys := evm.NewKeyGenerator()
	addrs := evm.NewAddressValidator()
	retry := service.RetryPolicy{MaxRetries: cfg.Chain.MaxRetries, BaseDelay: cfg.Chain.RetryBaseDelay}

	updater := service.NewAtomicUpdater(b.wallets, b.index, b.debts, m, cfg.Sync.RetryDelay, log)

	// Roulette executors
	local := service.NewLocalRouletteExecutor()
	var remote ports.RouletteExecutor
	if cfg.Roulette.RemoteURL != "" {
		r, err := service.NewRemoteRouletteExecutor(
			cfg.Roulette.RemoteURL,
			cfg.Roulette.SharedSecret,
			cfg.Roulette.RemoteTimeout,
			sigSvc,
			&http.Client{Timeout: cfg.Roulette.RemoteTimeout},
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid roulette configuration")
		}
		remote = r
		log.Info().Str("endpoint", cfg.Roulette.RemoteURL).Msg("Remote roulette enabled")
	}
	executor := service.NewFallbackRouletteExecutor(remote, local, logger.Component(log, "roulette"))

	// Business services
	creationSvc := service.NewCreationService(b.wallets, updater, custodySvc, keys, addrs, auditSvc, log)
	querySvc := service.NewQueryService(b.wallets, b.index)
	managementSvc := service.NewManagementService(b.wallets, b.index, updater, custodySvc, addrs, auditSvc, log)
	paymentSvc := service.NewPaymentProcessor(b.wallets, b.txs, b.roulette, updater, custodySvc, b.chain, addrs, auditSvc, m, retry, log)
	rouletteSvc := service.NewRouletteService(b.wallets, b.roulette, b.cache, updater, executor, m, auditSvc, log)
	cleanupSvc := service.NewCleanupService(b.wallets, b.txs, updater, custodySvc, b.chain, auditSvc, m, retry, log)

	// Background index repair
	worker := service.NewRepairWorker(b.debts, updater, cfg.Sync.RepairInterval, cfg.Sync.RepairBatch, logger.Component(log, "repair_worker"))
	go worker.Run(ctx)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Creation:       creationSvc,
		Query:          querySvc,
		Management:     managementSvc,
		Payments:       paymentSvc,
		Roulette:       rouletteSvc,
		Cleanup:        cleanupSvc,
		DrawExecutor:   local,
		TokenSvc:       tokenSvc,
		SigSvc:         sigSvc,
		NonceStore:     b.nonces,
		ServiceSecret:  cfg.Roulette.SharedSecret,
		RateLimitStore: b.rateLimit,
		HealthCheckers: b.health,
		AuditSvc:       auditSvc,
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// memoryBackends keeps every store in-process and settles transfers on a
// simulated ledger. Rate limiting is disabled.
func memoryBackends(log zerolog.Logger) *backends {
	log.Warn().Msg("Using in-memory storage and simulated chain; state is lost on restart")
	return &backends{
		wallets:  memStorage.NewSplitWalletRepo(),
		txs:      memStorage.NewSplitTransactionRepo(),
		roulette: memStorage.NewRouletteAuditRepo(),
		shares:   memStorage.NewKeyShareRepo(),
		debts:    memStorage.NewRepairDebtRepo(),
		audits:   memStorage.NewAuditRepo(),
		index:    memStorage.NewIndexStore(),
		cache:    memStorage.NewIdempotencyCache(),
		nonces:   memStorage.NewNonceStore(),
		chain:    simulated.New(),
	}
}

// productionBackends connects PostgreSQL, Redis and the EVM node.
func productionBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	b.closers = append(b.closers, pool.Close)
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		b.close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	b.closers = append(b.closers, func() { _ = rdb.Close() })
	log.Info().Msg("Redis connected")

	eth, err := evm.Dial(cfg.Chain)
	if err != nil {
		b.close()
		return nil, fmt.Errorf("dialing chain rpc: %w", err)
	}
	b.closers = append(b.closers, eth.Close)
	chain, err := evm.NewClient(eth, cfg.Chain, log)
	if err != nil {
		b.close()
		return nil, fmt.Errorf("initializing token client: %w", err)
	}

	b.wallets = pgStorage.NewSplitWalletRepo(pool)
	b.txs = pgStorage.NewSplitTransactionRepo(pool)
	b.roulette = pgStorage.NewRouletteAuditRepo(pool)
	b.shares = pgStorage.NewKeyShareRepo(pool)
	b.debts = pgStorage.NewRepairDebtRepo(pool)
	b.audits = pgStorage.NewAuditRepository(pool)
	b.index = redisStorage.NewIndexStore(rdb)
	b.cache = redisStorage.NewIdempotencyCache(rdb)
	b.nonces = redisStorage.NewNonceStore(rdb)
	b.rateLimit = redisStorage.NewRateLimitStore(rdb)
	b.chain = chain
	b.health = []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)}
	return b, nil
}
