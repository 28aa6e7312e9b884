package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a2sh3r/holdengine/internal/config"
	"github.com/a2sh3r/holdengine/internal/database"
	"github.com/a2sh3r/holdengine/internal/handlers"
	"github.com/a2sh3r/holdengine/internal/keyvault"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/middleware"
	"github.com/a2sh3r/holdengine/internal/price"
	"github.com/a2sh3r/holdengine/internal/repository"
	"github.com/a2sh3r/holdengine/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type stores struct {
	ledger  repository.LedgerRepository
	tickets repository.TicketRepository
	audit   repository.AuditRepository
}

type App struct {
	server  *http.Server
	db      *sql.DB
	redis   *redis.Client
	sweeper *service.TicketSweeper

	stopSweeper context.CancelFunc
	sweeperDone chan struct{}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required to sign tokens")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	st, db, err := openStores(cfg)
	if err != nil {
		return nil, err
	}

	rdb := openRedis(ctx, cfg.RedisURL)

	var source price.Oracle = price.NewStaticOracle(nil)
	if cfg.PriceAPIURL != "" {
		source = price.NewClient(cfg.PriceAPIURL)
	}
	oracle := price.NewCachedOracle(source, rdb, cfg.PriceCacheTTL, m)

	var sealer service.KeySealer
	if cfg.DepositKey != "" {
		vault, err := keyvault.New(cfg.DepositKey)
		if err != nil {
			closeAll(db, rdb)
			return nil, fmt.Errorf("failed to load deposit key: %w", err)
		}
		sealer = vault
	}

	allocator := service.NewHoldAllocator(st.ledger, st.ledger, oracle, m)
	feeService := service.NewFeeService(st.ledger, cfg.PlatformAccount, st.audit, m)
	holdService := service.NewHoldService(st.ledger, st.tickets, allocator, feeService, st.audit, m)
	ticketService := service.NewTicketService(st.tickets, holdService, service.TicketOptions{
		TOSDeadline:          cfg.TOSDeadline,
		DefaultFeePercentage: decimal.NewFromFloat(cfg.DefaultFeePercentage),
	}, st.audit, m)
	ledgerService := service.NewLedgerService(st.ledger, oracle, sealer, st.audit, m)
	authService := service.NewAuthService(cfg.BotSecretHash, cfg.SecretKey)

	handler := handlers.NewHandler(authService, ledgerService, ticketService, holdService, feeService)
	limiter := middleware.NewUserRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	r := handlers.NewRouter(handler, cfg.SecretKey, limiter, m)
	r.Handle("/metrics", metrics.Handler(registry))

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{
		server: server,
		db:     db,
		redis:  rdb,
		sweeper: service.NewTicketSweeper(ticketService, feeService, service.SweeperOptions{
			Interval:       cfg.SweepInterval,
			StaleTicketAge: cfg.StaleTicketAge,
			StuckTicketAge: cfg.StuckTicketAge,
		}),
	}, nil
}

// openStores falls back to the in-memory store when no database is configured.
func openStores(cfg *config.Config) (stores, *sql.DB, error) {
	if cfg.DatabaseURI == "" {
		logger.Log.Warn("DATABASE_URI is empty, using the in-memory ledger")
		mem := repository.NewMemoryStore()
		return stores{ledger: mem, tickets: mem, audit: mem}, nil, nil
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return stores{}, nil, err
	}
	return stores{
		ledger:  repository.NewLedgerRepository(db),
		tickets: repository.NewTicketRepository(db),
		audit:   repository.NewAuditRepository(db),
	}, db, nil
}

// openRedis returns nil when Redis is not configured or unreachable; prices
// are then cached in process.
func openRedis(ctx context.Context, url string) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Log.Warn("invalid redis url, using the local price cache", zap.Error(err))
		return nil
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Log.Warn("redis unreachable, using the local price cache", zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	return rdb
}

func closeAll(db *sql.DB, rdb *redis.Client) {
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Log.Error("failed to close redis", zap.Error(err))
		}
	}
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Log.Error("failed to close database", zap.Error(err))
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	sweepCtx, cancel := context.WithCancel(ctx)
	a.stopSweeper = cancel
	a.sweeperDone = make(chan struct{})
	go func() {
		defer close(a.sweeperDone)
		a.sweeper.Run(sweepCtx)
	}()

	go func() {
		logger.Log.Info("starting server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	if a.stopSweeper != nil {
		a.stopSweeper()
		select {
		case <-a.sweeperDone:
		case <-shutdownCtx.Done():
			logger.Log.Warn("sweeper did not stop in time")
		}
	}

	logger.Log.Info("closing storage connections...")
	closeAll(a.db, a.redis)
	return nil
}
