package price

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type cachedPrice struct {
	value   decimal.Decimal
	expires time.Time
}

// CachedOracle is a read-through cache in front of a price source. Prices
// live in Redis when a client is configured and in process memory otherwise.
type CachedOracle struct {
	source  Oracle
	rdb     *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics

	mu    sync.Mutex
	local map[string]cachedPrice
}

func NewCachedOracle(source Oracle, rdb *redis.Client, ttl time.Duration, m *metrics.Metrics) *CachedOracle {
	return &CachedOracle{
		source:  source,
		rdb:     rdb,
		ttl:     ttl,
		metrics: m,
		local:   make(map[string]cachedPrice),
	}
}

func priceKey(currency string) string {
	return "price:" + currency
}

func (o *CachedOracle) PriceUSD(ctx context.Context, currency string) (decimal.Decimal, error) {
	cur := strings.ToUpper(currency)

	if p, ok := o.cached(ctx, cur); ok {
		o.metrics.IncPriceLookup("hit")
		return p, nil
	}

	p, err := o.source.PriceUSD(ctx, cur)
	if err != nil {
		if IsStablecoin(cur) && errors.Is(err, apperrors.ErrPriceUnavailable) {
			logger.Log.Warn("price source failed, pricing stablecoin at par", zap.String("currency", cur), zap.Error(err))
			o.metrics.IncPriceLookup("stable_fallback")
			return decimal.NewFromInt(1), nil
		}
		o.metrics.IncPriceLookup("unavailable")
		return decimal.Zero, err
	}

	o.metrics.IncPriceLookup("miss")
	o.store(ctx, cur, p)
	return p, nil
}

func (o *CachedOracle) cached(ctx context.Context, cur string) (decimal.Decimal, bool) {
	if o.rdb != nil {
		raw, err := o.rdb.Get(ctx, priceKey(cur)).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				logger.Log.Warn("price cache read failed", zap.String("currency", cur), zap.Error(err))
			}
			return decimal.Zero, false
		}
		p, err := decimal.NewFromString(raw)
		if err != nil || !p.IsPositive() {
			return decimal.Zero, false
		}
		return p, true
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	entry, ok := o.local[cur]
	if !ok || time.Now().After(entry.expires) {
		return decimal.Zero, false
	}
	return entry.value, true
}

func (o *CachedOracle) store(ctx context.Context, cur string, p decimal.Decimal) {
	if o.rdb != nil {
		if err := o.rdb.Set(ctx, priceKey(cur), p.String(), o.ttl).Err(); err != nil {
			logger.Log.Warn("price cache write failed", zap.String("currency", cur), zap.Error(err))
		}
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.local[cur] = cachedPrice{value: p, expires: time.Now().Add(o.ttl)}
}
