package price

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Oracle returns the USD price of one unit of currency.
// ErrPriceUnavailable means the currency cannot be priced right now; it is never zero.
type Oracle interface {
	PriceUSD(ctx context.Context, currency string) (decimal.Decimal, error)
}

type StaticOracle struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
}

func NewStaticOracle(prices map[string]decimal.Decimal) *StaticOracle {
	o := &StaticOracle{prices: make(map[string]decimal.Decimal, len(prices))}
	for cur, p := range prices {
		o.prices[strings.ToUpper(cur)] = p
	}
	return o
}

func (o *StaticOracle) Set(currency string, price decimal.Decimal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prices[strings.ToUpper(currency)] = price
}

func (o *StaticOracle) Remove(currency string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.prices, strings.ToUpper(currency))
}

func (o *StaticOracle) PriceUSD(_ context.Context, currency string) (decimal.Decimal, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	p, ok := o.prices[strings.ToUpper(currency)]
	if !ok || !p.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrPriceUnavailable, currency)
	}
	return p, nil
}

var stablecoins = map[string]struct{}{
	"USDT": {},
	"USDC": {},
}

func IsStablecoin(currency string) bool {
	_, ok := stablecoins[strings.ToUpper(currency)]
	return ok
}
