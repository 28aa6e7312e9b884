package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var coinIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"LTC":   "litecoin",
	"SOL":   "solana",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"BNB":   "binancecoin",
	"XRP":   "ripple",
	"DOGE":  "dogecoin",
	"TRX":   "tron",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
}

func CoinID(currency string) (string, bool) {
	id, ok := coinIDs[strings.ToUpper(currency)]
	return id, ok
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// PriceUSD asks the simple price endpoint. Throttling and unknown coins are
// reported as ErrPriceUnavailable so the caller skips the currency.
func (c *Client) PriceUSD(ctx context.Context, currency string) (decimal.Decimal, error) {
	id, ok := CoinID(currency)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no coin id for %s", apperrors.ErrPriceUnavailable, currency)
	}

	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", "usd")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v3/simple/price?"+q.Encode(), nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceUnavailable, currency, err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logger.Log.Error("failed to close price response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode == http.StatusTooManyRequests {
		logger.Log.Warn("price api rate limited", zap.String("currency", currency))
		return decimal.Zero, fmt.Errorf("%w: %s: rate limited", apperrors.ErrPriceUnavailable, currency)
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: %s: unexpected status %d", apperrors.ErrPriceUnavailable, currency, resp.StatusCode)
	}

	var body map[string]map[string]decimal.Decimal
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceUnavailable, currency, err)
	}

	p, ok := body[id]["usd"]
	if !ok || !p.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s missing in response", apperrors.ErrPriceUnavailable, currency)
	}
	return p, nil
}
