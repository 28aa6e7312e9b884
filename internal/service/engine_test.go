package service

import (
	"context"
	"testing"
	"time"

	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/price"
	"github.com/a2sh3r/holdengine/internal/repository"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const platformAccount = "platform"

type engine struct {
	store     *repository.MemoryStore
	oracle    *price.StaticOracle
	metrics   *metrics.Metrics
	allocator *HoldAllocator
	fees      FeeService
	holds     HoldService
	tickets   TicketService
	ledger    LedgerService
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	logger.Log = zap.NewNop()

	store := repository.NewMemoryStore()
	oracle := price.NewStaticOracle(map[string]decimal.Decimal{
		"BTC":  decimal.NewFromInt(90000),
		"ETH":  decimal.NewFromInt(3000),
		"USDT": decimal.NewFromInt(1),
		"LTC":  decimal.NewFromInt(100),
	})
	m := metrics.NewMetrics(prometheus.NewRegistry())

	allocator := NewHoldAllocator(store, store, oracle, m)
	fees := NewFeeService(store, platformAccount, store, m)
	holds := NewHoldService(store, store, allocator, fees, store, m)
	tickets := NewTicketService(store, holds, TicketOptions{
		TOSDeadline:          10 * time.Minute,
		DefaultFeePercentage: decimal.NewFromInt(10),
	}, store, m)

	return &engine{
		store:     store,
		oracle:    oracle,
		metrics:   m,
		allocator: allocator,
		fees:      fees,
		holds:     holds,
		tickets:   tickets,
		ledger:    NewLedgerService(store, oracle, nil, store, m),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func (e *engine) fund(t *testing.T, userID, currency, balance string) {
	t.Helper()
	d, err := models.NewDeposit(userID, currency, "addr-"+userID+"-"+currency)
	require.NoError(t, err)
	d.Balance = dec(balance)
	require.NoError(t, e.store.CreateDeposit(context.Background(), d))
}

func (e *engine) deposit(t *testing.T, userID, currency string) models.Deposit {
	t.Helper()
	d, err := e.store.GetDeposit(context.Background(), userID, currency)
	require.NoError(t, err)
	return *d
}

func (e *engine) openTicket(t *testing.T, clientID, amount string) *models.Ticket {
	t.Helper()
	tk, err := e.tickets.CreateTicket(context.Background(), models.NewTicket{
		ClientID:  clientID,
		AmountUSD: dec(amount),
	})
	require.NoError(t, err)
	return tk
}

func activeHolds(t *testing.T, e *engine, ticketID uuid.UUID) []models.Hold {
	t.Helper()
	holds, err := e.store.ListHoldsByTicket(context.Background(), ticketID)
	require.NoError(t, err)
	var out []models.Hold
	for _, h := range holds {
		if h.Status == models.HoldActive {
			out = append(out, h)
		}
	}
	return out
}

// assertConserved checks balance >= held + fee_reserved >= 0 for every deposit of the users.
func assertConserved(t *testing.T, e *engine, users ...string) {
	t.Helper()
	for _, u := range users {
		deposits, err := e.store.ListDeposits(context.Background(), u)
		require.NoError(t, err)
		for _, d := range deposits {
			assert.NoError(t, d.Validate(), "%s/%s", u, d.Currency)
		}
	}
}
