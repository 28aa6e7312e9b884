package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/mocks/repository_mocks"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/price"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type prefixSealer struct{ err error }

func (s prefixSealer) Seal(plaintext string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "sealed:" + plaintext, nil
}

func TestLedgerService_RegisterDeposit(t *testing.T) {
	tests := []struct {
		name    string
		sealer  KeySealer
		req     models.RegisterDepositRequest
		wantKey string
		wantErr bool
	}{
		{
			name:    "ключ шифруется",
			sealer:  prefixSealer{},
			req:     models.RegisterDepositRequest{Currency: "btc", Address: "bc1q", PrivateKey: "secret"},
			wantKey: "sealed:secret",
		},
		{
			name:   "без ключа",
			sealer: nil,
			req:    models.RegisterDepositRequest{Currency: "USDT", Address: "T9y"},
		},
		{
			name:    "ключ без настроенного шифрования",
			sealer:  nil,
			req:     models.RegisterDepositRequest{Currency: "USDT", PrivateKey: "secret"},
			wantErr: true,
		},
		{
			name:    "ошибка шифрования",
			sealer:  prefixSealer{err: errors.New("boom")},
			req:     models.RegisterDepositRequest{Currency: "USDT", PrivateKey: "secret"},
			wantErr: true,
		},
		{
			name:    "некорректная валюта",
			sealer:  nil,
			req:     models.RegisterDepositRequest{Currency: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			svc := NewLedgerService(e.store, e.oracle, tt.sealer, e.store, nil)

			d, err := svc.RegisterDeposit(context.Background(), "ex-1", tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, d.EncryptedPrivateKey)
			assert.True(t, d.IsActive)

			stored := e.deposit(t, "ex-1", d.Currency)
			assert.Equal(t, tt.wantKey, stored.EncryptedPrivateKey)

			_, err = svc.RegisterDeposit(context.Background(), "ex-1", tt.req)
			assert.ErrorIs(t, err, apperrors.ErrDepositExists)
		})
	}
}

func TestLedgerService_GetAvailable(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name        string
		deposit     *models.Deposit
		repoErr     error
		want        string
		wantDisplay string
		wantErr     error
	}{
		{
			name:        "корректный депозит",
			deposit:     &models.Deposit{UserID: "ex-1", Currency: "BTC", Balance: dec("1"), Held: dec("0.4"), FeeReserved: dec("0.1")},
			want:        "0.5",
			wantDisplay: "0.5",
		},
		{
			name:        "отрицательный остаток не маскируется",
			deposit:     &models.Deposit{UserID: "ex-1", Currency: "BTC", Balance: dec("1"), Held: dec("1.2"), FeeReserved: decimal.Zero},
			want:        "0",
			wantDisplay: "0",
			wantErr:     apperrors.ErrConsistencyViolation,
		},
		{
			name:        "депозит не найден",
			repoErr:     apperrors.ErrDepositNotFound,
			want:        "0",
			wantDisplay: "0",
			wantErr:     apperrors.ErrDepositNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository_mocks.NewMockDepositRepository(ctrl)
			repo.EXPECT().GetDeposit(ctx, "ex-1", "BTC").Return(tt.deposit, tt.repoErr).Times(2)

			svc := NewLedgerService(repo, price.NewStaticOracle(nil), nil, nil, nil)
			got, err := svc.GetAvailable(ctx, "ex-1", "btc")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assertDecimal(t, dec(tt.want), got)

			display, err := svc.DisplayAvailable(ctx, "ex-1", "BTC")
			if errors.Is(tt.wantErr, apperrors.ErrDepositNotFound) {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assertDecimal(t, dec(tt.wantDisplay), display)
		})
	}
}

func TestLedgerService_IncrementAndSync(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	e.fund(t, "ex-1", "USDT", "10")

	d, err := e.ledger.Increment(ctx, "ex-1", "usdt", models.FieldBalance, dec("5"))
	require.NoError(t, err)
	assertDecimal(t, dec("15"), d.Balance)

	_, err = e.ledger.Increment(ctx, "ex-1", "USDT", models.FieldHeld, dec("20"))
	assert.ErrorIs(t, err, apperrors.ErrConcurrencyConflict)

	_, err = e.ledger.Increment(ctx, "ex-1", "USDT", models.BalanceField("bogus"), dec("1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidField)

	_, err = e.ledger.Increment(ctx, "ex-1", "USDT", models.FieldHeld, dec("12"))
	require.NoError(t, err)

	_, err = e.ledger.SyncBalance(ctx, "ex-1", "USDT", dec("11"))
	assert.ErrorIs(t, err, apperrors.ErrConsistencyViolation)

	_, err = e.ledger.SyncBalance(ctx, "ex-1", "USDT", dec("-1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	synced, err := e.ledger.SyncBalance(ctx, "ex-1", "USDT", dec("30"))
	require.NoError(t, err)
	assertDecimal(t, dec("30"), synced.Balance)
	assertDecimal(t, dec("12"), synced.Held)

	available, err := e.ledger.GetAvailable(ctx, "ex-1", "USDT")
	require.NoError(t, err)
	assertDecimal(t, dec("18"), available)
}

func TestLedgerService_ListBalances(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	e.fund(t, "ex-1", "BTC", "0.01")
	e.fund(t, "ex-1", "DOGE", "100")
	require.NoError(t, e.ledger.SetActive(ctx, "ex-1", "DOGE", false))

	views, err := e.ledger.ListBalances(ctx, "ex-1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	btc, doge := views[0], views[1]
	assert.Equal(t, "BTC", btc.Currency)
	require.NotNil(t, btc.AvailableUSD)
	assertDecimal(t, dec("900"), *btc.AvailableUSD)

	assert.Equal(t, "DOGE", doge.Currency)
	assert.False(t, doge.IsActive)
	assert.Nil(t, doge.PriceUSD)
	assert.Nil(t, doge.AvailableUSD)
}
