package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/mocks/repository_mocks"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeeService_CollectPending(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ok := models.ServerFee{ID: uuid.New(), ExchangerID: "ex-1", Currency: "BTC", AmountCrypto: dec("0.0001"), AmountUSD: dec("9"), Status: models.FeePendingCollection}
	broken := models.ServerFee{ID: uuid.New(), ExchangerID: "ex-2", Currency: "USDT", AmountCrypto: dec("1"), AmountUSD: dec("1"), Status: models.FeePendingCollection}

	tests := []struct {
		name          string
		mock          func(repo *repository_mocks.MockFeeRepository)
		wantCollected int
		wantFailed    int
		wantUSD       string
		wantErr       bool
	}{
		{
			name: "успешный сбор и ошибка по одной комиссии",
			mock: func(repo *repository_mocks.MockFeeRepository) {
				repo.EXPECT().ListFees(ctx, models.FeeFilter{Status: models.FeePendingCollection}).
					Return([]models.ServerFee{ok, broken}, nil)
				collected := ok
				collected.Status = models.FeeCollected
				repo.EXPECT().CollectFee(ctx, ok.ID, platformAccount).Return(&collected, true, nil)
				repo.EXPECT().CollectFee(ctx, broken.ID, platformAccount).
					Return(nil, false, apperrors.ErrConsistencyViolation)
				repo.EXPECT().MarkFeeFailed(gomock.Any(), broken.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, reason string) error {
						assert.Contains(t, reason, "consistency")
						return nil
					})
			},
			wantCollected: 1,
			wantFailed:    1,
			wantUSD:       "9",
		},
		{
			name: "уже собранная комиссия не считается",
			mock: func(repo *repository_mocks.MockFeeRepository) {
				repo.EXPECT().ListFees(ctx, gomock.Any()).Return([]models.ServerFee{ok}, nil)
				collected := ok
				collected.Status = models.FeeCollected
				repo.EXPECT().CollectFee(ctx, ok.ID, platformAccount).Return(&collected, false, nil)
			},
			wantUSD: "0",
		},
		{
			name: "ошибка чтения списка",
			mock: func(repo *repository_mocks.MockFeeRepository) {
				repo.EXPECT().ListFees(ctx, gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository_mocks.NewMockFeeRepository(ctrl)
			tt.mock(repo)

			svc := NewFeeService(repo, platformAccount, nil, nil)
			result, err := svc.CollectPending(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCollected, result.Collected)
			assert.Equal(t, tt.wantFailed, result.Failed)
			assert.Len(t, result.Failures, tt.wantFailed)
			assertDecimal(t, dec(tt.wantUSD), result.CollectedUSD)
		})
	}
}

func TestFeeService_CollectHoldFee(t *testing.T) {
	e := newEngine(t)

	_, err := e.fees.CollectHoldFee(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrFeeNotFound)

	e.fund(t, "ex-1", "ETH", "1")
	holds, err := e.allocator.Allocate(context.Background(), uuid.New(), "ex-1", dec("300"))
	require.NoError(t, err)
	_, _, err = e.store.SettleHold(context.Background(), holds[0].ID, models.HoldReleased)
	require.NoError(t, err)

	fee, err := e.fees.CollectHoldFee(context.Background(), holds[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.FeeCollected, fee.Status)
	assertDecimal(t, dec("6"), fee.AmountUSD)
	assertDecimal(t, dec("0.002"), fee.AmountCrypto)

	again, err := e.fees.CollectHoldFee(context.Background(), holds[0].ID)
	require.NoError(t, err)
	assert.Equal(t, fee.ID, again.ID)
	assertDecimal(t, dec("0.002"), e.deposit(t, platformAccount, "ETH").Balance)

	d := e.deposit(t, "ex-1", "ETH")
	assertDecimal(t, dec("0.9"), d.Balance)
	assertDecimal(t, decimal.Zero, d.Committed())
}

func TestFeeService_CollectServerFeeAndSummary(t *testing.T) {
	e := newEngine(t)
	e.fund(t, "ex-1", "USDT", "100")
	e.fund(t, "ex-2", "USDT", "100")

	collectNone := NewHoldService(e.store, e.store, e.allocator, nil, e.store, nil)
	first, second := uuid.New(), uuid.New()
	for _, c := range []struct {
		ticket uuid.UUID
		user   string
	}{{first, "ex-1"}, {second, "ex-2"}} {
		_, err := collectNone.CreateMultiCurrencyHold(context.Background(), c.ticket, c.user, dec("50"))
		require.NoError(t, err)
		_, err = collectNone.ReleaseAllHoldsForTicket(context.Background(), c.ticket, true)
		require.NoError(t, err)
	}

	result, err := e.fees.CollectServerFee(context.Background(), first, "ex-1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Collected)
	assertDecimal(t, dec("1"), result.CollectedUSD)

	summary, err := e.fees.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "USDT", summary[0].Currency)
	assert.Equal(t, 1, summary[0].CollectedCount)
	assert.Equal(t, 1, summary[0].PendingCount)
	assertDecimal(t, dec("1"), summary[0].Collected)
	assertDecimal(t, dec("1"), summary[0].Pending)
}
