package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/mocks/repository_mocks"
	"github.com/a2sh3r/holdengine/internal/mocks/service_mocks"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHoldService_Release_ExactLedgerMovement(t *testing.T) {
	tests := []struct {
		name         string
		deduct       bool
		wantBalance  string
		wantFee      string
		wantPlatform string
	}{
		{
			name:        "возврат не трогает баланс",
			deduct:      false,
			wantBalance: "100",
			wantFee:     "0",
		},
		{
			name:         "списание уменьшает баланс на сумму и комиссию",
			deduct:       true,
			wantBalance:  "60",
			wantFee:      "0",
			wantPlatform: "0.80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			e.fund(t, "ex-1", "USDT", "100")
			ticketID := uuid.New()

			holds, err := e.holds.CreateMultiCurrencyHold(context.Background(), ticketID, "ex-1", dec("40"))
			require.NoError(t, err)
			require.Len(t, holds, 1)
			h := holds[0]
			assertDecimal(t, dec("39.20"), h.AmountUnits)
			assertDecimal(t, dec("0.80"), h.ServerFeeCrypto)

			released, err := e.holds.Release(context.Background(), h.ID, tt.deduct)
			require.NoError(t, err)
			if tt.deduct {
				assert.Equal(t, models.HoldReleased, released.Status)
				assert.NotNil(t, released.ReleasedAt)
			} else {
				assert.Equal(t, models.HoldRefunded, released.Status)
				assert.NotNil(t, released.RefundedAt)
			}

			d := e.deposit(t, "ex-1", "USDT")
			assertDecimal(t, dec(tt.wantBalance), d.Balance)
			assertDecimal(t, decimal.Zero, d.Held)
			assertDecimal(t, dec(tt.wantFee), d.FeeReserved)

			if tt.wantPlatform != "" {
				assertDecimal(t, dec(tt.wantPlatform), e.deposit(t, platformAccount, "USDT").Balance)
			}
			assertConserved(t, e, "ex-1", platformAccount)
		})
	}
}

func TestHoldService_Release_DeductLeavesFeePendingWithoutCollector(t *testing.T) {
	e := newEngine(t)
	e.fund(t, "ex-1", "USDT", "100")
	holds := NewHoldService(e.store, e.store, e.allocator, nil, e.store, nil)
	ticketID := uuid.New()

	created, err := holds.CreateMultiCurrencyHold(context.Background(), ticketID, "ex-1", dec("40"))
	require.NoError(t, err)

	_, err = holds.Release(context.Background(), created[0].ID, true)
	require.NoError(t, err)

	d := e.deposit(t, "ex-1", "USDT")
	assertDecimal(t, dec("60.80"), d.Balance)
	assertDecimal(t, dec("0.80"), d.FeeReserved)

	pending, err := e.fees.PendingFees(context.Background(), "ex-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created[0].ID, pending[0].HoldID)
	assertDecimal(t, dec("0.80"), pending[0].AmountCrypto)

	canWithdraw, err := e.fees.CanWithdraw(context.Background(), "ex-1")
	require.NoError(t, err)
	assert.False(t, canWithdraw)

	result, err := e.fees.CollectPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Collected)
	assertDecimal(t, dec("0.80"), result.ByCurrency["USDT"])

	d = e.deposit(t, "ex-1", "USDT")
	assertDecimal(t, dec("60"), d.Balance)
	assertDecimal(t, decimal.Zero, d.FeeReserved)

	canWithdraw, err = e.fees.CanWithdraw(context.Background(), "ex-1")
	require.NoError(t, err)
	assert.True(t, canWithdraw)
}

func TestHoldService_ReleaseAllHoldsForTicket_Idempotent(t *testing.T) {
	e := newEngine(t)
	e.fund(t, "ex-1", "USDT", "50")
	e.fund(t, "ex-1", "BTC", "0.01")
	ticketID := uuid.New()

	holds, err := e.holds.CreateMultiCurrencyHold(context.Background(), ticketID, "ex-1", dec("120"))
	require.NoError(t, err)
	require.Len(t, holds, 2)

	first, err := e.holds.ReleaseAllHoldsForTicket(context.Background(), ticketID, false)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	usdt, btc := e.deposit(t, "ex-1", "USDT"), e.deposit(t, "ex-1", "BTC")

	second, err := e.holds.ReleaseAllHoldsForTicket(context.Background(), ticketID, false)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, usdt, e.deposit(t, "ex-1", "USDT"))
	assert.Equal(t, btc, e.deposit(t, "ex-1", "BTC"))

	assertDecimal(t, dec("50"), usdt.Available())
	assertDecimal(t, dec("0.01"), btc.Available())

	again, err := e.holds.RefundHold(context.Background(), holds[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.HoldRefunded, again.Status)
}

func TestHoldService_ReleaseAllHoldsForTicket_FollowsTicketPointers(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ticketID := uuid.New()
	legacy := uuid.New()
	listed := models.Hold{ID: uuid.New(), TicketID: ticketID, UserID: "ex-1", Currency: "USDT", Status: models.HoldActive}
	legacyHold := models.Hold{ID: legacy, TicketID: uuid.New(), UserID: "ex-1", Currency: "BTC", Status: models.HoldActive}
	dep := models.Deposit{UserID: "ex-1", Currency: "USDT", Balance: dec("10"), Held: decimal.Zero, FeeReserved: decimal.Zero}

	repo := repository_mocks.NewMockLedgerRepository(ctrl)
	tickets := repository_mocks.NewMockTicketRepository(ctrl)

	repo.EXPECT().ListHoldsByTicket(ctx, ticketID).Return([]models.Hold{listed}, nil)
	tickets.EXPECT().GetTicket(ctx, ticketID).Return(&models.Ticket{ID: ticketID, HoldID: &legacy, HoldIDs: []uuid.UUID{listed.ID}}, nil)
	repo.EXPECT().GetHold(ctx, legacy).Return(&legacyHold, nil)

	settledListed := listed
	settledListed.Status = models.HoldRefunded
	settledLegacy := legacyHold
	settledLegacy.Status = models.HoldRefunded
	repo.EXPECT().SettleHold(ctx, listed.ID, models.HoldRefunded).Return(&settledListed, true, nil)
	repo.EXPECT().SettleHold(ctx, legacy, models.HoldRefunded).Return(&settledLegacy, true, nil)
	repo.EXPECT().GetDeposit(ctx, "ex-1", gomock.Any()).Return(&dep, nil).Times(2)

	svc := NewHoldService(repo, tickets, nil, nil, nil, nil)
	released, err := svc.ReleaseAllHoldsForTicket(ctx, ticketID, false)
	require.NoError(t, err)
	assert.Len(t, released, 2)
}

func TestHoldService_Release_Errors(t *testing.T) {
	logger.Log = zap.NewNop()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	holdID := uuid.New()
	settled := &models.Hold{ID: holdID, UserID: "ex-1", Currency: "USDT", Status: models.HoldReleased, ServerFeeCrypto: dec("1")}

	tests := []struct {
		name    string
		mock    func(repo *repository_mocks.MockLedgerRepository, fees *service_mocks.MockFeeService)
		wantErr error
	}{
		{
			name: "нарушение инварианта при записи",
			mock: func(repo *repository_mocks.MockLedgerRepository, fees *service_mocks.MockFeeService) {
				repo.EXPECT().SettleHold(ctx, holdID, models.HoldReleased).
					Return(nil, false, apperrors.ErrConsistencyViolation)
			},
			wantErr: apperrors.ErrConsistencyViolation,
		},
		{
			name: "депозит после списания некорректен",
			mock: func(repo *repository_mocks.MockLedgerRepository, fees *service_mocks.MockFeeService) {
				repo.EXPECT().SettleHold(ctx, holdID, models.HoldReleased).Return(settled, true, nil)
				repo.EXPECT().GetDeposit(ctx, "ex-1", "USDT").Return(&models.Deposit{
					UserID: "ex-1", Currency: "USDT", Balance: dec("1"), Held: dec("5"), FeeReserved: decimal.Zero,
				}, nil)
			},
			wantErr: apperrors.ErrConsistencyViolation,
		},
		{
			name: "ошибка сбора комиссии не прерывает списание",
			mock: func(repo *repository_mocks.MockLedgerRepository, fees *service_mocks.MockFeeService) {
				repo.EXPECT().SettleHold(ctx, holdID, models.HoldReleased).Return(settled, true, nil)
				repo.EXPECT().GetDeposit(ctx, "ex-1", "USDT").Return(&models.Deposit{
					UserID: "ex-1", Currency: "USDT", Balance: dec("5"), Held: decimal.Zero, FeeReserved: dec("1"),
				}, nil)
				fees.EXPECT().CollectHoldFee(ctx, holdID).Return(nil, errors.New("db down"))
			},
		},
		{
			name: "повторное списание ничего не делает",
			mock: func(repo *repository_mocks.MockLedgerRepository, fees *service_mocks.MockFeeService) {
				repo.EXPECT().SettleHold(ctx, holdID, models.HoldReleased).Return(settled, false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository_mocks.NewMockLedgerRepository(ctrl)
			fees := service_mocks.NewMockFeeService(ctrl)
			tt.mock(repo, fees)

			svc := NewHoldService(repo, nil, nil, fees, nil, nil)
			_, err := svc.Release(ctx, holdID, true)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
