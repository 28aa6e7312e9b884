package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/mocks/service_mocks"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

func TestTicketSweeper_sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()
	ctx := context.Background()
	opts := SweeperOptions{Interval: time.Minute, StaleTicketAge: 12 * time.Hour, StuckTicketAge: 15 * time.Minute}

	tests := []struct {
		name string
		mock func(tickets *service_mocks.MockTicketService, fees *service_mocks.MockFeeService)
	}{
		{
			name: "все задачи выполняются",
			mock: func(tickets *service_mocks.MockTicketService, fees *service_mocks.MockFeeService) {
				tickets.EXPECT().ExpireTOS(ctx, gomock.Any()).Return(2, nil)
				tickets.EXPECT().CloseStale(ctx, 12*time.Hour).Return(1, nil)
				tickets.EXPECT().RecoverStuck(ctx, 15*time.Minute).Return(0, nil)
				fees.EXPECT().CollectPending(ctx).Return(&models.CollectionResult{Collected: 3}, nil)
			},
		},
		{
			name: "ошибка одной задачи не останавливает остальные",
			mock: func(tickets *service_mocks.MockTicketService, fees *service_mocks.MockFeeService) {
				tickets.EXPECT().ExpireTOS(ctx, gomock.Any()).Return(0, errors.New("db error"))
				tickets.EXPECT().CloseStale(ctx, gomock.Any()).Return(0, errors.New("db error"))
				tickets.EXPECT().RecoverStuck(ctx, gomock.Any()).Return(1, nil)
				fees.EXPECT().CollectPending(ctx).Return(nil, errors.New("db error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tickets := service_mocks.NewMockTicketService(ctrl)
			fees := service_mocks.NewMockFeeService(ctrl)
			tt.mock(tickets, fees)

			NewTicketSweeper(tickets, fees, opts).sweep(ctx)
		})
	}
}

func TestTicketSweeper_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger.Log = zap.NewNop()
	tickets := service_mocks.NewMockTicketService(ctrl)
	fees := service_mocks.NewMockFeeService(ctrl)
	tickets.EXPECT().ExpireTOS(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	tickets.EXPECT().CloseStale(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	tickets.EXPECT().RecoverStuck(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	fees.EXPECT().CollectPending(gomock.Any()).Return(&models.CollectionResult{}, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		NewTicketSweeper(tickets, fees, SweeperOptions{Interval: 10 * time.Millisecond}).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
