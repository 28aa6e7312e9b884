package service

import (
	"context"
	"time"

	"github.com/a2sh3r/holdengine/internal/logger"
	"go.uber.org/zap"
)

type SweeperOptions struct {
	Interval       time.Duration
	StaleTicketAge time.Duration
	StuckTicketAge time.Duration
}

type TicketSweeper struct {
	tickets TicketService
	fees    FeeService
	opts    SweeperOptions
}

func NewTicketSweeper(tickets TicketService, fees FeeService, opts SweeperOptions) *TicketSweeper {
	return &TicketSweeper{
		tickets: tickets,
		fees:    fees,
		opts:    opts,
	}
}

func (w *TicketSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *TicketSweeper) sweep(ctx context.Context) {
	if n, err := w.tickets.ExpireTOS(ctx, time.Now().UTC()); err != nil {
		logger.Log.Error("failed to expire tos tickets", zap.Error(err))
	} else if n > 0 {
		logger.Log.Info("tos tickets expired", zap.Int("count", n))
	}

	if n, err := w.tickets.CloseStale(ctx, w.opts.StaleTicketAge); err != nil {
		logger.Log.Error("failed to close stale tickets", zap.Error(err))
	} else if n > 0 {
		logger.Log.Info("stale tickets closed", zap.Int("count", n))
	}

	if n, err := w.tickets.RecoverStuck(ctx, w.opts.StuckTicketAge); err != nil {
		logger.Log.Error("failed to recover stuck tickets", zap.Error(err))
	} else if n > 0 {
		logger.Log.Warn("stuck tickets recovered", zap.Int("count", n))
	}

	if _, err := w.fees.CollectPending(ctx); err != nil {
		logger.Log.Error("failed to collect pending server fees", zap.Error(err))
	}
}
