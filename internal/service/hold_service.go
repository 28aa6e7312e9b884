package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type HoldService interface {
	CreateMultiCurrencyHold(ctx context.Context, ticketID uuid.UUID, userID string, amountUSD decimal.Decimal) ([]models.Hold, error)
	// Release settles an active hold. deductFunds moves the funds out of the
	// deposit and queues the server fee; otherwise everything is refunded.
	Release(ctx context.Context, holdID uuid.UUID, deductFunds bool) (*models.Hold, error)
	RefundHold(ctx context.Context, holdID uuid.UUID) (*models.Hold, error)
	ReleaseAllHoldsForTicket(ctx context.Context, ticketID uuid.UUID, deductFunds bool) ([]models.Hold, error)
	GetHold(ctx context.Context, holdID uuid.UUID) (*models.Hold, error)
	GetHoldsByTicket(ctx context.Context, ticketID uuid.UUID) ([]models.Hold, error)
	GetActiveHolds(ctx context.Context, userID string) ([]models.Hold, error)
	CoverableUSD(ctx context.Context, userID string, ticketID uuid.UUID) (decimal.Decimal, error)
}

type ticketReader interface {
	GetTicket(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
}

type holdService struct {
	repo      repository.LedgerRepository
	tickets   ticketReader
	allocator *HoldAllocator
	fees      FeeService
	metrics   *metrics.Metrics
	audit     auditor
}

func NewHoldService(repo repository.LedgerRepository, tickets ticketReader, allocator *HoldAllocator,
	fees FeeService, auditRepo repository.AuditRepository, m *metrics.Metrics) HoldService {
	return &holdService{
		repo:      repo,
		tickets:   tickets,
		allocator: allocator,
		fees:      fees,
		metrics:   m,
		audit:     auditor{repo: auditRepo},
	}
}

func (s *holdService) CreateMultiCurrencyHold(ctx context.Context, ticketID uuid.UUID, userID string, amountUSD decimal.Decimal) ([]models.Hold, error) {
	holds, err := s.allocator.Allocate(ctx, ticketID, userID, amountUSD)
	if err != nil {
		return nil, err
	}

	currencies := make([]string, 0, len(holds))
	for _, h := range holds {
		currencies = append(currencies, h.Currency)
	}
	s.audit.record(ctx, userID, "hold.created_multi", "ticket", ticketID.String(), map[string]any{
		"amount_usd": amountUSD.String(),
		"hold_ids":   models.HoldIDs(holds),
		"currencies": currencies,
	})
	return holds, nil
}

func (s *holdService) Release(ctx context.Context, holdID uuid.UUID, deductFunds bool) (*models.Hold, error) {
	status := models.HoldRefunded
	if deductFunds {
		status = models.HoldReleased
	}

	h, changed, err := s.repo.SettleHold(ctx, holdID, status)
	if err != nil {
		return nil, reportViolation(s.metrics, err, zap.String("hold", holdID.String()), zap.String("status", string(status)))
	}
	if !changed {
		logger.Log.Debug("hold already settled", zap.String("hold", holdID.String()), zap.String("status", string(h.Status)))
		return h, nil
	}
	s.metrics.IncHoldSettled(string(status))

	action := "hold.refunded"
	if deductFunds {
		action = "hold.released"
	}
	s.audit.record(ctx, h.UserID, action, "hold", h.ID.String(), map[string]any{
		"ticket_id":         h.TicketID.String(),
		"currency":          h.Currency,
		"amount_units":      h.AmountUnits.String(),
		"server_fee_crypto": h.ServerFeeCrypto.String(),
	})

	if err := s.checkDeposit(ctx, h); err != nil {
		return h, err
	}

	if deductFunds && h.ServerFeeCrypto.IsPositive() && s.fees != nil {
		if _, err := s.fees.CollectHoldFee(ctx, h.ID); err != nil {
			logger.Log.Warn("server fee left pending", zap.String("hold", h.ID.String()), zap.Error(err))
		}
	}
	return h, nil
}

func (s *holdService) checkDeposit(ctx context.Context, h *models.Hold) error {
	d, err := s.repo.GetDeposit(ctx, h.UserID, h.Currency)
	if err != nil {
		return fmt.Errorf("failed to re-read deposit after settling hold %s: %w", h.ID, err)
	}
	return reportViolation(s.metrics, d.Validate(),
		zap.String("hold", h.ID.String()), zap.String("user", h.UserID), zap.String("currency", h.Currency))
}

func (s *holdService) RefundHold(ctx context.Context, holdID uuid.UUID) (*models.Hold, error) {
	return s.Release(ctx, holdID, false)
}

// ReleaseAllHoldsForTicket settles every active hold reachable from the ticket,
// continuing past individual failures.
func (s *holdService) ReleaseAllHoldsForTicket(ctx context.Context, ticketID uuid.UUID, deductFunds bool) ([]models.Hold, error) {
	holds, err := s.repo.ListHoldsByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(holds))
	var active []uuid.UUID
	for _, h := range holds {
		seen[h.ID] = struct{}{}
		if h.Status == models.HoldActive {
			active = append(active, h.ID)
		}
	}

	if s.tickets != nil {
		t, err := s.tickets.GetTicket(ctx, ticketID)
		switch {
		case err == nil:
			for _, id := range t.AllHoldIDs() {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				h, err := s.repo.GetHold(ctx, id)
				if err != nil {
					logger.Log.Warn("ticket points at unknown hold", zap.String("ticket", ticketID.String()), zap.String("hold", id.String()), zap.Error(err))
					continue
				}
				if h.Status == models.HoldActive {
					active = append(active, id)
				}
			}
		case !errors.Is(err, apperrors.ErrTicketNotFound):
			return nil, err
		}
	}

	var released []models.Hold
	var errs []error
	for _, id := range active {
		h, err := s.Release(ctx, id, deductFunds)
		if h != nil && err == nil {
			released = append(released, *h)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("hold %s: %w", id, err))
		}
	}
	return released, errors.Join(errs...)
}

func (s *holdService) GetHold(ctx context.Context, holdID uuid.UUID) (*models.Hold, error) {
	return s.repo.GetHold(ctx, holdID)
}

func (s *holdService) GetHoldsByTicket(ctx context.Context, ticketID uuid.UUID) ([]models.Hold, error) {
	return s.repo.ListHoldsByTicket(ctx, ticketID)
}

func (s *holdService) GetActiveHolds(ctx context.Context, userID string) ([]models.Hold, error) {
	return s.repo.ListActiveHoldsByUser(ctx, userID)
}

func (s *holdService) CoverableUSD(ctx context.Context, userID string, ticketID uuid.UUID) (decimal.Decimal, error) {
	return s.allocator.CoverableUSD(ctx, userID, ticketID)
}
