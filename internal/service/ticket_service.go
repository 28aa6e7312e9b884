package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TicketService interface {
	CreateTicket(ctx context.Context, in models.NewTicket) (*models.Ticket, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
	ListTickets(ctx context.Context, filter models.TicketFilter) ([]models.Ticket, error)
	AcceptTOS(ctx context.Context, id uuid.UUID, clientID string) (*models.Ticket, error)

	ClaimTicket(ctx context.Context, id uuid.UUID, exchangerID string) (*models.Ticket, error)
	ForceClaim(ctx context.Context, id uuid.UUID, exchangerID, adminID string) (*models.Ticket, error)
	MarkClientSent(ctx context.Context, id uuid.UUID, clientID string) (*models.Ticket, error)
	ConfirmReceipt(ctx context.Context, id uuid.UUID, exchangerID string) (*models.Ticket, error)
	CompleteTicket(ctx context.Context, id uuid.UUID, actorID string) (*models.Ticket, error)
	CancelTicket(ctx context.Context, id uuid.UUID, actorID, reason string) (*models.Ticket, error)
	CloseTicket(ctx context.Context, id uuid.UUID, actorID, reason string) (*models.Ticket, error)

	RequestAmountChange(ctx context.Context, id uuid.UUID, requesterID string, in models.AmountChangeInput) (*models.Ticket, error)
	ApproveAmountChange(ctx context.Context, id uuid.UUID, approverID string) (*models.Ticket, error)
	RequestFeeChange(ctx context.Context, id uuid.UUID, requesterID string, in models.FeeChangeInput) (*models.Ticket, error)
	ApproveFeeChange(ctx context.Context, id uuid.UUID, approverID string) (*models.Ticket, error)
	AdminChangeAmount(ctx context.Context, id uuid.UUID, adminID string, in models.AmountChangeInput) (*models.Ticket, error)
	AdminChangeFee(ctx context.Context, id uuid.UUID, adminID string, in models.FeeChangeInput) (*models.Ticket, error)
	RequestUnclaim(ctx context.Context, id uuid.UUID, requesterID string, in models.ReasonInput) (*models.Ticket, error)
	ApproveUnclaim(ctx context.Context, id uuid.UUID, approverID string) (*models.Ticket, error)

	ExpireTOS(ctx context.Context, now time.Time) (int, error)
	CloseStale(ctx context.Context, olderThan time.Duration) (int, error)
	RecoverStuck(ctx context.Context, olderThan time.Duration) (int, error)
}

type TicketOptions struct {
	TOSDeadline          time.Duration
	DefaultFeePercentage decimal.Decimal
}

type ticketService struct {
	repo    repository.TicketRepository
	holds   HoldService
	opts    TicketOptions
	metrics *metrics.Metrics
	audit   auditor
}

func NewTicketService(repo repository.TicketRepository, holds HoldService, opts TicketOptions,
	auditRepo repository.AuditRepository, m *metrics.Metrics) TicketService {
	return &ticketService{
		repo:    repo,
		holds:   holds,
		opts:    opts,
		metrics: m,
		audit:   auditor{repo: auditRepo},
	}
}

func statusPtr(s models.TicketStatus) *models.TicketStatus { return &s }

func stringPtr(s string) *string { return &s }

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func timePtr(t time.Time) *time.Time { return &t }

func boolPtr(b bool) *bool { return &b }

func authorize(t *models.Ticket, actorID string) error {
	if actorID == SystemActor || t.IsParticipant(actorID) {
		return nil
	}
	return fmt.Errorf("%w: %s on ticket %s", apperrors.ErrNotParticipant, actorID, t.ID)
}

// cas runs a conditional update and reports a lost condition as onConflict.
func (s *ticketService) cas(ctx context.Context, id uuid.UUID, cond models.TicketCondition,
	patch models.TicketPatch, onConflict error) (*models.Ticket, error) {
	t, err := s.repo.CompareAndSwap(ctx, id, cond, patch)
	if errors.Is(err, apperrors.ErrConcurrencyConflict) {
		return nil, fmt.Errorf("%w: %w", onConflict, err)
	}
	return t, err
}

func (s *ticketService) transitioned(ctx context.Context, t *models.Ticket, actorID, action string, details map[string]any) {
	s.metrics.IncTicketTransition(string(t.Status))
	if details == nil {
		details = map[string]any{}
	}
	details["status"] = string(t.Status)
	s.audit.record(ctx, actorID, action, "ticket", t.ID.String(), details)
	logger.Log.Info("ticket updated",
		zap.String("ticket", t.ID.String()),
		zap.String("action", action),
		zap.String("status", string(t.Status)),
		zap.String("actor", actorID))
}

func (s *ticketService) termsFor(amount, percentage decimal.Decimal) (fee, receiving decimal.Decimal, err error) {
	if !amount.IsPositive() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, amount)
	}
	if percentage.IsNegative() || percentage.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrInvalidFee, percentage)
	}
	fee, receiving = models.TicketFee(amount, percentage)
	if !receiving.IsPositive() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s does not cover the %s fee", apperrors.ErrInvalidAmount, amount, fee)
	}
	return fee, receiving, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, in models.NewTicket) (*models.Ticket, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: ticket without client", apperrors.ErrMalformedRecord)
	}
	pct := in.FeePercentage
	if pct.IsZero() {
		pct = s.opts.DefaultFeePercentage
	}
	fee, receiving, err := s.termsFor(in.AmountUSD, pct)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &models.Ticket{
		ID:              uuid.New(),
		ClientID:        in.ClientID,
		Status:          models.TicketOpen,
		AmountUSD:       in.AmountUSD,
		FeeAmount:       fee,
		FeePercentage:   pct,
		ReceivingAmount: receiving,
		SendMethod:      in.SendMethod,
		ReceiveMethod:   in.ReceiveMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.RequireTOS {
		t.Status = models.TicketAwaitingTOS
		t.TOSDeadline = timePtr(now.Add(s.opts.TOSDeadline))
	}

	if err := s.repo.CreateTicket(ctx, t); err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, in.ClientID, "ticket.created", map[string]any{
		"amount_usd":     t.AmountUSD.String(),
		"fee_percentage": t.FeePercentage.String(),
	})
	return t, nil
}

func (s *ticketService) GetTicket(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	return s.repo.GetTicket(ctx, id)
}

func (s *ticketService) ListTickets(ctx context.Context, filter models.TicketFilter) ([]models.Ticket, error) {
	return s.repo.ListTickets(ctx, filter)
}

func (s *ticketService) AcceptTOS(ctx context.Context, id uuid.UUID, clientID string) (*models.Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.ClientID != clientID {
		return nil, apperrors.ErrNotParticipant
	}
	t, err = s.cas(ctx, id,
		models.TicketCondition{Statuses: []models.TicketStatus{models.TicketAwaitingTOS}},
		models.TicketPatch{Status: statusPtr(models.TicketOpen), TOSAcceptedAt: timePtr(time.Now().UTC())},
		apperrors.ErrInvalidTransition)
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, clientID, "ticket.tos_accepted", nil)
	return t, nil
}

// ClaimTicket assigns the ticket and collateralises it. The claiming status
// keeps every other claimer out while holds are allocated.
func (s *ticketService) ClaimTicket(ctx context.Context, id uuid.UUID, exchangerID string) (*models.Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.ClientID == exchangerID {
		return nil, apperrors.ErrOwnTicket
	}

	locked, err := s.cas(ctx, id,
		models.TicketCondition{Statuses: models.ClaimableStatuses, Unassigned: true},
		models.TicketPatch{
			RememberStatus: true,
			Status:         statusPtr(models.TicketClaiming),
			AssignedTo:     stringPtr(exchangerID),
		},
		apperrors.ErrTicketUnavailable)
	if err != nil {
		return nil, err
	}
	owned := models.TicketCondition{Statuses: []models.TicketStatus{models.TicketClaiming}, AssignedTo: exchangerID}

	holds, err := s.holds.CreateMultiCurrencyHold(ctx, id, exchangerID, locked.AmountUSD)
	if err != nil {
		_, rerr := s.repo.CompareAndSwap(context.WithoutCancel(ctx), id, owned, models.TicketPatch{
			Status:         statusPtr(locked.PreviousStatus),
			PreviousStatus: statusPtr(""),
			AssignedTo:     stringPtr(""),
		})
		if rerr != nil {
			logger.Log.Error("failed to release claim after allocation failure",
				zap.String("ticket", id.String()), zap.Error(rerr))
		}
		return nil, err
	}

	claimed, err := s.cas(ctx, id, owned, models.TicketPatch{
		Status:         statusPtr(models.TicketClaimed),
		PreviousStatus: statusPtr(""),
		SetHolds:       models.HoldIDs(holds),
		ClaimedAt:      timePtr(time.Now().UTC()),
	}, apperrors.ErrTicketUnavailable)
	if err != nil {
		s.refund(ctx, holds)
		return nil, err
	}

	s.transitioned(ctx, claimed, exchangerID, "ticket.claimed", map[string]any{
		"hold_ids":   models.HoldIDs(holds),
		"amount_usd": claimed.AmountUSD.String(),
	})
	return claimed, nil
}

func (s *ticketService) refund(ctx context.Context, holds []models.Hold) {
	ctx = context.WithoutCancel(ctx)
	for _, h := range holds {
		if _, err := s.holds.RefundHold(ctx, h.ID); err != nil {
			logger.Log.Error("failed to refund orphaned hold", zap.String("hold", h.ID.String()), zap.Error(err))
		}
	}
}

func (s *ticketService) ForceClaim(ctx context.Context, id uuid.UUID, exchangerID, adminID string) (*models.Ticket, error) {
	t, err := s.cas(ctx, id,
		models.TicketCondition{Statuses: models.ClaimableStatuses, Unassigned: true},
		models.TicketPatch{
			Status:       statusPtr(models.TicketClaimed),
			AssignedTo:   stringPtr(exchangerID),
			ForceClaimed: boolPtr(true),
			ClaimedAt:    timePtr(time.Now().UTC()),
			SetHolds:     []uuid.UUID{},
		},
		apperrors.ErrTicketUnavailable)
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, adminID, "ticket.force_claimed", map[string]any{"exchanger_id": exchangerID})
	return t, nil
}

func (s *ticketService) MarkClientSent(ctx context.Context, id uuid.UUID, clientID string) (*models.Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.ClientID != clientID {
		return nil, apperrors.ErrNotParticipant
	}
	t, err = s.cas(ctx, id,
		models.TicketCondition{Statuses: []models.TicketStatus{models.TicketClaimed}},
		models.TicketPatch{Status: statusPtr(models.TicketClientSent)},
		apperrors.ErrInvalidTransition)
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, clientID, "ticket.client_sent", nil)
	return t, nil
}

func (s *ticketService) ConfirmReceipt(ctx context.Context, id uuid.UUID, exchangerID string) (*models.Ticket, error) {
	t, err := s.cas(ctx, id,
		models.TicketCondition{Statuses: []models.TicketStatus{models.TicketClientSent}, AssignedTo: exchangerID},
		models.TicketPatch{Status: statusPtr(models.TicketPayoutPending)},
		apperrors.ErrInvalidTransition)
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, exchangerID, "ticket.receipt_confirmed", nil)
	return t, nil
}

// withSettlingLock parks the ticket in settling while fn moves funds. When fn
// fails the previous status is restored together with whatever hold pointers
// fn returned; otherwise fn's patch is applied and the lock is dropped.
func (s *ticketService) withSettlingLock(ctx context.Context, id uuid.UUID, cond models.TicketCondition,
	fn func(locked *models.Ticket) (models.TicketPatch, error)) (*models.Ticket, error) {
	locked, err := s.cas(ctx, id, cond, models.TicketPatch{
		RememberStatus: true,
		Status:         statusPtr(models.TicketSettling),
	}, apperrors.ErrInvalidTransition)
	if err != nil {
		return nil, err
	}
	settling := models.TicketCondition{Statuses: []models.TicketStatus{models.TicketSettling}}

	patch, err := fn(locked)
	if err != nil {
		patch.Status = statusPtr(locked.PreviousStatus)
		patch.PreviousStatus = statusPtr("")
		if _, rerr := s.repo.CompareAndSwap(context.WithoutCancel(ctx), id, settling, patch); rerr != nil {
			logger.Log.Error("failed to unlock ticket after settlement error",
				zap.String("ticket", id.String()), zap.Error(rerr))
		}
		return nil, err
	}

	if patch.Status == nil {
		patch.Status = statusPtr(locked.PreviousStatus)
	}
	patch.PreviousStatus = statusPtr("")
	t, err := s.repo.CompareAndSwap(context.WithoutCancel(ctx), id, settling, patch)
	if err != nil {
		logger.Log.Error("failed to finish settled ticket", zap.String("ticket", id.String()), zap.Error(err))
		return nil, err
	}
	return t, nil
}

// survivingHolds builds the unlock patch after a release that failed midway:
// hold pointers keep only the holds that are still active. Losing any of them
// leaves the ticket under-collateralised, which is reported as a consistency
// violation.
func (s *ticketService) survivingHolds(ctx context.Context, locked *models.Ticket, cause error) models.TicketPatch {
	holds, err := s.holds.GetHoldsByTicket(context.WithoutCancel(ctx), locked.ID)
	if err != nil {
		logger.Log.Error("failed to inspect holds after release error",
			zap.String("ticket", locked.ID.String()), zap.NamedError("release_error", cause), zap.Error(err))
		return models.TicketPatch{}
	}
	active := make(map[uuid.UUID]bool, len(holds))
	for _, h := range holds {
		if h.Status == models.HoldActive {
			active[h.ID] = true
		}
	}
	pointed := locked.AllHoldIDs()
	kept := make([]uuid.UUID, 0, len(pointed))
	for _, id := range pointed {
		if active[id] {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(pointed) {
		return models.TicketPatch{}
	}

	s.metrics.IncConsistencyViolation()
	logger.Log.Error("ticket partly uncollateralised after failed hold release",
		zap.String("ticket", locked.ID.String()),
		zap.Int("settled_holds", len(pointed)-len(kept)), zap.Error(cause))
	if len(kept) == 0 {
		return models.TicketPatch{ClearHolds: true}
	}
	return models.TicketPatch{SetHolds: kept}
}

func (s *ticketService) CompleteTicket(ctx context.Context, id uuid.UUID, actorID string) (*models.Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(t, actorID); err != nil {
		return nil, err
	}

	t, err = s.withSettlingLock(ctx, id,
		models.TicketCondition{Statuses: models.CompletableStatuses},
		func(locked *models.Ticket) (models.TicketPatch, error) {
			if _, err := s.holds.ReleaseAllHoldsForTicket(ctx, id, true); err != nil {
				return s.survivingHolds(ctx, locked, err), err
			}
			return models.TicketPatch{
				Status:                   statusPtr(models.TicketCompleted),
				CompletedAt:              timePtr(time.Now().UTC()),
				ClearPendingAmountChange: true,
				ClearPendingFeeChange:    true,
				ClearPendingUnclaim:      true,
			}, nil
		})
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, actorID, "ticket.completed", nil)
	return t, nil
}

func (s *ticketService) CancelTicket(ctx context.Context, id uuid.UUID, actorID, reason string) (*models.Ticket, error) {
	return s.end(ctx, id, actorID, models.TicketCancelled, reason)
}

func (s *ticketService) CloseTicket(ctx context.Context, id uuid.UUID, actorID, reason string) (*models.Ticket, error) {
	return s.end(ctx, id, actorID, models.TicketClosed, reason)
}

func (s *ticketService) end(ctx context.Context, id uuid.UUID, actorID string, status models.TicketStatus, reason string) (*models.Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(t, actorID); err != nil {
		return nil, err
	}

	t, err = s.withSettlingLock(ctx, id,
		models.TicketCondition{Statuses: models.CancellableStatuses},
		func(locked *models.Ticket) (models.TicketPatch, error) {
			if _, err := s.holds.ReleaseAllHoldsForTicket(ctx, id, false); err != nil {
				return s.survivingHolds(ctx, locked, err), err
			}
			return models.TicketPatch{
				Status:                   statusPtr(status),
				ClosedAt:                 timePtr(time.Now().UTC()),
				CloseReason:              stringPtr(reason),
				ClearPendingAmountChange: true,
				ClearPendingFeeChange:    true,
				ClearPendingUnclaim:      true,
			}, nil
		})
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, actorID, "ticket."+string(status), map[string]any{"reason": reason})
	return t, nil
}

// changeTerms applies a new amount and fee percentage. A collateralised
// ticket gets its holds refunded and re-allocated at current prices under the
// settling lock, even when only the fee moved.
func (s *ticketService) changeTerms(ctx context.Context, t *models.Ticket, amount, pct decimal.Decimal,
	actorID, action string, extra models.TicketPatch) (*models.Ticket, error) {
	fee, receiving, err := s.termsFor(amount, pct)
	if err != nil {
		return nil, err
	}
	patch := extra
	patch.AmountUSD = decimalPtr(amount)
	patch.FeeAmount = decimalPtr(fee)
	patch.FeePercentage = decimalPtr(pct)
	patch.ReceivingAmount = decimalPtr(receiving)

	details := map[string]any{
		"old_amount":         t.AmountUSD.String(),
		"new_amount":         amount.String(),
		"old_fee_percentage": t.FeePercentage.String(),
		"new_fee_percentage": pct.String(),
	}

	collateralised := t.AssignedTo != "" && !t.ForceClaimed && t.Status.In(models.CompletableStatuses)
	if !collateralised {
		updated, err := s.cas(ctx, t.ID,
			models.TicketCondition{Statuses: []models.TicketStatus{t.Status}, AssignedTo: t.AssignedTo},
			patch, apperrors.ErrInvalidTransition)
		if err != nil {
			return nil, err
		}
		s.transitioned(ctx, updated, actorID, action, details)
		return updated, nil
	}

	exchangerID := t.AssignedTo
	updated, err := s.withSettlingLock(ctx, t.ID,
		models.TicketCondition{Statuses: []models.TicketStatus{t.Status}, AssignedTo: exchangerID},
		func(locked *models.Ticket) (models.TicketPatch, error) {
			coverable, err := s.holds.CoverableUSD(ctx, exchangerID, t.ID)
			if err != nil {
				return models.TicketPatch{}, err
			}
			if coverable.LessThan(amount) {
				return models.TicketPatch{}, fmt.Errorf("%w: exchanger can cover %s USD of %s",
					apperrors.ErrInsufficientFunds, coverable.Round(2), amount)
			}
			if _, err := s.holds.ReleaseAllHoldsForTicket(ctx, t.ID, false); err != nil {
				return s.survivingHolds(ctx, locked, err), err
			}

			holds, err := s.holds.CreateMultiCurrencyHold(ctx, t.ID, exchangerID, amount)
			if err == nil {
				p := patch
				p.SetHolds = models.HoldIDs(holds)
				return p, nil
			}

			restored, rerr := s.holds.CreateMultiCurrencyHold(context.WithoutCancel(ctx), t.ID, exchangerID, locked.AmountUSD)
			if rerr != nil {
				s.metrics.IncConsistencyViolation()
				logger.Log.Error("ticket left without collateral after failed amount change",
					zap.String("ticket", t.ID.String()), zap.Error(err), zap.NamedError("restore_error", rerr))
				return models.TicketPatch{ClearHolds: true}, err
			}
			return models.TicketPatch{SetHolds: models.HoldIDs(restored)}, err
		})
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, updated, actorID, action, details)
	return updated, nil
}

func (s *ticketService) changeable(ctx context.Context, id uuid.UUID, actorID string) (*models.Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(t, actorID); err != nil {
		return nil, err
	}
	if t.Status.IsTerminal() || t.Status == models.TicketClaiming || t.Status == models.TicketSettling {
		return nil, fmt.Errorf("%w: ticket is %s", apperrors.ErrInvalidTransition, t.Status)
	}
	return t, nil
}

func (s *ticketService) RequestAmountChange(ctx context.Context, id uuid.UUID, requesterID string, in models.AmountChangeInput) (*models.Ticket, error) {
	t, err := s.changeable(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	fee, receiving, err := s.termsFor(in.Amount, t.FeePercentage)
	if err != nil {
		return nil, err
	}
	if t.AssignedTo == "" {
		return s.changeTerms(ctx, t, in.Amount, t.FeePercentage, requesterID, "ticket.amount_changed",
			models.TicketPatch{ClearPendingAmountChange: true})
	}

	t, err = s.cas(ctx, id,
		models.TicketCondition{Statuses: []models.TicketStatus{t.Status}, AssignedTo: t.AssignedTo},
		models.TicketPatch{SetPendingAmountChange: &models.AmountChangeRequest{
			RequesterID:  requesterID,
			OldAmount:    t.AmountUSD,
			NewAmount:    in.Amount,
			NewFee:       fee,
			NewReceiving: receiving,
			Reason:       in.Reason,
			RequestedAt:  time.Now().UTC(),
		}},
		apperrors.ErrInvalidTransition)
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, requesterID, "ticket.amount_change_requested", map[string]any{"new_amount": in.Amount.String()})
	return t, nil
}

func (s *ticketService) ApproveAmountChange(ctx context.Context, id uuid.UUID, approverID string) (*models.Ticket, error) {
	t, err := s.changeable(ctx, id, approverID)
	if err != nil {
		return nil, err
	}
	req := t.PendingAmountChange
	if req == nil {
		return nil, apperrors.ErrNoPendingRequest
	}
	if req.RequesterID == approverID {
		return nil, apperrors.ErrSelfApproval
	}
	return s.changeTerms(ctx, t, req.NewAmount, t.FeePercentage, approverID, "ticket.amount_changed",
		models.TicketPatch{ClearPendingAmountChange: true})
}

func (s *ticketService) RequestFeeChange(ctx context.Context, id uuid.UUID, requesterID string, in models.FeeChangeInput) (*models.Ticket, error) {
	t, err := s.changeable(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	fee, receiving, err := s.termsFor(t.AmountUSD, in.FeePercentage)
	if err != nil {
		return nil, err
	}
	if t.AssignedTo == "" {
		return s.changeTerms(ctx, t, t.AmountUSD, in.FeePercentage, requesterID, "ticket.fee_changed",
			models.TicketPatch{ClearPendingFeeChange: true})
	}

	t, err = s.cas(ctx, id,
		models.TicketCondition{Statuses: []models.TicketStatus{t.Status}, AssignedTo: t.AssignedTo},
		models.TicketPatch{SetPendingFeeChange: &models.FeeChangeRequest{
			RequesterID:   requesterID,
			OldPercentage: t.FeePercentage,
			NewPercentage: in.FeePercentage,
			NewFee:        fee,
			NewReceiving:  receiving,
			Reason:        in.Reason,
			RequestedAt:   time.Now().UTC(),
		}},
		apperrors.ErrInvalidTransition)
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, requesterID, "ticket.fee_change_requested", map[string]any{"new_fee_percentage": in.FeePercentage.String()})
	return t, nil
}

func (s *ticketService) ApproveFeeChange(ctx context.Context, id uuid.UUID, approverID string) (*models.Ticket, error) {
	t, err := s.changeable(ctx, id, approverID)
	if err != nil {
		return nil, err
	}
	req := t.PendingFeeChange
	if req == nil {
		return nil, apperrors.ErrNoPendingRequest
	}
	if req.RequesterID == approverID {
		return nil, apperrors.ErrSelfApproval
	}
	return s.changeTerms(ctx, t, t.AmountUSD, req.NewPercentage, approverID, "ticket.fee_changed",
		models.TicketPatch{ClearPendingFeeChange: true})
}

func (s *ticketService) AdminChangeAmount(ctx context.Context, id uuid.UUID, adminID string, in models.AmountChangeInput) (*models.Ticket, error) {
	t, err := s.changeable(ctx, id, SystemActor)
	if err != nil {
		return nil, err
	}
	return s.changeTerms(ctx, t, in.Amount, t.FeePercentage, adminID, "ticket.amount_changed_by_admin",
		models.TicketPatch{ClearPendingAmountChange: true})
}

func (s *ticketService) AdminChangeFee(ctx context.Context, id uuid.UUID, adminID string, in models.FeeChangeInput) (*models.Ticket, error) {
	t, err := s.changeable(ctx, id, SystemActor)
	if err != nil {
		return nil, err
	}
	return s.changeTerms(ctx, t, t.AmountUSD, in.FeePercentage, adminID, "ticket.fee_changed_by_admin",
		models.TicketPatch{ClearPendingFeeChange: true})
}

func (s *ticketService) RequestUnclaim(ctx context.Context, id uuid.UUID, requesterID string, in models.ReasonInput) (*models.Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(t, requesterID); err != nil {
		return nil, err
	}
	t, err = s.cas(ctx, id,
		models.TicketCondition{Statuses: models.UnclaimableStatuses, AssignedTo: t.AssignedTo},
		models.TicketPatch{SetPendingUnclaim: &models.UnclaimRequest{
			RequesterID: requesterID,
			Reason:      in.Reason,
			RequestedAt: time.Now().UTC(),
		}},
		apperrors.ErrInvalidTransition)
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, requesterID, "ticket.unclaim_requested", map[string]any{"reason": in.Reason})
	return t, nil
}

func (s *ticketService) ApproveUnclaim(ctx context.Context, id uuid.UUID, approverID string) (*models.Ticket, error) {
	t, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(t, approverID); err != nil {
		return nil, err
	}
	if t.PendingUnclaim == nil {
		return nil, apperrors.ErrNoPendingRequest
	}
	if t.PendingUnclaim.RequesterID == approverID {
		return nil, apperrors.ErrSelfApproval
	}

	previous := t.AssignedTo
	t, err = s.withSettlingLock(ctx, id,
		models.TicketCondition{Statuses: models.UnclaimableStatuses, AssignedTo: previous},
		func(locked *models.Ticket) (models.TicketPatch, error) {
			if _, err := s.holds.ReleaseAllHoldsForTicket(ctx, id, false); err != nil {
				return s.survivingHolds(ctx, locked, err), err
			}
			return unassignPatch(models.TicketOpen), nil
		})
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, t, approverID, "ticket.unclaimed", map[string]any{"exchanger_id": previous})
	return t, nil
}

func unassignPatch(status models.TicketStatus) models.TicketPatch {
	return models.TicketPatch{
		Status:                   statusPtr(status),
		AssignedTo:               stringPtr(""),
		ForceClaimed:             boolPtr(false),
		ClearHolds:               true,
		ClearPendingAmountChange: true,
		ClearPendingFeeChange:    true,
		ClearPendingUnclaim:      true,
	}
}

// ExpireTOS cancels tickets whose client never accepted the terms in time.
func (s *ticketService) ExpireTOS(ctx context.Context, now time.Time) (int, error) {
	tickets, err := s.repo.ListTickets(ctx, models.TicketFilter{
		Statuses:  []models.TicketStatus{models.TicketAwaitingTOS},
		TOSBefore: now,
	})
	if err != nil {
		return 0, err
	}
	return s.endAll(ctx, tickets, models.TicketCancelled, "tos_timeout"), nil
}

func (s *ticketService) CloseStale(ctx context.Context, olderThan time.Duration) (int, error) {
	tickets, err := s.repo.ListTickets(ctx, models.TicketFilter{
		Statuses:      models.ClaimableStatuses,
		CreatedBefore: time.Now().UTC().Add(-olderThan),
	})
	if err != nil {
		return 0, err
	}
	unassigned := tickets[:0]
	for _, t := range tickets {
		if t.AssignedTo == "" {
			unassigned = append(unassigned, t)
		}
	}
	return s.endAll(ctx, unassigned, models.TicketClosed, "auto_closed_stale"), nil
}

func (s *ticketService) endAll(ctx context.Context, tickets []models.Ticket, status models.TicketStatus, reason string) int {
	done := 0
	for _, t := range tickets {
		if _, err := s.end(ctx, t.ID, SystemActor, status, reason); err != nil {
			logger.Log.Warn("sweep could not end ticket",
				zap.String("ticket", t.ID.String()), zap.String("reason", reason), zap.Error(err))
			continue
		}
		done++
	}
	return done
}

// RecoverStuck rolls back tickets left in a lock status by a crashed operation.
func (s *ticketService) RecoverStuck(ctx context.Context, olderThan time.Duration) (int, error) {
	tickets, err := s.repo.ListTickets(ctx, models.TicketFilter{
		Statuses:      []models.TicketStatus{models.TicketClaiming, models.TicketSettling},
		UpdatedBefore: time.Now().UTC().Add(-olderThan),
	})
	if err != nil {
		return 0, err
	}

	recovered := 0
	for _, t := range tickets {
		var patch models.TicketPatch
		switch t.Status {
		case models.TicketClaiming:
			if _, err := s.holds.ReleaseAllHoldsForTicket(ctx, t.ID, false); err != nil {
				logger.Log.Error("failed to refund holds of stuck claim", zap.String("ticket", t.ID.String()), zap.Error(err))
				continue
			}
			restore := t.PreviousStatus
			if restore == "" {
				restore = models.TicketOpen
			}
			patch = unassignPatch(restore)
			patch.ClearPendingAmountChange = false
			patch.ClearPendingFeeChange = false
		case models.TicketSettling:
			restore := t.PreviousStatus
			if restore == "" {
				restore = models.TicketClaimed
				if t.AssignedTo == "" {
					restore = models.TicketOpen
				}
			}
			patch = models.TicketPatch{Status: statusPtr(restore)}
		}
		patch.PreviousStatus = statusPtr("")

		updated, err := s.repo.CompareAndSwap(ctx, t.ID,
			models.TicketCondition{Statuses: []models.TicketStatus{t.Status}}, patch)
		if err != nil {
			logger.Log.Warn("failed to recover stuck ticket", zap.String("ticket", t.ID.String()), zap.Error(err))
			continue
		}
		recovered++
		s.transitioned(ctx, updated, SystemActor, "ticket.recovered", map[string]any{"stuck_status": string(t.Status)})
	}
	return recovered, nil
}
