package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/price"
	"github.com/a2sh3r/holdengine/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const unitPrecision = 18

var smallestUnit = decimal.New(1, -unitPrecision)

// HoldAllocator spreads a USD amount over a user's deposits, smallest first.
type HoldAllocator struct {
	deposits repository.DepositRepository
	holds    repository.HoldRepository
	oracle   price.Oracle
	metrics  *metrics.Metrics
}

func NewHoldAllocator(deposits repository.DepositRepository, holds repository.HoldRepository,
	oracle price.Oracle, m *metrics.Metrics) *HoldAllocator {
	return &HoldAllocator{
		deposits: deposits,
		holds:    holds,
		oracle:   oracle,
		metrics:  m,
	}
}

type candidate struct {
	deposit      models.Deposit
	price        decimal.Decimal
	available    decimal.Decimal
	availableUSD decimal.Decimal
}

// pricedCandidates returns the user's active, non-empty, priceable deposits
// and the currencies that had funds but no price.
func (a *HoldAllocator) pricedCandidates(ctx context.Context, userID string) ([]candidate, []string, error) {
	deposits, err := a.deposits.ListDeposits(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var out []candidate
	var unpriced []string
	for _, d := range deposits {
		if !d.IsActive {
			continue
		}
		available := d.Available()
		if !available.IsPositive() {
			continue
		}
		p, err := a.oracle.PriceUSD(ctx, d.Currency)
		if err != nil {
			logger.Log.Warn("skipping unpriceable deposit",
				zap.String("user", userID), zap.String("currency", d.Currency), zap.Error(err))
			unpriced = append(unpriced, d.Currency)
			continue
		}
		out = append(out, candidate{
			deposit:      d,
			price:        p,
			available:    available,
			availableUSD: available.Mul(p),
		})
	}
	return out, unpriced, nil
}

// Allocate reserves amountUSD across the user's deposits. Either every slice
// is committed or none is.
func (a *HoldAllocator) Allocate(ctx context.Context, ticketID uuid.UUID, userID string, amountUSD decimal.Decimal) ([]models.Hold, error) {
	if !amountUSD.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, amountUSD)
	}
	start := time.Now()
	defer func() { a.metrics.ObserveAllocation(time.Since(start)) }()

	candidates, unpriced, err := a.pricedCandidates(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, c := range candidates {
		total = total.Add(c.availableUSD)
	}
	if total.LessThan(amountUSD) {
		a.metrics.IncAllocationFailure("insufficient")
		if len(unpriced) > 0 {
			return nil, fmt.Errorf("%w: need %s USD, have %s USD: %w (%v)",
				apperrors.ErrInsufficientFunds, amountUSD, total.Round(2), apperrors.ErrPriceUnavailable, unpriced)
		}
		return nil, fmt.Errorf("%w: need %s USD, have %s USD", apperrors.ErrInsufficientFunds, amountUSD, total.Round(2))
	}

	plan := planSlices(ticketID, userID, amountUSD, candidates)

	committed := make([]models.Hold, 0, len(plan))
	for i := range plan {
		if err := a.holds.ReserveHold(ctx, &plan[i]); err != nil {
			a.rollback(ctx, committed)
			a.metrics.IncAllocationFailure("reserve")
			if errors.Is(err, apperrors.ErrConcurrencyConflict) ||
				errors.Is(err, apperrors.ErrDepositInactive) ||
				errors.Is(err, apperrors.ErrDepositNotFound) {
				return nil, fmt.Errorf("%w: reserving %s: %w", apperrors.ErrInsufficientFunds, plan[i].Currency, err)
			}
			return nil, fmt.Errorf("failed to reserve %s hold: %w", plan[i].Currency, err)
		}
		committed = append(committed, plan[i])
		a.metrics.IncHoldCreated(plan[i].Currency)
	}

	logger.Log.Info("holds allocated",
		zap.String("ticket", ticketID.String()),
		zap.String("user", userID),
		zap.Stringer("amount_usd", amountUSD),
		zap.Int("slices", len(committed)))
	return committed, nil
}

func planSlices(ticketID uuid.UUID, userID string, amountUSD decimal.Decimal, candidates []candidate) []models.Hold {
	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].availableUSD.Equal(candidates[j].availableUSD) {
			return candidates[i].availableUSD.LessThan(candidates[j].availableUSD)
		}
		return candidates[i].deposit.Currency < candidates[j].deposit.Currency
	})

	now := time.Now().UTC()
	remaining := amountUSD
	var plan []models.Hold
	for _, c := range candidates {
		if !remaining.IsPositive() {
			break
		}

		var drawnUnits, drawnUSD decimal.Decimal
		if c.availableUSD.LessThanOrEqual(remaining) {
			drawnUnits = c.available
			drawnUSD = c.availableUSD
		} else {
			drawnUSD = remaining
			drawnUnits = decimal.Min(remaining.DivRound(c.price, unitPrecision), c.available)
			if drawnUnits.IsZero() {
				drawnUnits = decimal.Min(smallestUnit, c.available)
			}
		}
		remaining = remaining.Sub(drawnUSD)

		feeUSD := models.ServerFeeUSD(drawnUSD)
		feeUnits := decimal.Min(feeUSD.DivRound(c.price, unitPrecision), drawnUnits)

		plan = append(plan, models.Hold{
			ID:              uuid.New(),
			TicketID:        ticketID,
			UserID:          userID,
			Currency:        c.deposit.Currency,
			AmountUnits:     drawnUnits.Sub(feeUnits),
			AmountUSD:       drawnUSD.Sub(feeUSD),
			ServerFeeUSD:    feeUSD,
			ServerFeeCrypto: feeUnits,
			PriceAtHold:     c.price,
			Status:          models.HoldActive,
			CreatedAt:       now.Add(time.Duration(len(plan)) * time.Microsecond),
		})
	}
	return plan
}

func (a *HoldAllocator) rollback(ctx context.Context, committed []models.Hold) {
	ctx = context.WithoutCancel(ctx)
	for _, h := range committed {
		if _, _, err := a.holds.SettleHold(ctx, h.ID, models.HoldRefunded); err != nil {
			a.metrics.IncConsistencyViolation()
			logger.Log.Error("failed to roll back partial allocation",
				zap.String("hold", h.ID.String()), zap.String("currency", h.Currency), zap.Error(err))
		}
	}
}

// CoverableUSD is what the user could hold for ticketID if its current holds were refunded first.
func (a *HoldAllocator) CoverableUSD(ctx context.Context, userID string, ticketID uuid.UUID) (decimal.Decimal, error) {
	deposits, err := a.deposits.ListDeposits(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	holds, err := a.holds.ListHoldsByTicket(ctx, ticketID)
	if err != nil {
		return decimal.Zero, err
	}

	reserved := make(map[string]decimal.Decimal)
	for _, h := range holds {
		if h.Status != models.HoldActive || h.UserID != userID {
			continue
		}
		reserved[h.Currency] = reserved[h.Currency].Add(h.ReservedUnits())
	}

	total := decimal.Zero
	for _, d := range deposits {
		if !d.IsActive {
			continue
		}
		units := decimal.Max(d.Available(), decimal.Zero).Add(reserved[d.Currency])
		if !units.IsPositive() {
			continue
		}
		p, err := a.oracle.PriceUSD(ctx, d.Currency)
		if err != nil {
			continue
		}
		total = total.Add(units.Mul(p))
	}
	return total, nil
}
