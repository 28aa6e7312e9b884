package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type FeeService interface {
	CollectHoldFee(ctx context.Context, holdID uuid.UUID) (*models.ServerFee, error)
	CollectServerFee(ctx context.Context, ticketID uuid.UUID, exchangerID string) (*models.CollectionResult, error)
	CollectPending(ctx context.Context) (*models.CollectionResult, error)
	PendingFees(ctx context.Context, exchangerID string) ([]models.ServerFee, error)
	CanWithdraw(ctx context.Context, exchangerID string) (bool, error)
	Summary(ctx context.Context) ([]models.FeeSummary, error)
}

type feeService struct {
	repo            repository.FeeRepository
	platformAccount string
	metrics         *metrics.Metrics
	audit           auditor
}

func NewFeeService(repo repository.FeeRepository, platformAccount string,
	auditRepo repository.AuditRepository, m *metrics.Metrics) FeeService {
	return &feeService{
		repo:            repo,
		platformAccount: platformAccount,
		metrics:         m,
		audit:           auditor{repo: auditRepo},
	}
}

func newCollectionResult() *models.CollectionResult {
	return &models.CollectionResult{
		ByCurrency:   make(map[string]decimal.Decimal),
		CollectedUSD: decimal.Zero,
	}
}

func (s *feeService) collect(ctx context.Context, fee models.ServerFee) (*models.ServerFee, bool, error) {
	collected, changed, err := s.repo.CollectFee(ctx, fee.ID, s.platformAccount)
	if err != nil {
		s.metrics.IncFeeCollectionFailure()
		_ = reportViolation(s.metrics, err, zap.String("fee", fee.ID.String()), zap.String("exchanger", fee.ExchangerID))
		if markErr := s.repo.MarkFeeFailed(context.WithoutCancel(ctx), fee.ID, err.Error()); markErr != nil {
			logger.Log.Warn("failed to record fee collection failure", zap.String("fee", fee.ID.String()), zap.Error(markErr))
		}
		return nil, false, err
	}
	if changed {
		s.metrics.IncFeeCollected(collected.Currency)
		s.audit.record(ctx, SystemActor, "fee.collected", "server_fee", collected.ID.String(), map[string]any{
			"exchanger_id":  collected.ExchangerID,
			"currency":      collected.Currency,
			"amount_crypto": collected.AmountCrypto.String(),
			"amount_usd":    collected.AmountUSD.String(),
		})
	}
	return collected, changed, nil
}

func (s *feeService) CollectHoldFee(ctx context.Context, holdID uuid.UUID) (*models.ServerFee, error) {
	fees, err := s.repo.ListFees(ctx, models.FeeFilter{HoldID: holdID})
	if err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return nil, fmt.Errorf("%w: hold %s", apperrors.ErrFeeNotFound, holdID)
	}
	fee := fees[0]
	if fee.Status == models.FeeCollected {
		return &fee, nil
	}
	collected, _, err := s.collect(ctx, fee)
	return collected, err
}

func (s *feeService) collectAll(ctx context.Context, fees []models.ServerFee) *models.CollectionResult {
	result := newCollectionResult()
	for _, fee := range fees {
		collected, changed, err := s.collect(ctx, fee)
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, models.FeeFailure{FeeID: fee.ID, Reason: err.Error()})
			continue
		}
		if !changed {
			continue
		}
		result.Collected++
		result.ByCurrency[collected.Currency] = result.ByCurrency[collected.Currency].Add(collected.AmountCrypto)
		result.CollectedUSD = result.CollectedUSD.Add(collected.AmountUSD)
	}
	return result
}

func (s *feeService) CollectServerFee(ctx context.Context, ticketID uuid.UUID, exchangerID string) (*models.CollectionResult, error) {
	fees, err := s.repo.ListFees(ctx, models.FeeFilter{
		TicketID:    ticketID,
		ExchangerID: exchangerID,
		Status:      models.FeePendingCollection,
	})
	if err != nil {
		return nil, err
	}
	return s.collectAll(ctx, fees), nil
}

func (s *feeService) CollectPending(ctx context.Context) (*models.CollectionResult, error) {
	fees, err := s.repo.ListFees(ctx, models.FeeFilter{Status: models.FeePendingCollection})
	if err != nil {
		return nil, err
	}
	result := s.collectAll(ctx, fees)
	if result.Collected > 0 || result.Failed > 0 {
		logger.Log.Info("pending server fees processed",
			zap.Int("collected", result.Collected),
			zap.Int("failed", result.Failed),
			zap.Stringer("collected_usd", result.CollectedUSD))
	}
	return result, nil
}

func (s *feeService) PendingFees(ctx context.Context, exchangerID string) ([]models.ServerFee, error) {
	return s.repo.ListFees(ctx, models.FeeFilter{ExchangerID: exchangerID, Status: models.FeePendingCollection})
}

// CanWithdraw is false while the exchanger still owes server fees.
func (s *feeService) CanWithdraw(ctx context.Context, exchangerID string) (bool, error) {
	pending, err := s.PendingFees(ctx, exchangerID)
	if err != nil {
		return false, err
	}
	return len(pending) == 0, nil
}

func (s *feeService) Summary(ctx context.Context) ([]models.FeeSummary, error) {
	fees, err := s.repo.ListFees(ctx, models.FeeFilter{})
	if err != nil {
		return nil, err
	}

	byCurrency := make(map[string]*models.FeeSummary)
	for _, f := range fees {
		sum, ok := byCurrency[f.Currency]
		if !ok {
			sum = &models.FeeSummary{Currency: f.Currency, Collected: decimal.Zero, Pending: decimal.Zero}
			byCurrency[f.Currency] = sum
		}
		switch f.Status {
		case models.FeeCollected:
			sum.CollectedCount++
			sum.Collected = sum.Collected.Add(f.AmountCrypto)
		case models.FeePendingCollection:
			sum.PendingCount++
			sum.Pending = sum.Pending.Add(f.AmountCrypto)
		}
	}

	out := make([]models.FeeSummary, 0, len(byCurrency))
	for _, sum := range byCurrency {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}
