package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/price"
	"github.com/a2sh3r/holdengine/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type LedgerService interface {
	RegisterDeposit(ctx context.Context, userID string, req models.RegisterDepositRequest) (*models.Deposit, error)
	Increment(ctx context.Context, userID, currency string, field models.BalanceField, delta decimal.Decimal) (*models.Deposit, error)
	GetAvailable(ctx context.Context, userID, currency string) (decimal.Decimal, error)
	DisplayAvailable(ctx context.Context, userID, currency string) (decimal.Decimal, error)
	SyncBalance(ctx context.Context, userID, currency string, balance decimal.Decimal) (*models.Deposit, error)
	SetActive(ctx context.Context, userID, currency string, active bool) error
	ListBalances(ctx context.Context, userID string) ([]models.BalanceView, error)
}

// KeySealer encrypts deposit private keys at rest.
type KeySealer interface {
	Seal(plaintext string) (string, error)
}

type ledgerService struct {
	repo    repository.DepositRepository
	oracle  price.Oracle
	sealer  KeySealer
	metrics *metrics.Metrics
	audit   auditor
}

func NewLedgerService(repo repository.DepositRepository, oracle price.Oracle, sealer KeySealer,
	auditRepo repository.AuditRepository, m *metrics.Metrics) LedgerService {
	return &ledgerService{
		repo:    repo,
		oracle:  oracle,
		sealer:  sealer,
		metrics: m,
		audit:   auditor{repo: auditRepo},
	}
}

func (s *ledgerService) RegisterDeposit(ctx context.Context, userID string, req models.RegisterDepositRequest) (*models.Deposit, error) {
	d, err := models.NewDeposit(userID, req.Currency, req.Address)
	if err != nil {
		return nil, err
	}
	if req.PrivateKey != "" {
		if s.sealer == nil {
			return nil, errors.New("deposit key sealing is not configured")
		}
		sealed, err := s.sealer.Seal(req.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("failed to seal private key: %w", err)
		}
		d.EncryptedPrivateKey = sealed
	}

	if err := s.repo.CreateDeposit(ctx, d); err != nil {
		return nil, err
	}
	s.audit.record(ctx, userID, "deposit.registered", "deposit", userID+"/"+d.Currency, map[string]any{
		"currency": d.Currency,
		"address":  d.Address,
	})
	return d, nil
}

func (s *ledgerService) Increment(ctx context.Context, userID, currency string, field models.BalanceField, delta decimal.Decimal) (*models.Deposit, error) {
	cur, err := models.NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	if _, err := models.ParseBalanceField(string(field)); err != nil {
		return nil, err
	}
	if delta.IsZero() {
		return s.repo.GetDeposit(ctx, userID, cur)
	}
	return s.repo.Increment(ctx, userID, cur, models.DeltaFor(field, delta))
}

// GetAvailable never clamps: a negative value means a corrupt record and is an error.
func (s *ledgerService) GetAvailable(ctx context.Context, userID, currency string) (decimal.Decimal, error) {
	cur, err := models.NormalizeCurrency(currency)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := s.repo.GetDeposit(ctx, userID, cur)
	if err != nil {
		return decimal.Zero, err
	}
	if err := d.Validate(); err != nil {
		return decimal.Zero, reportViolation(s.metrics, err, zap.String("user", userID), zap.String("currency", cur))
	}
	return d.Available(), nil
}

func (s *ledgerService) DisplayAvailable(ctx context.Context, userID, currency string) (decimal.Decimal, error) {
	available, err := s.GetAvailable(ctx, userID, currency)
	if errors.Is(err, apperrors.ErrConsistencyViolation) {
		return decimal.Zero, nil
	}
	return available, err
}

func (s *ledgerService) SyncBalance(ctx context.Context, userID, currency string, balance decimal.Decimal) (*models.Deposit, error) {
	cur, err := models.NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: negative on-chain balance", apperrors.ErrInvalidAmount)
	}
	d, err := s.repo.SyncBalance(ctx, userID, cur, balance)
	if err != nil {
		return nil, reportViolation(s.metrics, err, zap.String("user", userID), zap.String("currency", cur))
	}
	logger.Log.Info("deposit balance synced", zap.String("user", userID), zap.String("currency", cur), zap.Stringer("balance", balance))
	return d, nil
}

func (s *ledgerService) SetActive(ctx context.Context, userID, currency string, active bool) error {
	cur, err := models.NormalizeCurrency(currency)
	if err != nil {
		return err
	}
	if err := s.repo.SetDepositActive(ctx, userID, cur, active); err != nil {
		return err
	}
	s.audit.record(ctx, userID, "deposit.active_changed", "deposit", userID+"/"+cur, map[string]any{"active": active})
	return nil
}

func (s *ledgerService) ListBalances(ctx context.Context, userID string) ([]models.BalanceView, error) {
	deposits, err := s.repo.ListDeposits(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.BalanceView, 0, len(deposits))
	for _, d := range deposits {
		available := d.Available()
		if available.IsNegative() {
			_ = reportViolation(s.metrics, d.Validate(), zap.String("user", userID), zap.String("currency", d.Currency))
			available = decimal.Zero
		}
		view := models.BalanceView{
			Currency:    d.Currency,
			Balance:     d.Balance,
			Held:        d.Held,
			FeeReserved: d.FeeReserved,
			Available:   available,
			IsActive:    d.IsActive,
		}
		if p, err := s.oracle.PriceUSD(ctx, d.Currency); err == nil {
			usd := available.Mul(p).Round(2)
			view.PriceUSD = &p
			view.AvailableUSD = &usd
		}
		views = append(views, view)
	}
	return views, nil
}
