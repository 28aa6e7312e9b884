package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DepositRepository interface {
	CreateDeposit(ctx context.Context, d *models.Deposit) error
	GetDeposit(ctx context.Context, userID, currency string) (*models.Deposit, error)
	ListDeposits(ctx context.Context, userID string) ([]models.Deposit, error)
	ListDepositsWithReservedFees(ctx context.Context) ([]models.Deposit, error)
	SetDepositActive(ctx context.Context, userID, currency string, active bool) error
	// Increment applies delta in one guarded statement. A delta that would break
	// balance >= held + fee_reserved >= 0 fails with ErrConcurrencyConflict.
	Increment(ctx context.Context, userID, currency string, delta models.BalanceDelta) (*models.Deposit, error)
	SyncBalance(ctx context.Context, userID, currency string, balance decimal.Decimal) (*models.Deposit, error)
}

type HoldRepository interface {
	// ReserveHold inserts an active hold and reserves its units on the deposit atomically.
	ReserveHold(ctx context.Context, hold *models.Hold) error
	// SettleHold moves an active hold to a terminal status and applies its
	// ledger delta. A hold that is already terminal is returned with changed=false.
	SettleHold(ctx context.Context, holdID uuid.UUID, status models.HoldStatus) (*models.Hold, bool, error)
	GetHold(ctx context.Context, holdID uuid.UUID) (*models.Hold, error)
	ListHoldsByTicket(ctx context.Context, ticketID uuid.UUID) ([]models.Hold, error)
	ListActiveHoldsByUser(ctx context.Context, userID string) ([]models.Hold, error)
}

type FeeRepository interface {
	GetFee(ctx context.Context, feeID uuid.UUID) (*models.ServerFee, error)
	ListFees(ctx context.Context, filter models.FeeFilter) ([]models.ServerFee, error)
	// CollectFee moves a pending fee out of the exchanger's fee_reserved and
	// balance into the platform account's balance.
	CollectFee(ctx context.Context, feeID uuid.UUID, platformAccount string) (*models.ServerFee, bool, error)
	MarkFeeFailed(ctx context.Context, feeID uuid.UUID, reason string) error
}

type LedgerRepository interface {
	DepositRepository
	HoldRepository
	FeeRepository
}

type ledgerRepo struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) LedgerRepository {
	return &ledgerRepo{db: db}
}

const depositColumns = `user_id, currency, balance::TEXT, held::TEXT, fee_reserved::TEXT,
	address, encrypted_private_key, is_active, created_at, updated_at`

func scanDeposit(s scanner) (*models.Deposit, error) {
	var d models.Deposit
	var balance, held, feeReserved string
	err := s.Scan(&d.UserID, &d.Currency, &balance, &held, &feeReserved,
		&d.Address, &d.EncryptedPrivateKey, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	err = parseDecimals(
		decimalField{"balance", balance, &d.Balance},
		decimalField{"held", held, &d.Held},
		decimalField{"fee_reserved", feeReserved, &d.FeeReserved},
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ledgerRepo) CreateDeposit(ctx context.Context, d *models.Deposit) error {
	if err := d.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exchanger_deposits
			(user_id, currency, balance, held, fee_reserved, address, encrypted_private_key, is_active, created_at, updated_at)
		VALUES ($1, $2, $3::NUMERIC, $4::NUMERIC, $5::NUMERIC, $6, $7, $8, $9, $10)
	`, d.UserID, d.Currency, d.Balance.String(), d.Held.String(), d.FeeReserved.String(),
		d.Address, d.EncryptedPrivateKey, d.IsActive, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return mapPgError(err, apperrors.ErrDepositExists)
	}
	return nil
}

func (r *ledgerRepo) GetDeposit(ctx context.Context, userID, currency string) (*models.Deposit, error) {
	return getDeposit(ctx, r.db, userID, currency)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getDeposit(ctx context.Context, q queryRower, userID, currency string) (*models.Deposit, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+depositColumns+`
		FROM exchanger_deposits WHERE user_id = $1 AND currency = $2
	`, userID, currency)
	d, err := scanDeposit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrDepositNotFound
	}
	return d, err
}

func (r *ledgerRepo) ListDeposits(ctx context.Context, userID string) ([]models.Deposit, error) {
	return r.listDeposits(ctx, `
		SELECT `+depositColumns+`
		FROM exchanger_deposits WHERE user_id = $1 ORDER BY currency
	`, userID)
}

func (r *ledgerRepo) ListDepositsWithReservedFees(ctx context.Context) ([]models.Deposit, error) {
	return r.listDeposits(ctx, `
		SELECT `+depositColumns+`
		FROM exchanger_deposits WHERE fee_reserved > 0 ORDER BY currency, user_id
	`)
}

func (r *ledgerRepo) listDeposits(ctx context.Context, query string, args ...any) ([]models.Deposit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query deposits", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var deposits []models.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			logger.Log.Error("failed to scan deposit", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *d)
	}
	return deposits, rows.Err()
}

func (r *ledgerRepo) SetDepositActive(ctx context.Context, userID, currency string, active bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE exchanger_deposits SET is_active = $3, updated_at = now()
		WHERE user_id = $1 AND currency = $2
	`, userID, currency, active)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrDepositNotFound
	}
	return nil
}

// incrementQuery keeps every sub-balance invariant inside the WHERE clause so
// concurrent writers cannot interleave a read and a write.
const incrementQuery = `
	UPDATE exchanger_deposits
	SET balance = balance + $3::NUMERIC,
	    held = held + $4::NUMERIC,
	    fee_reserved = fee_reserved + $5::NUMERIC,
	    updated_at = now()
	WHERE user_id = $1 AND currency = $2
	  AND held + $4::NUMERIC >= 0
	  AND fee_reserved + $5::NUMERIC >= 0
	  AND (balance + $3::NUMERIC) - (held + $4::NUMERIC) - (fee_reserved + $5::NUMERIC) >= 0
	RETURNING ` + depositColumns

type execQuerier interface {
	queryRower
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func applyDelta(ctx context.Context, q execQuerier, userID, currency string, delta models.BalanceDelta) (*models.Deposit, error) {
	row := q.QueryRowContext(ctx, incrementQuery, userID, currency,
		delta.Balance.String(), delta.Held.String(), delta.FeeReserved.String())
	d, err := scanDeposit(row)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, mapPgError(err, nil)
	}
	if _, err := getDeposit(ctx, q, userID, currency); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s/%s rejected delta balance=%s held=%s fee_reserved=%s",
		apperrors.ErrConcurrencyConflict, userID, currency, delta.Balance, delta.Held, delta.FeeReserved)
}

func (r *ledgerRepo) Increment(ctx context.Context, userID, currency string, delta models.BalanceDelta) (*models.Deposit, error) {
	return applyDelta(ctx, r.db, userID, currency, delta)
}

func (r *ledgerRepo) SyncBalance(ctx context.Context, userID, currency string, balance decimal.Decimal) (*models.Deposit, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE exchanger_deposits SET balance = $3::NUMERIC, updated_at = now()
		WHERE user_id = $1 AND currency = $2 AND held + fee_reserved <= $3::NUMERIC
		RETURNING `+depositColumns, userID, currency, balance.String())
	d, err := scanDeposit(row)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, mapPgError(err, nil)
	}
	current, err := r.GetDeposit(ctx, userID, currency)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: on-chain balance %s of %s/%s is below committed %s",
		apperrors.ErrConsistencyViolation, balance, userID, currency, current.Committed())
}
