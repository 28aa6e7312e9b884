package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const feeColumns = `id, ticket_id, hold_id, exchanger_id, currency, amount_crypto::TEXT,
	amount_usd::TEXT, status, attempts, last_error, created_at, collected_at`

func scanFee(s scanner) (*models.ServerFee, error) {
	var f models.ServerFee
	var amountCrypto, amountUSD, status string
	var collectedAt sql.NullTime
	err := s.Scan(&f.ID, &f.TicketID, &f.HoldID, &f.ExchangerID, &f.Currency, &amountCrypto,
		&amountUSD, &status, &f.Attempts, &f.LastError, &f.CreatedAt, &collectedAt)
	if err != nil {
		return nil, err
	}
	err = parseDecimals(
		decimalField{"amount_crypto", amountCrypto, &f.AmountCrypto},
		decimalField{"amount_usd", amountUSD, &f.AmountUSD},
	)
	if err != nil {
		return nil, err
	}
	f.Status = models.ServerFeeStatus(status)
	if collectedAt.Valid {
		f.CollectedAt = &collectedAt.Time
	}
	return &f, nil
}

func insertFee(ctx context.Context, q execQuerier, fee *models.ServerFee) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO server_fees
			(id, ticket_id, hold_id, exchanger_id, currency, amount_crypto, amount_usd, status, attempts, last_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::NUMERIC, $7::NUMERIC, $8, 0, '', $9)
		ON CONFLICT (hold_id) DO NOTHING
	`, fee.ID, fee.TicketID, fee.HoldID, fee.ExchangerID, fee.Currency,
		fee.AmountCrypto.String(), fee.AmountUSD.String(), string(fee.Status), fee.CreatedAt)
	return err
}

func (r *ledgerRepo) GetFee(ctx context.Context, feeID uuid.UUID) (*models.ServerFee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+feeColumns+` FROM server_fees WHERE id = $1`, feeID)
	f, err := scanFee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrFeeNotFound
	}
	return f, err
}

func (r *ledgerRepo) ListFees(ctx context.Context, filter models.FeeFilter) ([]models.ServerFee, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.TicketID != uuid.Nil {
		add("ticket_id = $%d", filter.TicketID)
	}
	if filter.HoldID != uuid.Nil {
		add("hold_id = $%d", filter.HoldID)
	}
	if filter.ExchangerID != "" {
		add("exchanger_id = $%d", filter.ExchangerID)
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}

	query := `SELECT ` + feeColumns + ` FROM server_fees`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query server fees", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var fees []models.ServerFee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			logger.Log.Error("failed to scan server fee", zap.Error(err))
			return nil, err
		}
		fees = append(fees, *f)
	}
	return fees, rows.Err()
}

func (r *ledgerRepo) CollectFee(ctx context.Context, feeID uuid.UUID, platformAccount string) (*models.ServerFee, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer rollback(tx)

	row := tx.QueryRowContext(ctx, `
		UPDATE server_fees
		SET status = 'collected', collected_at = $2, attempts = attempts + 1, last_error = ''
		WHERE id = $1 AND status = 'pending_collection'
		RETURNING `+feeColumns, feeID, time.Now().UTC())
	fee, err := scanFee(row)
	if errors.Is(err, sql.ErrNoRows) {
		existing, err := r.GetFee(ctx, feeID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	debit := models.BalanceDelta{
		Balance:     fee.AmountCrypto.Neg(),
		FeeReserved: fee.AmountCrypto.Neg(),
	}
	if _, err := applyDelta(ctx, tx, fee.ExchangerID, fee.Currency, debit); err != nil {
		if errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return nil, false, fmt.Errorf("%w: collecting fee %s: %v", apperrors.ErrConsistencyViolation, feeID, err)
		}
		return nil, false, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO exchanger_deposits (user_id, currency, balance, is_active)
		VALUES ($1, $2, $3::NUMERIC, TRUE)
		ON CONFLICT (user_id, currency)
		DO UPDATE SET balance = exchanger_deposits.balance + EXCLUDED.balance, updated_at = now()
	`, platformAccount, fee.Currency, fee.AmountCrypto.String())
	if err != nil {
		return nil, false, mapPgError(err, nil)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	return fee, true, nil
}

func (r *ledgerRepo) MarkFeeFailed(ctx context.Context, feeID uuid.UUID, reason string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE server_fees SET attempts = attempts + 1, last_error = $2
		WHERE id = $1 AND status = 'pending_collection'
	`, feeID, reason)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrFeeNotFound
	}
	return nil
}
