package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const holdColumns = `id, ticket_id, user_id, currency, amount_units::TEXT, amount_usd::TEXT,
	server_fee_usd::TEXT, server_fee_crypto::TEXT, price_at_hold::TEXT, status,
	created_at, released_at, refunded_at`

func scanHold(s scanner) (*models.Hold, error) {
	var h models.Hold
	var units, usd, feeUSD, feeCrypto, price, status string
	var releasedAt, refundedAt sql.NullTime
	err := s.Scan(&h.ID, &h.TicketID, &h.UserID, &h.Currency, &units, &usd,
		&feeUSD, &feeCrypto, &price, &status, &h.CreatedAt, &releasedAt, &refundedAt)
	if err != nil {
		return nil, err
	}
	err = parseDecimals(
		decimalField{"amount_units", units, &h.AmountUnits},
		decimalField{"amount_usd", usd, &h.AmountUSD},
		decimalField{"server_fee_usd", feeUSD, &h.ServerFeeUSD},
		decimalField{"server_fee_crypto", feeCrypto, &h.ServerFeeCrypto},
		decimalField{"price_at_hold", price, &h.PriceAtHold},
	)
	if err != nil {
		return nil, err
	}
	h.Status = models.HoldStatus(status)
	if releasedAt.Valid {
		h.ReleasedAt = &releasedAt.Time
	}
	if refundedAt.Valid {
		h.RefundedAt = &refundedAt.Time
	}
	return &h, nil
}

func (r *ledgerRepo) ReserveHold(ctx context.Context, hold *models.Hold) error {
	if err := hold.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)

	var active bool
	err = tx.QueryRowContext(ctx, `
		SELECT is_active FROM exchanger_deposits WHERE user_id = $1 AND currency = $2 FOR UPDATE
	`, hold.UserID, hold.Currency).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrDepositNotFound
	}
	if err != nil {
		return err
	}
	if !active {
		return apperrors.ErrDepositInactive
	}

	if _, err := applyDelta(ctx, tx, hold.UserID, hold.Currency, hold.ReservationDelta()); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO holds
			(id, ticket_id, user_id, currency, amount_units, amount_usd, server_fee_usd,
			 server_fee_crypto, price_at_hold, status, created_at)
		VALUES ($1, $2, $3, $4, $5::NUMERIC, $6::NUMERIC, $7::NUMERIC, $8::NUMERIC, $9::NUMERIC, $10, $11)
	`, hold.ID, hold.TicketID, hold.UserID, hold.Currency, hold.AmountUnits.String(),
		hold.AmountUSD.String(), hold.ServerFeeUSD.String(), hold.ServerFeeCrypto.String(),
		hold.PriceAtHold.String(), string(hold.Status), hold.CreatedAt)
	if err != nil {
		return mapPgError(err, nil)
	}

	return tx.Commit()
}

func (r *ledgerRepo) SettleHold(ctx context.Context, holdID uuid.UUID, status models.HoldStatus) (*models.Hold, bool, error) {
	if !status.IsTerminal() {
		return nil, false, fmt.Errorf("%w: cannot settle hold into %q", apperrors.ErrInvalidTransition, status)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer rollback(tx)

	now := time.Now().UTC()
	row := tx.QueryRowContext(ctx, `
		UPDATE holds
		SET status = $2,
		    released_at = CASE WHEN $2 = 'released' THEN $3::TIMESTAMPTZ ELSE released_at END,
		    refunded_at = CASE WHEN $2 = 'refunded' THEN $3::TIMESTAMPTZ ELSE refunded_at END
		WHERE id = $1 AND status = 'active'
		RETURNING `+holdColumns, holdID, string(status), now)
	hold, err := scanHold(row)
	if errors.Is(err, sql.ErrNoRows) {
		existing, err := r.GetHold(ctx, holdID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if _, err := applyDelta(ctx, tx, hold.UserID, hold.Currency, hold.SettlementDelta(status)); err != nil {
		if errors.Is(err, apperrors.ErrConcurrencyConflict) {
			return nil, false, fmt.Errorf("%w: settling hold %s: %v", apperrors.ErrConsistencyViolation, holdID, err)
		}
		return nil, false, err
	}

	if status == models.HoldReleased && hold.ServerFeeCrypto.IsPositive() {
		fee := models.NewServerFee(*hold, now)
		if err := insertFee(ctx, tx, &fee); err != nil {
			return nil, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	return hold, true, nil
}

func (r *ledgerRepo) GetHold(ctx context.Context, holdID uuid.UUID) (*models.Hold, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+holdColumns+` FROM holds WHERE id = $1`, holdID)
	h, err := scanHold(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrHoldNotFound
	}
	return h, err
}

func (r *ledgerRepo) ListHoldsByTicket(ctx context.Context, ticketID uuid.UUID) ([]models.Hold, error) {
	return r.listHolds(ctx, `
		SELECT `+holdColumns+` FROM holds WHERE ticket_id = $1 ORDER BY created_at, id
	`, ticketID)
}

func (r *ledgerRepo) ListActiveHoldsByUser(ctx context.Context, userID string) ([]models.Hold, error) {
	return r.listHolds(ctx, `
		SELECT `+holdColumns+` FROM holds WHERE user_id = $1 AND status = 'active' ORDER BY created_at, id
	`, userID)
}

func (r *ledgerRepo) listHolds(ctx context.Context, query string, args ...any) ([]models.Hold, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query holds", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var holds []models.Hold
	for rows.Next() {
		h, err := scanHold(rows)
		if err != nil {
			logger.Log.Error("failed to scan hold", zap.Error(err))
			return nil, err
		}
		holds = append(holds, *h)
	}
	return holds, rows.Err()
}
