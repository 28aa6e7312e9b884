package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

type scanner interface {
	Scan(dest ...any) error
}

// pgErrorCode extracts the SQLSTATE and constraint name from either driver's error.
func pgErrorCode(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

// mapPgError translates constraint failures into domain errors.
func mapPgError(err error, onUnique error) error {
	code, constraint, ok := pgErrorCode(err)
	if !ok {
		return err
	}
	switch code {
	case pgUniqueViolation:
		if onUnique != nil {
			return onUnique
		}
	case pgCheckViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrConsistencyViolation, constraint)
	}
	return err
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Log.Error("rollback error", zap.Error(err))
	}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Log.Error("failed to close rows", zap.Error(err))
	}
}

type decimalField struct {
	name string
	raw  string
	dst  *decimal.Decimal
}

func parseDecimals(fields ...decimalField) error {
	for _, f := range fields {
		d, err := models.ParseDecimal(f.name, f.raw)
		if err != nil {
			return err
		}
		*f.dst = d
	}
	return nil
}

// nullableJSON encodes v as a JSON text argument, or NULL when isNil is set.
func nullableJSON(v any, isNil bool) (any, error) {
	if isNil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
