package repository

import (
	"context"
	"database/sql"
	"encoding/json"
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

type TicketRepository interface {
	CreateTicket(ctx context.Context, t *models.Ticket) error
	GetTicket(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
	// CompareAndSwap applies patch only if the ticket currently matches cond and
	// returns the updated ticket. A mismatch yields ErrConcurrencyConflict.
	CompareAndSwap(ctx context.Context, id uuid.UUID, cond models.TicketCondition, patch models.TicketPatch) (*models.Ticket, error)
	ListTickets(ctx context.Context, filter models.TicketFilter) ([]models.Ticket, error)
}

type ticketRepo struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) TicketRepository {
	return &ticketRepo{db: db}
}

const ticketColumns = `id, client_id, status, previous_status, amount_usd::TEXT, fee_amount::TEXT,
	fee_percentage::TEXT, receiving_amount::TEXT, send_method, receive_method, assigned_to,
	hold_id, hold_ids, force_claimed, tos_deadline, tos_accepted_at, claimed_at, completed_at,
	closed_at, close_reason, pending_amount_change, pending_fee_change, pending_unclaim,
	created_at, updated_at`

func scanTicket(s scanner) (*models.Ticket, error) {
	var t models.Ticket
	var status, previous, amount, fee, pct, receiving string
	var holdID uuid.NullUUID
	var holdIDs, amountChange, feeChange, unclaim []byte
	var tosDeadline, tosAccepted, claimedAt, completedAt, closedAt sql.NullTime

	err := s.Scan(&t.ID, &t.ClientID, &status, &previous, &amount, &fee,
		&pct, &receiving, &t.SendMethod, &t.ReceiveMethod, &t.AssignedTo,
		&holdID, &holdIDs, &t.ForceClaimed, &tosDeadline, &tosAccepted, &claimedAt, &completedAt,
		&closedAt, &t.CloseReason, &amountChange, &feeChange, &unclaim,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	err = parseDecimals(
		decimalField{"amount_usd", amount, &t.AmountUSD},
		decimalField{"fee_amount", fee, &t.FeeAmount},
		decimalField{"fee_percentage", pct, &t.FeePercentage},
		decimalField{"receiving_amount", receiving, &t.ReceivingAmount},
	)
	if err != nil {
		return nil, err
	}
	t.Status = models.TicketStatus(status)
	t.PreviousStatus = models.TicketStatus(previous)
	if holdID.Valid {
		id := holdID.UUID
		t.HoldID = &id
	}
	t.TOSDeadline = timePtr(tosDeadline)
	t.TOSAcceptedAt = timePtr(tosAccepted)
	t.ClaimedAt = timePtr(claimedAt)
	t.CompletedAt = timePtr(completedAt)
	t.ClosedAt = timePtr(closedAt)

	for _, doc := range []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"hold_ids", holdIDs, &t.HoldIDs},
		{"pending_amount_change", amountChange, &t.PendingAmountChange},
		{"pending_fee_change", feeChange, &t.PendingFeeChange},
		{"pending_unclaim", unclaim, &t.PendingUnclaim},
	} {
		if len(doc.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(doc.raw, doc.dst); err != nil {
			return nil, fmt.Errorf("%w: ticket %s %s: %v", apperrors.ErrMalformedRecord, t.ID, doc.name, err)
		}
	}
	return &t, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func ticketArgs(t *models.Ticket) ([]any, error) {
	holdIDs, err := nullableJSON(t.HoldIDs, len(t.HoldIDs) == 0)
	if err != nil {
		return nil, err
	}
	amountChange, err := nullableJSON(t.PendingAmountChange, t.PendingAmountChange == nil)
	if err != nil {
		return nil, err
	}
	feeChange, err := nullableJSON(t.PendingFeeChange, t.PendingFeeChange == nil)
	if err != nil {
		return nil, err
	}
	unclaim, err := nullableJSON(t.PendingUnclaim, t.PendingUnclaim == nil)
	if err != nil {
		return nil, err
	}
	var holdID uuid.NullUUID
	if t.HoldID != nil {
		holdID = uuid.NullUUID{UUID: *t.HoldID, Valid: true}
	}
	return []any{
		t.ID, t.ClientID, string(t.Status), string(t.PreviousStatus), t.AmountUSD.String(),
		t.FeeAmount.String(), t.FeePercentage.String(), t.ReceivingAmount.String(), t.SendMethod,
		t.ReceiveMethod, t.AssignedTo, holdID, holdIDs, t.ForceClaimed, t.TOSDeadline,
		t.TOSAcceptedAt, t.ClaimedAt, t.CompletedAt, t.ClosedAt, t.CloseReason,
		amountChange, feeChange, unclaim, t.CreatedAt, t.UpdatedAt,
	}, nil
}

func (r *ticketRepo) CreateTicket(ctx context.Context, t *models.Ticket) error {
	if err := t.Validate(); err != nil {
		return err
	}
	args, err := ticketArgs(t)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tickets (`+strings.ReplaceAll(ticketColumns, "::TEXT", "")+`)
		VALUES ($1, $2, $3, $4, $5::NUMERIC, $6::NUMERIC, $7::NUMERIC, $8::NUMERIC, $9, $10, $11,
		        $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`, args...)
	return err
}

func (r *ticketRepo) GetTicket(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	return getTicket(ctx, r.db, id, false)
}

func getTicket(ctx context.Context, q queryRower, id uuid.UUID, forUpdate bool) (*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	t, err := scanTicket(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrTicketNotFound
	}
	return t, err
}

// CompareAndSwap locks the row, evaluates cond and writes the patched row in
// one transaction, so two callers racing on the same precondition serialize and
// exactly one of them observes a match.
func (r *ticketRepo) CompareAndSwap(ctx context.Context, id uuid.UUID, cond models.TicketCondition, patch models.TicketPatch) (*models.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	t, err := getTicket(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}
	if !cond.Match(*t) {
		return nil, fmt.Errorf("%w: ticket %s is %s", apperrors.ErrConcurrencyConflict, id, t.Status)
	}
	patch.Apply(t, time.Now().UTC())

	args, err := ticketArgs(t)
	if err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE tickets SET
			client_id = $2, status = $3, previous_status = $4, amount_usd = $5::NUMERIC,
			fee_amount = $6::NUMERIC, fee_percentage = $7::NUMERIC, receiving_amount = $8::NUMERIC,
			send_method = $9, receive_method = $10, assigned_to = $11, hold_id = $12, hold_ids = $13,
			force_claimed = $14, tos_deadline = $15, tos_accepted_at = $16, claimed_at = $17,
			completed_at = $18, closed_at = $19, close_reason = $20, pending_amount_change = $21,
			pending_fee_change = $22, pending_unclaim = $23, created_at = $24, updated_at = $25
		WHERE id = $1
	`, args...)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *ticketRepo) ListTickets(ctx context.Context, filter models.TicketFilter) ([]models.Ticket, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			args = append(args, string(st))
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conds = append(conds, "status IN ("+strings.Join(placeholders, ", ")+")")
	}
	if filter.AssignedTo != "" {
		add("assigned_to = $%d", filter.AssignedTo)
	}
	if filter.ClientID != "" {
		add("client_id = $%d", filter.ClientID)
	}
	if !filter.CreatedBefore.IsZero() {
		add("created_at < $%d", filter.CreatedBefore)
	}
	if !filter.UpdatedBefore.IsZero() {
		add("updated_at < $%d", filter.UpdatedBefore)
	}
	if !filter.TOSBefore.IsZero() {
		add("tos_deadline < $%d", filter.TOSBefore)
	}

	query := `SELECT ` + ticketColumns + ` FROM tickets`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at, id`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query tickets", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var tickets []models.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			logger.Log.Error("failed to scan ticket", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}
