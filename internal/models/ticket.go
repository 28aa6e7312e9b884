package models

import (
	"fmt"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketAwaitingTOS   TicketStatus = "awaiting_tos"
	TicketOpen          TicketStatus = "open"
	TicketPending       TicketStatus = "pending"
	TicketAwaitingClaim TicketStatus = "awaiting_claim"
	TicketClaiming      TicketStatus = "claiming"
	TicketClaimed       TicketStatus = "claimed"
	TicketClientSent    TicketStatus = "client_sent"
	TicketPayoutPending TicketStatus = "payout_pending"
	TicketSettling      TicketStatus = "settling"
	TicketCompleted     TicketStatus = "completed"
	TicketCancelled     TicketStatus = "cancelled"
	TicketClosed        TicketStatus = "closed"
)

var (
	ClaimableStatuses   = []TicketStatus{TicketOpen, TicketPending, TicketAwaitingClaim}
	CompletableStatuses = []TicketStatus{TicketClaimed, TicketClientSent, TicketPayoutPending}
	UnclaimableStatuses = []TicketStatus{TicketClaimed, TicketClientSent}
	// CancellableStatuses excludes the lock statuses; those are owned by an in-flight operation.
	CancellableStatuses = []TicketStatus{
		TicketAwaitingTOS, TicketOpen, TicketPending, TicketAwaitingClaim,
		TicketClaimed, TicketClientSent, TicketPayoutPending,
	}
)

func (s TicketStatus) IsTerminal() bool {
	return s == TicketCompleted || s == TicketCancelled || s == TicketClosed
}

func (s TicketStatus) In(set []TicketStatus) bool {
	for _, st := range set {
		if s == st {
			return true
		}
	}
	return false
}

type AmountChangeRequest struct {
	RequesterID  string          `json:"requester_id"`
	OldAmount    decimal.Decimal `json:"old_amount"`
	NewAmount    decimal.Decimal `json:"new_amount"`
	NewFee       decimal.Decimal `json:"new_fee"`
	NewReceiving decimal.Decimal `json:"new_receiving"`
	Reason       string          `json:"reason,omitempty"`
	RequestedAt  time.Time       `json:"requested_at"`
}

type FeeChangeRequest struct {
	RequesterID   string          `json:"requester_id"`
	OldPercentage decimal.Decimal `json:"old_percentage"`
	NewPercentage decimal.Decimal `json:"new_percentage"`
	NewFee        decimal.Decimal `json:"new_fee"`
	NewReceiving  decimal.Decimal `json:"new_receiving"`
	Reason        string          `json:"reason,omitempty"`
	RequestedAt   time.Time       `json:"requested_at"`
}

type UnclaimRequest struct {
	RequesterID string    `json:"requester_id"`
	Reason      string    `json:"reason,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

type Ticket struct {
	ID              uuid.UUID       `json:"id"`
	ClientID        string          `json:"client_id"`
	Status          TicketStatus    `json:"status"`
	PreviousStatus  TicketStatus    `json:"previous_status,omitempty"`
	AmountUSD       decimal.Decimal `json:"amount_usd"`
	FeeAmount       decimal.Decimal `json:"fee_amount"`
	FeePercentage   decimal.Decimal `json:"fee_percentage"`
	ReceivingAmount decimal.Decimal `json:"receiving_amount"`
	SendMethod      string          `json:"send_method,omitempty"`
	ReceiveMethod   string          `json:"receive_method,omitempty"`
	AssignedTo      string          `json:"assigned_to,omitempty"`
	HoldID          *uuid.UUID      `json:"hold_id,omitempty"`
	HoldIDs         []uuid.UUID     `json:"hold_ids,omitempty"`
	ForceClaimed    bool            `json:"force_claimed,omitempty"`
	TOSDeadline     *time.Time      `json:"tos_deadline,omitempty"`
	TOSAcceptedAt   *time.Time      `json:"tos_accepted_at,omitempty"`
	ClaimedAt       *time.Time      `json:"claimed_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	CloseReason     string          `json:"close_reason,omitempty"`

	PendingAmountChange *AmountChangeRequest `json:"pending_amount_change,omitempty"`
	PendingFeeChange    *FeeChangeRequest    `json:"pending_fee_change,omitempty"`
	PendingUnclaim      *UnclaimRequest      `json:"pending_unclaim,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AllHoldIDs merges the legacy single pointer with the multi-currency list.
func (t Ticket) AllHoldIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(t.HoldIDs)+1)
	ids := make([]uuid.UUID, 0, len(t.HoldIDs)+1)
	if t.HoldID != nil {
		seen[*t.HoldID] = struct{}{}
		ids = append(ids, *t.HoldID)
	}
	for _, id := range t.HoldIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (t Ticket) IsParticipant(userID string) bool {
	return userID != "" && (userID == t.ClientID || userID == t.AssignedTo)
}

func (t Ticket) Validate() error {
	switch {
	case t.ID == uuid.Nil:
		return fmt.Errorf("%w: ticket without id", apperrors.ErrMalformedRecord)
	case t.ClientID == "":
		return fmt.Errorf("%w: ticket without client", apperrors.ErrMalformedRecord)
	case !t.AmountUSD.IsPositive():
		return fmt.Errorf("%w: ticket amount %s", apperrors.ErrInvalidAmount, t.AmountUSD)
	case t.Status == "":
		return fmt.Errorf("%w: ticket without status", apperrors.ErrMalformedRecord)
	}
	return nil
}

type NewTicket struct {
	ClientID      string          `json:"client_id"`
	AmountUSD     decimal.Decimal `json:"amount_usd"`
	FeePercentage decimal.Decimal `json:"fee_percentage"`
	SendMethod    string          `json:"send_method"`
	ReceiveMethod string          `json:"receive_method"`
	RequireTOS    bool            `json:"require_tos"`
}

// TicketCondition is the filter half of a compare-and-swap on a ticket.
type TicketCondition struct {
	Statuses   []TicketStatus
	Unassigned bool
	AssignedTo string
}

func (c TicketCondition) Match(t Ticket) bool {
	if len(c.Statuses) > 0 && !t.Status.In(c.Statuses) {
		return false
	}
	if c.Unassigned && t.AssignedTo != "" {
		return false
	}
	if c.AssignedTo != "" && t.AssignedTo != c.AssignedTo {
		return false
	}
	return true
}

// TicketPatch is the update half of a compare-and-swap. Nil fields are left untouched.
type TicketPatch struct {
	// RememberStatus copies the current status into PreviousStatus before Status is applied.
	RememberStatus  bool
	Status          *TicketStatus
	PreviousStatus  *TicketStatus
	AssignedTo      *string
	AmountUSD       *decimal.Decimal
	FeeAmount       *decimal.Decimal
	FeePercentage   *decimal.Decimal
	ReceivingAmount *decimal.Decimal
	ForceClaimed    *bool
	TOSAcceptedAt   *time.Time
	ClaimedAt       *time.Time
	CompletedAt     *time.Time
	ClosedAt        *time.Time
	CloseReason     *string

	// SetHolds replaces hold_id and hold_ids; an empty slice clears both.
	SetHolds   []uuid.UUID
	ClearHolds bool

	SetPendingAmountChange   *AmountChangeRequest
	ClearPendingAmountChange bool
	SetPendingFeeChange      *FeeChangeRequest
	ClearPendingFeeChange    bool
	SetPendingUnclaim        *UnclaimRequest
	ClearPendingUnclaim      bool
}

// Apply mutates t in place; stores call it under their own atomicity guarantees.
func (p TicketPatch) Apply(t *Ticket, now time.Time) {
	if p.RememberStatus {
		t.PreviousStatus = t.Status
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.PreviousStatus != nil {
		t.PreviousStatus = *p.PreviousStatus
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.AmountUSD != nil {
		t.AmountUSD = *p.AmountUSD
	}
	if p.FeeAmount != nil {
		t.FeeAmount = *p.FeeAmount
	}
	if p.FeePercentage != nil {
		t.FeePercentage = *p.FeePercentage
	}
	if p.ReceivingAmount != nil {
		t.ReceivingAmount = *p.ReceivingAmount
	}
	if p.ForceClaimed != nil {
		t.ForceClaimed = *p.ForceClaimed
	}
	if p.TOSAcceptedAt != nil {
		at := *p.TOSAcceptedAt
		t.TOSAcceptedAt = &at
	}
	if p.ClaimedAt != nil {
		at := *p.ClaimedAt
		t.ClaimedAt = &at
	}
	if p.CompletedAt != nil {
		at := *p.CompletedAt
		t.CompletedAt = &at
	}
	if p.ClosedAt != nil {
		at := *p.ClosedAt
		t.ClosedAt = &at
	}
	if p.CloseReason != nil {
		t.CloseReason = *p.CloseReason
	}
	switch {
	case p.ClearHolds:
		t.HoldID = nil
		t.HoldIDs = nil
	case p.SetHolds != nil:
		t.HoldIDs = append([]uuid.UUID(nil), p.SetHolds...)
		t.HoldID = nil
		if len(p.SetHolds) > 0 {
			first := p.SetHolds[0]
			t.HoldID = &first
		}
	}
	if p.ClearPendingAmountChange {
		t.PendingAmountChange = nil
	}
	if p.SetPendingAmountChange != nil {
		req := *p.SetPendingAmountChange
		t.PendingAmountChange = &req
	}
	if p.ClearPendingFeeChange {
		t.PendingFeeChange = nil
	}
	if p.SetPendingFeeChange != nil {
		req := *p.SetPendingFeeChange
		t.PendingFeeChange = &req
	}
	if p.ClearPendingUnclaim {
		t.PendingUnclaim = nil
	}
	if p.SetPendingUnclaim != nil {
		req := *p.SetPendingUnclaim
		t.PendingUnclaim = &req
	}
	t.UpdatedAt = now
}

type TicketFilter struct {
	Statuses      []TicketStatus
	AssignedTo    string
	ClientID      string
	CreatedBefore time.Time
	UpdatedBefore time.Time
	TOSBefore     time.Time
	Limit         int
}

func (f TicketFilter) Match(t Ticket) bool {
	if len(f.Statuses) > 0 && !t.Status.In(f.Statuses) {
		return false
	}
	if f.AssignedTo != "" && t.AssignedTo != f.AssignedTo {
		return false
	}
	if f.ClientID != "" && t.ClientID != f.ClientID {
		return false
	}
	if !f.CreatedBefore.IsZero() && !t.CreatedAt.Before(f.CreatedBefore) {
		return false
	}
	if !f.UpdatedBefore.IsZero() && !t.UpdatedAt.Before(f.UpdatedBefore) {
		return false
	}
	if !f.TOSBefore.IsZero() && (t.TOSDeadline == nil || !t.TOSDeadline.Before(f.TOSBefore)) {
		return false
	}
	return true
}

type AmountChangeInput struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

type FeeChangeInput struct {
	FeePercentage decimal.Decimal `json:"fee_percentage"`
	Reason        string          `json:"reason"`
}

type ReasonInput struct {
	Reason string `json:"reason"`
}
