package models

import (
	"fmt"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HoldStatus string

const (
	HoldActive   HoldStatus = "active"
	HoldReleased HoldStatus = "released"
	HoldRefunded HoldStatus = "refunded"
)

func (s HoldStatus) IsTerminal() bool {
	return s == HoldReleased || s == HoldRefunded
}

// Hold reserves AmountUnits plus ServerFeeCrypto of one deposit for a ticket.
type Hold struct {
	ID              uuid.UUID       `json:"id"`
	TicketID        uuid.UUID       `json:"ticket_id"`
	UserID          string          `json:"user_id"`
	Currency        string          `json:"currency"`
	AmountUnits     decimal.Decimal `json:"amount_units"`
	AmountUSD       decimal.Decimal `json:"amount_usd"`
	ServerFeeUSD    decimal.Decimal `json:"server_fee_usd"`
	ServerFeeCrypto decimal.Decimal `json:"server_fee_crypto"`
	PriceAtHold     decimal.Decimal `json:"price_at_hold"`
	Status          HoldStatus      `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	ReleasedAt      *time.Time      `json:"released_at,omitempty"`
	RefundedAt      *time.Time      `json:"refunded_at,omitempty"`
}

// CoveredUSD is the part of the ticket amount this hold draws.
func (h Hold) CoveredUSD() decimal.Decimal {
	return h.AmountUSD.Add(h.ServerFeeUSD)
}

// ReservedUnits is everything the hold keeps out of the deposit's available balance.
func (h Hold) ReservedUnits() decimal.Decimal {
	return h.AmountUnits.Add(h.ServerFeeCrypto)
}

func (h Hold) Validate() error {
	switch {
	case h.ID == uuid.Nil, h.TicketID == uuid.Nil:
		return fmt.Errorf("%w: hold without id or ticket", apperrors.ErrMalformedRecord)
	case h.UserID == "", h.Currency == "":
		return fmt.Errorf("%w: hold without user or currency", apperrors.ErrMalformedRecord)
	case h.AmountUnits.IsNegative(), h.ServerFeeCrypto.IsNegative():
		return fmt.Errorf("%w: negative hold units", apperrors.ErrMalformedRecord)
	case h.ReservedUnits().IsZero():
		return fmt.Errorf("%w: empty hold", apperrors.ErrMalformedRecord)
	case !h.PriceAtHold.IsPositive():
		return fmt.Errorf("%w: hold without price", apperrors.ErrMalformedRecord)
	}
	switch h.Status {
	case HoldActive, HoldReleased, HoldRefunded:
	default:
		return fmt.Errorf("%w: hold status %q", apperrors.ErrMalformedRecord, h.Status)
	}
	return nil
}

// SettlementDelta is the ledger change produced by moving an active hold to status.
// Deduct keeps the fee reserved; it leaves through fee collection.
func (h Hold) SettlementDelta(status HoldStatus) BalanceDelta {
	switch status {
	case HoldReleased:
		return BalanceDelta{
			Balance: h.AmountUnits.Neg(),
			Held:    h.AmountUnits.Neg(),
		}
	case HoldRefunded:
		return BalanceDelta{
			Held:        h.AmountUnits.Neg(),
			FeeReserved: h.ServerFeeCrypto.Neg(),
		}
	}
	return BalanceDelta{}
}

func (h Hold) ReservationDelta() BalanceDelta {
	return BalanceDelta{
		Held:        h.AmountUnits,
		FeeReserved: h.ServerFeeCrypto,
	}
}

func TotalCoveredUSD(holds []Hold) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holds {
		total = total.Add(h.CoveredUSD())
	}
	return total
}

func HoldIDs(holds []Hold) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(holds))
	for _, h := range holds {
		ids = append(ids, h.ID)
	}
	return ids
}
