package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ServerFeeRate    = decimal.RequireFromString("0.02")
	ServerFeeMinimum = decimal.RequireFromString("0.50")

	TicketFlatFee          = decimal.NewFromInt(4)
	TicketFlatFeeThreshold = decimal.NewFromInt(40)
)

// ServerFeeUSD is the platform cut for one drawn slice, never more than the slice itself.
func ServerFeeUSD(drawnUSD decimal.Decimal) decimal.Decimal {
	fee := decimal.Max(drawnUSD.Mul(ServerFeeRate), ServerFeeMinimum)
	return decimal.Min(fee, drawnUSD)
}

// TicketFee returns the client fee and the amount the client receives.
func TicketFee(amountUSD, percentage decimal.Decimal) (fee, receiving decimal.Decimal) {
	if amountUSD.LessThan(TicketFlatFeeThreshold) {
		fee = TicketFlatFee
	} else {
		fee = amountUSD.Mul(percentage).Div(decimal.NewFromInt(100)).Round(2)
	}
	return fee, amountUSD.Sub(fee)
}

type ServerFeeStatus string

const (
	FeePendingCollection ServerFeeStatus = "pending_collection"
	FeeCollected         ServerFeeStatus = "collected"
)

type ServerFee struct {
	ID           uuid.UUID       `json:"id"`
	TicketID     uuid.UUID       `json:"ticket_id"`
	HoldID       uuid.UUID       `json:"hold_id"`
	ExchangerID  string          `json:"exchanger_id"`
	Currency     string          `json:"currency"`
	AmountCrypto decimal.Decimal `json:"amount_crypto"`
	AmountUSD    decimal.Decimal `json:"amount_usd"`
	Status       ServerFeeStatus `json:"status"`
	Attempts     int             `json:"attempts"`
	LastError    string          `json:"last_error,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CollectedAt  *time.Time      `json:"collected_at,omitempty"`
}

// NewServerFee builds the pending fee record produced when a hold is deducted.
func NewServerFee(h Hold, at time.Time) ServerFee {
	return ServerFee{
		ID:           uuid.New(),
		TicketID:     h.TicketID,
		HoldID:       h.ID,
		ExchangerID:  h.UserID,
		Currency:     h.Currency,
		AmountCrypto: h.ServerFeeCrypto,
		AmountUSD:    h.ServerFeeUSD,
		Status:       FeePendingCollection,
		CreatedAt:    at,
	}
}

type FeeFilter struct {
	TicketID    uuid.UUID
	HoldID      uuid.UUID
	ExchangerID string
	Status      ServerFeeStatus
}

func (f FeeFilter) Match(fee ServerFee) bool {
	if f.TicketID != uuid.Nil && fee.TicketID != f.TicketID {
		return false
	}
	if f.HoldID != uuid.Nil && fee.HoldID != f.HoldID {
		return false
	}
	if f.ExchangerID != "" && fee.ExchangerID != f.ExchangerID {
		return false
	}
	if f.Status != "" && fee.Status != f.Status {
		return false
	}
	return true
}

type FeeFailure struct {
	FeeID  uuid.UUID `json:"fee_id"`
	Reason string    `json:"reason"`
}

type CollectionResult struct {
	Collected    int                        `json:"collected"`
	Failed       int                        `json:"failed"`
	ByCurrency   map[string]decimal.Decimal `json:"by_currency"`
	CollectedUSD decimal.Decimal            `json:"collected_usd"`
	Failures     []FeeFailure               `json:"failures,omitempty"`
}

type FeeSummary struct {
	Currency       string          `json:"currency"`
	CollectedCount int             `json:"collected_count"`
	Collected      decimal.Decimal `json:"collected"`
	PendingCount   int             `json:"pending_count"`
	Pending        decimal.Decimal `json:"pending"`
}

type CollectFeeRequest struct {
	TicketID    uuid.UUID `json:"ticket_id"`
	ExchangerID string    `json:"exchanger_id"`
}
