package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/shopspring/decimal"
)

type BalanceField string

const (
	FieldBalance     BalanceField = "balance"
	FieldHeld        BalanceField = "held"
	FieldFeeReserved BalanceField = "fee_reserved"
)

func ParseBalanceField(s string) (BalanceField, error) {
	switch f := BalanceField(s); f {
	case FieldBalance, FieldHeld, FieldFeeReserved:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidField, s)
	}
}

// Deposit is an exchanger's collateral record for one currency.
type Deposit struct {
	UserID              string          `json:"user_id"`
	Currency            string          `json:"currency"`
	Balance             decimal.Decimal `json:"balance"`
	Held                decimal.Decimal `json:"held"`
	FeeReserved         decimal.Decimal `json:"fee_reserved"`
	Address             string          `json:"address,omitempty"`
	EncryptedPrivateKey string          `json:"-"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func NewDeposit(userID, currency, address string) (*Deposit, error) {
	cur, err := NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: empty user id", apperrors.ErrMalformedRecord)
	}

	now := time.Now().UTC()
	return &Deposit{
		UserID:      userID,
		Currency:    cur,
		Balance:     decimal.Zero,
		Held:        decimal.Zero,
		FeeReserved: decimal.Zero,
		Address:     address,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Available may be negative only when the record is corrupt.
func (d Deposit) Available() decimal.Decimal {
	return d.Balance.Sub(d.Held).Sub(d.FeeReserved)
}

func (d Deposit) Committed() decimal.Decimal {
	return d.Held.Add(d.FeeReserved)
}

func (d Deposit) Validate() error {
	if d.UserID == "" || d.Currency == "" {
		return fmt.Errorf("%w: deposit without user or currency", apperrors.ErrMalformedRecord)
	}
	if d.Held.IsNegative() || d.FeeReserved.IsNegative() {
		return fmt.Errorf("%w: %s/%s held=%s fee_reserved=%s",
			apperrors.ErrConsistencyViolation, d.UserID, d.Currency, d.Held, d.FeeReserved)
	}
	if d.Balance.LessThan(d.Committed()) {
		return fmt.Errorf("%w: %s/%s balance=%s below held+fee_reserved=%s",
			apperrors.ErrConsistencyViolation, d.UserID, d.Currency, d.Balance, d.Committed())
	}
	return nil
}

// BalanceDelta is applied to a deposit as one atomic increment.
type BalanceDelta struct {
	Balance     decimal.Decimal
	Held        decimal.Decimal
	FeeReserved decimal.Decimal
}

func DeltaFor(field BalanceField, amount decimal.Decimal) BalanceDelta {
	var d BalanceDelta
	switch field {
	case FieldBalance:
		d.Balance = amount
	case FieldHeld:
		d.Held = amount
	case FieldFeeReserved:
		d.FeeReserved = amount
	}
	return d
}

func (d BalanceDelta) IsZero() bool {
	return d.Balance.IsZero() && d.Held.IsZero() && d.FeeReserved.IsZero()
}

// Apply returns the deposit as it would look after the delta.
func (d BalanceDelta) Apply(dep Deposit) Deposit {
	dep.Balance = dep.Balance.Add(d.Balance)
	dep.Held = dep.Held.Add(d.Held)
	dep.FeeReserved = dep.FeeReserved.Add(d.FeeReserved)
	return dep
}

type BalanceView struct {
	Currency     string           `json:"currency"`
	Balance      decimal.Decimal  `json:"balance"`
	Held         decimal.Decimal  `json:"held"`
	FeeReserved  decimal.Decimal  `json:"fee_reserved"`
	Available    decimal.Decimal  `json:"available"`
	PriceUSD     *decimal.Decimal `json:"price_usd,omitempty"`
	AvailableUSD *decimal.Decimal `json:"available_usd,omitempty"`
	IsActive     bool             `json:"is_active"`
}

type RegisterDepositRequest struct {
	Currency   string `json:"currency"`
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
}

type SyncBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

func NormalizeCurrency(currency string) (string, error) {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" || len(cur) > 16 {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, currency)
	}
	return cur, nil
}

// ParseDecimal rejects empty and malformed numeric strings.
func ParseDecimal(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is empty", apperrors.ErrMalformedRecord, field)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s=%q: %v", apperrors.ErrMalformedRecord, field, raw, err)
	}
	return d, nil
}
