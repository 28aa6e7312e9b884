package repository

import (
	"context"
	"testing"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func uniqueUser(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func seedDeposit(t *testing.T, repo DepositRepository, userID, currency, balance string) *models.Deposit {
	t.Helper()
	d, err := models.NewDeposit(userID, currency, "addr-"+userID)
	require.NoError(t, err)
	d.Balance = dec(balance)
	require.NoError(t, repo.CreateDeposit(context.Background(), d))
	return d
}

func newHold(userID, currency, units, fee string) *models.Hold {
	return &models.Hold{
		ID:              uuid.New(),
		TicketID:        uuid.New(),
		UserID:          userID,
		Currency:        currency,
		AmountUnits:     dec(units),
		AmountUSD:       dec(units),
		ServerFeeUSD:    dec(fee),
		ServerFeeCrypto: dec(fee),
		PriceAtHold:     decimal.NewFromInt(1),
		Status:          models.HoldActive,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestLedger_Deposits(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			user := uniqueUser("ex")

			seedDeposit(t, b.ledger, user, "USDT", "100")
			seedDeposit(t, b.ledger, user, "BTC", "0.5")

			d, err := models.NewDeposit(user, "usdt", "")
			require.NoError(t, err)
			assert.ErrorIs(t, b.ledger.CreateDeposit(ctx, d), apperrors.ErrDepositExists)

			got, err := b.ledger.GetDeposit(ctx, user, "USDT")
			require.NoError(t, err)
			assertDecimal(t, dec("100"), got.Balance)
			assertDecimal(t, decimal.Zero, got.Held)
			assert.True(t, got.IsActive)
			assert.Equal(t, "addr-"+user, got.Address)

			_, err = b.ledger.GetDeposit(ctx, user, "ETH")
			assert.ErrorIs(t, err, apperrors.ErrDepositNotFound)

			list, err := b.ledger.ListDeposits(ctx, user)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "BTC", list[0].Currency)
			assert.Equal(t, "USDT", list[1].Currency)

			require.NoError(t, b.ledger.SetDepositActive(ctx, user, "BTC", false))
			got, err = b.ledger.GetDeposit(ctx, user, "BTC")
			require.NoError(t, err)
			assert.False(t, got.IsActive)
			assert.ErrorIs(t, b.ledger.SetDepositActive(ctx, user, "ETH", true), apperrors.ErrDepositNotFound)
		})
	}
}

func TestLedger_Increment(t *testing.T) {
	tests := []struct {
		name        string
		currency    string
		delta       models.BalanceDelta
		wantErr     error
		wantBalance string
		wantHeld    string
	}{
		{
			name:        "резервирование в пределах доступного",
			currency:    "USDT",
			delta:       models.BalanceDelta{Held: dec("60")},
			wantBalance: "100",
			wantHeld:    "60",
		},
		{
			name:        "пополнение баланса",
			currency:    "USDT",
			delta:       models.BalanceDelta{Balance: dec("5.5")},
			wantBalance: "105.5",
			wantHeld:    "0",
		},
		{
			name:        "резерв больше баланса отклоняется",
			currency:    "USDT",
			delta:       models.BalanceDelta{Held: dec("100.01")},
			wantErr:     apperrors.ErrConcurrencyConflict,
			wantBalance: "100",
			wantHeld:    "0",
		},
		{
			name:        "отрицательный резерв отклоняется",
			currency:    "USDT",
			delta:       models.BalanceDelta{FeeReserved: dec("-1")},
			wantErr:     apperrors.ErrConcurrencyConflict,
			wantBalance: "100",
			wantHeld:    "0",
		},
		{
			name:     "нет депозита",
			currency: "ETH",
			delta:    models.BalanceDelta{Balance: dec("1")},
			wantErr:  apperrors.ErrDepositNotFound,
		},
	}

	for _, b := range backends(t) {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				ctx := context.Background()
				user := uniqueUser("ex")
				seedDeposit(t, b.ledger, user, "USDT", "100")

				got, err := b.ledger.Increment(ctx, user, tt.currency, tt.delta)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Nil(t, got)
				} else {
					require.NoError(t, err)
					assertDecimal(t, dec(tt.wantBalance), got.Balance)
				}
				if tt.wantBalance == "" {
					return
				}

				stored, err := b.ledger.GetDeposit(ctx, user, "USDT")
				require.NoError(t, err)
				assertDecimal(t, dec(tt.wantBalance), stored.Balance)
				assertDecimal(t, dec(tt.wantHeld), stored.Held)
				assert.NoError(t, stored.Validate())
			})
		}
	}
}

func TestLedger_SyncBalance(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			user := uniqueUser("ex")
			seedDeposit(t, b.ledger, user, "USDT", "100")
			_, err := b.ledger.Increment(ctx, user, "USDT", models.BalanceDelta{Held: dec("40"), FeeReserved: dec("1")})
			require.NoError(t, err)

			_, err = b.ledger.SyncBalance(ctx, user, "USDT", dec("40.99"))
			assert.ErrorIs(t, err, apperrors.ErrConsistencyViolation)

			d, err := b.ledger.SyncBalance(ctx, user, "USDT", dec("41"))
			require.NoError(t, err)
			assertDecimal(t, dec("41"), d.Balance)
			assertDecimal(t, decimal.Zero, d.Available())

			_, err = b.ledger.SyncBalance(ctx, user, "LTC", dec("1"))
			assert.ErrorIs(t, err, apperrors.ErrDepositNotFound)
		})
	}
}

func TestLedger_ReserveHold(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, repo LedgerRepository, user string)
		hold    func(user string) *models.Hold
		wantErr error
	}{
		{
			name:    "резерв суммы и комиссии",
			prepare: func(t *testing.T, repo LedgerRepository, user string) {},
			hold:    func(user string) *models.Hold { return newHold(user, "USDT", "39.20", "0.80") },
		},
		{
			name: "депозит отключён",
			prepare: func(t *testing.T, repo LedgerRepository, user string) {
				require.NoError(t, repo.SetDepositActive(context.Background(), user, "USDT", false))
			},
			hold:    func(user string) *models.Hold { return newHold(user, "USDT", "10", "0.50") },
			wantErr: apperrors.ErrDepositInactive,
		},
		{
			name:    "нет депозита в валюте",
			prepare: func(t *testing.T, repo LedgerRepository, user string) {},
			hold:    func(user string) *models.Hold { return newHold(user, "BTC", "0.1", "0.001") },
			wantErr: apperrors.ErrDepositNotFound,
		},
		{
			name:    "резерв больше доступного",
			prepare: func(t *testing.T, repo LedgerRepository, user string) {},
			hold:    func(user string) *models.Hold { return newHold(user, "USDT", "99.60", "0.50") },
			wantErr: apperrors.ErrConcurrencyConflict,
		},
		{
			name:    "пустой холд",
			prepare: func(t *testing.T, repo LedgerRepository, user string) {},
			hold:    func(user string) *models.Hold { return newHold(user, "USDT", "0", "0") },
			wantErr: apperrors.ErrMalformedRecord,
		},
	}

	for _, b := range backends(t) {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				ctx := context.Background()
				user := uniqueUser("ex")
				seedDeposit(t, b.ledger, user, "USDT", "100")
				tt.prepare(t, b.ledger, user)

				h := tt.hold(user)
				err := b.ledger.ReserveHold(ctx, h)
				d, getErr := b.ledger.GetDeposit(ctx, user, "USDT")
				require.NoError(t, getErr)

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assertDecimal(t, decimal.Zero, d.Committed())
					_, err = b.ledger.GetHold(ctx, h.ID)
					assert.ErrorIs(t, err, apperrors.ErrHoldNotFound)
					return
				}
				require.NoError(t, err)
				assertDecimal(t, h.AmountUnits, d.Held)
				assertDecimal(t, h.ServerFeeCrypto, d.FeeReserved)

				stored, err := b.ledger.GetHold(ctx, h.ID)
				require.NoError(t, err)
				assert.Equal(t, models.HoldActive, stored.Status)
				assertDecimal(t, h.AmountUnits, stored.AmountUnits)
				assertDecimal(t, h.ServerFeeUSD, stored.ServerFeeUSD)

				active, err := b.ledger.ListActiveHoldsByUser(ctx, user)
				require.NoError(t, err)
				require.Len(t, active, 1)
				assert.Equal(t, h.ID, active[0].ID)
			})
		}
	}
}

func TestLedger_SettleHold(t *testing.T) {
	tests := []struct {
		name         string
		status       models.HoldStatus
		wantBalance  string
		wantReserved string
		wantFee      bool
	}{
		{
			name:         "списание оставляет комиссию в резерве",
			status:       models.HoldReleased,
			wantBalance:  "60.80",
			wantReserved: "0.80",
			wantFee:      true,
		},
		{
			name:         "возврат снимает весь резерв",
			status:       models.HoldRefunded,
			wantBalance:  "100",
			wantReserved: "0",
		},
	}

	for _, b := range backends(t) {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				ctx := context.Background()
				user := uniqueUser("ex")
				seedDeposit(t, b.ledger, user, "USDT", "100")
				h := newHold(user, "USDT", "39.20", "0.80")
				require.NoError(t, b.ledger.ReserveHold(ctx, h))

				settled, changed, err := b.ledger.SettleHold(ctx, h.ID, tt.status)
				require.NoError(t, err)
				assert.True(t, changed)
				assert.Equal(t, tt.status, settled.Status)

				again, changed, err := b.ledger.SettleHold(ctx, h.ID, models.HoldRefunded)
				require.NoError(t, err)
				assert.False(t, changed)
				assert.Equal(t, tt.status, again.Status)

				d, err := b.ledger.GetDeposit(ctx, user, "USDT")
				require.NoError(t, err)
				assertDecimal(t, dec(tt.wantBalance), d.Balance)
				assertDecimal(t, decimal.Zero, d.Held)
				assertDecimal(t, dec(tt.wantReserved), d.FeeReserved)

				fees, err := b.ledger.ListFees(ctx, models.FeeFilter{HoldID: h.ID})
				require.NoError(t, err)
				if !tt.wantFee {
					assert.Empty(t, fees)
					return
				}
				require.Len(t, fees, 1)
				assert.Equal(t, models.FeePendingCollection, fees[0].Status)
				assert.Equal(t, user, fees[0].ExchangerID)
				assert.Equal(t, h.TicketID, fees[0].TicketID)
				assertDecimal(t, dec("0.80"), fees[0].AmountCrypto)

				reserved, err := b.ledger.ListDepositsWithReservedFees(ctx)
				require.NoError(t, err)
				var found bool
				for _, r := range reserved {
					if r.UserID == user {
						found = true
					}
				}
				assert.True(t, found)
			})
		}
	}
}

func TestLedger_SettleHold_Errors(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()

			_, _, err := b.ledger.SettleHold(ctx, uuid.New(), models.HoldReleased)
			assert.ErrorIs(t, err, apperrors.ErrHoldNotFound)

			_, _, err = b.ledger.SettleHold(ctx, uuid.New(), models.HoldActive)
			assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		})
	}
}

func TestLedger_CollectFee(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			user := uniqueUser("ex")
			platform := uniqueUser("platform")
			seedDeposit(t, b.ledger, user, "USDT", "100")

			var feeIDs []uuid.UUID
			for _, units := range []string{"20", "30"} {
				h := newHold(user, "USDT", units, "0.50")
				require.NoError(t, b.ledger.ReserveHold(ctx, h))
				_, _, err := b.ledger.SettleHold(ctx, h.ID, models.HoldReleased)
				require.NoError(t, err)
				fees, err := b.ledger.ListFees(ctx, models.FeeFilter{HoldID: h.ID})
				require.NoError(t, err)
				require.Len(t, fees, 1)
				feeIDs = append(feeIDs, fees[0].ID)
			}

			pending, err := b.ledger.ListFees(ctx, models.FeeFilter{ExchangerID: user, Status: models.FeePendingCollection})
			require.NoError(t, err)
			assert.Len(t, pending, 2)

			require.NoError(t, b.ledger.MarkFeeFailed(ctx, feeIDs[1], "node timeout"))
			failed, err := b.ledger.GetFee(ctx, feeIDs[1])
			require.NoError(t, err)
			assert.Equal(t, 1, failed.Attempts)
			assert.Equal(t, "node timeout", failed.LastError)

			for _, id := range feeIDs {
				fee, changed, err := b.ledger.CollectFee(ctx, id, platform)
				require.NoError(t, err)
				assert.True(t, changed)
				assert.Equal(t, models.FeeCollected, fee.Status)
				assert.NotNil(t, fee.CollectedAt)
				assert.Empty(t, fee.LastError)
			}

			fee, changed, err := b.ledger.CollectFee(ctx, feeIDs[0], platform)
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, models.FeeCollected, fee.Status)

			assert.ErrorIs(t, b.ledger.MarkFeeFailed(ctx, feeIDs[0], "late"), apperrors.ErrFeeNotFound)

			_, _, err = b.ledger.CollectFee(ctx, uuid.New(), platform)
			assert.ErrorIs(t, err, apperrors.ErrFeeNotFound)

			d, err := b.ledger.GetDeposit(ctx, user, "USDT")
			require.NoError(t, err)
			assertDecimal(t, dec("49"), d.Balance)
			assertDecimal(t, decimal.Zero, d.FeeReserved)

			p, err := b.ledger.GetDeposit(ctx, platform, "USDT")
			require.NoError(t, err)
			assertDecimal(t, dec("1"), p.Balance)
		})
	}
}
