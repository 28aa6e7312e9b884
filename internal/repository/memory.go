package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type depositKey struct {
	userID   string
	currency string
}

// MemoryStore keeps deposits, holds, fees, tickets and audit entries in
// process. Every mutation runs under one lock, which gives it the same
// atomicity as a single guarded statement or transaction in Postgres.
type MemoryStore struct {
	mu       sync.RWMutex
	deposits map[depositKey]*models.Deposit
	holds    map[uuid.UUID]*models.Hold
	fees     map[uuid.UUID]*models.ServerFee
	tickets  map[uuid.UUID]*models.Ticket
	audit    []models.AuditEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		deposits: make(map[depositKey]*models.Deposit),
		holds:    make(map[uuid.UUID]*models.Hold),
		fees:     make(map[uuid.UUID]*models.ServerFee),
		tickets:  make(map[uuid.UUID]*models.Ticket),
	}
}

var (
	_ LedgerRepository = (*MemoryStore)(nil)
	_ TicketRepository = (*MemoryStore)(nil)
	_ AuditRepository  = (*MemoryStore)(nil)
)

// --- deposits ---

func (s *MemoryStore) CreateDeposit(_ context.Context, d *models.Deposit) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := depositKey{d.UserID, d.Currency}
	if _, ok := s.deposits[key]; ok {
		return apperrors.ErrDepositExists
	}
	cp := *d
	s.deposits[key] = &cp
	return nil
}

func (s *MemoryStore) GetDeposit(_ context.Context, userID, currency string) (*models.Deposit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.deposits[depositKey{userID, currency}]
	if !ok {
		return nil, apperrors.ErrDepositNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *MemoryStore) ListDeposits(_ context.Context, userID string) ([]models.Deposit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Deposit
	for key, d := range s.deposits {
		if key.userID == userID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}

func (s *MemoryStore) ListDepositsWithReservedFees(_ context.Context) ([]models.Deposit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Deposit
	for _, d := range s.deposits {
		if d.FeeReserved.IsPositive() {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Currency != out[j].Currency {
			return out[i].Currency < out[j].Currency
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

func (s *MemoryStore) SetDepositActive(_ context.Context, userID, currency string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deposits[depositKey{userID, currency}]
	if !ok {
		return apperrors.ErrDepositNotFound
	}
	d.IsActive = active
	d.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryStore) Increment(_ context.Context, userID, currency string, delta models.BalanceDelta) (*models.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.applyDeltaLocked(userID, currency, delta)
	if err != nil {
		return nil, err
	}
	cp := *d
	return &cp, nil
}

func (s *MemoryStore) applyDeltaLocked(userID, currency string, delta models.BalanceDelta) (*models.Deposit, error) {
	d, ok := s.deposits[depositKey{userID, currency}]
	if !ok {
		return nil, apperrors.ErrDepositNotFound
	}
	next := delta.Apply(*d)
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s/%s rejected delta balance=%s held=%s fee_reserved=%s",
			apperrors.ErrConcurrencyConflict, userID, currency, delta.Balance, delta.Held, delta.FeeReserved)
	}
	next.UpdatedAt = time.Now().UTC()
	*d = next
	return d, nil
}

func (s *MemoryStore) SyncBalance(_ context.Context, userID, currency string, balance decimal.Decimal) (*models.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deposits[depositKey{userID, currency}]
	if !ok {
		return nil, apperrors.ErrDepositNotFound
	}
	if balance.LessThan(d.Committed()) {
		return nil, fmt.Errorf("%w: on-chain balance %s of %s/%s is below committed %s",
			apperrors.ErrConsistencyViolation, balance, userID, currency, d.Committed())
	}
	d.Balance = balance
	d.UpdatedAt = time.Now().UTC()
	cp := *d
	return &cp, nil
}

// --- holds ---

func (s *MemoryStore) ReserveHold(_ context.Context, hold *models.Hold) error {
	if err := hold.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deposits[depositKey{hold.UserID, hold.Currency}]
	if !ok {
		return apperrors.ErrDepositNotFound
	}
	if !d.IsActive {
		return apperrors.ErrDepositInactive
	}
	if _, exists := s.holds[hold.ID]; exists {
		return fmt.Errorf("%w: hold %s already exists", apperrors.ErrMalformedRecord, hold.ID)
	}
	if _, err := s.applyDeltaLocked(hold.UserID, hold.Currency, hold.ReservationDelta()); err != nil {
		return err
	}
	cp := *hold
	s.holds[hold.ID] = &cp
	return nil
}

func (s *MemoryStore) SettleHold(_ context.Context, holdID uuid.UUID, status models.HoldStatus) (*models.Hold, bool, error) {
	if !status.IsTerminal() {
		return nil, false, fmt.Errorf("%w: cannot settle hold into %q", apperrors.ErrInvalidTransition, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holds[holdID]
	if !ok {
		return nil, false, apperrors.ErrHoldNotFound
	}
	if h.Status != models.HoldActive {
		cp := *h
		return &cp, false, nil
	}

	if _, err := s.applyDeltaLocked(h.UserID, h.Currency, h.SettlementDelta(status)); err != nil {
		return nil, false, fmt.Errorf("%w: settling hold %s: %v", apperrors.ErrConsistencyViolation, holdID, err)
	}

	now := time.Now().UTC()
	h.Status = status
	if status == models.HoldReleased {
		h.ReleasedAt = &now
		if h.ServerFeeCrypto.IsPositive() {
			fee := models.NewServerFee(*h, now)
			s.fees[fee.ID] = &fee
		}
	} else {
		h.RefundedAt = &now
	}
	cp := *h
	return &cp, true, nil
}

func (s *MemoryStore) GetHold(_ context.Context, holdID uuid.UUID) (*models.Hold, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.holds[holdID]
	if !ok {
		return nil, apperrors.ErrHoldNotFound
	}
	cp := *h
	return &cp, nil
}

func (s *MemoryStore) ListHoldsByTicket(_ context.Context, ticketID uuid.UUID) ([]models.Hold, error) {
	return s.listHolds(func(h *models.Hold) bool { return h.TicketID == ticketID }), nil
}

func (s *MemoryStore) ListActiveHoldsByUser(_ context.Context, userID string) ([]models.Hold, error) {
	return s.listHolds(func(h *models.Hold) bool {
		return h.UserID == userID && h.Status == models.HoldActive
	}), nil
}

func (s *MemoryStore) listHolds(match func(*models.Hold) bool) []models.Hold {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Hold
	for _, h := range s.holds {
		if match(h) {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// --- fees ---

func (s *MemoryStore) GetFee(_ context.Context, feeID uuid.UUID) (*models.ServerFee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fees[feeID]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	cp := *f
	return &cp, nil
}

func (s *MemoryStore) ListFees(_ context.Context, filter models.FeeFilter) ([]models.ServerFee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ServerFee
	for _, f := range s.fees {
		if filter.Match(*f) {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *MemoryStore) CollectFee(_ context.Context, feeID uuid.UUID, platformAccount string) (*models.ServerFee, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fees[feeID]
	if !ok {
		return nil, false, apperrors.ErrFeeNotFound
	}
	if f.Status != models.FeePendingCollection {
		cp := *f
		return &cp, false, nil
	}

	debit := models.BalanceDelta{
		Balance:     f.AmountCrypto.Neg(),
		FeeReserved: f.AmountCrypto.Neg(),
	}
	if _, err := s.applyDeltaLocked(f.ExchangerID, f.Currency, debit); err != nil {
		if errors.Is(err, apperrors.ErrDepositNotFound) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("%w: collecting fee %s: %v", apperrors.ErrConsistencyViolation, feeID, err)
	}

	key := depositKey{platformAccount, f.Currency}
	platform, ok := s.deposits[key]
	if !ok {
		now := time.Now().UTC()
		platform = &models.Deposit{
			UserID:      platformAccount,
			Currency:    f.Currency,
			Balance:     decimal.Zero,
			Held:        decimal.Zero,
			FeeReserved: decimal.Zero,
			IsActive:    true,
			CreatedAt:   now,
		}
		s.deposits[key] = platform
	}
	platform.Balance = platform.Balance.Add(f.AmountCrypto)
	platform.UpdatedAt = time.Now().UTC()

	now := time.Now().UTC()
	f.Status = models.FeeCollected
	f.CollectedAt = &now
	f.Attempts++
	f.LastError = ""
	cp := *f
	return &cp, true, nil
}

func (s *MemoryStore) MarkFeeFailed(_ context.Context, feeID uuid.UUID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.fees[feeID]
	if !ok || f.Status != models.FeePendingCollection {
		return apperrors.ErrFeeNotFound
	}
	f.Attempts++
	f.LastError = reason
	return nil
}

// --- tickets ---

func (s *MemoryStore) CreateTicket(_ context.Context, t *models.Ticket) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[t.ID]; ok {
		return fmt.Errorf("%w: ticket %s already exists", apperrors.ErrMalformedRecord, t.ID)
	}
	s.tickets[t.ID] = cloneTicket(t)
	return nil
}

func (s *MemoryStore) GetTicket(_ context.Context, id uuid.UUID) (*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, apperrors.ErrTicketNotFound
	}
	return cloneTicket(t), nil
}

func (s *MemoryStore) CompareAndSwap(_ context.Context, id uuid.UUID, cond models.TicketCondition, patch models.TicketPatch) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, apperrors.ErrTicketNotFound
	}
	if !cond.Match(*t) {
		return nil, fmt.Errorf("%w: ticket %s is %s", apperrors.ErrConcurrencyConflict, id, t.Status)
	}
	patch.Apply(t, time.Now().UTC())
	return cloneTicket(t), nil
}

func (s *MemoryStore) ListTickets(_ context.Context, filter models.TicketFilter) ([]models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Ticket
	for _, t := range s.tickets {
		if filter.Match(*t) {
			out = append(out, *cloneTicket(t))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func cloneTicket(t *models.Ticket) *models.Ticket {
	cp := *t
	cp.HoldIDs = append([]uuid.UUID(nil), t.HoldIDs...)
	if t.HoldID != nil {
		id := *t.HoldID
		cp.HoldID = &id
	}
	if t.PendingAmountChange != nil {
		req := *t.PendingAmountChange
		cp.PendingAmountChange = &req
	}
	if t.PendingFeeChange != nil {
		req := *t.PendingFeeChange
		cp.PendingFeeChange = &req
	}
	if t.PendingUnclaim != nil {
		req := *t.PendingUnclaim
		cp.PendingUnclaim = &req
	}
	return &cp
}

// --- audit ---

func (s *MemoryStore) Record(_ context.Context, entry models.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audit = append(s.audit, entry)
	return nil
}

func (s *MemoryStore) ListByResource(_ context.Context, resourceType, resourceID string) ([]models.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.AuditEntry
	for _, e := range s.audit {
		if e.ResourceType == resourceType && e.ResourceID == resourceID {
			out = append(out, e)
		}
	}
	return out, nil
}
