package handlers

import (
	"net/http"

	"github.com/a2sh3r/holdengine/internal/middleware"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type availableResponse struct {
	Currency  string          `json:"currency"`
	Available decimal.Decimal `json:"available"`
}

type withdrawableResponse struct {
	CanWithdraw bool               `json:"can_withdraw"`
	PendingFees []models.ServerFee `json:"pending_fees"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

type adjustRequest struct {
	Field string          `json:"field"`
	Delta decimal.Decimal `json:"delta"`
}

func (h *Handler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	balances, err := h.ledgerService.ListBalances(r.Context(), userID)
	if err != nil {
		writeError(w, err, "list balances")
		return
	}
	if len(balances) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

func (h *Handler) RegisterDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.RegisterDepositRequest
	if err := decodeJSON(r, &req); err != nil || req.Currency == "" || req.Address == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	deposit, err := h.ledgerService.RegisterDeposit(r.Context(), userID, req)
	if err != nil {
		writeError(w, err, "register deposit")
		return
	}
	writeJSON(w, http.StatusCreated, deposit)
}

func (h *Handler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	currency := chi.URLParam(r, "currency")
	available, err := h.ledgerService.DisplayAvailable(r.Context(), userID, currency)
	if err != nil {
		writeError(w, err, "get available")
		return
	}
	cur, _ := models.NormalizeCurrency(currency)
	writeJSON(w, http.StatusOK, availableResponse{Currency: cur, Available: available})
}

func (h *Handler) SyncDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.SyncBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	deposit, err := h.ledgerService.SyncBalance(r.Context(), userID, chi.URLParam(r, "currency"), req.Balance)
	if err != nil {
		writeError(w, err, "sync balance")
		return
	}
	writeJSON(w, http.StatusOK, deposit)
}

func (h *Handler) Withdrawable(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	canWithdraw, err := h.feeService.CanWithdraw(r.Context(), userID)
	if err != nil {
		writeError(w, err, "can withdraw")
		return
	}
	resp := withdrawableResponse{CanWithdraw: canWithdraw, PendingFees: []models.ServerFee{}}
	if !canWithdraw {
		pending, err := h.feeService.PendingFees(r.Context(), userID)
		if err != nil {
			writeError(w, err, "pending fees")
			return
		}
		resp.PendingFees = pending
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SetDepositActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.ledgerService.SetActive(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "currency"), req.Active)
	if err != nil {
		writeError(w, err, "set deposit active")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdjustDeposit(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	deposit, err := h.ledgerService.Increment(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "currency"),
		models.BalanceField(req.Field), req.Delta)
	if err != nil {
		writeError(w, err, "adjust deposit")
		return
	}
	writeJSON(w, http.StatusOK, deposit)
}
