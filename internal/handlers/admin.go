package handlers

import (
	"context"
	"net/http"

	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/a2sh3r/holdengine/internal/service"
	"github.com/google/uuid"
)

type forceClaimRequest struct {
	ExchangerID string `json:"exchanger_id"`
}

func (h *Handler) CollectServerFee(w http.ResponseWriter, r *http.Request) {
	var req models.CollectFeeRequest
	if err := decodeJSON(r, &req); err != nil || req.TicketID == uuid.Nil || req.ExchangerID == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	result, err := h.feeService.CollectServerFee(r.Context(), req.TicketID, req.ExchangerID)
	if err != nil {
		writeError(w, err, "collect server fee")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) CollectPendingFees(w http.ResponseWriter, r *http.Request) {
	result, err := h.feeService.CollectPending(r.Context())
	if err != nil {
		writeError(w, err, "collect pending fees")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) PendingFees(w http.ResponseWriter, r *http.Request) {
	fees, err := h.feeService.PendingFees(r.Context(), r.URL.Query().Get("exchanger_id"))
	if err != nil {
		writeError(w, err, "pending fees")
		return
	}
	if len(fees) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, fees)
}

func (h *Handler) FeeSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.feeService.Summary(r.Context())
	if err != nil {
		writeError(w, err, "fee summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) ForceClaim(w http.ResponseWriter, r *http.Request) {
	var req forceClaimRequest
	if err := decodeJSON(r, &req); err != nil || req.ExchangerID == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "force claim", func(ctx context.Context, id uuid.UUID, adminID string) (*models.Ticket, error) {
		return h.ticketService.ForceClaim(ctx, id, req.ExchangerID, adminID)
	})
}

func (h *Handler) AdminChangeAmount(w http.ResponseWriter, r *http.Request) {
	var in models.AmountChangeInput
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "admin change amount", func(ctx context.Context, id uuid.UUID, adminID string) (*models.Ticket, error) {
		return h.ticketService.AdminChangeAmount(ctx, id, adminID, in)
	})
}

func (h *Handler) AdminChangeFee(w http.ResponseWriter, r *http.Request) {
	var in models.FeeChangeInput
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "admin change fee", func(ctx context.Context, id uuid.UUID, adminID string) (*models.Ticket, error) {
		return h.ticketService.AdminChangeFee(ctx, id, adminID, in)
	})
}

// AdminCancelTicket cancels as the system actor so participant checks do not apply.
func (h *Handler) AdminCancelTicket(w http.ResponseWriter, r *http.Request) {
	var in models.ReasonInput
	if err := decodeOptional(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "admin cancel ticket", func(ctx context.Context, id uuid.UUID, _ string) (*models.Ticket, error) {
		return h.ticketService.CancelTicket(ctx, id, service.SystemActor, in.Reason)
	})
}
