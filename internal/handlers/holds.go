package handlers

import (
	"net/http"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/middleware"
)

func (h *Handler) ListActiveHolds(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	holds, err := h.holdService.GetActiveHolds(r.Context(), userID)
	if err != nil {
		writeError(w, err, "list active holds")
		return
	}
	if len(holds) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, holds)
}

func (h *Handler) GetTicketHolds(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicket(r.Context(), id)
	if err != nil {
		writeError(w, err, "get ticket")
		return
	}
	if !ticket.IsParticipant(userID) && !middleware.IsAdmin(r.Context()) {
		writeError(w, apperrors.ErrNotParticipant, "get ticket holds")
		return
	}

	holds, err := h.holdService.GetHoldsByTicket(r.Context(), id)
	if err != nil {
		writeError(w, err, "get ticket holds")
		return
	}
	if len(holds) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, holds)
}

func (h *Handler) GetHold(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	hold, err := h.holdService.GetHold(r.Context(), id)
	if err != nil {
		writeError(w, err, "get hold")
		return
	}
	if hold.UserID != userID && !middleware.IsAdmin(r.Context()) {
		http.Error(w, "hold belongs to another user", http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, hold)
}

// RefundHold is an admin escape hatch; ticket flows refund through the ticket.
func (h *Handler) RefundHold(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	refunded, err := h.holdService.RefundHold(r.Context(), id)
	if err != nil {
		writeError(w, err, "refund hold")
		return
	}
	writeJSON(w, http.StatusOK, refunded)
}
