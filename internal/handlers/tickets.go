package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a2sh3r/holdengine/internal/middleware"
	"github.com/a2sh3r/holdengine/internal/models"
	"github.com/google/uuid"
)

type ticketAction func(ctx context.Context, id uuid.UUID, userID string) (*models.Ticket, error)

func (h *Handler) runTicketAction(w http.ResponseWriter, r *http.Request, op string, action ticketAction) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ticket, err := action(r.Context(), id, userID)
	if err != nil {
		writeError(w, err, op)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var in models.NewTicket
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	in.ClientID = userID

	ticket, err := h.ticketService.CreateTicket(r.Context(), in)
	if err != nil {
		writeError(w, err, "create ticket")
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicket(r.Context(), id)
	if err != nil {
		writeError(w, err, "get ticket")
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// ListTickets shows the claimable queue unless the caller asks for their own
// tickets with assigned=me or client=me. Admins may filter freely by status.
func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	var filter models.TicketFilter
	for _, s := range q["status"] {
		filter.Statuses = append(filter.Statuses, models.TicketStatus(s))
	}
	if q.Get("assigned") == "me" {
		filter.AssignedTo = userID
	}
	if q.Get("client") == "me" {
		filter.ClientID = userID
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}
	if filter.AssignedTo == "" && filter.ClientID == "" && !middleware.IsAdmin(r.Context()) {
		filter.Statuses = models.ClaimableStatuses
	}

	tickets, err := h.ticketService.ListTickets(r.Context(), filter)
	if err != nil {
		writeError(w, err, "list tickets")
		return
	}
	if len(tickets) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *Handler) AcceptTOS(w http.ResponseWriter, r *http.Request) {
	h.runTicketAction(w, r, "accept tos", h.ticketService.AcceptTOS)
}

func (h *Handler) ClaimTicket(w http.ResponseWriter, r *http.Request) {
	h.runTicketAction(w, r, "claim ticket", h.ticketService.ClaimTicket)
}

func (h *Handler) MarkClientSent(w http.ResponseWriter, r *http.Request) {
	h.runTicketAction(w, r, "mark client sent", h.ticketService.MarkClientSent)
}

func (h *Handler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	h.runTicketAction(w, r, "confirm receipt", h.ticketService.ConfirmReceipt)
}

func (h *Handler) CompleteTicket(w http.ResponseWriter, r *http.Request) {
	h.runTicketAction(w, r, "complete ticket", h.ticketService.CompleteTicket)
}

func (h *Handler) CancelTicket(w http.ResponseWriter, r *http.Request) {
	var in models.ReasonInput
	if err := decodeOptional(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "cancel ticket", func(ctx context.Context, id uuid.UUID, userID string) (*models.Ticket, error) {
		return h.ticketService.CancelTicket(ctx, id, userID, in.Reason)
	})
}

func (h *Handler) CloseTicket(w http.ResponseWriter, r *http.Request) {
	var in models.ReasonInput
	if err := decodeOptional(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "close ticket", func(ctx context.Context, id uuid.UUID, userID string) (*models.Ticket, error) {
		return h.ticketService.CloseTicket(ctx, id, userID, in.Reason)
	})
}

func (h *Handler) RequestAmountChange(w http.ResponseWriter, r *http.Request) {
	var in models.AmountChangeInput
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "request amount change", func(ctx context.Context, id uuid.UUID, userID string) (*models.Ticket, error) {
		return h.ticketService.RequestAmountChange(ctx, id, userID, in)
	})
}

func (h *Handler) ApproveAmountChange(w http.ResponseWriter, r *http.Request) {
	h.runTicketAction(w, r, "approve amount change", h.ticketService.ApproveAmountChange)
}

func (h *Handler) RequestFeeChange(w http.ResponseWriter, r *http.Request) {
	var in models.FeeChangeInput
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "request fee change", func(ctx context.Context, id uuid.UUID, userID string) (*models.Ticket, error) {
		return h.ticketService.RequestFeeChange(ctx, id, userID, in)
	})
}

func (h *Handler) ApproveFeeChange(w http.ResponseWriter, r *http.Request) {
	h.runTicketAction(w, r, "approve fee change", h.ticketService.ApproveFeeChange)
}

func (h *Handler) RequestUnclaim(w http.ResponseWriter, r *http.Request) {
	var in models.ReasonInput
	if err := decodeOptional(r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	h.runTicketAction(w, r, "request unclaim", func(ctx context.Context, id uuid.UUID, userID string) (*models.Ticket, error) {
		return h.ticketService.RequestUnclaim(ctx, id, userID, in)
	})
}

func (h *Handler) ApproveUnclaim(w http.ResponseWriter, r *http.Request) {
	h.runTicketAction(w, r, "approve unclaim", h.ticketService.ApproveUnclaim)
}
