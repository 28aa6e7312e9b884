package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/a2sh3r/holdengine/internal/apperrors"
	"github.com/a2sh3r/holdengine/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// errorStatuses is checked in order; the first match wins. An empty message
// falls back to the sentinel's text.
var errorStatuses = []struct {
	err     error
	status  int
	message string
}{
	{apperrors.ErrInsufficientFunds, http.StatusPaymentRequired, "insufficient balance"},
	{apperrors.ErrTicketUnavailable, http.StatusConflict, "ticket no longer available"},
	{apperrors.ErrConsistencyViolation, http.StatusInternalServerError, "internal server error"},
	{apperrors.ErrConcurrencyConflict, http.StatusConflict, "concurrent update, retry"},
	{apperrors.ErrPriceUnavailable, http.StatusServiceUnavailable, "price unavailable"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{apperrors.ErrNotParticipant, http.StatusForbidden, ""},
	{apperrors.ErrOwnTicket, http.StatusForbidden, ""},
	{apperrors.ErrTicketNotFound, http.StatusNotFound, ""},
	{apperrors.ErrHoldNotFound, http.StatusNotFound, ""},
	{apperrors.ErrDepositNotFound, http.StatusNotFound, ""},
	{apperrors.ErrFeeNotFound, http.StatusNotFound, ""},
	{apperrors.ErrInvalidTransition, http.StatusConflict, ""},
	{apperrors.ErrNoPendingRequest, http.StatusConflict, ""},
	{apperrors.ErrSelfApproval, http.StatusConflict, ""},
	{apperrors.ErrDepositExists, http.StatusConflict, ""},
	{apperrors.ErrDepositInactive, http.StatusConflict, ""},
	{apperrors.ErrPendingFees, http.StatusConflict, ""},
	{apperrors.ErrInvalidAmount, http.StatusBadRequest, ""},
	{apperrors.ErrInvalidCurrency, http.StatusBadRequest, ""},
	{apperrors.ErrInvalidFee, http.StatusBadRequest, ""},
	{apperrors.ErrInvalidField, http.StatusBadRequest, ""},
	{apperrors.ErrMalformedRecord, http.StatusBadRequest, ""},
}

func writeError(w http.ResponseWriter, err error, op string) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		if e.status >= http.StatusInternalServerError {
			logger.Log.Error(op+" failed", zap.Error(err))
		}
		msg := e.message
		if msg == "" {
			msg = e.err.Error()
		}
		http.Error(w, msg, e.status)
		return
	}
	logger.Log.Error(op+" failed", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response json", zap.Error(err))
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// decodeOptional accepts an empty body.
func decodeOptional(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
