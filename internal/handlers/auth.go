package handlers

import (
	"net/http"

	"github.com/a2sh3r/holdengine/internal/models"
)

func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeJSON(r, &req); err != nil || req.UserID == "" || req.Secret == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	token, err := h.authService.IssueToken(r.Context(), req)
	if err != nil {
		writeError(w, err, "issue token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}
