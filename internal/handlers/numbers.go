package handlers

import (
	"net/http"
	"strings"

	"github.com/notinrange/blackrose-task-backend/internal/auth"
	"github.com/notinrange/blackrose-task-backend/internal/models"
	ws "github.com/notinrange/blackrose-task-backend/internal/websocket"
)

func (h *Handler) ListNumbers(w http.ResponseWriter, r *http.Request) {
	numbers, err := h.numbers.ListAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch numbers")
		return
	}
	if numbers == nil {
		numbers = []models.Number{}
	}
	respondJSON(w, http.StatusOK, numbers)
}

// WSNumbers verifies the handshake token once, then hands the connection to
// a streaming session. A missing or invalid token closes the socket with a
// policy-violation code before any data flows.
func (h *Handler) WSNumbers(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if token == "" {
		ws.ClosePolicyViolation(w, r, "missing token")
		return
	}
	if _, err := auth.ParseToken(h.cfg.JWTSecret, token); err != nil {
		ws.ClosePolicyViolation(w, r, "invalid token")
		return
	}
	ws.ServeStream(w, r, h.numbers, h.cfg.FeedInterval, h.logger)
}
