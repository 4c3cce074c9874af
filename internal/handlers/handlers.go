package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/notinrange/blackrose-task-backend/internal/config"
	"github.com/notinrange/blackrose-task-backend/internal/db"
)

type Handler struct {
	txRunner db.TxRunner
	cfg      config.Config
	users    UserStore
	sessions SessionStore
	numbers  NumberStore
	records  RecordStore
	logger   *slog.Logger
}

func New(txRunner db.TxRunner, cfg config.Config, users UserStore, sessions SessionStore, numbers NumberStore, records RecordStore, logger *slog.Logger) *Handler {
	return &Handler{
		txRunner: txRunner,
		cfg:      cfg,
		users:    users,
		sessions: sessions,
		numbers:  numbers,
		records:  records,
		logger:   logger,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
