package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/notinrange/blackrose-task-backend/internal/auth"
	"github.com/notinrange/blackrose-task-backend/internal/db"
	"github.com/notinrange/blackrose-task-backend/internal/validator"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateUsername(req.Username); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidatePassword(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.users.GetByUsername(r.Context(), req.Username); err == nil {
		respondError(w, http.StatusBadRequest, "Username already exists")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	err := h.txRunner.WithTx(r.Context(), func(tx *sqlx.Tx) error {
		return h.users.Create(r.Context(), tx, uuid.NewString(), req.Username, req.Password)
	})
	if err != nil {
		// Two racing registrations both pass the existence check; the
		// unique index decides the loser.
		if db.IsUniqueViolation(err) {
			respondError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	// Passwords are stored and compared verbatim; hashing is out of scope
	// for this service by contract.
	if user.Password != req.Password {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := auth.GenerateToken(h.cfg.JWTSecret, user.Username)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	// The session row is a write-only audit trail; verification never
	// reads it back.
	if err := h.txRunner.WithTx(r.Context(), func(tx *sqlx.Tx) error {
		return h.sessions.Log(r.Context(), tx, uuid.NewString(), user.Username, token)
	}); err != nil {
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"token": token,
	})
}
