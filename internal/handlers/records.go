package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notinrange/blackrose-task-backend/internal/models"
	"github.com/notinrange/blackrose-task-backend/internal/records"
)

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	recs, err := h.records.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if record.User == "" {
		respondError(w, http.StatusBadRequest, "user is required")
		return
	}
	created, err := h.records.Create(record)
	if err != nil {
		if errors.Is(err, records.ErrDuplicateUser) {
			respondError(w, http.StatusBadRequest, "Record with this user already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Record added",
		"record":  created,
	})
}

func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var upd models.RecordUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if upd.User == "" {
		respondError(w, http.StatusBadRequest, "user is required")
		return
	}
	if err := h.records.Update(upd); err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Record updated"})
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		respondError(w, http.StatusBadRequest, "user is required")
		return
	}
	if err := h.records.Delete(user); err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Record deleted"})
}

func (h *Handler) RestoreRecords(w http.ResponseWriter, r *http.Request) {
	if err := h.records.Restore(); err != nil {
		if errors.Is(err, records.ErrNoBackup) {
			respondError(w, http.StatusNotFound, "No backup found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "CSV restored from backup"})
}
