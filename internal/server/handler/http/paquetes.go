// Package http provides HTTP handlers for the paquetes API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/atinyakov/paquetes/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PackageService defines the operations required by the PackageHandler.
type PackageService interface {
	List(ctx context.Context) ([]models.PackageRecord, error)
	Get(ctx context.Context, id int64) (*models.PackageRecord, error)
	// Create, Update and Delete return the message shown to the user.
	Create(ctx context.Context, in models.PackageInput) (string, error)
	Update(ctx context.Context, id int64, in models.PackageInput) (string, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// PackageHandler handles HTTP requests for the package collection and items.
type PackageHandler struct {
	PackageService PackageService
	Log            *zap.Logger
}

// List handles GET /api/paquetes/.
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.PackageService.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pkgs)
}

// Get handles GET /api/paquetes/{id}.
func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.PackageService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /api/paquetes/.
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PackageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	msg, err := h.PackageService.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.MessageResponse{Message: msg})
}

// Update handles PUT /api/paquetes/{id}.
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.PackageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	msg, err := h.PackageService.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: msg})
}

// Delete handles DELETE /api/paquetes/{id}.
func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	msg, err := h.PackageService.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: msg})
}

func (h *PackageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		if h.Log != nil {
			h.Log.Error("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
