package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"tasklight/internal/service"
)

type Handler struct {
	Auth        *service.AuthService
	Tasks       *service.TaskService
	RateLimiter *RateLimiter
}

// Routes registers all endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/auth/signup", h.Signup)
	mux.HandleFunc("/auth/login", h.Login)
	mux.HandleFunc("/tasks", h.HandleTasks)
	mux.HandleFunc("/tasks/", h.HandleTaskByID)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// sendServiceError is the single point translating error kinds to status codes.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrAuthRequired),
		errors.Is(err, service.ErrInvalidCredentials):
		sendError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrConflict):
		sendError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrNotFound):
		sendError(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("Unhandled service error: %v", err)
		sendError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// userIDFromRequest reads the ownership credential. The id is supplied by a
// trusted client; the only checks are presence and well-formedness.
func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get("x-user-id")
	if raw == "" {
		return uuid.Nil, service.ErrAuthRequired
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user id", service.ErrValidation)
	}
	return id, nil
}

// decodeJSON reads a request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Printf("Error decoding JSON: %v", err)
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return err
	}
	return nil
}

func isJSONContentType(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/json")
}
