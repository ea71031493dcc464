package handlers

import (
	"log"
	"net/http"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, "Use POST method", http.StatusMethodNotAllowed)
		return
	}

	ip := clientIP(r)
	if h.RateLimiter != nil && !h.RateLimiter.Allow(ip) {
		log.Printf("Rate limit exceeded for IP: %s", ip)
		sendError(w, "Too many signup attempts. Please try again later.", http.StatusTooManyRequests)
		return
	}

	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &input); err != nil {
		return
	}

	user, err := h.Auth.Signup(r.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]any{"user": user.Public()})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, "Use POST method", http.StatusMethodNotAllowed)
		return
	}

	ip := clientIP(r)
	if h.RateLimiter != nil && !h.RateLimiter.Allow(ip) {
		log.Printf("Rate limit exceeded for IP: %s", ip)
		sendError(w, "Too many login attempts. Please try again later.", http.StatusTooManyRequests)
		return
	}

	// the username field may carry a username or an email
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &input); err != nil {
		return
	}

	user, err := h.Auth.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{"user": user.Public()})
}
