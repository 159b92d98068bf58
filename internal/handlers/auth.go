package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/cx-tal-miterani/flight-search-system/internal/service"
)

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "Email, password, and name are required")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			respondError(w, http.StatusConflict, "User registration failed. Email may already exist.")
		case errors.Is(err, service.ErrPasswordTooLong):
			respondError(w, http.StatusBadRequest, "Password must be at most 72 bytes long")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	sess, err := h.authService.CreateSession(r.Context(), user.ID)
	if err != nil {
		h.respondInternal(w, r, err)
		return
	}

	h.setSessionCookie(w, sess)
	respondJSON(w, http.StatusCreated, models.AuthResponse{Success: true, User: user, Token: sess.Token})
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.authService.AuthenticateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.respondInternal(w, r, err)
		return
	}

	sess, err := h.authService.CreateSession(r.Context(), user.ID)
	if err != nil {
		h.respondInternal(w, r, err)
		return
	}

	h.setSessionCookie(w, sess)
	respondJSON(w, http.StatusOK, models.AuthResponse{Success: true, User: user, Token: sess.Token})
}

// Logout handles POST /api/auth/logout. It succeeds with or without a session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := TokenFromRequest(r); token != "" {
		if err := h.authService.DeleteSession(r.Context(), token); err != nil {
			h.respondInternal(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Me handles GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	respondJSON(w, http.StatusOK, models.AuthResponse{Success: true, User: user})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sess *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(sess.ExpiresAt.Sub(sess.CreatedAt) / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
