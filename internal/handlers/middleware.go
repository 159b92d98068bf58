package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/cx-tal-miterani/flight-search-system/internal/service"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type contextKey string

const userKey contextKey = "user"

// maxTrackedClients bounds the per-IP limiter table
const maxTrackedClients = 10000

// TokenFromRequest returns the bearer token, falling back to the session
// cookie
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// UserFromContext returns the user attached by RequireAuth
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

// RequireAuth rejects requests without a valid session and attaches the
// session's user to the request context
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := h.authService.ValidateSession(r.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionInvalid) {
				respondError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}
			h.logger.Error("session validation failed", zap.Error(err))
			respondError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimiter limits requests per client IP with a token bucket
type RateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
	logger   *zap.Logger
}

// NewRateLimiter allows perMinute requests per client with the given burst.
// The least recently seen clients are forgotten beyond maxTrackedClients.
func NewRateLimiter(perMinute, burst int, logger *zap.Logger) *RateLimiter {
	cache, _ := lru.New[string, *rate.Limiter](maxTrackedClients)
	return &RateLimiter{
		limiters: cache,
		rate:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		logger:   logger,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

// Handler returns the rate limiting middleware handler
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !rl.getLimiter(key).Allow() {
			rl.logger.Warn("rate limit exceeded", zap.String("client", key), zap.String("path", r.URL.Path))
			respondError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
