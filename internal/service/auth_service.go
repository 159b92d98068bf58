package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/auth"
	"github.com/cx-tal-miterani/flight-search-system/internal/metrics"
	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/cx-tal-miterani/flight-search-system/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DemoPassword is the shared password of the seeded demo accounts
const DemoPassword = "password123"

var demoUsers = []struct {
	Email string
	Name  string
}{
	{"demo@example.com", "Demo User"},
	{"john@example.com", "John Doe"},
	{"jane@example.com", "Jane Smith"},
}

// AuthOption configures an AuthService
type AuthOption func(*authServiceImpl)

// WithAuthClock overrides the clock used for session timestamps and expiry
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *authServiceImpl) { s.now = now }
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store  *store.Store
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
	logger *zap.Logger
	now    func() time.Time
}

// NewAuthService creates a new AuthService backed by st
func NewAuthService(st *store.Store, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer, logger *zap.Logger, opts ...AuthOption) AuthService {
	s := &authServiceImpl{
		store:  st,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeEmail returns the key accounts are stored under
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- User Operations ---

func (s *authServiceImpl) RegisterUser(ctx context.Context, email, password, name string) (*models.User, error) {
	email = NormalizeEmail(email)

	// validator counts runes; bcrypt counts bytes
	if len(password) > auth.MaxPasswordBytes {
		metrics.RecordAuth("register", "invalid")
		return nil, ErrPasswordTooLong
	}

	if _, err := s.store.GetUserByEmail(email); err == nil {
		metrics.RecordAuth("register", "duplicate")
		return nil, ErrEmailExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		metrics.RecordAuth("register", "error")
		return nil, err
	}

	rec := &models.UserRecord{
		User: models.User{
			ID:        uuid.NewString(),
			Email:     email,
			Name:      strings.TrimSpace(name),
			CreatedAt: s.now(),
		},
		PasswordHash: hash,
	}

	// Another registration may have won while we were hashing.
	if err := s.store.CreateUser(rec); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			metrics.RecordAuth("register", "duplicate")
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.RecordAuth("register", "ok")
	s.logger.Info("user registered", zap.String("userId", rec.ID))
	user := rec.User
	return &user, nil
}

func (s *authServiceImpl) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	rec, err := s.store.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		metrics.RecordAuth("login", "rejected")
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(rec.PasswordHash, password)
	if err != nil {
		metrics.RecordAuth("login", "error")
		return nil, err
	}
	if !ok {
		metrics.RecordAuth("login", "rejected")
		return nil, ErrInvalidCredentials
	}

	metrics.RecordAuth("login", "ok")
	user := rec.User
	return &user, nil
}

// SeedDemoUsers registers the demo accounts through svc, skipping any that
// already exist
func SeedDemoUsers(ctx context.Context, svc AuthService) error {
	for _, d := range demoUsers {
		_, err := svc.RegisterUser(ctx, d.Email, DemoPassword, d.Name)
		if err != nil && !errors.Is(err, ErrEmailExists) {
			return fmt.Errorf("failed to seed %s: %w", d.Email, err)
		}
	}
	return nil
}

// --- Session Operations ---

// CreateSession issues a signed token for userID and sweeps expired sessions
func (s *authServiceImpl) CreateSession(ctx context.Context, userID string) (*models.Session, error) {
	now := s.now()
	token, expiresAt, err := s.tokens.Issue(now)
	if err != nil {
		return nil, err
	}

	sess := &models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	s.store.PutSession(sess)
	s.SweepExpiredSessions(ctx)

	return sess, nil
}

// ValidateSession resolves token to its user. Expired, tampered and orphaned
// sessions are removed and reported as ErrSessionInvalid.
func (s *authServiceImpl) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	sess, err := s.store.GetSession(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	if sess.Expired(s.now()) {
		s.store.DeleteSession(token)
		s.logger.Debug("expired session removed", zap.String("userId", sess.UserID))
		return nil, ErrSessionInvalid
	}

	if _, err := s.tokens.Verify(token); err != nil {
		s.store.DeleteSession(token)
		s.logger.Debug("unverifiable session removed", zap.String("userId", sess.UserID))
		return nil, ErrSessionInvalid
	}

	rec, err := s.store.GetUserByID(sess.UserID)
	if err != nil {
		s.store.DeleteSession(token)
		return nil, ErrSessionInvalid
	}

	user := rec.User
	return &user, nil
}

// DeleteSession removes token. Unknown tokens are not an error.
func (s *authServiceImpl) DeleteSession(ctx context.Context, token string) error {
	s.store.DeleteSession(token)
	metrics.SetSessions(s.store.SessionCount())
	return nil
}

// SweepExpiredSessions removes every expired session and returns the count
func (s *authServiceImpl) SweepExpiredSessions(ctx context.Context) int {
	removed := s.store.DeleteExpiredSessions(s.now())
	metrics.RecordSweep(removed)
	metrics.SetSessions(s.store.SessionCount())
	if removed > 0 {
		s.logger.Info("expired sessions swept", zap.Int("removed", removed))
	}
	return removed
}
