// Package store is the process-wide, in-memory home of accounts and sessions.
// Nothing is persisted; a restart starts from an empty store (plus whatever
// the caller seeds).
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrUserExists = errors.New("user already exists")
)

// Store holds users keyed by normalized email and sessions keyed by token.
// All methods are safe for concurrent use; every critical section is a
// single map operation or one pass over the session map.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*models.UserRecord // email -> user
	byID     map[string]*models.UserRecord // id -> user
	sessions map[string]*models.Session    // token -> session
}

// New creates an empty store
func New() *Store {
	return &Store{
		users:    make(map[string]*models.UserRecord),
		byID:     make(map[string]*models.UserRecord),
		sessions: make(map[string]*models.Session),
	}
}

// --- User Operations ---

// CreateUser inserts u unless its email is taken. The check and the insert
// happen under one lock so concurrent registrations of the same email have
// exactly one winner.
func (s *Store) CreateUser(u *models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.Email]; exists {
		return ErrUserExists
	}

	rec := *u
	s.users[rec.Email] = &rec
	s.byID[rec.ID] = &rec
	return nil
}

// GetUserByEmail returns a copy of the user stored under the normalized email
func (s *Store) GetUserByEmail(email string) (*models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	rec := *u
	return &rec, nil
}

// GetUserByID returns a copy of the user with the given id
func (s *Store) GetUserByID(id string) (*models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec := *u
	return &rec, nil
}

// UserCount returns the number of registered accounts
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// --- Session Operations ---

// PutSession stores or replaces the session for its token
func (s *Store) PutSession(sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *sess
	s.sessions[cp.Token] = &cp
}

// GetSession returns a copy of the session for token
func (s *Store) GetSession(token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

// DeleteSession removes token; deleting an unknown token is a no-op
func (s *Store) DeleteSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// DeleteExpiredSessions removes every session expired at now and returns how
// many were removed
func (s *Store) DeleteExpiredSessions(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// SessionCount returns the number of stored sessions, expired or not
func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
