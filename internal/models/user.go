package models

import "time"

// User is the public view of an account. The password hash never leaves the
// store.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRecord is a stored account including its password hash
type UserRecord struct {
	User
	PasswordHash string `json:"-"`
}

// Session binds a bearer token to a user until ExpiresAt
type Session struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session is no longer active at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
