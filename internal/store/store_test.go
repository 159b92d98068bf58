package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(id, email string) *models.UserRecord {
	return &models.UserRecord{
		User:         models.User{ID: id, Email: email, Name: "Test", CreatedAt: time.Now()},
		PasswordHash: "hash-" + id,
	}
}

func TestStore_CreateUser(t *testing.T) {
	s := New()

	require.NoError(t, s.CreateUser(newUser("u1", "a@example.com")))
	err := s.CreateUser(newUser("u2", "a@example.com"))
	assert.ErrorIs(t, err, ErrUserExists)

	got, err := s.GetUserByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "hash-u1", got.PasswordHash)

	_, err = s.GetUserByID("u2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.UserCount())
}

func TestStore_CreateUser_ConcurrentSingleWinner(t *testing.T) {
	s := New()

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.CreateUser(newUser(fmt.Sprintf("u%d", i), "race@example.com")); err == nil {
				atomic.AddInt32(&wins, 1)
			} else {
				assert.ErrorIs(t, err, ErrUserExists)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	assert.Equal(t, 1, s.UserCount())
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateUser(newUser("u1", "a@example.com")))

	got, err := s.GetUserByID("u1")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := s.GetUserByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Test", again.Name)
}

func TestStore_Sessions(t *testing.T) {
	s := New()
	now := time.Now()

	s.PutSession(&models.Session{UserID: "u1", Token: "live", ExpiresAt: now.Add(time.Hour), CreatedAt: now})
	s.PutSession(&models.Session{UserID: "u1", Token: "dead", ExpiresAt: now.Add(-time.Hour), CreatedAt: now})
	s.PutSession(&models.Session{UserID: "u2", Token: "edge", ExpiresAt: now, CreatedAt: now})
	assert.Equal(t, 3, s.SessionCount())

	removed := s.DeleteExpiredSessions(now)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.SessionCount())

	_, err := s.GetSession("dead")
	assert.ErrorIs(t, err, ErrNotFound)

	sess, err := s.GetSession("live")
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)

	s.DeleteSession("live")
	s.DeleteSession("live")
	assert.Equal(t, 0, s.SessionCount())
}
