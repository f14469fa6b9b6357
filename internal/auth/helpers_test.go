package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sebuszqo/LanaApp/internal/user"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errors) > 0 && len(errors[0]) > 0 {
		payload["errors"] = errors[0]
	}
	respondJSON(w, status, payload)
}

type mockUserLookup struct {
	users map[string]*user.User
	err   error
}

func newMockUserLookup(users ...*user.User) *mockUserLookup {
	m := &mockUserLookup{users: map[string]*user.User{}}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockUserLookup) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

type memoryRevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newMemoryRevocationList() *memoryRevocationList {
	return &memoryRevocationList{revoked: map[string]time.Time{}}
}

func (m *memoryRevocationList) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *memoryRevocationList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]
	return ok, nil
}

// fixedClock returns a clock that can be moved forward by tests.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestUser(email, password string) *user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &user.User{ID: 1, Name: "Ana", Email: email, PasswordHash: string(hash)}
}
