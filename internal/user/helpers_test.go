package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
)

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

// mockRepository keeps users in memory and enforces the unique email rule.
type mockRepository struct {
	mu     sync.Mutex
	users  map[int64]*User
	nextID int64
	fail   bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: map[int64]*User{}}
}

var errRepo = errors.New("repository error")

func (m *mockRepository) CreateUser(_ context.Context, u *User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 0, errRepo
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return 0, ErrEmailAlreadyExists
		}
	}
	m.nextID++
	stored := *u
	stored.ID = m.nextID
	m.users[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockRepository) GetUserByID(_ context.Context, id int64) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockRepository) GetUserByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) ListUsers(_ context.Context) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRepo
	}
	out := make([]User, 0, len(m.users))
	for id := int64(1); id <= m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateUser(_ context.Context, id int64, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrUserNotFound
	}
	cp := *u
	m.users[id] = &cp
	return nil
}

func (m *mockRepository) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// newTestService uses the minimum bcrypt cost to keep tests fast.
func newTestService(repo Repository) *service {
	return &service{repo: repo, cost: 4}
}
