package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
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

var errRepo = errors.New("repository error")

// mockRepository keeps notifications in memory.
type mockRepository struct {
	mu     sync.Mutex
	rows   map[int64]*Notification
	nextID int64
	fail   bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{rows: map[int64]*Notification{}}
}

func (m *mockRepository) Create(_ context.Context, n *Notification) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 0, errRepo
	}
	m.nextID++
	stored := *n
	stored.ID = m.nextID
	m.rows[stored.ID] = &stored
	return stored.ID, nil
}

func (m *mockRepository) Get(_ context.Context, id int64) (*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.rows[id]
	if !ok {
		return nil, ErrNotificationNotFound
	}
	cp := *n
	return &cp, nil
}

func (m *mockRepository) sorted(keep func(*Notification) bool) []Notification {
	out := []Notification{}
	for _, n := range m.rows {
		if keep(n) {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *mockRepository) List(_ context.Context) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRepo
	}
	return m.sorted(func(*Notification) bool { return true }), nil
}

func (m *mockRepository) ListByUser(_ context.Context, userID int64) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errRepo
	}
	return m.sorted(func(n *Notification) bool { return n.UserID == userID }), nil
}

func (m *mockRepository) Update(_ context.Context, id int64, n *Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotificationNotFound
	}
	stored := *n
	stored.ID = id
	m.rows[id] = &stored
	return nil
}

func (m *mockRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotificationNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *mockRepository) MarkRead(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.rows[id]
	if !ok {
		return 0, ErrNotificationNotFound
	}
	n.Read = true
	return 1, nil
}

func (m *mockRepository) MarkAllRead(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 0, errRepo
	}
	var count int64
	for _, n := range m.rows {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }
