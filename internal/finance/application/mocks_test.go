package application

import (
	"context"
	"errors"
	"sort"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/types"
)

var errStore = errors.New("store error")

type mockCategoryRepository struct {
	categories map[int64]domain.Category
	nextID     int64
	fail       bool
}

func newMockCategoryRepository(categories ...domain.Category) *mockCategoryRepository {
	m := &mockCategoryRepository{categories: map[int64]domain.Category{}}
	for _, c := range categories {
		m.categories[c.ID] = c
		if c.ID > m.nextID {
			m.nextID = c.ID
		}
	}
	return m
}

func (m *mockCategoryRepository) Save(_ context.Context, c *domain.Category) (int64, error) {
	if m.fail {
		return 0, errStore
	}
	m.nextID++
	c.ID = m.nextID
	m.categories[c.ID] = *c
	return c.ID, nil
}

func (m *mockCategoryRepository) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	if m.fail {
		return nil, errStore
	}
	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (m *mockCategoryRepository) FindAll(_ context.Context, t domain.CategoryType) ([]domain.Category, error) {
	if m.fail {
		return nil, errStore
	}
	out := []domain.Category{}
	for _, c := range m.categories {
		if t == "" || c.Type == t {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockCategoryRepository) Update(_ context.Context, id int64, c *domain.Category) error {
	if _, ok := m.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	c.ID = id
	m.categories[id] = *c
	return nil
}

func (m *mockCategoryRepository) Delete(_ context.Context, id int64) error {
	if _, ok := m.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

type mockTransactionRepository struct {
	transactions []domain.Transaction
	saved        []*domain.Transaction
}

func (m *mockTransactionRepository) Save(_ context.Context, t *domain.Transaction) (int64, error) {
	m.saved = append(m.saved, t)
	return int64(len(m.saved)), nil
}

func (m *mockTransactionRepository) SaveAll(_ context.Context, ts []*domain.Transaction) ([]int64, error) {
	ids := make([]int64, 0, len(ts))
	for _, t := range ts {
		m.saved = append(m.saved, t)
		ids = append(ids, int64(len(m.saved)))
	}
	return ids, nil
}

func (m *mockTransactionRepository) FindByID(_ context.Context, id int64) (*domain.Transaction, error) {
	for _, t := range m.transactions {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *mockTransactionRepository) FindAll(_ context.Context) ([]domain.Transaction, error) {
	return m.transactions, nil
}

func (m *mockTransactionRepository) FindByUser(_ context.Context, userID int64) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range m.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTransactionRepository) FindInDateRange(_ context.Context, userID int64, start, end types.Date) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range m.transactions {
		if t.UserID == userID && !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTransactionRepository) Update(_ context.Context, id int64, t *domain.Transaction) error {
	if _, err := m.FindByID(context.Background(), id); err != nil {
		return err
	}
	m.saved = append(m.saved, t)
	return nil
}

func (m *mockTransactionRepository) Delete(_ context.Context, id int64) error {
	for i, t := range m.transactions {
		if t.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

type mockScheduledPaymentRepository struct {
	payments map[int64]domain.ScheduledPayment
	nextID   int64
	dueFrom  types.Date
}

func newMockScheduledPaymentRepository() *mockScheduledPaymentRepository {
	return &mockScheduledPaymentRepository{payments: map[int64]domain.ScheduledPayment{}}
}

func (m *mockScheduledPaymentRepository) Save(_ context.Context, p *domain.ScheduledPayment) (int64, error) {
	m.nextID++
	p.ID = m.nextID
	m.payments[p.ID] = *p
	return p.ID, nil
}

func (m *mockScheduledPaymentRepository) FindByID(_ context.Context, id int64) (*domain.ScheduledPayment, error) {
	p, ok := m.payments[id]
	if !ok {
		return nil, domain.ErrScheduledPaymentNotFound
	}
	return &p, nil
}

func (m *mockScheduledPaymentRepository) list(keep func(domain.ScheduledPayment) bool) []domain.ScheduledPayment {
	out := []domain.ScheduledPayment{}
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.payments[id]; ok && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *mockScheduledPaymentRepository) FindAll(_ context.Context) ([]domain.ScheduledPayment, error) {
	return m.list(func(domain.ScheduledPayment) bool { return true }), nil
}

func (m *mockScheduledPaymentRepository) FindByUser(_ context.Context, userID int64) ([]domain.ScheduledPayment, error) {
	return m.list(func(p domain.ScheduledPayment) bool { return p.UserID == userID }), nil
}

func (m *mockScheduledPaymentRepository) FindByFrequency(_ context.Context, f domain.Frequency) ([]domain.ScheduledPayment, error) {
	return m.list(func(p domain.ScheduledPayment) bool { return p.Frequency == f }), nil
}

func (m *mockScheduledPaymentRepository) FindDueFrom(_ context.Context, from types.Date) ([]domain.ScheduledPayment, error) {
	m.dueFrom = from
	out := m.list(func(p domain.ScheduledPayment) bool {
		return p.NextDueDate != nil && !p.NextDueDate.Before(from)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].NextDueDate.Before(*out[j].NextDueDate) })
	return out, nil
}

func (m *mockScheduledPaymentRepository) Update(_ context.Context, id int64, p *domain.ScheduledPayment) error {
	if _, ok := m.payments[id]; !ok {
		return domain.ErrScheduledPaymentNotFound
	}
	p.ID = id
	m.payments[id] = *p
	return nil
}

func (m *mockScheduledPaymentRepository) Delete(_ context.Context, id int64) error {
	if _, ok := m.payments[id]; !ok {
		return domain.ErrScheduledPaymentNotFound
	}
	delete(m.payments, id)
	return nil
}

func (m *mockScheduledPaymentRepository) ToggleActive(_ context.Context, id int64) (bool, error) {
	p, ok := m.payments[id]
	if !ok {
		return false, domain.ErrScheduledPaymentNotFound
	}
	p.Active = !p.Active
	m.payments[id] = p
	return bool(p.Active), nil
}

type mockBudgetRepository struct {
	budgets map[int64]domain.Budget
	nextID  int64
}

func (m *mockBudgetRepository) Save(_ context.Context, b *domain.Budget) (int64, error) {
	if m.budgets == nil {
		m.budgets = map[int64]domain.Budget{}
	}
	m.nextID++
	b.ID = m.nextID
	m.budgets[b.ID] = *b
	return b.ID, nil
}

func (m *mockBudgetRepository) FindByID(_ context.Context, id int64) (*domain.Budget, error) {
	b, ok := m.budgets[id]
	if !ok {
		return nil, domain.ErrBudgetNotFound
	}
	return &b, nil
}

func (m *mockBudgetRepository) FindAll(_ context.Context) ([]domain.Budget, error) {
	out := []domain.Budget{}
	for id := int64(1); id <= m.nextID; id++ {
		if b, ok := m.budgets[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBudgetRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Budget, error) {
	all, _ := m.FindAll(ctx)
	out := []domain.Budget{}
	for _, b := range all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBudgetRepository) Update(_ context.Context, id int64, b *domain.Budget) error {
	if _, ok := m.budgets[id]; !ok {
		return domain.ErrBudgetNotFound
	}
	m.budgets[id] = *b
	return nil
}

func (m *mockBudgetRepository) Delete(_ context.Context, id int64) error {
	if _, ok := m.budgets[id]; !ok {
		return domain.ErrBudgetNotFound
	}
	delete(m.budgets, id)
	return nil
}
