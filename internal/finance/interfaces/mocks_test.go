package interfaces

import (
	"context"
	"errors"

	"github.com/sebuszqo/LanaApp/internal/finance/application"
	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/types"
)

var errDatabase = errors.New("database unavailable")

type MockCategoryService struct {
	categories []domain.Category
	created    *domain.Category
	lastType   string
	err        error
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, category *domain.Category) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.created = category
	return 7, nil
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.categories {
		if m.categories[i].ID == id {
			return &m.categories[i], nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryService) GetCategories(ctx context.Context, categoryType string) ([]domain.Category, error) {
	m.lastType = categoryType
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, id int64, category *domain.Category) error {
	return m.err
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return m.err
}

type MockTransactionService struct {
	transactions []domain.Transaction
	bulkIDs      []int64
	summary      map[int]application.TransactionSummary
	start, end   types.Date
	err          error
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return 11, nil
}

func (m *MockTransactionService) CreateTransactionsBulk(ctx context.Context, transactions []*domain.Transaction) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.bulkIDs, nil
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.transactions {
		if m.transactions[i].ID == id {
			return &m.transactions[i], nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionService) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return m.transactions, m.err
}

func (m *MockTransactionService) GetUserTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, id int64, transaction *domain.Transaction) error {
	return m.err
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return m.err
}

func (m *MockTransactionService) GetTransactionSummary(ctx context.Context, userID int64, start, end types.Date) (map[int]application.TransactionSummary, error) {
	m.start, m.end = start, end
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

type MockBudgetService struct {
	budgets []domain.Budget
	err     error
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, budget *domain.Budget) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return 3, nil
}

func (m *MockBudgetService) GetBudget(ctx context.Context, id int64) (*domain.Budget, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.budgets {
		if m.budgets[i].ID == id {
			return &m.budgets[i], nil
		}
	}
	return nil, domain.ErrBudgetNotFound
}

func (m *MockBudgetService) GetBudgets(ctx context.Context) ([]domain.Budget, error) {
	return m.budgets, m.err
}

func (m *MockBudgetService) GetUserBudgets(ctx context.Context, userID int64) ([]domain.Budget, error) {
	return m.budgets, m.err
}

func (m *MockBudgetService) UpdateBudget(ctx context.Context, id int64, budget *domain.Budget) error {
	return m.err
}

func (m *MockBudgetService) DeleteBudget(ctx context.Context, id int64) error {
	return m.err
}

type MockScheduledPaymentService struct {
	payments      []domain.ScheduledPayment
	draft         domain.ScheduledPaymentDraft
	frequency     string
	toggleMessage string
	next          *application.NextDue
	err           error
}

func (m *MockScheduledPaymentService) CreatePayment(ctx context.Context, draft domain.ScheduledPaymentDraft) (int64, error) {
	m.draft = draft
	if m.err != nil {
		return 0, m.err
	}
	return 5, nil
}

func (m *MockScheduledPaymentService) GetPayment(ctx context.Context, id int64) (*domain.ScheduledPayment, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.payments {
		if m.payments[i].ID == id {
			return &m.payments[i], nil
		}
	}
	return nil, domain.ErrScheduledPaymentNotFound
}

func (m *MockScheduledPaymentService) GetPayments(ctx context.Context) ([]domain.ScheduledPayment, error) {
	return m.payments, m.err
}

func (m *MockScheduledPaymentService) GetUpcomingPayments(ctx context.Context) ([]domain.ScheduledPayment, error) {
	return m.payments, m.err
}

func (m *MockScheduledPaymentService) GetUserPayments(ctx context.Context, userID int64) ([]domain.ScheduledPayment, error) {
	return m.payments, m.err
}

func (m *MockScheduledPaymentService) GetPaymentsByFrequency(ctx context.Context, frequency string) ([]domain.ScheduledPayment, error) {
	m.frequency = frequency
	return m.payments, m.err
}

func (m *MockScheduledPaymentService) UpdatePayment(ctx context.Context, id int64, draft domain.ScheduledPaymentDraft) error {
	m.draft = draft
	return m.err
}

func (m *MockScheduledPaymentService) DeletePayment(ctx context.Context, id int64) error {
	return m.err
}

func (m *MockScheduledPaymentService) TogglePaymentStatus(ctx context.Context, id int64) (string, error) {
	return m.toggleMessage, m.err
}

func (m *MockScheduledPaymentService) GetNextDueDate(ctx context.Context, id int64) (*application.NextDue, error) {
	return m.next, m.err
}
