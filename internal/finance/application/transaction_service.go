package application

import (
	"context"
	"fmt"
	"time"

	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/types"
)

type CategoryServiceInterface interface {
	DoesCategoryExist(ctx context.Context, id int64) (bool, error)
	GetCategories(ctx context.Context, categoryType string) ([]domain.Category, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
	now             func() time.Time
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService, now: time.Now}
}

type TransactionSummary struct {
	Year         int                     `json:"anio"`
	IncomeTotal  float64                 `json:"total_ingresos"`
	ExpenseTotal float64                 `json:"total_gastos"`
	Months       map[string]MonthSummary `json:"meses"`
}

type MonthSummary struct {
	IncomeTotal  float64       `json:"total_ingresos"`
	ExpenseTotal float64       `json:"total_gastos"`
	Weeks        []WeekSummary `json:"semanas"`
}

type WeekSummary struct {
	Week         int     `json:"semana"`
	IncomeTotal  float64 `json:"total_ingresos"`
	ExpenseTotal float64 `json:"total_gastos"`
}

// prepare rounds the amount, defaults the date to today and validates.
func (s *TransactionService) prepare(transaction *domain.Transaction) error {
	transaction.RoundToTwoDecimalPlaces()
	if transaction.Date.IsZero() {
		transaction.Date = types.DateOf(s.now())
	}
	return transaction.Validate()
}

func (s *TransactionService) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (int64, error) {
	if err := s.prepare(transaction); err != nil {
		return 0, err
	}

	exists, err := s.categoryService.DoesCategoryExist(ctx, transaction.CategoryID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrInvalidCategory
	}

	return s.repo.Save(ctx, transaction)
}

// CreateTransactionsBulk validates every transaction first and reports all
// failures at once; nothing is written unless the whole batch is valid.
func (s *TransactionService) CreateTransactionsBulk(ctx context.Context, transactions []*domain.Transaction) ([]int64, error) {
	if len(transactions) == 0 {
		return nil, appErrors.NewValidationError("La lista de transacciones está vacía")
	}

	categories, err := s.categoryService.GetCategories(ctx, "")
	if err != nil {
		return nil, err
	}
	categoryMap := make(map[int64]bool, len(categories))
	for _, category := range categories {
		categoryMap[category.ID] = true
	}

	validationErrors := &appErrors.ValidationErrors{}
	for i, transaction := range transactions {
		if transaction == nil {
			validationErrors.Add(appErrors.NewIndexedValidationError(i+1, domain.ErrTransactionRequired.Error()))
			continue
		}
		if err := s.prepare(transaction); err != nil {
			validationErrors.Add(appErrors.NewIndexedValidationError(i+1, err.Error()))
			continue
		}
		if !categoryMap[transaction.CategoryID] {
			validationErrors.Add(appErrors.NewIndexedValidationError(i+1, domain.ErrInvalidCategory.Error()))
		}
	}
	if len(validationErrors.Errors) > 0 {
		return nil, validationErrors
	}

	ids, err := s.repo.SaveAll(ctx, transactions)
	if err != nil {
		return nil, fmt.Errorf("could not save transactions: %w", err)
	}
	return ids, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TransactionService) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.repo.FindAll(ctx)
}

func (s *TransactionService) GetUserTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, transaction *domain.Transaction) error {
	if err := s.prepare(transaction); err != nil {
		return err
	}
	exists, err := s.categoryService.DoesCategoryExist(ctx, transaction.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrInvalidCategory
	}
	return s.repo.Update(ctx, id, transaction)
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// GetTransactionSummary totals income and expense per year, month (keyed
// "01".."12") and ISO week for the user's transactions in [start, end].
func (s *TransactionService) GetTransactionSummary(ctx context.Context, userID int64, start, end types.Date) (map[int]TransactionSummary, error) {
	if end.Before(start) {
		return nil, appErrors.NewValidationError("La fecha final debe ser posterior a la inicial")
	}

	transactions, err := s.repo.FindInDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := make(map[int]TransactionSummary)

	for _, transaction := range transactions {
		year := transaction.Date.Year()
		month := fmt.Sprintf("%02d", int(transaction.Date.Month()))
		_, week := transaction.Date.ISOWeek()

		yearSummary, exists := summary[year]
		if !exists {
			yearSummary = TransactionSummary{Year: year, Months: make(map[string]MonthSummary)}
		}

		monthSummary, exists := yearSummary.Months[month]
		if !exists {
			monthSummary = MonthSummary{Weeks: []WeekSummary{}}
		}

		weekIndex := -1
		for i, weekSummary := range monthSummary.Weeks {
			if weekSummary.Week == week {
				weekIndex = i
				break
			}
		}
		if weekIndex == -1 {
			monthSummary.Weeks = append(monthSummary.Weeks, WeekSummary{Week: week})
			weekIndex = len(monthSummary.Weeks) - 1
		}

		switch transaction.Type {
		case domain.Income:
			yearSummary.IncomeTotal += transaction.Amount
			monthSummary.IncomeTotal += transaction.Amount
			monthSummary.Weeks[weekIndex].IncomeTotal += transaction.Amount
		case domain.Expense:
			yearSummary.ExpenseTotal += transaction.Amount
			monthSummary.ExpenseTotal += transaction.Amount
			monthSummary.Weeks[weekIndex].ExpenseTotal += transaction.Amount
		}

		yearSummary.Months[month] = monthSummary
		summary[year] = yearSummary
	}

	return summary, nil
}
