package application

import (
	"context"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
)

type BudgetService struct {
	repo domain.BudgetRepository
}

func NewBudgetService(repo domain.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

func (s *BudgetService) CreateBudget(ctx context.Context, budget *domain.Budget) (int64, error) {
	if err := budget.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, budget)
}

func (s *BudgetService) GetBudget(ctx context.Context, id int64) (*domain.Budget, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BudgetService) GetBudgets(ctx context.Context) ([]domain.Budget, error) {
	return s.repo.FindAll(ctx)
}

func (s *BudgetService) GetUserBudgets(ctx context.Context, userID int64) ([]domain.Budget, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *BudgetService) UpdateBudget(ctx context.Context, id int64, budget *domain.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, budget)
}

func (s *BudgetService) DeleteBudget(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
