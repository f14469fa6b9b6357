package infrastructure

import (
	"context"
	"database/sql"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/records"
)

type BudgetRepository struct {
	records *records.Gateway[domain.Budget]
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{records: records.NewGateway(db, budgetSchema)}
}

func (r *BudgetRepository) Save(ctx context.Context, budget *domain.Budget) (int64, error) {
	return r.records.Create(ctx, budget)
}

func (r *BudgetRepository) FindByID(ctx context.Context, id int64) (*domain.Budget, error) {
	b, err := r.records.Get(ctx, id)
	return b, notFound(err, domain.ErrBudgetNotFound)
}

func (r *BudgetRepository) FindAll(ctx context.Context) ([]domain.Budget, error) {
	return r.records.List(ctx, records.Query{})
}

func (r *BudgetRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Budget, error) {
	return r.records.List(ctx, records.Query{
		Filters: []records.Filter{records.Eq("usuario_id", userID)},
		OrderBy: "anio DESC, mes DESC, id ASC",
	})
}

func (r *BudgetRepository) Update(ctx context.Context, id int64, budget *domain.Budget) error {
	return notFound(r.records.Update(ctx, id, budget), domain.ErrBudgetNotFound)
}

func (r *BudgetRepository) Delete(ctx context.Context, id int64) error {
	return notFound(r.records.Delete(ctx, id), domain.ErrBudgetNotFound)
}
