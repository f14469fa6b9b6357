package infrastructure

import (
	"context"
	"database/sql"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/records"
)

type CategoryRepository struct {
	records *records.Gateway[domain.Category]
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{records: records.NewGateway(db, categorySchema)}
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) (int64, error) {
	return r.records.Create(ctx, category)
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := r.records.Get(ctx, id)
	return c, notFound(err, domain.ErrCategoryNotFound)
}

// FindAll lists every category, narrowed to one type when categoryType is set.
func (r *CategoryRepository) FindAll(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	var q records.Query
	if categoryType != "" {
		q.Filters = []records.Filter{records.Eq("tipo", string(categoryType))}
	}
	return r.records.List(ctx, q)
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, category *domain.Category) error {
	return notFound(r.records.Update(ctx, id, category), domain.ErrCategoryNotFound)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return notFound(r.records.Delete(ctx, id), domain.ErrCategoryNotFound)
}
