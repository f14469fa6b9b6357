package infrastructure

import (
	"context"
	"database/sql"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/records"
	"github.com/sebuszqo/LanaApp/internal/types"
)

type TransactionRepository struct {
	records *records.Gateway[domain.Transaction]
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{records: records.NewGateway(db, transactionSchema)}
}

func (r *TransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) (int64, error) {
	return r.records.Create(ctx, transaction)
}

// SaveAll writes the batch in one transaction scope.
func (r *TransactionRepository) SaveAll(ctx context.Context, transactions []*domain.Transaction) ([]int64, error) {
	return r.records.CreateMany(ctx, transactions)
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	t, err := r.records.Get(ctx, id)
	return t, notFound(err, domain.ErrTransactionNotFound)
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	return r.records.List(ctx, records.Query{})
}

func (r *TransactionRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return r.records.List(ctx, records.Query{
		Filters: []records.Filter{records.Eq("usuario_id", userID)},
		OrderBy: "fecha DESC, id DESC",
	})
}

func (r *TransactionRepository) FindInDateRange(ctx context.Context, userID int64, start, end types.Date) ([]domain.Transaction, error) {
	return r.records.List(ctx, records.Query{
		Filters: []records.Filter{
			records.Eq("usuario_id", userID),
			records.Gte("fecha", start),
			records.Lte("fecha", end),
		},
		OrderBy: "fecha ASC, id ASC",
	})
}

func (r *TransactionRepository) Update(ctx context.Context, id int64, transaction *domain.Transaction) error {
	return notFound(r.records.Update(ctx, id, transaction), domain.ErrTransactionNotFound)
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	return notFound(r.records.Delete(ctx, id), domain.ErrTransactionNotFound)
}
