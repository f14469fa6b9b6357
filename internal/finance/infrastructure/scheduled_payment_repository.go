package infrastructure

import (
	"context"
	"database/sql"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/records"
	"github.com/sebuszqo/LanaApp/internal/types"
)

type ScheduledPaymentRepository struct {
	records *records.Gateway[domain.ScheduledPayment]
}

func NewScheduledPaymentRepository(db *sql.DB) *ScheduledPaymentRepository {
	return &ScheduledPaymentRepository{records: records.NewGateway(db, scheduledPaymentSchema)}
}

func (r *ScheduledPaymentRepository) Save(ctx context.Context, payment *domain.ScheduledPayment) (int64, error) {
	return r.records.Create(ctx, payment)
}

func (r *ScheduledPaymentRepository) FindByID(ctx context.Context, id int64) (*domain.ScheduledPayment, error) {
	p, err := r.records.Get(ctx, id)
	return p, notFound(err, domain.ErrScheduledPaymentNotFound)
}

func (r *ScheduledPaymentRepository) FindAll(ctx context.Context) ([]domain.ScheduledPayment, error) {
	return r.records.List(ctx, records.Query{})
}

func (r *ScheduledPaymentRepository) FindByUser(ctx context.Context, userID int64) ([]domain.ScheduledPayment, error) {
	return r.records.List(ctx, records.Query{Filters: []records.Filter{records.Eq("usuario_id", userID)}})
}

func (r *ScheduledPaymentRepository) FindByFrequency(ctx context.Context, frequency domain.Frequency) ([]domain.ScheduledPayment, error) {
	return r.records.List(ctx, records.Query{Filters: []records.Filter{records.Eq("frecuencia", string(frequency))}})
}

// FindDueFrom returns payments due on or after from, soonest first. The
// active flag is not consulted.
func (r *ScheduledPaymentRepository) FindDueFrom(ctx context.Context, from types.Date) ([]domain.ScheduledPayment, error) {
	return r.records.List(ctx, records.Query{
		Filters: []records.Filter{records.Gte("proxima_fecha_vencimiento", from)},
		OrderBy: "proxima_fecha_vencimiento ASC, id ASC",
	})
}

func (r *ScheduledPaymentRepository) Update(ctx context.Context, id int64, payment *domain.ScheduledPayment) error {
	return notFound(r.records.Update(ctx, id, payment), domain.ErrScheduledPaymentNotFound)
}

func (r *ScheduledPaymentRepository) Delete(ctx context.Context, id int64) error {
	return notFound(r.records.Delete(ctx, id), domain.ErrScheduledPaymentNotFound)
}

// ToggleActive flips the active flag and returns the new value.
func (r *ScheduledPaymentRepository) ToggleActive(ctx context.Context, id int64) (bool, error) {
	active, err := r.records.Toggle(ctx, id, "activo")
	return active, notFound(err, domain.ErrScheduledPaymentNotFound)
}
