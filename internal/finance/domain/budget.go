package domain

import (
	"context"
	"time"

	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
)

var (
	ErrBudgetNotFound      = appErrors.NewNotFoundError("Presupuesto no encontrado")
	ErrInvalidBudgetAmount = appErrors.NewValidationError("El monto presupuestado no puede ser negativo")
	ErrInvalidMonth        = appErrors.NewValidationError("El mes debe estar entre 1 y 12")
	ErrInvalidYear         = appErrors.NewValidationError("El año debe ser mayor o igual a 2000")
)

type Budget struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"usuario_id"`
	CategoryID int64     `json:"categoria_id"`
	Amount     float64   `json:"monto_presupuestado"`
	Month      int       `json:"mes"`
	Year       int       `json:"anio"`
	CreatedAt  time.Time `json:"fecha_creacion"`
	UpdatedAt  time.Time `json:"fecha_actualizacion"`
}

func (b *Budget) Validate() error {
	if b.UserID <= 0 {
		return ErrInvalidUser
	}
	if b.Amount < 0 {
		return ErrInvalidBudgetAmount
	}
	if b.Amount > MaxAmount {
		return ErrAmountTooLarge
	}
	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}
	if b.Year < 2000 {
		return ErrInvalidYear
	}
	return nil
}

type BudgetRepository interface {
	Save(ctx context.Context, budget *Budget) (int64, error)
	FindByID(ctx context.Context, id int64) (*Budget, error)
	FindAll(ctx context.Context) ([]Budget, error)
	FindByUser(ctx context.Context, userID int64) ([]Budget, error)
	Update(ctx context.Context, id int64, budget *Budget) error
	Delete(ctx context.Context, id int64) error
}
