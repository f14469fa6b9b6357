package domain

import (
	"context"
	"math"
	"time"

	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
	"github.com/sebuszqo/LanaApp/internal/types"
)

var (
	ErrTransactionNotFound    = appErrors.NewNotFoundError("Transacción no encontrada")
	ErrInvalidTransactionType = appErrors.NewValidationError("El tipo debe ser 'ingreso' o 'gasto'")
	ErrInvalidAmount          = appErrors.NewValidationError("El monto debe ser mayor a 0")
	ErrAmountTooLarge         = appErrors.NewValidationError("El monto no puede superar 9999999999.99")
	ErrTransactionRequired    = appErrors.NewValidationError("Datos de la transacción requeridos")
	ErrDescriptionTooLong     = appErrors.NewValidationError("La descripción no puede superar 200 caracteres")
	ErrInvalidCategory        = appErrors.NewValidationError("La categoría no existe")
	ErrInvalidUser            = appErrors.NewValidationError("usuario_id debe ser un entero positivo")
)

// MaxAmount is the largest value a NUMERIC(12,2) amount column holds.
const MaxAmount = 9999999999.99

type Transaction struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"usuario_id"`
	CategoryID  int64        `json:"categoria_id"`
	Amount      float64      `json:"monto"`
	Type        CategoryType `json:"tipo"`
	Description *string      `json:"descripcion"`
	Date        types.Date   `json:"fecha"`
	CreatedAt   time.Time    `json:"fecha_creacion"`
	UpdatedAt   time.Time    `json:"fecha_actualizacion"`
}

func (t *Transaction) Validate() error {
	if t.UserID <= 0 {
		return ErrInvalidUser
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if t.Amount > MaxAmount {
		return ErrAmountTooLarge
	}
	if !t.Type.Valid() {
		return ErrInvalidTransactionType
	}
	if t.Description != nil && len([]rune(*t.Description)) > 200 {
		return ErrDescriptionTooLong
	}
	return nil
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = math.Round(t.Amount*100) / 100
}

type TransactionRepository interface {
	Save(ctx context.Context, transaction *Transaction) (int64, error)
	SaveAll(ctx context.Context, transactions []*Transaction) ([]int64, error)
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	FindAll(ctx context.Context) ([]Transaction, error)
	FindByUser(ctx context.Context, userID int64) ([]Transaction, error)
	FindInDateRange(ctx context.Context, userID int64, start, end types.Date) ([]Transaction, error)
	Update(ctx context.Context, id int64, transaction *Transaction) error
	Delete(ctx context.Context, id int64) error
}
