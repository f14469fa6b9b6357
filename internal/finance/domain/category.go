package domain

import (
	"context"
	"strings"
	"time"

	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
)

// CategoryType classifies money flowing in or out.
type CategoryType string

const (
	Income  CategoryType = "ingreso"
	Expense CategoryType = "gasto"
)

func (t CategoryType) Valid() bool {
	return t == Income || t == Expense
}

var (
	ErrCategoryNotFound    = appErrors.NewNotFoundError("Categoría no encontrada")
	ErrInvalidCategoryType = appErrors.NewValidationError("El tipo debe ser 'ingreso' o 'gasto'")
	ErrCategoryNameEmpty   = appErrors.NewValidationError("El nombre de la categoría es obligatorio")
	ErrCategoryNameLength  = appErrors.NewValidationError("El nombre de la categoría no puede superar 100 caracteres")
)

type Category struct {
	ID        int64        `json:"id"`
	Name      string       `json:"nombre_categoria"`
	Type      CategoryType `json:"tipo"`
	CreatedAt time.Time    `json:"fecha_creacion"`
	UpdatedAt time.Time    `json:"fecha_actualizacion"`
}

func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}
	if len([]rune(c.Name)) > 100 {
		return ErrCategoryNameLength
	}
	if !c.Type.Valid() {
		return ErrInvalidCategoryType
	}
	return nil
}

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) (int64, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindAll(ctx context.Context, categoryType CategoryType) ([]Category, error)
	Update(ctx context.Context, id int64, category *Category) error
	Delete(ctx context.Context, id int64) error
}
