package domain

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
	"github.com/sebuszqo/LanaApp/internal/types"
)

const maxPaymentDescriptionLength = 255

// Frequency is how often a scheduled payment recurs.
type Frequency string

const (
	Daily   Frequency = "diario"
	Weekly  Frequency = "semanal"
	Monthly Frequency = "mensual"
	Yearly  Frequency = "anual"
)

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

var (
	ErrScheduledPaymentNotFound = appErrors.NewNotFoundError("Pago programado no encontrado")
	ErrInvalidDueDay            = appErrors.NewValidationError("El día de vencimiento debe estar entre 1 y 31")
	ErrInvalidFrequency         = appErrors.NewValidationError("Frecuencia debe ser: 'diario', 'semanal', 'mensual' o 'anual'")
	ErrEndDateNotAfterNextDue   = appErrors.NewValidationError("fecha_fin debe ser posterior a proxima_fecha_vencimiento")
	ErrPaymentDescriptionLength = appErrors.NewValidationError("La descripción no puede superar 255 caracteres")
)

type ScheduledPayment struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"usuario_id"`
	CategoryID   int64       `json:"categoria_id"`
	Description  *string     `json:"descripcion"`
	Amount       float64     `json:"monto"`
	DueDay       int         `json:"dia_vencimiento"`
	EndDate      *types.Date `json:"fecha_fin"`
	Frequency    Frequency   `json:"frecuencia"`
	NextDueDate  *types.Date `json:"proxima_fecha_vencimiento"`
	AutoRegister types.Flag  `json:"registrar_automaticamente"`
	Active       types.Flag  `json:"activo"`
	CreatedAt    time.Time   `json:"fecha_creacion"`
	UpdatedAt    time.Time   `json:"fecha_actualizacion"`
}

// ScheduledPaymentDraft is the client payload for create and update. Absent
// flags take their defaults in Normalize.
type ScheduledPaymentDraft struct {
	UserID       int64       `json:"usuario_id"`
	CategoryID   int64       `json:"categoria_id"`
	Description  *string     `json:"descripcion"`
	Amount       float64     `json:"monto"`
	DueDay       int         `json:"dia_vencimiento"`
	EndDate      *types.Date `json:"fecha_fin"`
	Frequency    Frequency   `json:"frecuencia"`
	NextDueDate  *types.Date `json:"proxima_fecha_vencimiento"`
	AutoRegister *types.Flag `json:"registrar_automaticamente"`
	Active       *types.Flag `json:"activo"`
}

// Normalize checks the recurrence rules and returns the payment to persist.
// New payments are active and not auto-registered unless stated otherwise.
func (d ScheduledPaymentDraft) Normalize() (*ScheduledPayment, error) {
	if d.DueDay < 1 || d.DueDay > 31 {
		return nil, ErrInvalidDueDay
	}
	if d.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if d.Amount > MaxAmount {
		return nil, ErrAmountTooLarge
	}
	if d.Description != nil && utf8.RuneCountInString(*d.Description) > maxPaymentDescriptionLength {
		return nil, ErrPaymentDescriptionLength
	}
	if !d.Frequency.Valid() {
		return nil, ErrInvalidFrequency
	}
	if d.EndDate != nil && d.NextDueDate != nil && !d.EndDate.After(*d.NextDueDate) {
		return nil, ErrEndDateNotAfterNextDue
	}

	p := &ScheduledPayment{
		UserID:      d.UserID,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		Amount:      d.Amount,
		DueDay:      d.DueDay,
		EndDate:     d.EndDate,
		Frequency:   d.Frequency,
		NextDueDate: d.NextDueDate,
		Active:      true,
	}
	if d.AutoRegister != nil {
		p.AutoRegister = *d.AutoRegister
	}
	if d.Active != nil {
		p.Active = *d.Active
	}
	return p, nil
}

// Advance returns the due date following current. Month and year steps clamp
// to the last day of a shorter target month.
func Advance(current types.Date, frequency Frequency) (types.Date, error) {
	switch frequency {
	case Daily:
		return types.DateOf(current.AddDate(0, 0, 1)), nil
	case Weekly:
		return types.DateOf(current.AddDate(0, 0, 7)), nil
	case Monthly:
		return addMonthsClamped(current, 1), nil
	case Yearly:
		return addMonthsClamped(current, 12), nil
	default:
		return types.Date{}, fmt.Errorf("advance: %w", ErrInvalidFrequency)
	}
}

func addMonthsClamped(d types.Date, months int) types.Date {
	year, month, day := d.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	last := daysIn(first.Year(), first.Month())
	if day > last {
		day = last
	}
	return types.NewDate(first.Year(), first.Month(), day)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type ScheduledPaymentRepository interface {
	Save(ctx context.Context, payment *ScheduledPayment) (int64, error)
	FindByID(ctx context.Context, id int64) (*ScheduledPayment, error)
	FindAll(ctx context.Context) ([]ScheduledPayment, error)
	FindByUser(ctx context.Context, userID int64) ([]ScheduledPayment, error)
	FindByFrequency(ctx context.Context, frequency Frequency) ([]ScheduledPayment, error)
	FindDueFrom(ctx context.Context, from types.Date) ([]ScheduledPayment, error)
	Update(ctx context.Context, id int64, payment *ScheduledPayment) error
	Delete(ctx context.Context, id int64) error
	ToggleActive(ctx context.Context, id int64) (bool, error)
}
