package infrastructure

import (
	"errors"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/records"
)

var categorySchema = records.Schema[domain.Category]{
	Table:      "categorias",
	Columns:    []string{"nombre_categoria", "tipo"},
	Projection: []string{"id", "nombre_categoria", "tipo", "fecha_creacion", "fecha_actualizacion"},
	Touch:      "fecha_actualizacion",
	Values: func(c *domain.Category) []any {
		return []any{c.Name, string(c.Type)}
	},
	Scan: func(s records.Scanner, c *domain.Category) error {
		return s.Scan(&c.ID, &c.Name, &c.Type, &c.CreatedAt, &c.UpdatedAt)
	},
	Violations: []records.Violation{
		{Constraint: "categorias_tipo_check", Signature: "Data truncated for column 'tipo'", Err: domain.ErrInvalidCategoryType},
	},
}

var transactionSchema = records.Schema[domain.Transaction]{
	Table:      "transacciones",
	Columns:    []string{"usuario_id", "categoria_id", "monto", "tipo", "descripcion", "fecha"},
	Projection: []string{"id", "usuario_id", "categoria_id", "monto", "tipo", "descripcion", "fecha", "fecha_creacion", "fecha_actualizacion"},
	Touch:      "fecha_actualizacion",
	Values: func(t *domain.Transaction) []any {
		return []any{t.UserID, t.CategoryID, t.Amount, string(t.Type), t.Description, t.Date}
	},
	Scan: func(s records.Scanner, t *domain.Transaction) error {
		return s.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Type, &t.Description, &t.Date, &t.CreatedAt, &t.UpdatedAt)
	},
	Violations: []records.Violation{
		{Constraint: "transacciones_tipo_check", Signature: "Data truncated for column 'tipo'", Err: domain.ErrInvalidTransactionType},
		{Constraint: "transacciones_monto_check", Err: domain.ErrInvalidAmount},
	},
}

var budgetSchema = records.Schema[domain.Budget]{
	Table:      "presupuestos",
	Columns:    []string{"usuario_id", "categoria_id", "monto_presupuestado", "mes", "anio"},
	Projection: []string{"id", "usuario_id", "categoria_id", "monto_presupuestado", "mes", "anio", "fecha_creacion", "fecha_actualizacion"},
	Touch:      "fecha_actualizacion",
	Values: func(b *domain.Budget) []any {
		return []any{b.UserID, b.CategoryID, b.Amount, b.Month, b.Year}
	},
	Scan: func(s records.Scanner, b *domain.Budget) error {
		return s.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
	},
	Violations: []records.Violation{
		{Constraint: "presupuestos_monto_check", Err: domain.ErrInvalidBudgetAmount},
		{Constraint: "presupuestos_mes_check", Err: domain.ErrInvalidMonth},
	},
}

// The frequency violation also matches the message a MySQL ENUM column
// produces, so both store flavours surface the same validation error.
var scheduledPaymentSchema = records.Schema[domain.ScheduledPayment]{
	Table: "pagos_programados",
	Columns: []string{
		"usuario_id", "categoria_id", "descripcion", "monto", "dia_vencimiento", "fecha_fin",
		"frecuencia", "proxima_fecha_vencimiento", "registrar_automaticamente", "activo",
	},
	Projection: []string{
		"id", "usuario_id", "categoria_id", "descripcion", "monto", "dia_vencimiento", "fecha_fin",
		"frecuencia", "proxima_fecha_vencimiento", "registrar_automaticamente", "activo",
		"fecha_creacion", "fecha_actualizacion",
	},
	Touch: "fecha_actualizacion",
	Values: func(p *domain.ScheduledPayment) []any {
		return []any{
			p.UserID, p.CategoryID, p.Description, p.Amount, p.DueDay, p.EndDate,
			string(p.Frequency), p.NextDueDate, p.AutoRegister, p.Active,
		}
	},
	Scan: func(s records.Scanner, p *domain.ScheduledPayment) error {
		return s.Scan(
			&p.ID, &p.UserID, &p.CategoryID, &p.Description, &p.Amount, &p.DueDay, &p.EndDate,
			&p.Frequency, &p.NextDueDate, &p.AutoRegister, &p.Active,
			&p.CreatedAt, &p.UpdatedAt,
		)
	},
	Violations: []records.Violation{
		{Constraint: "pagos_programados_frecuencia_check", Signature: "Data truncated for column 'frecuencia'", Err: domain.ErrInvalidFrequency},
		{Constraint: "pagos_programados_monto_check", Err: domain.ErrInvalidAmount},
		{Constraint: "pagos_programados_dia_vencimiento_check", Err: domain.ErrInvalidDueDay},
		{Constraint: "pagos_programados_fecha_fin_check", Err: domain.ErrEndDateNotAfterNextDue},
	},
}

// notFound replaces the gateway's sentinel with the entity's own error.
func notFound(err, entityErr error) error {
	if errors.Is(err, records.ErrNotFound) {
		return entityErr
	}
	return err
}
