package notification

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/LanaApp/internal/records"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) (int64, error)
	Get(ctx context.Context, id int64) (*Notification, error)
	List(ctx context.Context) ([]Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	Update(ctx context.Context, id int64, n *Notification) error
	Delete(ctx context.Context, id int64) error
	MarkRead(ctx context.Context, id int64) (int64, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

var notificationSchema = records.Schema[Notification]{
	Table: "notificaciones",
	Columns: []string{
		"usuario_id", "tipo_notificacion_canal", "destino", "asunto", "mensaje",
		"fecha_envio", "estado_envio", "leida", "notificable_type", "notificable_id",
	},
	Projection: []string{
		"id", "usuario_id", "tipo_notificacion_canal", "destino", "asunto", "mensaje",
		"fecha_envio", "estado_envio", "leida", "notificable_type", "notificable_id",
		"fecha_creacion", "fecha_actualizacion",
	},
	Touch: "fecha_actualizacion",
	Values: func(n *Notification) []any {
		var kind, sourceID any
		if n.Source != nil {
			kind, sourceID = n.Source.Kind, n.Source.ID
		}
		return []any{
			n.UserID, string(n.Channel), n.Destination, n.Subject, n.Message,
			n.SentAt, string(n.Status), n.Read, kind, sourceID,
		}
	},
	Scan: func(s records.Scanner, n *Notification) error {
		var (
			kind     sql.NullString
			sourceID sql.NullInt64
		)
		err := s.Scan(&n.ID, &n.UserID, &n.Channel, &n.Destination, &n.Subject, &n.Message,
			&n.SentAt, &n.Status, &n.Read, &kind, &sourceID, &n.CreatedAt, &n.UpdatedAt)
		if err != nil {
			return err
		}
		n.Source = nil
		if kind.Valid && sourceID.Valid {
			n.Source = &Source{Kind: kind.String, ID: sourceID.Int64}
		}
		return nil
	},
	Violations: []records.Violation{
		{Constraint: "notificaciones_canal_check", Signature: "Data truncated for column 'tipo_notificacion_canal'", Err: ErrInvalidChannel},
		{Constraint: "notificaciones_estado_check", Signature: "Data truncated for column 'estado_envio'", Err: ErrInvalidStatus},
		{Constraint: "notificaciones_notificable_check", Err: ErrIncompleteSource},
	},
}

type notificationRepository struct {
	records *records.Gateway[Notification]
}

func NewNotificationRepository(db *sql.DB) Repository {
	return &notificationRepository{records: records.NewGateway(db, notificationSchema)}
}

func notFound(err error) error {
	if errors.Is(err, records.ErrNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (r *notificationRepository) Create(ctx context.Context, n *Notification) (int64, error) {
	return r.records.Create(ctx, n)
}

func (r *notificationRepository) Get(ctx context.Context, id int64) (*Notification, error) {
	n, err := r.records.Get(ctx, id)
	return n, notFound(err)
}

func (r *notificationRepository) List(ctx context.Context) ([]Notification, error) {
	return r.records.List(ctx, records.Query{})
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]Notification, error) {
	return r.records.List(ctx, records.Query{
		Filters: []records.Filter{records.Eq("usuario_id", userID)},
		OrderBy: "fecha_creacion DESC, id DESC",
	})
}

func (r *notificationRepository) Update(ctx context.Context, id int64, n *Notification) error {
	return notFound(r.records.Update(ctx, id, n))
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	return notFound(r.records.Delete(ctx, id))
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) (int64, error) {
	n, err := r.records.Assign(ctx, []records.Assignment{{Column: "leida", Value: true}}, records.Eq("id", id))
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotificationNotFound
	}
	return n, nil
}

// markAllRead only counts notifications that were still unread.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return r.records.Assign(ctx,
		[]records.Assignment{{Column: "leida", Value: true}},
		records.Eq("usuario_id", userID), records.Eq("leida", false))
}
