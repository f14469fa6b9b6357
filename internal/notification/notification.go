// Package notification stores the messages delivered to users over email,
// SMS or push, and tracks whether each one has been read.
package notification

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
	"github.com/sebuszqo/LanaApp/internal/types"
)

const (
	maxDestinationLength = 255
	maxSubjectLength     = 255
	maxSourceTypeLength  = 50
)

type Channel string

const (
	Email Channel = "email"
	SMS   Channel = "sms"
	Push  Channel = "push"
)

func (c Channel) Valid() bool {
	switch c {
	case Email, SMS, Push:
		return true
	}
	return false
}

type Status string

const (
	Pending Status = "pendiente"
	Sent    Status = "enviado"
	Failed  Status = "fallido"
)

func (s Status) Valid() bool {
	switch s {
	case Pending, Sent, Failed:
		return true
	}
	return false
}

var (
	ErrNotificationNotFound    = appErrors.NewNotFoundError("Notificación no encontrada")
	ErrNoNotificationsToUpdate = appErrors.NewNotFoundError("No hay notificaciones para actualizar")
	ErrInvalidUser             = appErrors.NewValidationError("usuario_id debe ser un entero positivo")
	ErrInvalidChannel          = appErrors.NewValidationError("Canal debe ser: 'email', 'sms' o 'push'")
	ErrInvalidStatus           = appErrors.NewValidationError("Estado debe ser: 'pendiente', 'enviado' o 'fallido'")
	ErrDestinationRequired     = appErrors.NewValidationError("El destino es obligatorio")
	ErrDestinationTooLong      = appErrors.NewValidationError("El destino no puede superar 255 caracteres")
	ErrIncompleteSource        = appErrors.NewValidationError("notificable_type y notificable_id deben indicarse juntos")
	ErrSubjectTooLong          = appErrors.NewValidationError("El asunto no puede superar 255 caracteres")
	ErrSourceTypeTooLong       = appErrors.NewValidationError("notificable_type no puede superar 50 caracteres")
)

// Source points at the record that triggered a notification. It is resolved
// by the caller; the store never follows it.
type Source struct {
	Kind string
	ID   int64
}

type Notification struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"usuario_id"`
	Channel     Channel    `json:"tipo_notificacion_canal"`
	Destination string     `json:"destino"`
	Subject     *string    `json:"asunto"`
	Message     *string    `json:"mensaje"`
	SentAt      *time.Time `json:"fecha_envio"`
	Status      Status     `json:"estado_envio"`
	Read        types.Flag `json:"leida"`
	Source      *Source    `json:"-"`
	CreatedAt   time.Time  `json:"fecha_creacion"`
	UpdatedAt   time.Time  `json:"fecha_actualizacion"`
}

// MarshalJSON flattens Source into the notificable_type/notificable_id pair.
func (n Notification) MarshalJSON() ([]byte, error) {
	type plain Notification
	out := struct {
		plain
		SourceType *string `json:"notificable_type"`
		SourceID   *int64  `json:"notificable_id"`
	}{plain: plain(n)}
	if n.Source != nil {
		out.SourceType = &n.Source.Kind
		out.SourceID = &n.Source.ID
	}
	return json.Marshal(out)
}

// Draft is the request body for create and update. Absent flags keep their
// default on create and their stored value on update.
type Draft struct {
	UserID      int64       `json:"usuario_id"`
	Channel     Channel     `json:"tipo_notificacion_canal"`
	Destination string      `json:"destino"`
	Subject     *string     `json:"asunto"`
	Message     *string     `json:"mensaje"`
	SentAt      *time.Time  `json:"fecha_envio"`
	Status      Status      `json:"estado_envio"`
	Read        *types.Flag `json:"leida"`
	SourceType  *string     `json:"notificable_type"`
	SourceID    *int64      `json:"notificable_id"`
}

// Normalize validates the draft and builds the record to persist. An empty
// status means pending.
func (d Draft) Normalize() (*Notification, error) {
	if d.UserID <= 0 {
		return nil, ErrInvalidUser
	}
	if !d.Channel.Valid() {
		return nil, ErrInvalidChannel
	}

	destination := strings.TrimSpace(d.Destination)
	if destination == "" {
		return nil, ErrDestinationRequired
	}
	if utf8.RuneCountInString(destination) > maxDestinationLength {
		return nil, ErrDestinationTooLong
	}
	if d.Subject != nil && utf8.RuneCountInString(*d.Subject) > maxSubjectLength {
		return nil, ErrSubjectTooLong
	}

	status := d.Status
	if status == "" {
		status = Pending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	source, err := d.source()
	if err != nil {
		return nil, err
	}

	n := &Notification{
		UserID:      d.UserID,
		Channel:     d.Channel,
		Destination: destination,
		Subject:     d.Subject,
		Message:     d.Message,
		SentAt:      d.SentAt,
		Status:      status,
		Source:      source,
	}
	if d.Read != nil {
		n.Read = *d.Read
	}
	return n, nil
}

func (d Draft) source() (*Source, error) {
	var kind string
	if d.SourceType != nil {
		kind = strings.TrimSpace(*d.SourceType)
	}
	switch {
	case kind == "" && d.SourceID == nil:
		return nil, nil
	case kind == "" || d.SourceID == nil:
		return nil, ErrIncompleteSource
	case utf8.RuneCountInString(kind) > maxSourceTypeLength:
		return nil, ErrSourceTypeTooLong
	}
	return &Source{Kind: kind, ID: *d.SourceID}, nil
}
