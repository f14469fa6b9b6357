package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/LanaApp/internal/finance/application"
	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
)

type ScheduledPaymentServiceInterface interface {
	CreatePayment(ctx context.Context, draft domain.ScheduledPaymentDraft) (int64, error)
	GetPayment(ctx context.Context, id int64) (*domain.ScheduledPayment, error)
	GetPayments(ctx context.Context) ([]domain.ScheduledPayment, error)
	GetUpcomingPayments(ctx context.Context) ([]domain.ScheduledPayment, error)
	GetUserPayments(ctx context.Context, userID int64) ([]domain.ScheduledPayment, error)
	GetPaymentsByFrequency(ctx context.Context, frequency string) ([]domain.ScheduledPayment, error)
	UpdatePayment(ctx context.Context, id int64, draft domain.ScheduledPaymentDraft) error
	DeletePayment(ctx context.Context, id int64) error
	TogglePaymentStatus(ctx context.Context, id int64) (string, error)
	GetNextDueDate(ctx context.Context, id int64) (*application.NextDue, error)
}

type ScheduledPaymentHandler struct {
	responder
	service ScheduledPaymentServiceInterface
}

func NewScheduledPaymentHandler(service ScheduledPaymentServiceInterface, respondJSON httpx.RespondJSONFunc, respondError httpx.RespondErrorFunc, logger logging.Logger) *ScheduledPaymentHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &ScheduledPaymentHandler{responder: newResponder(respondJSON, respondError, logger), service: service}
}

func (h *ScheduledPaymentHandler) list(w http.ResponseWriter, payments []domain.ScheduledPayment) {
	h.respondJSON(w, http.StatusOK, payments)
}

func (h *ScheduledPaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetPayments(r.Context())
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener los pagos programados")
		return
	}
	h.list(w, payments)
}

func (h *ScheduledPaymentHandler) GetUpcomingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetUpcomingPayments(r.Context())
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener los pagos próximos")
		return
	}
	h.list(w, payments)
}

func (h *ScheduledPaymentHandler) GetUserPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	payments, err := h.service.GetUserPayments(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener los pagos programados")
		return
	}
	h.list(w, payments)
}

func (h *ScheduledPaymentHandler) GetPaymentsByFrequency(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetPaymentsByFrequency(r.Context(), r.PathValue("frecuencia"))
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener los pagos programados")
		return
	}
	h.list(w, payments)
}

func (h *ScheduledPaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	payment, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "No se pudo obtener el pago programado")
		return
	}
	h.respondJSON(w, http.StatusOK, payment)
}

func (h *ScheduledPaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var draft domain.ScheduledPaymentDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, err, "")
		return
	}
	id, err := h.service.CreatePayment(r.Context(), draft)
	if err != nil {
		h.fail(w, r, err, "Error al crear el pago programado")
		return
	}
	h.created(w, "Pago programado creado correctamente", id)
}

func (h *ScheduledPaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var draft domain.ScheduledPaymentDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := h.service.UpdatePayment(r.Context(), id, draft); err != nil {
		h.fail(w, r, err, "Error al actualizar el pago programado")
		return
	}
	h.message(w, "Pago programado actualizado correctamente")
}

func (h *ScheduledPaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeletePayment(r.Context(), id); err != nil {
		h.fail(w, r, err, "Error al eliminar el pago programado")
		return
	}
	h.message(w, "Pago programado eliminado correctamente")
}

func (h *ScheduledPaymentHandler) TogglePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	msg, err := h.service.TogglePaymentStatus(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Error al cambiar el estado del pago programado")
		return
	}
	h.message(w, msg)
}

func (h *ScheduledPaymentHandler) GetNextDueDate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	next, err := h.service.GetNextDueDate(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "No se pudo calcular la siguiente fecha de vencimiento")
		return
	}
	h.respondJSON(w, http.StatusOK, next)
}
