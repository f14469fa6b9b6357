package notification

import (
	"fmt"
	"net/http"

	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
)

type Handler struct {
	service      Service
	respondJSON  httpx.RespondJSONFunc
	respondError httpx.RespondErrorFunc
	logger       logging.Logger
}

func NewHandler(service Service, respondJSON httpx.RespondJSONFunc, respondError httpx.RespondErrorFunc, logger logging.Logger) *Handler {
	if service == nil {
		panic("notification service must not be nil")
	}
	if respondJSON == nil || respondError == nil {
		panic("respond functions must not be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{service: service, respondJSON: respondJSON, respondError: respondError, logger: logger}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if !httpx.ServiceError(w, h.respondError, err, fallback) {
		h.logger.Error(r.Context(), fallback, "error", err)
	}
}

func (h *Handler) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.ListNotifications(r.Context())
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener las notificaciones")
		return
	}
	h.respondJSON(w, http.StatusOK, notifications)
}

func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.id(w, r)
	if !ok {
		return
	}
	notifications, err := h.service.ListUserNotifications(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener las notificaciones")
		return
	}
	h.respondJSON(w, http.StatusOK, notifications)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	n, err := h.service.GetNotification(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "No se pudo obtener la notificación")
		return
	}
	h.respondJSON(w, http.StatusOK, n)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, err, "")
		return
	}
	id, err := h.service.CreateNotification(r.Context(), draft)
	if err != nil {
		h.fail(w, r, err, "Error al crear la notificación")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensaje": "Notificación creada",
		"id":      id,
	})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var draft Draft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := h.service.UpdateNotification(r.Context(), id, draft); err != nil {
		h.fail(w, r, err, "Error al actualizar la notificación")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Notificación actualizada"})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteNotification(r.Context(), id); err != nil {
		h.fail(w, r, err, "Error al eliminar la notificación")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Notificación eliminada"})
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	n, err := h.service.MarkRead(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Error al marcar la notificación como leída")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"mensaje":      "Notificación marcada como leída",
		"actualizadas": n,
	})
}

func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.id(w, r)
	if !ok {
		return
	}
	n, err := h.service.MarkAllRead(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "Error al marcar las notificaciones como leídas")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"mensaje":      fmt.Sprintf("Se marcaron %d notificaciones como leídas", n),
		"actualizadas": n,
	})
}
