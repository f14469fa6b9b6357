package user

import (
	"errors"
	"net/http"

	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
)

type Handler struct {
	userService  Service
	respondJSON  httpx.RespondJSONFunc
	respondError httpx.RespondErrorFunc
	logger       logging.Logger
}

func NewHandler(userService Service, respondJSON httpx.RespondJSONFunc, respondError httpx.RespondErrorFunc, logger logging.Logger) *Handler {
	if userService == nil {
		panic("user service must not be nil")
	}
	if respondJSON == nil || respondError == nil {
		panic("respond functions must not be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{
		userService:  userService,
		respondJSON:  respondJSON,
		respondError: respondError,
		logger:       logger,
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if !httpx.ServiceError(w, h.respondError, err, fallback) {
		h.logger.Error(r.Context(), fallback, "error", err)
	}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}

	user, err := h.userService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			h.respondError(w, http.StatusConflict, err.Error())
			return
		}
		h.fail(w, r, err, "No se pudo registrar el usuario")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensaje": "Usuario creado correctamente",
		"id":      user.ID,
	})
}

func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener los usuarios")
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "No se pudo obtener el usuario")
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

func (h *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}

	if _, err := h.userService.UpdateUser(r.Context(), id, req); err != nil {
		h.fail(w, r, err, "No se pudo actualizar el usuario")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Usuario actualizado correctamente"})
}

func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, r, err, "No se pudo eliminar el usuario")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Usuario eliminado correctamente"})
}
