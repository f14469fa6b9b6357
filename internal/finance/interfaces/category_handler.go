package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, category *domain.Category) (int64, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	GetCategories(ctx context.Context, categoryType string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryHandler struct {
	responder
	service CategoryServiceInterface
}

func NewCategoryHandler(service CategoryServiceInterface, respondJSON httpx.RespondJSONFunc, respondError httpx.RespondErrorFunc, logger logging.Logger) *CategoryHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &CategoryHandler{responder: newResponder(respondJSON, respondError, logger), service: service}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context(), r.URL.Query().Get("tipo"))
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener las categorías")
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "No se pudo obtener la categoría")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := httpx.DecodeJSON(r, &category); err != nil {
		h.fail(w, r, err, "")
		return
	}
	id, err := h.service.CreateCategory(r.Context(), &category)
	if err != nil {
		h.fail(w, r, err, "Error al crear la categoría")
		return
	}
	h.created(w, "Categoría creada correctamente", id)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var category domain.Category
	if err := httpx.DecodeJSON(r, &category); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := h.service.UpdateCategory(r.Context(), id, &category); err != nil {
		h.fail(w, r, err, "Error al actualizar la categoría")
		return
	}
	h.message(w, "Categoría actualizada correctamente")
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		h.fail(w, r, err, "Error al eliminar la categoría")
		return
	}
	h.message(w, "Categoría eliminada correctamente")
}
