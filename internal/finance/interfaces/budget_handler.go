package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
)

type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, budget *domain.Budget) (int64, error)
	GetBudget(ctx context.Context, id int64) (*domain.Budget, error)
	GetBudgets(ctx context.Context) ([]domain.Budget, error)
	GetUserBudgets(ctx context.Context, userID int64) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, id int64, budget *domain.Budget) error
	DeleteBudget(ctx context.Context, id int64) error
}

type BudgetHandler struct {
	responder
	service BudgetServiceInterface
}

func NewBudgetHandler(service BudgetServiceInterface, respondJSON httpx.RespondJSONFunc, respondError httpx.RespondErrorFunc, logger logging.Logger) *BudgetHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &BudgetHandler{responder: newResponder(respondJSON, respondError, logger), service: service}
}

func (h *BudgetHandler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.service.GetBudgets(r.Context())
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener los presupuestos")
		return
	}
	h.respondJSON(w, http.StatusOK, budgets)
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	budget, err := h.service.GetBudget(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "No se pudo obtener el presupuesto")
		return
	}
	h.respondJSON(w, http.StatusOK, budget)
}

func (h *BudgetHandler) GetUserBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	budgets, err := h.service.GetUserBudgets(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener los presupuestos")
		return
	}
	h.respondJSON(w, http.StatusOK, budgets)
}

func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var budget domain.Budget
	if err := httpx.DecodeJSON(r, &budget); err != nil {
		h.fail(w, r, err, "")
		return
	}
	id, err := h.service.CreateBudget(r.Context(), &budget)
	if err != nil {
		h.fail(w, r, err, "Error al crear el presupuesto")
		return
	}
	h.created(w, "Presupuesto creado correctamente", id)
}

func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var budget domain.Budget
	if err := httpx.DecodeJSON(r, &budget); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := h.service.UpdateBudget(r.Context(), id, &budget); err != nil {
		h.fail(w, r, err, "Error al actualizar el presupuesto")
		return
	}
	h.message(w, "Presupuesto actualizado correctamente")
}

func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteBudget(r.Context(), id); err != nil {
		h.fail(w, r, err, "Error al eliminar el presupuesto")
		return
	}
	h.message(w, "Presupuesto eliminado correctamente")
}
