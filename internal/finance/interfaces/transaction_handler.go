package interfaces

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sebuszqo/LanaApp/internal/finance/application"
	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
	"github.com/sebuszqo/LanaApp/internal/types"
)

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (int64, error)
	CreateTransactionsBulk(ctx context.Context, transactions []*domain.Transaction) ([]int64, error)
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	GetTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetUserTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, transaction *domain.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error
	GetTransactionSummary(ctx context.Context, userID int64, start, end types.Date) (map[int]application.TransactionSummary, error)
}

type TransactionHandler struct {
	responder
	service TransactionServiceInterface
	now     func() time.Time
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON httpx.RespondJSONFunc, respondError httpx.RespondErrorFunc, logger logging.Logger) *TransactionHandler {
	if service == nil {
		panic("Service must not be nil")
	}
	return &TransactionHandler{responder: newResponder(respondJSON, respondError, logger), service: service, now: time.Now}
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.GetTransactions(r.Context())
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener las transacciones")
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	transaction, err := h.service.GetTransaction(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "No se pudo obtener la transacción")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	transactions, err := h.service.GetUserTransactions(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "No se pudieron obtener las transacciones")
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var transaction domain.Transaction
	if err := httpx.DecodeJSON(r, &transaction); err != nil {
		h.fail(w, r, err, "")
		return
	}
	id, err := h.service.CreateTransaction(r.Context(), &transaction)
	if err != nil {
		h.fail(w, r, err, "Error al crear la transacción")
		return
	}
	h.created(w, "Transacción creada correctamente", id)
}

func (h *TransactionHandler) CreateTransactionsBulk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transactions []*domain.Transaction `json:"transacciones"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	ids, err := h.service.CreateTransactionsBulk(r.Context(), req.Transactions)
	if err != nil {
		h.fail(w, r, err, "Error al crear las transacciones")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensaje": fmt.Sprintf("Se crearon %d transacciones", len(ids)),
		"ids":     ids,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var transaction domain.Transaction
	if err := httpx.DecodeJSON(r, &transaction); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := h.service.UpdateTransaction(r.Context(), id, &transaction); err != nil {
		h.fail(w, r, err, "Error al actualizar la transacción")
		return
	}
	h.message(w, "Transacción actualizada correctamente")
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteTransaction(r.Context(), id); err != nil {
		h.fail(w, r, err, "Error al eliminar la transacción")
		return
	}
	h.message(w, "Transacción eliminada correctamente")
}

// GetTransactionSummary reads the optional desde/hasta range; it defaults to
// the current year up to today.
func (h *TransactionHandler) GetTransactionSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	today := types.DateOf(h.now())
	start := types.NewDate(today.Year(), time.January, 1)
	end := today

	if raw := r.URL.Query().Get("desde"); raw != "" {
		parsed, err := types.ParseDate(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Formato de fecha inválido en 'desde'")
			return
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("hasta"); raw != "" {
		parsed, err := types.ParseDate(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Formato de fecha inválido en 'hasta'")
			return
		}
		end = parsed
	}

	summary, err := h.service.GetTransactionSummary(r.Context(), userID, start, end)
	if err != nil {
		h.fail(w, r, err, "No se pudo calcular el resumen")
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}
