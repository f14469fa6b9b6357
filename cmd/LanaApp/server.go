package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sebuszqo/LanaApp/internal/auth"
	database "github.com/sebuszqo/LanaApp/internal/db"
	"github.com/sebuszqo/LanaApp/internal/finance/interfaces"
	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
	"github.com/sebuszqo/LanaApp/internal/metrics"
	"github.com/sebuszqo/LanaApp/internal/notification"
	"github.com/sebuszqo/LanaApp/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errors ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errors) > 0 && len(errors[0]) > 0 {
		payload["errors"] = errors[0]
	}
	respondJSON(w, status, payload)
}

func loggingMiddleware(logger logging.Logger, m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := httpx.NewStatusRecorder(w)

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		m.Observe(r.Method, rec.Status, elapsed)
		logger.Info(r.Context(), "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.Status,
			"duration", elapsed,
		)
	})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusNotFound, Response{Message: "Ruta no encontrada"})
}

type Server struct {
	router              *http.ServeMux
	db                  *database.DBService
	metrics             *metrics.Metrics
	authService         auth.Service
	authHandler         *auth.Handler
	userHandler         *user.Handler
	categoryHandler     *interfaces.CategoryHandler
	transactionHandler  *interfaces.TransactionHandler
	budgetHandler       *interfaces.BudgetHandler
	paymentHandler      *interfaces.ScheduledPaymentHandler
	notificationHandler *notification.Handler
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"mensaje": "Bienvenido a la API de LanaApp",
		"endpoints": map[string]string{
			"usuarios":          "/lanaapp/user",
			"categorias":        "/lanaapp/categorias",
			"transacciones":     "/lanaapp/transaccion",
			"presupuestos":      "/lanaapp/presupuesto",
			"pagos_programados": "/lanaapp/pagos-fijos",
			"notificaciones":    "/lanaapp/notificaciones",
			"login":             "/login",
			"logout":            "/logout",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.db.Health(r.Context())
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, stats)
}

func (s *Server) RegisterRoutes() {
	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	protectedRoutes.HandleFunc("GET /lanaapp/user", s.userHandler.HandleListUsers)
	protectedRoutes.HandleFunc("GET /lanaapp/user/{id}", s.userHandler.HandleGetUser)
	protectedRoutes.HandleFunc("PUT /lanaapp/user/{id}", s.userHandler.HandleUpdateUser)
	protectedRoutes.HandleFunc("DELETE /lanaapp/user/{id}", s.userHandler.HandleDeleteUser)

	protectedRoutes.HandleFunc("GET /lanaapp/categorias", s.categoryHandler.GetCategories)
	protectedRoutes.HandleFunc("POST /lanaapp/categorias", s.categoryHandler.CreateCategory)
	protectedRoutes.HandleFunc("GET /lanaapp/categorias/{id}", s.categoryHandler.GetCategory)
	protectedRoutes.HandleFunc("PUT /lanaapp/categorias/{id}", s.categoryHandler.UpdateCategory)
	protectedRoutes.HandleFunc("DELETE /lanaapp/categorias/{id}", s.categoryHandler.DeleteCategory)

	protectedRoutes.HandleFunc("GET /lanaapp/transaccion", s.transactionHandler.GetTransactions)
	protectedRoutes.HandleFunc("POST /lanaapp/transaccion", s.transactionHandler.CreateTransaction)
	protectedRoutes.HandleFunc("POST /lanaapp/transaccion/lote", s.transactionHandler.CreateTransactionsBulk)
	protectedRoutes.HandleFunc("GET /lanaapp/transaccion/usuario/{id}", s.transactionHandler.GetUserTransactions)
	protectedRoutes.HandleFunc("GET /lanaapp/transaccion/usuario/{id}/resumen", s.transactionHandler.GetTransactionSummary)
	protectedRoutes.HandleFunc("GET /lanaapp/transaccion/{id}", s.transactionHandler.GetTransaction)
	protectedRoutes.HandleFunc("PUT /lanaapp/transaccion/{id}", s.transactionHandler.UpdateTransaction)
	protectedRoutes.HandleFunc("DELETE /lanaapp/transaccion/{id}", s.transactionHandler.DeleteTransaction)

	protectedRoutes.HandleFunc("GET /lanaapp/presupuesto", s.budgetHandler.GetBudgets)
	protectedRoutes.HandleFunc("POST /lanaapp/presupuesto", s.budgetHandler.CreateBudget)
	protectedRoutes.HandleFunc("GET /lanaapp/presupuesto/usuario/{id}", s.budgetHandler.GetUserBudgets)
	protectedRoutes.HandleFunc("GET /lanaapp/presupuesto/{id}", s.budgetHandler.GetBudget)
	protectedRoutes.HandleFunc("PUT /lanaapp/presupuesto/{id}", s.budgetHandler.UpdateBudget)
	protectedRoutes.HandleFunc("DELETE /lanaapp/presupuesto/{id}", s.budgetHandler.DeleteBudget)

	protectedRoutes.HandleFunc("GET /lanaapp/pagos-fijos", s.paymentHandler.GetPayments)
	protectedRoutes.HandleFunc("POST /lanaapp/pagos-fijos", s.paymentHandler.CreatePayment)
	protectedRoutes.HandleFunc("GET /lanaapp/pagos-fijos/upcoming", s.paymentHandler.GetUpcomingPayments)
	protectedRoutes.HandleFunc("GET /lanaapp/pagos-fijos/usuario/{id}", s.paymentHandler.GetUserPayments)
	protectedRoutes.HandleFunc("GET /lanaapp/pagos-fijos/frecuencia/{frecuencia}", s.paymentHandler.GetPaymentsByFrequency)
	protectedRoutes.HandleFunc("GET /lanaapp/pagos-fijos/siguiente/{id}", s.paymentHandler.GetNextDueDate)
	protectedRoutes.HandleFunc("GET /lanaapp/pagos-fijos/{id}", s.paymentHandler.GetPayment)
	protectedRoutes.HandleFunc("PUT /lanaapp/pagos-fijos/{id}", s.paymentHandler.UpdatePayment)
	protectedRoutes.HandleFunc("DELETE /lanaapp/pagos-fijos/{id}", s.paymentHandler.DeletePayment)
	protectedRoutes.HandleFunc("PATCH /lanaapp/pagos-fijos/{id}/toggle-status", s.paymentHandler.TogglePaymentStatus)

	protectedRoutes.HandleFunc("GET /lanaapp/notificaciones", s.notificationHandler.HandleList)
	protectedRoutes.HandleFunc("POST /lanaapp/notificaciones", s.notificationHandler.HandleCreate)
	protectedRoutes.HandleFunc("GET /lanaapp/notificaciones/usuario/{id}", s.notificationHandler.HandleListByUser)
	protectedRoutes.HandleFunc("PUT /lanaapp/notificaciones/usuario/{id}/marcar-leidas", s.notificationHandler.HandleMarkAllRead)
	protectedRoutes.HandleFunc("GET /lanaapp/notificaciones/{id}", s.notificationHandler.HandleGet)
	protectedRoutes.HandleFunc("PUT /lanaapp/notificaciones/{id}", s.notificationHandler.HandleUpdate)
	protectedRoutes.HandleFunc("DELETE /lanaapp/notificaciones/{id}", s.notificationHandler.HandleDelete)
	protectedRoutes.HandleFunc("PUT /lanaapp/notificaciones/{id}/leida", s.notificationHandler.HandleMarkRead)

	requireToken := s.authService.JWTAccessTokenMiddleware()

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.HandleFunc("GET /{$}", s.handleRoot)
	mainRouter.HandleFunc("GET /health", s.handleHealth)
	mainRouter.Handle("GET /metrics", s.metrics.Handler())

	mainRouter.HandleFunc("POST /login", s.authHandler.HandleLogin)
	mainRouter.HandleFunc("POST /logout", s.authHandler.HandleLogout)
	mainRouter.Handle("GET /verify-token", requireToken(http.HandlerFunc(s.authHandler.HandleCurrentUser)))
	mainRouter.Handle("GET /usuario-actual", requireToken(http.HandlerFunc(s.authHandler.HandleCurrentUser)))

	mainRouter.HandleFunc("POST /lanaapp/user", s.userHandler.HandleRegister)
	mainRouter.Handle("/lanaapp/", requireToken(protectedRoutes))
	mainRouter.HandleFunc("/", notFoundHandler)

	s.router = mainRouter
}
