package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sebuszqo/LanaApp/internal/auth"
	"github.com/sebuszqo/LanaApp/internal/finance/application"
	"github.com/sebuszqo/LanaApp/internal/finance/domain"
	"github.com/sebuszqo/LanaApp/internal/finance/interfaces"
	"github.com/sebuszqo/LanaApp/internal/logging"
	"github.com/sebuszqo/LanaApp/internal/metrics"
	"github.com/sebuszqo/LanaApp/internal/notification"
	"github.com/sebuszqo/LanaApp/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callLog records which service method a request reached.
type callLog struct {
	calls []string
}

func (c *callLog) record(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *callLog) last() string {
	if len(c.calls) == 0 {
		return ""
	}
	return c.calls[len(c.calls)-1]
}

// The stubs embed the service interface; methods a test does not route to
// are left unimplemented.
type stubUserService struct {
	user.Service
	log *callLog
}

func (s *stubUserService) Register(_ context.Context, req user.RegisterRequest) (*user.User, error) {
	s.log.record("Register:%s", req.Email)
	return &user.User{ID: 11, Name: req.Name, Email: req.Email}, nil
}

func (s *stubUserService) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	if email != "ana@example.com" {
		return nil, user.ErrUserNotFound
	}
	return &user.User{ID: 1, Name: "Ana", Email: email}, nil
}

type stubCategoryService struct {
	interfaces.CategoryServiceInterface
	log *callLog
}

func (s *stubCategoryService) GetCategories(_ context.Context, categoryType string) ([]domain.Category, error) {
	s.log.record("GetCategories")
	return []domain.Category{}, nil
}

type stubTransactionService struct {
	interfaces.TransactionServiceInterface
	log *callLog
}

func (s *stubTransactionService) GetTransaction(_ context.Context, id int64) (*domain.Transaction, error) {
	s.log.record("GetTransaction:%d", id)
	return &domain.Transaction{ID: id}, nil
}

func (s *stubTransactionService) GetUserTransactions(_ context.Context, userID int64) ([]domain.Transaction, error) {
	s.log.record("GetUserTransactions:%d", userID)
	return []domain.Transaction{}, nil
}

type stubBudgetService struct {
	interfaces.BudgetServiceInterface
}

type stubPaymentService struct {
	interfaces.ScheduledPaymentServiceInterface
	log *callLog
}

func (s *stubPaymentService) GetPayment(_ context.Context, id int64) (*domain.ScheduledPayment, error) {
	s.log.record("GetPayment:%d", id)
	return &domain.ScheduledPayment{ID: id}, nil
}

func (s *stubPaymentService) GetUpcomingPayments(context.Context) ([]domain.ScheduledPayment, error) {
	s.log.record("GetUpcomingPayments")
	return []domain.ScheduledPayment{}, nil
}

func (s *stubPaymentService) GetUserPayments(_ context.Context, userID int64) ([]domain.ScheduledPayment, error) {
	s.log.record("GetUserPayments:%d", userID)
	return []domain.ScheduledPayment{}, nil
}

func (s *stubPaymentService) GetPaymentsByFrequency(_ context.Context, frequency string) ([]domain.ScheduledPayment, error) {
	s.log.record("GetPaymentsByFrequency:%s", frequency)
	return []domain.ScheduledPayment{}, nil
}

func (s *stubPaymentService) GetNextDueDate(_ context.Context, id int64) (*application.NextDue, error) {
	s.log.record("GetNextDueDate:%d", id)
	return &application.NextDue{}, nil
}

type stubNotificationService struct {
	notification.Service
	log *callLog
}

func (s *stubNotificationService) GetNotification(_ context.Context, id int64) (*notification.Notification, error) {
	s.log.record("GetNotification:%d", id)
	return &notification.Notification{ID: id}, nil
}

func (s *stubNotificationService) ListUserNotifications(_ context.Context, userID int64) ([]notification.Notification, error) {
	s.log.record("ListUserNotifications:%d", userID)
	return []notification.Notification{}, nil
}

func (s *stubNotificationService) MarkRead(_ context.Context, id int64) (int64, error) {
	s.log.record("MarkRead:%d", id)
	return 1, nil
}

func (s *stubNotificationService) MarkAllRead(_ context.Context, userID int64) (int64, error) {
	s.log.record("MarkAllRead:%d", userID)
	return 3, nil
}

func newRoutedServer(t *testing.T) (http.Handler, *callLog, string) {
	t.Helper()
	log := &callLog{}
	logger := logging.Discard()

	jwtManager, err := auth.NewJWTManager("routes-secret")
	require.NoError(t, err)
	users := &stubUserService{log: log}
	authService := auth.NewAuthService(users, jwtManager, nil, 0, respondError, logger)

	s := &Server{
		metrics:             metrics.New(),
		authService:         authService,
		authHandler:         auth.NewHandler(authService, respondJSON, respondError, logger),
		userHandler:         user.NewHandler(users, respondJSON, respondError, logger),
		categoryHandler:     interfaces.NewCategoryHandler(&stubCategoryService{log: log}, respondJSON, respondError, logger),
		transactionHandler:  interfaces.NewTransactionHandler(&stubTransactionService{log: log}, respondJSON, respondError, logger),
		budgetHandler:       interfaces.NewBudgetHandler(&stubBudgetService{}, respondJSON, respondError, logger),
		paymentHandler:      interfaces.NewScheduledPaymentHandler(&stubPaymentService{log: log}, respondJSON, respondError, logger),
		notificationHandler: notification.NewHandler(&stubNotificationService{log: log}, respondJSON, respondError, logger),
	}
	s.RegisterRoutes()

	token, err := jwtManager.Issue("ana@example.com", time.Hour)
	require.NoError(t, err)
	return s.router, log, token
}

func TestRegisterRoutes_StaticSegmentsWinOverIDs(t *testing.T) {
	router, log, token := newRoutedServer(t)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/lanaapp/pagos-fijos/upcoming", "GetUpcomingPayments"},
		{http.MethodGet, "/lanaapp/pagos-fijos/usuario/3", "GetUserPayments:3"},
		{http.MethodGet, "/lanaapp/pagos-fijos/frecuencia/mensual", "GetPaymentsByFrequency:mensual"},
		{http.MethodGet, "/lanaapp/pagos-fijos/siguiente/4", "GetNextDueDate:4"},
		{http.MethodGet, "/lanaapp/pagos-fijos/5", "GetPayment:5"},
		{http.MethodGet, "/lanaapp/transaccion/usuario/3", "GetUserTransactions:3"},
		{http.MethodGet, "/lanaapp/transaccion/8", "GetTransaction:8"},
		{http.MethodGet, "/lanaapp/notificaciones/usuario/2", "ListUserNotifications:2"},
		{http.MethodGet, "/lanaapp/notificaciones/6", "GetNotification:6"},
		{http.MethodPut, "/lanaapp/notificaciones/6/leida", "MarkRead:6"},
		{http.MethodPut, "/lanaapp/notificaciones/usuario/2/marcar-leidas", "MarkAllRead:2"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, log.last())
		})
	}
}

func TestRegisterRoutes_MarkReadReportsCount(t *testing.T) {
	router, _, token := newRoutedServer(t)

	for path, want := range map[string]float64{
		"/lanaapp/notificaciones/6/leida":                 1,
		"/lanaapp/notificaciones/usuario/2/marcar-leidas": 3,
	} {
		req := httptest.NewRequest(http.MethodPut, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, want, body["actualizadas"], path)
	}
}

func TestRegisterRoutes_ProtectedRequireToken(t *testing.T) {
	router, log, _ := newRoutedServer(t)

	for _, path := range []string{"/lanaapp/categorias", "/lanaapp/pagos-fijos/upcoming", "/lanaapp/user", "/lanaapp/no-existe"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"), path)
	}
	assert.Empty(t, log.calls)
}

func TestRegisterRoutes_RegisterIsPublic(t *testing.T) {
	router, log, _ := newRoutedServer(t)

	body := `{"nombre_usuario":"Luis","email":"luis@example.com","password":"secreto1"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/lanaapp/user", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Register:luis@example.com", log.last())
}

func TestRegisterRoutes_AuthenticatedCategories(t *testing.T) {
	router, log, token := newRoutedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/lanaapp/categorias", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GetCategories", log.last())
}
