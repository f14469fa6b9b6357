package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sebuszqo/LanaApp/internal/auth"
	"github.com/sebuszqo/LanaApp/internal/config"
	database "github.com/sebuszqo/LanaApp/internal/db"
	"github.com/sebuszqo/LanaApp/internal/finance/application"
	"github.com/sebuszqo/LanaApp/internal/finance/infrastructure"
	"github.com/sebuszqo/LanaApp/internal/finance/interfaces"
	"github.com/sebuszqo/LanaApp/internal/logging"
	"github.com/sebuszqo/LanaApp/internal/metrics"
	"github.com/sebuszqo/LanaApp/internal/notification"
	"github.com/sebuszqo/LanaApp/internal/user"
)

func main() {
	if err := run(); err != nil {
		logging.New(os.Stderr, "error").Error(context.Background(), "server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbService, err := database.NewDBService(ctx, database.Options{
		ConnectionString: cfg.DBConnectionString,
		MaxOpenConns:     cfg.DBMaxOpenConns,
		MaxIdleConns:     cfg.DBMaxIdleConns,
		ConnMaxLifetime:  cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer dbService.Close()

	if cfg.RunMigrations {
		if err := database.Migrate(ctx, dbService.DB); err != nil {
			return err
		}
		logger.Info(ctx, "migrations applied")
	}

	revocations, closeRevocations, err := newRevocationList(ctx, cfg, dbService)
	if err != nil {
		return err
	}
	defer closeRevocations()

	jwtManager, err := auth.NewJWTManager(cfg.JWTSecret, auth.WithDefaultDuration(cfg.AccessTokenTTL))
	if err != nil {
		return err
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService, respondJSON, respondError, logger)

	authService := auth.NewAuthService(userService, jwtManager, revocations, cfg.LoginTokenTTL, respondError, logger)
	authHandler := auth.NewHandler(authService, respondJSON, respondError, logger)

	categoryService := application.NewCategoryService(infrastructure.NewCategoryRepository(dbService.DB))
	transactionService := application.NewTransactionService(infrastructure.NewTransactionRepository(dbService.DB), categoryService)
	budgetService := application.NewBudgetService(infrastructure.NewBudgetRepository(dbService.DB))
	paymentService := application.NewScheduledPaymentService(infrastructure.NewScheduledPaymentRepository(dbService.DB))

	notificationService := notification.NewNotificationService(notification.NewNotificationRepository(dbService.DB))

	m := metrics.New()
	server := &Server{
		db:                  dbService,
		metrics:             m,
		authService:         authService,
		authHandler:         authHandler,
		userHandler:         userHandler,
		categoryHandler:     interfaces.NewCategoryHandler(categoryService, respondJSON, respondError, logger),
		transactionHandler:  interfaces.NewTransactionHandler(transactionService, respondJSON, respondError, logger),
		budgetHandler:       interfaces.NewBudgetHandler(budgetService, respondJSON, respondError, logger),
		paymentHandler:      interfaces.NewScheduledPaymentHandler(paymentService, respondJSON, respondError, logger),
		notificationHandler: notification.NewHandler(notificationService, respondJSON, respondError, logger),
	}
	server.RegisterRoutes()

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           loggingMiddleware(logger, m, server.router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newRevocationList picks Redis when REDIS_ADDR is configured and the
// tokens_jwt_invalidos table otherwise.
func newRevocationList(ctx context.Context, cfg *config.Config, dbService *database.DBService) (auth.RevocationList, func(), error) {
	if cfg.RedisAddr == "" {
		return auth.NewSQLRevocationList(dbService.DB), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}
	return auth.NewRedisRevocationList(client), func() { client.Close() }, nil
}
