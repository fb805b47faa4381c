package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nanjundeshwara/stores-backend/api/routes"
	"github.com/nanjundeshwara/stores-backend/internal/config"
	"github.com/nanjundeshwara/stores-backend/internal/handlers"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	mongorepo "github.com/nanjundeshwara/stores-backend/internal/repositories/mongodb"
	"github.com/nanjundeshwara/stores-backend/internal/services"
	"github.com/nanjundeshwara/stores-backend/pkg/mongodb"
	"github.com/nanjundeshwara/stores-backend/pkg/translate"
	"golang.org/x/exp/slog"
)

func main() {
	// A missing .env is fine; real deployments configure the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIndexes()
	if err := mongorepo.EnsureIndexes(indexCtx, db); err != nil {
		slog.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	// Repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var paymentRepo repositories.PaymentRepository = mongorepo.NewPaymentRepository(db)
	var villageRepo repositories.VillageRepository = mongorepo.NewVillageRepository(db)
	var notificationRepo repositories.NotificationRepository = mongorepo.NewNotificationRepository(db)
	var transactionRepo repositories.TransactionRepository = mongorepo.NewTransactionRepository(db)

	// Translation client and message catalog
	translateClient := translate.NewClient(translate.Options{
		PrimaryURL:  cfg.Translate.PrimaryURL,
		FallbackURL: cfg.Translate.FallbackURL,
		Timeout:     cfg.Translate.Timeout,
		CacheSize:   cfg.Translate.CacheSize,
		CacheTTL:    cfg.Translate.CacheTTL,
	})
	catalog := i18n.NewCatalog(translateClient)

	// Services
	notificationService := services.NewNotificationService(notificationRepo, catalog)
	userService := services.NewUserService(userRepo, paymentRepo, villageRepo, notificationRepo, transactionRepo, notificationService)
	paymentService := services.NewPaymentService(userRepo, paymentRepo, transactionRepo, notificationService)
	authService := services.NewAuthService(userRepo, cfg)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService, catalog),
		UserHandler:         handlers.NewUserHandler(userService, catalog),
		PaymentHandler:      handlers.NewPaymentHandler(paymentService, catalog),
		NotificationHandler: handlers.NewNotificationHandler(notificationService, catalog),
		TranslationHandler:  handlers.NewTranslationHandler(translateClient),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exiting")
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
