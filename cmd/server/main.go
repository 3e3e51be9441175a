package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"granazap/internal/config"
	"granazap/internal/database"
	"granazap/internal/handlers"
	"granazap/internal/identity"
	"granazap/internal/repositories"
	"granazap/internal/services"
	"granazap/internal/webhooks"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env in development; a missing file is fine in containers
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	slog.Info("connected to database", "host", cfg.Database.Host, "name", cfg.Database.Name)

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
		return err
	}
	if err := db.AutoMigrate(); err != nil {
		return err
	}
	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create indexes", "error", err)
	}

	// Repositories
	profileRepo := repositories.NewProfileRepository(db.DB)
	limitRepo := repositories.NewLimitRepository(db.DB)
	subscriptionRepo := repositories.NewSubscriptionRepository(db.DB)

	// Upstream clients
	metrics := services.NewPrometheusMetrics()
	automation := webhooks.NewClient(&cfg.Webhooks, metrics)
	provider := identity.NewClient(&cfg.Identity)
	broadcaster := identity.NewBroadcaster(provider)

	// Services
	dashboardService := services.NewDashboardService(automation, metrics)
	limitsService := services.NewLimitsService(limitRepo, automation, metrics)
	profileService := services.NewProfileService(profileRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, profileRepo, automation, &cfg.Checkout)
	checkoutService := services.NewCheckoutService(automation, &cfg.Checkout, metrics)

	// Handlers
	deps := &routeDependencies{
		config:              cfg,
		db:                  db,
		dashboardHandler:    handlers.NewDashboardHandler(dashboardService),
		limitsHandler:       handlers.NewLimitsHandler(limitsService),
		profileHandler:      handlers.NewProfileHandler(profileService),
		subscriptionHandler: handlers.NewSubscriptionHandler(subscriptionService, checkoutService),
		checkoutHandler:     handlers.NewCheckoutHandler(checkoutService),
		authHandler:         handlers.NewAuthHandler(broadcaster, provider),
		healthHandler:       handlers.NewHealthCheckHandler(db.DB),
	}

	e := echo.New()
	e.HideBanner = true
	setupRoutes(e, deps)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server starting", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("error shutting down server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}
