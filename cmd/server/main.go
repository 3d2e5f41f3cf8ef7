package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/alignment"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/analytics"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/connections"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/dashboard"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/finance"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/mentor"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/mindset"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/planner"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/settings"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/templates"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/config"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/database"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/hub"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/logging"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/routes"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.AppEnv)

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set, AI features will answer with fallbacks")
	}

	h, err := hub.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("hub startup failed", "backend", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	// Postgres log sink (ERROR+ async batch) and 30-day cleanup
	var dbLogHandler *logging.DBHandler
	cleanupDone := make(chan struct{})
	if h.Backend == hub.BackendPostgres {
		dbLogHandler = logging.NewDBHandler(database.DB)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			logging.NewStdoutHandler(cfg.AppEnv),
			dbLogHandler,
		)))
		logging.StartCleanup(database.DB, cleanupDone)
	}

	deps := h.Deps()

	// Register plugins (one per view)
	plugins := []apps.Plugin{
		dashboard.New(),
		analytics.New(),
		finance.New(),
		planner.New(),
		mentor.New(),
		mindset.New(),
		alignment.New(),
		connections.New(),
		templates.New(),
		settings.New(),
	}

	// Handlers
	sessionService := services.NewSessionService(cfg, h.Identity, h.Data)
	sessionHandler := handlers.NewSessionHandler(sessionService, nil)
	healthHandler := handlers.NewHealthHandler(h.Backend, h.Identity)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024, // avatars are data URIs
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	// Routes
	routes.Setup(app, deps, sessionHandler, healthHandler, plugins)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "plugins", len(plugins))
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := h.Close(); err != nil {
		slog.Error("storage close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
