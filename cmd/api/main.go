// Package main is the entrypoint for the Bookshelf API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bookshelf/bookshelf/internal/auth"
	"github.com/bookshelf/bookshelf/internal/config"
	"github.com/bookshelf/bookshelf/internal/handler"
	"github.com/bookshelf/bookshelf/internal/middleware"
	"github.com/bookshelf/bookshelf/internal/repository"
	"github.com/bookshelf/bookshelf/internal/server"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize document store
	repo, err := repository.New(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error(
			"failed to connect to MongoDB",
			slog.String("error", sanitizeError(err, cfg.MongoURI)),
			slog.String("mongo_uri", redactURL(cfg.MongoURI)),
		)
		os.Exit(1)
	}
	logger.Info("connected to MongoDB", slog.String("database", cfg.MongoDB))

	// Initialize identity verifier
	verifier, err := auth.NewJWTVerifier(cfg.TokenSecret)
	if err != nil {
		logger.Error("failed to initialize token verifier", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo)
	userHandler := handler.NewUserHandler(repo, logger)
	bookHandler := handler.NewBookHandler(repo, logger)
	reviewHandler := handler.NewReviewHandler(repo, logger)

	// Setup router
	r := setupRouter(h, healthHandler, userHandler, bookHandler, reviewHandler, verifier, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("mongodb", repo.Close)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	verifier auth.Verifier,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(chimiddleware.RequestSize(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Liveness text
	r.Get("/", h.Root)

	// Access guard for owner-only routes
	guard := middleware.Auth(middleware.AuthConfig{
		Logger:   logger,
		Verifier: verifier,
	})

	// Users
	r.Get("/users", userHandler.List)
	r.Post("/users", userHandler.Create)

	// Books
	r.Get("/books", bookHandler.List)
	r.Get("/newlyReleased", bookHandler.NewlyReleased)
	r.Get("/popular-books", bookHandler.Popular)
	r.With(guard).Get("/my-books/{email}", bookHandler.ListByOwner)
	r.Get("/my-book/{id}", bookHandler.Get)
	r.Post("/books", bookHandler.Create)
	r.With(guard).Put("/update-book/{id}", bookHandler.Update)
	r.Patch("/book/{id}/upvote", bookHandler.Upvote)
	r.Patch("/books/{id}/reading-status", bookHandler.SetReadingStatus)
	r.With(guard).Delete("/books/{id}", bookHandler.Delete)

	// Reviews
	r.Post("/reviews", reviewHandler.Create)
	r.Put("/reviews/{id}", reviewHandler.Update)
	r.Get("/reviews", reviewHandler.ListByBook)
	r.Delete("/reviews/{id}", reviewHandler.Delete)

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

// redactURL strips credentials from a connection string for logging.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

// sanitizeError removes connection secrets from an error message.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return msg
}
