// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/shikostudio/vitrine/internal/api"
	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/journal"
	"github.com/shikostudio/vitrine/internal/mcpserver"
	"github.com/shikostudio/vitrine/internal/render"
	"github.com/shikostudio/vitrine/internal/sse"
	"github.com/shikostudio/vitrine/internal/store"
	"github.com/shikostudio/vitrine/internal/watch"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger. MCP mode owns stdout for the
	// protocol, so logs go to stderr there.
	logOut := os.Stdout
	if app.mcpMode {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("data_dir", cfg.Content.DataDir),
		slog.String("site_dir", cfg.Content.SiteDir),
		slog.String("journal_path", cfg.Journal.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure working directories exist.
	for _, dir := range []string{cfg.Content.DataDir, cfg.Content.StateDir, cfg.Content.SiteDir, filepath.Dir(cfg.Content.OutputPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	// Initialize document storage.
	fs, err := store.NewFS(cfg.Content.DataDir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// Initialize edit journal.
	db, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("init journal: %w", err)
	}
	defer db.Close()

	// Content service and page renderer.
	svc := content.NewService(fs, logger).WithRecorder(db)

	renderer, err := newRenderer(cfg, svc, logger)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	svc = svc.WithRegenerator(renderer)

	// Seed missing sections with defaults, then build the initial page.
	if err := svc.Seed(ctx); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	if err := renderer.Regenerate(ctx); err != nil {
		logger.Warn("initial page generation failed", slog.String("error", err.Error()))
	}

	if app.mcpMode {
		logger.Info("Starting MCP stdio server")
		return mcpserver.New(svc, fs, renderer).ServeStdio()
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)

	// Build API and static routers.
	apiRouter := api.NewRouter(svc, db, broker)
	static := api.NewStaticHandler(cfg.Content.SiteDir, cfg.Content.OutputPath)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	// Public pages and assets.
	r.Get("/", static.Index)
	r.Get("/admin", static.Admin)
	r.Get("/*", static.File)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start data-dir watcher so out-of-band edits reach the page.
	g.Go(func() error {
		if err := watch.Watch(gCtx, cfg.Content.DataDir, renderer, broker, logger); err != nil {
			logger.Warn("watcher failed", slog.String("error", err.Error()))
		}
		return nil
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

func newRenderer(cfg *Config, svc *content.Service, logger *slog.Logger) (*render.Renderer, error) {
	if cfg.Content.TemplatePath != "" {
		return render.NewFromFile(cfg.Content.TemplatePath, svc.Snapshot, cfg.Content.OutputPath, logger)
	}
	return render.New(svc.Snapshot, cfg.Content.OutputPath, logger)
}
