package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/paperdesk/paperdesk/internal/app"
	"github.com/paperdesk/paperdesk/internal/drafts"
	"github.com/paperdesk/paperdesk/internal/editor"
	"github.com/paperdesk/paperdesk/internal/export"
	"github.com/paperdesk/paperdesk/internal/platform/cache"
	"github.com/paperdesk/paperdesk/internal/platform/db"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	repo, cleanup, err := newDraftRepository(ctx, cfg)
	if err != nil {
		logger.Error("init draft store backend", slog.Any("error", err))
		os.Exit(1)
	}
	defer cleanup()

	draftService := drafts.NewService(repo, logger)
	draftService.Init(ctx)

	session := editor.NewSession(logger, draftService)
	handler := editor.NewHandler(logger, session, draftService, export.NewRenderer())

	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		EditorHandler: handler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.String("drafts_backend", cfg.DraftsBackend))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

// newDraftRepository builds the configured whole-blob persistence backend.
func newDraftRepository(ctx context.Context, cfg *app.Config) (drafts.Repository, func(), error) {
	noop := func() {}
	switch cfg.DraftsBackend {
	case app.BackendRedis:
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		return drafts.NewRedisRepository(client, drafts.DefaultBlobKey), func() { _ = client.Close() }, nil
	case app.BackendPostgres:
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			return nil, noop, err
		}
		repo := drafts.NewPostgresRepository(pool, drafts.DefaultBlobKey)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return repo, pool.Close, nil
	default:
		return drafts.NewFileRepository(cfg.DraftsFile), noop, nil
	}
}
