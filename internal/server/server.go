package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/metrics"
	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/service"
)

const shutdownTimeout = 10 * time.Second

// NewRouter wires the HTTP shell around the generator. Background work started
// by the router stops when ctx is done.
func NewRouter(ctx context.Context, cfg config.Config) http.Handler {
	genService := service.NewGeneratorService(cfg.DefaultLength, cfg.MaxLength)
	genHandler := handler.NewGeneratorHandler(genService)

	sessionService := service.NewSessionService(service.SessionSettings{
		Secret:        cfg.SessionSecret,
		Expiry:        cfg.SessionExpiry,
		MinLength:     cfg.WidgetMinLength,
		MaxLength:     cfg.WidgetMaxLength,
		DefaultLength: cfg.DefaultLength,
	})
	sessionHandler := handler.NewSessionHandler(sessionService)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))

		r.Post("/generate", genHandler.HandleGenerate)
		r.Get("/alphabet", genHandler.HandleAlphabet)
		r.Post("/session", sessionHandler.HandleStart)

		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(cfg.SessionSecret))
			r.Post("/session/events", sessionHandler.HandleEvent)
		})
	})

	return r
}

// Run serves the HTTP shell until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(ctx, cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}
