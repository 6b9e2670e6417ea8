package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/vukan322/devdash/internal/http/handlers"
	dashboardh "github.com/vukan322/devdash/internal/http/handlers/dashboard"
	mw "github.com/vukan322/devdash/internal/http/middleware"
	"github.com/vukan322/devdash/internal/lib/config"
	"github.com/vukan322/devdash/internal/lib/sl"
	"github.com/vukan322/devdash/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	var useDemo bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			log := setupLogger(cfg.Env, os.Stdout)
			log.Info("starting devdash", slog.String("env", cfg.Env))

			ctrl, err := newController(cfg, log, useDemo)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log, newRouter(log, dashboardh.NewDashboardHandler(log, ctrl, cfg.HandlesWith("", ""))))
		},
	}
	cmd.Flags().BoolVar(&useDemo, "demo", false, "serve deterministic demo data instead of calling upstream APIs")
	return cmd
}

func newRouter(log *slog.Logger, dashboardHandler *dashboardh.DashboardHandler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mw.Metrics)

	router.Get("/health", handlers.Healthcheck())
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.Get)
		r.Get("/dashboard.svg", dashboardHandler.GetSVG)
	})

	return router
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("failed to start http server", sl.Err(err))
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
		return err
	}

	log.Info("http server stopped")
	return nil
}
