package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/finpoint/finpoint/internal/config"
	"github.com/finpoint/finpoint/internal/storage/postgres"
	"github.com/finpoint/finpoint/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewFinanceFacade,
		newHTTPServer,
		newReminderProcessor,
		func(s *postgres.Storage) HealthChecker { return s },
	),
	fx.Invoke(registerLifecycle),
)

// HealthChecker gates startup on storage connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *FinanceFacade
	Config *config.Config
	Logger *slog.Logger
}

func newReminderProcessor(p workerParams) *worker.ReminderProcessor {
	return worker.NewReminderProcessor(
		p.Facade,
		p.Config.ReminderPollInterval,
		p.Config.DueSoonWindow,
		p.Config.MaxReminderBatch,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.ReminderProcessor
	Storage    HealthChecker
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Storage.HealthCheck(ctx); err != nil {
				return err
			}
			p.Logger.Info("starting finpoint", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("finpoint stopped")
			return nil
		},
	})
}
