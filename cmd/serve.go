package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	httpadapter "pixel-match/internal/adapter/http"
	"pixel-match/internal/core/domain"
	"pixel-match/internal/metrics"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the results API and run the match job on a cron schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	logger := a.logger
	if err := a.cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	c, err := wire(ctx, a.cfg, logger, m)
	if err != nil {
		logger.Error("startup error", slog.Any("error", err))
		return err
	}
	defer c.close()

	handler := httpadapter.NewHandler(ctx, c.useCase, c.results,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), logger)

	sched := cron.New()
	if spec := a.cfg.Schedule.Spec; spec != "" {
		_, err = sched.AddFunc(spec, func() {
			report, err := c.useCase.Run(ctx)
			switch {
			case errors.Is(err, domain.ErrRunInProgress):
				logger.Warn("scheduled run skipped", slog.Any("error", err))
			case err != nil:
				logger.Error("scheduled run failed", slog.Any("error", err))
			default:
				logger.Info("scheduled run finished", slog.Any("report", report))
			}
		})
		if err != nil {
			return fmt.Errorf("schedule %q: %w", spec, err)
		}
		sched.Start()
		logger.Info("match runs scheduled", slog.String("spec", spec))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	<-sched.Stop().Done()
	handler.Wait()
	return err
}
