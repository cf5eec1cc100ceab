package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"pixel-match/internal/adapter/logfile"
	"pixel-match/internal/metrics"
)

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the match job once, logging to a per-run file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Validate(); err != nil {
				a.logger.Error("invalid configuration", slog.Any("error", err))
				return err
			}

			started := time.Now()
			f, err := logfile.Open(a.cfg.Log.Dir, a.cfg.AppName, started)
			if errors.Is(err, logfile.ErrAlreadyRan) {
				a.logger.Warn("run skipped", slog.Any("error", err))
				return nil
			}
			if err != nil {
				a.logger.Error("log file error", slog.Any("error", err))
				return err
			}
			defer f.Close()

			var w io.Writer = f
			if a.cfg.Log.Console {
				w = io.MultiWriter(f, os.Stdout)
			}
			logger := newLogger(w, a.cfg.Log).With(slog.String("app", a.cfg.AppName))

			reg := prometheus.NewRegistry()
			m := metrics.New(reg)
			c, err := wire(cmd.Context(), a.cfg, logger, m)
			if err != nil {
				logger.Error("startup error", slog.Any("error", err))
				return err
			}
			defer c.close()

			report, runErr := c.useCase.Run(cmd.Context())
			if runErr != nil {
				logger.Error("match run failed", slog.Any("error", runErr))
			} else {
				logger.Info("match run report", slog.Any("report", report))
			}

			if url := a.cfg.Metrics.PushgatewayURL; url != "" {
				if err = metrics.Push(url, a.cfg.AppName, reg); err != nil {
					logger.Error("metrics push failed", slog.Any("error", err))
				}
			}
			if _, err = logfile.Purge(a.cfg.Log.Dir, a.cfg.Log.RetentionDays, time.Now(), logger); err != nil {
				logger.Error("log purge failed", slog.Any("error", err))
			}
			return runErr
		},
	}
}
