package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"pixel-match/internal/adapter/logfile"
)

func newPurgeCommand(a *app) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove run log files older than the retention period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("days") {
				days = a.cfg.Log.RetentionDays
			}
			removed, err := logfile.Purge(a.cfg.Log.Dir, days, time.Now(), a.logger)
			if err != nil {
				a.logger.Error("log purge failed", slog.Any("error", err))
				return err
			}
			a.logger.Info("log purge finished", slog.String("dir", a.cfg.Log.Dir), slog.Int("removed", removed))
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "retention in days, overrides LOG_RETENTION_DAYS")
	return cmd
}
