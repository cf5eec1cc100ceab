package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"pixel-match/db/migrations"
	"pixel-match/internal/db"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the result store schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			before, err := db.Migrate(a.cfg.Psql.Addr.String())
			if errors.Is(err, db.ErrDirty) {
				a.logger.Error("migration error, schema needs manual repair", slog.Uint64("version", uint64(before)))
				return err
			}
			if err != nil {
				a.logger.Error("migration error", slog.Any("error", err))
				return err
			}
			a.logger.Info("migrations applied successfully",
				slog.Uint64("from", uint64(before)), slog.Uint64("to", migrations.Version))
			return nil
		},
	}
}
