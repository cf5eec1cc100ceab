package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pixel-match/internal/config"
	"pixel-match/internal/config/configs"
)

// app carries what every subcommand needs. It is filled by the root
// command before any subcommand runs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// main is the entry point of pixel-match. It wires the subcommands, loads
// configuration from environment variables and cancels the command context
// on SIGINT or SIGTERM.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	run := newRunCommand(a)
	root := &cobra.Command{
		Use:   "pixel-match",
		Short: "Compute household match rates of tracking pixels and report them on their tickets",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("error", err))
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(os.Stdout, cfg.Log)
			return nil
		},
		RunE:          run.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(run, newServeCommand(a), newPurgeCommand(a), newMigrateCommand(a))
	return root
}

// newLogger initialises a structured logger based on configuration.
func newLogger(w io.Writer, cfg configs.Logger) *slog.Logger {
	var handler slog.Handler
	level := cfg.SlogLevel()
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}
