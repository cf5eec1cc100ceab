package main

import (
	"context"
	"fmt"
	"log/slog"

	"pixel-match/internal/adapter/archive"
	jiraadapter "pixel-match/internal/adapter/jira"
	"pixel-match/internal/adapter/mail"
	"pixel-match/internal/adapter/pixelapi"
	"pixel-match/internal/adapter/postgres"
	"pixel-match/internal/adapter/qubole"
	"pixel-match/internal/adapter/usecase"
	"pixel-match/internal/config"
	"pixel-match/internal/core/domain"
	"pixel-match/internal/core/port"
	"pixel-match/internal/db"
	"pixel-match/internal/metrics"
)

// components are the wired match job and the resources it holds.
type components struct {
	useCase *usecase.MatchUseCase
	// results is nil unless the relational result store is enabled.
	results port.ResultRepository
	close   func()
}

func wire(ctx context.Context, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) (*components, error) {
	c := &components{close: func() {}}

	tickets, err := jiraadapter.New(cfg.Jira, logger)
	if err != nil {
		return nil, err
	}
	notifier := mail.New(cfg.Mail)

	archives := []port.RunArchive{archive.NewFileArchive(cfg.Archive.Dir, cfg.AppName)}
	if cfg.Archive.MinioEndpoint != "" {
		objects, err := archive.NewObjectArchive(cfg.Archive, cfg.AppName)
		if err != nil {
			return nil, err
		}
		archives = append(archives, objects)
	}

	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if _, err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate result store: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("connect result store: %w", err)
		}
		repo := postgres.NewResultRepository(pool)
		archives = append(archives, repo)
		c.results = repo
		c.close = pool.Close
	}

	addressing := domain.Addressing{TeamAlias: cfg.Jira.TeamAlias, AnalystAliases: cfg.Jira.AnalystAliases}
	c.useCase = usecase.NewMatchUseCase(usecase.MatchDeps{
		Discovery: pixelapi.New(cfg.Discovery, logger),
		Notifier:  notifier,
		Archives:  archives,
		Resolver:  usecase.NewResolver(tickets, notifier, cfg.Jira.Type, cfg.Jira.Status),
		Reporter:  usecase.NewReporter(tickets, addressing, cfg.Jira.MatchLabel),
		Runner: usecase.NewQueryRunner(qubole.New(cfg.Engine, logger), usecase.QueryRunnerOptions{
			Attempts:     cfg.Engine.Attempts,
			PollInterval: cfg.Engine.PollInterval,
			Metrics:      m,
		}),
		Coordinator: usecase.NewCoordinator(cfg.Workers, logger),
		Queries:     qubole.MatchQuery,
		Logger:      logger,
		Metrics:     m,
	}, cfg.AppName, cfg.Engine.ClusterLabel)
	return c, nil
}
