package main

import (
	"context"
	"fmt"

	"barbershop-catalog/config"
	"barbershop-catalog/internal/dataset"
	"barbershop-catalog/internal/repository/postgres"
	"barbershop-catalog/pkg/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply postgres migrations and optionally load the dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context(), seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", true, "replace stored catalog with the configured dataset")
	return cmd
}

func migrate(ctx context.Context, seed bool) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if cfg.Catalog.Backend != config.BackendPostgres {
		return fmt.Errorf("migrate needs catalog.backend=%s, got %q", config.BackendPostgres, cfg.Catalog.Backend)
	}
	cfg.Catalog.SeedOnStart = seed

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ds, err := dataset.Load(cfg.Catalog.DatasetPath)
	if err != nil {
		return err
	}

	repo := postgres.New(ctx, log, cfg, ds)
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("migrate failed", "error", err)
		_ = repo.OnStop(context.Background())
		return err
	}
	return repo.OnStop(ctx)
}
