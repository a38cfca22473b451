// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"barbershop-catalog/config"
	"barbershop-catalog/internal/dataset"
	"barbershop-catalog/internal/repository/memory"
	"barbershop-catalog/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	GalleryInterface
	TeamInterface
	HomeInterface
}

// New constructs repository backend by name. The dataset feeds the memory backend
// and seeds postgres when catalog.seed_on_start is set.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config, ds *dataset.Dataset) (Repository, error) {
	switch name {
	case config.BackendMemory:
		return memory.New(log, ds), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg, ds), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
