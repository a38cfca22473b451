package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"barbershop-catalog/config"
	"barbershop-catalog/internal/dataset"
	"barbershop-catalog/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	ds, err := dataset.Default()
	require.NoError(t, err)

	repo := New(ctx, testLogger(t), cfg, ds)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	items, err := repo.GalleryItems(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Gallery, items)

	members, err := repo.TeamMembers(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Team, members)

	it, err := repo.GalleryItem(ctx, "cut-3")
	require.NoError(t, err)
	require.Equal(t, []string{"Kids", "Gentle", "Family"}, it.Tags)

	_, err = repo.GalleryItem(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrGalleryItemNotFound)

	m, err := repo.TeamMember(ctx, "sana")
	require.NoError(t, err)
	require.Equal(t, "https://facebook.com/", m.Socials.Facebook)

	_, err = repo.TeamMember(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrTeamMemberNotFound)

	prices, err := repo.PriceList(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Pricing, prices)

	services, err := repo.Services(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Services, services)

	highlights, err := repo.Highlights(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Highlights, highlights)

	hero, err := repo.Hero(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Hero, hero)

	showcase, err := repo.Showcase(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Showcase, showcase)
}

func TestRepositorySeedReplacesCatalog(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	ds, err := dataset.Default()
	require.NoError(t, err)

	repo := New(ctx, testLogger(t), cfg, ds)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	smaller := &dataset.Dataset{
		Gallery: []entities.GalleryItem{{ID: "only", Alt: "Only one", Tags: nil}},
		Team:    []entities.TeamMember{{ID: "omar", Name: "Omar", Role: entities.RoleAssistant}},
	}
	require.NoError(t, repo.Seed(ctx, smaller))

	items, err := repo.GalleryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Empty(t, items[0].Tags)

	prices, err := repo.PriceList(ctx)
	require.NoError(t, err)
	require.Empty(t, prices)

	hero, err := repo.Hero(ctx)
	require.NoError(t, err)
	require.Empty(t, hero.Headline)
	require.Empty(t, hero.Services)

	showcase, err := repo.Showcase(ctx)
	require.NoError(t, err)
	require.Empty(t, showcase.Images)

	dup := &dataset.Dataset{Gallery: []entities.GalleryItem{{ID: "x"}, {ID: "x"}}}
	require.ErrorIs(t, repo.Seed(ctx, dup), entities.ErrDuplicateID)

	items, err = repo.GalleryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1, "failed seed must roll back")

	failing := New(ctx, testLogger(t), cfg, dup)
	require.ErrorIs(t, failing.OnStart(ctx), entities.ErrDuplicateID)
	require.Nil(t, failing.db, "pool must be closed when seeding fails")
	require.NoError(t, failing.OnStop(ctx))
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=barbershop_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:    config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Catalog: config.CatalogConfig{Backend: config.BackendPostgres, SeedOnStart: true},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "barbershop_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=barbershop_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
