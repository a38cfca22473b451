package memory

import (
	"context"
	"testing"

	"barbershop-catalog/internal/dataset"
	"barbershop-catalog/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) (*Memory, *dataset.Dataset) {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)
	return New(zap.NewNop().Sugar(), ds), ds
}

func TestMemory_ListsInDatasetOrder(t *testing.T) {
	ctx := context.Background()
	repo, ds := newTestRepo(t)
	require.NoError(t, repo.OnStart(ctx))

	items, err := repo.GalleryItems(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Gallery, items)

	members, err := repo.TeamMembers(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Team, members)

	prices, err := repo.PriceList(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Pricing, prices)

	services, err := repo.Services(ctx)
	require.NoError(t, err)
	require.Len(t, services, 4)

	highlights, err := repo.Highlights(ctx)
	require.NoError(t, err)
	require.Len(t, highlights, 5)

	hero, err := repo.Hero(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Hero, hero)

	showcase, err := repo.Showcase(ctx)
	require.NoError(t, err)
	require.Equal(t, ds.Showcase, showcase)
}

func TestMemory_Lookup(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	it, err := repo.GalleryItem(ctx, "cut-2")
	require.NoError(t, err)
	require.Equal(t, "Beard trim detail", it.Alt)

	_, err = repo.GalleryItem(ctx, "nope")
	require.ErrorIs(t, err, entities.ErrGalleryItemNotFound)

	m, err := repo.TeamMember(ctx, "bilal")
	require.NoError(t, err)
	require.Equal(t, entities.RoleBarber, m.Role)

	_, err = repo.TeamMember(ctx, "nope")
	require.ErrorIs(t, err, entities.ErrTeamMemberNotFound)
}

func TestMemory_IsolatedFromCallers(t *testing.T) {
	ctx := context.Background()
	repo, ds := newTestRepo(t)

	ds.Gallery[0].Tags[0] = "changed"
	items, err := repo.GalleryItems(ctx)
	require.NoError(t, err)
	require.Equal(t, "Haircut", items[0].Tags[0])

	items[0].Tags[0] = "changed again"
	again, err := repo.GalleryItems(ctx)
	require.NoError(t, err)
	require.Equal(t, "Haircut", again[0].Tags[0])

	ds.Hero.Services[0].Title = "changed"
	hero, err := repo.Hero(ctx)
	require.NoError(t, err)
	require.Equal(t, "Regular Haircut", hero.Services[0].Title)

	hero.Locations[0].Text = "changed"
	hero, err = repo.Hero(ctx)
	require.NoError(t, err)
	require.Equal(t, "254 W 27ST ST, NEW YORK, NY 10011", hero.Locations[0].Text)
}

func TestMemory_NilDataset(t *testing.T) {
	repo := New(zap.NewNop().Sugar(), nil)

	items, err := repo.GalleryItems(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}
