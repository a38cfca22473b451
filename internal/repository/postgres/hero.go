package postgres

import (
	"context"
	"errors"
	"fmt"

	"barbershop-catalog/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectHeroQuery           = `SELECT greeting, headline, image FROM hero WHERE id = 1`
	selectHeroLocationsQuery  = `SELECT text, icon FROM hero_locations ORDER BY position`
	selectHeroServicesQuery   = `SELECT id, title, image FROM hero_services ORDER BY position`
	selectShowcaseQuery       = `SELECT headline FROM showcase WHERE id = 1`
	selectShowcaseImagesQuery = `SELECT id, src, alt FROM showcase_images ORDER BY position`
)

// Hero returns the landing page hero. An unseeded database yields an empty hero.
func (p *Postgres) Hero(ctx context.Context) (entities.Hero, error) {
	var h entities.Hero
	err := p.db.QueryRow(ctx, selectHeroQuery).Scan(&h.Greeting, &h.Headline, &h.Image)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return entities.Hero{}, fmt.Errorf("get hero: %w", err)
	}

	rows, err := p.db.Query(ctx, selectHeroLocationsQuery)
	if err != nil {
		return entities.Hero{}, fmt.Errorf("get hero locations: %w", err)
	}
	h.Locations, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Location, error) {
		var l entities.Location
		err := row.Scan(&l.Text, &l.Icon)
		return l, err
	})
	if err != nil {
		return entities.Hero{}, fmt.Errorf("scan hero locations: %w", err)
	}

	rows, err = p.db.Query(ctx, selectHeroServicesQuery)
	if err != nil {
		return entities.Hero{}, fmt.Errorf("get hero services: %w", err)
	}
	h.Services, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.HeroService, error) {
		var s entities.HeroService
		err := row.Scan(&s.ID, &s.Title, &s.Image)
		return s, err
	})
	if err != nil {
		return entities.Hero{}, fmt.Errorf("scan hero services: %w", err)
	}
	return h, nil
}

// Showcase returns the haircut showcase in display order.
func (p *Postgres) Showcase(ctx context.Context) (entities.Showcase, error) {
	var sc entities.Showcase
	err := p.db.QueryRow(ctx, selectShowcaseQuery).Scan(&sc.Headline)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return entities.Showcase{}, fmt.Errorf("get showcase: %w", err)
	}

	rows, err := p.db.Query(ctx, selectShowcaseImagesQuery)
	if err != nil {
		return entities.Showcase{}, fmt.Errorf("get showcase images: %w", err)
	}
	sc.Images, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.ShowcaseImage, error) {
		var img entities.ShowcaseImage
		err := row.Scan(&img.ID, &img.Src, &img.Alt)
		return img, err
	})
	if err != nil {
		return entities.Showcase{}, fmt.Errorf("scan showcase images: %w", err)
	}
	return sc, nil
}
