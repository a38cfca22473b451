package postgres

import (
	"context"
	"errors"
	"fmt"

	"barbershop-catalog/internal/dataset"
	"barbershop-catalog/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation = "23505"

	truncateCatalogQuery = `
TRUNCATE gallery_items, team_members, price_items, services, highlights,
	hero, hero_locations, hero_services, showcase, showcase_images`
	insertGalleryQuery = `
INSERT INTO gallery_items(id, position, src, alt, width, height, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	insertMemberQuery = `
INSERT INTO team_members(id, position, name, role, photo, bio, tags, instagram, facebook, linkedin, email, phone)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	insertPriceQuery = `
INSERT INTO price_items(id, position, service, price, description, duration, popular)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	insertServiceQuery   = `INSERT INTO services(id, position, title, icon) VALUES ($1, $2, $3, $4)`
	insertHighlightQuery = `INSERT INTO highlights(position, title, description) VALUES ($1, $2, $3)`

	insertHeroQuery          = `INSERT INTO hero(greeting, headline, image) VALUES ($1, $2, $3)`
	insertHeroLocationQuery  = `INSERT INTO hero_locations(position, text, icon) VALUES ($1, $2, $3)`
	insertHeroServiceQuery   = `INSERT INTO hero_services(id, position, title, image) VALUES ($1, $2, $3, $4)`
	insertShowcaseQuery      = `INSERT INTO showcase(headline) VALUES ($1)`
	insertShowcaseImageQuery = `INSERT INTO showcase_images(id, position, src, alt) VALUES ($1, $2, $3, $4)`
)

// Seed replaces the stored catalog with ds in a single transaction.
func (p *Postgres) Seed(ctx context.Context, ds *dataset.Dataset) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, truncateCatalogQuery); err != nil {
		return fmt.Errorf("truncate catalog: %w", err)
	}

	for i, it := range ds.Gallery {
		if _, err := tx.Exec(ctx, insertGalleryQuery, it.ID, i, it.Src, it.Alt, it.Width, it.Height, nonNil(it.Tags)); err != nil {
			return seedError("gallery item", it.ID, err)
		}
	}

	for i, m := range ds.Team {
		s := m.Socials
		if _, err := tx.Exec(ctx, insertMemberQuery,
			m.ID, i, m.Name, string(m.Role), m.Photo, m.Bio, nonNil(m.Tags),
			s.Instagram, s.Facebook, s.LinkedIn, s.Email, s.Phone,
		); err != nil {
			return seedError("team member", m.ID, err)
		}
	}

	if err := seedHero(ctx, tx, ds.Hero); err != nil {
		return err
	}
	if err := seedShowcase(ctx, tx, ds.Showcase); err != nil {
		return err
	}

	for i, pr := range ds.Pricing {
		if _, err := tx.Exec(ctx, insertPriceQuery, pr.ID, i, pr.Service, pr.Price, pr.Description, pr.Duration, pr.Popular); err != nil {
			return seedError("price item", pr.ID, err)
		}
	}

	for i, s := range ds.Services {
		if _, err := tx.Exec(ctx, insertServiceQuery, s.ID, i, s.Title, s.Icon); err != nil {
			return seedError("service", s.ID, err)
		}
	}

	for i, h := range ds.Highlights {
		if _, err := tx.Exec(ctx, insertHighlightQuery, i, h.Title, h.Description); err != nil {
			return fmt.Errorf("insert highlight %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("catalog seeded", "gallery", len(ds.Gallery), "team", len(ds.Team), "pricing", len(ds.Pricing))
	return nil
}

func seedHero(ctx context.Context, tx pgx.Tx, h entities.Hero) error {
	if _, err := tx.Exec(ctx, insertHeroQuery, h.Greeting, h.Headline, h.Image); err != nil {
		return fmt.Errorf("insert hero: %w", err)
	}
	for i, l := range h.Locations {
		if _, err := tx.Exec(ctx, insertHeroLocationQuery, i, l.Text, l.Icon); err != nil {
			return fmt.Errorf("insert hero location %d: %w", i, err)
		}
	}
	for i, s := range h.Services {
		if _, err := tx.Exec(ctx, insertHeroServiceQuery, s.ID, i, s.Title, s.Image); err != nil {
			return seedError("hero service", s.ID, err)
		}
	}
	return nil
}

func seedShowcase(ctx context.Context, tx pgx.Tx, sc entities.Showcase) error {
	if _, err := tx.Exec(ctx, insertShowcaseQuery, sc.Headline); err != nil {
		return fmt.Errorf("insert showcase: %w", err)
	}
	for i, img := range sc.Images {
		if _, err := tx.Exec(ctx, insertShowcaseImageQuery, img.ID, i, img.Src, img.Alt); err != nil {
			return seedError("showcase image", img.ID, err)
		}
	}
	return nil
}

func seedError(kind, id string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s %q", entities.ErrDuplicateID, kind, id)
	}
	return fmt.Errorf("insert %s %q: %w", kind, id, err)
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
