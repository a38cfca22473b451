package postgres

import (
	"context"
	"errors"
	"fmt"

	"barbershop-catalog/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectGalleryQuery     = `SELECT id, src, alt, width, height, tags FROM gallery_items ORDER BY position`
	selectGalleryItemQuery = `SELECT id, src, alt, width, height, tags FROM gallery_items WHERE id=$1`
)

// GalleryItems returns gallery items in display order.
func (p *Postgres) GalleryItems(ctx context.Context) ([]entities.GalleryItem, error) {
	rows, err := p.db.Query(ctx, selectGalleryQuery)
	if err != nil {
		return nil, fmt.Errorf("get gallery: %w", err)
	}
	defer rows.Close()

	items := make([]entities.GalleryItem, 0)
	for rows.Next() {
		var it entities.GalleryItem
		if err := rows.Scan(&it.ID, &it.Src, &it.Alt, &it.Width, &it.Height, &it.Tags); err != nil {
			p.log.Errorw("failed to scan gallery item", "error", err)
			return nil, fmt.Errorf("scan gallery: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gallery: %w", err)
	}
	return items, nil
}

// GalleryItem fetches one gallery item by id.
func (p *Postgres) GalleryItem(ctx context.Context, id string) (*entities.GalleryItem, error) {
	var it entities.GalleryItem
	err := p.db.QueryRow(ctx, selectGalleryItemQuery, id).
		Scan(&it.ID, &it.Src, &it.Alt, &it.Width, &it.Height, &it.Tags)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", entities.ErrGalleryItemNotFound, id)
		}
		return nil, fmt.Errorf("get gallery item: %w", err)
	}
	return &it, nil
}
