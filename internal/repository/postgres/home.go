package postgres

import (
	"context"
	"fmt"

	"barbershop-catalog/internal/entities"
)

const (
	selectPricesQuery     = `SELECT id, service, price, description, duration, popular FROM price_items ORDER BY position`
	selectServicesQuery   = `SELECT id, title, icon FROM services ORDER BY position`
	selectHighlightsQuery = `SELECT title, description FROM highlights ORDER BY position`
)

// PriceList returns the price list in display order.
func (p *Postgres) PriceList(ctx context.Context) ([]entities.PriceItem, error) {
	rows, err := p.db.Query(ctx, selectPricesQuery)
	if err != nil {
		return nil, fmt.Errorf("get prices: %w", err)
	}
	defer rows.Close()

	prices := make([]entities.PriceItem, 0)
	for rows.Next() {
		var pr entities.PriceItem
		if err := rows.Scan(&pr.ID, &pr.Service, &pr.Price, &pr.Description, &pr.Duration, &pr.Popular); err != nil {
			return nil, fmt.Errorf("scan prices: %w", err)
		}
		prices = append(prices, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prices: %w", err)
	}
	return prices, nil
}

// Services returns service cards in display order.
func (p *Postgres) Services(ctx context.Context) ([]entities.Service, error) {
	rows, err := p.db.Query(ctx, selectServicesQuery)
	if err != nil {
		return nil, fmt.Errorf("get services: %w", err)
	}
	defer rows.Close()

	services := make([]entities.Service, 0)
	for rows.Next() {
		var s entities.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Icon); err != nil {
			return nil, fmt.Errorf("scan services: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return services, nil
}

// Highlights returns info section points in display order.
func (p *Postgres) Highlights(ctx context.Context) ([]entities.Highlight, error) {
	rows, err := p.db.Query(ctx, selectHighlightsQuery)
	if err != nil {
		return nil, fmt.Errorf("get highlights: %w", err)
	}
	defer rows.Close()

	highlights := make([]entities.Highlight, 0)
	for rows.Next() {
		var h entities.Highlight
		if err := rows.Scan(&h.Title, &h.Description); err != nil {
			return nil, fmt.Errorf("scan highlights: %w", err)
		}
		highlights = append(highlights, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate highlights: %w", err)
	}
	return highlights, nil
}
