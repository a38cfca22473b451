// Package domain contains application services orchestrating the catalog pages.
package domain

import (
	"context"

	"barbershop-catalog/internal/entities"
)

// Home returns hero, showcase, pricing, services and highlights for the landing page.
func (u *Usecase) Home(ctx context.Context) (entities.Home, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	hero, err := u.repo.Hero(ctx)
	if err != nil {
		return entities.Home{}, err
	}
	showcase, err := u.repo.Showcase(ctx)
	if err != nil {
		return entities.Home{}, err
	}
	prices, err := u.repo.PriceList(ctx)
	if err != nil {
		return entities.Home{}, err
	}
	services, err := u.repo.Services(ctx)
	if err != nil {
		return entities.Home{}, err
	}
	highlights, err := u.repo.Highlights(ctx)
	if err != nil {
		return entities.Home{}, err
	}
	return entities.Home{
		Hero:       hero,
		Showcase:   showcase,
		Pricing:    prices,
		Services:   services,
		Highlights: highlights,
	}, nil
}
