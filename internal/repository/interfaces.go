// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"barbershop-catalog/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// GalleryInterface exposes gallery images in display order.
type GalleryInterface interface {
	GalleryItems(ctx context.Context) ([]entities.GalleryItem, error)
	GalleryItem(ctx context.Context, id string) (*entities.GalleryItem, error)
}

// TeamInterface exposes team members in display order.
type TeamInterface interface {
	TeamMembers(ctx context.Context) ([]entities.TeamMember, error)
	TeamMember(ctx context.Context, id string) (*entities.TeamMember, error)
}

// HomeInterface exposes landing page content.
type HomeInterface interface {
	Hero(ctx context.Context) (entities.Hero, error)
	Showcase(ctx context.Context) (entities.Showcase, error)
	PriceList(ctx context.Context) ([]entities.PriceItem, error)
	Services(ctx context.Context) ([]entities.Service, error)
	Highlights(ctx context.Context) ([]entities.Highlight, error)
}
