package usecase

import (
	"context"

	"barbershop-catalog/internal/catalog"
	"barbershop-catalog/internal/entities"
)

// HomeUsecaseInterface abstracts landing page operations for delivery layer.
type HomeUsecaseInterface interface {
	Home(ctx context.Context) (entities.Home, error)
}

// GalleryUsecaseInterface abstracts gallery page operations.
type GalleryUsecaseInterface interface {
	Gallery(ctx context.Context, state catalog.State) (catalog.GalleryView, error)
	GalleryAction(ctx context.Context, state catalog.State, action catalog.Action) (catalog.GalleryView, error)
	GalleryItem(ctx context.Context, id string) (*entities.GalleryItem, error)
}

// TeamUsecaseInterface abstracts team page operations.
type TeamUsecaseInterface interface {
	Team(ctx context.Context, state catalog.State) (catalog.TeamView, error)
	TeamAction(ctx context.Context, state catalog.State, action catalog.Action) (catalog.TeamView, error)
	TeamMember(ctx context.Context, id string) (*entities.TeamMember, error)
}
