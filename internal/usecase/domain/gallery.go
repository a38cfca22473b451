package domain

import (
	"context"
	"fmt"

	"barbershop-catalog/internal/catalog"
	"barbershop-catalog/internal/entities"
)

// Gallery returns the gallery page for state.
func (u *Usecase) Gallery(ctx context.Context, state catalog.State) (catalog.GalleryView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	items, err := u.repo.GalleryItems(ctx)
	if err != nil {
		return catalog.GalleryView{}, err
	}
	return catalog.NewGalleryView(items, state.Normalize())
}

// GalleryAction applies action to state and returns the resulting gallery page.
func (u *Usecase) GalleryAction(ctx context.Context, state catalog.State, action catalog.Action) (catalog.GalleryView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	items, err := u.repo.GalleryItems(ctx)
	if err != nil {
		return catalog.GalleryView{}, err
	}

	state = state.Normalize()
	switch action.Type {
	case catalog.ActionSurprise:
		picked, err := catalog.RandomPick(items, u.index)
		if err != nil {
			u.log.Warnw("surprise pick failed", "error", err, "items", len(items))
			return catalog.GalleryView{}, err
		}
		state = state.OpenDialog(picked.ID)
	case catalog.ActionToggleRole:
		return catalog.GalleryView{}, fmt.Errorf("%w: gallery is filtered by tags", entities.ErrInvalidArgument)
	default:
		state, err = catalog.Reduce(state, action)
		if err != nil {
			return catalog.GalleryView{}, err
		}
	}

	u.log.Debugw("gallery action", "action", action.Type, "value", action.Value, "selected", state.SelectedID)
	return catalog.NewGalleryView(items, state)
}

// GalleryItem returns one gallery item by id.
func (u *Usecase) GalleryItem(ctx context.Context, id string) (*entities.GalleryItem, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: item id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GalleryItem(ctx, id)
}
