package domain

import (
	"context"
	"fmt"

	"barbershop-catalog/internal/catalog"
	"barbershop-catalog/internal/entities"
)

// Team returns the team page for state. Active entries must be known roles.
func (u *Usecase) Team(ctx context.Context, state catalog.State) (catalog.TeamView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	state = state.Normalize()
	if err := validateRoles(state.Active); err != nil {
		return catalog.TeamView{}, err
	}

	members, err := u.repo.TeamMembers(ctx)
	if err != nil {
		return catalog.TeamView{}, err
	}
	return catalog.NewTeamView(members, state)
}

// TeamAction applies action to state and returns the resulting team page.
func (u *Usecase) TeamAction(ctx context.Context, state catalog.State, action catalog.Action) (catalog.TeamView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	state = state.Normalize()
	if err := validateRoles(state.Active); err != nil {
		return catalog.TeamView{}, err
	}

	switch action.Type {
	case catalog.ActionSurprise:
		return catalog.TeamView{}, fmt.Errorf("%w: surprise is only offered by the gallery", entities.ErrInvalidArgument)
	case catalog.ActionToggleTag, catalog.ActionToggleRole:
		if !entities.Role(action.Value).Valid() {
			return catalog.TeamView{}, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, action.Value)
		}
	}

	state, err := catalog.Reduce(state, action)
	if err != nil {
		return catalog.TeamView{}, err
	}

	members, err := u.repo.TeamMembers(ctx)
	if err != nil {
		return catalog.TeamView{}, err
	}

	u.log.Debugw("team action", "action", action.Type, "value", action.Value, "selected", state.SelectedID)
	return catalog.NewTeamView(members, state)
}

// TeamMember returns one team member by id.
func (u *Usecase) TeamMember(ctx context.Context, id string) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		u.log.Errorw("failed to get team member: missing id")
		return nil, fmt.Errorf("%w: member id is required", entities.ErrInvalidArgument)
	}
	return u.repo.TeamMember(ctx, id)
}

func validateRoles(active []string) error {
	for _, r := range active {
		if !entities.Role(r).Valid() {
			return fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, r)
		}
	}
	return nil
}
