package catalog

import (
	"fmt"

	"barbershop-catalog/internal/entities"
)

// GalleryView is everything the gallery page renders for one state.
type GalleryView struct {
	State    State
	Items    []entities.GalleryItem
	Tags     []string
	Total    int
	Selected *entities.GalleryItem
}

// TeamView is everything the team page renders for one state.
type TeamView struct {
	State    State
	Members  []entities.TeamMember
	Roles    []entities.Role
	Total    int
	Selected *entities.TeamMember
}

// NewGalleryView filters items for s. The selected item is looked up in the full list,
// so an open dialog survives filters that hide its item.
func NewGalleryView(items []entities.GalleryItem, s State) (GalleryView, error) {
	view := GalleryView{
		State: s,
		Items: FilterGallery(items, s.Query, s.Active),
		Tags:  GalleryTags(items),
		Total: len(items),
	}
	if !s.DialogOpen {
		return view, nil
	}
	for i := range items {
		if items[i].ID == s.SelectedID {
			selected := items[i]
			view.Selected = &selected
			return view, nil
		}
	}
	return GalleryView{}, fmt.Errorf("%w: %s", entities.ErrGalleryItemNotFound, s.SelectedID)
}

// NewTeamView filters members for s; see NewGalleryView for selection rules.
func NewTeamView(members []entities.TeamMember, s State) (TeamView, error) {
	view := TeamView{
		State:   s,
		Members: FilterTeam(members, s.Query, s.Active),
		Roles:   TeamRoles(members),
		Total:   len(members),
	}
	if !s.DialogOpen {
		return view, nil
	}
	for i := range members {
		if members[i].ID == s.SelectedID {
			selected := members[i]
			view.Selected = &selected
			return view, nil
		}
	}
	return TeamView{}, fmt.Errorf("%w: %s", entities.ErrTeamMemberNotFound, s.SelectedID)
}
