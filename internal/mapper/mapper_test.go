package mapper

import (
	"encoding/json"
	"testing"

	"barbershop-catalog/internal/catalog"
	"barbershop-catalog/internal/entities"
	"barbershop-catalog/internal/transport/http/dto"

	"github.com/stretchr/testify/require"
)

func TestToDTOTeamMember_OmitsEmptySocials(t *testing.T) {
	m := ToDTOTeamMember(entities.TeamMember{ID: "bilal", Name: "Bilal", Role: entities.RoleBarber})
	require.Nil(t, m.Socials)
	require.NotNil(t, m.Tags)

	m = ToDTOTeamMember(entities.TeamMember{ID: "adil", Socials: entities.Socials{Instagram: "https://instagram.com/"}})
	require.NotNil(t, m.Socials)
	require.Equal(t, "https://instagram.com/", m.Socials.Instagram)
	require.Empty(t, m.Socials.Phone)
}

func TestFromDTOState_NilIsInitialState(t *testing.T) {
	require.Equal(t, catalog.NewState(), FromDTOState(nil))

	s := FromDTOState(&dto.FilterState{Query: "fade", Active: []string{"Beard"}, SelectedID: "cut-2", DialogOpen: true})
	require.Equal(t, "fade", s.Query)
	require.Equal(t, []string{"Beard"}, s.Active)
	require.True(t, s.DialogOpen)
	require.True(t, s.FiltersVisible)
}

func TestFromDTOState_FiltersVisible(t *testing.T) {
	var posted dto.FilterState
	require.NoError(t, json.Unmarshal([]byte(`{"query":"kids"}`), &posted))
	require.True(t, FromDTOState(&posted).FiltersVisible)

	require.NoError(t, json.Unmarshal([]byte(`{"query":"kids","filters_visible":false}`), &posted))
	require.False(t, FromDTOState(&posted).FiltersVisible)

	hidden := catalog.NewState().ToggleFilters()
	require.Equal(t, hidden, FromDTOState(ptr(ToDTOState(hidden))))
}

func TestToDTOHome(t *testing.T) {
	home := ToDTOHome(entities.Home{
		Hero: entities.Hero{
			Headline:  "Barbershop in Manhattan NEW YORK",
			Locations: []entities.Location{{Text: "(212) 123-4567"}},
			Services:  []entities.HeroService{{ID: "royal-shave", Title: "Royal Shave"}},
		},
		Showcase: entities.Showcase{Images: []entities.ShowcaseImage{{ID: "hairstyle-1", Alt: "Hairstyle 1"}}},
	})

	require.Equal(t, "Barbershop in Manhattan NEW YORK", home.Hero.Headline)
	require.Equal(t, []dto.Location{{Text: "(212) 123-4567"}}, home.Hero.Locations)
	require.Equal(t, "Royal Shave", home.Hero.Services[0].Title)
	require.Equal(t, "Hairstyle 1", home.Showcase.Images[0].Alt)
	require.NotNil(t, home.Pricing)
	require.NotNil(t, home.Highlights)

	empty := ToDTOHome(entities.Home{})
	require.NotNil(t, empty.Hero.Locations)
	require.NotNil(t, empty.Showcase.Images)
}

func ptr[T any](v T) *T { return &v }

func TestToDTOGalleryView(t *testing.T) {
	sel := entities.GalleryItem{ID: "cut-2", Alt: "Beard trim detail"}
	v := ToDTOGalleryView(catalog.GalleryView{
		State:    catalog.NewState().OpenDialog("cut-2"),
		Items:    []entities.GalleryItem{sel},
		Total:    6,
		Selected: &sel,
	})

	require.Equal(t, 1, v.Visible)
	require.Equal(t, 6, v.Total)
	require.NotNil(t, v.State.Active)
	require.NotNil(t, v.Tags)
	require.Equal(t, "cut-2", v.Selected.ID)
}
