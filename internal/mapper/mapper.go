// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"barbershop-catalog/internal/catalog"
	"barbershop-catalog/internal/entities"
	"barbershop-catalog/internal/transport/http/dto"
)

// ToDTOGalleryItem maps entities.GalleryItem to transport model.
func ToDTOGalleryItem(it entities.GalleryItem) dto.GalleryItem {
	return dto.GalleryItem{
		ID:     it.ID,
		Src:    it.Src,
		Alt:    it.Alt,
		Width:  it.Width,
		Height: it.Height,
		Tags:   nonNil(it.Tags),
	}
}

// ToDTOTeamMember maps entities.TeamMember to transport model.
func ToDTOTeamMember(m entities.TeamMember) dto.TeamMember {
	res := dto.TeamMember{
		ID:    m.ID,
		Name:  m.Name,
		Role:  string(m.Role),
		Photo: m.Photo,
		Bio:   m.Bio,
		Tags:  nonNil(m.Tags),
	}
	if m.Socials != (entities.Socials{}) {
		res.Socials = &dto.Socials{
			Instagram: m.Socials.Instagram,
			Facebook:  m.Socials.Facebook,
			LinkedIn:  m.Socials.LinkedIn,
			Email:     m.Socials.Email,
			Phone:     m.Socials.Phone,
		}
	}
	return res
}

// ToDTOState maps catalog.State to transport model.
func ToDTOState(s catalog.State) dto.FilterState {
	visible := s.FiltersVisible
	return dto.FilterState{
		Query:          s.Query,
		Active:         nonNil(s.Active),
		SelectedID:     s.SelectedID,
		DialogOpen:     s.DialogOpen,
		FiltersVisible: &visible,
	}
}

// FromDTOState builds catalog.State from transport model; nil yields the initial state.
func FromDTOState(s *dto.FilterState) catalog.State {
	if s == nil {
		return catalog.NewState()
	}
	visible := true
	if s.FiltersVisible != nil {
		visible = *s.FiltersVisible
	}
	return catalog.State{
		Query:          s.Query,
		Active:         append([]string(nil), s.Active...),
		SelectedID:     s.SelectedID,
		DialogOpen:     s.DialogOpen,
		FiltersVisible: visible,
	}
}

// FromDTOAction builds catalog.Action from transport model.
func FromDTOAction(a dto.Action) catalog.Action {
	return catalog.Action{Type: catalog.ActionType(a.Type), Value: a.Value}
}

// ToDTOGalleryView maps a gallery page to transport model.
func ToDTOGalleryView(v catalog.GalleryView) dto.GalleryView {
	items := make([]dto.GalleryItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, ToDTOGalleryItem(it))
	}

	res := dto.GalleryView{
		State:   ToDTOState(v.State),
		Items:   items,
		Tags:    nonNil(v.Tags),
		Total:   v.Total,
		Visible: len(items),
	}
	if v.Selected != nil {
		sel := ToDTOGalleryItem(*v.Selected)
		res.Selected = &sel
	}
	return res
}

// ToDTOTeamView maps a team page to transport model.
func ToDTOTeamView(v catalog.TeamView) dto.TeamView {
	members := make([]dto.TeamMember, 0, len(v.Members))
	for _, m := range v.Members {
		members = append(members, ToDTOTeamMember(m))
	}

	roles := make([]string, 0, len(v.Roles))
	for _, r := range v.Roles {
		roles = append(roles, string(r))
	}

	res := dto.TeamView{
		State:   ToDTOState(v.State),
		Members: members,
		Roles:   roles,
		Total:   v.Total,
		Visible: len(members),
	}
	if v.Selected != nil {
		sel := ToDTOTeamMember(*v.Selected)
		res.Selected = &sel
	}
	return res
}

// ToDTOHome maps landing page content to transport model.
func ToDTOHome(h entities.Home) dto.Home {
	prices := make([]dto.PriceItem, 0, len(h.Pricing))
	for _, p := range h.Pricing {
		prices = append(prices, dto.PriceItem{
			ID:          p.ID,
			Service:     p.Service,
			Price:       p.Price,
			Description: p.Description,
			Duration:    p.Duration,
			Popular:     p.Popular,
		})
	}

	services := make([]dto.Service, 0, len(h.Services))
	for _, s := range h.Services {
		services = append(services, dto.Service{ID: s.ID, Title: s.Title, Icon: s.Icon})
	}

	highlights := make([]dto.Highlight, 0, len(h.Highlights))
	for _, hl := range h.Highlights {
		highlights = append(highlights, dto.Highlight{Title: hl.Title, Description: hl.Description})
	}

	return dto.Home{
		Hero:       toDTOHero(h.Hero),
		Showcase:   toDTOShowcase(h.Showcase),
		Pricing:    prices,
		Services:   services,
		Highlights: highlights,
	}
}

func toDTOHero(h entities.Hero) dto.Hero {
	locations := make([]dto.Location, 0, len(h.Locations))
	for _, l := range h.Locations {
		locations = append(locations, dto.Location{Text: l.Text, Icon: l.Icon})
	}
	services := make([]dto.HeroService, 0, len(h.Services))
	for _, s := range h.Services {
		services = append(services, dto.HeroService{ID: s.ID, Title: s.Title, Image: s.Image})
	}
	return dto.Hero{
		Greeting:  h.Greeting,
		Headline:  h.Headline,
		Image:     h.Image,
		Locations: locations,
		Services:  services,
	}
}

func toDTOShowcase(s entities.Showcase) dto.Showcase {
	images := make([]dto.ShowcaseImage, 0, len(s.Images))
	for _, img := range s.Images {
		images = append(images, dto.ShowcaseImage{ID: img.ID, Src: img.Src, Alt: img.Alt})
	}
	return dto.Showcase{Headline: s.Headline, Images: images}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
