// Package memory serves the catalog straight from a loaded dataset.
package memory

import (
	"context"
	"fmt"
	"slices"

	"barbershop-catalog/internal/dataset"
	"barbershop-catalog/internal/entities"

	"go.uber.org/zap"
)

// Memory is a read-only repository over a dataset snapshot.
type Memory struct {
	log *zap.SugaredLogger
	ds  dataset.Dataset
}

// New copies ds so later changes by the caller are not observed. A nil dataset is empty.
func New(log *zap.SugaredLogger, ds *dataset.Dataset) *Memory {
	m := &Memory{log: log.Named("repo.memory")}
	if ds == nil {
		return m
	}
	m.ds = dataset.Dataset{
		Gallery:    make([]entities.GalleryItem, 0, len(ds.Gallery)),
		Team:       make([]entities.TeamMember, 0, len(ds.Team)),
		Hero:       cloneHero(ds.Hero),
		Showcase:   cloneShowcase(ds.Showcase),
		Pricing:    slices.Clone(ds.Pricing),
		Services:   slices.Clone(ds.Services),
		Highlights: slices.Clone(ds.Highlights),
	}
	for _, it := range ds.Gallery {
		it.Tags = slices.Clone(it.Tags)
		m.ds.Gallery = append(m.ds.Gallery, it)
	}
	for _, tm := range ds.Team {
		tm.Tags = slices.Clone(tm.Tags)
		m.ds.Team = append(m.ds.Team, tm)
	}
	return m
}

// OnStart logs the size of the snapshot.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory catalog ready", "gallery", len(m.ds.Gallery), "team", len(m.ds.Team))
	return nil
}

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

// GalleryItems returns every gallery item.
func (m *Memory) GalleryItems(_ context.Context) ([]entities.GalleryItem, error) {
	out := make([]entities.GalleryItem, 0, len(m.ds.Gallery))
	for _, it := range m.ds.Gallery {
		it.Tags = slices.Clone(it.Tags)
		out = append(out, it)
	}
	return out, nil
}

// GalleryItem returns a gallery item by id.
func (m *Memory) GalleryItem(_ context.Context, id string) (*entities.GalleryItem, error) {
	for _, it := range m.ds.Gallery {
		if it.ID == id {
			it.Tags = slices.Clone(it.Tags)
			return &it, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entities.ErrGalleryItemNotFound, id)
}

// TeamMembers returns every team member.
func (m *Memory) TeamMembers(_ context.Context) ([]entities.TeamMember, error) {
	out := make([]entities.TeamMember, 0, len(m.ds.Team))
	for _, tm := range m.ds.Team {
		tm.Tags = slices.Clone(tm.Tags)
		out = append(out, tm)
	}
	return out, nil
}

// TeamMember returns a team member by id.
func (m *Memory) TeamMember(_ context.Context, id string) (*entities.TeamMember, error) {
	for _, tm := range m.ds.Team {
		if tm.ID == id {
			tm.Tags = slices.Clone(tm.Tags)
			return &tm, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entities.ErrTeamMemberNotFound, id)
}

// Hero returns the landing page hero.
func (m *Memory) Hero(_ context.Context) (entities.Hero, error) {
	return cloneHero(m.ds.Hero), nil
}

// Showcase returns the haircut showcase.
func (m *Memory) Showcase(_ context.Context) (entities.Showcase, error) {
	return cloneShowcase(m.ds.Showcase), nil
}

// PriceList returns the price list.
func (m *Memory) PriceList(_ context.Context) ([]entities.PriceItem, error) {
	return slices.Clone(m.ds.Pricing), nil
}

// Services returns the service cards.
func (m *Memory) Services(_ context.Context) ([]entities.Service, error) {
	return slices.Clone(m.ds.Services), nil
}

// Highlights returns the info section points.
func (m *Memory) Highlights(_ context.Context) ([]entities.Highlight, error) {
	return slices.Clone(m.ds.Highlights), nil
}

func cloneHero(h entities.Hero) entities.Hero {
	h.Locations = slices.Clone(h.Locations)
	h.Services = slices.Clone(h.Services)
	return h
}

func cloneShowcase(s entities.Showcase) entities.Showcase {
	s.Images = slices.Clone(s.Images)
	return s
}
