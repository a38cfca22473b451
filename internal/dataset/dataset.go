// Package dataset loads the read-only catalog the site is built from.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"barbershop-catalog/internal/entities"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Dataset holds every list served by the site, in display order.
type Dataset struct {
	Gallery    []entities.GalleryItem `yaml:"gallery"`
	Team       []entities.TeamMember  `yaml:"team"`
	Hero       entities.Hero          `yaml:"hero"`
	Showcase   entities.Showcase      `yaml:"showcase"`
	Pricing    []entities.PriceItem   `yaml:"pricing"`
	Services   []entities.Service     `yaml:"services"`
	Highlights []entities.Highlight   `yaml:"highlights"`
}

// Default returns the embedded dataset.
func Default() (*Dataset, error) {
	return Parse(defaultDocument)
}

// Load reads the dataset at path, or the embedded one when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(raw []byte) (*Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: decode dataset: %v", entities.ErrInvalidArgument, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks identifiers and roles.
func (d *Dataset) Validate() error {
	seen := make(map[string]struct{}, len(d.Gallery))
	for i, it := range d.Gallery {
		if err := checkID(seen, "gallery", i, it.ID); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(d.Team))
	for i, m := range d.Team {
		if err := checkID(seen, "team", i, m.ID); err != nil {
			return err
		}
		if !m.Role.Valid() {
			return fmt.Errorf("%w: team[%d] %q has unknown role %q", entities.ErrInvalidArgument, i, m.ID, m.Role)
		}
	}

	seen = make(map[string]struct{}, len(d.Hero.Services))
	for i, s := range d.Hero.Services {
		if err := checkID(seen, "hero.services", i, s.ID); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(d.Showcase.Images))
	for i, img := range d.Showcase.Images {
		if err := checkID(seen, "showcase.images", i, img.ID); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(d.Pricing))
	for i, p := range d.Pricing {
		if err := checkID(seen, "pricing", i, p.ID); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(d.Services))
	for i, s := range d.Services {
		if err := checkID(seen, "services", i, s.ID); err != nil {
			return err
		}
	}
	return nil
}

func checkID(seen map[string]struct{}, list string, idx int, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s[%d] has empty id", entities.ErrInvalidArgument, list, idx)
	}
	if _, ok := seen[id]; ok {
		return fmt.Errorf("%w: %s id %q", entities.ErrDuplicateID, list, id)
	}
	seen[id] = struct{}{}
	return nil
}
