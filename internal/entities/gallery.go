// Package entities contains core business entities.
package entities

// GalleryItem is an image shown on the gallery page.
type GalleryItem struct {
	ID     string   `yaml:"id"`
	Src    string   `yaml:"src"`
	Alt    string   `yaml:"alt"`
	Width  int      `yaml:"w"`
	Height int      `yaml:"h"`
	Tags   []string `yaml:"tags"`
}
