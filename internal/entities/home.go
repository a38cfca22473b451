// Package entities contains core business entities.
package entities

// PriceItem is one row of the price list.
type PriceItem struct {
	ID          string `yaml:"id"`
	Service     string `yaml:"service"`
	Price       string `yaml:"price"`
	Description string `yaml:"description,omitempty"`
	Duration    string `yaml:"duration,omitempty"`
	Popular     bool   `yaml:"popular,omitempty"`
}

// Service is a service card on the home page.
type Service struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

// Highlight is a point of the "why us" info section.
type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// Location is one address or phone line shown in the hero.
type Location struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon,omitempty"`
}

// HeroService is a featured service tile under the hero.
type HeroService struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

// Hero is the top section of the landing page.
type Hero struct {
	Greeting  string        `yaml:"greeting"`
	Headline  string        `yaml:"headline"`
	Image     string        `yaml:"image,omitempty"`
	Locations []Location    `yaml:"locations"`
	Services  []HeroService `yaml:"services"`
}

// ShowcaseImage is one haircut photo of the showcase strip.
type ShowcaseImage struct {
	ID  string `yaml:"id"`
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Showcase is the haircut and shave showcase section.
type Showcase struct {
	Headline string          `yaml:"headline"`
	Images   []ShowcaseImage `yaml:"images"`
}

// Home aggregates the content of the landing page.
type Home struct {
	Hero       Hero
	Showcase   Showcase
	Pricing    []PriceItem
	Services   []Service
	Highlights []Highlight
}
