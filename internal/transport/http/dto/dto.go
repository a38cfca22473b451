// Package dto holds the JSON shapes of the HTTP API.
package dto

// ErrorCode is a machine-readable error category.
type ErrorCode string

const (
	INVALIDARGUMENT ErrorCode = "INVALID_ARGUMENT"
	NOTFOUND        ErrorCode = "NOT_FOUND"
	INVALIDSTATE    ErrorCode = "INVALID_STATE"
	INTERNAL        ErrorCode = "INTERNAL"
)

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse wraps ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// GalleryItem is a gallery image.
type GalleryItem struct {
	ID     string   `json:"id"`
	Src    string   `json:"src"`
	Alt    string   `json:"alt"`
	Width  int      `json:"w"`
	Height int      `json:"h"`
	Tags   []string `json:"tags"`
}

// Socials lists contact links; absent links are omitted.
type Socials struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// TeamMember is a team profile.
type TeamMember struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Photo   string   `json:"photo"`
	Bio     string   `json:"bio"`
	Tags    []string `json:"tags"`
	Socials *Socials `json:"socials,omitempty"`
}

// FilterState is the page state a client sends and receives back.
// An omitted filters_visible means the filter panel is shown.
type FilterState struct {
	Query          string   `json:"query"`
	Active         []string `json:"active"`
	SelectedID     string   `json:"selected_id,omitempty"`
	DialogOpen     bool     `json:"dialog_open"`
	FiltersVisible *bool    `json:"filters_visible,omitempty"`
}

// Action is a single page interaction.
type Action struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// ActionRequest carries the current state and the interaction to apply.
// A missing state means a freshly opened page.
type ActionRequest struct {
	State  *FilterState `json:"state,omitempty"`
	Action Action       `json:"action"`
}

// GalleryView is the gallery page payload.
type GalleryView struct {
	State    FilterState   `json:"state"`
	Items    []GalleryItem `json:"items"`
	Tags     []string      `json:"tags"`
	Total    int           `json:"total"`
	Visible  int           `json:"visible"`
	Selected *GalleryItem  `json:"selected,omitempty"`
}

// TeamView is the team page payload.
type TeamView struct {
	State    FilterState  `json:"state"`
	Members  []TeamMember `json:"members"`
	Roles    []string     `json:"roles"`
	Total    int          `json:"total"`
	Visible  int          `json:"visible"`
	Selected *TeamMember  `json:"selected,omitempty"`
}

// PriceItem is one price list row.
type PriceItem struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Popular     bool   `json:"popular"`
}

// Service is a service card.
type Service struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// Highlight is an info section point.
type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Location is an address or phone line of the hero.
type Location struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// HeroService is a featured service tile.
type HeroService struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// Hero is the landing page hero.
type Hero struct {
	Greeting  string        `json:"greeting"`
	Headline  string        `json:"headline"`
	Image     string        `json:"image,omitempty"`
	Locations []Location    `json:"locations"`
	Services  []HeroService `json:"services"`
}

// ShowcaseImage is one showcase photo.
type ShowcaseImage struct {
	ID  string `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Showcase is the haircut and shave showcase.
type Showcase struct {
	Headline string          `json:"headline"`
	Images   []ShowcaseImage `json:"images"`
}

// Home is the landing page payload.
type Home struct {
	Hero       Hero        `json:"hero"`
	Showcase   Showcase    `json:"showcase"`
	Pricing    []PriceItem `json:"pricing"`
	Services   []Service   `json:"services"`
	Highlights []Highlight `json:"highlights"`
}
