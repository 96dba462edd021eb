package pages

// ConfigDocument is the full customization payload for a business page.
// One document describes everything the public renderer needs for a
// given template: theme, hero, content sections and (for sidebar
// templates) the sidebar toggles.
type ConfigDocument struct {
	ConfigVersion int      `json:"configVersion,omitempty"`
	TemplateKey   string   `json:"templateKey"`
	Theme         Theme    `json:"theme"`
	Hero          Hero     `json:"hero"`
	Sections      Sections `json:"sections"`
	Sidebar       *Sidebar `json:"sidebar,omitempty"`
}

type Gradient struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Theme struct {
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	AccentColor    *string   `json:"accentColor,omitempty"`
	Gradient       *Gradient `json:"gradient,omitempty"`
}

const (
	BackgroundColor    = "color"
	BackgroundGradient = "gradient"
	BackgroundImage    = "image"
)

type Hero struct {
	Enabled         bool    `json:"enabled"`
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	BackgroundType  string  `json:"backgroundType"`
	BackgroundValue string  `json:"backgroundValue"`
	BackgroundImage *string `json:"backgroundImage,omitempty"`
	ShowCTA         bool    `json:"showCTA"`
}

const (
	DisplayGrid = "grid"
	DisplayList = "list"
)

type ServicesSection struct {
	Enabled bool    `json:"enabled"`
	Title   *string `json:"title,omitempty"`
	Display string  `json:"display"`
}

type AboutSection struct {
	Enabled bool    `json:"enabled"`
	Content *string `json:"content,omitempty"`
}

type GallerySection struct {
	Enabled bool     `json:"enabled"`
	Images  []string `json:"images,omitempty"`
}

type Sections struct {
	Services ServicesSection `json:"services"`
	About    AboutSection    `json:"about"`
	Gallery  *GallerySection `json:"gallery,omitempty"`
}

const (
	PositionLeft  = "left"
	PositionRight = "right"
)

type SidebarContact struct {
	Phone bool `json:"phone"`
	Email bool `json:"email"`
}

type SidebarSocials struct {
	Facebook  bool `json:"facebook"`
	Instagram bool `json:"instagram"`
	TikTok    bool `json:"tiktok"`
	YouTube   bool `json:"youtube"`
}

type SidebarHours struct {
	Enabled bool `json:"enabled"`
}

type SidebarAddress struct {
	Enabled bool `json:"enabled"`
	ShowMap bool `json:"showMap"`
}

type Sidebar struct {
	Position string         `json:"position"`
	Contact  SidebarContact `json:"contact"`
	Socials  SidebarSocials `json:"socials"`
	Hours    SidebarHours   `json:"hours"`
	Address  SidebarAddress `json:"address"`
}
