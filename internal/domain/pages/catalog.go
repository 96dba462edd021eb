package pages

// The template catalog is a closed set. Retiring a template happens via
// the Active flag on the seeded DB row, never by removing it here.
const (
	TemplateSidebarRight = "sidebar-right"
	TemplateSidebarLeft  = "sidebar-left"
	TemplateHeroFull     = "hero-full"

	DefaultTemplateKey = TemplateSidebarRight
)

// TemplateDescriptor declares what a template requires of a config
// document. SidebarPosition is "" for templates without a sidebar.
type TemplateDescriptor struct {
	Key              string
	Name             string
	SidebarPosition  string
	RequiredSections []string
	OptionalSections []string
}

var catalog = map[string]TemplateDescriptor{
	TemplateSidebarRight: {
		Key:              TemplateSidebarRight,
		Name:             "Classique — barre latérale droite",
		SidebarPosition:  PositionRight,
		RequiredSections: []string{"services", "about"},
		OptionalSections: []string{"gallery"},
	},
	TemplateSidebarLeft: {
		Key:              TemplateSidebarLeft,
		Name:             "Classique — barre latérale gauche",
		SidebarPosition:  PositionLeft,
		RequiredSections: []string{"services", "about"},
		OptionalSections: []string{"gallery"},
	},
	TemplateHeroFull: {
		Key:              TemplateHeroFull,
		Name:             "Vitrine — héro plein écran",
		SidebarPosition:  "",
		RequiredSections: []string{"services", "about"},
		OptionalSections: []string{"gallery"},
	},
}

// Lookup returns the descriptor for a template key.
func Lookup(key string) (TemplateDescriptor, bool) {
	d, ok := catalog[key]
	return d, ok
}

// Keys returns the catalog keys in a stable order.
func Keys() []string {
	return []string{TemplateSidebarRight, TemplateSidebarLeft, TemplateHeroFull}
}

// DefaultDocument builds the seed configuration used when a business
// first activates the custom page system. The seed is a fully valid
// document for the given template; it is stored unpublished so the
// editor has a correct starting point.
func DefaultDocument(key string) (ConfigDocument, bool) {
	desc, ok := catalog[key]
	if !ok {
		return ConfigDocument{}, false
	}

	doc := ConfigDocument{
		ConfigVersion: 1,
		TemplateKey:   desc.Key,
		Theme: Theme{
			PrimaryColor:   "#006233",
			SecondaryColor: "#D21034",
		},
		Hero: Hero{
			Enabled:         true,
			BackgroundType:  BackgroundColor,
			BackgroundValue: "#006233",
			ShowCTA:         true,
		},
		Sections: Sections{
			Services: ServicesSection{Enabled: true, Display: DisplayGrid},
			About:    AboutSection{Enabled: true},
		},
	}

	if desc.SidebarPosition != "" {
		doc.Sidebar = &Sidebar{
			Position: desc.SidebarPosition,
			Contact:  SidebarContact{Phone: true, Email: true},
			Socials:  SidebarSocials{Facebook: true, Instagram: true, TikTok: true, YouTube: true},
			Hours:    SidebarHours{Enabled: true},
			Address:  SidebarAddress{Enabled: true, ShowMap: true},
		}
	}

	return doc, true
}
