package pages

import (
	"fmt"
	"net/url"
	"regexp"
)

const (
	maxHeroTitleLen  = 100
	maxHeroDescLen   = 500
	maxServicesTitle = 100
	maxAboutContent  = 2000
)

// Exactly six hex digits. Short hex, named colors and alpha channels
// are rejected, not coerced.
var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks an untrusted document against the catalog rules and
// returns the normalized document (defaults applied). The returned
// document re-validates to itself.
//
// Error kind precedence: unknown template, then sidebar constraint,
// then schema. A nil *ValidationError means the document is legal.
func Validate(doc ConfigDocument) (ConfigDocument, *ValidationError) {
	desc, ok := Lookup(doc.TemplateKey)
	if !ok {
		return ConfigDocument{}, &ValidationError{
			Kind: KindUnknownTemplate,
			Fields: map[string]string{
				"templateKey": fmt.Sprintf("unknown template %q", doc.TemplateKey),
			},
		}
	}

	fields := map[string]string{}
	constraint := validateSidebarRule(desc, doc.Sidebar, fields)
	validateVersion(doc.ConfigVersion, fields)
	validateTheme(doc.Theme, fields)
	validateHero(doc.Hero, fields)
	validateSections(doc.Sections, fields)

	if len(fields) > 0 {
		kind := KindSchema
		if constraint {
			kind = KindTemplateConstraint
		}
		return ConfigDocument{}, &ValidationError{Kind: kind, Fields: fields}
	}

	if doc.ConfigVersion == 0 {
		doc.ConfigVersion = 1
	}
	return doc, nil
}

// validateSidebarRule enforces the template/sidebar coupling. Returns
// true when the violation is a template-constraint one (presence or
// position), which takes precedence over plain schema errors.
func validateSidebarRule(desc TemplateDescriptor, sb *Sidebar, fields map[string]string) bool {
	if desc.SidebarPosition == "" {
		if sb != nil {
			fields["sidebar"] = fmt.Sprintf("template %q does not allow a sidebar", desc.Key)
			return true
		}
		return false
	}

	if sb == nil {
		fields["sidebar"] = fmt.Sprintf("template %q requires a sidebar", desc.Key)
		return true
	}
	if sb.Position != desc.SidebarPosition {
		fields["sidebar.position"] = fmt.Sprintf("must be %q for template %q, got %q",
			desc.SidebarPosition, desc.Key, sb.Position)
		return true
	}
	return false
}

func validateVersion(v int, fields map[string]string) {
	// 0 means "absent" after JSON decoding; it defaults to 1.
	if v < 0 {
		fields["configVersion"] = "must be a positive integer"
	}
}

func validateTheme(t Theme, fields map[string]string) {
	checkColor(t.PrimaryColor, "theme.primaryColor", fields)
	checkColor(t.SecondaryColor, "theme.secondaryColor", fields)
	if t.AccentColor != nil {
		checkColor(*t.AccentColor, "theme.accentColor", fields)
	}
	if t.Gradient != nil {
		checkColor(t.Gradient.From, "theme.gradient.from", fields)
		checkColor(t.Gradient.To, "theme.gradient.to", fields)
	}
}

func validateHero(h Hero, fields map[string]string) {
	switch h.BackgroundType {
	case BackgroundColor, BackgroundGradient, BackgroundImage:
	default:
		fields["hero.backgroundType"] = fmt.Sprintf("must be one of color, gradient, image; got %q", h.BackgroundType)
	}
	if h.BackgroundValue == "" {
		fields["hero.backgroundValue"] = "is required"
	}
	if h.Title != nil && len(*h.Title) > maxHeroTitleLen {
		fields["hero.title"] = fmt.Sprintf("must be at most %d characters", maxHeroTitleLen)
	}
	if h.Description != nil && len(*h.Description) > maxHeroDescLen {
		fields["hero.description"] = fmt.Sprintf("must be at most %d characters", maxHeroDescLen)
	}
	if h.BackgroundImage != nil && !isAbsoluteURL(*h.BackgroundImage) {
		fields["hero.backgroundImage"] = "must be an absolute http(s) URL"
	}
}

func validateSections(s Sections, fields map[string]string) {
	switch s.Services.Display {
	case DisplayGrid, DisplayList:
	default:
		fields["sections.services.display"] = fmt.Sprintf("must be grid or list; got %q", s.Services.Display)
	}
	if s.Services.Title != nil && len(*s.Services.Title) > maxServicesTitle {
		fields["sections.services.title"] = fmt.Sprintf("must be at most %d characters", maxServicesTitle)
	}
	if s.About.Content != nil && len(*s.About.Content) > maxAboutContent {
		fields["sections.about.content"] = fmt.Sprintf("must be at most %d characters", maxAboutContent)
	}
	if s.Gallery != nil {
		for i, img := range s.Gallery.Images {
			if !isAbsoluteURL(img) {
				fields[fmt.Sprintf("sections.gallery.images.%d", i)] = "must be an absolute http(s) URL"
			}
		}
	}
}

func checkColor(v, path string, fields map[string]string) {
	if !hexColor.MatchString(v) {
		fields[path] = fmt.Sprintf("must be a 6-digit hex color like #1A2B3C; got %q", v)
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
