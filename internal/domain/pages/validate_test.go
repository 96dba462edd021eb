package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validDoc(templateKey string) ConfigDocument {
	doc := ConfigDocument{
		ConfigVersion: 1,
		TemplateKey:   templateKey,
		Theme: Theme{
			PrimaryColor:   "#AABBCC",
			SecondaryColor: "#112233",
		},
		Hero: Hero{
			Enabled:         true,
			BackgroundType:  BackgroundColor,
			BackgroundValue: "#AABBCC",
			ShowCTA:         true,
		},
		Sections: Sections{
			Services: ServicesSection{Enabled: true, Display: DisplayGrid},
			About:    AboutSection{Enabled: true},
		},
	}

	switch templateKey {
	case TemplateSidebarRight:
		doc.Sidebar = &Sidebar{Position: PositionRight}
	case TemplateSidebarLeft:
		doc.Sidebar = &Sidebar{Position: PositionLeft}
	}
	return doc
}

func strPtr(s string) *string { return &s }

func TestValidateAcceptsAllTemplates(t *testing.T) {
	for _, key := range Keys() {
		doc := validDoc(key)
		out, verr := Validate(doc)
		require.Nil(t, verr, "template %s", key)
		require.Equal(t, key, out.TemplateKey)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	doc := validDoc(TemplateSidebarRight)
	doc.ConfigVersion = 0 // absent, should default to 1

	first, verr := Validate(doc)
	require.Nil(t, verr)
	require.Equal(t, 1, first.ConfigVersion)

	second, verr := Validate(first)
	require.Nil(t, verr)
	require.Equal(t, first, second)
}

func TestValidateUnknownTemplate(t *testing.T) {
	doc := validDoc(TemplateSidebarRight)
	doc.TemplateKey = "mega-hero"

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Equal(t, KindUnknownTemplate, verr.Kind)
	require.Contains(t, verr.Fields, "templateKey")
}

func TestSidebarRequiredForSidebarTemplates(t *testing.T) {
	for _, key := range []string{TemplateSidebarRight, TemplateSidebarLeft} {
		doc := validDoc(key)
		doc.Sidebar = nil

		_, verr := Validate(doc)
		require.NotNil(t, verr, "template %s", key)
		require.Equal(t, KindTemplateConstraint, verr.Kind)
		require.Contains(t, verr.Fields, "sidebar")
	}
}

func TestSidebarPositionMismatchRejected(t *testing.T) {
	doc := validDoc(TemplateSidebarLeft)
	doc.Sidebar.Position = PositionRight

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Equal(t, KindTemplateConstraint, verr.Kind)
	require.Contains(t, verr.Fields, "sidebar.position")
}

func TestHeroFullForbidsSidebar(t *testing.T) {
	doc := validDoc(TemplateHeroFull)
	doc.Sidebar = &Sidebar{Position: PositionLeft}

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Equal(t, KindTemplateConstraint, verr.Kind)
	require.Contains(t, verr.Fields, "sidebar")
}

func TestHexColorStrictness(t *testing.T) {
	cases := map[string]bool{
		"#AABBCC":   true,
		"#aabbcc":   true,
		"#abc":      false, // short hex
		"red":       false, // named color
		"#AABBCCDD": false, // alpha
		"AABBCC":    false, // missing #
		"#GGHHII":   false,
	}

	for color, ok := range cases {
		doc := validDoc(TemplateHeroFull)
		doc.Theme.PrimaryColor = color

		_, verr := Validate(doc)
		if ok {
			require.Nil(t, verr, "color %q", color)
		} else {
			require.NotNil(t, verr, "color %q", color)
			require.Equal(t, KindSchema, verr.Kind)
			require.Contains(t, verr.Fields, "theme.primaryColor")
		}
	}
}

func TestGradientColorsValidated(t *testing.T) {
	doc := validDoc(TemplateHeroFull)
	doc.Theme.Gradient = &Gradient{From: "#001122", To: "blue"}

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "theme.gradient.to")
}

func TestLengthCapsAreHardLimits(t *testing.T) {
	doc := validDoc(TemplateHeroFull)
	doc.Hero.Title = strPtr(strings.Repeat("a", 101))
	doc.Hero.Description = strPtr(strings.Repeat("b", 501))
	doc.Sections.About.Content = strPtr(strings.Repeat("c", 2001))

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Equal(t, KindSchema, verr.Kind)
	require.Contains(t, verr.Fields, "hero.title")
	require.Contains(t, verr.Fields, "hero.description")
	require.Contains(t, verr.Fields, "sections.about.content")

	// Exactly at the cap passes.
	doc = validDoc(TemplateHeroFull)
	doc.Hero.Title = strPtr(strings.Repeat("a", 100))
	_, verr = Validate(doc)
	require.Nil(t, verr)
}

func TestImageURLsMustBeAbsolute(t *testing.T) {
	doc := validDoc(TemplateHeroFull)
	doc.Hero.BackgroundImage = strPtr("/uploads/hero.png")

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "hero.backgroundImage")

	doc.Hero.BackgroundImage = strPtr("https://cdn.example.com/hero.png")
	doc.Sections.Gallery = &GallerySection{
		Enabled: true,
		Images:  []string{"https://cdn.example.com/1.png", "not-a-url"},
	}

	_, verr = Validate(doc)
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "sections.gallery.images.1")
}

func TestEnumMembership(t *testing.T) {
	doc := validDoc(TemplateHeroFull)
	doc.Hero.BackgroundType = "video"
	doc.Sections.Services.Display = "carousel"

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "hero.backgroundType")
	require.Contains(t, verr.Fields, "sections.services.display")
}

func TestNegativeConfigVersionRejected(t *testing.T) {
	doc := validDoc(TemplateHeroFull)
	doc.ConfigVersion = -3

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "configVersion")
}

func TestConstraintKindWinsOverSchemaErrors(t *testing.T) {
	// Mismatched sidebar AND a bad color: the constraint violation
	// decides the error kind, the color error is still reported.
	doc := validDoc(TemplateSidebarRight)
	doc.Sidebar.Position = PositionLeft
	doc.Theme.SecondaryColor = "#fff"

	_, verr := Validate(doc)
	require.NotNil(t, verr)
	require.Equal(t, KindTemplateConstraint, verr.Kind)
	require.Contains(t, verr.Fields, "sidebar.position")
	require.Contains(t, verr.Fields, "theme.secondaryColor")
}
