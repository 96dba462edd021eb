package pages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownKeys(t *testing.T) {
	right, ok := Lookup(TemplateSidebarRight)
	require.True(t, ok)
	require.Equal(t, PositionRight, right.SidebarPosition)

	left, ok := Lookup(TemplateSidebarLeft)
	require.True(t, ok)
	require.Equal(t, PositionLeft, left.SidebarPosition)

	hero, ok := Lookup(TemplateHeroFull)
	require.True(t, ok)
	require.Empty(t, hero.SidebarPosition)

	_, ok = Lookup("three-columns")
	require.False(t, ok)
}

func TestDefaultDocumentIsValid(t *testing.T) {
	for _, key := range Keys() {
		doc, ok := DefaultDocument(key)
		require.True(t, ok, "template %s", key)

		normalized, verr := Validate(doc)
		require.Nil(t, verr, "template %s", key)
		require.Equal(t, doc, normalized, "default document must already be normalized")
	}
}

func TestDefaultDocumentSidebarDefaults(t *testing.T) {
	doc, ok := DefaultDocument(TemplateSidebarRight)
	require.True(t, ok)
	require.Equal(t, 1, doc.ConfigVersion)
	require.NotNil(t, doc.Sidebar)
	require.Equal(t, PositionRight, doc.Sidebar.Position)
	require.True(t, doc.Sidebar.Contact.Phone)
	require.True(t, doc.Sidebar.Contact.Email)
	require.True(t, doc.Sidebar.Socials.Facebook)
	require.True(t, doc.Sidebar.Socials.Instagram)
	require.True(t, doc.Sidebar.Socials.TikTok)
	require.True(t, doc.Sidebar.Socials.YouTube)
	require.True(t, doc.Sidebar.Hours.Enabled)
	require.True(t, doc.Sidebar.Address.Enabled)
	require.True(t, doc.Sidebar.Address.ShowMap)

	hero, ok := DefaultDocument(TemplateHeroFull)
	require.True(t, ok)
	require.Nil(t, hero.Sidebar)

	_, ok = DefaultDocument("nope")
	require.False(t, ok)
}
