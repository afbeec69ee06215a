package style

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func providerFrom(t *testing.T, sheet string) *Provider {
	t.Helper()
	p := NewProvider()
	require.NoError(t, p.LoadFromData([]byte(sheet)))
	return p
}

func TestCascadeFallsBackToBase(t *testing.T) {
	base := theme.DefaultTheme()
	c := NewCascade(nil)

	assert.Equal(t, base.Color(theme.ColorNameBackground, theme.VariantDark),
		c.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, base.Size(theme.SizeNameText), c.Size(theme.SizeNameText))
	assert.Equal(t, base.Icon(theme.IconNameHome), c.Icon(theme.IconNameHome))
}

func TestCascadePriorityOrder(t *testing.T) {
	c := NewCascade(nil)
	app := providerFrom(t, `window { background-color: #111111; font-size: 20px; }`)
	user := providerFrom(t, `window { background-color: #222222; }`)

	c.Add(app, PriorityApplication)
	c.Add(user, PriorityUser)

	assert.Equal(t, rgba(0x22, 0x22, 0x22, 0xff), c.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, float32(20), c.Size(theme.SizeNameText))

	assert.True(t, c.Remove(user))
	assert.False(t, c.Remove(user))
	assert.Equal(t, rgba(0x11, 0x11, 0x11, 0xff), c.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestCascadeLaterAdditionWinsTies(t *testing.T) {
	c := NewCascade(nil)
	first := providerFrom(t, `window { color: #010101; }`)
	second := providerFrom(t, `window { color: #020202; }`)

	c.Add(first, PriorityApplication)
	c.Add(second, PriorityApplication)
	assert.Equal(t, rgba(2, 2, 2, 0xff), c.Color(theme.ColorNameForeground, theme.VariantLight))

	c.Add(first, PriorityApplication)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, rgba(1, 1, 1, 0xff), c.Color(theme.ColorNameForeground, theme.VariantLight))
}

func TestPriorityString(t *testing.T) {
	assert.Equal(t, "application", PriorityApplication.String())
	assert.Equal(t, "custom", Priority(42).String())
}
