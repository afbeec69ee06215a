package style

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Source supplies theme values. The boolean result reports whether the
// source sets the value at all.
type Source interface {
	Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) (color.Color, bool)
	Size(name fyne.ThemeSizeName) (float32, bool)
}

// Provider is a Source backed by a stylesheet.
type Provider struct {
	mu     sync.RWMutex
	origin string
	sheet  *sheet
}

var _ Source = (*Provider)(nil)

func NewProvider() *Provider {
	return &Provider{sheet: newSheet()}
}

// LoadFromPath replaces the provider's rules with the stylesheet at path.
// If the file cannot be read the provider ends up empty. A tokenizer error
// keeps the rules read before it. Invalid declarations are skipped and reported in the returned error while
// the rest of the stylesheet stays active.
func (p *Provider) LoadFromPath(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		p.replace(path, newSheet())
		return fmt.Errorf("read stylesheet: %w", err)
	}
	return p.load(path, data)
}

func (p *Provider) LoadFromData(data []byte) error {
	return p.load("<data>", data)
}

var utf8BOM = []byte("\xef\xbb\xbf")

func (p *Provider) load(origin string, data []byte) error {
	sh, decl, err := parseSheet(bytes.TrimPrefix(data, utf8BOM))
	p.replace(origin, sh)
	if err != nil {
		return fmt.Errorf("parse stylesheet %s: %w", origin, err)
	}
	if len(decl) > 0 {
		return fmt.Errorf("stylesheet %s: %w", origin, errors.Join(decl...))
	}
	return nil
}

func (p *Provider) replace(origin string, sh *sheet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.origin = origin
	p.sheet = sh
}

// Origin is the path or "<data>" the current rules came from.
func (p *Provider) Origin() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.origin
}

// Len is the number of theme values the provider sets.
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.sheet.colors) + len(p.sheet.sizes)
}

// Ignored counts rules and declarations outside the supported dialect.
func (p *Provider) Ignored() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sheet.ignored
}

func (p *Provider) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) (color.Color, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	sc := scopeLight
	if variant == theme.VariantDark {
		sc = scopeDark
	}
	if c, ok := p.sheet.colors[colorKey{name: name, scope: sc}]; ok {
		return c, true
	}
	c, ok := p.sheet.colors[colorKey{name: name, scope: scopeAny}]
	return c, ok
}

func (p *Provider) Size(name fyne.ThemeSizeName) (float32, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.sheet.sizes[name]
	return v, ok
}
