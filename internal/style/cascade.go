package style

import (
	"image/color"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type layer struct {
	source   Source
	priority Priority
	seq      int
}

// Cascade is a fyne.Theme that resolves values through prioritised sources
// and falls back to a base theme.
type Cascade struct {
	mu     sync.RWMutex
	base   fyne.Theme
	layers []layer
	seq    int
}

var _ fyne.Theme = (*Cascade)(nil)

func NewCascade(base fyne.Theme) *Cascade {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &Cascade{base: base}
}

// Add attaches src at priority. Adding a source that is already attached
// moves it to the new priority. Among equal priorities the latest addition
// wins.
func (c *Cascade) Add(src Source, priority Priority) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(src)
	c.seq++
	c.layers = append(c.layers, layer{source: src, priority: priority, seq: c.seq})
	sort.SliceStable(c.layers, func(i, j int) bool {
		if c.layers[i].priority != c.layers[j].priority {
			return c.layers[i].priority > c.layers[j].priority
		}
		return c.layers[i].seq > c.layers[j].seq
	})
}

// Remove detaches src. It reports whether src was attached.
func (c *Cascade) Remove(src Source) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(src)
}

func (c *Cascade) removeLocked(src Source) bool {
	for i, l := range c.layers {
		if l.source == src {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cascade) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.layers)
}

func (c *Cascade) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.layers {
		if v, ok := l.source.Color(name, variant); ok {
			return v
		}
	}
	return c.base.Color(name, variant)
}

func (c *Cascade) Size(name fyne.ThemeSizeName) float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.layers {
		if v, ok := l.source.Size(name); ok {
			return v
		}
	}
	return c.base.Size(name)
}

func (c *Cascade) Font(style fyne.TextStyle) fyne.Resource {
	return c.base.Font(style)
}

func (c *Cascade) Icon(name fyne.ThemeIconName) fyne.Resource {
	return c.base.Icon(name)
}
