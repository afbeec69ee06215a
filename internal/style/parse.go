package style

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type scope uint8

const (
	scopeAny scope = iota
	scopeDark
	scopeLight
	scopeSkip
)

type colorKey struct {
	name  fyne.ThemeColorName
	scope scope
}

type colorRef struct {
	name  string
	scope scope
}

type sheet struct {
	colors  map[colorKey]color.Color
	sizes   map[fyne.ThemeSizeName]float32
	defined map[colorRef]color.Color
	ignored int
}

func newSheet() *sheet {
	return &sheet{
		colors:  make(map[colorKey]color.Color),
		sizes:   make(map[fyne.ThemeSizeName]float32),
		defined: make(map[colorRef]color.Color),
	}
}

// DeclarationError describes one rejected declaration. The rest of the
// stylesheet still applies.
type DeclarationError struct {
	Selector string
	Property string
	Err      error
}

func (e *DeclarationError) Error() string {
	if e.Selector == "" {
		return fmt.Sprintf("%s: %v", e.Property, e.Err)
	}
	return fmt.Sprintf("%s { %s }: %v", e.Selector, e.Property, e.Err)
}

func (e *DeclarationError) Unwrap() error { return e.Err }

// parseSheet tokenizes data and builds a sheet. A non-nil fatal error stops
// parsing; s still holds everything read before it. decl lists declarations
// that were skipped.
func parseSheet(data []byte) (s *sheet, decl []error, fatal error) {
	s = newSheet()
	p := css.NewParser(parse.NewInputBytes(data), false)

	var (
		pending   []string
		selectors []string
		scopes    []scope
	)
	current := func() scope {
		if len(scopes) == 0 {
			return scopeAny
		}
		return scopes[len(scopes)-1]
	}

	for {
		gt, _, raw := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err == io.EOF {
				return s, decl, nil
			} else if err != nil {
				return s, decl, err
			}
			decl = append(decl, &DeclarationError{Property: string(raw), Err: fmt.Errorf("unexpected token")})

		case css.AtRuleGrammar:
			if current() == scopeSkip {
				continue
			}
			if strings.EqualFold(string(raw), "@define-color") {
				if err := s.defineColor(p.Values(), current()); err != nil {
					decl = append(decl, err)
				}
				continue
			}
			s.ignored++

		case css.BeginAtRuleGrammar:
			next := scopeSkip
			if strings.EqualFold(string(raw), "@media") && current() != scopeSkip {
				next = mediaScope(p.Values(), current())
			}
			scopes = append(scopes, next)

		case css.EndAtRuleGrammar:
			if len(scopes) > 0 {
				scopes = scopes[:len(scopes)-1]
			}

		case css.QualifiedRuleGrammar:
			pending = append(pending, selectorName(p.Values()))

		case css.BeginRulesetGrammar:
			selectors = append(pending, selectorName(p.Values()))
			pending = nil

		case css.EndRulesetGrammar:
			selectors = nil

		case css.DeclarationGrammar:
			if current() == scopeSkip {
				continue
			}
			property := strings.ToLower(string(raw))
			for _, sel := range selectors {
				if err := s.declare(sel, property, p.Values(), current()); err != nil {
					decl = append(decl, err)
				}
			}
		}
	}
}

// selectorName returns the element name of a simple selector, or "" for
// anything this dialect does not understand (classes, pseudo-classes,
// combinators).
func selectorName(tokens []css.Token) string {
	tokens = significant(tokens)
	if len(tokens) != 1 {
		return ""
	}
	t := tokens[0]
	switch {
	case t.TokenType == css.IdentToken:
		return strings.ToLower(string(t.Data))
	case t.TokenType == css.DelimToken && string(t.Data) == "*":
		return "*"
	}
	return ""
}

func mediaScope(prelude []css.Token, parent scope) scope {
	tokens := significant(prelude)
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i].TokenType != css.IdentToken || !strings.EqualFold(string(tokens[i].Data), "prefers-color-scheme") {
			continue
		}
		if tokens[i+1].TokenType != css.ColonToken {
			break
		}
		var want scope
		switch strings.ToLower(string(tokens[i+2].Data)) {
		case "dark":
			want = scopeDark
		case "light":
			want = scopeLight
		default:
			return scopeSkip
		}
		if parent != scopeAny && parent != want {
			return scopeSkip
		}
		return want
	}
	return scopeSkip
}

func (s *sheet) defineColor(values []css.Token, sc scope) error {
	tokens := significant(values)
	if len(tokens) < 2 || tokens[0].TokenType != css.IdentToken {
		return &DeclarationError{Property: "@define-color", Err: fmt.Errorf("expected a name and a colour")}
	}
	name := string(tokens[0].Data)
	c, err := parseColor(tokens[1:], s.lookup(sc))
	if err != nil {
		return &DeclarationError{Property: "@define-color " + name, Err: err}
	}
	s.defined[colorRef{name: name, scope: sc}] = c
	s.colors[colorKey{name: fyne.ThemeColorName(camelCase(name)), scope: sc}] = c
	return nil
}

func (s *sheet) declare(selector, property string, values []css.Token, sc scope) error {
	props, ok := selectorProperties[selector]
	if !ok {
		s.ignored++
		return nil
	}
	tgt, ok := props[property]
	if !ok {
		s.ignored++
		return nil
	}
	values = stripImportant(values)

	if tgt.color != "" {
		c, err := parseColor(values, s.lookup(sc))
		if err != nil {
			return &DeclarationError{Selector: selector, Property: property, Err: err}
		}
		s.colors[colorKey{name: tgt.color, scope: sc}] = c
		return nil
	}

	if sc != scopeAny {
		return &DeclarationError{Selector: selector, Property: property, Err: fmt.Errorf("sizes cannot vary by colour scheme")}
	}
	v, err := parseSize(values)
	if err != nil {
		return &DeclarationError{Selector: selector, Property: property, Err: err}
	}
	s.sizes[tgt.size] = v
	return nil
}

func stripImportant(values []css.Token) []css.Token {
	tokens := significant(values)
	n := len(tokens)
	if n >= 2 && tokens[n-2].TokenType == css.DelimToken && string(tokens[n-2].Data) == "!" &&
		strings.EqualFold(string(tokens[n-1].Data), "important") {
		return tokens[:n-2]
	}
	return tokens
}

// lookup resolves @name references from scope sc, falling back to
// unscoped definitions.
func (s *sheet) lookup(sc scope) func(string) (color.Color, bool) {
	return func(name string) (color.Color, bool) {
		if c, ok := s.defined[colorRef{name: name, scope: sc}]; ok {
			return c, true
		}
		c, ok := s.defined[colorRef{name: name, scope: scopeAny}]
		return c, ok
	}
}
