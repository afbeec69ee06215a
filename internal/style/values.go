package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

var namedColors = map[string]color.NRGBA{
	"transparent": {},
	"white":       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black":       {A: 0xff},
}

// significant drops whitespace and comment tokens from a value list.
func significant(tokens []css.Token) []css.Token {
	out := make([]css.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken || t.TokenType == css.CommentToken {
			continue
		}
		out = append(out, t)
	}
	return out
}

func tokensString(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}

// parseColor resolves a colour value. defined resolves @name references and
// may be nil.
func parseColor(tokens []css.Token, defined func(string) (color.Color, bool)) (color.Color, error) {
	tokens = significant(tokens)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty colour value")
	}

	first := tokens[0]
	switch first.TokenType {
	case css.HashToken:
		if len(tokens) != 1 {
			return nil, fmt.Errorf("unexpected tokens after %s", first.Data)
		}
		return parseHex(strings.TrimPrefix(string(first.Data), "#"))
	case css.IdentToken:
		if len(tokens) != 1 {
			return nil, fmt.Errorf("unexpected tokens after %s", first.Data)
		}
		c, ok := namedColors[strings.ToLower(string(first.Data))]
		if !ok {
			return nil, fmt.Errorf("unknown colour name %q", first.Data)
		}
		return c, nil
	case css.AtKeywordToken:
		if len(tokens) != 1 {
			return nil, fmt.Errorf("unexpected tokens after %s", first.Data)
		}
		name := strings.TrimPrefix(string(first.Data), "@")
		var (
			c  color.Color
			ok bool
		)
		if defined != nil {
			c, ok = defined(name)
		}
		if !ok {
			return nil, fmt.Errorf("undefined colour @%s", name)
		}
		return c, nil
	case css.FunctionToken:
		fn := strings.ToLower(strings.TrimSuffix(string(first.Data), "("))
		if fn != "rgb" && fn != "rgba" {
			return nil, fmt.Errorf("unsupported colour function %s()", fn)
		}
		return parseRGBFunc(fn, tokens[1:])
	}

	return nil, fmt.Errorf("invalid colour %q", tokensString(tokens))
}

func parseHex(hex string) (color.Color, error) {
	expand := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}

	switch len(hex) {
	case 3, 4:
		hex = expand(hex)
	case 6, 8:
	default:
		return nil, fmt.Errorf("invalid hex colour #%s", hex)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex colour #%s", hex)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func parseRGBFunc(fn string, args []css.Token) (color.Color, error) {
	var parts []css.Token
	closed := false
	for i, t := range args {
		switch t.TokenType {
		case css.CommaToken:
		case css.RightParenthesisToken:
			if i != len(args)-1 {
				return nil, fmt.Errorf("unexpected tokens after %s()", fn)
			}
			closed = true
		default:
			parts = append(parts, t)
		}
	}
	if !closed {
		return nil, fmt.Errorf("unterminated %s()", fn)
	}

	want := 3
	if fn == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return nil, fmt.Errorf("%s() takes %d arguments, got %d", fn, want, len(parts))
	}

	var ch [4]uint8
	ch[3] = 0xff
	for i, p := range parts {
		var (
			v   float64
			err error
		)
		switch p.TokenType {
		case css.NumberToken:
			v, err = strconv.ParseFloat(string(p.Data), 64)
			if i == 3 {
				v *= 255
			}
		case css.PercentageToken:
			v, err = strconv.ParseFloat(strings.TrimSuffix(string(p.Data), "%"), 64)
			v = v * 255 / 100
		default:
			return nil, fmt.Errorf("invalid %s() argument %q", fn, p.Data)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid %s() argument %q", fn, p.Data)
		}
		ch[i] = clampByte(v)
	}

	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// parseSize accepts unitless numbers, px and pt. Sizes are in fyne's
// device-independent units, which match CSS pixels.
func parseSize(tokens []css.Token) (float32, error) {
	tokens = significant(tokens)
	if len(tokens) != 1 {
		return 0, fmt.Errorf("invalid size %q", tokensString(tokens))
	}

	t := tokens[0]
	raw := string(t.Data)
	points := false

	switch t.TokenType {
	case css.NumberToken:
	case css.DimensionToken:
		switch {
		case strings.HasSuffix(raw, "px"):
			raw = strings.TrimSuffix(raw, "px")
		case strings.HasSuffix(raw, "pt"):
			raw = strings.TrimSuffix(raw, "pt")
			points = true
		default:
			return 0, fmt.Errorf("unsupported unit in %q", t.Data)
		}
	default:
		return 0, fmt.Errorf("invalid size %q", t.Data)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", t.Data)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative size %q", t.Data)
	}
	if points {
		v = v * 96 / 72
	}
	return float32(v), nil
}

// camelCase converts kebab-case names to fyne's theme name style.
func camelCase(name string) string {
	parts := strings.Split(name, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
