package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// namedColors maps the CSS named colors most often seen in examples to hex.
// Unknown names are ignored by the terminal surface.
var namedColors = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"red":         "#ff0000",
	"green":       "#008000",
	"lime":        "#00ff00",
	"blue":        "#0000ff",
	"yellow":      "#ffff00",
	"cyan":        "#00ffff",
	"aqua":        "#00ffff",
	"magenta":     "#ff00ff",
	"fuchsia":     "#ff00ff",
	"gray":        "#808080",
	"grey":        "#808080",
	"silver":      "#c0c0c0",
	"maroon":      "#800000",
	"olive":       "#808000",
	"navy":        "#000080",
	"purple":      "#800080",
	"teal":        "#008080",
	"orange":      "#ffa500",
	"pink":        "#ffc0cb",
	"hotpink":     "#ff69b4",
	"brown":       "#a52a2a",
	"gold":        "#ffd700",
	"indigo":      "#4b0082",
	"violet":      "#ee82ee",
	"coral":       "#ff7f50",
	"salmon":      "#fa8072",
	"tomato":      "#ff6347",
	"crimson":     "#dc143c",
	"orchid":      "#da70d6",
	"plum":        "#dda0dd",
	"khaki":       "#f0e68c",
	"beige":       "#f5f5dc",
	"ivory":       "#fffff0",
	"lavender":    "#e6e6fa",
	"turquoise":   "#40e0d0",
	"skyblue":     "#87ceeb",
	"steelblue":   "#4682b4",
	"royalblue":   "#4169e1",
	"dodgerblue":  "#1e90ff",
	"slategray":   "#708090",
	"darkgray":    "#a9a9a9",
	"lightgray":   "#d3d3d3",
	"lightblue":   "#add8e6",
	"lightgreen":  "#90ee90",
	"darkblue":    "#00008b",
	"darkgreen":   "#006400",
	"darkred":     "#8b0000",
	"chocolate":   "#d2691e",
	"tan":         "#d2b48c",
	"seagreen":    "#2e8b57",
	"limegreen":   "#32cd32",
	"forestgreen": "#228b22",
	"whitesmoke":  "#f5f5f5",
	"gainsboro":   "#dcdcdc",
}

// ParseColor converts a single CSS color value into a terminal color.
// Supported forms: named colors, #rgb, #rrggbb, rgb()/rgba(), hsl()/hsla().
// Alpha is ignored; "transparent", "currentColor" and "inherit" are not colors here.
func ParseColor(value string) (lipgloss.TerminalColor, bool) {
	c, ok := parseColorful(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return nil, false
	}
	return lipgloss.Color(c.Clamped().Hex()), true
}

// FindColor returns the first color token inside a compound value such as a
// border shorthand ("2px solid #3b82f6") or a gradient.
func FindColor(value string) (lipgloss.TerminalColor, bool) {
	for _, tok := range colorTokens(value) {
		if c, ok := ParseColor(tok); ok {
			return c, true
		}
	}
	return nil, false
}

func parseColorful(v string) (colorful.Color, bool) {
	if hex, ok := namedColors[v]; ok {
		v = hex
	}

	switch {
	case strings.HasPrefix(v, "#"):
		if len(v) != 4 && len(v) != 7 {
			return colorful.Color{}, false
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true

	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba("):
		args, ok := funcArgs(v)
		if !ok || len(args) < 3 {
			return colorful.Color{}, false
		}
		var rgb [3]float64
		for i := 0; i < 3; i++ {
			f, ok := channel(args[i], 255)
			if !ok {
				return colorful.Color{}, false
			}
			rgb[i] = f
		}
		return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true

	case strings.HasPrefix(v, "hsl(") || strings.HasPrefix(v, "hsla("):
		args, ok := funcArgs(v)
		if !ok || len(args) < 3 {
			return colorful.Color{}, false
		}
		h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return colorful.Color{}, false
		}
		s, ok1 := channel(args[1], 100)
		l, ok2 := channel(args[2], 100)
		if !ok1 || !ok2 {
			return colorful.Color{}, false
		}
		return colorful.Hsl(h, s, l), true
	}

	return colorful.Color{}, false
}

// funcArgs splits "name(a, b, c)" or "name(a b c / d)" into its arguments
func funcArgs(v string) ([]string, bool) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return nil, false
	}
	inner := v[open+1 : len(v)-1]
	args := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == '\t'
	})
	return args, true
}

// channel parses a color component into 0..1. Percentages are relative to
// 100%, plain numbers to scale.
func channel(s string, scale float64) (float64, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return clamp01(f / 100), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clamp01(f / scale), true
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// colorTokens splits a value on whitespace and commas at parenthesis depth 0,
// and descends into non-color functions such as linear-gradient().
func colorTokens(value string) []string {
	var tokens []string
	depth := 0
	start := 0
	flush := func(end int) {
		tok := strings.TrimSpace(value[start:end])
		if tok == "" {
			return
		}
		lower := strings.ToLower(tok)
		if open := strings.IndexByte(lower, '('); open > 0 && !isColorFunc(lower[:open]) {
			if strings.HasSuffix(tok, ")") {
				tokens = append(tokens, colorTokens(tok[open+1:len(tok)-1])...)
				return
			}
		}
		tokens = append(tokens, tok)
	}

	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ' ', '\t', '\n', ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(value))
	return tokens
}

func isColorFunc(name string) bool {
	switch name {
	case "rgb", "rgba", "hsl", "hsla":
		return true
	}
	return false
}
