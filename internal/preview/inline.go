package preview

import (
	"strings"

	"github.com/yacobolo/cssplay/internal/rules"
)

// unitless lists the properties whose numeric values are emitted without "px".
// Every other numeric value is a length in pixels, matching how browser-side
// style objects treat bare numbers.
var unitless = map[string]bool{
	"zIndex":                  true,
	"opacity":                 true,
	"fontWeight":              true,
	"lineHeight":              true,
	"flex":                    true,
	"flexGrow":                true,
	"flexShrink":              true,
	"order":                   true,
	"zoom":                    true,
	"orphans":                 true,
	"widows":                  true,
	"columnCount":             true,
	"gridRow":                 true,
	"gridColumn":              true,
	"animationIterationCount": true,
}

// InlineStyle renders a style map as an HTML style attribute value:
// "font-size:20px;z-index:10". Keys are converted back to CSS names and emitted
// in sorted order. Characters that could break out of a declaration are dropped.
func InlineStyle(m rules.StyleMap) string {
	parts := make([]string, 0, len(m))
	for _, key := range m.Keys() {
		v := m[key]
		value := v.String()
		if v.IsNumber() && !unitless[key] && value != "0" {
			value += "px"
		}
		parts = append(parts, sanitize(rules.KebabCase(key))+":"+sanitize(value))
	}
	return strings.Join(parts, ";")
}

// sanitize strips characters that would end the declaration or the attribute
func sanitize(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '"', '<', '>', '{', '}':
			return -1
		}
		return r
	}, v)
}
