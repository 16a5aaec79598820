// Package rules parses free-form CSS declaration text into style maps.
//
// Parsing is best effort: malformed declarations are dropped one by one and the
// rest of the block still parses. Nothing in this package returns an error.
package rules

import (
	"sort"
	"strings"
)

// Declaration is one "name: value" pair as typed, both parts trimmed
type Declaration struct {
	Property string // Raw property name: "font-size"
	Value    string // Raw value text: "20px"
}

// StyleMap maps a camelCase property identifier to its value.
// Keys are unique; later declarations overwrite earlier ones.
type StyleMap map[string]Value

// Parse converts a declaration block into a StyleMap.
// The result is always a fresh, non-nil map.
func Parse(text string) StyleMap {
	styles := make(StyleMap)
	for _, decl := range ParseDeclarations(text) {
		styles[CamelCase(decl.Property)] = Coerce(decl.Value)
	}
	return styles
}

// ParseDeclarations splits a declaration block on ';' and each candidate on its
// first ':'. Candidates without a colon, or with an empty name or value after
// trimming, are skipped. Order and duplicates are preserved.
func ParseDeclarations(text string) []Declaration {
	var decls []Declaration
	for _, candidate := range strings.Split(text, ";") {
		name, value, ok := strings.Cut(candidate, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		decls = append(decls, Declaration{Property: name, Value: value})
	}
	return decls
}

// CamelCase turns every "-x" (x an ASCII lowercase letter) into "X".
// Hyphens followed by anything else are kept: "font--size" -> "font-Size".
func CamelCase(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' && i+1 < len(name) && isLower(name[i+1]) {
			b.WriteByte(name[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// KebabCase is the inverse adapter of CamelCase for surfaces that expect CSS
// property names: "fontSize" -> "font-size".
func KebabCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// Keys returns the map keys in sorted order
func (m StyleMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the map
func (m StyleMap) Clone() StyleMap {
	out := make(StyleMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Equal reports whether both maps hold the same keys and values
func (m StyleMap) Equal(other StyleMap) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		if ov, ok := other[k]; !ok || !ov.Equal(v) {
			return false
		}
	}
	return true
}

// CSS renders the map back as declaration text in sorted key order:
// "font-size: 20px; z-index: 10;"
func (m StyleMap) CSS() string {
	if len(m) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m))
	for _, k := range m.Keys() {
		parts = append(parts, KebabCase(k)+": "+m[k].String()+";")
	}
	return strings.Join(parts, " ")
}
