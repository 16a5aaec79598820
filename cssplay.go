// Package cssplay parses CSS declaration text into style maps and projects
// them onto preview surfaces for a property playground.
//
// # Parsing
//
// Rule text becomes a map keyed by camelCase property names. Values that are
// nothing but ASCII digits become numbers; everything else stays text:
//
//	styles := cssplay.Parse("font-size: 20px; z-index: 10")
//	// {"fontSize": "20px", "zIndex": 10}
//
// Parsing never fails. Fragments without a colon, or with an empty name or
// value, are skipped.
//
// # Catalog
//
// The built-in catalog groups demo entries by category. Overlay YAML files can
// add or replace entries:
//
//	cat, stats, err := cssplay.LoadCatalog(cssplay.CatalogConfig{
//		Includes: []string{"catalog.d/**/*.yaml"},
//	})
//
// # Preview
//
// A Surface holds the directives applied to a custom preview box. Applying a
// new map replaces the previous one wholesale:
//
//	surface := cssplay.NewSurface()
//	surface.Project(cssplay.Parse("color: tomato; padding: 16px"))
//	fmt.Println(surface.Render("Custom preview", cssplay.DefaultPreviewOptions()))
//
// # CLI Tool
//
// cssplay also provides a CLI with a terminal playground, a web server and a
// catalog linter. Install with:
//
//	go install github.com/yacobolo/cssplay/cmd/cssplay@latest
package cssplay

import (
	"github.com/yacobolo/cssplay/internal/catalog"
	"github.com/yacobolo/cssplay/internal/lint"
	"github.com/yacobolo/cssplay/internal/preview"
	"github.com/yacobolo/cssplay/internal/rules"
)

type (
	// StyleMap maps camelCase property names to values
	StyleMap = rules.StyleMap
	// Value is a style value: a number or text
	Value = rules.Value
	// Declaration is one property/value pair in source order
	Declaration = rules.Declaration

	// Catalog is the immutable entry table
	Catalog = catalog.Catalog
	// Entry is one catalog record
	Entry = catalog.Entry
	// CatalogConfig controls overlay discovery
	CatalogConfig = catalog.Config
	// LoadStats reports what overlay discovery did
	LoadStats = catalog.LoadStats

	// Surface is a preview target that directives are applied to
	Surface = preview.Surface
	// PreviewOptions maps CSS lengths onto terminal cells
	PreviewOptions = preview.Options

	// LintConfig controls catalog linting
	LintConfig = lint.Config
	// LintResult contains the issues found in a catalog
	LintResult = lint.Result
)

// Parse converts declaration text into a fresh, non-nil StyleMap
func Parse(text string) StyleMap {
	return rules.Parse(text)
}

// ParseDeclarations returns the raw declarations in source order, duplicates included
func ParseDeclarations(text string) []Declaration {
	return rules.ParseDeclarations(text)
}

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() *Catalog {
	return catalog.Default()
}

// LoadCatalog returns the built-in catalog extended by overlay files.
// On error the returned catalog is still usable; it lacks the broken overlays.
func LoadCatalog(config CatalogConfig) (*Catalog, LoadStats, error) {
	return catalog.Load(config)
}

// NewSurface returns an empty preview surface
func NewSurface() *Surface {
	return preview.NewSurface()
}

// DefaultPreviewOptions returns the cell metrics of a typical terminal font
func DefaultPreviewOptions() PreviewOptions {
	return preview.DefaultOptions()
}

// InlineStyle renders a style map as an HTML style attribute value
func InlineStyle(m StyleMap) string {
	return preview.InlineStyle(m)
}

// Lint checks every entry of cat
func Lint(cat *Catalog, config LintConfig) *LintResult {
	return lint.Lint(cat, config)
}
