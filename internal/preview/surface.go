// Package preview projects parsed style maps onto display surfaces.
//
// A Surface owns the directive set of one preview box. Every projection replaces
// that set wholesale; nothing accumulates between calls. Directives are never
// validated: each rendering target (terminal or HTML) decides what it can show.
package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yacobolo/cssplay/internal/rules"
)

// BoxStyle is the look of the custom preview box before any directive applies
var BoxStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#dddddd")).
	Padding(0, 1)

// Surface is a preview box holding the currently applied directives
type Surface struct {
	directives rules.StyleMap
}

// NewSurface returns a surface with no directives applied
func NewSurface() *Surface {
	return &Surface{directives: rules.StyleMap{}}
}

// Project replaces the whole directive set with a copy of m
func (s *Surface) Project(m rules.StyleMap) {
	s.directives = m.Clone()
}

// Reset clears every applied directive
func (s *Surface) Reset() {
	s.directives = rules.StyleMap{}
}

// Directives returns a copy of the applied directive set
func (s *Surface) Directives() rules.StyleMap {
	return s.directives.Clone()
}

// Render draws content inside the preview box with the directives applied.
// "display: none" renders nothing; "visibility: hidden" keeps the box size but
// blanks its content.
func (s *Surface) Render(content string, opts Options) string {
	if IsRemoved(s.directives) {
		return ""
	}
	out := Style(BoxStyle, s.directives, opts).Render(content)
	if IsInvisible(s.directives) {
		return blank(out)
	}
	return out
}

// InlineStyle renders the directives as an HTML style attribute value
func (s *Surface) InlineStyle() string {
	return InlineStyle(s.directives)
}
