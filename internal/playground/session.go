// Package playground holds the state of one playground view: the selected
// catalog entry, the free-form rule text and the preview surface it is applied to.
//
// A Session is owned by a single view and is not safe for concurrent use.
package playground

import (
	"github.com/yacobolo/cssplay/internal/catalog"
	"github.com/yacobolo/cssplay/internal/preview"
	"github.com/yacobolo/cssplay/internal/rules"
)

// Catalog is the lookup a session needs from the entry table
type Catalog interface {
	Lookup(id string) (catalog.Entry, bool)
}

// View is a point-in-time copy of what the playground shows
type View struct {
	Entry       *catalog.Entry `json:"entry,omitempty"`
	Input       string         `json:"input"`
	Directives  rules.StyleMap `json:"directives"`
	InlineStyle string         `json:"inlineStyle"`
}

// Session tracks the selection and the custom preview state
type Session struct {
	catalog  Catalog
	selected *catalog.Entry
	input    string
	surface  *preview.Surface
}

// New returns a session with nothing selected
func New(cat Catalog) *Session {
	return &Session{
		catalog: cat,
		surface: preview.NewSurface(),
	}
}

// Select shows the entry with the given id and resets the custom input and
// directives. Unknown ids leave the session untouched and return false.
func (s *Session) Select(id string) bool {
	entry, ok := s.catalog.Lookup(id)
	if !ok {
		return false
	}
	s.selected = &entry
	s.resetCustom()
	return true
}

// Clear hides the selected entry and resets the custom state
func (s *Session) Clear() {
	s.selected = nil
	s.resetCustom()
}

func (s *Session) resetCustom() {
	s.input = ""
	s.surface.Reset()
}

// SetInput replaces the free-form rule text. Nothing is applied until Apply.
func (s *Session) SetInput(text string) {
	s.input = text
}

// Input returns the current free-form rule text
func (s *Session) Input() string {
	return s.input
}

// Apply parses the current input and projects it onto the preview surface,
// replacing whatever was applied before.
func (s *Session) Apply() rules.StyleMap {
	m := rules.Parse(s.input)
	s.surface.Project(m)
	return m
}

// Selected returns the selected entry, if any
func (s *Session) Selected() (catalog.Entry, bool) {
	if s.selected == nil {
		return catalog.Entry{}, false
	}
	return *s.selected, true
}

// Directives returns a copy of the directives applied to the preview surface
func (s *Session) Directives() rules.StyleMap {
	return s.surface.Directives()
}

// Surface exposes the preview surface for rendering
func (s *Session) Surface() *preview.Surface {
	return s.surface
}

// Snapshot copies the current state
func (s *Session) Snapshot() View {
	v := View{
		Input:       s.input,
		Directives:  s.surface.Directives(),
		InlineStyle: s.surface.InlineStyle(),
	}
	if s.selected != nil {
		e := *s.selected
		v.Entry = &e
	}
	return v
}
