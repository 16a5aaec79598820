// Package catalog holds the read-only table of CSS property examples.
//
// The built-in table is embedded from data/catalog.yaml and decoded once per
// process. Overlay files can add or replace entries (see Load).
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/sahilm/fuzzy"
)

// EmbeddedSource is the Source value of entries that come from the built-in table
const EmbeddedSource = "embedded:catalog.yaml"

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// Entry is one catalog record, keyed by the property it demonstrates
type Entry struct {
	ID          string `yaml:"id" json:"id"`                   // "font-size"
	Title       string `yaml:"title" json:"title"`             // "font-size"
	Description string `yaml:"description" json:"description"` // Markdown allowed
	Rule        string `yaml:"rule" json:"rule"`               // Canonical declaration text
	Preview     string `yaml:"preview" json:"preview"`         // Trusted markup fragment
	Category    string `yaml:"-" json:"category"`
	Source      string `yaml:"-" json:"source"` // File the entry was loaded from
}

// Category is a named, ordered group of entry ids
type Category struct {
	Name string
	IDs  []string
}

// Catalog is an immutable lookup table of entries.
// It is safe for concurrent reads.
type Catalog struct {
	entries    map[string]Entry
	categories []Category
}

// file is the on-disk layout shared by the embedded table and overlays
type file struct {
	Categories []struct {
		Name    string  `yaml:"name"`
		Entries []Entry `yaml:"entries"`
	} `yaml:"categories"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide built-in catalog.
// It panics if the embedded table is invalid, which tests guard against.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := decode(embeddedCatalog, EmbeddedSource)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded table: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// New builds a catalog from already-categorized entries. Entries are placed in
// the category named by their Category field, in the order given.
func New(entries []Entry) (*Catalog, error) {
	b := newBuilder()
	for _, e := range entries {
		if err := b.add(e); err != nil {
			return nil, err
		}
	}
	return b.build(), nil
}

// decode parses one YAML document into a fresh catalog
func decode(data []byte, source string) (*Catalog, error) {
	b := newBuilder()
	if err := b.merge(data, source); err != nil {
		return nil, err
	}
	return b.build(), nil
}

// Lookup returns the entry for id, if any
func (c *Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Categories returns the categories in display order
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, IDs: append([]string(nil), cat.IDs...)}
	}
	return out
}

// Entries returns every entry in category order, then sidebar order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, cat := range c.categories {
		for _, id := range cat.IDs {
			out = append(out, c.entries[id])
		}
	}
	return out
}

// InCategory returns the entries of one category, or nil if it does not exist
func (c *Catalog) InCategory(name string) []Entry {
	for _, cat := range c.categories {
		if cat.Name != name {
			continue
		}
		out := make([]Entry, 0, len(cat.IDs))
		for _, id := range cat.IDs {
			out = append(out, c.entries[id])
		}
		return out
	}
	return nil
}

// Search fuzzy-matches query against entry ids and titles, best match first.
// An empty query returns every entry in display order.
func (c *Catalog) Search(query string) []Entry {
	all := c.Entries()
	if query == "" {
		return all
	}

	names := make([]string, len(all))
	for i, e := range all {
		names[i] = SearchKey(e)
	}

	matches := fuzzy.Find(query, names)
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out
}

// SearchKey is the text fuzzy search runs against: the id plus the title
// when it says something the id does not.
func SearchKey(e Entry) string {
	if e.Title == "" || e.Title == e.ID {
		return e.ID
	}
	return e.ID + " " + e.Title
}
