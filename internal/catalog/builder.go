package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// builder accumulates entries from several sources before freezing them
type builder struct {
	entries    map[string]Entry
	categories []Category
	index      map[string]int // category name -> position in categories
}

func newBuilder() *builder {
	return &builder{
		entries: make(map[string]Entry),
		index:   make(map[string]int),
	}
}

// seed copies an existing catalog into the builder
func (b *builder) seed(c *Catalog) {
	for _, cat := range c.categories {
		for _, id := range cat.IDs {
			// Entries of a valid catalog always pass add
			_ = b.add(c.entries[id])
		}
	}
}

// merge decodes a YAML document and adds its entries.
// Entries replacing an existing id keep their original position unless the
// category changes.
func (b *builder) merge(data []byte, source string) error {
	var doc file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode %s: %w", source, err)
	}

	for _, cat := range doc.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return fmt.Errorf("%s: category without a name", source)
		}
		for i, e := range cat.Entries {
			e.Category = name
			e.Source = source
			if err := b.add(e); err != nil {
				return fmt.Errorf("%s: %s entry %d: %w", source, name, i+1, err)
			}
		}
	}
	return nil
}

// add validates and inserts a single entry
func (b *builder) add(e Entry) error {
	e.ID = strings.TrimSpace(e.ID)
	switch {
	case e.ID == "":
		return errors.New("entry has no id")
	case strings.TrimSpace(e.Rule) == "":
		return fmt.Errorf("entry %q has no rule", e.ID)
	case strings.TrimSpace(e.Category) == "":
		return fmt.Errorf("entry %q has no category", e.ID)
	}
	if e.Title == "" {
		e.Title = e.ID
	}

	if prev, exists := b.entries[e.ID]; exists {
		b.entries[e.ID] = e
		if prev.Category == e.Category {
			return nil
		}
		b.removeFromCategory(prev.Category, e.ID)
	}
	b.entries[e.ID] = e

	pos, ok := b.index[e.Category]
	if !ok {
		pos = len(b.categories)
		b.index[e.Category] = pos
		b.categories = append(b.categories, Category{Name: e.Category})
	}
	b.categories[pos].IDs = append(b.categories[pos].IDs, e.ID)
	return nil
}

func (b *builder) removeFromCategory(name, id string) {
	pos, ok := b.index[name]
	if !ok {
		return
	}
	ids := b.categories[pos].IDs
	for i, v := range ids {
		if v == id {
			b.categories[pos].IDs = append(ids[:i:i], ids[i+1:]...)
			return
		}
	}
}

// build freezes the builder into a Catalog, dropping categories left empty
func (b *builder) build() *Catalog {
	c := &Catalog{entries: b.entries}
	for _, cat := range b.categories {
		if len(cat.IDs) > 0 {
			c.categories = append(c.categories, cat)
		}
	}
	return c
}
