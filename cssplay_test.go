package cssplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	styles := Parse("font-size: 20px; z-index: 10")

	require.Len(t, styles, 2)
	assert.Equal(t, "20px", styles["fontSize"].String())
	assert.True(t, styles["zIndex"].IsNumber())
	assert.Equal(t, "font-size:20px;z-index:10", InlineStyle(styles))
}

func TestParseDeclarations(t *testing.T) {
	decls := ParseDeclarations("color: red; color: blue")

	require.Len(t, decls, 2)
	assert.Equal(t, "blue", decls[1].Value)
}

func TestSurface(t *testing.T) {
	surface := NewSurface()
	surface.Project(Parse("color: tomato"))
	surface.Project(Parse("padding: 16px"))

	assert.Equal(t, []string{"padding"}, surface.Directives().Keys())
	assert.NotEmpty(t, surface.Render("Custom preview", DefaultPreviewOptions()))
}

func TestLoadCatalog_Default(t *testing.T) {
	cat, stats, err := LoadCatalog(CatalogConfig{})
	require.NoError(t, err)

	assert.Same(t, DefaultCatalog(), cat)
	assert.Zero(t, stats.FilesLoaded)

	result := Lint(cat, LintConfig{})
	assert.Zero(t, result.ErrorCount)
	assert.Equal(t, cat.Len(), result.EntriesChecked)
}
