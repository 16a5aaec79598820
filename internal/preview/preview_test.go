package preview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssplay/internal/rules"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  lipgloss.TerminalColor
		ok    bool
	}{
		{name: "named", value: "red", want: lipgloss.Color("#ff0000"), ok: true},
		{name: "named mixed case", value: " Navy ", want: lipgloss.Color("#000080"), ok: true},
		{name: "short hex", value: "#fff", want: lipgloss.Color("#ffffff"), ok: true},
		{name: "long hex", value: "#3B82F6", want: lipgloss.Color("#3b82f6"), ok: true},
		{name: "rgb", value: "rgb(255, 0, 0)", want: lipgloss.Color("#ff0000"), ok: true},
		{name: "rgba ignores alpha", value: "rgba(0,0,255,0.5)", want: lipgloss.Color("#0000ff"), ok: true},
		{name: "rgb percent", value: "rgb(100%, 0%, 0%)", want: lipgloss.Color("#ff0000"), ok: true},
		{name: "hsl", value: "hsl(0, 100%, 50%)", want: lipgloss.Color("#ff0000"), ok: true},
		{name: "bad hex length", value: "#abcd", ok: false},
		{name: "unknown name", value: "blurple", ok: false},
		{name: "transparent", value: "transparent", ok: false},
		{name: "empty", value: "", ok: false},
		{name: "rgb too few args", value: "rgb(1,2)", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.value)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFindColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  lipgloss.TerminalColor
		ok    bool
	}{
		{name: "border shorthand", value: "2px solid #3b82f6", want: lipgloss.Color("#3b82f6"), ok: true},
		{name: "color function kept whole", value: "1px dashed rgb(0, 128, 0)", want: lipgloss.Color("#008000"), ok: true},
		{name: "gradient", value: "linear-gradient(to right, red, blue)", want: lipgloss.Color("#ff0000"), ok: true},
		{name: "no color", value: "1px solid", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindColor(tt.value)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStyle_TextDirectives(t *testing.T) {
	opts := DefaultOptions()

	s := Style(lipgloss.NewStyle(), rules.Parse(
		"color: red; background-color: #000; font-weight: 700; font-style: italic; text-decoration: underline line-through; opacity: 0.6",
	), opts)

	assert.Equal(t, lipgloss.Color("#ff0000"), s.GetForeground())
	assert.Equal(t, lipgloss.Color("#000000"), s.GetBackground())
	assert.True(t, s.GetBold())
	assert.True(t, s.GetItalic())
	assert.True(t, s.GetUnderline())
	assert.True(t, s.GetStrikethrough())
	assert.True(t, s.GetFaint())
}

func TestStyle_FontWeight(t *testing.T) {
	tests := []struct {
		value string
		bold  bool
	}{
		{value: "bold", bold: true},
		{value: "bolder", bold: true},
		{value: "600", bold: true},
		{value: "400", bold: false},
		{value: "normal", bold: false},
		{value: "heavy", bold: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := Style(lipgloss.NewStyle(), rules.Parse("font-weight: "+tt.value), DefaultOptions())
			assert.Equal(t, tt.bold, s.GetBold())
		})
	}
}

func TestStyle_TextTransform(t *testing.T) {
	tests := []struct {
		value string
		input string
		want  string
	}{
		{value: "uppercase", input: "hello world", want: "HELLO WORLD"},
		{value: "lowercase", input: "Hello World", want: "hello world"},
		{value: "capitalize", input: "hello world", want: "Hello World"},
		{value: "none", input: "hello", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := Style(lipgloss.NewStyle(), rules.Parse("text-transform: "+tt.value), DefaultOptions())
			assert.Equal(t, tt.want, s.Render(tt.input))
		})
	}
}

func TestStyle_BoxDirectives(t *testing.T) {
	opts := Options{CellWidthPx: 8, CellHeightPx: 16}

	tests := []struct {
		name   string
		css    string
		top    int
		right  int
		bottom int
		left   int
	}{
		{name: "single value", css: "padding: 16px", top: 1, right: 2, bottom: 1, left: 2},
		{name: "two values", css: "padding: 0 8px", top: 0, right: 1, bottom: 0, left: 1},
		{name: "three values", css: "padding: 32px 16px 16px", top: 2, right: 2, bottom: 1, left: 2},
		{name: "four values", css: "padding: 16px 8px 32px 24px", top: 1, right: 1, bottom: 2, left: 3},
		{name: "rem", css: "padding: 1rem", top: 1, right: 2, bottom: 1, left: 2},
		{name: "longhand overrides shorthand", css: "padding: 16px; padding-left: 0", top: 1, right: 2, bottom: 1, left: 0},
		{name: "bare number", css: "padding-top: 32", top: 2},
		{name: "auto collapses", css: "padding: auto", top: 0, right: 0, bottom: 0, left: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Style(lipgloss.NewStyle(), rules.Parse(tt.css), opts)
			top, right, bottom, left := s.GetPadding()
			assert.Equal(t, []int{tt.top, tt.right, tt.bottom, tt.left}, []int{top, right, bottom, left})
		})
	}
}

func TestStyle_Dimensions(t *testing.T) {
	s := Style(lipgloss.NewStyle(), rules.Parse("width: 80px; height: 2em; max-width: 100000px; margin-top: 16px"), DefaultOptions())

	assert.Equal(t, 10, s.GetWidth())
	assert.Equal(t, 2, s.GetHeight())
	assert.Equal(t, maxCells, s.GetMaxWidth())
	assert.Equal(t, 1, s.GetMarginTop())
}

func TestStyle_TextAlign(t *testing.T) {
	s := Style(lipgloss.NewStyle(), rules.Parse("text-align: center"), DefaultOptions())
	assert.Equal(t, lipgloss.Center, s.GetAlignHorizontal())
}

func TestStyle_Borders(t *testing.T) {
	tests := []struct {
		name string
		base lipgloss.Style
		css  string
		want lipgloss.Border
	}{
		{name: "thin solid", base: lipgloss.NewStyle(), css: "border: 1px solid red", want: lipgloss.NormalBorder()},
		{name: "thick", base: lipgloss.NewStyle(), css: "border: 4px solid red", want: lipgloss.ThickBorder()},
		{name: "double", base: lipgloss.NewStyle(), css: "border: 3px double blue", want: lipgloss.DoubleBorder()},
		{name: "none removes base border", base: BoxStyle, css: "border: none", want: lipgloss.Border{}},
		{name: "zero removes base border", base: BoxStyle, css: "border: 0", want: lipgloss.Border{}},
		{name: "radius rounds", base: BoxStyle, css: "border-radius: 8px", want: lipgloss.RoundedBorder()},
		{name: "zero radius keeps corners", base: BoxStyle, css: "border-radius: 0", want: lipgloss.NormalBorder()},
		{name: "border style", base: lipgloss.NewStyle(), css: "border-style: double", want: lipgloss.DoubleBorder()},
		{name: "outline used without border", base: lipgloss.NewStyle(), css: "outline: 2px solid green", want: lipgloss.NormalBorder()},
		{name: "border wins over outline", base: lipgloss.NewStyle(), css: "border: 5px solid; outline: none", want: lipgloss.ThickBorder()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Style(tt.base, rules.Parse(tt.css), DefaultOptions())
			assert.Equal(t, tt.want, s.GetBorderStyle())
		})
	}
}

func TestStyle_BorderColor(t *testing.T) {
	s := Style(lipgloss.NewStyle(), rules.Parse("border: 2px solid #3b82f6"), DefaultOptions())
	assert.Equal(t, lipgloss.Color("#3b82f6"), s.GetBorderTopForeground())
}

func TestStyle_IgnoresUnknown(t *testing.T) {
	base := lipgloss.NewStyle()
	s := Style(base, rules.Parse("transform: rotate(15deg); filter: blur(2px); color: notacolor"), DefaultOptions())
	assert.Equal(t, "plain", s.Render("plain"))
	assert.Equal(t, lipgloss.NoColor{}, s.GetForeground())
}

func TestSurface_ProjectReplaces(t *testing.T) {
	s := NewSurface()
	require.Empty(t, s.Directives())

	s.Project(rules.Parse("color: red; padding: 10px"))
	require.Len(t, s.Directives(), 2)

	// A second projection replaces, it does not merge
	s.Project(rules.Parse("margin: 0"))
	assert.Equal(t, rules.StyleMap{"margin": rules.String("0")}, s.Directives())

	s.Reset()
	assert.Empty(t, s.Directives())
}

func TestSurface_ProjectIdempotent(t *testing.T) {
	m := rules.Parse("font-size: 20px; z-index: 10")

	s := NewSurface()
	s.Project(m)
	first := s.Directives()
	s.Project(m)

	assert.True(t, first.Equal(s.Directives()))
}

func TestSurface_DirectivesAreCopies(t *testing.T) {
	m := rules.Parse("color: red")
	s := NewSurface()
	s.Project(m)

	m["color"] = rules.String("blue")
	got := s.Directives()
	got["extra"] = rules.String("x")

	assert.Equal(t, rules.StyleMap{"color": rules.String("red")}, s.Directives())
}

func TestSurface_Render(t *testing.T) {
	opts := DefaultOptions()

	t.Run("default box", func(t *testing.T) {
		s := NewSurface()
		out := s.Render("hi", opts)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[1], "hi")
	})

	t.Run("display none", func(t *testing.T) {
		s := NewSurface()
		s.Project(rules.Parse("display: none"))
		assert.Equal(t, "", s.Render("hi", opts))
	})

	t.Run("visibility hidden keeps size", func(t *testing.T) {
		s := NewSurface()
		visible := s.Render("hi", opts)
		s.Project(rules.Parse("visibility: hidden"))
		out := s.Render("hi", opts)
		assert.Equal(t, len(strings.Split(visible, "\n")), len(strings.Split(out, "\n")))
		assert.Empty(t, strings.TrimSpace(out))
	})

	t.Run("visibility hidden keeps colored width", func(t *testing.T) {
		profile := lipgloss.ColorProfile()
		lipgloss.SetColorProfile(termenv.TrueColor)
		t.Cleanup(func() { lipgloss.SetColorProfile(profile) })

		s := NewSurface()
		s.Project(rules.Parse("color: red; background: #336699"))
		visible := s.Render("Custom preview", opts)
		require.Contains(t, visible, "\x1b[", "colors are emitted")

		s.Project(rules.Parse("color: red; background: #336699; visibility: hidden"))
		hidden := s.Render("Custom preview", opts)
		assert.Equal(t, lipgloss.Width(visible), lipgloss.Width(hidden))
		assert.Equal(t, lipgloss.Height(visible), lipgloss.Height(hidden))
		assert.NotContains(t, hidden, "\x1b[")
		assert.Empty(t, strings.TrimSpace(hidden))
	})

	t.Run("padding grows box", func(t *testing.T) {
		s := NewSurface()
		s.Project(rules.Parse("padding: 16px"))
		assert.Len(t, strings.Split(s.Render("hi", opts), "\n"), 5)
	})
}

func TestInlineStyle(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want string
	}{
		{name: "empty", css: "", want: ""},
		{name: "string values", css: "font-size: 20px; color: red", want: "color:red;font-size:20px"},
		{name: "unitless number", css: "z-index: 10", want: "z-index:10"},
		{name: "length number gets px", css: "width: 200", want: "width:200px"},
		{name: "zero stays bare", css: "margin: 0", want: "margin:0"},
		{name: "breakout characters dropped", css: `content: "x"</style>`, want: "content:x/style"},
		{name: "vendor prefix", css: "-webkit-box-shadow: none", want: "-webkit-box-shadow:none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InlineStyle(rules.Parse(tt.css)))
		})
	}
}

func TestRenderMarkup(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "plain paragraph",
			markup: `<p style="font-size:20px;">20px text</p>`,
			want:   "20px text",
		},
		{
			name:   "inherited transform",
			markup: `<p style="text-transform:uppercase">hello <b>world</b></p>`,
			want:   "HELLO WORLD",
		},
		{
			name:   "blocks break lines",
			markup: `<div>one</div><div>two</div>`,
			want:   "one\ntwo",
		},
		{
			name:   "br",
			markup: `<p>a<br>b</p>`,
			want:   "a\nb",
		},
		{
			name:   "img alt",
			markup: `<img src="x.png" alt="A cat" style="object-fit:cover">`,
			want:   "[A cat]",
		},
		{
			name:   "display none hides subtree",
			markup: `<p>shown<span style="display:none">hidden <b>deep</b></span></p>`,
			want:   "shown",
		},
		{
			name:   "entities decoded",
			markup: `<p>a &amp; b &lt;c&gt;</p>`,
			want:   "a & b <c>",
		},
		{
			name:   "whitespace collapsed",
			markup: "<p>\n   lots   of\n space </p>",
			want:   "lots of space",
		},
		{
			name:   "list items",
			markup: `<ul><li>one</li><li>two</li></ul>`,
			want:   "• one\n• two",
		},
		{
			name:   "style contents skipped",
			markup: `<style>p { color: red }</style><p>x</p>`,
			want:   "x",
		},
		{
			name:   "stray end tag ignored",
			markup: `<p>a</span>b</p>`,
			want:   "ab",
		},
		{
			name:   "checkbox",
			markup: `<input type="checkbox" checked> ok`,
			want:   "[x] ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMarkup(tt.markup, DefaultOptions()))
		})
	}
}
