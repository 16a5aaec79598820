package preview

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yacobolo/cssplay/internal/rules"
)

// Options controls how CSS lengths map onto terminal cells
type Options struct {
	CellWidthPx  int // Pixels per terminal column (default: 8)
	CellHeightPx int // Pixels per terminal row (default: 16)
}

// DefaultOptions returns the cell metrics of a typical terminal font
func DefaultOptions() Options {
	return Options{CellWidthPx: 8, CellHeightPx: 16}
}

func (o Options) normalized() Options {
	if o.CellWidthPx <= 0 {
		o.CellWidthPx = 8
	}
	if o.CellHeightPx <= 0 {
		o.CellHeightPx = 16
	}
	return o
}

const (
	// remPx is the root font size used for em/rem lengths
	remPx = 16
	// maxCells caps any projected length so absurd input cannot blow up rendering
	maxCells = 200
)

// Style applies the directives a terminal can express onto base.
// Keys are visited in sorted order, so longhands ("paddingLeft") override their
// shorthand ("padding"). Unrecognized keys and values are ignored.
func Style(base lipgloss.Style, m rules.StyleMap, opts Options) lipgloss.Style {
	opts = opts.normalized()
	s := base

	for _, key := range m.Keys() {
		v := m[key]
		text := strings.ToLower(v.Text())

		switch key {
		case "color":
			if c, ok := ParseColor(text); ok {
				s = s.Foreground(c)
			}
		case "background", "backgroundColor":
			if c, ok := FindColor(text); ok {
				s = s.Background(c)
			}

		case "fontWeight":
			if bold, ok := isBold(v); ok {
				s = s.Bold(bold)
			}
		case "fontStyle":
			s = s.Italic(text == "italic" || strings.HasPrefix(text, "oblique"))
		case "textDecoration", "textDecorationLine":
			s = s.Underline(strings.Contains(text, "underline")).
				Strikethrough(strings.Contains(text, "line-through"))
		case "textTransform":
			if fn := transformFor(text); fn != nil {
				s = s.Transform(fn)
			}
		case "textAlign":
			if pos, ok := alignFor(text); ok {
				s = s.Align(pos)
			}
		case "opacity":
			if f, err := strconv.ParseFloat(text, 64); err == nil {
				s = s.Faint(f < 1)
			}

		case "padding":
			if b, ok := parseBox(text, opts); ok {
				s = s.Padding(b.top, b.right, b.bottom, b.left)
			}
		case "paddingTop":
			if n, ok := cellsY(v, opts); ok {
				s = s.PaddingTop(n)
			}
		case "paddingRight":
			if n, ok := cellsX(v, opts); ok {
				s = s.PaddingRight(n)
			}
		case "paddingBottom":
			if n, ok := cellsY(v, opts); ok {
				s = s.PaddingBottom(n)
			}
		case "paddingLeft":
			if n, ok := cellsX(v, opts); ok {
				s = s.PaddingLeft(n)
			}
		case "margin":
			if b, ok := parseBox(text, opts); ok {
				s = s.Margin(b.top, b.right, b.bottom, b.left)
			}
		case "marginTop":
			if n, ok := cellsY(v, opts); ok {
				s = s.MarginTop(n)
			}
		case "marginRight":
			if n, ok := cellsX(v, opts); ok {
				s = s.MarginRight(n)
			}
		case "marginBottom":
			if n, ok := cellsY(v, opts); ok {
				s = s.MarginBottom(n)
			}
		case "marginLeft":
			if n, ok := cellsX(v, opts); ok {
				s = s.MarginLeft(n)
			}

		case "width", "minWidth":
			if n, ok := cellsX(v, opts); ok {
				s = s.Width(n)
			}
		case "maxWidth":
			if n, ok := cellsX(v, opts); ok {
				s = s.MaxWidth(n)
			}
		case "height", "minHeight":
			if n, ok := cellsY(v, opts); ok {
				s = s.Height(n)
			}

		case "border", "outline":
			if _, hasBorder := m["border"]; key == "outline" && hasBorder {
				continue
			}
			s = applyBorderShorthand(s, text)
		case "borderStyle":
			s = applyBorderStyle(s, text)
		case "borderColor":
			if c, ok := FindColor(text); ok {
				s = s.BorderForeground(c)
			}
		case "borderRadius":
			if !isZero(text) && s.GetBorderStyle() == lipgloss.NormalBorder() {
				s = s.BorderStyle(lipgloss.RoundedBorder())
			}
		}
	}

	return s
}

// IsRemoved reports whether the directives remove the box entirely (display: none)
func IsRemoved(m rules.StyleMap) bool {
	v, ok := m["display"]
	return ok && strings.EqualFold(v.Text(), "none")
}

// IsInvisible reports whether the box keeps its space but shows nothing
func IsInvisible(m rules.StyleMap) bool {
	v, ok := m["visibility"]
	return ok && strings.EqualFold(v.Text(), "hidden")
}

// blank replaces every visible cell with a space, keeping line layout.
// Escape sequences are dropped first so colored output keeps its width.
func blank(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		return ' '
	}, ansi.Strip(s))
}

func isBold(v rules.Value) (bool, bool) {
	switch strings.ToLower(v.Text()) {
	case "bold", "bolder":
		return true, true
	case "normal", "lighter":
		return false, true
	}
	f, err := strconv.ParseFloat(v.Text(), 64)
	if err != nil {
		return false, false
	}
	return f >= 600, true
}

func transformFor(text string) func(string) string {
	switch text {
	case "uppercase":
		return strings.ToUpper
	case "lowercase":
		return strings.ToLower
	case "capitalize":
		return cases.Title(language.Und).String
	}
	return nil
}

func alignFor(text string) (lipgloss.Position, bool) {
	switch text {
	case "left", "start", "justify":
		return lipgloss.Left, true
	case "center":
		return lipgloss.Center, true
	case "right", "end":
		return lipgloss.Right, true
	}
	return 0, false
}

// applyBorderShorthand handles "none", "0" and "<width> <style> <color>"
func applyBorderShorthand(s lipgloss.Style, text string) lipgloss.Style {
	if text == "none" || isZero(text) {
		return s.UnsetBorderStyle()
	}

	border := lipgloss.NormalBorder()
	for _, tok := range strings.Fields(text) {
		if px, ok := lengthPx(tok); ok && px >= 3 {
			border = lipgloss.ThickBorder()
		}
	}
	for _, tok := range strings.Fields(text) {
		if b, ok := borderFor(tok); ok {
			if b == (lipgloss.Border{}) {
				return s.UnsetBorderStyle()
			}
			if b == lipgloss.DoubleBorder() {
				border = b
			}
		}
	}
	s = s.BorderStyle(border)

	if c, ok := FindColor(text); ok {
		s = s.BorderForeground(c)
	}
	return s
}

func applyBorderStyle(s lipgloss.Style, text string) lipgloss.Style {
	b, ok := borderFor(text)
	if !ok {
		return s
	}
	if b == (lipgloss.Border{}) {
		return s.UnsetBorderStyle()
	}
	return s.BorderStyle(b)
}

// borderFor maps a CSS border-style keyword to a lipgloss border.
// The zero Border means "no border".
func borderFor(keyword string) (lipgloss.Border, bool) {
	switch keyword {
	case "none", "hidden":
		return lipgloss.Border{}, true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "solid", "dashed", "dotted", "groove", "ridge", "inset", "outset":
		return lipgloss.NormalBorder(), true
	}
	return lipgloss.Border{}, false
}

type box struct {
	top, right, bottom, left int
}

// parseBox reads a 1-4 value padding/margin the way the display surface does:
// top, right, bottom, left with the usual CSS fill-in rules.
func parseBox(text string, opts Options) (box, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || len(fields) > 4 {
		return box{}, false
	}

	px := make([]float64, len(fields))
	for i, f := range fields {
		p, ok := lengthPx(f)
		if !ok {
			// "auto" and percentages collapse to zero in a terminal
			p = 0
		}
		px[i] = p
	}

	var t, r, b, l float64
	switch len(px) {
	case 1:
		t, r, b, l = px[0], px[0], px[0], px[0]
	case 2:
		t, r, b, l = px[0], px[1], px[0], px[1]
	case 3:
		t, r, b, l = px[0], px[1], px[2], px[1]
	default:
		t, r, b, l = px[0], px[1], px[2], px[3]
	}

	return box{
		top:    toCells(t, opts.CellHeightPx),
		right:  toCells(r, opts.CellWidthPx),
		bottom: toCells(b, opts.CellHeightPx),
		left:   toCells(l, opts.CellWidthPx),
	}, true
}

func cellsX(v rules.Value, opts Options) (int, bool) {
	px, ok := valuePx(v)
	if !ok {
		return 0, false
	}
	return toCells(px, opts.CellWidthPx), true
}

func cellsY(v rules.Value, opts Options) (int, bool) {
	px, ok := valuePx(v)
	if !ok {
		return 0, false
	}
	return toCells(px, opts.CellHeightPx), true
}

func valuePx(v rules.Value) (float64, bool) {
	if f, ok := v.Float(); ok {
		return f, true
	}
	return lengthPx(strings.ToLower(v.Text()))
}

// lengthPx converts "12px", "1.5rem", "2em" or "0" into pixels
func lengthPx(s string) (float64, bool) {
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "rem"):
		s, scale = strings.TrimSuffix(s, "rem"), remPx
	case strings.HasSuffix(s, "em"):
		s, scale = strings.TrimSuffix(s, "em"), remPx
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f * scale, true
}

func toCells(px float64, cell int) int {
	return int(math.Min(math.Round(px/float64(cell)), maxCells))
}

func isZero(text string) bool {
	px, ok := lengthPx(text)
	return ok && px == 0
}
