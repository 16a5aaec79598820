package preview

import (
	stdhtml "html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"

	"github.com/yacobolo/cssplay/internal/rules"
)

// textKeys are the directives that apply to runs of text inside markup.
// Box directives (padding, border, width) only apply to the preview box itself.
var textKeys = map[string]bool{
	"color":              true,
	"background":         true,
	"backgroundColor":    true,
	"fontWeight":         true,
	"fontStyle":          true,
	"textDecoration":     true,
	"textDecorationLine": true,
	"textTransform":      true,
	"opacity":            true,
	"visibility":         true,
}

// blockTags start on a fresh line and end one
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "header": true,
	"footer": true, "main": true, "aside": true, "nav": true, "ul": true,
	"ol": true, "li": true, "pre": true, "blockquote": true, "table": true,
	"tr": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "figure": true, "form": true,
}

// voidTags never have content or an end tag
var voidTags = map[string]bool{
	"br": true, "img": true, "input": true, "hr": true, "meta": true,
	"link": true, "source": true, "wbr": true, "col": true, "area": true,
}

// rawTags hold text that is never displayed
var rawTags = map[string]bool{
	"style": true, "script": true, "template": true, "head": true, "title": true,
}

// frame is one open element
type frame struct {
	tag    string
	styles rules.StyleMap // Text directives inherited by content
	hidden bool           // display: none on this element or an ancestor
	pre    bool           // Whitespace is preserved
}

// markupRenderer renders a markup fragment as styled terminal text
type markupRenderer struct {
	opts  Options
	stack []frame
	out   strings.Builder
	bol   bool // At beginning of line
}

// RenderMarkup renders a trusted catalog preview fragment for the terminal.
// Inline style attributes are parsed with rules.Parse and cascade onto nested
// content. Block elements break lines, <br> is a newline and <img> shows its alt
// text. Malformed markup is rendered as far as the lexer gets.
func RenderMarkup(markup string, opts Options) string {
	r := &markupRenderer{
		opts:  opts.normalized(),
		stack: []frame{{styles: rules.StyleMap{}}},
		bol:   true,
	}

	lexer := html.NewLexer(parse.NewInputString(markup))

	// Tag whose attributes are being read
	var (
		pending      string
		pendingAttrs map[string]string
	)

	for {
		tt, data := lexer.Next()
		switch tt {
		case html.ErrorToken:
			// ErrorToken at EOF is normal - just stop
			return r.finish()

		case html.StartTagToken:
			pending = string(lexer.Text())
			pendingAttrs = make(map[string]string)

		case html.AttributeToken:
			if pending != "" {
				pendingAttrs[string(lexer.AttrKey())] = attrValue(lexer.AttrVal())
			}

		case html.StartTagCloseToken, html.StartTagVoidToken:
			if pending == "" {
				continue
			}
			if voidTags[pending] || tt == html.StartTagVoidToken {
				r.void(pending, pendingAttrs)
			} else {
				r.open(pending, pendingAttrs)
			}
			pending = ""

		case html.EndTagToken:
			r.close(string(lexer.Text()))

		case html.TextToken:
			r.text(string(data))
		}
	}
}

// attrValue strips the quotes the lexer keeps and decodes entities
func attrValue(raw []byte) string {
	v := string(raw)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	return stdhtml.UnescapeString(v)
}

func (r *markupRenderer) top() frame {
	return r.stack[len(r.stack)-1]
}

// inherit merges an element's own style attribute into its parent's text styles
func (r *markupRenderer) inherit(attrs map[string]string) (rules.StyleMap, rules.StyleMap) {
	own := rules.Parse(attrs["style"])
	merged := r.top().styles.Clone()
	for k, v := range own {
		if textKeys[k] {
			merged[k] = v
		}
	}
	return merged, own
}

func (r *markupRenderer) open(tag string, attrs map[string]string) {
	parent := r.top()
	styles, own := r.inherit(attrs)
	f := frame{
		tag:    tag,
		styles: styles,
		hidden: parent.hidden || rawTags[tag] || IsRemoved(own),
		pre:    parent.pre || tag == "pre",
	}
	if blockTags[tag] && !f.hidden {
		r.newline()
		if tag == "li" {
			r.write("• ", styles)
		}
	}
	r.stack = append(r.stack, f)
}

func (r *markupRenderer) close(tag string) {
	// Pop up to the matching element; stray end tags are ignored
	for i := len(r.stack) - 1; i > 0; i-- {
		if r.stack[i].tag != tag {
			continue
		}
		hidden := r.stack[i].hidden
		r.stack = r.stack[:i]
		if blockTags[tag] && !hidden {
			r.newline()
		}
		return
	}
}

func (r *markupRenderer) void(tag string, attrs map[string]string) {
	if r.top().hidden {
		return
	}
	styles, own := r.inherit(attrs)
	if IsRemoved(own) {
		return
	}

	switch tag {
	case "br":
		r.out.WriteByte('\n')
		r.bol = true
	case "hr":
		r.newline()
		r.write(strings.Repeat("─", 20), styles)
		r.newline()
	case "img":
		alt := attrs["alt"]
		if alt == "" {
			alt = "image"
		}
		r.write("["+alt+"]", styles)
	case "input":
		switch strings.ToLower(attrs["type"]) {
		case "checkbox":
			if _, checked := attrs["checked"]; checked {
				r.write("[x]", styles)
			} else {
				r.write("[ ]", styles)
			}
		default:
			r.write("["+attrs["value"]+"]", styles)
		}
	}
}

func (r *markupRenderer) text(raw string) {
	f := r.top()
	if f.hidden {
		return
	}
	text := stdhtml.UnescapeString(raw)
	if !f.pre {
		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			return
		}
		// Keep a separating space when the raw text started or ended with one
		if !r.bol && startsWithSpace(raw) {
			text = " " + text
		}
		if endsWithSpace(raw) {
			text += " "
		}
	}
	r.write(text, f.styles)
}

func (r *markupRenderer) write(text string, styles rules.StyleMap) {
	if text == "" {
		return
	}
	if r.bol {
		text = strings.TrimLeft(text, " ")
	}
	if IsInvisible(styles) {
		text = blank(text)
	}
	rendered := text
	if len(styles) > 0 {
		rendered = Style(lipgloss.NewStyle(), styles, r.opts).Render(text)
	}
	r.out.WriteString(rendered)
	r.bol = strings.HasSuffix(text, "\n")
}

// newline ends the current line unless already at the start of one
func (r *markupRenderer) newline() {
	if !r.bol {
		r.out.WriteByte('\n')
		r.bol = true
	}
}

func (r *markupRenderer) finish() string {
	lines := strings.Split(r.out.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " ")
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

func startsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r\f", rune(s[0]))
}

func endsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r\f", rune(s[len(s)-1]))
}
