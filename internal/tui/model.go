// Package tui is the interactive terminal playground: a category sidebar, the
// selected entry with its rendered preview, and an editor whose rule text is
// applied to a custom preview box.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/yacobolo/cssplay/internal/catalog"
	"github.com/yacobolo/cssplay/internal/playground"
	"github.com/yacobolo/cssplay/internal/preview"
)

const (
	sidebarWidth  = 28
	defaultWidth  = 100
	defaultHeight = 30
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeEdit
)

// Options configures the model
type Options struct {
	Logger  *zap.Logger     // Defaults to a nop logger
	Preview preview.Options // Cell metrics for projected lengths
}

// Model is the bubbletea model of the playground
type Model struct {
	session *playground.Session
	logger  *zap.Logger
	opts    preview.Options

	items    []catalog.Entry // Catalog order
	filtered []int           // Indexes into items
	cursor   int

	mode        mode
	searchQuery string
	search      textinput.Model
	editor      textarea.Model

	status        string
	width, height int
}

// New returns a model over the given catalog with nothing selected
func New(cat *catalog.Catalog, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	search := textinput.New()
	search.Placeholder = "filter..."
	search.CharLimit = 64

	editor := textarea.New()
	editor.Placeholder = "color: tomato; padding: 16px; border: 2px solid teal;"
	editor.ShowLineNumbers = false
	editor.SetHeight(4)

	m := Model{
		session: playground.New(cat),
		logger:  logger,
		opts:    opts.Preview,
		items:   cat.Entries(),
		search:  search,
		editor:  editor,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.applyFilter()
	m.resize()
	return m
}

// Run starts the playground and blocks until the user quits or ctx is done
func Run(ctx context.Context, cat *catalog.Catalog, opts Options) error {
	p := tea.NewProgram(New(cat, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.searchQuery)
		cmd := m.search.Focus()
		return m, cmd

	case "enter":
		if e, ok := m.current(); ok {
			m.selectEntry(e.ID)
		}

	case "tab":
		if _, ok := m.session.Selected(); ok {
			m.mode = modeEdit
			m.status = ""
			cmd := m.editor.Focus()
			return m, cmd
		}
		m.status = "select an entry first"

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.applyFilter()
			return m, nil
		}
		m.session.Clear()
		m.editor.Reset()
		m.status = ""
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.searchQuery = ""
		m.search.SetValue("")
		m.search.Blur()
		m.applyFilter()
		return m, nil

	case "enter":
		m.mode = modeList
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.searchQuery = m.search.Value()
	m.applyFilter()
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.editor.Blur()
		return m, nil

	case "ctrl+s":
		m.session.SetInput(m.editor.Value())
		applied := m.session.Apply()
		m.status = fmt.Sprintf("applied %d declaration(s)", len(applied))
		m.logger.Info("applied custom rule",
			zap.Int("declarations", len(applied)),
			zap.String("css", applied.CSS()))
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// selectEntry selects id and resets the editor along with the session state
func (m *Model) selectEntry(id string) {
	if !m.session.Select(id) {
		return
	}
	m.editor.Reset()
	m.status = ""
	m.logger.Debug("selected entry", zap.String("entry", id))
}

func (m *Model) applyFilter() {
	if m.searchQuery == "" {
		m.filtered = make([]int, len(m.items))
		for i := range m.items {
			m.filtered[i] = i
		}
	} else {
		names := make([]string, len(m.items))
		for i, e := range m.items {
			names[i] = catalog.SearchKey(e)
		}
		matches := fuzzy.Find(m.searchQuery, names)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m Model) current() (catalog.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return catalog.Entry{}, false
	}
	return m.items[m.filtered[m.cursor]], true
}

func (m *Model) resize() {
	w := m.detailWidth() - 2
	m.editor.SetWidth(max(w, 20))
	m.search.Width = sidebarWidth - 4
}

func (m Model) detailWidth() int {
	return max(m.width-sidebarWidth-4, 30)
}

// View implements tea.Model
func (m Model) View() string {
	bodyHeight := max(m.height-2, 5)

	sidebar := sidebarStyle.Height(bodyHeight).Render(m.viewSidebar(bodyHeight))
	detail := detailStyle.Width(m.detailWidth()).Render(m.viewDetail())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, detail)

	return body + "\n" + m.viewFooter()
}

func (m Model) viewSidebar(height int) string {
	var lines []string
	if m.mode == modeSearch {
		lines = append(lines, "/"+m.search.View())
	} else if m.searchQuery != "" {
		lines = append(lines, filterStyle.Render("filter: "+m.searchQuery))
	}

	selected, hasSelected := m.session.Selected()
	lastCategory := ""
	var rows []string
	cursorRow := 0
	for i, idx := range m.filtered {
		e := m.items[idx]
		if m.searchQuery == "" && e.Category != lastCategory {
			rows = append(rows, categoryStyle.Render(truncate.StringWithTail(e.Category, sidebarWidth, "…")))
			lastCategory = e.Category
		}
		name := truncate.StringWithTail(e.Title, sidebarWidth-3, "…")
		switch {
		case i == m.cursor:
			cursorRow = len(rows)
			rows = append(rows, cursorItemStyle.Render("›"+name))
		case hasSelected && e.ID == selected.ID:
			rows = append(rows, activeItemStyle.Render(name))
		default:
			rows = append(rows, itemStyle.Render(name))
		}
	}
	if len(rows) == 0 {
		rows = append(rows, helpStyle.Render("no matches"))
	}

	start, end := visibleRange(cursorRow, len(rows), height-len(lines))
	lines = append(lines, rows[start:end]...)
	return strings.Join(lines, "\n")
}

// visibleRange returns the window of rows to show so the cursor stays visible
func visibleRange(cursor, total, height int) (int, int) {
	if height <= 0 {
		return 0, 0
	}
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	start = max(0, min(start, total-height))
	return start, start + height
}

func (m Model) viewDetail() string {
	entry, ok := m.session.Selected()
	if !ok {
		return helpStyle.Render("Select a property with enter.")
	}

	width := m.detailWidth() - 2
	var b strings.Builder

	b.WriteString(titleStyle.Render(entry.Title) + "\n\n")
	b.WriteString(wordwrap.String(entry.Description, width) + "\n\n")

	b.WriteString(labelStyle.Render("Preview") + "\n")
	b.WriteString(previewFrameStyle.Render(preview.RenderMarkup(entry.Preview, m.opts)) + "\n\n")

	b.WriteString(labelStyle.Render("Rule") + "\n")
	b.WriteString(ruleStyle.Render(entry.Rule) + "\n\n")

	b.WriteString(labelStyle.Render("Your CSS") + "\n")
	b.WriteString(m.editor.View() + "\n\n")

	b.WriteString(labelStyle.Render("Custom preview") + "\n")
	if out := m.session.Surface().Render("Custom preview", m.opts); out != "" {
		b.WriteString(out)
	} else {
		b.WriteString(helpStyle.Render("(display: none)"))
	}
	return b.String()
}

func (m Model) viewFooter() string {
	var help string
	switch m.mode {
	case modeSearch:
		help = "type to filter  enter:done  esc:clear"
	case modeEdit:
		help = "ctrl+s:apply  esc:back"
	default:
		help = "↑/↓:move  enter:select  /:filter  tab:edit  esc:clear  q:quit"
	}
	footer := helpStyle.Render(help)
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	return footer
}
