package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Sidebar
	sidebarStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(lipgloss.Color("8")).PaddingRight(1)
	categoryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	itemStyle       = lipgloss.NewStyle().PaddingLeft(2)
	cursorItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true).PaddingLeft(1)
	activeItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).PaddingLeft(2)

	// Detail pane
	detailStyle       = lipgloss.NewStyle().PaddingLeft(2)
	titleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Underline(true)
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	ruleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	previewFrameStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)

	// Footer
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)
