package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/oratioflow/prayerwall/internal/model"
)

// Color palette
var (
	// Status colors
	ColorPending  = lipgloss.Color("#FFE66D") // Yellow
	ColorInPrayer = lipgloss.Color("#4ECDC4") // Teal
	ColorAnswered = lipgloss.Color("#95E1A3") // Green
	ColorArchived = lipgloss.Color("#6C757D") // Gray
	ColorError    = lipgloss.Color("#FF6B6B") // Red

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	// Sidebar
	SidebarStyle = lipgloss.NewStyle().
			Width(24).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(Border).
			Padding(1, 1)

	// Request list
	ListStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Sidebar items
	FilterItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	FilterItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	// Request items
	RequestItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	RequestItemSelectedStyle = lipgloss.NewStyle().
					Padding(0, 1).
					Background(Surface).
					Bold(true)

	ArchivedItemStyle = lipgloss.NewStyle().
				Foreground(TextMuted).
				Padding(0, 1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	// Input modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// StatusStyle returns the style for a request status
func StatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusPending:
		return lipgloss.NewStyle().Foreground(ColorPending)
	case model.StatusInPrayer:
		return lipgloss.NewStyle().Foreground(ColorInPrayer)
	case model.StatusAnswered:
		return lipgloss.NewStyle().Foreground(ColorAnswered)
	default:
		return lipgloss.NewStyle().Foreground(ColorArchived)
	}
}

// StatusBadge renders a colored status label
func StatusBadge(s model.Status) string {
	return StatusStyle(s).Bold(true).Render("● " + string(s))
}
