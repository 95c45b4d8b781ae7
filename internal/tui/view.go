package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/oratioflow/prayerwall/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var mainContent string
	switch m.mode {
	case ModeDetail:
		mainContent = m.renderDetail()
	case ModeUsers:
		mainContent = m.renderUsers()
	case ModeHelp:
		mainContent = m.renderHelp()
	default:
		sidebar := m.renderSidebar()
		list := m.renderList()
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, list)
	}

	// Modal overlays
	var modal string
	switch m.mode {
	case ModeForm:
		modal = m.renderForm()
	case ModeComment:
		modal = m.renderCommentModal()
	case ModeSearch:
		modal = m.renderSearchModal()
	case ModeConfirmDelete:
		modal = m.renderConfirmModal()
	}
	if modal != "" {
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.showNotifications && modal == "" && m.mode == ModeNormal {
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderNotifications(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusBar())
}

func (m Model) renderSidebar() string {
	sidebarWidth := 24
	stats := m.wall.Stats()
	var s string

	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("Prayerwall") + "\n"
	role := "member"
	if m.user.IsAdmin {
		role = "admin"
	}
	s += HelpStyle.Render(fmt.Sprintf("%s (%s)", truncate(m.user.DisplayName(), 14), role)) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render("───────────────────") + "\n\n"

	// The counts come from the server aggregate, not from the held list:
	// after a search the two can disagree and the aggregate wins.
	entries := []struct {
		label  string
		status model.Status
		count  int
	}{
		{"All", model.StatusAll, stats.Total},
		{"Pending", model.StatusPending, stats.Pending},
		{"In Prayer", model.StatusInPrayer, stats.InPrayer},
		{"Answered", model.StatusAnswered, stats.Answered},
		{"Archived", model.StatusArchived, stats.Archived},
	}

	for i, e := range entries {
		cursor := "  "
		style := FilterItemStyle
		if i == m.filterCursor {
			cursor = "❯ "
			if m.pane == PaneSidebar {
				style = FilterItemSelectedStyle
			}
		}
		label := e.label
		if e.status != model.StatusAll {
			label = StatusStyle(e.status).Render("●") + " " + label
		} else {
			label = "  " + label
		}
		s += style.Render(fmt.Sprintf("%s%-13s %3d", cursor, label, e.count)) + "\n"
	}

	s += "\n" + lipgloss.NewStyle().Foreground(Border).Render("───────────────────") + "\n"
	if n := m.wall.Feed().Len(); n > 0 {
		s += HelpStyle.Render(fmt.Sprintf("🔔 %d notification(s)", n)) + "\n"
	}
	s += HelpStyle.Render("b notifications")

	return SidebarStyle.Width(sidebarWidth).Height(m.height - 2).Render(s)
}

func (m Model) renderList() string {
	width := m.width - 26
	var s string

	header := "Prayer requests"
	if m.wall.Searching() {
		header = "Search results"
	}
	if st := m.filterStatus(); st != model.StatusAll {
		header += fmt.Sprintf(" / %s", st)
	}
	visible := m.visible()
	header += fmt.Sprintf(" (%d)", len(visible))

	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(1, width-4))) + "\n\n"

	if len(visible) == 0 {
		if m.wall.Searching() {
			s += HelpStyle.Render("  No matches. Press esc to clear the search.")
		} else {
			s += HelpStyle.Render("  No requests. Press 'a' to share one.")
		}
	}

	for i, r := range visible {
		cursor := "  "
		style := RequestItemStyle
		if i == m.reqCursor && m.pane == PaneList {
			cursor = "❯ "
			style = RequestItemSelectedStyle
		}
		if r.Status == model.StatusArchived {
			style = ArchivedItemStyle
		}

		comments := ""
		if n := len(r.Comments); n > 0 {
			comments = fmt.Sprintf(" 💬%d", n)
		}

		badge := StatusStyle(r.Status).Render("●")
		line := fmt.Sprintf("%s%s #%-4d %-*s %-12s %s%s",
			cursor, badge, r.ID,
			max(10, width-44), truncate(r.Title, max(10, width-44)),
			truncate(r.RequesterName, 12),
			r.CreatedAt.Format("Jan 2"), comments)
		s += style.Render(line) + "\n"
	}

	return ListStyle.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderDetail() string {
	r, ok := m.wall.Get(m.detailID)
	if !ok {
		return ListStyle.Width(m.width).Height(m.height - 2).Render("Request no longer exists. Press esc.")
	}

	width := m.width - 6
	var s string

	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(fmt.Sprintf("#%d  %s", r.ID, r.Title)) + "  " + StatusBadge(r.Status) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(1, width))) + "\n\n"

	for _, line := range wrap(r.Description, max(20, width-4)) {
		s += "  " + line + "\n"
	}
	s += "\n"

	s += HelpStyle.Render(fmt.Sprintf("  Requested by %s on %s", r.RequesterName, r.CreatedAt.Local().Format("2006-01-02"))) + "\n"
	contact := ""
	if r.RequesterPhone != "" {
		contact += "  📞 " + r.RequesterPhone
	}
	if r.RequesterEmail != "" {
		contact += "  ✉️ " + r.RequesterEmail
	}
	if contact != "" {
		s += HelpStyle.Render(contact) + "\n"
	}

	if len(r.Comments) > 0 {
		s += "\n" + lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("💬 Comments and testimonies (%d)", len(r.Comments))) + "\n\n"
		for _, c := range r.Comments {
			s += "  " + lipgloss.NewStyle().Bold(true).Render(c.Author) + HelpStyle.Render("  "+c.CreatedAt.Local().Format("Jan 2 15:04")) + "\n"
			for _, line := range wrap(c.Content, max(20, width-6)) {
				s += "    " + line + "\n"
			}
		}
	}

	s += "\n" + HelpStyle.Render("c:comment  e:edit  d:delete")
	if m.user.IsAdmin {
		s += HelpStyle.Render("  1-4:set status")
	}
	s += HelpStyle.Render("  esc:back")

	return ListStyle.Width(m.width).Height(m.height - 2).Render(s)
}

func (m Model) renderUsers() string {
	var s string
	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("Users") + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", 60)) + "\n\n"

	for i, u := range m.users {
		cursor := "  "
		style := RequestItemStyle
		if i == m.userCursor {
			cursor = "❯ "
			style = RequestItemSelectedStyle
		}
		role := "member"
		if u.IsAdmin {
			role = "⭐ admin"
		}
		line := fmt.Sprintf("%s%-16s %-24s %s", cursor, truncate(u.Username, 16), truncate(u.DisplayName(), 24), role)
		s += style.Render(line) + "\n"
	}

	s += "\n" + HelpStyle.Render("enter/t:toggle admin  esc:back")
	return ListStyle.Width(m.width).Height(m.height - 2).Render(s)
}

func (m Model) renderForm() string {
	title := "New prayer request"
	if m.form.editID != nil {
		title = fmt.Sprintf("Edit request #%d", *m.form.editID)
	}

	label := func(field int, text string) string {
		if m.form.focus == field {
			return lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(text)
		}
		return HelpStyle.Render(text)
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += label(fieldTitle, "Title/Subject") + "\n" + m.form.title.View() + "\n\n"
	content += label(fieldDescription, "Description") + "\n" + m.form.description.View() + "\n\n"
	content += label(fieldName, "Requester name") + "\n" + m.form.name.View() + "\n\n"
	content += label(fieldPhone, "Phone (optional)") + "\n" + m.form.phone.View() + "\n\n"
	content += label(fieldEmail, "Email (optional)") + "\n" + m.form.email.View() + "\n\n"

	if m.errText != "" {
		content += ErrorStyle.Render(m.errText) + "\n\n"
	}
	content += HelpStyle.Render("tab:next field  ctrl+s:save  esc:cancel")

	return ModalStyle.Render(content)
}

func (m Model) renderCommentModal() string {
	title := "Add comment"
	if r, ok := m.wall.Get(m.commentForID); ok {
		title = fmt.Sprintf("Comment on %q", truncate(r.Title, 30))
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n"
	content += HelpStyle.Render("Share an update or testimony about this request") + "\n\n"
	content += m.comment.View() + "\n\n"
	if m.errText != "" {
		content += ErrorStyle.Render(m.errText) + "\n\n"
	}
	content += HelpStyle.Render("ctrl+s:send  esc:cancel")

	return ModalStyle.Render(content)
}

func (m Model) renderSearchModal() string {
	content := lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("Search") + "\n"
	scope := "any status"
	if st := m.filterStatus(); st != model.StatusAll {
		scope = string(st)
	}
	content += HelpStyle.Render("Server search, "+scope) + "\n\n"
	content += "/" + m.search.View() + "\n\n"
	content += HelpStyle.Render("enter:search  esc:cancel")

	return ModalStyle.Width(55).Render(content)
}

func (m Model) renderConfirmModal() string {
	title := "Delete request?"
	if r, ok := m.wall.Get(m.deleteTarget); ok {
		title = fmt.Sprintf("Delete %q?", truncate(r.Title, 32))
	}

	content := lipgloss.NewStyle().Bold(true).Foreground(ColorError).Render(title) + "\n\n"
	content += "This cannot be undone.\n\n"
	content += HelpStyle.Render("y:delete  n/esc:cancel")

	return ModalStyle.Render(content)
}

func (m Model) renderNotifications() string {
	content := lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("Recent notifications") + "\n\n"

	items := m.wall.Feed().Items()
	if len(items) == 0 {
		content += HelpStyle.Render("No notifications") + "\n"
	}
	for _, n := range items {
		content += "• " + n.Message + "\n"
		content += HelpStyle.Render("  "+n.Timestamp.Format("15:04")) + "\n"
	}

	content += "\n" + HelpStyle.Render("b:close")
	return ModalStyle.Width(50).Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭──── Keyboard Shortcuts ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  j/↓     Move down         │
│  k/↑     Move up           │
│  h/l/Tab Switch pane       │
│  Enter   Open request      │
│                            │
│  Actions                   │
│  ───────                   │
│  a       Add request       │
│  e       Edit request      │
│  d       Delete request    │
│  c       Add comment       │
│  /       Server search     │
│  R       Refresh           │
│  b       Notifications     │
│                            │
│  Admin                     │
│  ─────                     │
│  1-4     Set status        │
│  U       Manage users      │
│                            │
│  Other                     │
│  ─────                     │
│  ?       Toggle help       │
│  L       Logout            │
│  q       Quit              │
│                            │
╰────────────────────────────╯

     Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}

func (m Model) renderStatusBar() string {
	help := "/:search  a:add  c:comment  e:edit  d:del  b:bell  ?:help  q:quit  L:logout"
	if m.user.IsAdmin {
		help = "/:search  a:add  c:comment  1-4:status  U:users  ?:help  q:quit  L:logout"
	}

	if m.errText != "" {
		return StatusBarStyle.Width(m.width).Render(ErrorStyle.Render("✗ " + truncate(m.errText, m.width-6) + "  (esc to dismiss)"))
	}
	if m.message != "" {
		help = m.message
	} else if m.wall.Searching() {
		help = "Showing search results (esc to clear)  |  " + help
	}

	return StatusBarStyle.Width(m.width).Render(help)
}
