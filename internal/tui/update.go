package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oratioflow/prayerwall/internal/logger"
	"github.com/oratioflow/prayerwall/internal/model"
)

// Init sets up cursor blinking for the text inputs
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeForm:
			return m.updateForm(msg)
		case ModeComment:
			return m.updateComment(msg)
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeUsers:
			return m.handleUsersKeys(msg)
		case ModeConfirmDelete:
			return m.handleConfirmKeys(msg)
		case ModeDetail:
			return m.handleDetailKeys(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneSidebar {
			m.pane = PaneList
		} else {
			m.pane = PaneSidebar
		}

	case key.Matches(msg, keys.Left):
		m.pane = PaneSidebar

	case key.Matches(msg, keys.Right):
		m.pane = PaneList

	case key.Matches(msg, keys.Up):
		m.handleUp()

	case key.Matches(msg, keys.Down):
		m.handleDown()

	case key.Matches(msg, keys.Enter):
		if m.pane == PaneSidebar {
			m.pane = PaneList
		} else if r := m.currentRequest(); r != nil {
			m.detailID = r.ID
			m.mode = ModeDetail
		}

	case key.Matches(msg, keys.Add):
		return m.startAdd()

	case key.Matches(msg, keys.Edit):
		return m.startEdit()

	case key.Matches(msg, keys.Delete):
		return m.startDelete()

	case key.Matches(msg, keys.Comment):
		return m.startComment()

	case key.Matches(msg, keys.Search):
		return m.startSearch()

	case msg.String() == "1", msg.String() == "2", msg.String() == "3", msg.String() == "4":
		m.handleSetStatus(msg.String())

	case key.Matches(msg, keys.Users):
		return m.startUsers()

	case key.Matches(msg, keys.Bell):
		m.showNotifications = !m.showNotifications

	case key.Matches(msg, keys.Refresh):
		m.handleRefresh()

	case key.Matches(msg, keys.Escape):
		m.handleEscape()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Logout):
		return m.handleLogout()
	}

	return m, nil
}

func (m *Model) handleUp() {
	if m.pane == PaneSidebar {
		if m.filterCursor > 0 {
			m.filterCursor--
			m.reqCursor = 0
		}
	} else if m.reqCursor > 0 {
		m.reqCursor--
	}
}

func (m *Model) handleDown() {
	if m.pane == PaneSidebar {
		if m.filterCursor < len(model.Statuses) {
			m.filterCursor++
			m.reqCursor = 0
		}
	} else if m.reqCursor < len(m.visible())-1 {
		m.reqCursor++
	}
}

func (m *Model) handleEscape() {
	switch {
	case m.errText != "":
		m.errText = ""
	case m.wall.Searching():
		if err := m.wall.ClearSearch(context.Background()); err != nil {
			m.errText = err.Error()
			return
		}
		m.reqCursor = 0
		m.message = "Search cleared"
	case m.message != "":
		m.message = ""
	}
}

func (m *Model) handleRefresh() {
	if err := m.wall.Reload(context.Background()); err != nil {
		m.errText = err.Error()
		return
	}
	m.clampCursors()
	m.message = "Refreshed"
}

func (m Model) handleLogout() (tea.Model, tea.Cmd) {
	if err := m.session.Logout(); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	logger.Info("Logged out from TUI")
	return m, tea.Quit
}

// handleSetStatus applies one of the four lifecycle states to the selected
// request. Keys 1-4 follow the sidebar order. Admin only; the server would
// reject it anyway, this just gives a clearer message.
func (m *Model) handleSetStatus(digit string) {
	if !m.user.IsAdmin {
		m.errText = "Only administrators can change a request's status"
		return
	}
	r := m.selectedRequest()
	if r == nil {
		return
	}
	status := model.Statuses[int(digit[0]-'1')]
	if err := m.wall.SetStatus(context.Background(), r.ID, status); err != nil {
		m.errText = err.Error()
		return
	}
	m.clampCursors()
	m.message = fmt.Sprintf("Status set to %s", status)
}

// selectedRequest is the detail request when in detail mode, otherwise the
// one under the list cursor.
func (m *Model) selectedRequest() *model.Request {
	if m.mode == ModeDetail {
		if r, ok := m.wall.Get(m.detailID); ok {
			return r
		}
		return nil
	}
	return m.currentRequest()
}

// --- add/edit form ---

func (m Model) startAdd() (tea.Model, tea.Cmd) {
	m.form.reset()
	m.form.name.SetValue(m.user.DisplayName())
	m.mode = ModeForm
	return m, m.focusField(fieldTitle)
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	r := m.selectedRequest()
	if r == nil {
		return m, nil
	}
	if !r.CanEdit(m.user) {
		m.errText = "Only the creator or an admin can edit this request"
		return m, nil
	}
	m.form.load(r)
	m.mode = ModeForm
	return m, m.focusField(fieldTitle)
}

// focusField moves focus to one form field and blurs the rest.
func (m *Model) focusField(field int) tea.Cmd {
	m.form.focus = field
	m.form.title.Blur()
	m.form.description.Blur()
	m.form.name.Blur()
	m.form.phone.Blur()
	m.form.email.Blur()

	switch field {
	case fieldTitle:
		return m.form.title.Focus()
	case fieldDescription:
		return m.form.description.Focus()
	case fieldName:
		return m.form.name.Focus()
	case fieldPhone:
		return m.form.phone.Focus()
	default:
		return m.form.email.Focus()
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.errText = ""
		return m, nil

	case "tab", "down":
		// The textarea needs down for navigation within the text, so only
		// tab advances from there.
		if msg.String() == "down" && m.form.focus == fieldDescription {
			break
		}
		return m, m.focusField((m.form.focus + 1) % fieldCount)

	case "shift+tab", "up":
		if msg.String() == "up" && m.form.focus == fieldDescription {
			break
		}
		return m, m.focusField((m.form.focus + fieldCount - 1) % fieldCount)

	case "enter":
		// Enter stays a newline inside the description; elsewhere it
		// advances, submitting from the last field.
		if m.form.focus == fieldDescription {
			break
		}
		if m.form.focus == fieldEmail {
			return m.submitForm()
		}
		return m, m.focusField(m.form.focus + 1)

	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case fieldDescription:
		m.form.description, cmd = m.form.description.Update(msg)
	case fieldName:
		m.form.name, cmd = m.form.name.Update(msg)
	case fieldPhone:
		m.form.phone, cmd = m.form.phone.Update(msg)
	case fieldEmail:
		m.form.email, cmd = m.form.email.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft := m.form.draft()
	if err := draft.Validate(); err != nil {
		m.errText = err.Error()
		return m, nil
	}

	ctx := context.Background()
	if m.form.editID != nil {
		updated, err := m.wall.Update(ctx, *m.form.editID, draft)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.message = fmt.Sprintf("Request %q updated", updated.Title)
	} else {
		created, err := m.wall.Create(ctx, draft)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.message = fmt.Sprintf("Request %q submitted", created.Title)
	}

	m.errText = ""
	m.clampCursors()
	if m.form.editID != nil && m.detailID == *m.form.editID {
		m.mode = ModeDetail
	} else {
		m.mode = ModeNormal
	}
	return m, nil
}

// --- comment composer ---

func (m Model) startComment() (tea.Model, tea.Cmd) {
	r := m.selectedRequest()
	if r == nil {
		return m, nil
	}
	m.commentForID = r.ID
	m.comment.SetValue("")
	m.mode = ModeComment
	return m, m.comment.Focus()
}

func (m Model) updateComment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.comment.Blur()
		m.mode = ModeNormal
		if m.detailID == m.commentForID {
			m.mode = ModeDetail
		}
		return m, nil

	case "ctrl+s":
		if _, err := m.wall.Comment(context.Background(), m.commentForID, m.comment.Value()); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.comment.Blur()
		m.message = "Comment added"
		m.mode = ModeNormal
		if m.detailID == m.commentForID {
			m.mode = ModeDetail
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	return m, cmd
}

// --- server search ---

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.search.SetValue("")
	m.mode = ModeSearch
	return m, m.search.Focus()
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Blur()
		m.mode = ModeNormal
		return m, nil

	case "enter":
		// Server-authoritative search; the sidebar selection rides along
		// as the status constraint, "all" meaning none.
		term := m.search.Value()
		if err := m.wall.Search(context.Background(), term, m.filterStatus()); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.search.Blur()
		m.reqCursor = 0
		m.mode = ModeNormal
		m.message = fmt.Sprintf("%d result(s), esc to clear", len(m.wall.Requests()))
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// --- delete confirmation ---

func (m Model) startDelete() (tea.Model, tea.Cmd) {
	r := m.selectedRequest()
	if r == nil {
		return m, nil
	}
	if !r.CanEdit(m.user) {
		m.errText = "Only the creator or an admin can delete this request"
		return m, nil
	}
	m.deleteTarget = r.ID
	if !m.cfg.ConfirmDelete {
		return m.doDelete()
	}
	m.mode = ModeConfirmDelete
	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.doDelete()
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m Model) doDelete() (tea.Model, tea.Cmd) {
	if err := m.wall.Delete(context.Background(), m.deleteTarget); err != nil {
		m.errText = err.Error()
		m.mode = ModeNormal
		return m, nil
	}
	if m.detailID == m.deleteTarget {
		m.detailID = 0
	}
	m.clampCursors()
	m.mode = ModeNormal
	m.message = "Request deleted"
	return m, nil
}

// --- detail ---

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Comment):
		return m.startComment()

	case key.Matches(msg, keys.Edit):
		return m.startEdit()

	case key.Matches(msg, keys.Delete):
		return m.startDelete()

	case msg.String() == "1", msg.String() == "2", msg.String() == "3", msg.String() == "4":
		m.handleSetStatus(msg.String())

	case key.Matches(msg, keys.Refresh):
		m.handleRefresh()
	}
	return m, nil
}

// --- user administration ---

func (m Model) startUsers() (tea.Model, tea.Cmd) {
	if !m.user.IsAdmin {
		m.errText = "Only administrators can manage users"
		return m, nil
	}
	users, err := m.wall.Client().ListUsers(context.Background())
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.users = users
	m.userCursor = 0
	m.mode = ModeUsers
	return m, nil
}

func (m Model) handleUsersKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
		m.mode = ModeNormal

	case key.Matches(msg, keys.Up):
		if m.userCursor > 0 {
			m.userCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.userCursor < len(m.users)-1 {
			m.userCursor++
		}

	case key.Matches(msg, keys.Enter), msg.String() == "t":
		if m.userCursor >= len(m.users) {
			break
		}
		target := m.users[m.userCursor]
		updated, err := m.wall.Client().ToggleAdmin(context.Background(), target.ID)
		if err != nil {
			m.errText = err.Error()
			break
		}
		m.users[m.userCursor] = *updated
		if updated.IsAdmin {
			m.message = fmt.Sprintf("%s is now an administrator", updated.Username)
		} else {
			m.message = fmt.Sprintf("%s is now a regular member", updated.Username)
		}
	}
	return m, nil
}
