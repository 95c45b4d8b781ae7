package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/oratioflow/prayerwall/internal/config"
	"github.com/oratioflow/prayerwall/internal/logger"
	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/oratioflow/prayerwall/internal/session"
	"github.com/oratioflow/prayerwall/internal/wall"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneSidebar Pane = iota
	PaneList
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeDetail
	ModeForm
	ModeComment
	ModeSearch
	ModeUsers
	ModeConfirmDelete
	ModeHelp
)

// Form field order: title, description, requester name, phone, email.
const (
	fieldTitle = iota
	fieldDescription
	fieldName
	fieldPhone
	fieldEmail
	fieldCount
)

// requestForm is the add/edit dialog state. editID is nil when adding.
type requestForm struct {
	title       textinput.Model
	description textarea.Model
	name        textinput.Model
	phone       textinput.Model
	email       textinput.Model
	focus       int
	editID      *int64
}

// Model is the main TUI model
type Model struct {
	wall    *wall.Wall
	session *session.Session
	user    *model.User
	cfg     *config.Config

	// UI state
	width  int
	height int
	pane   Pane
	mode   Mode

	filterCursor int // 0 = all, 1..4 = the four statuses
	reqCursor    int

	detailID int64

	form requestForm

	comment      textarea.Model
	commentForID int64

	search       textinput.Model
	searchStatus model.Status

	users      []model.User
	userCursor int

	showNotifications bool
	deleteTarget      int64

	message string
	errText string
}

// NewModel creates the TUI over an already-verified session.
func NewModel(w *wall.Wall, sess *session.Session, user *model.User, cfg *config.Config) Model {
	logger.Info("Initializing TUI model")

	search := textinput.New()
	search.Placeholder = "Search the wall..."
	search.CharLimit = 128
	search.Width = 40

	comment := textarea.New()
	comment.Placeholder = "Share an update, testimony or word of encouragement..."
	comment.CharLimit = 1000
	comment.SetWidth(50)
	comment.SetHeight(4)

	m := Model{
		wall:    w,
		session: sess,
		user:    user,
		cfg:     cfg,
		pane:    PaneList,
		mode:    ModeNormal,
		search:  search,
		comment: comment,
		form:    newRequestForm(),
	}

	if err := m.wall.Reload(context.Background()); err != nil {
		m.errText = "Failed to load the wall: " + err.Error()
		logger.Error("Initial load failed", logger.F("error", err))
	}

	logger.Debug("TUI model initialized", logger.F("requests", len(m.wall.Requests())))
	return m
}

func newRequestForm() requestForm {
	title := textinput.New()
	title.Placeholder = "Ex: Health of the family"
	title.CharLimit = 120
	title.Width = 46

	description := textarea.New()
	description.Placeholder = "Describe the prayer request..."
	description.CharLimit = 2000
	description.SetWidth(46)
	description.SetHeight(3)

	name := textinput.New()
	name.Placeholder = "Requester name"
	name.CharLimit = 80
	name.Width = 46

	phone := textinput.New()
	phone.Placeholder = "Phone (optional)"
	phone.CharLimit = 32
	phone.Width = 46

	email := textinput.New()
	email.Placeholder = "Email (optional)"
	email.CharLimit = 120
	email.Width = 46

	return requestForm{
		title:       title,
		description: description,
		name:        name,
		phone:       phone,
		email:       email,
	}
}

// reset clears the form for a fresh add dialog.
func (f *requestForm) reset() {
	f.title.SetValue("")
	f.description.SetValue("")
	f.name.SetValue("")
	f.phone.SetValue("")
	f.email.SetValue("")
	f.focus = fieldTitle
	f.editID = nil
}

// load fills the form from an existing request for editing.
func (f *requestForm) load(r *model.Request) {
	f.title.SetValue(r.Title)
	f.description.SetValue(r.Description)
	f.name.SetValue(r.RequesterName)
	f.phone.SetValue(r.RequesterPhone)
	f.email.SetValue(r.RequesterEmail)
	f.focus = fieldTitle
	id := r.ID
	f.editID = &id
}

// draft collects the form values.
func (f *requestForm) draft() model.Draft {
	return model.Draft{
		Title:          f.title.Value(),
		Description:    f.description.Value(),
		RequesterName:  f.name.Value(),
		RequesterPhone: f.phone.Value(),
		RequesterEmail: f.email.Value(),
	}
}

// filterStatus maps the sidebar cursor to a display filter.
func (m *Model) filterStatus() model.Status {
	if m.filterCursor == 0 || m.filterCursor > len(model.Statuses) {
		return model.StatusAll
	}
	return model.Statuses[m.filterCursor-1]
}

// visible is the list pane's content: the local display filter applied to
// whatever the wall currently holds (full collection or search result).
func (m *Model) visible() []model.Request {
	return m.wall.Visible(m.filterStatus())
}

// currentRequest returns the request under the cursor.
func (m *Model) currentRequest() *model.Request {
	visible := m.visible()
	if m.reqCursor < len(visible) {
		return &visible[m.reqCursor]
	}
	return nil
}

func (m *Model) clampCursors() {
	if n := len(m.visible()); m.reqCursor >= n {
		m.reqCursor = 0
	}
}
