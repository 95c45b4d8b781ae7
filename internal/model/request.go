package model

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a prayer request. Transitions are
// admin-controlled and always applied server-side.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusInPrayer Status = "In Prayer"
	StatusAnswered Status = "Answered"
	StatusArchived Status = "Archived"

	// StatusAll is the filter value meaning "no status constraint".
	// It is never a valid request status on the wire.
	StatusAll Status = "all"
)

// Statuses lists the four request states in lifecycle order.
var Statuses = []Status{StatusPending, StatusInPrayer, StatusAnswered, StatusArchived}

// ParseStatus matches s against the known states, case-insensitively and
// ignoring the space ("inprayer" and "In Prayer" both work).
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, st := range Statuses {
		if norm == strings.ToLower(strings.ReplaceAll(string(st), " ", "")) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (expected one of: Pending, In Prayer, Answered, Archived)", s)
}

// Valid reports whether s is one of the four request states.
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Request is a prayer request as held by the remote service. The client
// only ever keeps transient copies of these; the server is the source of
// truth for every field.
type Request struct {
	ID             int64     `json:"id"`
	Title          string    `json:"titulo"`
	Description    string    `json:"descricao"`
	RequesterName  string    `json:"nome_solicitante"`
	RequesterPhone string    `json:"celular_solicitante,omitempty"`
	RequesterEmail string    `json:"email_solicitante,omitempty"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"data_submissao"`
	CreatorUserID  int64     `json:"usuario_criador_id"`
	Comments       []Comment `json:"comentarios,omitempty"`
}

// Draft carries the user-editable fields of a request. The same shape is
// used for creation and for full-field updates.
type Draft struct {
	Title          string `json:"titulo"`
	Description    string `json:"descricao"`
	RequesterName  string `json:"nome_solicitante"`
	RequesterPhone string `json:"celular_solicitante,omitempty"`
	RequesterEmail string `json:"email_solicitante,omitempty"`
}

// Validate checks the required fields. Phone and email are optional.
func (d Draft) Validate() error {
	missing := []string{}
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(d.RequesterName) == "" {
		missing = append(missing, "requester name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required: %s", strings.Join(missing, ", "))
	}
	return nil
}

// CanEdit reports whether u may update or delete this request. The server
// enforces the same rule; this only drives what the UI offers.
func (r *Request) CanEdit(u *User) bool {
	if u == nil {
		return false
	}
	return u.IsAdmin || r.CreatorUserID == u.ID
}

// Comment is an entry on a request's append-only comment thread.
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"autor"`
	Content   string    `json:"conteudo"`
	CreatedAt time.Time `json:"data_comentario"`
}

// Statistics is the server-computed aggregate over request statuses. It is
// always fetched, never derived from the local list, since the local list
// may be a filtered search result.
type Statistics struct {
	Total    int `json:"total"`
	Pending  int `json:"pendentes"`
	InPrayer int `json:"em_oracao"`
	Answered int `json:"respondidos"`
	Archived int `json:"arquivados"`
}

// Count returns the aggregate bucket for a status, or Total for StatusAll.
func (s Statistics) Count(st Status) int {
	switch st {
	case StatusPending:
		return s.Pending
	case StatusInPrayer:
		return s.InPrayer
	case StatusAnswered:
		return s.Answered
	case StatusArchived:
		return s.Archived
	default:
		return s.Total
	}
}
