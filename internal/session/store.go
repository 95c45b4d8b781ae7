package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/oratioflow/prayerwall/internal/model"
)

// state is what gets persisted: the two durable entries of a session, the
// opaque token and the last user snapshot. Both are cleared together.
type state struct {
	Token string      `json:"auth_token,omitempty"`
	User  *model.User `json:"user_data,omitempty"`
}

// Store is the durable key-value storage behind a session. The in-memory
// copy is authoritative between saves; every write goes straight to disk,
// synchronously, with no retries.
type Store struct {
	mu    sync.Mutex
	path  string
	state state
}

// DefaultStorePath is where the session file lives unless the caller says
// otherwise.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".prayerwall", "session.json"), nil
}

// Open loads the session file at path if one exists. A missing or damaged
// file just means no session.
func Open(path string) *Store {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		s.state = state{}
	}
	return s
}

// Token returns the held token, or "" when unauthenticated. This is what
// the API client reads before every request.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// User returns the last persisted user snapshot without a network call.
// Display only; never use it for authorization decisions.
func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

// Save persists a token and user snapshot together.
func (s *Store) Save(token string, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{Token: token, User: user}
	return s.write()
}

// SetUser refreshes the persisted snapshot, keeping the token.
func (s *Store) SetUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
	return s.write()
}

// Clear erases the session, in memory and on disk. Safe to call when no
// session exists.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
