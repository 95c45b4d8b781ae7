// Package session owns the authentication credential: its acquisition,
// persistence and teardown. A Session is an explicit instance handed to
// whoever needs it; nothing here lives in package-level state.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oratioflow/prayerwall/internal/api"
	"github.com/oratioflow/prayerwall/internal/logger"
	"github.com/oratioflow/prayerwall/internal/model"
)

// Session manages the credential lifecycle against the remote service.
// The Store it wraps doubles as the api.Client's TokenProvider, so a token
// saved here is attached to every following request.
type Session struct {
	client *api.Client
	store  *Store
}

// New binds a session to its store and the API client used for the auth
// endpoints.
func New(client *api.Client, store *Store) *Session {
	return &Session{client: client, store: store}
}

// Login exchanges credentials for a token and persists token and user
// snapshot together. On failure nothing is touched.
func (s *Session) Login(ctx context.Context, username, password string) (*model.User, error) {
	result, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	user := result.User
	if err := s.store.Save(result.Token, &user); err != nil {
		return nil, err
	}
	logger.Info("Logged in", logger.F("user", user.Username))
	return &user, nil
}

// Register forwards the profile to the service. No session is established;
// callers follow up with an explicit Login.
func (s *Session) Register(ctx context.Context, profile model.Profile) error {
	return s.client.Register(ctx, profile)
}

// Verify checks the persisted token at startup. An expired or invalid
// token logs the session out as a side effect and the original failure is
// still raised, so the caller can fall back to the unauthenticated view.
func (s *Session) Verify(ctx context.Context) (*model.User, error) {
	user, err := s.client.VerifyToken(ctx)
	if err != nil {
		logger.Warn("Token verification failed, clearing session", logger.F("error", err))
		if clearErr := s.store.Clear(); clearErr != nil {
			logger.Error("Failed to clear session", logger.F("error", clearErr))
		}
		return nil, err
	}
	// Keep the snapshot fresh; the admin flag may have changed.
	if err := s.store.SetUser(user); err != nil {
		logger.Warn("Failed to refresh user snapshot", logger.F("error", err))
	}
	return user, nil
}

// Logout erases the session. Purely local, no network call, idempotent.
func (s *Session) Logout() error {
	return s.store.Clear()
}

// IsAuthenticated reports whether a token is currently held.
func (s *Session) IsAuthenticated() bool {
	return s.store.Token() != ""
}

// CurrentUser returns the persisted user snapshot, or nil. Optimistic
// display only; authorization is always the server's call.
func (s *Session) CurrentUser() *model.User {
	return s.store.User()
}

// ExpiresAt decodes the token's exp claim without verifying the signature.
// Informational only, for the auth status display; ok is false when no
// token is held or it carries no expiry.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token := s.store.Token()
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
