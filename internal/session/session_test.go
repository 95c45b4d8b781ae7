package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oratioflow/prayerwall/internal/api"
	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, handler http.Handler) (*Session, *Store, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "session.json")
	store := Open(path)
	client := api.NewClient(srv.URL, store)
	return New(client, store), store, path
}

func authHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  model.User{ID: 1, Username: "admin", FullName: "Admin", IsAdmin: true},
		})
	})
	mux.HandleFunc("GET /api/auth/verify-token", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"user": model.User{ID: 1, Username: "admin", IsAdmin: true}})
	})
	return mux
}

func TestLoginPersistsSession(t *testing.T) {
	sess, store, path := newTestSession(t, authHandler(t))

	require.False(t, sess.IsAuthenticated())

	user, err := sess.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "tok-1", store.Token())

	// The snapshot on disk matches what the server returned.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var persisted struct {
		Token string      `json:"auth_token"`
		User  *model.User `json:"user_data"`
	}
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, "tok-1", persisted.Token)
	require.NotNil(t, persisted.User)
	assert.Equal(t, "admin", persisted.User.Username)
	assert.True(t, persisted.User.IsAdmin)
	assert.Equal(t, "admin", sess.CurrentUser().Username)
}

func TestLoginFailurePersistsNothing(t *testing.T) {
	sess, store, path := newTestSession(t, authHandler(t))

	_, err := sess.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthenticated)

	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, sess.CurrentUser())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no session file after a failed login")
}

func TestVerifyRefreshesSnapshot(t *testing.T) {
	sess, _, _ := newTestSession(t, authHandler(t))

	_, err := sess.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	user, err := sess.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, sess.IsAuthenticated())
}

func TestVerifyFailureLogsOutAndReraises(t *testing.T) {
	sess, store, _ := newTestSession(t, authHandler(t))

	// Simulate a stale token from a previous run.
	require.NoError(t, store.Save("stale-token", &model.User{ID: 1, Username: "admin"}))
	require.True(t, sess.IsAuthenticated())

	_, err := sess.Verify(context.Background())
	require.Error(t, err, "the original failure still reaches the caller")
	assert.ErrorIs(t, err, api.ErrUnauthenticated)

	// The forced logout already happened.
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, sess.CurrentUser())
}

func TestLogoutIsIdempotent(t *testing.T) {
	sess, store, _ := newTestSession(t, authHandler(t))

	// Logging out with no session is a no-op.
	require.NoError(t, sess.Logout())
	assert.False(t, sess.IsAuthenticated())

	_, err := sess.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	require.NoError(t, sess.Logout())
	require.NoError(t, sess.Logout())
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := Open(path)
	require.NoError(t, first.Save("tok-9", &model.User{ID: 3, Username: "jane"}))

	reopened := Open(path)
	assert.Equal(t, "tok-9", reopened.Token())
	require.NotNil(t, reopened.User())
	assert.Equal(t, "jane", reopened.User().Username)
}

func TestStoreIgnoresDamagedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := Open(path)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

func TestExpiresAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := Open(path)
	sess := New(nil, store)

	_, ok := sess.ExpiresAt()
	assert.False(t, ok, "no token held")

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, store.Save(token, nil))

	got, ok := sess.ExpiresAt()
	require.True(t, ok)
	assert.True(t, got.Equal(exp), "got %v want %v", got, exp)

	// An opaque, non-JWT token simply yields no expiry.
	require.NoError(t, store.Save("opaque-token", nil))
	_, ok = sess.ExpiresAt()
	assert.False(t, ok)
}
