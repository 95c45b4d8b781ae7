package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticToken is a TokenProvider returning a fixed value.
type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, staticToken(token))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		writeJSON(t, w, http.StatusOK, []model.Request{})
	})

	c := newTestClient(t, handler, "tok-123")
	_, err := c.ListRequests(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "/api/pedidos", gotPath)
}

func TestRequestHeadersWithoutToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, []model.Request{})
	})

	c := newTestClient(t, handler, "")
	_, err := c.ListRequests(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no token held means no Authorization header")
}

func TestLogin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["username"] != "admin" || creds["password"] != "admin123" {
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		writeJSON(t, w, http.StatusOK, LoginResult{
			Token: "jwt-token",
			User:  model.User{ID: 1, Username: "admin", IsAdmin: true},
		})
	})

	c := newTestClient(t, handler, "")

	result, err := c.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, "admin", result.User.Username)
	assert.True(t, result.User.IsAdmin)

	_, err = c.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.EqualError(t, err, "invalid credentials")
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnauthorized, ErrUnauthenticated},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, tt.status, map[string]string{"error": "boom"})
		})
		c := newTestClient(t, handler, "t")

		_, err := c.GetRequest(context.Background(), 1)
		require.Error(t, err, "status %d", tt.status)
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
		assert.EqualError(t, err, "boom")

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tt.status, apiErr.StatusCode)
	}
}

func TestErrorUnparsableBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway error</html>"))
	})
	c := newTestClient(t, handler, "t")

	_, err := c.ListRequests(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "request failed")

	// A plain server error belongs to no taxonomy class.
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestConnectivityFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, staticToken(""))
	_, err := c.ListRequests(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectivity)
}

func TestCreateRequestValidatesBeforeDispatch(t *testing.T) {
	hits := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(t, w, http.StatusCreated, model.Request{ID: 1})
	})
	c := newTestClient(t, handler, "t")

	drafts := []model.Draft{
		{},
		{Title: "Health", RequesterName: "Jane"},
		{Title: "   ", Description: "d", RequesterName: "Jane"},
	}
	for _, d := range drafts {
		_, err := c.CreateRequest(context.Background(), d)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Zero(t, hits, "invalid drafts must never reach the network")

	created, err := c.CreateRequest(context.Background(), model.Draft{
		Title: "Health", Description: "Pray for X", RequesterName: "Jane",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateRequestDefaultsToPending(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft model.Draft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		writeJSON(t, w, http.StatusCreated, model.Request{
			ID:            42,
			Title:         draft.Title,
			Description:   draft.Description,
			RequesterName: draft.RequesterName,
			Status:        model.StatusPending,
		})
	})
	c := newTestClient(t, handler, "t")

	created, err := c.CreateRequest(context.Background(), model.Draft{
		Title: "Health", Description: "Pray for X", RequesterName: "Jane",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, created.Status)
}

func TestAddComment(t *testing.T) {
	hits := 0
	var gotContent string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, "/api/pedidos/7/comentarios", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotContent = body["conteudo"]
		writeJSON(t, w, http.StatusCreated, model.Comment{ID: 1, Content: gotContent})
	})
	c := newTestClient(t, handler, "t")

	for _, blank := range []string{"", "   ", "\n\t "} {
		_, err := c.AddComment(context.Background(), 7, blank)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Zero(t, hits)

	comment, err := c.AddComment(context.Background(), 7, "  Praying for you!  ")
	require.NoError(t, err)
	assert.Equal(t, "Praying for you!", gotContent, "content is trimmed before dispatch")
	assert.Equal(t, int64(1), comment.ID)
}

func TestUpdateStatusValidatesValue(t *testing.T) {
	hits := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(t, w, http.StatusOK, model.Request{ID: 3, Status: model.StatusAnswered})
	})
	c := newTestClient(t, handler, "t")

	_, err := c.UpdateStatus(context.Background(), 3, model.Status("Done"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, hits)

	updated, err := c.UpdateStatus(context.Background(), 3, model.StatusAnswered)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAnswered, updated.Status)
}

func TestSearchQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pedidos/buscar", r.URL.Path)
		gotQuery = r.URL.Query()
		writeJSON(t, w, http.StatusOK, []model.Request{})
	})
	c := newTestClient(t, handler, "t")

	_, err := c.Search(context.Background(), "health", model.StatusAnswered)
	require.NoError(t, err)
	assert.Equal(t, []string{"health"}, gotQuery["q"])
	assert.Equal(t, []string{"Answered"}, gotQuery["status"])

	// "all" is equivalent to omitting the status entirely.
	_, err = c.Search(context.Background(), "health", model.StatusAll)
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "status")

	_, err = c.Search(context.Background(), "health", "")
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "status")

	_, err = c.Search(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)

	_, err = c.Search(context.Background(), "x", model.Status("Done"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestToggleAdmin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/auth/users/5/admin", r.URL.Path)
		writeJSON(t, w, http.StatusOK, model.User{ID: 5, Username: "jane", IsAdmin: true})
	})
	c := newTestClient(t, handler, "t")

	user, err := c.ToggleAdmin(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}
