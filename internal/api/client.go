package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oratioflow/prayerwall/internal/model"
)

// TokenProvider yields the current bearer token, or "" when no session is
// held. The session store implements this; the client reads it before every
// request so a login or logout takes effect immediately.
type TokenProvider interface {
	Token() string
}

// Client talks to the prayer-request service. One failed attempt surfaces
// immediately: there are no retries and no backoff in here, the caller owns
// that policy.
type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
}

// NewClient creates a client for the service at serverURL (the origin; the
// "/api" prefix is appended here).
func NewClient(serverURL string, tokens TokenProvider) *Client {
	return &Client{
		baseURL:    strings.TrimRight(serverURL, "/") + "/api",
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do is the single helper every operation goes through. It attaches the
// JSON content type and, when a token is held, the bearer header; non-2xx
// responses become *Error values carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: "could not reach the server", kind: ErrConnectivity}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// asError converts a non-2xx response. The service reports failures as
// {"error": "..."}; an unparsable body falls back to a generic message.
func (c *Client) asError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = fmt.Sprintf("request failed (%s)", resp.Status)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		apiErr.kind = ErrValidation
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthenticated
	case http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	}
	return apiErr
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a token and a user snapshot. It does not
// persist anything; that is the session's job.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	payload := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account. No session is established; the caller must
// log in afterwards.
func (c *Client) Register(ctx context.Context, profile model.Profile) error {
	return c.do(ctx, http.MethodPost, "/auth/register", profile, nil)
}

// VerifyToken asks the server whether the held token is still good and
// returns the fresh user snapshot.
func (c *Client) VerifyToken(ctx context.Context) (*model.User, error) {
	var result struct {
		User model.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/verify-token", nil, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// ListUsers returns all registered accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ToggleAdmin flips the target user's admin flag and returns the updated
// user. Admin only. Calling twice restores the prior value.
func (c *Client) ToggleAdmin(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/auth/users/%d/admin", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRequests fetches every request visible to the caller, in server order.
func (c *Client) ListRequests(ctx context.Context) ([]model.Request, error) {
	var requests []model.Request
	if err := c.do(ctx, http.MethodGet, "/pedidos", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequest fetches one request by id.
func (c *Client) GetRequest(ctx context.Context, id int64) (*model.Request, error) {
	var request model.Request
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pedidos/%d", id), nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// CreateRequest submits a new request. Title, description and requester
// name are required and checked here before any network dispatch; the
// created entity comes back with its server-assigned id and Pending status.
func (c *Client) CreateRequest(ctx context.Context, draft model.Draft) (*model.Request, error) {
	if err := draft.Validate(); err != nil {
		return nil, validationErr(err.Error())
	}
	var request model.Request
	if err := c.do(ctx, http.MethodPost, "/pedidos", draft, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// UpdateRequest replaces the editable fields of a request. Only the creator
// or an admin may succeed; the server enforces that.
func (c *Client) UpdateRequest(ctx context.Context, id int64, draft model.Draft) (*model.Request, error) {
	if err := draft.Validate(); err != nil {
		return nil, validationErr(err.Error())
	}
	var request model.Request
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pedidos/%d", id), draft, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// DeleteRequest removes a request. Irreversible; same authorization rule
// as UpdateRequest.
func (c *Client) DeleteRequest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pedidos/%d", id), nil, nil)
}

// UpdateStatus moves a request through its lifecycle. Admin only; the
// status must be one of the four enumerated values.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Request, error) {
	if !status.Valid() {
		return nil, validationErr(fmt.Sprintf("invalid status %q", status))
	}
	payload := map[string]model.Status{"status": status}
	var request model.Request
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pedidos/%d/status", id), payload, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// AddComment appends to a request's comment thread. Content must be
// non-blank after trimming.
func (c *Client) AddComment(ctx context.Context, requestID int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validationErr("comment content must not be blank")
	}
	payload := map[string]string{"conteudo": content}
	var comment model.Comment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/pedidos/%d/comentarios", requestID), payload, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns the comment thread for one request.
func (c *Client) ListComments(ctx context.Context, requestID int64) ([]model.Comment, error) {
	var comments []model.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pedidos/%d/comentarios", requestID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetStatistics fetches the aggregate counts. These are recomputed
// server-side on every call and are never derived from the local list.
func (c *Client) GetStatistics(ctx context.Context) (*model.Statistics, error) {
	var stats model.Statistics
	if err := c.do(ctx, http.MethodGet, "/pedidos/estatisticas", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Search runs the server-authoritative search. Both term and status are
// optional; model.StatusAll is equivalent to omitting the status. This
// supersedes any local display filtering.
func (c *Client) Search(ctx context.Context, term string, status model.Status) ([]model.Request, error) {
	if status != "" && status != model.StatusAll && !status.Valid() {
		return nil, validationErr(fmt.Sprintf("invalid status %q", status))
	}
	params := url.Values{}
	if term != "" {
		params.Set("q", term)
	}
	if status != "" && status != model.StatusAll {
		params.Set("status", string(status))
	}
	path := "/pedidos/buscar"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var requests []model.Request
	if err := c.do(ctx, http.MethodGet, path, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
