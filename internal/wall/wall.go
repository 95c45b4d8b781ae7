// Package wall keeps the client-side mirror of the prayer wall. The mirror
// is a cache, never a source of truth: every successful mutation is
// followed by exactly one reload of both the request list and the
// statistics aggregate, so the view cannot drift from server state. A
// failed mutation triggers no reload and leaves the last-known-good view
// untouched.
package wall

import (
	"context"
	"fmt"

	"github.com/oratioflow/prayerwall/internal/api"
	"github.com/oratioflow/prayerwall/internal/logger"
	"github.com/oratioflow/prayerwall/internal/model"
	"github.com/oratioflow/prayerwall/internal/notify"
)

// Wall owns the transient view state: the fetched requests, the
// authoritative statistics and the notification feed.
type Wall struct {
	client *api.Client

	requests  []model.Request
	stats     model.Statistics
	searching bool // the request list currently holds a server search result
	feed      *notify.Feed
}

// New creates an empty wall over the given API client. Call Reload to
// populate it.
func New(client *api.Client) *Wall {
	return &Wall{client: client, feed: notify.NewFeed()}
}

// Client exposes the underlying API client for the operations that bypass
// the mirror (single-request fetches, user administration).
func (w *Wall) Client() *api.Client { return w.client }

// Requests returns the currently held list, in server order. When a search
// is active this is the filtered result set.
func (w *Wall) Requests() []model.Request { return w.requests }

// Stats returns the last fetched aggregate. It can transiently disagree
// with the held list after a search; the aggregate always wins.
func (w *Wall) Stats() model.Statistics { return w.stats }

// Feed returns the notification feed.
func (w *Wall) Feed() *notify.Feed { return w.feed }

// Searching reports whether the list is a server search result rather than
// the full collection.
func (w *Wall) Searching() bool { return w.searching }

// Get finds a held request by id.
func (w *Wall) Get(id int64) (*model.Request, bool) {
	for i := range w.requests {
		if w.requests[i].ID == id {
			return &w.requests[i], true
		}
	}
	return nil, false
}

// Reload fetches the full collection and the statistics aggregate. State
// is only replaced when both fetches succeed.
func (w *Wall) Reload(ctx context.Context) error {
	requests, err := w.client.ListRequests(ctx)
	if err != nil {
		return err
	}
	stats, err := w.client.GetStatistics(ctx)
	if err != nil {
		return err
	}
	w.requests = requests
	w.stats = *stats
	w.searching = false
	logger.Debug("Wall reloaded", logger.F("requests", len(requests)), logger.F("total", stats.Total))
	return nil
}

// settle runs the mandatory post-mutation reload and drops a notification.
// The mutation itself already succeeded at this point, so the message is
// pushed even when the reload fails.
func (w *Wall) settle(ctx context.Context, message string) error {
	err := w.Reload(ctx)
	w.feed.Push(message)
	return err
}

// Create submits a new request and settles the view.
func (w *Wall) Create(ctx context.Context, draft model.Draft) (*model.Request, error) {
	created, err := w.client.CreateRequest(ctx, draft)
	if err != nil {
		return nil, err
	}
	return created, w.settle(ctx, fmt.Sprintf("Request %q submitted", created.Title))
}

// Update replaces a request's editable fields and settles the view.
func (w *Wall) Update(ctx context.Context, id int64, draft model.Draft) (*model.Request, error) {
	updated, err := w.client.UpdateRequest(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	return updated, w.settle(ctx, fmt.Sprintf("Request %q updated", updated.Title))
}

// Delete removes a request and settles the view.
func (w *Wall) Delete(ctx context.Context, id int64) error {
	if err := w.client.DeleteRequest(ctx, id); err != nil {
		return err
	}
	return w.settle(ctx, "Request deleted")
}

// SetStatus moves a request through its lifecycle (admin only) and settles
// the view.
func (w *Wall) SetStatus(ctx context.Context, id int64, status model.Status) error {
	updated, err := w.client.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	return w.settle(ctx, fmt.Sprintf("Status of %q set to %s", updated.Title, updated.Status))
}

// Comment appends to a request's thread and settles the view.
func (w *Wall) Comment(ctx context.Context, id int64, content string) (*model.Comment, error) {
	comment, err := w.client.AddComment(ctx, id, content)
	if err != nil {
		return nil, err
	}
	title := ""
	if r, ok := w.Get(id); ok {
		title = r.Title
	}
	return comment, w.settle(ctx, fmt.Sprintf("Comment added to %q", title))
}

// Search replaces the held list with the server-filtered result set. The
// statistics aggregate is deliberately left alone: it keeps describing the
// whole collection, not the search.
func (w *Wall) Search(ctx context.Context, term string, status model.Status) error {
	results, err := w.client.Search(ctx, term, status)
	if err != nil {
		return err
	}
	w.requests = results
	w.searching = true
	return nil
}

// ClearSearch drops the search result and restores the full collection.
func (w *Wall) ClearSearch(ctx context.Context) error {
	if !w.searching {
		return nil
	}
	return w.Reload(ctx)
}

// Visible applies the local display filter over the already-held list.
// This is presentation-side narrowing only and is a separate code path from
// Search, which is server-authoritative.
func (w *Wall) Visible(status model.Status) []model.Request {
	if status == "" || status == model.StatusAll {
		return w.requests
	}
	var out []model.Request
	for _, r := range w.requests {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}
