// Package notify keeps the ephemeral in-app notification feed: a capped
// ring of the most recent messages, newest first. Nothing here is ever
// persisted; a restart starts empty.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Cap is how many notifications the feed retains.
const Cap = 5

// Notification is one entry in the feed.
type Notification struct {
	ID        string
	Message   string
	Timestamp time.Time
}

// Feed holds the recent notifications. The runtime model is single
// event loop, so no locking.
type Feed struct {
	items []Notification
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Push prepends a message, truncating to Cap entries.
func (f *Feed) Push(message string) {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: time.Now(),
	}
	f.items = append([]Notification{n}, f.items...)
	if len(f.items) > Cap {
		f.items = f.items[:Cap]
	}
}

// Items returns the notifications, newest first.
func (f *Feed) Items() []Notification {
	return f.items
}

// Len reports how many notifications are held.
func (f *Feed) Len() int {
	return len(f.items)
}

// Clear empties the feed.
func (f *Feed) Clear() {
	f.items = nil
}
