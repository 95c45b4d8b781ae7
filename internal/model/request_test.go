package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"Pending", StatusPending, false},
		{"pending", StatusPending, false},
		{"In Prayer", StatusInPrayer, false},
		{"inprayer", StatusInPrayer, false},
		{"ANSWERED", StatusAnswered, false},
		{"archived", StatusArchived, false},
		{"  answered  ", StatusAnswered, false},
		{"done", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestStatusValid(t *testing.T) {
	for _, st := range Statuses {
		assert.True(t, st.Valid())
	}
	assert.False(t, Status("Done").Valid())
	assert.False(t, StatusAll.Valid(), "the filter pseudo-status is not a request status")
}

func TestDraftValidate(t *testing.T) {
	valid := Draft{Title: "Health", Description: "Pray for X", RequesterName: "Jane"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		draft Draft
	}{
		{"empty", Draft{}},
		{"missing title", Draft{Description: "d", RequesterName: "n"}},
		{"missing description", Draft{Title: "t", RequesterName: "n"}},
		{"missing requester", Draft{Title: "t", Description: "d"}},
		{"whitespace only", Draft{Title: "   ", Description: "\t", RequesterName: " \n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.draft.Validate())
		})
	}

	// Phone and email stay optional.
	assert.NoError(t, Draft{Title: "t", Description: "d", RequesterName: "n", RequesterPhone: "", RequesterEmail: ""}.Validate())
}

func TestStatisticsCount(t *testing.T) {
	stats := Statistics{Total: 10, Pending: 4, InPrayer: 3, Answered: 2, Archived: 1}

	assert.Equal(t, 4, stats.Count(StatusPending))
	assert.Equal(t, 3, stats.Count(StatusInPrayer))
	assert.Equal(t, 2, stats.Count(StatusAnswered))
	assert.Equal(t, 1, stats.Count(StatusArchived))
	assert.Equal(t, 10, stats.Count(StatusAll))
}

func TestRequestCanEdit(t *testing.T) {
	r := Request{ID: 1, CreatorUserID: 7}

	creator := &User{ID: 7}
	admin := &User{ID: 2, IsAdmin: true}
	other := &User{ID: 3}

	assert.True(t, r.CanEdit(creator))
	assert.True(t, r.CanEdit(admin))
	assert.False(t, r.CanEdit(other))
	assert.False(t, r.CanEdit(nil))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", (&User{Username: "jane", FullName: "Jane Doe"}).DisplayName())
	assert.Equal(t, "jane", (&User{Username: "jane"}).DisplayName())
	assert.Equal(t, "", (*User)(nil).DisplayName())
}
