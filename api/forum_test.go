package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dchernov/campuskit/auth"
)

var permNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func messageBy(authorID int64, age time.Duration) ForumMessage {
	return ForumMessage{
		ID:        1,
		Author:    ForumAuthor{ID: authorID, Email: "a@b.com", Role: auth.RoleStudent},
		CreatedAt: permNow.Add(-age),
	}
}

func TestCanEditMessage(t *testing.T) {
	student := &auth.User{ID: 10, Role: auth.RoleStudent}
	admin := &auth.User{ID: 20, Role: auth.RoleAdmin}

	tests := []struct {
		name string
		msg  ForumMessage
		user *auth.User
		want bool
	}{
		{"nil user", messageBy(10, time.Minute), nil, false},
		{"author within window", messageBy(10, 29*time.Minute), student, true},
		{"author at window edge", messageBy(10, 30*time.Minute), student, true},
		{"author past window", messageBy(10, 31*time.Minute), student, false},
		{"not the author", messageBy(99, time.Minute), student, false},
		{"admin not the author", messageBy(99, time.Minute), admin, false},
		{"admin author past window", messageBy(20, 48*time.Hour), admin, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEditMessage(tt.msg, tt.user, permNow))
		})
	}
}

func TestCanDeleteMessage(t *testing.T) {
	student := &auth.User{ID: 10, Role: auth.RoleStudent}
	admin := &auth.User{ID: 20, Role: auth.RoleAdmin}

	tests := []struct {
		name string
		msg  ForumMessage
		user *auth.User
		want bool
	}{
		{"nil user", messageBy(10, time.Minute), nil, false},
		{"author within window", messageBy(10, 29*time.Minute), student, true},
		{"author past window", messageBy(10, 31*time.Minute), student, false},
		{"not the author", messageBy(99, time.Minute), student, false},
		{"admin may delete anything", messageBy(99, 72*time.Hour), admin, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDeleteMessage(tt.msg, tt.user, permNow))
		})
	}
}
