package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dchernov/campuskit/auth"
	"github.com/dchernov/campuskit/client"
)

// MessageEditWindow is how long a non-admin author may edit or delete
// their own message after posting it.
const MessageEditWindow = 30 * time.Minute

// Forum accesses forum topics and messages.
type Forum struct {
	c *client.Client
}

// NewForum creates a Forum service over the given gateway.
func NewForum(c *client.Client) *Forum {
	return &Forum{c: c}
}

// Topics fetches one page of topics, pinned topics first when
// pinnedFirst is set.
func (f *Forum) Topics(ctx context.Context, page, perPage int, pinnedFirst bool) (*TopicsResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(orDefault(page, 1)))
	q.Set("per_page", strconv.Itoa(orDefault(perPage, 20)))
	q.Set("pinned_first", strconv.FormatBool(pinnedFirst))

	var out TopicsResponse
	if err := f.c.Get(ctx, "/forum/topics", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Topic fetches a single topic.
func (f *Forum) Topic(ctx context.Context, topicID int64) (*ForumTopic, error) {
	var out ForumTopic
	if err := f.c.Get(ctx, fmt.Sprintf("/forum/topics/%d", topicID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTopic opens a new topic.
func (f *Forum) CreateTopic(ctx context.Context, input CreateTopicInput) (*ForumTopic, error) {
	var out ForumTopic
	if err := f.c.Post(ctx, "/forum/topics", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTopic edits a topic.
func (f *Forum) UpdateTopic(ctx context.Context, topicID int64, input UpdateTopicInput) (*ForumTopic, error) {
	var out ForumTopic
	if err := f.c.Patch(ctx, fmt.Sprintf("/forum/topics/%d", topicID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTopic removes a topic.
func (f *Forum) DeleteTopic(ctx context.Context, topicID int64) error {
	return f.c.Delete(ctx, fmt.Sprintf("/forum/topics/%d", topicID))
}

// Messages fetches one page of a topic's messages.
func (f *Forum) Messages(ctx context.Context, topicID int64, page, perPage int) (*MessagesResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(orDefault(page, 1)))
	q.Set("per_page", strconv.Itoa(orDefault(perPage, 50)))

	var out MessagesResponse
	if err := f.c.Get(ctx, fmt.Sprintf("/forum/topics/%d/messages", topicID), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMessage posts a message in a topic.
func (f *Forum) CreateMessage(ctx context.Context, topicID int64, input CreateMessageInput) (*ForumMessage, error) {
	var out ForumMessage
	if err := f.c.Post(ctx, fmt.Sprintf("/forum/topics/%d/messages", topicID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMessage edits a message.
func (f *Forum) UpdateMessage(ctx context.Context, messageID int64, input UpdateMessageInput) (*ForumMessage, error) {
	var out ForumMessage
	if err := f.c.Patch(ctx, fmt.Sprintf("/forum/messages/%d", messageID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMessage removes a message.
func (f *Forum) DeleteMessage(ctx context.Context, messageID int64) error {
	return f.c.Delete(ctx, fmt.Sprintf("/forum/messages/%d", messageID))
}

// CanEditMessage reports whether user may edit msg at the given time.
// Only the author may edit; admin authors have no time limit, other
// authors only within MessageEditWindow of posting.
func CanEditMessage(msg ForumMessage, user *auth.User, now time.Time) bool {
	if user == nil {
		return false
	}
	if msg.Author.ID != user.ID {
		return false
	}
	if user.Role == auth.RoleAdmin {
		return true
	}
	return now.Sub(msg.CreatedAt) <= MessageEditWindow
}

// CanDeleteMessage reports whether user may delete msg at the given
// time. Admins may delete any message; authors only their own, within
// MessageEditWindow of posting.
func CanDeleteMessage(msg ForumMessage, user *auth.User, now time.Time) bool {
	if user == nil {
		return false
	}
	if user.Role == auth.RoleAdmin {
		return true
	}
	if msg.Author.ID != user.ID {
		return false
	}
	return now.Sub(msg.CreatedAt) <= MessageEditWindow
}
