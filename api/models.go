// Package api provides typed access to the platform endpoints:
// students, forum, admin console, and reference data. Every call goes
// through the gateway and inherits token attachment and 401 recovery.
package api

import (
	"time"

	"github.com/dchernov/campuskit/auth"
)

// Pagination describes one page of a listing response.
type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// StudentProfile is a student's own profile record.
type StudentProfile struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Email       string  `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	GroupName   *string `json:"group_name"`
	TotalPoints int     `json:"total_points,omitempty"`
	TotalSom    int     `json:"total_som,omitempty"`
}

// StudentProfileUpdate carries the editable profile fields. Nil fields
// are omitted from the request.
type StudentProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	GroupName *string `json:"group_name,omitempty"`
}

// SkillCategory groups skills in the reference catalog.
type SkillCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Skill is a reference-catalog skill.
type Skill struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Interest is a reference-catalog interest.
type Interest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RoleRef is a reference-catalog project role.
type RoleRef struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// StudentSkill is a skill with the student's self-assessed level.
type StudentSkill struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Category SkillCategory `json:"category"`
}

// SkillInput sets one skill level in the questionnaire.
type SkillInput struct {
	SkillID int64 `json:"skill_id"`
	Level   int   `json:"level"`
}

// SkillMap is the full questionnaire state of a student.
type SkillMap struct {
	Profile   StudentProfile `json:"profile"`
	Interests []Interest     `json:"interests"`
	Roles     []RoleRef      `json:"roles"`
	Skills    []StudentSkill `json:"skills"`
}

// RatingStudent is one row of the points rating.
type RatingStudent struct {
	Rank        int     `json:"rank"`
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Email       *string `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	GroupName   *string `json:"group_name"`
	TotalPoints int     `json:"total_points"`
	TotalSom    int     `json:"total_som"`
}

// RatingResponse is the paginated rating listing.
type RatingResponse struct {
	Students   []RatingStudent `json:"students"`
	Pagination Pagination      `json:"pagination"`
}

// Recommendation is a suggested student match, either by shared
// interests or by complementary roles.
type Recommendation struct {
	StudentID            int64     `json:"student_id"`
	UserID               int64     `json:"user_id"`
	Email                string    `json:"email"`
	FirstName            *string   `json:"first_name"`
	LastName             *string   `json:"last_name"`
	GroupName            *string   `json:"group_name"`
	CommonInterestsCount int       `json:"common_interests_count,omitempty"`
	CommonInterests      []string  `json:"common_interests,omitempty"`
	RolesCount           int       `json:"roles_count,omitempty"`
	Roles                []RoleRef `json:"roles,omitempty"`
	MatchType            string    `json:"match_type"`
}

// RecommendationsResponse carries both recommendation listings with
// independent pagination.
type RecommendationsResponse struct {
	ByInterests           []Recommendation `json:"recommendations_by_interests"`
	ByInterestsPagination Pagination       `json:"recommendations_by_interests_pagination"`
	ByRoles               []Recommendation `json:"recommendations_by_roles"`
	ByRolesPagination     Pagination       `json:"recommendations_by_roles_pagination"`
}

// ForumAuthor identifies the author of a topic or message.
type ForumAuthor struct {
	ID    int64     `json:"id"`
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
	Name  *string   `json:"name,omitempty"`
}

// ForumTopic is a forum discussion thread.
type ForumTopic struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   *string     `json:"description"`
	IsClosed      bool        `json:"is_closed"`
	IsPinned      bool        `json:"is_pinned"`
	MessagesCount int         `json:"messages_count"`
	Author        ForumAuthor `json:"author"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// ForumMessage is one message in a topic, optionally threaded under a
// parent message.
type ForumMessage struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	TopicID   int64          `json:"topic_id"`
	ParentID  *int64         `json:"parent_id"`
	IsEdited  bool           `json:"is_edited"`
	Author    ForumAuthor    `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Replies   []ForumMessage `json:"replies,omitempty"`
}

// TopicsResponse is the paginated topic listing.
type TopicsResponse struct {
	Topics     []ForumTopic `json:"topics"`
	Pagination Pagination   `json:"pagination"`
}

// MessagesResponse is one page of a topic's messages.
type MessagesResponse struct {
	Topic      ForumTopic     `json:"topic"`
	Messages   []ForumMessage `json:"messages"`
	Pagination Pagination     `json:"pagination"`
}

// CreateTopicInput creates a topic.
type CreateTopicInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateTopicInput edits a topic; nil fields are left untouched.
type UpdateTopicInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsClosed    *bool   `json:"is_closed,omitempty"`
	IsPinned    *bool   `json:"is_pinned,omitempty"`
}

// CreateMessageInput posts a message, optionally as a reply.
type CreateMessageInput struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// UpdateMessageInput edits a message body.
type UpdateMessageInput struct {
	Content string `json:"content"`
}

// AdminProfile is an administrator's own profile record.
type AdminProfile struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Position *string `json:"position"`
}

// AdminProfileUpdate carries the editable admin profile fields.
type AdminProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Position *string `json:"position,omitempty"`
}

// AdminStudent is one row of the admin student-management listing.
type AdminStudent struct {
	ID             *int64  `json:"id"`
	UserID         int64   `json:"user_id"`
	Email          string  `json:"email"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	GroupName      *string `json:"group_name"`
	CreatedAt      *string `json:"created_at"`
	SkillsCount    int     `json:"skills_count"`
	InterestsCount int     `json:"interests_count"`
	RolesCount     int     `json:"roles_count"`
	TotalPoints    int     `json:"total_points"`
	TotalSom       int     `json:"total_som"`
}

// AdminStudentsResponse is the paginated student-management listing.
type AdminStudentsResponse struct {
	Students   []AdminStudent `json:"students"`
	Pagination Pagination     `json:"pagination"`
}

// FilterSkillCategory groups filterable skills by category.
type FilterSkillCategory struct {
	Category SkillCategory `json:"category"`
	Skills   []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"skills"`
}

// PointCategory is one entry of the points catalog.
type PointCategory struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	IsPenalty bool   `json:"is_penalty"`
	IsCustom  bool   `json:"is_custom"`
}

// AddPointsRequest awards or deducts points for a student. Points is
// only honored for the custom category.
type AddPointsRequest struct {
	CategoryID  int64   `json:"category_id"`
	Points      *int    `json:"points,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AddPointsResponse confirms a point transaction.
type AddPointsResponse struct {
	Message     string `json:"message"`
	Transaction struct {
		ID          int64  `json:"id"`
		Points      int    `json:"points"`
		SomEarned   int    `json:"som_earned"`
		Description string `json:"description"`
		CreatedAt   string `json:"created_at"`
	} `json:"transaction"`
	Student struct {
		ID          int64 `json:"id"`
		TotalPoints int   `json:"total_points"`
		TotalSom    int   `json:"total_som"`
	} `json:"student"`
}
