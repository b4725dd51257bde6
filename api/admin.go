package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dchernov/campuskit/client"
)

// Admin accesses the admin profile, the student-management console,
// and the points system.
type Admin struct {
	c *client.Client
}

// NewAdmin creates an Admin service over the given gateway.
func NewAdmin(c *client.Client) *Admin {
	return &Admin{c: c}
}

// Profile fetches the calling admin's profile.
func (a *Admin) Profile(ctx context.Context) (*AdminProfile, error) {
	var out AdminProfile
	if err := a.c.Get(ctx, "/admins/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial admin profile update.
func (a *Admin) UpdateProfile(ctx context.Context, update AdminProfileUpdate) (*AdminProfile, error) {
	var out AdminProfile
	if err := a.c.Patch(ctx, "/admins/me", update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentFilters narrows and orders the student-management listing.
// Zero values are omitted from the query.
type StudentFilters struct {
	Page       int
	PerPage    int
	Search     string
	Group      string
	HasProfile *bool
	HasSkills  *bool
	SkillID    int64
	RoleID     int64
	InterestID int64
	SortBy     string
	SortOrder  string
}

func (f StudentFilters) values() url.Values {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Group != "" {
		q.Set("group", f.Group)
	}
	if f.HasProfile != nil {
		q.Set("has_profile", strconv.FormatBool(*f.HasProfile))
	}
	if f.HasSkills != nil {
		q.Set("has_skills", strconv.FormatBool(*f.HasSkills))
	}
	if f.SkillID > 0 {
		q.Set("skill_id", strconv.FormatInt(f.SkillID, 10))
	}
	if f.RoleID > 0 {
		q.Set("role_id", strconv.FormatInt(f.RoleID, 10))
	}
	if f.InterestID > 0 {
		q.Set("interest_id", strconv.FormatInt(f.InterestID, 10))
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}
	if f.SortOrder != "" {
		q.Set("sort_order", f.SortOrder)
	}
	return q
}

// Students fetches one page of the student-management listing.
func (a *Admin) Students(ctx context.Context, filters StudentFilters) (*AdminStudentsResponse, error) {
	var out AdminStudentsResponse
	if err := a.c.Get(ctx, "/admins/students", filters.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentGroups fetches the distinct group names for filtering.
func (a *Admin) StudentGroups(ctx context.Context) ([]string, error) {
	var out struct {
		Groups []string `json:"groups"`
	}
	if err := a.c.Get(ctx, "/admins/students/groups", nil, &out); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

// FilterSkills fetches the skill filter options grouped by category.
func (a *Admin) FilterSkills(ctx context.Context) ([]FilterSkillCategory, error) {
	var out struct {
		SkillCategories []FilterSkillCategory `json:"skill_categories"`
	}
	if err := a.c.Get(ctx, "/admins/filters/skills", nil, &out); err != nil {
		return nil, err
	}
	return out.SkillCategories, nil
}

// FilterRoles fetches the role filter options.
func (a *Admin) FilterRoles(ctx context.Context) ([]RoleRef, error) {
	var out struct {
		Roles []RoleRef `json:"roles"`
	}
	if err := a.c.Get(ctx, "/admins/filters/roles", nil, &out); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

// FilterInterests fetches the interest filter options.
func (a *Admin) FilterInterests(ctx context.Context) ([]Interest, error) {
	var out struct {
		Interests []Interest `json:"interests"`
	}
	if err := a.c.Get(ctx, "/admins/filters/interests", nil, &out); err != nil {
		return nil, err
	}
	return out.Interests, nil
}

// PointCategories fetches the points catalog.
func (a *Admin) PointCategories(ctx context.Context) ([]PointCategory, error) {
	var out struct {
		Categories []PointCategory `json:"categories"`
	}
	if err := a.c.Get(ctx, "/admins/points/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// AddStudentPoints records a point transaction for a student.
func (a *Admin) AddStudentPoints(ctx context.Context, studentID int64, req AddPointsRequest) (*AddPointsResponse, error) {
	var out AddPointsResponse
	if err := a.c.Post(ctx, fmt.Sprintf("/admins/students/%d/points", studentID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
