package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dchernov/campuskit/client"
)

// Students accesses student profile, questionnaire, recommendation,
// and rating endpoints.
type Students struct {
	c *client.Client
}

// NewStudents creates a Students service over the given gateway.
func NewStudents(c *client.Client) *Students {
	return &Students{c: c}
}

// Profile fetches the calling student's profile.
func (s *Students) Profile(ctx context.Context) (*StudentProfile, error) {
	var out StudentProfile
	if err := s.c.Get(ctx, "/students/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial profile update.
func (s *Students) UpdateProfile(ctx context.Context, update StudentProfileUpdate) (*StudentProfile, error) {
	var out StudentProfile
	if err := s.c.Patch(ctx, "/students/me", update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SkillMap fetches the calling student's full questionnaire state.
func (s *Students) SkillMap(ctx context.Context) (*SkillMap, error) {
	var out SkillMap
	if err := s.c.Get(ctx, "/students/me/skill-map", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSkills replaces the student's skill levels.
func (s *Students) UpdateSkills(ctx context.Context, skills []SkillInput) error {
	return s.c.Put(ctx, "/students/me/skills", skills, nil)
}

// UpdateInterests replaces the student's interest selection.
func (s *Students) UpdateInterests(ctx context.Context, interestIDs []int64) error {
	return s.c.Put(ctx, "/students/me/interests", interestIDs, nil)
}

// UpdateRoles replaces the student's role selection.
func (s *Students) UpdateRoles(ctx context.Context, roleIDs []int64) error {
	return s.c.Put(ctx, "/students/me/roles", roleIDs, nil)
}

// RecommendationsParams pages the two recommendation listings
// independently. Zero values fall back to the first page of twenty.
type RecommendationsParams struct {
	InterestsPage    int
	InterestsPerPage int
	RolesPage        int
	RolesPerPage     int
}

func (p RecommendationsParams) values() url.Values {
	q := url.Values{}
	q.Set("interests_page", strconv.Itoa(orDefault(p.InterestsPage, 1)))
	q.Set("interests_per_page", strconv.Itoa(orDefault(p.InterestsPerPage, 20)))
	q.Set("roles_page", strconv.Itoa(orDefault(p.RolesPage, 1)))
	q.Set("roles_per_page", strconv.Itoa(orDefault(p.RolesPerPage, 20)))
	return q
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Recommendations fetches student matches by interests and by roles.
func (s *Students) Recommendations(ctx context.Context, params RecommendationsParams) (*RecommendationsResponse, error) {
	var out RecommendationsResponse
	if err := s.c.Get(ctx, "/students/me/recommendations", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByID fetches another student's skill map.
func (s *Students) ByID(ctx context.Context, studentID int64) (*SkillMap, error) {
	var out SkillMap
	if err := s.c.Get(ctx, fmt.Sprintf("/students/%d", studentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rating fetches one page of the points rating.
func (s *Students) Rating(ctx context.Context, page, perPage int) (*RatingResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(orDefault(page, 1)))
	q.Set("per_page", strconv.Itoa(orDefault(perPage, 20)))

	var out RatingResponse
	if err := s.c.Get(ctx, "/students/rating", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
