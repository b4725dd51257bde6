package api

import (
	"context"

	"github.com/dchernov/campuskit/client"
)

// References accesses the read-only reference catalogs.
type References struct {
	c *client.Client
}

// NewReferences creates a References service over the given gateway.
func NewReferences(c *client.Client) *References {
	return &References{c: c}
}

// Skills fetches the skill catalog.
func (r *References) Skills(ctx context.Context) ([]Skill, error) {
	var out []Skill
	if err := r.c.Get(ctx, "/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SkillCategories fetches the skill category catalog.
func (r *References) SkillCategories(ctx context.Context) ([]SkillCategory, error) {
	var out []SkillCategory
	if err := r.c.Get(ctx, "/skill-categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Interests fetches the interest catalog.
func (r *References) Interests(ctx context.Context) ([]Interest, error) {
	var out []Interest
	if err := r.c.Get(ctx, "/interests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Roles fetches the role catalog.
func (r *References) Roles(ctx context.Context) ([]RoleRef, error) {
	var out []RoleRef
	if err := r.c.Get(ctx, "/roles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
