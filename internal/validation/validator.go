package validation

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/project-showcase-api/internal/apperr"
	"github.com/project-showcase-api/internal/models"
)

// Validator checks project records against their preconditions and strips
// markup from admin-supplied text before it is stored
type Validator struct {
	policy *bluemonday.Policy
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		policy: bluemonday.StrictPolicy(),
	}
}

// ValidateProject checks the record invariants. It runs before any I/O.
func (v *Validator) ValidateProject(p *models.Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return apperr.Validation("title", "title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return apperr.Validation("description", "description is required")
	}
	if p.Category == "" {
		return apperr.Validation("category", "category is required")
	}
	if !models.ValidCategories[p.Category] {
		return apperr.Validation("category", "invalid category: "+string(p.Category))
	}
	return nil
}

// ValidateUpdate checks an update payload: provided required fields must not
// be blanked out, and a provided category must be valid
func (v *Validator) ValidateUpdate(u *models.ProjectUpdate) error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return apperr.Validation("title", "title must not be empty")
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		return apperr.Validation("description", "description must not be empty")
	}
	if u.Category != nil && !models.ValidCategories[*u.Category] {
		return apperr.Validation("category", "invalid category: "+string(*u.Category))
	}
	return nil
}

// SanitizeProject strips HTML from the record's free-text fields
func (v *Validator) SanitizeProject(p *models.Project) {
	p.Title = v.sanitize(p.Title)
	p.Description = v.sanitize(p.Description)
	p.Client = v.sanitize(p.Client)
	p.Overview.Area = v.sanitize(p.Overview.Area)
	p.Overview.Effects = v.sanitize(p.Overview.Effects)
	for i, f := range p.Overview.Features {
		p.Overview.Features[i] = v.sanitize(f)
	}
}

// SanitizeUpdate strips HTML from the provided fields of an update payload
func (v *Validator) SanitizeUpdate(u *models.ProjectUpdate) {
	if u.Title != nil {
		*u.Title = v.sanitize(*u.Title)
	}
	if u.Description != nil {
		*u.Description = v.sanitize(*u.Description)
	}
	if u.Client != nil {
		*u.Client = v.sanitize(*u.Client)
	}
	if u.Overview != nil {
		u.Overview.Area = v.sanitize(u.Overview.Area)
		u.Overview.Effects = v.sanitize(u.Overview.Effects)
		for i, f := range u.Overview.Features {
			u.Overview.Features[i] = v.sanitize(f)
		}
	}
}

func (v *Validator) sanitize(s string) string {
	return strings.TrimSpace(v.policy.Sanitize(s))
}
