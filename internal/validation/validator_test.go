package validation

import (
	"testing"

	"github.com/project-showcase-api/internal/apperr"
	"github.com/project-showcase-api/internal/models"
)

func TestValidateProject(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name      string
		project   models.Project
		wantField string
	}{
		{
			name: "valid project",
			project: models.Project{
				Title:       "Smart Campus",
				Description: "Automation rollout",
				Category:    models.CategorySmartBuilding,
			},
		},
		{
			name: "missing title",
			project: models.Project{
				Description: "Automation rollout",
				Category:    models.CategorySmartBuilding,
			},
			wantField: "title",
		},
		{
			name: "whitespace-only title",
			project: models.Project{
				Title:       "   ",
				Description: "Automation rollout",
				Category:    models.CategorySmartBuilding,
			},
			wantField: "title",
		},
		{
			name: "missing description",
			project: models.Project{
				Title:    "Smart Campus",
				Category: models.CategorySmartBuilding,
			},
			wantField: "description",
		},
		{
			name: "missing category",
			project: models.Project{
				Title:       "Smart Campus",
				Description: "Automation rollout",
			},
			wantField: "category",
		},
		{
			name: "unknown category",
			project: models.Project{
				Title:       "Smart Campus",
				Description: "Automation rollout",
				Category:    models.Category("space_station"),
			},
			wantField: "category",
		},
		{
			name: "all sentinel is not a storable category",
			project: models.Project{
				Title:       "Smart Campus",
				Description: "Automation rollout",
				Category:    models.CategoryAll,
			},
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateProject(&tt.project)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Expected valid, got %v", err)
				}
				return
			}

			var ve *apperr.ValidationError
			if !apperr.IsValidation(err) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if ve, _ = err.(*apperr.ValidationError); ve.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, ve.Field)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	validator := NewValidator()

	empty := "  "
	if err := validator.ValidateUpdate(&models.ProjectUpdate{Title: &empty}); !apperr.IsValidation(err) {
		t.Errorf("Blanking the title must be rejected, got %v", err)
	}

	bad := models.Category("space_station")
	if err := validator.ValidateUpdate(&models.ProjectUpdate{Category: &bad}); !apperr.IsValidation(err) {
		t.Errorf("Unknown category must be rejected, got %v", err)
	}

	// A payload with nothing set changes nothing and is valid
	if err := validator.ValidateUpdate(&models.ProjectUpdate{}); err != nil {
		t.Errorf("Empty update should validate, got %v", err)
	}
}

func TestSanitizeProject(t *testing.T) {
	validator := NewValidator()

	p := models.Project{
		Title:       `Smart <script>alert("x")</script>Campus`,
		Description: `<b>bold</b> rollout`,
		Client:      `<img src=x onerror=alert(1)>Samsung`,
		Overview: models.ProjectOverview{
			Area:     "<i>182,000㎡</i>",
			Features: []string{"<u>hvac</u>", "lighting"},
			Effects:  "<p>18% savings</p>",
		},
	}

	validator.SanitizeProject(&p)

	if p.Title != "Smart Campus" {
		t.Errorf("Script tag not stripped: %q", p.Title)
	}
	if p.Description != "bold rollout" {
		t.Errorf("Markup not stripped from description: %q", p.Description)
	}
	if p.Client != "Samsung" {
		t.Errorf("Markup not stripped from client: %q", p.Client)
	}
	if p.Overview.Features[0] != "hvac" {
		t.Errorf("Markup not stripped from features: %q", p.Overview.Features[0])
	}
}

func TestSanitizeUpdate(t *testing.T) {
	validator := NewValidator()

	title := `<script>x</script>Clean Title`
	update := models.ProjectUpdate{Title: &title}
	validator.SanitizeUpdate(&update)

	if *update.Title != "Clean Title" {
		t.Errorf("Markup not stripped from update title: %q", *update.Title)
	}
}
