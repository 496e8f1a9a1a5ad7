package models

import (
	"strconv"
	"testing"
)

func TestNormalize(t *testing.T) {
	p := Project{
		Title:       "  Padded Title  ",
		Description: " desc ",
		Overview: ProjectOverview{
			Period:   "2023.01 - 2023.12",
			Features: []string{" lobby automation ", "", "   ", "hvac"},
		},
	}

	p.Normalize()

	if p.Title != "Padded Title" {
		t.Errorf("Title not trimmed: %q", p.Title)
	}
	if len(p.Overview.Features) != 2 {
		t.Fatalf("Expected 2 features after normalization, got %v", p.Overview.Features)
	}
	if p.Overview.Features[0] != "lobby automation" || p.Overview.Features[1] != "hvac" {
		t.Errorf("Features not trimmed: %v", p.Overview.Features)
	}
	if p.Duration != "2023.01 - 2023.12" {
		t.Errorf("Missing duration should fall back to overview period, got %q", p.Duration)
	}
}

func TestNormalize_KeepsExplicitDuration(t *testing.T) {
	p := Project{
		Title:       "x",
		Description: "y",
		Duration:    "18개월",
		Overview:    ProjectOverview{Period: "2023.01 - 2023.12"},
	}

	p.Normalize()

	if p.Duration != "18개월" {
		t.Errorf("Explicit duration must win over the overview period, got %q", p.Duration)
	}
}

func TestMatchesSearch(t *testing.T) {
	p := Project{
		Title:       "Smart Campus Automation",
		Description: "Integrated control rollout",
		Client:      "Samsung Electronics",
		Category:    CategorySmartBuilding,
	}

	tests := []struct {
		term string
		want bool
	}{
		{"SAMSUNG", true},
		{"samsung", true},
		{"campus", true},
		{"rollout", true},
		{"스마트빌딩", true}, // category display label
		{"  campus  ", true},
		{"", true},
		{"datacenter", false},
	}
	for _, tt := range tests {
		if got := p.MatchesSearch(tt.term); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if CategorySmartBuilding.Label() != "스마트빌딩" {
		t.Errorf("Unexpected label: %s", CategorySmartBuilding.Label())
	}
	// Unknown categories fall back to the raw value
	if Category("mystery").Label() != "mystery" {
		t.Errorf("Unknown category should echo its value")
	}
}

func TestNewProjectID(t *testing.T) {
	id := NewProjectID()
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		t.Errorf("Admin ids are millisecond timestamps, got %q", id)
	}
}

func TestDefaultProjects_CopyIsolation(t *testing.T) {
	first := DefaultProjects()
	first[0].Title = "mutated"
	first[0].Overview.Features[0] = "mutated"

	second := DefaultProjects()
	if second[0].Title == "mutated" {
		t.Error("DefaultProjects must return isolated copies")
	}
	if second[0].Overview.Features[0] == "mutated" {
		t.Error("Nested feature slices must be isolated per copy")
	}
}

func TestDefaultProjects_Invariants(t *testing.T) {
	for _, p := range DefaultProjects() {
		if len(p.ID) <= len(DefaultIDPrefix) || p.ID[:len(DefaultIDPrefix)] != DefaultIDPrefix {
			t.Errorf("Default id %q missing reserved prefix", p.ID)
		}
		if p.Title == "" || p.Description == "" {
			t.Errorf("Default record %s missing required fields", p.ID)
		}
		if !ValidCategories[p.Category] {
			t.Errorf("Default record %s has invalid category %q", p.ID, p.Category)
		}
		if p.IsPublished && p.PublishedAt == nil {
			t.Errorf("Default record %s published without published_at", p.ID)
		}
	}
}

func TestProjectUpdate_ApplyTo(t *testing.T) {
	p := Project{
		Title:       "Original",
		Description: "untouched",
		IsFeatured:  false,
	}

	title := "Renamed"
	featured := true
	update := ProjectUpdate{Title: &title, IsFeatured: &featured}
	update.ApplyTo(&p)

	if p.Title != "Renamed" {
		t.Errorf("Title not applied: %s", p.Title)
	}
	if !p.IsFeatured {
		t.Error("IsFeatured not applied")
	}
	if p.Description != "untouched" {
		t.Errorf("Nil field must leave the stored value alone, got %q", p.Description)
	}
}
