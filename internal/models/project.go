package models

import (
	"strconv"
	"strings"
	"time"
)

// Category classifies a showcase project
type Category string

const (
	CategoryAll              Category = "all"
	CategorySmartBuilding    Category = "smart_building"
	CategoryPublicFacility   Category = "public_facility"
	CategoryIndustrial       Category = "industrial_facility"
	CategoryLogisticsDC      Category = "logistics_datacenter"
	CategoryCulturalFacility Category = "cultural_facility"
	CategoryTouristFacility  Category = "tourist_facility"
)

// ValidCategories defines allowed project categories (excluding the "all" sentinel)
var ValidCategories = map[Category]bool{
	CategorySmartBuilding:    true,
	CategoryPublicFacility:   true,
	CategoryIndustrial:       true,
	CategoryLogisticsDC:      true,
	CategoryCulturalFacility: true,
	CategoryTouristFacility:  true,
}

// CategoryLabels maps categories to their localized display labels
var CategoryLabels = map[Category]string{
	CategoryAll:              "전체",
	CategorySmartBuilding:    "스마트빌딩",
	CategoryPublicFacility:   "공공시설",
	CategoryIndustrial:       "산업시설",
	CategoryLogisticsDC:      "물류·데이터센터",
	CategoryCulturalFacility: "문화시설",
	CategoryTouristFacility:  "관광시설",
}

// Label returns the localized display label for a category
func (c Category) Label() string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Source tags a record's origin at aggregation time; it is never persisted
type Source string

const (
	SourceAdmin   Source = "admin"
	SourceDefault Source = "default"
)

// DefaultIDPrefix is the reserved prefix of bundled default record ids
const DefaultIDPrefix = "default-"

// ProjectOverview is the nested overview block of a project record
type ProjectOverview struct {
	Period   string   `json:"period"`
	Area     string   `json:"area"`
	Features []string `json:"features"`
	Effects  string   `json:"effects"`
}

// Project represents a showcase project record
type Project struct {
	ID               string          `json:"id" db:"id"`
	Title            string          `json:"title" db:"title"`
	Description      string          `json:"description" db:"description"`
	Category         Category        `json:"category" db:"category"`
	Client           string          `json:"client,omitempty" db:"client"`
	Duration         string          `json:"duration,omitempty" db:"duration"`
	TeamSize         string          `json:"team_size,omitempty" db:"team_size"`
	FeaturedImageURL string          `json:"featured_image_url,omitempty" db:"featured_image_url"`
	Overview         ProjectOverview `json:"project_overview" db:"-"` // Stored as JSON string in DB
	IsFeatured       bool            `json:"is_featured" db:"is_featured"`
	IsPublished      bool            `json:"is_published" db:"is_published"`
	ViewCount        int             `json:"view_count" db:"view_count"`
	LikeCount        int             `json:"like_count" db:"like_count"`
	PublishedAt      *time.Time      `json:"published_at,omitempty" db:"published_at"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
	Source           Source          `json:"source,omitempty" db:"-"` // Attached at aggregation time
}

// NewProjectID generates a timestamp-based id for admin-created records
func NewProjectID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Normalize brings a record into canonical form at ingestion: overview
// features are trimmed with empty entries dropped, and a missing duration
// falls back to the overview period so read sites never need fallback chains.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)

	features := p.Overview.Features[:0]
	for _, f := range p.Overview.Features {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	p.Overview.Features = features

	if p.Duration == "" {
		p.Duration = p.Overview.Period
	}
}

// MatchesSearch reports whether the record matches a case-insensitive
// substring search over title, description, client, and the category label
func (p *Project) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{p.Title, p.Description, p.Client, p.Category.Label()} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// ProjectUpdate carries the fields of an update payload; nil means
// "leave the stored value unchanged"
type ProjectUpdate struct {
	Title            *string          `json:"title,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Category         *Category        `json:"category,omitempty"`
	Client           *string          `json:"client,omitempty"`
	Duration         *string          `json:"duration,omitempty"`
	TeamSize         *string          `json:"team_size,omitempty"`
	FeaturedImageURL *string          `json:"featured_image_url,omitempty"`
	Overview         *ProjectOverview `json:"project_overview,omitempty"`
	IsFeatured       *bool            `json:"is_featured,omitempty"`
	IsPublished      *bool            `json:"is_published,omitempty"`
}

// ApplyTo overwrites the record's mutable fields with the provided values
func (u *ProjectUpdate) ApplyTo(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Client != nil {
		p.Client = *u.Client
	}
	if u.Duration != nil {
		p.Duration = *u.Duration
	}
	if u.TeamSize != nil {
		p.TeamSize = *u.TeamSize
	}
	if u.FeaturedImageURL != nil {
		p.FeaturedImageURL = *u.FeaturedImageURL
	}
	if u.Overview != nil {
		p.Overview = *u.Overview
	}
	if u.IsFeatured != nil {
		p.IsFeatured = *u.IsFeatured
	}
	if u.IsPublished != nil {
		p.IsPublished = *u.IsPublished
	}
}

// ListFilter holds the listing constraints of a single aggregation call
type ListFilter struct {
	Category           Category
	SearchTerm         string
	Limit              int  // 0 means no cap
	FeaturedOnly       bool
	IncludeUnpublished bool // admin surface only
}
