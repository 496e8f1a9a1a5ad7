package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/project-showcase-api/internal/apperr"
	"github.com/project-showcase-api/internal/assetstore"
	"github.com/project-showcase-api/internal/localstore"
	"github.com/project-showcase-api/internal/models"
	"github.com/project-showcase-api/internal/repository"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// projectService is the aggregator over the remote record store, the local
// override store, and the bundled default record set.
//
// Error policy per operation:
//
//	ListProjects / ListFeaturedProjects  swallow + log (degrade to fallback)
//	GetProject                           propagate (NotFound / WriteFailed)
//	CreateProject / UpdateProject        propagate (Validation* / WriteFailed)
//	DeleteProject                        propagate; image deletion swallowed
//	IncrementViewCount                   swallow + log
//	IncrementLikeCount                   propagate (WriteFailed)
//
// *Validation runs in the handlers, before the service is called.
type projectService struct {
	repo   repository.ProjectRepository
	local  localstore.Store
	assets assetstore.Store
	log    zerolog.Logger
}

func newProjectService(repo repository.ProjectRepository, local localstore.Store, assets assetstore.Store, log zerolog.Logger) *projectService {
	return &projectService{
		repo:   repo,
		local:  local,
		assets: assets,
		log:    log.With().Str("component", "project_service").Logger(),
	}
}

// ListProjects returns the merged, filtered, sorted project list. It never
// fails: any remote store error degrades to the override store plus the
// default record set.
func (s *projectService) ListProjects(ctx context.Context, filter models.ListFilter) []models.Project {
	return s.aggregate(ctx, filter)
}

// ListFeaturedProjects returns the featured subset of the published listing
func (s *projectService) ListFeaturedProjects(ctx context.Context) []models.Project {
	return s.aggregate(ctx, models.ListFilter{
		Category:     models.CategoryAll,
		FeaturedOnly: true,
	})
}

// aggregate is the single merge/filter pipeline shared by the public and
// admin surfaces. Admin-sourced records always precede default-sourced ones.
func (s *projectService) aggregate(ctx context.Context, filter models.ListFilter) []models.Project {
	var admin []models.Project

	remote, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Remote store unreachable, falling back to override store and defaults")
		admin = s.local.Load()
	} else {
		admin = remote
	}

	admin = lo.Map(admin, func(p models.Project, _ int) models.Project {
		p.Source = models.SourceAdmin
		return p
	})
	defaults := lo.Map(models.DefaultProjects(), func(p models.Project, _ int) models.Project {
		p.Source = models.SourceDefault
		return p
	})

	merged := append(admin, defaults...)
	for i := range merged {
		merged[i].Normalize()
	}

	if !filter.IncludeUnpublished {
		merged = lo.Filter(merged, func(p models.Project, _ int) bool {
			return p.IsPublished
		})
	}
	if filter.FeaturedOnly {
		merged = lo.Filter(merged, func(p models.Project, _ int) bool {
			return p.IsFeatured
		})
	}
	if filter.Category != "" && filter.Category != models.CategoryAll {
		merged = lo.Filter(merged, func(p models.Project, _ int) bool {
			return p.Category == filter.Category
		})
	}
	if filter.SearchTerm != "" {
		merged = lo.Filter(merged, func(p models.Project, _ int) bool {
			return p.MatchesSearch(filter.SearchTerm)
		})
	}

	// Stable sort keeps admin-before-default ordering for equal timestamps
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	if filter.Limit > 0 && len(merged) > filter.Limit {
		merged = merged[:filter.Limit]
	}

	return merged
}

// GetProject looks up a single record in the remote store only. A record
// visible in a degraded listing can still miss here; that asymmetry is part
// of the lookup contract.
func (s *projectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.WriteFailed("lookup", err)
	}
	if project == nil {
		return nil, apperr.ErrNotFound
	}
	project.Normalize()
	return project, nil
}

// CreateProject writes a new record to the remote store and returns its id
func (s *projectService) CreateProject(ctx context.Context, project *models.Project) (string, error) {
	project.ID = models.NewProjectID()
	project.Normalize()
	s.derivePublishedAt(project, true)

	if err := s.repo.Create(ctx, project); err != nil {
		return "", apperr.WriteFailed("create", err)
	}

	s.log.Info().Str("project_id", project.ID).Str("category", string(project.Category)).Msg("Project created")
	return project.ID, nil
}

// UpdateProject overwrites the stored record's mutable fields with the
// provided ones and refreshes updated_at
func (s *projectService) UpdateProject(ctx context.Context, id string, update *models.ProjectUpdate) (*models.Project, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.WriteFailed("update", err)
	}
	if existing == nil {
		return nil, apperr.ErrNotFound
	}

	update.ApplyTo(existing)
	existing.Normalize()
	if update.IsPublished != nil {
		s.derivePublishedAt(existing, false)
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.WriteFailed("update", err)
	}

	s.log.Info().Str("project_id", id).Msg("Project updated")
	return existing, nil
}

// DeleteProject removes a record, first attempting best-effort deletion of
// its managed image asset. Image deletion failure never blocks the record
// deletion.
func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", id).Msg("Could not resolve record before delete, skipping image cleanup")
	}

	if existing != nil && existing.FeaturedImageURL != "" && s.assets.Owns(existing.FeaturedImageURL) {
		if err := s.assets.Delete(ctx, existing.FeaturedImageURL); err != nil {
			s.log.Warn().Err(err).Str("project_id", id).Msg("Failed to delete image asset, continuing with record deletion")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return apperr.WriteFailed("delete", err)
	}

	s.log.Info().Str("project_id", id).Msg("Project deleted")
	return nil
}

// CreateLocalProject writes a new record to the override store, the write
// path an admin chooses explicitly
func (s *projectService) CreateLocalProject(project *models.Project) (string, error) {
	project.ID = models.NewProjectID()
	project.Normalize()
	s.derivePublishedAt(project, true)
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	records := s.local.Load()
	records = append([]models.Project{*project}, records...)
	if err := s.local.Save(records); err != nil {
		return "", apperr.WriteFailed("create", err)
	}

	s.log.Info().Str("project_id", project.ID).Msg("Project created in override store")
	return project.ID, nil
}

// UpdateLocalProject updates a record in the override store
func (s *projectService) UpdateLocalProject(id string, update *models.ProjectUpdate) (*models.Project, error) {
	records := s.local.Load()

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperr.ErrNotFound
	}

	update.ApplyTo(&records[idx])
	records[idx].Normalize()
	if update.IsPublished != nil {
		s.derivePublishedAt(&records[idx], false)
	}
	records[idx].UpdatedAt = time.Now()

	if err := s.local.Save(records); err != nil {
		return nil, apperr.WriteFailed("update", err)
	}

	updated := records[idx]
	return &updated, nil
}

// DeleteLocalProject removes a record from the override store
func (s *projectService) DeleteLocalProject(id string) error {
	records := s.local.Load()
	remaining := lo.Filter(records, func(p models.Project, _ int) bool {
		return p.ID != id
	})
	if len(remaining) == len(records) {
		return apperr.ErrNotFound
	}
	if err := s.local.Save(remaining); err != nil {
		return apperr.WriteFailed("delete", err)
	}
	return nil
}

// IncrementViewCount bumps the view counter. Failures are best-effort
// telemetry and are swallowed after logging.
func (s *projectService) IncrementViewCount(ctx context.Context, id string) {
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("project_id", id).Msg("Failed to increment view count")
	}
}

// IncrementLikeCount bumps the like counter; failures propagate
func (s *projectService) IncrementLikeCount(ctx context.Context, id string) error {
	if err := s.repo.IncrementLikeCount(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return apperr.WriteFailed("increment_like", err)
	}
	return nil
}

// Count returns the remote record count, zero when unreachable
func (s *projectService) Count(ctx context.Context) int {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to count projects")
		return 0
	}
	return count
}

// derivePublishedAt keeps the published_at invariant: non-nil iff the record
// is published at time of write. An already-published record keeps its
// original timestamp on republish unless this is a fresh create.
func (s *projectService) derivePublishedAt(p *models.Project, create bool) {
	switch {
	case !p.IsPublished:
		p.PublishedAt = nil
	case p.PublishedAt == nil || create:
		now := time.Now()
		p.PublishedAt = &now
	}
}
