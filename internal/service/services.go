package service

import (
	"context"

	"github.com/project-showcase-api/internal/assetstore"
	"github.com/project-showcase-api/internal/config"
	"github.com/project-showcase-api/internal/localstore"
	"github.com/project-showcase-api/internal/models"
	"github.com/project-showcase-api/internal/repository"
	"github.com/rs/zerolog"
)

// ProjectService defines the interface for project aggregation and management
type ProjectService interface {
	ListProjects(ctx context.Context, filter models.ListFilter) []models.Project
	ListFeaturedProjects(ctx context.Context) []models.Project
	GetProject(ctx context.Context, id string) (*models.Project, error)

	CreateProject(ctx context.Context, project *models.Project) (string, error)
	UpdateProject(ctx context.Context, id string, update *models.ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateLocalProject(project *models.Project) (string, error)
	UpdateLocalProject(id string, update *models.ProjectUpdate) (*models.Project, error)
	DeleteLocalProject(id string) error

	IncrementViewCount(ctx context.Context, id string)
	IncrementLikeCount(ctx context.Context, id string) error

	Count(ctx context.Context) int
}

// ImageService defines the interface for image upload operations
type ImageService interface {
	UploadRemote(ctx context.Context, filename string, size int64, content []byte, associatedID string) (string, error)
	UploadLocal(filename string, size int64, content []byte) (string, error)
	VerifyStorage(ctx context.Context) error
}

// Services holds all service interfaces
type Services struct {
	Project ProjectService
	Image   ImageService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, local localstore.Store, assets assetstore.Store, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Project: newProjectService(repos.Project, local, assets, log),
		Image:   newImageService(assets, &cfg.Upload, log),
	}
}
