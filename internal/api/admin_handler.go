package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/project-showcase-api/internal/models"
	"github.com/project-showcase-api/internal/service"
	"github.com/project-showcase-api/internal/validation"
	"github.com/rs/zerolog"
)

// AdminHandler handles the admin management endpoints
type AdminHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services:  services,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "admin").Logger(),
	}
}

// createProjectRequest is the admin create payload
type createProjectRequest struct {
	Title            string                 `json:"title" binding:"required"`
	Description      string                 `json:"description" binding:"required"`
	Category         models.Category        `json:"category" binding:"required"`
	Client           string                 `json:"client"`
	Duration         string                 `json:"duration"`
	TeamSize         string                 `json:"team_size"`
	FeaturedImageURL string                 `json:"featured_image_url"`
	Overview         models.ProjectOverview `json:"project_overview"`
	IsFeatured       bool                   `json:"is_featured"`
	IsPublished      *bool                  `json:"is_published"` // defaults to true
}

// ListProjects handles GET /v1/admin/projects
// The admin surface uses the same aggregation pipeline as the public one,
// with unpublished records included.
func (h *AdminHandler) ListProjects(c *gin.Context) {
	filter := parseListFilter(c)
	filter.IncludeUnpublished = true

	projects := h.services.Project.ListProjects(c.Request.Context(), filter)
	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// CreateProject handles POST /v1/admin/projects
// With ?storage=local the record goes to the override store instead of the
// remote record store.
func (h *AdminHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, description and category are required"})
		return
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	project := &models.Project{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Client:           req.Client,
		Duration:         req.Duration,
		TeamSize:         req.TeamSize,
		FeaturedImageURL: req.FeaturedImageURL,
		Overview:         req.Overview,
		IsFeatured:       req.IsFeatured,
		IsPublished:      isPublished,
	}

	h.validator.SanitizeProject(project)
	if err := h.validator.ValidateProject(project); err != nil {
		respondError(c, err)
		return
	}

	var id string
	var err error
	if c.Query("storage") == "local" {
		id, err = h.services.Project.CreateLocalProject(project)
	} else {
		id, err = h.services.Project.CreateProject(c.Request.Context(), project)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create project")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateProject handles PUT /v1/admin/projects/:id
func (h *AdminHandler) UpdateProject(c *gin.Context) {
	var update models.ProjectUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload"})
		return
	}

	h.validator.SanitizeUpdate(&update)
	if err := h.validator.ValidateUpdate(&update); err != nil {
		respondError(c, err)
		return
	}

	id := c.Param("id")
	var project *models.Project
	var err error
	if c.Query("storage") == "local" {
		project, err = h.services.Project.UpdateLocalProject(id, &update)
	} else {
		project, err = h.services.Project.UpdateProject(c.Request.Context(), id, &update)
	}
	if err != nil {
		h.log.Error().Err(err).Str("project_id", id).Msg("Failed to update project")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /v1/admin/projects/:id
func (h *AdminHandler) DeleteProject(c *gin.Context) {
	id := c.Param("id")

	var err error
	if c.Query("storage") == "local" {
		err = h.services.Project.DeleteLocalProject(id)
	} else {
		err = h.services.Project.DeleteProject(c.Request.Context(), id)
	}
	if err != nil {
		h.log.Error().Err(err).Str("project_id", id).Msg("Failed to delete project")
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
