package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/project-showcase-api/internal/models"
	"github.com/project-showcase-api/internal/service"
	"github.com/rs/zerolog"
)

// ProjectHandler handles the public listing endpoints
type ProjectHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(services *service.Services, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		services: services,
		log:      log.With().Str("handler", "project").Logger(),
	}
}

// ListProjects handles GET /v1/projects
// Read failures never surface here: the service degrades to the bundled
// default set, so this endpoint always returns a renderable list.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filter := parseListFilter(c)
	projects := h.services.Project.ListProjects(c.Request.Context(), filter)

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// ListFeatured handles GET /v1/projects/featured
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects := h.services.Project.ListFeaturedProjects(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// GetProject handles GET /v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.services.Project.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// IncrementView handles POST /v1/projects/:id/view
// Always returns 204: view counting is best-effort telemetry.
func (h *ProjectHandler) IncrementView(c *gin.Context) {
	h.services.Project.IncrementViewCount(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// IncrementLike handles POST /v1/projects/:id/like
func (h *ProjectHandler) IncrementLike(c *gin.Context) {
	if err := h.services.Project.IncrementLikeCount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseListFilter reads the shared listing query parameters
func parseListFilter(c *gin.Context) models.ListFilter {
	filter := models.ListFilter{
		Category:   models.CategoryAll,
		SearchTerm: c.Query("q"),
	}

	if category := c.Query("category"); category != "" {
		filter.Category = models.Category(category)
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	return filter
}
