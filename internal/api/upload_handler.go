package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/project-showcase-api/internal/config"
	"github.com/project-showcase-api/internal/service"
	"github.com/rs/zerolog"
)

// UploadHandler handles admin image uploads
type UploadHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "upload").Logger(),
	}
}

// UploadImage handles POST /v1/admin/uploads
// mode=remote (default) uploads to object storage and returns a public URL;
// mode=local encodes the file as a base64 data URI. The size gate runs on
// the multipart header before the file content is read.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	defer file.Close()

	mode := c.Query("mode")
	if mode == "" {
		mode = "remote"
	}

	maxSize := h.cfg.Upload.MaxRemoteSize
	if mode == "local" {
		maxSize = h.cfg.Upload.MaxLocalSize
	}
	if header.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "file too large, max size is " + formatMiB(maxSize),
		})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to read upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	var value string
	switch mode {
	case "remote":
		value, err = h.services.Image.UploadRemote(
			c.Request.Context(), header.Filename, header.Size, content, c.Query("project_id"))
	case "local":
		value, err = h.services.Image.UploadLocal(header.Filename, header.Size, content)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be remote or local"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("filename", header.Filename).Str("mode", mode).Msg("Upload failed")
		respondError(c, err)
		return
	}

	h.log.Info().
		Str("filename", header.Filename).
		Str("mode", mode).
		Int64("size_bytes", header.Size).
		Msg("Image upload completed")

	c.JSON(http.StatusCreated, gin.H{"featured_image_url": value})
}

// VerifyStorage handles GET /v1/admin/storage/health
func (h *UploadHandler) VerifyStorage(c *gin.Context) {
	if err := h.services.Image.VerifyStorage(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"storage": "reachable"})
}

func formatMiB(size int64) string {
	return strconv.FormatInt(size/(1024*1024), 10) + " MiB"
}
