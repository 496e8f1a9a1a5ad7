package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/project-showcase-api/internal/apperr"
)

// respondError maps the error taxonomy onto HTTP status codes. Messages are
// human-readable and safe for direct display in the admin UI.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case apperr.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrTimeout):
		status = http.StatusGatewayTimeout
	case apperr.IsUploadFailed(err), apperr.IsWriteFailed(err):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
