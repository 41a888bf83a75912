package api

import (
	"errors"
	"net/http"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP responses. Validation problems are
// the caller's fault and echo their message; upstream failures answer 500
// with a generic message so provider detail stays in the logs.
func respondError(c *gin.Context, err error, upstreamMessage string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamMessage})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamMessage})
}
