package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klowq/admin-dashboard/internal/models"
	"github.com/klowq/admin-dashboard/pkg/logger"
	"github.com/klowq/admin-dashboard/pkg/metrics"
	"github.com/klowq/admin-dashboard/pkg/middleware"
)

// messages are the client-facing texts for one resource.
type messages struct {
	notFound  string
	invalid   string
	duplicate string
	failure   string
}

// fail maps a store error to a status and an {"error": ...} body. Storage
// failures are logged with the request id and never leak details.
func fail(c *gin.Context, err error, m messages) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": m.notFound})
	case errors.Is(err, models.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"error": m.duplicate})
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": m.invalid})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		logger.Errorf("request %s: %s: %v", middleware.GetRequestID(c), m.failure, err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": m.failure})
	}
}

// rejected reports errors that are the caller's fault rather than the store's.
func rejected(err error) bool {
	return errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrDuplicateName) ||
		errors.Is(err, models.ErrInvalidInput)
}

func observe(store, op string, err error) {
	metrics.ObserveStore(store, op, err, rejected)
}

func badBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
