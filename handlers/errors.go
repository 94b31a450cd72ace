package handlers

import (
	"errors"
	"net/http"

	"eventify/services/cart"
	"eventify/services/intelligence"
	"eventify/services/planner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errServiceNotInCatalog = errors.New("service not found")

// statusFor maps service-layer errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, planner.ErrPackageNotFound),
		errors.Is(err, planner.ErrServiceNotFound),
		errors.Is(err, errServiceNotInCatalog):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrServiceAlreadyAdded):
		return http.StatusConflict
	case errors.Is(err, planner.ErrLocationRequired),
		errors.Is(err, planner.ErrTitleRequired),
		errors.Is(err, planner.ErrServiceUnavailable),
		errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrInvalidService),
		errors.Is(err, intelligence.ErrEmptyMessage),
		errors.Is(err, intelligence.ErrInvalidBudget):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standard error body. Server errors are logged with
// their cause and answered with a generic label.
func respondError(c *gin.Context, label string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		getLogger(c).Error(label, zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{
		"error":   label,
		"message": err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"message": err.Error(),
	})
}
