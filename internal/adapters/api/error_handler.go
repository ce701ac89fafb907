package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopapi.app/internal/ports"
	errorspkg "shopapi.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is a success response that carries only a message
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// statusForError maps an application error type to an HTTP status and client message
func statusForError(err error) (int, string) {
	switch {
	case errorspkg.IsValidationError(err):
		return http.StatusBadRequest, errorspkg.MessageOf(err)
	case errorspkg.IsUnauthorizedError(err):
		return http.StatusUnauthorized, errorspkg.MessageOf(err)
	case errorspkg.IsForbiddenError(err):
		return http.StatusForbidden, errorspkg.MessageOf(err)
	case errorspkg.IsNotFoundError(err):
		return http.StatusNotFound, errorspkg.MessageOf(err)
	case errorspkg.IsAlreadyExistsError(err):
		return http.StatusConflict, errorspkg.MessageOf(err)
	case errorspkg.IsDatabaseError(err), errorspkg.IsCacheError(err):
		// infrastructure details stay in the logs
		return http.StatusInternalServerError, "Internal server error"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// handleError writes the error response and logs server-side failures
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, message := statusForError(err)

	if statusCode >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("Request failed",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("errorType", errorspkg.TypeOf(err).String()),
			ports.F("error", err))
	}

	c.AbortWithStatusJSON(statusCode, ErrorResponse{Success: false, Message: message})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
