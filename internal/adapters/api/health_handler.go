package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopapi.app/internal/ports"
)

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Success    bool                          `json:"success"`
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests. A degraded cache still answers
// 200 because reads fall back to the store.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	status := ports.OverallStatus(components)

	code := http.StatusOK
	if status == ports.HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Success:    code == http.StatusOK,
		Status:     status,
		Components: components,
	})
}
