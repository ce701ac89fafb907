package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"shopapi.app/internal/core/auth"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

const (
	contextUserID = "userID"
	contextRole   = "role"
)

// authMiddleware requires a valid bearer token and stores the caller identity on the context
func (s *HTTPServerAdapter) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		claims, err := s.authUseCase.Authenticate(token)
		if err != nil {
			s.handleError(c, err)
			return
		}

		c.Set(contextUserID, claims.UserID)
		c.Set(contextRole, auth.Role(claims.Role))
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// caller returns the identity set by authMiddleware
func caller(c *gin.Context) (string, auth.Role, error) {
	userID := c.GetString(contextUserID)
	if userID == "" {
		return "", "", errors.NewUnauthorizedError("not authorized")
	}
	role, _ := c.Get(contextRole)
	r, _ := role.(auth.Role)
	return userID, r, nil
}

// requestLogger logs one line per request through the Logger port
func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		logger.Debug("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("route", route),
			ports.F("status", c.Writer.Status()),
			ports.F("duration", time.Since(start)))
	}
}
