package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shopapi.app/pkg/errors"
)

func setupErrorTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	server := &HTTPServerAdapter{logger: newTestLogger(t)}
	router := gin.New()

	register := func(path string, err error) {
		router.GET(path, func(c *gin.Context) { server.handleError(c, err) })
	}
	register("/test/validation", errors.NewValidationError("validation failed"))
	register("/test/unauthorized", errors.NewUnauthorizedError("invalid credentials"))
	register("/test/forbidden", errors.NewForbiddenError("not authorized to access this order"))
	register("/test/not-found", errors.NewNotFoundError("product not found"))
	register("/test/already-exists", errors.NewAlreadyExistsError("user already exists"))
	register("/test/database", errors.NewDatabaseError("database connection failed", fmt.Errorf("dial tcp")))
	register("/test/cache", errors.NewCacheError("redis down", nil))
	register("/test/wrapped", fmt.Errorf("get product: %w", errors.NewNotFoundError("product not found")))
	register("/test/plain", fmt.Errorf("boom"))

	return router
}

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	router := setupErrorTestRouter(t)

	tests := []struct {
		path        string
		wantStatus  int
		wantMessage string
	}{
		{"/test/validation", http.StatusBadRequest, "validation failed"},
		{"/test/unauthorized", http.StatusUnauthorized, "invalid credentials"},
		{"/test/forbidden", http.StatusForbidden, "not authorized to access this order"},
		{"/test/not-found", http.StatusNotFound, "product not found"},
		{"/test/already-exists", http.StatusConflict, "user already exists"},
		{"/test/database", http.StatusInternalServerError, "Internal server error"},
		{"/test/cache", http.StatusInternalServerError, "Internal server error"},
		{"/test/wrapped", http.StatusNotFound, "product not found"},
		{"/test/plain", http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantMessage, response.Message)
		})
	}
}
