package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp SessionResponse
	decode(t, w, &resp)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "user", string(resp.User.Role))
	assert.NotContains(t, w.Body.String(), "secret123")

	tests := []struct {
		name        string
		req         RegisterRequest
		wantStatus  int
		wantMessage string
	}{
		{"duplicate email", RegisterRequest{"Alice", "alice@example.com", "secret123"}, http.StatusConflict, "user already exists"},
		{"missing name", RegisterRequest{"", "bob@example.com", "secret123"}, http.StatusBadRequest, "name is required"},
		{"bad email", RegisterRequest{"Bob", "bob.example.com", "secret123"}, http.StatusBadRequest, "invalid email format"},
		{"short password", RegisterRequest{"Bob", "bob@example.com", "123"}, http.StatusBadRequest, "password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/auth/register", "", tt.req)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Alice", "alice@example.com")

	t.Run("success", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "ALICE@example.com", Password: "secret123"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp SessionResponse
		decode(t, w, &resp)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Alice", resp.User.Name)
	})

	tests := []struct {
		name        string
		req         LoginRequest
		wantStatus  int
		wantMessage string
	}{
		{"wrong password", LoginRequest{"alice@example.com", "wrong-password"}, http.StatusUnauthorized, "invalid credentials"},
		{"unknown email", LoginRequest{"nobody@example.com", "secret123"}, http.StatusUnauthorized, "invalid credentials"},
		{"missing password", LoginRequest{"alice@example.com", ""}, http.StatusBadRequest, "email and password are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/auth/login", "", tt.req)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestAuthHandler_MeAndUpdateProfile(t *testing.T) {
	s := newTestServer(t)
	token, id := s.register(t, "Alice", "alice@example.com")

	w := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	decode(t, w, &resp)
	assert.Equal(t, id, resp.User.ID)

	w = s.do(t, http.MethodPut, "/api/auth/update", token, UpdateProfileRequest{Phone: "+380501112233", Address: "Kyiv"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	decode(t, w, &resp)
	assert.Equal(t, "Alice", resp.User.Name, "empty name leaves it unchanged")
	assert.Equal(t, "+380501112233", resp.User.Phone)
	assert.Equal(t, "Kyiv", resp.User.Address)
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{"no header", "", "not authorized, no token"},
		{"not a bearer token", "Basic dXNlcjpwYXNz", "not authorized, no token"},
		{"garbage token", "Bearer not-a-jwt", "not authorized, token failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t, http.MethodGet, "/api/auth/me")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(s.router, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var resp ErrorResponse
			decode(t, w, &resp)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Empty(t, bearerToken("Bearer"))
	assert.Empty(t, bearerToken("Token abc"))
	assert.Empty(t, bearerToken(""))
}
