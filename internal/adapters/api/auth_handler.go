package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopapi.app/internal/core/auth"
)

// RegisterRequest represents the body of POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents the body of PUT /api/auth/update
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SessionResponse is returned after register and login
type SessionResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    *auth.User `json:"user"`
}

// UserResponse is the body of a single user
type UserResponse struct {
	Success bool       `json:"success"`
	User    *auth.User `json:"user"`
}

// register handles POST /api/auth/register requests
func (s *HTTPServerAdapter) register(c *gin.Context) {
	var httpReq RegisterRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	session, err := s.authUseCase.Register(c.Request.Context(), auth.RegisterRequest{
		Name:     httpReq.Name,
		Email:    httpReq.Email,
		Password: httpReq.Password,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Success: true, Token: session.Token, User: session.User})
}

// login handles POST /api/auth/login requests
func (s *HTTPServerAdapter) login(c *gin.Context) {
	var httpReq LoginRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	session, err := s.authUseCase.Login(c.Request.Context(), auth.LoginRequest{
		Email:    httpReq.Email,
		Password: httpReq.Password,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Success: true, Token: session.Token, User: session.User})
}

// me handles GET /api/auth/me requests
func (s *HTTPServerAdapter) me(c *gin.Context) {
	userID, _, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	user, err := s.authUseCase.Me(c.Request.Context(), userID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Success: true, User: user})
}

// updateProfile handles PUT /api/auth/update requests
func (s *HTTPServerAdapter) updateProfile(c *gin.Context) {
	userID, _, err := caller(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var httpReq UpdateProfileRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	user, err := s.authUseCase.UpdateProfile(c.Request.Context(), userID, auth.ProfileUpdate{
		Name:    httpReq.Name,
		Phone:   httpReq.Phone,
		Address: httpReq.Address,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Success: true, User: user})
}
