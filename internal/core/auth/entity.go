package auth

import (
	"fmt"
	"time"

	"shopapi.app/pkg/validation"
)

// Role grants access to administrative operations
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const minPasswordLength = 6

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered customer
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is the result of a successful register or login
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RegisterRequest represents a sign-up request
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// IsValid validates register request
func (r *RegisterRequest) IsValid() error {
	if !validation.IsNotEmpty(r.Name) {
		return fmt.Errorf("name is required")
	}
	if !validation.IsNotEmpty(r.Email) {
		return fmt.Errorf("email is required")
	}
	if !validation.IsValidEmail(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if len(r.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// LoginRequest represents a sign-in request
type LoginRequest struct {
	Email    string
	Password string
}

// IsValid validates login request
func (r *LoginRequest) IsValid() error {
	if !validation.IsNotEmpty(r.Email) || r.Password == "" {
		return fmt.Errorf("email and password are required")
	}
	return nil
}

// ProfileUpdate carries profile changes; empty values are left unchanged
type ProfileUpdate struct {
	Name    string
	Phone   string
	Address string
}
