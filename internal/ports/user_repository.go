package ports

import (
	"context"
	"time"
)

// UserData represents user data for persistence
type UserData struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines the contract for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *UserData) error
	FindByID(ctx context.Context, id string) (*UserData, error)
	FindByEmail(ctx context.Context, email string) (*UserData, error)
	Update(ctx context.Context, user *UserData) error
}

// TokenClaims is the identity carried by an access token
type TokenClaims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies access tokens
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
