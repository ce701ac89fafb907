package external

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenIssuer implements TokenIssuer port with HS256-signed JWTs
type JWTTokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokenIssuer(secret, issuer string, ttl time.Duration) (*JWTTokenIssuer, error) {
	if secret == "" {
		return nil, errors.NewConfigurationError("jwt secret cannot be empty", nil)
	}
	if ttl <= 0 {
		return nil, errors.NewConfigurationError("jwt ttl must be positive", nil)
	}

	return &JWTTokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (j *JWTTokenIssuer) Issue(userID, role string) (string, error) {
	now := j.now()
	claims := accessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (j *JWTTokenIssuer) Verify(token string) (*ports.TokenClaims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, errors.Wrap(errors.UnauthorizedError, "invalid token", err)
	}
	if claims.Subject == "" {
		return nil, errors.NewUnauthorizedError("token has no subject")
	}

	return &ports.TokenClaims{
		UserID:    claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
