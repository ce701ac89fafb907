package external

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi.app/pkg/errors"
)

const testSecret = "0123456789abcdef-test-secret"

func TestJWTTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewJWTTokenIssuer(testSecret, "shopapi", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("u1", "admin")
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTTokenIssuer_Rejects(t *testing.T) {
	issuer, err := NewJWTTokenIssuer(testSecret, "shopapi", time.Hour)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		issued := time.Now().Add(-2 * time.Hour)
		old := *issuer
		old.now = func() time.Time { return issued }
		token, err := old.Issue("u1", "user")
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.True(t, errors.IsUnauthorizedError(err))
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewJWTTokenIssuer("another-secret-of-enough-length", "shopapi", time.Hour)
		require.NoError(t, err)
		token, err := other.Issue("u1", "user")
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("other issuer", func(t *testing.T) {
		other, err := NewJWTTokenIssuer(testSecret, "someone-else", time.Hour)
		require.NoError(t, err)
		token, err := other.Issue("u1", "user")
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "u1",
			Issuer:    "shopapi",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.True(t, errors.IsUnauthorizedError(err))
	})
}

func TestNewJWTTokenIssuer_Validation(t *testing.T) {
	_, err := NewJWTTokenIssuer("", "shopapi", time.Hour)
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewJWTTokenIssuer(testSecret, "shopapi", 0)
	assert.True(t, errors.IsConfigurationError(err))
}
