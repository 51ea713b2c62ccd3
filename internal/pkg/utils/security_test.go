package utils

import (
	"net/http"
	"panel-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentityJWT(t *testing.T) {
	const secret = "test-secret"

	t.Run("Valid Token", func(t *testing.T) {
		token, err := GenerateIdentityJWT("identity-123", secret, 1)
		require.NoError(t, err)

		subject, err := ParseIdentityJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "identity-123", subject, "subject should be returned as the owner identity")
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateIdentityJWT("identity-123", secret, 1)
		require.NoError(t, err)

		_, err = ParseIdentityJWT(token, "another-secret")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCodeOf(err), "bad signature should map to 401")
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "identity-123",
			"exp": time.Now().Add(-time.Minute).Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseIdentityJWT(signed, secret)
		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCodeOf(err), "expired token should map to 401")
	})

	t.Run("Missing Subject", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseIdentityJWT(signed, secret)
		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCodeOf(err), "token without subject should map to 401")
	})
}
