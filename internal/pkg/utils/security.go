package utils

import (
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// ParseIdentityJWT validates an HS256 token and returns its subject.
func ParseIdentityJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	subject, ok := claims[constvars.JWTClaimSubject].(string)
	if !ok || subject == "" {
		return "", exceptions.ErrTokenSubjectMissing(nil)
	}
	return subject, nil
}
