package utils

import (
	"context"
	"crypto/subtle"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/exceptions"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateAuthToken signs staff claims with HS256. Used by operator tooling and tests.
func GenerateAuthToken(claims *models.AuthClaims, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseAuthToken(tokenString, secret, issuer string) (*models.AuthClaims, error) {
	claims := new(models.AuthClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}
	if !token.Valid || claims.Subject == "" || claims.Role == "" {
		return nil, exceptions.ErrTokenInvalid(nil)
	}
	if issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, exceptions.ErrTokenInvalid(errors.New("issuer mismatch"))
	}
	return claims, nil
}

func SecureCompare(given, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}

// GetAuthClaims returns the claims stored by the authentication middlewares.
func GetAuthClaims(ctx context.Context) (*models.AuthClaims, error) {
	claims, ok := ctx.Value(constvars.CONTEXT_AUTH_CLAIMS_KEY).(*models.AuthClaims)
	if !ok || claims == nil {
		return nil, exceptions.ErrAuthClaimsMissing(nil)
	}
	return claims, nil
}
