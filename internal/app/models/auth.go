package models

import (
	"dentaflow-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// AuthClaims are the claims carried by the bearer token of every staff request.
type AuthClaims struct {
	ClinicID string `json:"clinic_id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

func (c *AuthClaims) ProfileID() string {
	return c.Subject
}

// HasProfile reports whether the subject is a profile row. Operators calling
// with the API key carry a fixed non-profile subject.
func (c *AuthClaims) HasProfile() bool {
	_, err := uuid.Parse(c.Subject)
	return err == nil
}

// ActorLabel names the caller in audit columns.
func (c *AuthClaims) ActorLabel() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

func (c *AuthClaims) IsSuperAdmin() bool {
	return c.Role == constvars.ROLE_SUPER_ADMIN
}

func (c *AuthClaims) HasRole(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}
