package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestAuthClaimsHasProfile(t *testing.T) {
	profile := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "3c9e2b7a-1d4f-4a8b-9c6e-5f0a1b2c3d4e"}}
	operator := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "api-key-superadmin"}}

	assert.True(t, profile.HasProfile())
	assert.False(t, operator.HasProfile())
}

func TestAuthClaimsActorLabel(t *testing.T) {
	withEmail := &AuthClaims{Email: "admin@dentaflow.io", RegisteredClaims: jwt.RegisteredClaims{Subject: "3c9e2b7a-1d4f-4a8b-9c6e-5f0a1b2c3d4e"}}
	withoutEmail := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "api-key-superadmin"}}

	assert.Equal(t, "admin@dentaflow.io", withEmail.ActorLabel())
	assert.Equal(t, "api-key-superadmin", withoutEmail.ActorLabel())
}

func TestManualPaymentReviewerProfileRef(t *testing.T) {
	assert.Nil(t, ManualPaymentReviewer{Label: "api-key-superadmin"}.ProfileRef())

	ref := ManualPaymentReviewer{ProfileID: "3c9e2b7a-1d4f-4a8b-9c6e-5f0a1b2c3d4e", Label: "admin"}.ProfileRef()
	if assert.NotNil(t, ref) {
		assert.Equal(t, "3c9e2b7a-1d4f-4a8b-9c6e-5f0a1b2c3d4e", *ref)
	}
}
