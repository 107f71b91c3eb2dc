package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken(42, "admin", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := VerifyAdminToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(42), claims["admin_id"])
	assert.Equal(t, "admin", claims["username"])
}

func TestVerifyAdminTokenRejectsExpired(t *testing.T) {
	token, err := GenerateAdminToken(42, "admin", -time.Minute)
	assert.NoError(t, err)

	_, err = VerifyAdminToken(token)
	assert.Error(t, err)
}

func TestVerifyAdminTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyAdminToken("not-a-token")
	assert.Error(t, err)
}
