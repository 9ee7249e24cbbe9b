// internal/utils/jwt_test.go
package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID, "Artisan", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "Artisan", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ValidateJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(uuid.New(), "Buyer", 1)
	require.NoError(t, err)

	// Corrupt the signature segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = ValidateJWT(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(uuid.New(), "Buyer", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateJWT(uuid.New(), "Buyer", 1)
	require.NoError(t, err)

	SetJWTSecret("different-secret")
	defer SetJWTSecret("test-secret")

	_, err = ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
