// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	user := &User{}
	require.NoError(t, user.SetPassword("secret123"))

	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("secret123"))
	assert.Error(t, user.CheckPassword("wrong-password"))
	assert.Error(t, user.CheckPassword(""))
}

func TestUserPasswordHashesAreSalted(t *testing.T) {
	a, b := &User{}, &User{}
	require.NoError(t, a.SetPassword("secret123"))
	require.NoError(t, b.SetPassword("secret123"))

	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)
}
