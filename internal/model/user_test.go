package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("superuser").Valid())
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	user := User{
		ID:       1,
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$2a$10$hash",
		Role:     RoleUser,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "$2a$10$hash")
}
