package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_VerifyPassword(t *testing.T) {
	hash, err := HashPassword("changeme")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme", hash)

	u := &User{ID: 1, Username: "admin", Password: hash}

	assert.True(t, u.VerifyPassword("changeme"))
	assert.False(t, u.VerifyPassword("wrong"))

	// a malformed hash never verifies
	u.Password = "plain"
	assert.False(t, u.VerifyPassword("plain"))

	// accounts without a password can not log in
	u.Password = ""
	assert.False(t, u.VerifyPassword(""))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
	assert.Equal(t, "settings", Setting{}.TableName())
}
