package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoles(t *testing.T) {
	roles := ParseRoles([]string{"user", "merchant", "admin", ""})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
	assert.True(t, roles.Has(RoleAdmin))
	assert.False(t, Roles{RoleUser}.Has(RoleAdmin))
}

func TestRole_Claims(t *testing.T) {
	assert.Equal(t, []string{"admin"}, RoleAdmin.Claims())

	_, ok := ParseRole("Admin")
	assert.False(t, ok, "role names are case sensitive")
}
