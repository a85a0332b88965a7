package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Shopper@Example.COM", want: "shopper@example.com"},
		{name: "trims whitespace", input: "  shopper@example.com  ", want: "shopper@example.com"},
		{name: "already normalized", input: "shopper@example.com", want: "shopper@example.com"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleCustomer}).IsAdmin())
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromString("admin"))
	assert.Equal(t, RoleCustomer, RoleFromString("customer"))
	assert.Equal(t, RoleCustomer, RoleFromString("superuser"))
	assert.Equal(t, RoleCustomer, RoleFromString(""))
}
