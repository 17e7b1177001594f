package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

var (
	admin = domain.Principal{Username: "carol", Role: domain.RoleAdmin}
	bob   = domain.Principal{Username: "bob", Role: domain.RoleUser}
)

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAdmin(admin))
	assert.False(t, IsAdmin(bob))

	assert.True(t, IsOwner(bob, "bob"))
	assert.False(t, IsOwner(bob, "dave"))

	// админ проходит по роли даже для чужого ресурса
	assert.True(t, IsOwnerOrAdmin(admin, "bob"))
	// владелец проходит по владению
	assert.True(t, IsOwnerOrAdmin(bob, "bob"))
	// обычный пользователь на чужом ресурсе — нет
	assert.False(t, IsOwnerOrAdmin(bob, "dave"))
}

func TestChecks(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckIsAdmin(admin))
	assert.NoError(t, CheckIsOwner(bob, "bob"))
	assert.NoError(t, CheckIsOwnerOrAdmin(admin, "bob"))
	assert.NoError(t, CheckIsOwnerOrAdmin(bob, "bob"))

	for name, err := range map[string]error{
		"not admin":          CheckIsAdmin(bob),
		"not owner":          CheckIsOwner(bob, "dave"),
		"not owner or admin": CheckIsOwnerOrAdmin(bob, "dave"),
	} {
		require.Error(t, err, name)
		assert.Equal(t, domain.KindAccessDenied, domain.KindOf(err), name)
	}
}

func TestCheckMessages(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, CheckIsAdmin(bob), "You are not admin")
	assert.EqualError(t, CheckIsOwner(bob, "dave"), "You are not owner of this resource")
	assert.EqualError(t, CheckIsOwnerOrAdmin(bob, "dave"),
		"You don't have permission to access this resource")
}
