package identity_test

import (
	"slices"
	"testing"

	"pizzastore/internal/core/domain/model/identity"
	"pizzastore/internal/core/domain/model/kernel"
	"pizzastore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIdentity(t *testing.T, login string, role identity.Role) identity.Identity {
	t.Helper()
	id, err := identity.NewIdentity(kernel.MustNewLogin(login), role)
	require.NoError(t, err)
	return id
}

func TestDefaultPolicy_Table(t *testing.T) {
	policy := identity.DefaultPolicy()

	expected := map[identity.Action][]identity.Role{
		identity.ActionManageOwnProfile:      {identity.Customer, identity.Driver, identity.Manager},
		identity.ActionBrowseCatalog:         {identity.Customer, identity.Driver, identity.Manager},
		identity.ActionPlaceOrder:            {identity.Customer, identity.Driver, identity.Manager},
		identity.ActionViewOwnOrders:         {identity.Customer, identity.Driver, identity.Manager},
		identity.ActionViewAllOrders:         {identity.Driver, identity.Manager},
		identity.ActionTransitionOrderStatus: {identity.Driver, identity.Manager},
		identity.ActionMutateCatalog:         {identity.Manager},
		identity.ActionManageUsers:           {identity.Manager},
	}
	require.Len(t, expected, len(identity.Actions()))

	for action, allowed := range expected {
		for _, role := range identity.Roles() {
			caller := mustIdentity(t, "user-"+role.String(), role)
			err := policy.Authorize(caller, action)

			if slices.Contains(allowed, role) {
				require.NoError(t, err, "%s should be allowed %s", role, action)
				continue
			}
			require.ErrorIs(t, err, identity.ErrForbidden, "%s should be denied %s", role, action)
			assert.Equal(t, errs.KindAuthorization, errs.KindOf(err))
		}
	}
}

func TestPolicy_AuthorizeUnauthenticated(t *testing.T) {
	err := identity.DefaultPolicy().Authorize(identity.Identity{}, identity.ActionBrowseCatalog)

	require.ErrorIs(t, err, identity.ErrIdentityIsNotConstructed)
	assert.Equal(t, errs.KindAuthentication, errs.KindOf(err))
}

func TestPolicy_AuthorizeOrderRead(t *testing.T) {
	policy := identity.DefaultPolicy()
	alice := mustIdentity(t, "alice", identity.Customer)
	bob := kernel.MustNewLogin("bob")

	require.NoError(t, policy.AuthorizeOrderRead(alice, alice.Login()))
	require.ErrorIs(t, policy.AuthorizeOrderRead(alice, bob), identity.ErrForbidden)
	require.NoError(t, policy.AuthorizeOrderRead(mustIdentity(t, "dave", identity.Driver), bob))
	require.NoError(t, policy.AuthorizeOrderRead(mustIdentity(t, "mia", identity.Manager), bob))
	require.ErrorIs(t, policy.AuthorizeOrderRead(identity.Identity{}, bob), errs.ErrAuthenticationFailed)
}

func TestNewPolicy(t *testing.T) {
	t.Run("custom table", func(t *testing.T) {
		policy, err := identity.NewPolicy(map[identity.Role][]identity.Action{
			identity.Driver: {identity.ActionTransitionOrderStatus},
		})
		require.NoError(t, err)

		assert.True(t, policy.Allows(identity.Driver, identity.ActionTransitionOrderStatus))
		assert.False(t, policy.Allows(identity.Driver, identity.ActionBrowseCatalog))
		assert.False(t, policy.Allows(identity.Manager, identity.ActionTransitionOrderStatus))
		assert.Equal(t, map[identity.Role][]identity.Action{
			identity.Driver: {identity.ActionTransitionOrderStatus},
		}, policy.Grants())
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		_, err := identity.NewPolicy(map[identity.Role][]identity.Action{
			identity.Manager: {"launch_rockets"},
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := identity.NewPolicy(map[identity.Role][]identity.Action{
			identity.UnknownRole: {identity.ActionBrowseCatalog},
		})
		require.ErrorIs(t, err, identity.ErrInvalidRole)
	})

	t.Run("zero value denies", func(t *testing.T) {
		var policy identity.Policy
		require.ErrorIs(t, policy.Authorize(mustIdentity(t, "mia", identity.Manager), identity.ActionManageUsers), identity.ErrForbidden)
	})
}
