package actor_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("accepts_known_roles", func(t *testing.T) {
		testCases := []struct {
			claim    string
			expected actor.Role
		}{
			{"customer", actor.Customer},
			{"user", actor.Customer},
			{"admin", actor.Admin},
			{"rider", actor.Rider},
			{" Admin ", actor.Admin},
			{"RIDER", actor.Rider},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("parses %q", tc.claim), func(t *testing.T) {
				role, err := actor.ParseRole(tc.claim)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, role)
			})
		}
	})

	t.Run("rejects_unknown_roles", func(t *testing.T) {
		for _, claim := range []string{"", "owner", "superuser"} {
			role, err := actor.ParseRole(claim)
			require.Error(t, err)
			assert.Equal(t, actor.Anonymous, role)
		}
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "anonymous", actor.Anonymous.String())
	assert.Equal(t, "customer", actor.Customer.String())
	assert.Equal(t, "admin", actor.Admin.String())
	assert.Equal(t, "rider", actor.Rider.String())
	assert.Equal(t, "anonymous", actor.Role(99).String())
}

func TestNewActor(t *testing.T) {
	t.Run("creates_authenticated_actor", func(t *testing.T) {
		id, _ := kernel.IDFromString("user-1")

		a, err := actor.NewActor(id, "Alice", actor.Customer)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.IsCustomer())
		assert.False(t, a.IsAnonymous())
		assert.Equal(t, "Alice", a.Name())
		assert.True(t, a.ID().IsEqual(id))
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		var zero kernel.ID

		_, err := actor.NewActor(zero, "Alice", actor.Customer)

		require.Error(t, err)
	})

	t.Run("rejects_anonymous_role", func(t *testing.T) {
		id, _ := kernel.IDFromString("user-1")

		_, err := actor.NewActor(id, "Alice", actor.Anonymous)

		require.Error(t, err)
	})
}

func TestAnonymousActor(t *testing.T) {
	a := actor.AnonymousActor()

	require.NoError(t, a.Validate())
	assert.True(t, a.IsAnonymous())
	assert.False(t, a.IsCustomer())
	assert.False(t, a.IsAdmin())
	assert.False(t, a.IsRider())
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var a actor.Actor

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, actor.ErrActorIsNotConstructed, err)
	})
}
