package order_test

import (
	"fmt"
	"testing"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRole(t *testing.T, kind account.RoleKind) account.Role {
	t.Helper()
	user, err := account.NewUser(kernel.NewUUID(), "Mario", "Rossi", "RSSMRA80A01H501U", "")
	require.NoError(t, err)
	role, err := account.RestoreRole(kind, user)
	require.NoError(t, err)
	return role
}

func allRoles(t *testing.T) map[string]account.Role {
	t.Helper()
	return map[string]account.Role{
		"customer":      makeRole(t, account.RoleCustomer),
		"vendor":        makeRole(t, account.RoleVendor),
		"administrator": makeRole(t, account.RoleAdministrator),
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.InPreparation))
		assert.Equal(t, 4, int(order.Ready))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Created,
			order.Confirmed,
			order.InPreparation,
			order.Ready,
			order.Delivered,
			order.Cancelled,
		} {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
			err := status.Validate()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "InPreparation", order.InPreparation.String())
	assert.Equal(t, "Ready", order.Ready.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Created,
			order.Confirmed,
			order.InPreparation,
			order.Ready,
			order.Delivered,
			order.Cancelled,
		} {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should fail for an unknown name", func(t *testing.T) {
		_, err := order.ParseStatus("Shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.InPreparation.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_TransitionGraph(t *testing.T) {
	admin := makeRole(t, account.RoleAdministrator)

	// The administrator may drive every edge, so failures below are purely
	// about the graph.
	validEdges := []struct{ from, to order.Status }{
		{order.Created, order.Confirmed},
		{order.Created, order.Cancelled},
		{order.Confirmed, order.InPreparation},
		{order.Confirmed, order.Cancelled},
		{order.InPreparation, order.Ready},
		{order.InPreparation, order.Cancelled},
		{order.Ready, order.Delivered},
	}

	t.Run("should allow every edge of the graph", func(t *testing.T) {
		for _, edge := range validEdges {
			t.Run(fmt.Sprintf("%s to %s", edge.from, edge.to), func(t *testing.T) {
				newStatus, err := edge.from.TransitionTo(edge.to, admin)

				require.NoError(t, err)
				assert.Equal(t, edge.to, newStatus)
			})
		}
	})

	t.Run("should reject every move outside the graph", func(t *testing.T) {
		all := []order.Status{
			order.Created, order.Confirmed, order.InPreparation,
			order.Ready, order.Delivered, order.Cancelled,
		}
		valid := make(map[[2]order.Status]bool, len(validEdges))
		for _, edge := range validEdges {
			valid[[2]order.Status{edge.from, edge.to}] = true
		}

		for _, from := range all {
			for _, to := range all {
				if valid[[2]order.Status{from, to}] {
					continue
				}
				_, err := from.TransitionTo(to, admin)

				require.Error(t, err, "%s -> %s must be rejected", from, to)
				require.ErrorIs(t, err, order.ErrInvalidTransition)
			}
		}
	})

	t.Run("should reject skipping ahead for any role", func(t *testing.T) {
		for name, role := range allRoles(t) {
			_, err := order.Created.TransitionTo(order.Ready, role)

			require.Error(t, err, "role %s", name)
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("should reject re-reaching the current status", func(t *testing.T) {
		for name, role := range allRoles(t) {
			_, err := order.Confirmed.TransitionTo(order.Confirmed, role)

			require.Error(t, err, "role %s", name)
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("should reject cancelling from Ready regardless of role", func(t *testing.T) {
		for name, role := range allRoles(t) {
			_, err := order.Ready.TransitionTo(order.Cancelled, role)

			require.Error(t, err, "role %s", name)
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_EdgeAuthorization(t *testing.T) {
	roles := allRoles(t)

	t.Run("any role may confirm a created order", func(t *testing.T) {
		for name, role := range roles {
			_, err := order.Created.TransitionTo(order.Confirmed, role)
			require.NoError(t, err, "role %s", name)
		}
	})

	t.Run("kitchen stages require vendor or administrator", func(t *testing.T) {
		for _, edge := range []struct{ from, to order.Status }{
			{order.Confirmed, order.InPreparation},
			{order.InPreparation, order.Ready},
		} {
			_, err := edge.from.TransitionTo(edge.to, roles["customer"])
			require.ErrorIs(t, err, account.ErrMissingAuthorization)

			_, err = edge.from.TransitionTo(edge.to, roles["vendor"])
			require.NoError(t, err)

			_, err = edge.from.TransitionTo(edge.to, roles["administrator"])
			require.NoError(t, err)
		}
	})

	t.Run("cancellation requires customer or administrator", func(t *testing.T) {
		for _, from := range []order.Status{order.Created, order.Confirmed, order.InPreparation} {
			_, err := from.TransitionTo(order.Cancelled, roles["vendor"])
			require.ErrorIs(t, err, account.ErrMissingAuthorization)

			_, err = from.TransitionTo(order.Cancelled, roles["customer"])
			require.NoError(t, err)

			_, err = from.TransitionTo(order.Cancelled, roles["administrator"])
			require.NoError(t, err)
		}
	})

	t.Run("delivery requires administrator", func(t *testing.T) {
		_, err := order.Ready.TransitionTo(order.Delivered, roles["customer"])
		require.ErrorIs(t, err, account.ErrMissingAuthorization)

		_, err = order.Ready.TransitionTo(order.Delivered, roles["vendor"])
		require.ErrorIs(t, err, account.ErrMissingAuthorization)

		_, err = order.Ready.TransitionTo(order.Delivered, roles["administrator"])
		require.NoError(t, err)
	})

	t.Run("should reject a zero value role before anything else", func(t *testing.T) {
		var role account.Role

		_, err := order.Created.TransitionTo(order.Confirmed, role)

		require.Error(t, err)
		assert.Equal(t, account.ErrRoleIsNotConstructed, err)
	})
}
