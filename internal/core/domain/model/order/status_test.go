package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.Accepted))
		assert.Equal(t, 3, int(order.InPreparation))
		assert.Equal(t, 4, int(order.Prepared))
		assert.Equal(t, 5, int(order.InDelivery))
		assert.Equal(t, 6, int(order.Finished))
		assert.Equal(t, 7, int(order.Canceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Created,
			order.Accepted,
			order.InPreparation,
			order.Prepared,
			order.InDelivery,
			order.Finished,
			order.Canceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every persisted form", func(t *testing.T) {
		cases := map[string]order.Status{
			"created":        order.Created,
			"accepted":       order.Accepted,
			"in_preparation": order.InPreparation,
			"prepared":       order.Prepared,
			"in_delivery":    order.InDelivery,
			"finished":       order.Finished,
			"canceled":       order.Canceled,
		}

		for str, expected := range cases {
			status, err := order.StatusFromString(str)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
			assert.Equal(t, str, status.String())
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("assigned")
		require.Error(t, err)

		_, err = order.StatusFromString("")
		require.Error(t, err)
	})
}

func TestStatus_CanCancelAndModify(t *testing.T) {
	t.Run("only created permits cancellation and modification", func(t *testing.T) {
		all := []order.Status{
			order.Created,
			order.Accepted,
			order.InPreparation,
			order.Prepared,
			order.InDelivery,
			order.Finished,
			order.Canceled,
		}

		for _, status := range all {
			expected := status == order.Created
			assert.Equal(t, expected, status.CanCancel(), "CanCancel for %s", status)
			assert.Equal(t, expected, status.CanModify(), "CanModify for %s", status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Finished.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.InDelivery.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow each happy path step", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.Accepted},
			{order.Accepted, order.InPreparation},
			{order.InPreparation, order.Prepared},
			{order.Prepared, order.InDelivery},
			{order.InDelivery, order.Finished},
		}

		for _, step := range steps {
			result, err := step.from.TransitionTo(step.to)
			require.NoError(t, err, "%s -> %s", step.from, step.to)
			assert.Equal(t, step.to, result)
		}
	})

	t.Run("should allow cancellation only from created", func(t *testing.T) {
		result, err := order.Created.TransitionTo(order.Canceled)
		require.NoError(t, err)
		assert.Equal(t, order.Canceled, result)

		for _, from := range []order.Status{
			order.Accepted, order.InPreparation, order.Prepared,
			order.InDelivery, order.Finished, order.Canceled,
		} {
			_, err = from.TransitionTo(order.Canceled)
			require.Error(t, err, "cancel from %s", from)

			var forbidden *order.ForbiddenTransitionError
			require.ErrorAs(t, err, &forbidden)
			assert.Equal(t, from, forbidden.From)
			assert.NotEmpty(t, forbidden.Message)
		}
	})

	t.Run("should reject skipping a step", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.InPreparation)
		require.Error(t, err)

		_, err = order.Accepted.TransitionTo(order.InDelivery)
		require.Error(t, err)
	})

	t.Run("should reject going backwards", func(t *testing.T) {
		_, err := order.InPreparation.TransitionTo(order.Accepted)
		require.Error(t, err)

		_, err = order.Finished.TransitionTo(order.InDelivery)
		require.Error(t, err)
	})

	t.Run("should reject transitions out of terminal statuses", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Finished, order.Canceled} {
			for _, target := range []order.Status{
				order.Created, order.Accepted, order.InPreparation,
				order.Prepared, order.InDelivery, order.Finished,
			} {
				if terminal == target {
					continue
				}
				_, err := terminal.TransitionTo(target)
				require.Error(t, err, "%s -> %s", terminal, target)
			}
		}
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.Unknown)
		require.Error(t, err)
	})
}

func TestStatus_RefusalMessages(t *testing.T) {
	t.Run("cancel refusal is fixed per status", func(t *testing.T) {
		seen := map[string]order.Status{}
		for _, status := range []order.Status{
			order.Accepted, order.InPreparation, order.Prepared,
			order.InDelivery, order.Finished, order.Canceled,
		} {
			msg := status.CancelRefusal()
			assert.NotEmpty(t, msg)
			if prev, dup := seen[msg]; dup {
				t.Errorf("statuses %s and %s share the refusal %q", prev, status, msg)
			}
			seen[msg] = status
		}
	})

	t.Run("modify refusal mentions the blocking stage", func(t *testing.T) {
		assert.Contains(t, order.InPreparation.ModifyRefusal(), "preparing")
		assert.Contains(t, order.InDelivery.ModifyRefusal(), "delivery")
	})
}
