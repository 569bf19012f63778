package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFromString(t *testing.T) {
	t.Run("should parse both defined types", func(t *testing.T) {
		delivery, err := order.TypeFromString("delivery")
		require.NoError(t, err)
		assert.Equal(t, order.Delivery, delivery)

		pickup, err := order.TypeFromString("pickup")
		require.NoError(t, err)
		assert.Equal(t, order.Pickup, pickup)
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "DELIVERY", "takeaway"} {
			_, err := order.TypeFromString(input)
			require.Error(t, err, "expected error for input: %s", input)
		}
	})
}

func TestType_Validate(t *testing.T) {
	assert.NoError(t, order.Delivery.Validate())
	assert.NoError(t, order.Pickup.Validate())
	assert.Error(t, order.TypeUnknown.Validate())
	assert.Error(t, order.Type(99).Validate())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "delivery", order.Delivery.String())
	assert.Equal(t, "pickup", order.Pickup.String())
	assert.Equal(t, "unknown", order.TypeUnknown.String())
}
