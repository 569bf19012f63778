package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []order.Item {
	return []order.Item{
		{
			ProductID:   "pizza-margherita",
			ProductName: "Pizza Margherita",
			VariantID:   "pizza-margherita-30",
			VariantName: "30cm",
			Quantity:    2,
			BasePrice:   kernel.MustMoneyFromString("9.50"),
			UnitPrice:   kernel.MustMoneyFromString("9.50"),
			TotalPrice:  kernel.MustMoneyFromString("19.00"),
		},
		{
			ProductID:   "cola",
			ProductName: "Cola 0.5l",
			Quantity:    1,
			BasePrice:   kernel.MustMoneyFromString("3.00"),
			UnitPrice:   kernel.MustMoneyFromString("3.00"),
			TotalPrice:  kernel.MustMoneyFromString("3.00"),
		},
	}
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	total := kernel.MustMoneyFromString("22.00")

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, 7, order.Delivery, "customer-42",
			validItems(), total, 45, nil, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, 7, o.DailyNumber())
		assert.Equal(t, order.Delivery, o.OrderType())
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, "customer-42", o.CustomerRef())
		assert.True(t, o.TotalCost().IsEqual(total))
		assert.Equal(t, 45, o.EstimatedMinutes())
		assert.Nil(t, o.ScheduledAt())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, 7, order.Delivery, "customer-42",
			validItems(), total, 45, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with non-positive daily number", func(t *testing.T) {
		for _, dailyNumber := range []int{0, -1} {
			o, err := order.NewOrder(validID, dailyNumber, order.Delivery, "customer-42",
				validItems(), total, 45, nil, now)

			require.Error(t, err)
			assert.Nil(t, o)
		}
	})

	t.Run("should fail with unknown order type", func(t *testing.T) {
		o, err := order.NewOrder(validID, 7, order.TypeUnknown, "customer-42",
			validItems(), total, 45, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty customer reference", func(t *testing.T) {
		o, err := order.NewOrder(validID, 7, order.Delivery, "",
			validItems(), total, 45, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		o, err := order.NewOrder(validID, 7, order.Delivery, "customer-42",
			nil, kernel.ZeroMoney(), 45, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail when total does not match item sum", func(t *testing.T) {
		o, err := order.NewOrder(validID, 7, order.Delivery, "customer-42",
			validItems(), kernel.MustMoneyFromString("21.99"), 45, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should collect multiple constructor violations at once", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(invalidID, 0, order.TypeUnknown, "",
			nil, kernel.ZeroMoney(), 45, nil, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "daily number")
	})

	t.Run("should keep the scheduled time", func(t *testing.T) {
		scheduled := now.Add(2 * time.Hour)

		o, err := order.NewOrder(validID, 7, order.Pickup, "customer-42",
			validItems(), total, 120, &scheduled, now)

		require.NoError(t, err)
		require.NotNil(t, o.ScheduledAt())
		assert.Equal(t, scheduled, *o.ScheduledAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	later := now.Add(10 * time.Minute)

	t.Run("should restore a persisted order unchanged", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(id, 12, order.Pickup, order.InPreparation,
			order.PaymentPaid, "customer-7", validItems(),
			kernel.MustMoneyFromString("22.00"), 20, nil, now, later)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.InPreparation, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), 12, order.Pickup, order.Unknown,
			order.PaymentPaid, "customer-7", validItems(),
			kernel.MustMoneyFromString("22.00"), 20, nil, now, later)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	newCreatedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), 1, order.Delivery, "customer-1",
			validItems(), kernel.MustMoneyFromString("22.00"), 45, nil, now)
		require.NoError(t, err)
		return o
	}

	t.Run("should walk the full lifecycle", func(t *testing.T) {
		o := newCreatedOrder(t)

		for i, target := range []order.Status{
			order.Accepted, order.InPreparation, order.Prepared,
			order.InDelivery, order.Finished,
		} {
			tick := now.Add(time.Duration(i+1) * time.Minute)
			require.NoError(t, o.ChangeStatus(target, tick))
			assert.Equal(t, target, o.Status())
			assert.Equal(t, tick, o.UpdatedAt())
		}

		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should refuse skipping and keep state untouched", func(t *testing.T) {
		o := newCreatedOrder(t)

		err := o.ChangeStatus(order.InDelivery, now.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("can cancel and modify only while created", func(t *testing.T) {
		o := newCreatedOrder(t)
		assert.True(t, o.CanCancel())
		assert.True(t, o.CanModify())

		require.NoError(t, o.ChangeStatus(order.Accepted, now.Add(time.Minute)))
		assert.False(t, o.CanCancel())
		assert.False(t, o.CanModify())
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	o, err := order.NewOrder(kernel.NewUUID(), 1, order.Pickup, "customer-1",
		validItems(), kernel.MustMoneyFromString("22.00"), 20, nil, now)
	require.NoError(t, err)

	t.Run("should move payment to paid", func(t *testing.T) {
		paidAt := now.Add(5 * time.Minute)
		require.NoError(t, o.MarkPaid(paidAt))
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, paidAt, o.UpdatedAt())
	})

	t.Run("should be a no-op when already paid", func(t *testing.T) {
		before := o.UpdatedAt()
		require.NoError(t, o.MarkPaid(now.Add(time.Hour)))
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, before, o.UpdatedAt())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
