package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func mustItem(t *testing.T, foodID, name string, quantity int, price float64) order.Item {
	t.Helper()
	item, err := order.NewItem(mustID(t, foodID), name, quantity, price, "")
	require.NoError(t, err)
	return item
}

func mustAddress(t *testing.T) order.ShippingAddress {
	t.Helper()
	addr, err := order.NewShippingAddress("John Doe", "+1234567890", "1 Main St", "Springfield", "12345")
	require.NoError(t, err)
	return addr
}

func restoreOrder(t *testing.T, status order.Status, riderID *kernel.ID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		mustID(t, "order-1"),
		mustID(t, "customer-1"),
		[]order.Item{
			mustItem(t, "pizza", "Pizza", 2, 10),
			mustItem(t, "fries", "Fries", 1, 3),
		},
		mustAddress(t),
		order.CashOnDelivery,
		23+order.DeliveryFee,
		status,
		time.Now(),
		riderID,
	)
	require.NoError(t, err)
	return o
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_complete_aggregate", func(t *testing.T) {
		rider := mustID(t, "rider-1")
		o := restoreOrder(t, order.Preparing, &rider)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Preparing, o.Status())
		assert.InDelta(t, 28.0, o.TotalPrice(), 1e-9)
		assert.Len(t, o.Items(), 2)
		require.NotNil(t, o.Rider())
		assert.True(t, o.Rider().IsEqual(rider))
		assert.True(t, o.IsAssignedTo(rider))
	})

	t.Run("rejects_empty_items", func(t *testing.T) {
		_, err := order.RestoreOrder(
			mustID(t, "order-1"),
			mustID(t, "customer-1"),
			nil,
			mustAddress(t),
			order.Card,
			10,
			order.Pending,
			time.Now(),
			nil,
		)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			mustID(t, "order-1"),
			mustID(t, "customer-1"),
			[]order.Item{mustItem(t, "pizza", "Pizza", 1, 10)},
			mustAddress(t),
			order.Card,
			15,
			order.Unknown,
			time.Now(),
			nil,
		)
		require.Error(t, err)
	})

	t.Run("rejects_unknown_payment_method", func(t *testing.T) {
		_, err := order.RestoreOrder(
			mustID(t, "order-1"),
			mustID(t, "customer-1"),
			[]order.Item{mustItem(t, "pizza", "Pizza", 1, 10)},
			mustAddress(t),
			order.PaymentMethod("Barter"),
			15,
			order.Pending,
			time.Now(),
			nil,
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("walks_the_forward_sequence", func(t *testing.T) {
		o := restoreOrder(t, order.Pending, nil)

		require.NoError(t, o.TransitionTo(order.Preparing))
		require.NoError(t, o.TransitionTo(order.OutForDelivery))
		require.NoError(t, o.TransitionTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("illegal_step_leaves_order_unchanged", func(t *testing.T) {
		o := restoreOrder(t, order.Delivered, nil)

		err := o.TransitionTo(order.Preparing)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cancelled_order_rejects_every_transition", func(t *testing.T) {
		for _, next := range []order.Status{
			order.Pending, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			o := restoreOrder(t, order.Cancelled, nil)

			err := o.TransitionTo(next)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels_from_any_non_terminal_state", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Preparing, order.OutForDelivery} {
			o := restoreOrder(t, from, nil)

			require.NoError(t, o.Cancel())
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})

	t.Run("cannot_cancel_terminal_orders", func(t *testing.T) {
		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			o := restoreOrder(t, from, nil)

			err := o.Cancel()

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestOrder_AssignRider(t *testing.T) {
	t.Run("assigns_and_reassigns_without_status_change", func(t *testing.T) {
		o := restoreOrder(t, order.Preparing, nil)
		rider1 := mustID(t, "rider-1")
		rider2 := mustID(t, "rider-2")

		require.NoError(t, o.AssignRider(rider1))
		assert.True(t, o.IsAssignedTo(rider1))
		assert.Equal(t, order.Preparing, o.Status())

		// Reassignment overwrites, no history kept.
		require.NoError(t, o.AssignRider(rider2))
		assert.True(t, o.IsAssignedTo(rider2))
		assert.False(t, o.IsAssignedTo(rider1))
	})

	t.Run("rejects_assignment_on_terminal_orders", func(t *testing.T) {
		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			o := restoreOrder(t, from, nil)

			err := o.AssignRider(mustID(t, "rider-1"))

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
			assert.Nil(t, o.Rider())
		}
	})

	t.Run("rejects_invalid_rider_id", func(t *testing.T) {
		o := restoreOrder(t, order.Pending, nil)
		var zero kernel.ID

		require.Error(t, o.AssignRider(zero))
	})
}

func TestOrder_Items_AreImmutable(t *testing.T) {
	o := restoreOrder(t, order.Pending, nil)

	items := o.Items()
	items[0] = order.Item{}

	assert.Equal(t, "Pizza", o.Items()[0].Name())
}

func TestOrder_Progress(t *testing.T) {
	o := restoreOrder(t, order.OutForDelivery, nil)

	ordinal, ok := o.Progress()

	require.True(t, ok)
	assert.Equal(t, 2, ordinal)
}

func TestNewItem(t *testing.T) {
	t.Run("rejects_invalid_fields", func(t *testing.T) {
		foodID := mustID(t, "pizza")

		_, err := order.NewItem(foodID, "", 1, 10, "")
		require.Error(t, err)

		_, err = order.NewItem(foodID, "Pizza", 0, 10, "")
		require.Error(t, err)

		_, err = order.NewItem(foodID, "Pizza", 1, -1, "")
		require.Error(t, err)
	})

	t.Run("subtotal_is_price_times_quantity", func(t *testing.T) {
		item := mustItem(t, "pizza", "Pizza", 3, 10)
		assert.InDelta(t, 30.0, item.Subtotal(), 1e-9)
	})
}

func TestNewShippingAddress(t *testing.T) {
	t.Run("postal_code_is_optional", func(t *testing.T) {
		_, err := order.NewShippingAddress("John", "+123", "1 Main St", "Springfield", "")
		require.NoError(t, err)
	})

	t.Run("required_fields_are_enforced", func(t *testing.T) {
		_, err := order.NewShippingAddress("", "+123", "1 Main St", "Springfield", "")
		require.Error(t, err)

		_, err = order.NewShippingAddress("John", "", "1 Main St", "Springfield", "")
		require.Error(t, err)

		_, err = order.NewShippingAddress("John", "+123", "", "Springfield", "")
		require.Error(t, err)

		_, err = order.NewShippingAddress("John", "+123", "1 Main St", "", "")
		require.Error(t, err)
	})
}

func TestParsePaymentMethod(t *testing.T) {
	for _, s := range []string{"Cash on Delivery", "Card", "Online"} {
		p, err := order.ParsePaymentMethod(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}

	_, err := order.ParsePaymentMethod("Barter")
	require.Error(t, err)
}
