package order_test

import (
	"testing"
	"time"

	"carrybee/internal/core/domain/model/account"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/order"
	"carrybee/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, price kernel.Money, quantity int) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Honey", quantity, price)
	require.NoError(t, err)
	return line
}

func mustPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(11.34, 77.71)
	require.NoError(t, err)
	return point
}

func newTestOrder(t *testing.T, customerID kernel.UUID, lines ...order.Line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []order.Line{mustLine(t, 100, 2)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID,
		lines, 40, "12 Temple Street", "9787000000", mustPoint(t), time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes_subtotal_and_total", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 100, 2), mustLine(t, 50, 1)}

		o := newTestOrder(t, kernel.NewUUID(), lines...)

		assert.Equal(t, kernel.Money(250), o.Subtotal())
		assert.Equal(t, kernel.Money(40), o.DeliveryFee())
		assert.Equal(t, kernel.Money(290), o.Total())
		assert.Equal(t, o.Total(), o.Subtotal().Add(o.DeliveryFee()))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects_empty_lines", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, 40, "12 Temple Street", "9787000000", mustPoint(t), time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_blank_contact_info", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Line{mustLine(t, 100, 1)}, 40, "", "", mustPoint(t), time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unconstructed_delivery_point", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Line{mustLine(t, 100, 1)}, 40, "12 Temple Street", "9787000000", zero, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	lines := []order.Line{mustLine(t, 100, 2)}

	t.Run("restores_with_status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, merchantID, customerID, lines,
			200, 40, 240,
			"12 Temple Street", "9787000000", mustPoint(t),
			order.Preparing, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("rejects_totals_that_do_not_reconcile", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, merchantID, customerID, lines,
			200, 40, 999,
			"12 Temple Street", "9787000000", mustPoint(t),
			order.Pending, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, merchantID, customerID, lines,
			200, 40, 240,
			"12 Temple Street", "9787000000", mustPoint(t),
			order.Unknown, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ChangeStatus_Admin(t *testing.T) {
	admin := order.Actor{UserID: kernel.NewUUID(), Role: account.RoleAdmin}

	t.Run("walks_the_full_lifecycle", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())

		require.NoError(t, o.ChangeStatus(order.Preparing, admin))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery, admin))
		require.NoError(t, o.ChangeStatus(order.Delivered, admin))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cancels_from_out_for_delivery", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())
		require.NoError(t, o.ChangeStatus(order.Preparing, admin))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery, admin))

		require.NoError(t, o.ChangeStatus(order.Cancelled, admin))
	})

	t.Run("illegal_edge_rejected_even_for_admin", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())

		err := o.ChangeStatus(order.OutForDelivery, admin)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("terminal_status_rejects_everything", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())
		require.NoError(t, o.ChangeStatus(order.Cancelled, admin))

		err := o.ChangeStatus(order.Preparing, admin)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
	})
}

func TestOrder_PreviousStatus(t *testing.T) {
	admin := order.Actor{UserID: kernel.NewUUID(), Role: account.RoleAdmin}

	t.Run("unset_before_any_change", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())

		_, changed := o.PreviousStatus()

		assert.False(t, changed)
	})

	t.Run("records_load_status_on_first_change_only", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID())

		require.NoError(t, o.ChangeStatus(order.Preparing, admin))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery, admin))

		previous, changed := o.PreviousStatus()
		require.True(t, changed)
		assert.Equal(t, order.Pending, previous)
	})
}

func TestOrder_ChangeStatus_Customer(t *testing.T) {
	customerID := kernel.NewUUID()
	self := order.Actor{UserID: customerID, Role: account.RoleCustomer}

	t.Run("self_may_mark_pending_order_delivered", func(t *testing.T) {
		o := newTestOrder(t, customerID)

		require.NoError(t, o.ChangeStatus(order.Delivered, self))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("other_customer_is_forbidden", func(t *testing.T) {
		o := newTestOrder(t, customerID)
		stranger := order.Actor{UserID: kernel.NewUUID(), Role: account.RoleCustomer}

		err := o.ChangeStatus(order.Delivered, stranger)

		require.ErrorIs(t, err, account.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("customer_cannot_move_preparing_order", func(t *testing.T) {
		o := newTestOrder(t, customerID)
		admin := order.Actor{UserID: kernel.NewUUID(), Role: account.RoleAdmin}
		require.NoError(t, o.ChangeStatus(order.Preparing, admin))

		for _, target := range []order.Status{order.OutForDelivery, order.Cancelled} {
			err := o.ChangeStatus(target, self)
			require.ErrorIs(t, err, account.ErrForbidden, "target %s", target)
		}
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("legality_is_checked_before_authorization", func(t *testing.T) {
		o := newTestOrder(t, customerID)

		// pending -> out_for_delivery is not in the table, so the
		// customer sees the transition conflict, not a role denial
		err := o.ChangeStatus(order.OutForDelivery, self)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
	})
}

func TestOrder_LinesIsACopy(t *testing.T) {
	o := newTestOrder(t, kernel.NewUUID())

	lines := o.Lines()
	lines[0] = order.Line{}

	require.NoError(t, o.Lines()[0].Validate())
}
