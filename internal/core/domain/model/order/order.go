package order

import (
	"errors"
	"fmt"
	"time"

	"carrybee/internal/core/domain/model/account"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Actor identifies who is requesting a state change on an order.
type Actor struct {
	UserID kernel.UUID
	Role   account.Role
}

// Order is the aggregate root for one merchant's share of a checkout.
// A checkout spanning N merchants produces N orders; an order never spans
// merchants.
//
// Invariants:
//   - subtotal equals the sum of line amounts
//   - total equals subtotal plus delivery fee
//   - after creation everything except status is immutable
//   - status changes only through ChangeStatus, along legal edges
type Order struct {
	id            kernel.UUID
	merchantID    kernel.UUID
	customerID    kernel.UUID
	lines         []Line
	subtotal      kernel.Money
	deliveryFee   kernel.Money
	total         kernel.Money
	address       string
	phone         string
	deliveryPoint kernel.GeoPoint
	status        Status
	// previousStatus is the status the order held when it was loaded,
	// recorded on the first ChangeStatus call. Unknown until then.
	previousStatus Status
	createdAt      time.Time

	isConstructed bool
}

// NewOrder creates a pending order for one merchant. The subtotal is computed
// from the lines and the total from subtotal plus fee, so the money
// reconciliation invariant holds by construction.
func NewOrder(
	id kernel.UUID,
	merchantID kernel.UUID,
	customerID kernel.UUID,
	lines []Line,
	deliveryFee kernel.Money,
	address string,
	phone string,
	deliveryPoint kernel.GeoPoint,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMerchantID(merchantID),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setDeliveryFee(deliveryFee),
		o.setAddress(address),
		o.setPhone(phone),
		o.setDeliveryPoint(deliveryPoint),
	); err != nil {
		return nil, err
	}

	o.subtotal = sumLines(o.lines)
	o.total = o.subtotal.Add(o.deliveryFee)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored money
// fields must still reconcile: subtotal must match the lines and total must
// equal subtotal plus fee.
func RestoreOrder(
	id kernel.UUID,
	merchantID kernel.UUID,
	customerID kernel.UUID,
	lines []Line,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	address string,
	phone string,
	deliveryPoint kernel.GeoPoint,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, merchantID, customerID, lines, deliveryFee, address, phone, deliveryPoint, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if o.subtotal != subtotal || o.total != total {
		return nil, errs.NewValueIsInvalidErrorWithCause("order totals",
			fmt.Errorf("stored subtotal %d / total %d do not reconcile with lines (%d) and fee (%d)",
				subtotal.MinorUnits(), total.MinorUnits(),
				o.subtotal.MinorUnits(), o.deliveryFee.MinorUnits()))
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MerchantID returns the merchant this order belongs to.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Subtotal returns the sum of line amounts.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the distance-derived delivery charge.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns subtotal plus delivery fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Address returns the free-form delivery address.
func (o *Order) Address() string {
	return o.address
}

// Phone returns the customer contact phone.
func (o *Order) Phone() string {
	return o.phone
}

// DeliveryPoint returns the captured delivery coordinates.
func (o *Order) DeliveryPoint() kernel.GeoPoint {
	return o.deliveryPoint
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus advances the order along a legal lifecycle edge on behalf of
// the given actor. It is the only mutator of status after creation.
//
// Legality is checked before authorization, so an edge missing from the
// table is ErrIllegalTransition for every actor. Admins may take any legal
// edge; a customer may only take pending -> delivered on their own order
// (self-reported delivery confirmation). All other actors get
// account.ErrForbidden.
func (o *Order) ChangeStatus(target Status, actor Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if !o.actorMayTransition(target, actor) {
		return fmt.Errorf("%w: %s may not move order %s from %s to %s",
			account.ErrForbidden, actor.Role, o.id, o.status, target)
	}

	if o.previousStatus == Unknown {
		o.previousStatus = o.status
	}
	o.status = newStatus
	return nil
}

// PreviousStatus returns the status the order held when it was loaded and
// whether ChangeStatus has been called since. Persistence guards the status
// write with it so a concurrent transition cannot be overwritten.
func (o *Order) PreviousStatus() (Status, bool) {
	return o.previousStatus, o.previousStatus != Unknown
}

func (o *Order) actorMayTransition(target Status, actor Actor) bool {
	if actor.Role.IsAdmin() {
		return true
	}

	// The single customer-writable edge: self-reporting delivery of a
	// still-pending order.
	return actor.Role == account.RoleCustomer &&
		o.status == Pending && target == Delivered &&
		actor.UserID.IsEqual(o.customerID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	o.merchantID = merchantID
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setDeliveryFee(fee kernel.Money) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%d is negative", fee.MinorUnits()))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setDeliveryPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	o.deliveryPoint = point
	return nil
}

func sumLines(lines []Line) kernel.Money {
	var sum kernel.Money
	for _, line := range lines {
		sum = sum.Add(line.Amount())
	}
	return sum
}
