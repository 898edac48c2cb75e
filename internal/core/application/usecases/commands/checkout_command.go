package commands

import (
	"errors"
	"strings"

	"carrybee/internal/core/domain/model/cart"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)

	// ErrUnauthenticated rejects checkouts without a resolved customer identity.
	ErrUnauthenticated = errors.New("customer is not authenticated")
	// ErrEmptyCart rejects checkouts with no cart lines.
	ErrEmptyCart = errors.New("cart has no lines")
	// ErrMissingLocation rejects checkouts without a delivery point.
	// A geolocation wait that produced nothing by its deadline lands here too.
	ErrMissingLocation = errors.New("delivery location is required")
	// ErrMissingContactInfo rejects checkouts with a blank address or phone.
	ErrMissingContactInfo = errors.New("delivery address and phone are required")
)

// CheckoutCommand represents a request to turn a customer's cart into orders.
// Carries the cart snapshot together with the delivery destination and the
// contact details a courier needs.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(customerID, myCart.Snapshot(), &point, "12 Rose St", "+91 98765 43210")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	lines         []cart.Line
	deliveryPoint kernel.GeoPoint
	address       string
	phone         string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command from a cart snapshot.
// Each precondition fails with its own sentinel error so callers can tell
// the customer exactly what to fix. Nothing is persisted before these checks.
func NewCheckoutCommand(
	customerID kernel.UUID,
	lines []cart.Line,
	deliveryPoint *kernel.GeoPoint,
	address string,
	phone string,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setLines(lines),
		checkoutCommand.setDeliveryPoint(deliveryPoint),
		checkoutCommand.setContactInfo(address, phone),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the authenticated customer placing the order.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns a copy of the cart lines being checked out.
func (c CheckoutCommand) Lines() []cart.Line {
	lines := make([]cart.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// DeliveryPoint returns the customer's delivery coordinates.
func (c CheckoutCommand) DeliveryPoint() kernel.GeoPoint {
	return c.deliveryPoint
}

// Address returns the free-form delivery address.
func (c CheckoutCommand) Address() string {
	return c.address
}

// Phone returns the customer's contact phone number.
func (c CheckoutCommand) Phone() string {
	return c.phone
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return ErrUnauthenticated
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setLines(lines []cart.Line) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}

	c.lines = make([]cart.Line, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CheckoutCommand) setDeliveryPoint(deliveryPoint *kernel.GeoPoint) error {
	if deliveryPoint == nil {
		return ErrMissingLocation
	}
	if err := deliveryPoint.Validate(); err != nil {
		return ErrMissingLocation
	}

	c.deliveryPoint = *deliveryPoint
	return nil
}

func (c *CheckoutCommand) setContactInfo(address string, phone string) error {
	if strings.TrimSpace(address) == "" || strings.TrimSpace(phone) == "" {
		return ErrMissingContactInfo
	}

	c.address = address
	c.phone = phone
	return nil
}
