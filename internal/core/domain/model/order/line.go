package order

import (
	"errors"
	"fmt"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/errs"
	"carrybee/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("order Line must be created via NewLine constructor")

// Line is one product position of a persisted order. The unit price is the
// price at order time, copied from the cart and never recomputed from the
// catalog, so historical orders are immune to later price changes.
type Line struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewLine creates a validated order line.
func NewLine(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (Line, error) {
	line := Line{
		productName: productName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate checks that the Line was created through its constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the product identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product display name captured at order time.
func (l Line) ProductName() string {
	return l.productName
}

// Quantity returns the ordered unit count.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price at order time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Amount returns unit price multiplied by quantity.
func (l Line) Amount() kernel.Money {
	return l.unitPrice.MulQuantity(l.quantity)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice.MinorUnits()))
	}
	l.unitPrice = unitPrice
	return nil
}
