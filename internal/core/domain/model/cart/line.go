package cart

import (
	"errors"
	"fmt"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/errs"
	"carrybee/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product/quantity pairing pending order placement, scoped to
// one merchant. The unit price is captured when the line is created and is
// the price the order will be composed with.
//
// Invariant: quantity is always at least 1. A line that would drop to zero
// is removed from the cart instead.
type Line struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	merchantID   kernel.UUID
	merchantName string
	productName  string
	unitPrice    kernel.Money
	quantity     int
	imageRef     string

	guard guard.ConstructorGuard
}

// NewLine creates a validated cart line.
func NewLine(
	productID kernel.UUID,
	merchantID kernel.UUID,
	merchantName string,
	productName string,
	unitPrice kernel.Money,
	quantity int,
	imageRef string,
) (Line, error) {
	line := Line{
		merchantName: merchantName,
		productName:  productName,
		imageRef:     imageRef,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setMerchantID(merchantID),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
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

// MerchantID returns the merchant the line belongs to.
func (l Line) MerchantID() kernel.UUID {
	return l.merchantID
}

// MerchantName returns the display name of the merchant.
func (l Line) MerchantName() string {
	return l.merchantName
}

// ProductName returns the display name of the product.
func (l Line) ProductName() string {
	return l.productName
}

// UnitPrice returns the captured per-unit price in minor units.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the number of units, always >= 1.
func (l Line) Quantity() int {
	return l.quantity
}

// ImageRef returns the product image reference for display.
func (l Line) ImageRef() string {
	return l.imageRef
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

func (l *Line) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	l.merchantID = merchantID
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

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	l.quantity = quantity
	return nil
}
