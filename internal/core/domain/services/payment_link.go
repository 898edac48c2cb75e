package services

import (
	"errors"
	"fmt"
	"net/url"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/errs"
	"carrybee/internal/pkg/guard"
)

// ErrPaymentLinkBuilderIsNotConstructed is returned when a PaymentLinkBuilder
// was not created via NewPaymentLinkBuilder.
var ErrPaymentLinkBuilderIsNotConstructed = errors.New(
	"PaymentLinkBuilder must be created via NewPaymentLinkBuilder constructor")

// PaymentLinkBuilder renders the UPI deep link the customer's payment app
// opens with the checkout grand total pre-filled.
//
// The link is one half of a two-step handshake: the customer pays in the
// external app, then explicitly confirms completion, and that confirmation
// triggers order composition. No settlement callback exists; payment is
// trusted on the customer's word. Closing that trust boundary would
// require payment-provider integration this system does not have.
type PaymentLinkBuilder struct {
	payeeID   string
	payeeName string
	currency  string

	guard guard.ConstructorGuard
}

// NewPaymentLinkBuilder creates a builder for the configured payee.
func NewPaymentLinkBuilder(payeeID, payeeName, currency string) (PaymentLinkBuilder, error) {
	if payeeID == "" {
		return PaymentLinkBuilder{}, errs.NewValueIsRequiredError("payeeID")
	}
	if payeeName == "" {
		return PaymentLinkBuilder{}, errs.NewValueIsRequiredError("payeeName")
	}
	if currency == "" {
		currency = "INR"
	}

	return PaymentLinkBuilder{
		payeeID:   payeeID,
		payeeName: payeeName,
		currency:  currency,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the builder was created through its constructor.
func (b PaymentLinkBuilder) Validate() error {
	return b.guard.Validate(ErrPaymentLinkBuilderIsNotConstructed)
}

// Link renders the upi://pay deep link for the given amount.
func (b PaymentLinkBuilder) Link(amount kernel.Money) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	if amount < 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount.MinorUnits()))
	}

	params := url.Values{}
	params.Set("pa", b.payeeID)
	params.Set("pn", b.payeeName)
	params.Set("am", amount.String())
	params.Set("cu", b.currency)

	return "upi://pay?" + params.Encode(), nil
}
