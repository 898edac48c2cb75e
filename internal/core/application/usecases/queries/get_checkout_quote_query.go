package queries

import (
	"errors"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/guard"
)

var (
	ErrGetCheckoutQuoteQueryIsNotConstructed = errors.New(
		"GetCheckoutQuoteQuery must be created via NewGetCheckoutQuoteQuery constructor",
	)
	ErrQuoteCartIsEmpty = errors.New("quote requires at least one cart line")
)

// QuoteLine is the slice of a cart line a fee quote needs: who sells it
// and what it costs.
type QuoteLine struct {
	MerchantID   kernel.UUID
	MerchantName string
	UnitPrice    kernel.Money
	Quantity     int
}

// GetCheckoutQuoteQuery previews the per-merchant delivery fees and the
// grand total for a cart before the customer commits to checkout. The
// delivery point may still be absent at this stage; every fee is then the
// flat estimate.
type GetCheckoutQuoteQuery struct { //nolint:recvcheck //using for validation
	lines         []QuoteLine
	deliveryPoint *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGetCheckoutQuoteQuery creates a quote query for the given cart lines.
func NewGetCheckoutQuoteQuery(lines []QuoteLine, deliveryPoint *kernel.GeoPoint) (GetCheckoutQuoteQuery, error) {
	if len(lines) == 0 {
		return GetCheckoutQuoteQuery{}, ErrQuoteCartIsEmpty
	}

	for _, line := range lines {
		if err := line.MerchantID.Validate(); err != nil {
			return GetCheckoutQuoteQuery{}, err
		}
		if line.Quantity < 1 {
			return GetCheckoutQuoteQuery{}, errors.New("quote line quantity must be at least 1")
		}
	}

	if deliveryPoint != nil {
		if err := deliveryPoint.Validate(); err != nil {
			return GetCheckoutQuoteQuery{}, err
		}
	}

	copied := make([]QuoteLine, len(lines))
	copy(copied, lines)

	return GetCheckoutQuoteQuery{
		lines:         copied,
		deliveryPoint: deliveryPoint,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCheckoutQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutQuoteQueryIsNotConstructed)
}

// Lines returns the cart lines being quoted.
func (q GetCheckoutQuoteQuery) Lines() []QuoteLine {
	return q.lines
}

// DeliveryPoint returns the delivery coordinates, or nil when not captured yet.
func (q GetCheckoutQuoteQuery) DeliveryPoint() *kernel.GeoPoint {
	return q.deliveryPoint
}

// MerchantQuoteResponse is the fee preview for one merchant group.
type MerchantQuoteResponse struct {
	MerchantID   kernel.UUID
	MerchantName string
	Subtotal     kernel.Money
	DeliveryFee  kernel.Money
	FeeEstimated bool
	Total        kernel.Money
}

// GetCheckoutQuoteQueryResponse is the full cart preview: one quote per
// merchant plus the grand total and the payment deep link for it.
type GetCheckoutQuoteQueryResponse struct {
	Merchants   []MerchantQuoteResponse
	GrandTotal  kernel.Money
	PaymentLink string
}
