package queries

import (
	"errors"
	"time"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/order"
	"carrybee/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery or NewGetOrdersByStatusQuery constructor",
)

// GetOrdersQuery retrieves orders for the admin dashboard, optionally
// filtered to one lifecycle status.
//
// Example:
//
//	query := NewGetOrdersQuery()                          // all orders
//	query, err := NewGetOrdersByStatusQuery(order.Pending) // only pending
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status   order.Status
	filtered bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for all orders regardless of status.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersByStatusQuery creates a query for orders in one status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:   status,
		filtered: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter and whether one is set.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.filtered
}

// GetOrdersQueryResponse is one order row on the admin dashboard.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	MerchantID   kernel.UUID
	MerchantName string
	CustomerID   kernel.UUID
	Address      string
	Phone        string
	Status       string
	Subtotal     kernel.Money
	DeliveryFee  kernel.Money
	Total        kernel.Money
	CreatedAt    time.Time
}
