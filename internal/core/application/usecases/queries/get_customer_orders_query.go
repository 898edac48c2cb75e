// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read projections straight
// from the database.
package queries

import (
	"errors"
	"time"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the order history of one customer,
// newest first, with the lines of every order.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for one customer's orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderLineResponse is one position of an order in a query response.
// The unit price is the price at order time, never the current catalog price.
type OrderLineResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

// GetCustomerOrdersQueryResponse is one order in a customer's history.
type GetCustomerOrdersQueryResponse struct {
	ID           kernel.UUID
	MerchantID   kernel.UUID
	MerchantName string
	Status       string
	Subtotal     kernel.Money
	DeliveryFee  kernel.Money
	Total        kernel.Money
	CreatedAt    time.Time
	Lines        []OrderLineResponse
}
