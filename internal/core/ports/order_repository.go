// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with all of its lines. The write is
	// atomic: either the order row and every line are stored, or nothing is.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order. Status is the
	// only field that changes after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
