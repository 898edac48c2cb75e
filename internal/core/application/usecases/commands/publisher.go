package commands

import (
	"context"

	"carrybee/internal/core/domain/model/merchant"
	"carrybee/internal/core/domain/model/order"
)

// OrderCreatedPublisher schedules side effects for freshly created orders.
// Publishing happens after the order is committed; a publish failure is a
// dispatch problem, never an order failure, so handlers log it and move on.
type OrderCreatedPublisher interface {
	PublishOrderCreated(ctx context.Context, createdOrder *order.Order, createdFor *merchant.Merchant) error
}
