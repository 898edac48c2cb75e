package ports

import (
	"context"

	"carrybee/internal/core/domain/model/kernel"
)

// NotificationLine is one order position in a notification payload.
type NotificationLine struct {
	Name     string
	Quantity int
	Amount   kernel.Money
}

// Notification is the payload handed to the notification service after an
// order is created. The maps link points the merchant at the delivery
// coordinates.
type Notification struct {
	OrderID         kernel.UUID
	MerchantName    string
	CustomerContact string
	DeliveryAddress string
	Lines           []NotificationLine
	DeliveryFee     kernel.Money
	Total           kernel.Money
	MapsLink        string
}

// Notifier delivers order notifications over a side channel (e-mail or
// similar). Delivery is best effort: the caller logs failures and never
// lets them affect the order itself.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
