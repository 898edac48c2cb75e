// Package dispatch decouples order side effects from checkout. Created
// orders are published to an in-process pub/sub topic; a worker consumes
// them and delivers notifications. A slow or failing notification channel
// can therefore never delay or fail order creation.
package dispatch

import "time"

// TopicOrderCreated carries one message per successfully committed order.
const TopicOrderCreated = "orders.created"

// OrderCreatedLine is one order position in the published event.
type OrderCreatedLine struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	AmountMinor int64  `json:"amount_minor"`
}

// OrderCreated is the JSON payload published after an order commits.
// Money travels in minor units; the delivery coordinates let the consumer
// build a maps link for the merchant.
type OrderCreated struct {
	OrderID          string             `json:"order_id"`
	MerchantName     string             `json:"merchant_name"`
	CustomerContact  string             `json:"customer_contact"`
	DeliveryAddress  string             `json:"delivery_address"`
	Latitude         float64            `json:"latitude"`
	Longitude        float64            `json:"longitude"`
	Lines            []OrderCreatedLine `json:"lines"`
	DeliveryFeeMinor int64              `json:"delivery_fee_minor"`
	TotalMinor       int64              `json:"total_minor"`
	CreatedAt        time.Time          `json:"created_at"`
}
