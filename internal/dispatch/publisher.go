package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"carrybee/internal/core/domain/model/merchant"
	"carrybee/internal/core/domain/model/order"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Publisher publishes order created events. It satisfies the checkout
// handler's publisher port; the underlying transport is a watermill
// publisher (go-channel in-process by default).
type Publisher struct {
	publisher message.Publisher
}

// NewPublisher creates a publisher over the given watermill transport.
func NewPublisher(publisher message.Publisher) *Publisher {
	return &Publisher{publisher: publisher}
}

// PublishOrderCreated publishes one event for a committed order.
func (p *Publisher) PublishOrderCreated(
	_ context.Context,
	createdOrder *order.Order,
	createdFor *merchant.Merchant,
) error {
	if err := createdOrder.Validate(); err != nil {
		return err
	}

	event := fromOrder(createdOrder, createdFor)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order created event: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), payload)
	return p.publisher.Publish(TopicOrderCreated, msg)
}

func fromOrder(createdOrder *order.Order, createdFor *merchant.Merchant) OrderCreated {
	lines := make([]OrderCreatedLine, 0, len(createdOrder.Lines()))
	for _, line := range createdOrder.Lines() {
		lines = append(lines, OrderCreatedLine{
			Name:        line.ProductName(),
			Quantity:    line.Quantity(),
			AmountMinor: line.Amount().MinorUnits(),
		})
	}

	merchantName := ""
	if createdFor != nil {
		merchantName = createdFor.Name()
	}

	return OrderCreated{
		OrderID:          createdOrder.ID().String(),
		MerchantName:     merchantName,
		CustomerContact:  createdOrder.Phone(),
		DeliveryAddress:  createdOrder.Address(),
		Latitude:         createdOrder.DeliveryPoint().Latitude(),
		Longitude:        createdOrder.DeliveryPoint().Longitude(),
		Lines:            lines,
		DeliveryFeeMinor: createdOrder.DeliveryFee().MinorUnits(),
		TotalMinor:       createdOrder.Total().MinorUnits(),
		CreatedAt:        createdOrder.CreatedAt(),
	}
}
