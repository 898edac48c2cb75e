package dispatch

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/ports"

	"github.com/ThreeDotsLabs/watermill/message"
)

// NotificationWorker consumes order created events and hands them to the
// notification service. Delivery is best effort: any failure is logged and
// the message is acked anyway, so a broken channel never piles up retries
// against an order that already exists.
type NotificationWorker struct {
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewNotificationWorker creates a worker delivering through the given notifier.
func NewNotificationWorker(notifier ports.Notifier, logger *slog.Logger) *NotificationWorker {
	return &NotificationWorker{
		notifier: notifier,
		logger:   logger,
	}
}

// Register attaches the worker to a router as a no-publisher handler on the
// order created topic.
func (w *NotificationWorker) Register(router *message.Router, subscriber message.Subscriber) {
	router.AddNoPublisherHandler(
		"order-created-notifier",
		TopicOrderCreated,
		subscriber,
		w.handle,
	)
}

func (w *NotificationWorker) handle(msg *message.Message) error {
	var event OrderCreated
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		w.logger.Error("dropping malformed order created event", "message_id", msg.UUID, "error", err)
		return nil
	}

	notification, err := toNotification(event)
	if err != nil {
		w.logger.Error("dropping unmappable order created event",
			"message_id", msg.UUID, "order_id", event.OrderID, "error", err)
		return nil
	}

	if err := w.notifier.Notify(msg.Context(), notification); err != nil {
		w.logger.Error("order notification failed",
			"order_id", event.OrderID, "merchant", event.MerchantName, "error", err)
		return nil
	}

	w.logger.Info("order notification sent",
		"order_id", event.OrderID, "merchant", event.MerchantName)
	return nil
}

func toNotification(event OrderCreated) (ports.Notification, error) {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return ports.Notification{}, err
	}

	lines := make([]ports.NotificationLine, 0, len(event.Lines))
	for _, line := range event.Lines {
		amount, lineErr := kernel.NewMoney(line.AmountMinor)
		if lineErr != nil {
			return ports.Notification{}, lineErr
		}
		lines = append(lines, ports.NotificationLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Amount:   amount,
		})
	}

	deliveryFee, err := kernel.NewMoney(event.DeliveryFeeMinor)
	if err != nil {
		return ports.Notification{}, err
	}
	total, err := kernel.NewMoney(event.TotalMinor)
	if err != nil {
		return ports.Notification{}, err
	}

	return ports.Notification{
		OrderID:         orderID,
		MerchantName:    event.MerchantName,
		CustomerContact: event.CustomerContact,
		DeliveryAddress: event.DeliveryAddress,
		Lines:           lines,
		DeliveryFee:     deliveryFee,
		Total:           total,
		MapsLink:        MapsLink(event.Latitude, event.Longitude),
	}, nil
}

// MapsLink builds a Google Maps link pointing at the delivery coordinates.
func MapsLink(latitude, longitude float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%f,%f", latitude, longitude)
}
