// Package notify delivers order notifications to the notification service
// over HTTP. The service handles the actual e-mail or messaging delivery;
// its failure modes are opaque here and surface only as errors the
// dispatcher logs.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"carrybee/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// lineItemPayload mirrors one order position on the wire.
type lineItemPayload struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	AmountMinor int64  `json:"amount_minor"`
}

// notificationPayload is the request body the notification service accepts.
type notificationPayload struct {
	OrderID          string            `json:"order_id"`
	MerchantName     string            `json:"merchant_name"`
	CustomerContact  string            `json:"customer_contact"`
	DeliveryAddress  string            `json:"delivery_address"`
	LineItems        []lineItemPayload `json:"line_items"`
	DeliveryFeeMinor int64             `json:"delivery_fee_minor"`
	TotalMinor       int64             `json:"total_minor"`
	MapsLink         string            `json:"maps_link"`
}

// HTTPNotifier implements ports.Notifier by posting notifications to the
// notification service endpoint.
type HTTPNotifier struct {
	url    string
	client *http.Client
}

// NewHTTPNotifier creates a notifier posting to the given endpoint URL.
func NewHTTPNotifier(url string) *HTTPNotifier {
	return &HTTPNotifier{
		url: url,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Notify posts the notification. Any non-2xx response is an error; the
// caller decides what to do with it (the dispatcher logs and moves on).
func (n *HTTPNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	lines := make([]lineItemPayload, 0, len(notification.Lines))
	for _, line := range notification.Lines {
		lines = append(lines, lineItemPayload{
			Name:        line.Name,
			Quantity:    line.Quantity,
			AmountMinor: line.Amount.MinorUnits(),
		})
	}

	payload := notificationPayload{
		OrderID:          notification.OrderID.String(),
		MerchantName:     notification.MerchantName,
		CustomerContact:  notification.CustomerContact,
		DeliveryAddress:  notification.DeliveryAddress,
		LineItems:        lines,
		DeliveryFeeMinor: notification.DeliveryFee.MinorUnits(),
		TotalMinor:       notification.Total.MinorUnits(),
		MapsLink:         notification.MapsLink,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification service responded with %s", resp.Status)
	}

	return nil
}
