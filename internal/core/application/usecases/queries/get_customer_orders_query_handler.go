package queries

import (
	"context"
	"time"

	"carrybee/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history from
// the database. Orders come back newest first with their lines attached.
//
// Example:
//
//	handler := NewGetCustomerOrdersQueryHandler(db)
//	query, _ := NewGetCustomerOrdersQuery(customerID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders, newest
// first. The merchant name is joined in for display; a merchant that has
// since disappeared yields an empty name, not an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	orderIndex := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.merchant_id,
			COALESCE(m.name, ''),
			o.status,
			o.subtotal,
			o.delivery_fee,
			o.total,
			o.created_at
		FROM orders o
		LEFT JOIN merchants m ON m.id = o.merchant_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCustomerOrdersQueryResponse
		var id, merchantID uuid.UUID
		var subtotal, deliveryFee, total int64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&merchantID,
			&orderResp.MerchantName,
			&orderResp.Status,
			&subtotal,
			&deliveryFee,
			&total,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderResp.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
			return nil, err
		}
		if orderResp.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return nil, err
		}
		if orderResp.DeliveryFee, err = kernel.NewMoney(deliveryFee); err != nil {
			return nil, err
		}
		if orderResp.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		orderResp.CreatedAt = createdAt
		orderResp.Lines = make([]OrderLineResponse, 0)

		orderIndex[orderResp.ID] = len(orders)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachLines(ctx, query.CustomerID(), orders, orderIndex); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetCustomerOrdersQueryHandler) attachLines(
	ctx context.Context,
	customerID kernel.UUID,
	orders []GetCustomerOrdersQueryResponse,
	orderIndex map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			l.product_id,
			l.product_name,
			l.quantity,
			l.unit_price
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.customer_id = ?
		ORDER BY l.order_id, l.id
	`, customerID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var orderID, productID uuid.UUID
		var unitPrice int64

		err = rows.Scan(
			&orderID,
			&productID,
			&line.ProductName,
			&line.Quantity,
			&unitPrice,
		)
		if err != nil {
			return err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return err
		}

		lineOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		if idx, ok := orderIndex[lineOrderID]; ok {
			orders[idx].Lines = append(orders[idx].Lines, line)
		}
	}

	return rows.Err()
}
