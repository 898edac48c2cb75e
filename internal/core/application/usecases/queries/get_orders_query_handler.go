package queries

import (
	"context"
	"time"

	"carrybee/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders for the admin dashboard.
// Supports an optional status filter so admins can work through the
// pending queue without scrolling past delivered orders.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for admin order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.merchant_id,
			COALESCE(m.name, ''),
			o.customer_id,
			o.address,
			o.phone,
			o.status,
			o.subtotal,
			o.delivery_fee,
			o.total,
			o.created_at
		FROM orders o
		LEFT JOIN merchants m ON m.id = o.merchant_id
	`
	args := make([]any, 0, 1)
	if status, filtered := query.Status(); filtered {
		sql += ` WHERE o.status = ?`
		args = append(args, status.String())
	}
	sql += ` ORDER BY o.created_at DESC, o.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id, merchantID, customerID uuid.UUID
		var subtotal, deliveryFee, total int64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&merchantID,
			&orderResp.MerchantName,
			&customerID,
			&orderResp.Address,
			&orderResp.Phone,
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
		if orderResp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
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

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
