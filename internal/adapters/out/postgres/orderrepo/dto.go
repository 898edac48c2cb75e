// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Money columns hold minor currency units. Status is persisted
// as its string name so dashboards and ad-hoc SQL stay readable.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MerchantID    uuid.UUID      `gorm:"type:uuid;index"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;index"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Subtotal      int64
	DeliveryFee   int64
	Total         int64
	Address       string
	Phone         string
	DeliveryPoint GeoPointDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Status        string      `gorm:"type:varchar(32);index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order position. The unit price is the price
// at order time; it is never refreshed from the catalog.
type OrderLineDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	Quantity    int
	UnitPrice   int64
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// GeoPointDTO represents the embedded delivery coordinates within the order
// table, in WGS84 degrees.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   line.ProductID().Bytes(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().MinorUnits(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		MerchantID:  aggregate.MerchantID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Lines:       lines,
		Subtotal:    aggregate.Subtotal().MinorUnits(),
		DeliveryFee: aggregate.DeliveryFee().MinorUnits(),
		Total:       aggregate.Total().MinorUnits(),
		Address:     aggregate.Address(),
		Phone:       aggregate.Phone(),
		DeliveryPoint: GeoPointDTO{
			Latitude:  aggregate.DeliveryPoint().Latitude(),
			Longitude: aggregate.DeliveryPoint().Longitude(),
		},
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate via RestoreOrder,
// which re-checks that the stored money columns still reconcile.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		unitPrice, lineErr := kernel.NewMoney(lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.ProductName, lineDTO.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	deliveryPoint, err := kernel.NewGeoPoint(dto.DeliveryPoint.Latitude, dto.DeliveryPoint.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, merchantID, customerID, lines,
		subtotal, deliveryFee, total,
		dto.Address, dto.Phone, deliveryPoint,
		status, dto.CreatedAt,
	)
}
