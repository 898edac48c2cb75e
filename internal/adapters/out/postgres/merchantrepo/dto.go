// Package merchantrepo provides persistence mapping for merchant records.
package merchantrepo

import (
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/merchant"

	"github.com/google/uuid"
)

// MerchantDTO represents the database structure for merchant records.
// Coordinates are nullable: a merchant without registered coordinates gets
// the flat delivery fee instead of a computed one.
type MerchantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// TableName specifies the database table name for merchant entities.
func (MerchantDTO) TableName() string {
	return "merchants"
}

// fromDomain converts a merchant to its database representation.
func fromDomain(m *merchant.Merchant) MerchantDTO {
	dto := MerchantDTO{
		ID:      m.ID().Bytes(),
		Name:    m.Name(),
		Address: m.Address(),
	}

	if location := m.Location(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

// toDomain converts a database DTO to a merchant. A row missing either
// coordinate yields a merchant with no location.
func toDomain(dto MerchantDTO) (*merchant.Merchant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return merchant.NewMerchant(id, dto.Name, dto.Address, location)
}
