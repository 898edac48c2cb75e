// Package merchant provides the merchant read model used during checkout:
// the registered pickup location feeding the delivery fee and the display
// name carried into orders and notifications.
package merchant

import (
	"errors"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/errs"
)

// ErrMerchantIsNotConstructed is returned when a Merchant was not created via
// NewMerchant.
var ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant constructor")

// Merchant is a storefront a customer can order from. The registered
// location is optional: merchants without one get the flat default delivery
// fee instead of a distance-based one.
type Merchant struct {
	id       kernel.UUID
	name     string
	address  string
	location *kernel.GeoPoint

	isConstructed bool
}

// NewMerchant creates a merchant. location may be nil when the merchant has
// not registered coordinates.
func NewMerchant(id kernel.UUID, name string, address string, location *kernel.GeoPoint) (*Merchant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Merchant{
		id:            id,
		name:          name,
		address:       address,
		location:      location,
		isConstructed: true,
	}, nil
}

// Validate ensures the Merchant was created through its constructor.
func (m *Merchant) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMerchantIsNotConstructed
	}
	return nil
}

// ID returns the merchant identifier.
func (m *Merchant) ID() kernel.UUID {
	return m.id
}

// Name returns the merchant display name.
func (m *Merchant) Name() string {
	return m.name
}

// Address returns the merchant street address.
func (m *Merchant) Address() string {
	return m.address
}

// Location returns the registered pickup coordinates, or nil when the
// merchant has none.
func (m *Merchant) Location() *kernel.GeoPoint {
	return m.location
}
