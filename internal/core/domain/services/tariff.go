package services

import (
	"errors"
	"fmt"
	"math"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/errs"
	"carrybee/internal/pkg/guard"
)

// Reference tariff values in minor currency units.
const (
	DefaultRatePerKm  kernel.Money = 10
	DefaultMinimumFee kernel.Money = 10
	DefaultFlatFee    kernel.Money = 20
)

// ErrTariffIsNotConstructed is returned when a Tariff was not created via NewTariff.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// Tariff is the delivery fee policy: a pure function from distance to money.
//
// fee = ceil(distanceKm) * ratePerKm, floored at minimumFee, so a zero
// distance still costs the minimum and the fee never decreases with
// distance. When the merchant has no registered location the distance is
// unknowable and the flat fee applies instead; Quote reports that case as an
// estimate so callers can surface it.
type Tariff struct {
	ratePerKm  kernel.Money
	minimumFee kernel.Money
	flatFee    kernel.Money

	guard guard.ConstructorGuard
}

// NewTariff creates a fee policy. All amounts must be non-negative.
func NewTariff(ratePerKm, minimumFee, flatFee kernel.Money) (Tariff, error) {
	for name, v := range map[string]kernel.Money{
		"ratePerKm":  ratePerKm,
		"minimumFee": minimumFee,
		"flatFee":    flatFee,
	} {
		if v < 0 {
			return Tariff{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%d is negative", v.MinorUnits()))
		}
	}

	return Tariff{
		ratePerKm:  ratePerKm,
		minimumFee: minimumFee,
		flatFee:    flatFee,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewDefaultTariff creates the reference policy: 10/km, minimum 10, flat 20.
func NewDefaultTariff() Tariff {
	tariff, _ := NewTariff(DefaultRatePerKm, DefaultMinimumFee, DefaultFlatFee)
	return tariff
}

// Validate checks that the Tariff was created through its constructor.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// FlatFee returns the fallback fee used when no distance can be computed.
func (t Tariff) FlatFee() kernel.Money {
	return t.flatFee
}

// Fee computes the distance-based delivery fee for a non-negative distance
// in kilometers.
func (t Tariff) Fee(distanceKm float64) (kernel.Money, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		return 0, errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%g is not a non-negative distance", distanceKm))
	}

	fee := t.ratePerKm.MulQuantity(int(math.Ceil(distanceKm)))
	if fee < t.minimumFee {
		fee = t.minimumFee
	}
	return fee, nil
}

// Quote resolves the delivery fee for one merchant. When the merchant has a
// registered location the fee is computed from the great-circle distance to
// the delivery point; otherwise the flat fee applies and estimated is true,
// so the caller can tell a computed fee from a fallback.
func (t Tariff) Quote(merchantPoint *kernel.GeoPoint, deliveryPoint kernel.GeoPoint) (fee kernel.Money, estimated bool, err error) {
	if err = t.Validate(); err != nil {
		return 0, false, err
	}

	if merchantPoint == nil {
		return t.flatFee, true, nil
	}

	distanceKm, err := merchantPoint.DistanceKm(deliveryPoint)
	if err != nil {
		return 0, false, err
	}

	fee, err = t.Fee(distanceKm)
	if err != nil {
		return 0, false, err
	}
	return fee, false, nil
}
