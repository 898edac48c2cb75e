package ports

import (
	"context"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/merchant"
)

// MerchantRepository defines the read contract for merchant records.
// Checkout needs the display name and the registered pickup location;
// merchant record maintenance itself lives on the admin surface.
type MerchantRepository interface {
	// Get retrieves a merchant by identifier. A merchant without registered
	// coordinates is returned with a nil location.
	Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error)
}
