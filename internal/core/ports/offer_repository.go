package ports

import (
	"context"
	"time"
)

// OfferRepository defines the maintenance contract for daily offers.
// Offers are plain promotional records edited on the admin surface; the
// core only sweeps expired ones out of the active set.
type OfferRepository interface {
	// DeactivateExpired flips every active offer whose expiry lies before
	// now to inactive and returns how many rows changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
