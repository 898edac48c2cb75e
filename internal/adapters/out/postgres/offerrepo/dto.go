// Package offerrepo provides persistence mapping for daily offer records.
package offerrepo

import (
	"time"

	"github.com/google/uuid"
)

// OfferDTO represents one promotional offer row. Offers are authored on the
// admin surface; the core only deactivates the expired ones.
type OfferDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string
	ImageRef  string
	Active    bool `gorm:"index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TableName specifies the database table name for offers.
func (OfferDTO) TableName() string {
	return "offers"
}
