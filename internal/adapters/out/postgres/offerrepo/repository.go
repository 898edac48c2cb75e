package offerrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// DeactivateExpired flips every active offer whose expiry lies strictly
// before now to inactive. Returns the number of rows changed.
func (r *GormOfferRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&OfferDTO{}).
		Where("active = ? AND expires_at < ?", true, now).
		Update("active", false)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
