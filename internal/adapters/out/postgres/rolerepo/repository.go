package rolerepo

import (
	"context"
	"errors"

	"carrybee/internal/core/domain/model/account"
	"carrybee/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormRoleRepository implements RoleRepository using GORM.
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GORM role repository.
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// GetRole resolves the role of a user. A missing assignment row is the
// normal case and resolves to RoleCustomer, not an error.
func (r *GormRoleRepository) GetRole(ctx context.Context, userID kernel.UUID) (account.Role, error) {
	if err := userID.Validate(); err != nil {
		return account.RoleUnknown, err
	}

	var dto RoleAssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.RoleCustomer, nil
		}
		return account.RoleUnknown, err
	}

	return account.RoleFromString(dto.Role)
}

// Assign stores or replaces a user's role assignment. Used by out-of-band
// administrative provisioning and by test fixtures.
func (r *GormRoleRepository) Assign(ctx context.Context, userID kernel.UUID, role account.Role) error {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return err
	}

	dto := RoleAssignmentDTO{
		UserID: userID.Bytes(),
		Role:   role.String(),
	}
	return r.db.WithContext(ctx).Save(&dto).Error
}
