// Package rolerepo provides persistence mapping for role assignments.
package rolerepo

import (
	"github.com/google/uuid"
)

// RoleAssignmentDTO represents one row of the role assignment table.
// A user holds at most one row; most users have none at all.
type RoleAssignmentDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   string    `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for role assignments.
func (RoleAssignmentDTO) TableName() string {
	return "user_roles"
}
