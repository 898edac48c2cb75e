package ports

import (
	"context"

	"carrybee/internal/core/domain/model/account"
	"carrybee/internal/core/domain/model/kernel"
)

// RoleRepository defines the lookup contract for role assignments.
type RoleRepository interface {
	// GetRole resolves the role of a user. The absence of an assignment row
	// is not an error: it resolves to account.RoleCustomer, the default.
	GetRole(ctx context.Context, userID kernel.UUID) (account.Role, error)
}
