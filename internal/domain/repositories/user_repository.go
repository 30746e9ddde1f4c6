package repositories

import (
	"context"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	// Create creates a new account
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// UserRoleRepository defines the interface for role-assignment rows
type UserRoleRepository interface {
	// Create creates a role-assignment row (provisioning only)
	Create(ctx context.Context, role *entities.UserRole) error

	// ListByUser retrieves all role-assignment rows for a user, oldest
	// first so first-found resolution is deterministic
	ListByUser(ctx context.Context, userID string) ([]*entities.UserRole, error)
}
