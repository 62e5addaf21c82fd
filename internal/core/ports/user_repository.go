package ports

import (
	"context"

	"github.com/hrkit/vacation-api/internal/core/domain"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// List returns all users. Password hashes are not selected.
	List(ctx context.Context) ([]domain.User, error)
	// GetByID returns a user without its password hash, or ErrUserNotFound.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Create inserts the user (hash included) and returns the new id.
	Create(ctx context.Context, user *domain.User) (int64, error)
	// Update rewrites name, email, username, employ_code and roles_id.
	Update(ctx context.Context, id int64, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	// FindByUsername returns the user including its password hash, or
	// ErrUserNotFound. Used only by authentication.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
