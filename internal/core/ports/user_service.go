package ports

import (
	"context"

	"github.com/hrkit/vacation-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted on user creation. RoleID zero
// means "default" (regular user).
type CreateUserInput struct {
	Name       string
	Email      string
	Username   string
	EmployCode string
	RoleID     domain.Role
	Password   string
}

// UpdateUserInput carries the fields accepted on user update. The password
// is not updatable through this path. RoleID zero means "unchanged": the
// stored role is preserved.
type UpdateUserInput struct {
	Name       string
	Email      string
	Username   string
	EmployCode string
	RoleID     domain.Role
}

// UserService implements the account operations behind the user controller.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (int64, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) error
	Delete(ctx context.Context, id int64) error
	// Authenticate verifies the credentials and returns a fresh token plus
	// the user record (hash excluded from serialization), or
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (string, *domain.User, error)
}
