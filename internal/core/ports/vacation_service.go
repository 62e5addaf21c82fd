package ports

import (
	"context"

	"github.com/hrkit/vacation-api/internal/core/domain"
)

// CreateVacationInput carries the fields accepted on vacation creation.
// The owner and status are never taken from the client: the service forces
// the owner to the caller and the status to PENDING.
type CreateVacationInput struct {
	DateFrom string
	DateTo   string
	Reason   string
}

// VacationService implements the vacation operations behind the vacation
// controller. Operations that depend on the caller's identity take the
// verified token claims.
type VacationService interface {
	// List returns all vacations for admins and the caller's own
	// vacations otherwise.
	List(ctx context.Context, claims TokenClaims) ([]domain.Vacation, error)
	// Get returns one vacation; non-admin callers may only read their own
	// (domain.ErrForbidden otherwise).
	Get(ctx context.Context, claims TokenClaims, id int64) (*domain.Vacation, error)
	Create(ctx context.Context, claims TokenClaims, in CreateVacationInput) (int64, error)
	// UpdateStatus applies an admin status decision. statusID is nil when
	// the request body carried no status_id. Check order is fixed: unknown
	// id, then missing status_id, then invalid status_id.
	UpdateStatus(ctx context.Context, id int64, statusID *int) error
	Delete(ctx context.Context, id int64) error
	Statuses(ctx context.Context) ([]domain.StatusDefinition, error)
	My(ctx context.Context, userID int64) ([]domain.Vacation, error)
}
