package ports

import (
	"context"

	"github.com/hrkit/vacation-api/internal/core/domain"
)

// VacationRepository is the persistence contract for vacation requests.
type VacationRepository interface {
	// ListAll returns every vacation joined with the owner's name/username
	// and the status name, ordered by status_id descending (pending first)
	// then created_at descending.
	ListAll(ctx context.Context) ([]domain.Vacation, error)
	// ListByUser returns one user's vacations joined with the status name,
	// newest first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Vacation, error)
	// GetByID returns a single joined record, or ErrVacationNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Vacation, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Create inserts the vacation with status forced to PENDING and
	// returns the new id.
	Create(ctx context.Context, v *domain.Vacation) (int64, error)
	// UpdateStatus sets status_id and refreshes updated_at.
	UpdateStatus(ctx context.Context, id int64, status domain.VacationStatus) error
	Delete(ctx context.Context, id int64) error
	IsOwner(ctx context.Context, id, userID int64) (bool, error)
	// ListStatuses returns the vacations_status rows ordered by id.
	ListStatuses(ctx context.Context) ([]domain.StatusDefinition, error)
}

// StatusCache is an optional read-through cache for status definitions.
type StatusCache interface {
	// Get returns the cached definitions, or (nil, nil) on a miss.
	Get(ctx context.Context) ([]domain.StatusDefinition, error)
	Set(ctx context.Context, statuses []domain.StatusDefinition) error
}
