package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrkit/vacation-api/internal/core/domain"
	"github.com/hrkit/vacation-api/internal/core/ports"
)

// VacationService implements vacation request operations. Role and ownership
// rules that depend on the caller's identity are enforced here; pure role
// gates (admin-only update/destroy) are enforced by the controller before
// the service is reached.
type VacationService struct {
	repo   ports.VacationRepository
	cache  ports.StatusCache
	logger zerolog.Logger
}

// NewVacationService builds the service. cache may be nil, in which case
// status definitions are always read from the store.
func NewVacationService(repo ports.VacationRepository, cache ports.StatusCache, logger zerolog.Logger) *VacationService {
	return &VacationService{repo: repo, cache: cache, logger: logger}
}

func (s *VacationService) List(ctx context.Context, claims ports.TokenClaims) ([]domain.Vacation, error) {
	if claims.RoleID == domain.RoleAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByUser(ctx, claims.UserID)
}

func (s *VacationService) Get(ctx context.Context, claims ports.TokenClaims, id int64) (*domain.Vacation, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrVacationNotFound
	}

	vacation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if claims.RoleID != domain.RoleAdmin && vacation.UserID != claims.UserID {
		return nil, domain.ErrForbidden
	}
	return vacation, nil
}

// Create stores a new request. The owner is always the caller and the
// status is always PENDING, whatever the body claimed.
func (s *VacationService) Create(ctx context.Context, claims ports.TokenClaims, in ports.CreateVacationInput) (int64, error) {
	id, err := s.repo.Create(ctx, &domain.Vacation{
		UserID:   claims.UserID,
		DateFrom: in.DateFrom,
		DateTo:   in.DateTo,
		Reason:   in.Reason,
		StatusID: domain.StatusPending,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("vacation_id", id).Int64("user_id", claims.UserID).Msg("vacation request created")
	return id, nil
}

func (s *VacationService) UpdateStatus(ctx context.Context, id int64, statusID *int) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrVacationNotFound
	}

	if statusID == nil {
		return domain.ErrMissingStatus
	}
	status := domain.VacationStatus(*statusID)
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info().Int64("vacation_id", id).Str("status", status.String()).Msg("vacation status updated")
	return nil
}

func (s *VacationService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrVacationNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Statuses returns the status definitions, reading through the cache when
// one is configured. Cache failures degrade to a store read.
func (s *VacationService) Statuses(ctx context.Context) ([]domain.StatusDefinition, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("status cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, statuses); err != nil {
			s.logger.Warn().Err(err).Msg("status cache write failed")
		}
	}
	return statuses, nil
}

func (s *VacationService) My(ctx context.Context, userID int64) ([]domain.Vacation, error) {
	return s.repo.ListByUser(ctx, userID)
}
