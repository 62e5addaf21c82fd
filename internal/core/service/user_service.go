package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrkit/vacation-api/internal/core/domain"
	"github.com/hrkit/vacation-api/internal/core/ports"
)

// UserService implements account CRUD and credential verification.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	role := in.RoleID
	if role == 0 {
		role = domain.RoleUser
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Username:     in.Username,
		EmployCode:   in.EmployCode,
		RoleID:       role,
		PasswordHash: string(hash),
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("user_id", id).Str("username", in.Username).Msg("user created")
	return id, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	// A zero RoleID means the body omitted roles_id: keep the stored role
	// rather than persist a role no requirement would ever satisfy.
	role := in.RoleID
	if role == 0 {
		role = current.RoleID
	}

	return s.repo.Update(ctx, id, &domain.User{
		Name:       in.Name,
		Email:      in.Email,
		Username:   in.Username,
		EmployCode: in.EmployCode,
		RoleID:     role,
	})
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Authenticate verifies the credentials with bcrypt's own comparison (the
// stored hash embeds its salt and cost) and issues a fresh token on success.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		RoleID:   user.RoleID,
	})
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user authenticated")

	return token, user, nil
}
