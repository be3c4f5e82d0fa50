package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/agenthub/agent-api/internal/core/domain"
	"github.com/agenthub/agent-api/internal/core/ports"
)

// UserService implements user CRUD plus the business rules around it:
// required-field checks, email uniqueness, and password hashing.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// Create persists a new user. The duplicate-email pre-check gives a clean
// error message; the schema's unique index remains the actual guarantee, so
// a concurrent create losing the race still surfaces ErrEmailExists from
// the repository.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Role == "" || input.Username == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    input.Email,
		Password: string(hash),
		Username: input.Username,
		Role:     input.Role,
	}
	if input.Settings != nil {
		user.Settings = datatypes.NewJSONType(*input.Settings)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update. A supplied password is re-hashed before
// it is persisted; absent fields keep their stored values.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	fields := make(map[string]any)
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.Role != nil {
		fields["role"] = *input.Role
	}
	if input.Settings != nil {
		fields["settings"] = datatypes.NewJSONType(*input.Settings)
	}

	if len(fields) == 0 {
		return s.repo.FindByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// GetAgents lists the agents owned by userID. An unknown user is not an
// error here: the result is simply an empty slice.
func (s *UserService) GetAgents(ctx context.Context, userID string) ([]domain.Agent, error) {
	return s.repo.FindAgentsByUserID(ctx, userID)
}
