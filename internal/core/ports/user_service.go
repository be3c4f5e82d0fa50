package ports

import (
	"context"

	"github.com/agenthub/agent-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user.
type CreateUserInput struct {
	Email    string
	Password string
	Role     string
	Username string
	Settings *domain.UserSettings
}

// UpdateUserInput holds a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *string
	Username *string
	Settings *domain.UserSettings
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	GetAgents(ctx context.Context, userID string) ([]domain.Agent, error)
}
