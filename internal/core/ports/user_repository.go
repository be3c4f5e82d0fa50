package ports

import (
	"context"

	"github.com/agenthub/agent-api/internal/core/domain"
)

// UserRepository defines the persistence operations for users. Update takes
// a column map so callers can apply a partial change without read-modify-write.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	FindAgentsByUserID(ctx context.Context, userID string) ([]domain.Agent, error)
}
