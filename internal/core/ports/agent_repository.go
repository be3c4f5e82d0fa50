package ports

import (
	"context"

	"github.com/agenthub/agent-api/internal/core/domain"
)

// AgentRepository defines the persistence operations for agents.
type AgentRepository interface {
	Create(ctx context.Context, agent *domain.Agent) (*domain.Agent, error)
	FindByID(ctx context.Context, id string) (*domain.Agent, error)
	FindAll(ctx context.Context) ([]domain.Agent, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Agent, error)
	Delete(ctx context.Context, id string) error
}
