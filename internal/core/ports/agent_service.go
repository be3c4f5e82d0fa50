package ports

import (
	"context"

	"github.com/agenthub/agent-api/internal/core/domain"
)

// CreateAgentInput carries all data needed to create a new agent.
type CreateAgentInput struct {
	UserID      string
	Name        string
	Description string
	Settings    domain.AgentSettings
}

// UpdateAgentInput holds a partial update. The owning user is immutable,
// so there is deliberately no UserID field here.
type UpdateAgentInput struct {
	Name        *string
	Description *string
	Settings    domain.AgentSettings
}

type AgentService interface {
	Create(ctx context.Context, input CreateAgentInput) (*domain.Agent, error)
	GetByID(ctx context.Context, id string) (*domain.Agent, error)
	GetAll(ctx context.Context) ([]domain.Agent, error)
	Update(ctx context.Context, id string, input UpdateAgentInput) (*domain.Agent, error)
	Delete(ctx context.Context, id string) error
}
