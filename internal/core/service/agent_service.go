package service

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/agenthub/agent-api/internal/core/domain"
	"github.com/agenthub/agent-api/internal/core/ports"
)

// AgentService implements agent CRUD. Ownership checks are delegated to the
// schema: creating an agent for an unknown user trips the foreign key and
// comes back as ErrUserNotFound.
type AgentService struct {
	repo   ports.AgentRepository
	logger zerolog.Logger
}

func NewAgentService(repo ports.AgentRepository, logger zerolog.Logger) *AgentService {
	return &AgentService{repo: repo, logger: logger}
}

func (s *AgentService) Create(ctx context.Context, input ports.CreateAgentInput) (*domain.Agent, error) {
	if input.UserID == "" || input.Name == "" {
		return nil, domain.ErrMissingFields
	}

	agent := &domain.Agent{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
	}
	if input.Settings != nil {
		agent.Settings = datatypes.NewJSONType(input.Settings)
	}

	created, err := s.repo.Create(ctx, agent)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create agent")
		return nil, err
	}

	s.logger.Info().Str("agent_id", created.ID).Str("user_id", created.UserID).Msg("agent created")
	return created, nil
}

func (s *AgentService) GetByID(ctx context.Context, id string) (*domain.Agent, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AgentService) GetAll(ctx context.Context) ([]domain.Agent, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update to name, description, or settings. The
// owning user cannot be changed through this path.
func (s *AgentService) Update(ctx context.Context, id string, input ports.UpdateAgentInput) (*domain.Agent, error) {
	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Settings != nil {
		fields["settings"] = datatypes.NewJSONType(input.Settings)
	}

	if len(fields) == 0 {
		return s.repo.FindByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Error().Err(err).Str("agent_id", id).Msg("failed to update agent")
		return nil, err
	}
	return updated, nil
}

func (s *AgentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("agent_id", id).Msg("failed to delete agent")
		return err
	}
	s.logger.Info().Str("agent_id", id).Msg("agent deleted")
	return nil
}
