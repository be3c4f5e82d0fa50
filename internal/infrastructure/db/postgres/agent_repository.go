package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/agenthub/agent-api/internal/core/domain"
)

// AgentRepository is the gorm-backed implementation of ports.AgentRepository.
type AgentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create inserts the agent. A foreign-key violation means the referenced
// user does not exist.
func (r *AgentRepository) Create(ctx context.Context, agent *domain.Agent) (*domain.Agent, error) {
	if err := r.db.WithContext(ctx).Create(agent).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert agent: %w", err)
	}
	return agent, nil
}

func (r *AgentRepository) FindByID(ctx context.Context, id string) (*domain.Agent, error) {
	var agent domain.Agent
	if err := r.db.WithContext(ctx).First(&agent, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("find agent: %w", err)
	}
	return &agent, nil
}

func (r *AgentRepository) FindAll(ctx context.Context) ([]domain.Agent, error) {
	var agents []domain.Agent
	if err := r.db.WithContext(ctx).Find(&agents).Error; err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

func (r *AgentRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Agent, error) {
	res := r.db.WithContext(ctx).Model(&domain.Agent{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update agent: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrAgentNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *AgentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Agent{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete agent: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}
