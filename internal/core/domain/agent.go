package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AgentSettings is a free-form string map validated at the API boundary.
type AgentSettings map[string]string

// Agent is an automation owned by exactly one user. UserID is immutable
// after creation; referential integrity is enforced by the schema.
type Agent struct {
	ID          string                            `json:"id" gorm:"primaryKey;size:36"`
	UserID      string                            `json:"userId" gorm:"size:36;not null;index"`
	Name        string                            `json:"name" gorm:"size:128;not null"`
	Description string                            `json:"description,omitempty" gorm:"size:1024"`
	Settings    datatypes.JSONType[AgentSettings] `json:"settings"`
	CreatedAt   time.Time                         `json:"createdAt"`
	UpdatedAt   time.Time                         `json:"updatedAt"`
}

func (a *Agent) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
