package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserSettings is the fixed-shape preferences blob stored per user.
type UserSettings struct {
	Theme string `json:"theme"`
}

// User models an account that owns zero or more agents. The password column
// only ever holds a bcrypt hash and is never serialised to JSON.
type User struct {
	ID        string                           `json:"id" gorm:"primaryKey;size:36"`
	Email     string                           `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password  string                           `json:"-" gorm:"size:191;not null"`
	Username  string                           `json:"username" gorm:"size:64;not null"`
	Role      string                           `json:"role" gorm:"size:32;not null"`
	Settings  datatypes.JSONType[UserSettings] `json:"settings"`
	Agents    []Agent                          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time                        `json:"createdAt"`
	UpdatedAt time.Time                        `json:"updatedAt"`
}

// BeforeCreate assigns the store-side identifier.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
