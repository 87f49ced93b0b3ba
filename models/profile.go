package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Profile holds the extended attributes a user fills in during onboarding.
// Exactly one per user.
type Profile struct {
	ID      uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID  uuid.UUID      `json:"userId" db:"user_id" gorm:"type:uuid;not null;unique"`
	Name    string         `json:"name" db:"name" gorm:"type:text;not null"`
	Skills  pq.StringArray `json:"skills" db:"skills" gorm:"type:text[]"`
	Section string         `json:"section" db:"section" gorm:"type:text;not null"`
	Branch  string         `json:"branch" db:"branch" gorm:"type:text;not null"`
	Year    string         `json:"year" db:"year" gorm:"type:text;not null"`
	Bio     *string        `json:"bio,omitempty" db:"bio" gorm:"type:text"`

	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:OwnerProfileID;references:ID;constraint:OnDelete:CASCADE"`
}
