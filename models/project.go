package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project is a posted collaboration opportunity. Ownership is fixed at
// creation: OwnerProfileID always points at the profile that created it.
// Title is unique per owner; the composite index backs the duplicate check.
type Project struct {
	ID             uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	OwnerProfileID uuid.UUID      `json:"ownerProfileId" db:"owner_profile_id" gorm:"type:uuid;not null;index:idx_project_owner;uniqueIndex:idx_project_owner_title"`
	Title          string         `json:"title" db:"title" gorm:"type:text;not null;uniqueIndex:idx_project_owner_title"`
	Description    string         `json:"description" db:"description" gorm:"type:text;not null"`
	RequiredSkills pq.StringArray `json:"requiredSkills" db:"required_skills" gorm:"type:text[];not null"`
	StartDate      time.Time      `json:"startDate" db:"start_date" gorm:"type:timestamp;not null"`
	EndDate        time.Time      `json:"endDate" db:"end_date" gorm:"type:timestamp;not null"`
	GithubLink     *string        `json:"githubLink,omitempty" db:"github_link" gorm:"type:text"`
	ProjectStatus  string         `json:"projectStatus" db:"project_status" gorm:"type:text;not null"`
	IsActive       bool           `json:"isActive" db:"is_active" gorm:"not null;default:true"`

	Owner Profile `json:"owner,omitempty" gorm:"foreignKey:OwnerProfileID;references:ID"`
}
