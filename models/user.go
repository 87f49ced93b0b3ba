package models

import "github.com/google/uuid"

// User is an account record. Accounts are provisioned by the auth layer at
// sign-in; this backend only ever reads them.
type User struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	Name  string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Image *string   `json:"image,omitempty" db:"image" gorm:"type:text"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}
