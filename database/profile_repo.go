package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuscollab/backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindByUserID returns the profile backing the given user, or nil if the
// user has not completed onboarding.
func (r *ProfileRepo) FindByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SearchByUserName returns profiles whose backing user's name contains the
// query, case-insensitively, joined with the user record. Result order is
// whatever the database happens to return.
func (r *ProfileRepo) SearchByUserName(query string, limit int) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.
		Joins("User").
		Where(`"User".name ILIKE ?`, "%"+query+"%").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

// Add inserts a new profile into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update updates an existing profile in the database
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
