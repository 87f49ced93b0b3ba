package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuscollab/backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindByID returns a project by its ID, or nil if it does not exist.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByOwnerAndTitle returns the project with the given title owned by the
// given profile, or nil if no such project exists.
func (r *ProjectRepo) FindByOwnerAndTitle(ownerProfileID uuid.UUID, title string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("owner_profile_id = ? AND title = ?", ownerProfileID, title).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByOwner returns all projects owned by the given profile.
func (r *ProjectRepo) FindByOwner(ownerProfileID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("owner_profile_id = ?", ownerProfileID).Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}
