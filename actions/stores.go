package actions

import (
	"github.com/google/uuid"

	"github.com/campuscollab/backend/errs"
	"github.com/campuscollab/backend/models"
)

// Store interfaces consumed by the actions. The database package's repos
// satisfy them; tests use in-memory stubs. All lookups return (nil, nil)
// when the record does not exist.

type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	FindByName(name string) (*models.User, error)
}

type ProfileStore interface {
	FindByUserID(userID uuid.UUID) (*models.Profile, error)
	SearchByUserName(query string, limit int) ([]*models.Profile, error)
	Add(profile *models.Profile) error
	Update(profile *models.Profile) error
}

type ProjectStore interface {
	FindByID(id uuid.UUID) (*models.Project, error)
	FindByOwnerAndTitle(ownerProfileID uuid.UUID, title string) (*models.Project, error)
	FindByOwner(ownerProfileID uuid.UUID) ([]models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
}

// resolveOwner maps an authenticated email to the caller's profile. A missing
// user or missing profile is a not-found failure, not a silent empty.
func resolveOwner(users UserStore, profiles ProfileStore, email string) (*models.Profile, error) {
	user, err := users.FindByEmail(email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewNotFoundError("user")
	}

	profile, err := profiles.FindByUserID(user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}
	if profile == nil {
		return nil, errs.NewNotFoundError("profile")
	}
	return profile, nil
}
