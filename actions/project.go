package actions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campuscollab/backend/errs"
	"github.com/campuscollab/backend/models"
)

// ProjectActions implements project posting and editing: validation,
// ownership, per-owner title uniqueness, and partial updates.
type ProjectActions struct {
	sessions SessionResolver
	users    UserStore
	profiles ProfileStore
	projects ProjectStore
	logger   zerolog.Logger
}

func NewProjectActions(sessions SessionResolver, users UserStore, profiles ProfileStore, projects ProjectStore) ProjectActions {
	return ProjectActions{
		sessions: sessions,
		users:    users,
		profiles: profiles,
		projects: projects,
		logger:   log.With().Str("component", "projectActions").Logger(),
	}
}

// AddProject creates a project owned by the caller's profile.
//
// Checks run in a fixed order and the first violation wins: session, schema,
// date range, owner resolution, duplicate title. The duplicate check and the
// insert are separate store calls, so two concurrent creates with the same
// title can both pass the check; the composite unique index on
// (owner_profile_id, title) is the backstop, surfacing as a store failure on
// whichever insert loses.
func (a ProjectActions) AddProject(ctx context.Context, input ProjectInput) (*models.Project, error) {
	sess, ok := a.sessions.Resolve(ctx)
	if !ok || sess.Email == "" {
		return nil, errs.NewUnauthorizedError("no authenticated session")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, errs.NewInvalidDateRangeError()
	}

	owner, err := resolveOwner(a.users, a.profiles, sess.Email)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, err
		}
		return nil, a.mutationFailure("resolving project owner", err)
	}

	existing, err := a.projects.FindByOwnerAndTitle(owner.ID, input.Title)
	if err != nil {
		return nil, a.mutationFailure("checking for duplicate title", err)
	}
	if existing != nil {
		return nil, errs.NewDuplicateProjectError(input.Title)
	}

	project := &models.Project{
		OwnerProfileID: owner.ID,
		Title:          input.Title,
		Description:    input.Description,
		RequiredSkills: pq.StringArray(input.RequiredSkills),
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		GithubLink:     input.GithubLink,
		ProjectStatus:  input.ProjectStatus,
		IsActive:       input.IsActive,
	}
	if err := a.projects.Add(project); err != nil {
		return nil, a.mutationFailure("creating project", err)
	}

	a.logger.Info().Str("projectID", project.ID.String()).Str("title", project.Title).Msg("project created")
	return project, nil
}

// ProjectPatch is a partial project update. ID is required; everything else
// is optional and nil means "keep the stored value". Title and the required
// skills are deliberately absent: they are fixed at creation.
type ProjectPatch struct {
	ID            uuid.UUID  `json:"id"`
	Description   *string    `json:"description,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	GithubLink    *string    `json:"githubLink,omitempty"`
	ProjectStatus *string    `json:"projectStatus,omitempty"`
	IsActive      *bool      `json:"isActive,omitempty"`
}

// EditProject partially updates a project the caller owns.
//
// The date-range check only fires when the patch carries both dates; a patch
// supplying just one of them is never reconciled against the stored
// counterpart and can persist an inconsistent range. Known defect, kept
// until the product decides otherwise.
//
// A project that does not exist and a project owned by someone else fail
// identically, so an edit cannot be used to confirm that a given id exists.
func (a ProjectActions) EditProject(ctx context.Context, patch ProjectPatch) (*models.Project, error) {
	sess, ok := a.sessions.Resolve(ctx)
	if !ok || sess.Email == "" {
		return nil, errs.NewUnauthorizedError("no authenticated session")
	}

	if patch.ID == uuid.Nil {
		return nil, errs.NewValidationError("id", "Project id is required")
	}
	if patch.StartDate != nil && patch.EndDate != nil && patch.EndDate.Before(*patch.StartDate) {
		return nil, errs.NewInvalidDateRangeError()
	}

	owner, err := resolveOwner(a.users, a.profiles, sess.Email)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, err
		}
		return nil, a.mutationFailure("resolving project owner", err)
	}

	project, err := a.projects.FindByID(patch.ID)
	if err != nil {
		return nil, a.mutationFailure("finding project", err)
	}
	if project == nil || project.OwnerProfileID != owner.ID {
		return nil, errs.NewProjectNotFoundError()
	}

	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.StartDate != nil {
		project.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		project.EndDate = *patch.EndDate
	}
	if patch.GithubLink != nil {
		project.GithubLink = patch.GithubLink
	}
	if patch.ProjectStatus != nil {
		project.ProjectStatus = *patch.ProjectStatus
	}
	if patch.IsActive != nil {
		project.IsActive = *patch.IsActive
	}

	if err := a.projects.Update(project); err != nil {
		return nil, a.mutationFailure("updating project", err)
	}

	a.logger.Info().Str("projectID", project.ID.String()).Msg("project updated")
	return project, nil
}

// ListByHandle returns the projects posted by a public handle, for the
// profile page.
func (a ProjectActions) ListByHandle(ctx context.Context, username string) ([]models.Project, error) {
	user, err := a.users.FindByName(username)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil || user.Profile == nil {
		return nil, errs.NewNotFoundError("profile")
	}

	projects, err := a.projects.FindByOwner(user.Profile.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// mutationFailure logs the specific cause server-side and hands the caller
// the uniform boundary error.
func (a ProjectActions) mutationFailure(op string, cause error) error {
	a.logger.Error().Err(cause).Msg(op)
	return errs.NewProjectMutationError(cause)
}
