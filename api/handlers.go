package api

import (
	"github.com/campuscollab/backend/actions"
	"github.com/campuscollab/backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	profileHandler profileHandler
	projectHandler projectHandler
}

// initializeHandlers wires the action layer over the database repos and
// hands each handler its actions.
func initializeHandlers(db database.Database) *routeHandlers {
	sessions := ContextSessionResolver{}

	profileActions := actions.NewProfileActions(sessions, db.UserRepo(), db.ProfileRepo())
	projectActions := actions.NewProjectActions(sessions, db.UserRepo(), db.ProfileRepo(), db.ProjectRepo())

	return &routeHandlers{
		profileHandler: newProfileHandler(profileActions),
		projectHandler: newProjectHandler(projectActions),
	}
}
