package api

import (
	"context"

	"github.com/campuscollab/backend/actions"
)

// ContextSessionResolver implements actions.SessionResolver over the email
// the auth middleware stored in the request context.
type ContextSessionResolver struct{}

func (ContextSessionResolver) Resolve(ctx context.Context) (actions.Session, bool) {
	email, ok := emailFromCtx(ctx)
	if !ok {
		return actions.Session{}, false
	}
	return actions.Session{Email: email}, true
}
