package actions

import "context"

// Session is the authenticated identity attached to a request. Email is the
// authentication key; every mutation resolves the acting user through it.
type Session struct {
	Email string
}

// SessionResolver yields the session for a request context, or reports that
// none is present. The api package provides a JWT-backed implementation;
// tests inject stubs.
type SessionResolver interface {
	Resolve(ctx context.Context) (Session, bool)
}

// SessionResolverFunc adapts a plain function to a SessionResolver.
type SessionResolverFunc func(ctx context.Context) (Session, bool)

func (f SessionResolverFunc) Resolve(ctx context.Context) (Session, bool) {
	return f(ctx)
}
