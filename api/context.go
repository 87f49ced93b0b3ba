package api

import (
	"context"
)

type keyType string

const emailKey keyType = "email"

// ctxWithEmail attaches the authenticated email to the context.
func ctxWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// emailFromCtx returns the authenticated email, if any.
func emailFromCtx(ctx context.Context) (string, bool) {
	value := ctx.Value(emailKey)
	if value == nil {
		return "", false
	}
	email, ok := value.(string)
	return email, ok && email != ""
}
