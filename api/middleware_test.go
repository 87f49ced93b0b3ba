package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthenticatePutsEmailInContext(t *testing.T) {
	m := newAuthMiddleware("test-secret")

	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = emailFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodPut, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "a@campus.edu"))
	rec := httptest.NewRecorder()

	m.authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@campus.edu", gotEmail)

	sess, ok := ContextSessionResolver{}.Resolve(ctxWithEmail(req.Context(), "a@campus.edu"))
	assert.True(t, ok)
	assert.Equal(t, "a@campus.edu", sess.Email)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	m := newAuthMiddleware("test-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "a@campus.edu")},
		{"no email claim", "Bearer " + signToken(t, "test-secret", "")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			m.authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
