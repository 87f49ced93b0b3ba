package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsUnwrap(t *testing.T) {
	assert.True(t, IsUnauthorized(NewUnauthorizedError("no session")))
	assert.True(t, IsNotFound(NewNotFoundError("user")))
	assert.True(t, IsValidation(NewValidationError("title", "Title is required")))
	assert.True(t, IsInvalidDateRange(NewInvalidDateRangeError()))
	assert.True(t, IsDuplicateProject(NewDuplicateProjectError("x")))
	assert.True(t, IsProjectNotFound(NewProjectNotFoundError()))
	assert.True(t, IsProjectMutation(NewProjectMutationError(errors.New("boom"))))
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("x").StatusCode)
	assert.Equal(t, http.StatusNotFound, NewProjectNotFoundError().StatusCode)
	assert.Equal(t, http.StatusBadRequest, NewInvalidDateRangeError().StatusCode)
	assert.Equal(t, http.StatusConflict, NewDuplicateProjectError("x").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewProjectMutationError(errors.New("boom")).StatusCode)
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := NewValidationError("requiredSkills", "Mention at least one required skill")
	assert.Equal(t, "requiredSkills", err.Field)
	assert.Contains(t, err.Error(), "Mention at least one required skill")
}

func TestDatabaseErrorClassification(t *testing.T) {
	dup := NewDatabaseError("create", "project", errors.New(`duplicate key value violates unique constraint "idx_project_owner_title"`))
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
	assert.True(t, IsConflict(dup))

	missing := NewDatabaseError("find", "profile", errors.New("record not found"))
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	down := NewDatabaseError("find", "user", errors.New("connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, down.StatusCode)
}

func TestGetFullErrorIncludesCauses(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewProjectMutationError(cause)
	assert.Contains(t, err.GetFullError(), "connection reset")
}
