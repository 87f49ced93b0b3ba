package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Action-layer errors. Each failure mode of the profile/project actions has
// its own sentinel so callers can branch with errors.Is instead of matching
// message strings.
var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidDateRange = errors.New("end date cannot be before the start date")
	ErrDuplicateProject = errors.New("project already exists")
	ErrProfileExists    = errors.New("profile already exists")

	// ErrProjectNotFound deliberately covers both "no such project" and
	// "project owned by someone else" so edits cannot be used to probe for
	// other users' project ids.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectMutation wraps store failures at the create/edit project
	// boundary; the cause is for logs, not callers.
	ErrProjectMutation = errors.New("project mutation failed")
)

func NewValidationError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    reason,
		Field:      field,
	}
}

func NewInvalidDateRangeError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: ErrInvalidDateRange}
}

func NewDuplicateProjectError(title string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateProject,
		Details:    fmt.Sprintf("a project titled %q already exists for this profile", title),
	}
}

func NewProfileExistsError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusConflict, err: ErrProfileExists}
}

func NewProjectNotFoundError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrProjectNotFound}
}

func NewProjectMutationError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrProjectMutation,
		Cause:      cause,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsInvalidDateRange(err error) bool {
	return errors.Is(err, ErrInvalidDateRange)
}

func IsDuplicateProject(err error) bool {
	return errors.Is(err, ErrDuplicateProject)
}

func IsProjectNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound)
}

func IsProjectMutation(err error) bool {
	return errors.Is(err, ErrProjectMutation)
}
