package actions

import (
	"strings"
	"time"

	"github.com/campuscollab/backend/errs"
)

// OnboardingInput is the payload that creates a profile. Mirrors the
// onboarding form: every academic field is required, bio is not.
type OnboardingInput struct {
	Name    string   `json:"name"`
	Section string   `json:"section"`
	Branch  string   `json:"branch"`
	Year    string   `json:"year"`
	Skills  []string `json:"skills"`
	Bio     *string  `json:"bio,omitempty"`
}

func (in OnboardingInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errs.NewValidationError("name", "Name is required")
	}
	if strings.TrimSpace(in.Section) == "" {
		return errs.NewValidationError("section", "Section is required")
	}
	if strings.TrimSpace(in.Branch) == "" {
		return errs.NewValidationError("branch", "Branch is required")
	}
	if strings.TrimSpace(in.Year) == "" {
		return errs.NewValidationError("year", "Please select a year")
	}
	if len(in.Skills) == 0 {
		return errs.NewValidationError("skills", "Mention any one skill")
	}
	return nil
}

// ProjectInput is the payload that creates a project.
type ProjectInput struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"requiredSkills"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	GithubLink     *string   `json:"githubLink,omitempty"`
	ProjectStatus  string    `json:"projectStatus"`
	IsActive       bool      `json:"isActive"`
}

func (in ProjectInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errs.NewValidationError("title", "Title is required")
	}
	if len(in.RequiredSkills) == 0 {
		return errs.NewValidationError("requiredSkills", "Mention at least one required skill")
	}
	if in.StartDate.IsZero() {
		return errs.NewValidationError("startDate", "Start date is required")
	}
	if in.EndDate.IsZero() {
		return errs.NewValidationError("endDate", "End date is required")
	}
	return nil
}
