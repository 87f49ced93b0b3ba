package actions

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campuscollab/backend/errs"
	"github.com/campuscollab/backend/models"
)

// searchLimit caps typeahead search results.
const searchLimit = 5

// ProfileActions implements the profile side of the platform: partial
// profile updates, public profile lookup by handle, and typeahead search.
type ProfileActions struct {
	sessions SessionResolver
	users    UserStore
	profiles ProfileStore
	logger   zerolog.Logger
}

func NewProfileActions(sessions SessionResolver, users UserStore, profiles ProfileStore) ProfileActions {
	return ProfileActions{
		sessions: sessions,
		users:    users,
		profiles: profiles,
		logger:   log.With().Str("component", "profileActions").Logger(),
	}
}

// ProfilePatch is a partial profile update. Nil fields keep the stored
// value. Skills, when present, replaces the stored list wholesale. Bio uses
// NullString so an explicit null clears the bio instead of keeping it.
type ProfilePatch struct {
	Skills  []string   `json:"skills,omitempty"`
	Section *string    `json:"section,omitempty"`
	Branch  *string    `json:"branch,omitempty"`
	Year    *string    `json:"year,omitempty"`
	Bio     NullString `json:"bio"`
}

// EditProfile partially updates the caller's own profile and returns the
// merged record.
func (a ProfileActions) EditProfile(ctx context.Context, patch ProfilePatch) (*models.Profile, error) {
	sess, ok := a.sessions.Resolve(ctx)
	if !ok || sess.Email == "" {
		return nil, errs.NewUnauthorizedError("no authenticated session")
	}

	owner, err := resolveOwner(a.users, a.profiles, sess.Email)
	if err != nil {
		return nil, err
	}

	if patch.Skills != nil {
		owner.Skills = pq.StringArray(patch.Skills)
	}
	if patch.Section != nil {
		owner.Section = *patch.Section
	}
	if patch.Branch != nil {
		owner.Branch = *patch.Branch
	}
	if patch.Year != nil {
		owner.Year = *patch.Year
	}
	if patch.Bio.Set {
		owner.Bio = patch.Bio.Value
	}

	if err := a.profiles.Update(owner); err != nil {
		return nil, errs.NewDatabaseError("update", "profile", err)
	}

	a.logger.Debug().Str("profileID", owner.ID.String()).Msg("profile updated")
	return owner, nil
}

// CompleteOnboarding creates the caller's profile. A user onboards exactly
// once; a second attempt conflicts.
func (a ProfileActions) CompleteOnboarding(ctx context.Context, input OnboardingInput) (*models.Profile, error) {
	sess, ok := a.sessions.Resolve(ctx)
	if !ok || sess.Email == "" {
		return nil, errs.NewUnauthorizedError("no authenticated session")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := a.users.FindByEmail(sess.Email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewNotFoundError("user")
	}

	existing, err := a.profiles.FindByUserID(user.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}
	if existing != nil {
		return nil, errs.NewProfileExistsError()
	}

	profile := &models.Profile{
		UserID:  user.ID,
		Name:    input.Name,
		Skills:  pq.StringArray(input.Skills),
		Section: input.Section,
		Branch:  input.Branch,
		Year:    input.Year,
		Bio:     input.Bio,
	}
	if err := a.profiles.Add(profile); err != nil {
		return nil, errs.NewDatabaseError("create", "profile", err)
	}

	a.logger.Info().Str("profileID", profile.ID.String()).Msg("onboarding completed")
	return profile, nil
}

// PublicProfile is the merged view served for a public handle: every profile
// field plus the backing user's handle and avatar.
type PublicProfile struct {
	models.Profile
	Username string  `json:"username"`
	Image    *string `json:"image,omitempty"`
}

// GetUserByHandle looks up the public profile for a handle. A missing user
// or a user without a profile returns (nil, nil): absence is an expected
// outcome here, not an error.
func (a ProfileActions) GetUserByHandle(ctx context.Context, username string) (*PublicProfile, error) {
	user, err := a.users.FindByName(username)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil || user.Profile == nil {
		a.logger.Debug().Str("username", username).Msg("user or profile not found")
		return nil, nil
	}

	return &PublicProfile{
		Profile:  *user.Profile,
		Username: user.Name,
		Image:    user.Image,
	}, nil
}

// UserMatch is one typeahead search result.
type UserMatch struct {
	ProfileID   uuid.UUID   `json:"profileId"`
	ProfileName string      `json:"profileName"`
	User        MatchedUser `json:"user"`
}

type MatchedUser struct {
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// SearchUsers performs a case-insensitive contains search over user handles,
// capped at five results. A blank query short-circuits to an empty slice
// without touching the store; matching every row on the empty substring
// would defeat the point of a typeahead.
func (a ProfileActions) SearchUsers(ctx context.Context, query string) ([]UserMatch, error) {
	if strings.TrimSpace(query) == "" {
		return []UserMatch{}, nil
	}

	profiles, err := a.profiles.SearchByUserName(query, searchLimit)
	if err != nil {
		return nil, errs.NewDatabaseError("search", "profiles", err)
	}

	matches := make([]UserMatch, 0, len(profiles))
	for _, p := range profiles {
		matches = append(matches, UserMatch{
			ProfileID:   p.ID,
			ProfileName: p.Name,
			User:        MatchedUser{Name: p.User.Name, Image: p.User.Image},
		})
	}
	return matches, nil
}
