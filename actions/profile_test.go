package actions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscollab/backend/errs"
)

func newProfileActions(store *memStore, email string) ProfileActions {
	return NewProfileActions(stubSession{email: email, ok: email != ""}, store, profileStore{store})
}

func TestEditProfileKeepsOmittedFields(t *testing.T) {
	store := &memStore{}
	_, profile := seedUser(store, "a@campus.edu", "alice")
	a := newProfileActions(store, "a@campus.edu")

	updated, err := a.EditProfile(context.Background(), ProfilePatch{
		Bio: NullString{Set: true, Value: strPtr("hi")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go"}, []string(updated.Skills))
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "hi", *updated.Bio)
	assert.Equal(t, "A", updated.Section)
	assert.Equal(t, profile.ID, updated.ID)
	assert.Equal(t, 1, store.profileSaves)
}

func TestEditProfileReplacesSkillsWholesale(t *testing.T) {
	store := &memStore{}
	seedUser(store, "a@campus.edu", "alice")
	a := newProfileActions(store, "a@campus.edu")

	updated, err := a.EditProfile(context.Background(), ProfilePatch{
		Skills: []string{"Rust", "Zig"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust", "Zig"}, []string(updated.Skills))
}

func TestEditProfileExplicitNullClearsBio(t *testing.T) {
	store := &memStore{}
	_, profile := seedUser(store, "a@campus.edu", "alice")
	profile.Bio = strPtr("old bio")
	a := newProfileActions(store, "a@campus.edu")

	updated, err := a.EditProfile(context.Background(), ProfilePatch{
		Bio: NullString{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Bio)
}

func TestEditProfileOmittedBioKept(t *testing.T) {
	store := &memStore{}
	_, profile := seedUser(store, "a@campus.edu", "alice")
	profile.Bio = strPtr("keep me")
	a := newProfileActions(store, "a@campus.edu")

	updated, err := a.EditProfile(context.Background(), ProfilePatch{
		Section: strPtr("B"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "keep me", *updated.Bio)
	assert.Equal(t, "B", updated.Section)
}

func TestEditProfileUnauthorized(t *testing.T) {
	store := &memStore{}
	seedUser(store, "a@campus.edu", "alice")
	a := newProfileActions(store, "")

	_, err := a.EditProfile(context.Background(), ProfilePatch{Section: strPtr("B")})
	require.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))
	assert.Zero(t, store.profileSaves)
}

func TestEditProfileUserNotFound(t *testing.T) {
	store := &memStore{}
	a := newProfileActions(store, "ghost@campus.edu")

	_, err := a.EditProfile(context.Background(), ProfilePatch{})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestEditProfileMissingProfile(t *testing.T) {
	store := &memStore{}
	user, _ := seedUser(store, "a@campus.edu", "alice")
	store.profiles = nil
	user.Profile = nil
	a := newProfileActions(store, "a@campus.edu")

	_, err := a.EditProfile(context.Background(), ProfilePatch{})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestProfilePatchBioStates(t *testing.T) {
	var patch ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"section":"B"}`), &patch))
	assert.False(t, patch.Bio.Set)

	patch = ProfilePatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"bio":null}`), &patch))
	assert.True(t, patch.Bio.Set)
	assert.Nil(t, patch.Bio.Value)

	patch = ProfilePatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"bio":"hello"}`), &patch))
	assert.True(t, patch.Bio.Set)
	require.NotNil(t, patch.Bio.Value)
	assert.Equal(t, "hello", *patch.Bio.Value)
}

func TestCompleteOnboarding(t *testing.T) {
	store := &memStore{}
	user, _ := seedUser(store, "a@campus.edu", "alice")
	store.profiles = nil
	user.Profile = nil
	a := newProfileActions(store, "a@campus.edu")

	input := OnboardingInput{
		Name:    "alice",
		Section: "A",
		Branch:  "CSE",
		Year:    "3",
		Skills:  []string{"Go"},
	}
	profile, err := a.CompleteOnboarding(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)

	_, err = a.CompleteOnboarding(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrProfileExists))
}

func TestCompleteOnboardingValidates(t *testing.T) {
	store := &memStore{}
	seedUser(store, "a@campus.edu", "alice")
	a := newProfileActions(store, "a@campus.edu")

	_, err := a.CompleteOnboarding(context.Background(), OnboardingInput{Name: "alice"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestGetUserByHandle(t *testing.T) {
	store := &memStore{}
	user, profile := seedUser(store, "a@campus.edu", "alice")
	user.Image = strPtr("https://example.com/alice.png")
	profile.Bio = strPtr("hi")
	a := newProfileActions(store, "")

	view, err := a.GetUserByHandle(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, user.Image, view.Image)
	assert.Equal(t, []string{"Go"}, []string(view.Skills))
	require.NotNil(t, view.Bio)
	assert.Equal(t, "hi", *view.Bio)
}

func TestGetUserByHandleAbsentIsNotAnError(t *testing.T) {
	store := &memStore{}
	a := newProfileActions(store, "")

	view, err := a.GetUserByHandle(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestGetUserByHandleWithoutProfile(t *testing.T) {
	store := &memStore{}
	user, _ := seedUser(store, "a@campus.edu", "alice")
	user.Profile = nil
	a := newProfileActions(store, "")

	view, err := a.GetUserByHandle(context.Background(), "alice")
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestSearchUsersBlankQueryShortCircuits(t *testing.T) {
	store := &memStore{}
	seedUser(store, "a@campus.edu", "alice")
	a := newProfileActions(store, "")

	for _, q := range []string{"", "   "} {
		matches, err := a.SearchUsers(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, matches)
	}
	assert.Zero(t, store.searchCalls, "blank query must not touch the store")
}

func TestSearchUsersCaseInsensitiveAndCapped(t *testing.T) {
	store := &memStore{}
	names := []string{"Alice", "alina", "ALISTAIR", "malik", "Calista", "Salim", "bob"}
	for _, n := range names {
		seedUser(store, n+"@campus.edu", n)
	}
	a := newProfileActions(store, "")

	matches, err := a.SearchUsers(context.Background(), "li")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(matches), 5)
	for _, m := range matches {
		assert.Contains(t, strings.ToLower(m.User.Name), "li")
		assert.NotEqual(t, "", m.ProfileName)
	}
}
